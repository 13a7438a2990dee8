package portal

import "github.com/jaykumar/jobportal-cli/internal/client/models"

// statusResponse is the minimal envelope every portal endpoint replies with.
type statusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type loginResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    *models.User `json:"user"`
	Token   string       `json:"token"`
}

type sessionResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    *models.User `json:"user"`
}

type companiesResponse struct {
	Success   bool             `json:"success"`
	Message   string           `json:"message"`
	Companies []models.Company `json:"companies"`
}

type loginRequest struct {
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     models.Role `json:"role"`
}
