package portal

import (
	"context"

	"github.com/jaykumar/jobportal-cli/internal/client/models"
)

// Client is the API surface the application services depend on.
//
// Contract:
//   - Register: create an account via the multipart endpoint; returns the
//     server message. Field contents are not validated client-side.
//   - Login: authenticate; returns the user, the bearer token for protected
//     reads, and the server message. The session cookie is captured by the
//     transport as a side effect.
//   - Logout: terminate the cookie session; returns the server message.
//     Safe to call when already logged out.
//   - Session: re-derive the current user from the cookie session.
//   - Companies: protected read authorized by the given bearer token.
//
// All methods must honor context cancellation.
type Client interface {
	Register(ctx context.Context, form models.RegisterForm, file *models.Attachment) (string, error)
	Login(ctx context.Context, email, password string, role models.Role) (*LoginResult, error)
	Logout(ctx context.Context) (string, error)
	Session(ctx context.Context) (*models.User, error)
	Companies(ctx context.Context, token string) ([]models.Company, error)
}

// LoginResult bundles everything a successful login reports back.
type LoginResult struct {
	User    *models.User
	Token   string
	Message string
}
