package models

// Company is a single entry of the protected company listing available to
// recruiters.
type Company struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Website     string `json:"website,omitempty"`
	Location    string `json:"location,omitempty"`
	Logo        string `json:"logo,omitempty"`
}
