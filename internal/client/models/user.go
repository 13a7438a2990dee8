// Package models defines the data types the portal client works with.
package models

// Role classifies a portal account.
//
// The set is closed on the server side: an account is either a student or a
// recruiter. On the client, a Role travels as an open string so that an
// unset value ("") reaches the server unchanged and is rejected there
// instead of being silently defaulted.
type Role string

const (
	RoleStudent   Role = "student"
	RoleRecruiter Role = "recruiter"
)

// Profile holds the optional public details of an account.
type Profile struct {
	Bio          string `json:"bio,omitempty"`
	ProfilePhoto string `json:"profilePhoto,omitempty"`
}

// User is the authenticated visitor as reported by the server.
//
// The session store owns the only client-side copy; no other component
// retains one.
type User struct {
	ID          string  `json:"_id"`
	FullName    string  `json:"fullname"`
	Email       string  `json:"email"`
	PhoneNumber string  `json:"phoneNumber"`
	Role        Role    `json:"role"`
	Profile     Profile `json:"profile"`
}

// RegisterForm carries the signup fields exactly as entered. No field is
// validated client-side; the server is the authority on field contents.
type RegisterForm struct {
	FullName    string
	Email       string
	PhoneNumber string
	Password    string
	Role        Role
}

// Attachment is an optional file sent along with registration, typically a
// profile photo.
type Attachment struct {
	Name        string
	ContentType string
	Data        []byte
}
