package cli

import (
	"context"
	"mime"
	"os"
	"path/filepath"

	"github.com/jaykumar/jobportal-cli/internal/client/models"
	"github.com/jaykumar/jobportal-cli/internal/client/portal"
)

// Signup renders the signup page and submits the registration form.
//
// Entry-page guard: checked once, on page entry. An already-authenticated
// visitor is sent home and the form is never shown.
//
// The form performs no client-side validation: empty fields and an unset role
// are transmitted as entered and rejected by the server. While the request is
// in flight the session's loading flag is held by the auth service, which
// also suppresses any re-entrant submission. On success the page notifies and
// navigates to the login page; registration does not authenticate.
func (a *App) Signup(ctx context.Context) error {
	if a.session.User() != nil {
		printlnFn("You are already signed in.")
		return a.Home(ctx)
	}

	form, err := a.readSignupForm()
	if err != nil {
		return err
	}

	filePath, err := getSimpleText(a.reader, "Profile picture path (optional, leave empty to skip)", os.Stdout)
	if err != nil {
		return err
	}

	var file *models.Attachment
	if filePath != "" {
		file, err = loadAttachment(filePath)
		if err != nil {
			printlnFn("Could not read the profile picture:", err.Error())
			return err
		}
	}

	printlnFn("Please wait ...")
	msg, err := a.authService.SignUp(ctx, form, file)
	if err != nil {
		printlnFn(portal.UserMessage(err, "Signup failed"))
		return err
	}

	a.notify(msg, "Account created")
	return a.Login(ctx)
}

func (a *App) readSignupForm() (models.RegisterForm, error) {
	var form models.RegisterForm

	fullname, err := getSimpleText(a.reader, "Full name", os.Stdout)
	if err != nil {
		return form, err
	}
	email, err := getSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return form, err
	}
	phone, err := getSimpleText(a.reader, "Phone number", os.Stdout)
	if err != nil {
		return form, err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return form, err
	}
	defer wipeBytes(password)

	// Role stays an open string: whatever is entered (including nothing)
	// goes to the server, which owns validation.
	role, err := getSimpleText(a.reader, "Select role (student/recruiter)", os.Stdout)
	if err != nil {
		return form, err
	}

	return models.RegisterForm{
		FullName:    fullname,
		Email:       email,
		PhoneNumber: phone,
		Password:    string(password),
		Role:        models.Role(role),
	}, nil
}

// loadAttachment reads the file at path into an attachment, guessing the
// content type from the extension.
func loadAttachment(path string) (*models.Attachment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &models.Attachment{
		Name:        filepath.Base(path),
		ContentType: mime.TypeByExtension(filepath.Ext(path)),
		Data:        data,
	}, nil
}
