package cli

import (
	"context"
	"os"

	"github.com/jaykumar/jobportal-cli/internal/client/models"
	"github.com/jaykumar/jobportal-cli/internal/client/portal"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login renders the login page and attempts to authenticate.
//
// Entry-page guard: checked once, on page entry. An already-authenticated
// visitor is sent home and the form is never shown; session changes after
// entry do not re-trigger the check.
//
// On success the user lands in the session store and the bearer token in the
// credential store (both handled by the auth service); the page then notifies
// and navigates home. On failure the server message is shown when present,
// with a generic fallback when no response was received.
func (a *App) Login(ctx context.Context) error {
	if a.session.User() != nil {
		printlnFn("You are already signed in.")
		return a.Home(ctx)
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer wipeBytes(password)

	role, err := getSimpleText(a.reader, "Select role (student/recruiter)", os.Stdout)
	if err != nil {
		return err
	}

	printlnFn("Please wait ...")
	msg, err := a.authService.SignIn(ctx, email, string(password), models.Role(role))
	if err != nil {
		printlnFn(portal.UserMessage(err, "Login failed"))
		return err
	}

	a.notify(msg, "Welcome back!")
	return a.Home(ctx)
}

// Logout invokes the logout flow. On success the session returns to the
// anonymous state and the visitor lands on the home page. On failure the
// session store is left untouched: the client keeps believing it is
// authenticated, and only a notification is shown.
func (a *App) Logout(ctx context.Context) error {
	msg, err := a.authService.SignOut(ctx)
	if err != nil {
		printlnFn(portal.UserMessage(err, "Logout failed"))
		return err
	}

	if err := a.Home(ctx); err != nil {
		return err
	}
	a.notify(msg, "Logged out")
	return nil
}

// notify shows msg to the user, falling back when the server sent none.
func (a *App) notify(msg, fallback string) {
	if msg == "" {
		msg = fallback
	}
	printlnFn(msg)
}

func wipeBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
