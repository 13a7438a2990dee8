// Package services contains the application services of the portal client.
//
// AuthService owns the session-mutating flows (signup, login, logout, session
// restore) and is the only writer of the session store's loading flag.
// CompanyService pulls the protected company listing into its resource store.
//
// Services return server messages and errors to the CLI layer, which decides
// how to notify the user and where to navigate; the one exception is
// CompanyService.Refresh, whose failure policy is log-only.
package services
