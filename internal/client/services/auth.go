package services

import (
	"context"
	"errors"
	"sync"

	"github.com/jaykumar/jobportal-cli/internal/client/models"
	"github.com/jaykumar/jobportal-cli/internal/client/portal"
	"github.com/jaykumar/jobportal-cli/internal/client/repositories/creds"
	"github.com/jaykumar/jobportal-cli/internal/client/stores"
	"github.com/jaykumar/jobportal-cli/internal/logging"
)

// ErrSubmissionInFlight is returned when a session-mutating call is attempted
// while another one is still running. At most one may be in flight at a time.
var ErrSubmissionInFlight = errors.New("submission already in flight")

// AuthService defines the session-mutating flows of the client.
//
// Contract:
//   - SignUp: submit registration; returns the server message. A successful
//     registration does not authenticate the visitor.
//   - SignIn: authenticate; persists the bearer token and installs the user
//     into the session store. Returns the server message.
//   - SignOut: terminate the session; clears the current user on success and
//     leaves it untouched on failure.
//   - RestoreSession: re-derive the in-memory session after a restart.
//
// SignUp, SignIn and SignOut hold the session store's loading flag for their
// whole duration and reject re-entrant submissions with
// ErrSubmissionInFlight. The flag is cleared exactly once per call, on every
// exit path.
type AuthService interface {
	SignUp(ctx context.Context, form models.RegisterForm, file *models.Attachment) (string, error)
	SignIn(ctx context.Context, email, password string, role models.Role) (string, error)
	SignOut(ctx context.Context) (string, error)
	RestoreSession(ctx context.Context) error
}

type authService struct {
	client  portal.Client
	session *stores.SessionStore
	creds   creds.Repository
	log     logging.Logger

	// mu serializes session-mutating flows so loading checks and writes
	// cannot interleave across goroutines.
	mu sync.Mutex
}

// NewAuthService constructs an AuthService bound to the given API client,
// session store and credential repository.
func NewAuthService(client portal.Client, session *stores.SessionStore, creds creds.Repository, log logging.Logger) AuthService {
	return &authService{client: client, session: session, creds: creds, log: log}
}

// beginMutation marks a session-mutating request as in flight. It reports
// false when another one is already running.
func (a *authService) beginMutation() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.session.Loading() {
		return false
	}
	a.session.SetLoading(true)
	return true
}

func (a *authService) endMutation() {
	a.session.SetLoading(false)
}

// SignUp submits the registration form. Nothing is validated here: an unset
// role or empty fields travel to the server as entered and are rejected
// there. The session store is not mutated on success; the visitor still has
// to log in.
func (a *authService) SignUp(ctx context.Context, form models.RegisterForm, file *models.Attachment) (string, error) {
	if !a.beginMutation() {
		return "", ErrSubmissionInFlight
	}
	defer a.endMutation()

	msg, err := a.client.Register(ctx, form, file)
	if err != nil {
		return "", err
	}
	return msg, nil
}

// SignIn authenticates and, on success, persists the bearer token under the
// well-known key and installs the user into the session store, in that order.
func (a *authService) SignIn(ctx context.Context, email, password string, role models.Role) (string, error) {
	if !a.beginMutation() {
		return "", ErrSubmissionInFlight
	}
	defer a.endMutation()

	res, err := a.client.Login(ctx, email, password, role)
	if err != nil {
		return "", err
	}

	if res.Token != "" {
		if err := a.creds.Set(ctx, creds.TokenKey, res.Token); err != nil {
			// The session stays usable through the cookie channel; only
			// protected reads will miss the fresh token.
			a.log.Warn(ctx, "failed to persist bearer token", "error", err)
		}
	}
	a.session.SetUser(res.User)
	return res.Message, nil
}

// SignOut terminates the server session. On failure the session store keeps
// the current user: the client continues to believe it is authenticated.
// The bearer token has its own lifecycle and is not cleared here either way.
func (a *authService) SignOut(ctx context.Context) (string, error) {
	if !a.beginMutation() {
		return "", ErrSubmissionInFlight
	}
	defer a.endMutation()

	msg, err := a.client.Logout(ctx)
	if err != nil {
		return "", err
	}
	a.session.SetUser(nil)
	return msg, nil
}

// RestoreSession asks the server who the persisted cookie session belongs to
// and resets the session store accordingly. A failed check returns the
// session to the anonymous state.
func (a *authService) RestoreSession(ctx context.Context) error {
	user, err := a.client.Session(ctx)
	if err != nil {
		a.session.SetUser(nil)
		a.log.Debug(ctx, "session restore failed", "error", err)
		return err
	}
	a.session.SetUser(user)
	return nil
}
