// Package stores holds the client's in-memory state containers: the session
// store (single source of truth for authentication status and role) and the
// company listing store. Stores are mutated only through their setters and
// notify subscribers after every write; reads are synchronous and always
// reflect the latest write.
package stores

import (
	"sync"

	"github.com/jaykumar/jobportal-cli/internal/client/models"
)

// SessionStore tracks the client's belief about the current visitor.
//
// currentUser != nil means authenticated; Loading is true only while a
// session-mutating request (signup, login, logout) is in flight. The store
// itself performs no I/O and has no side effects beyond notifying
// subscribers.
type SessionStore struct {
	mu      sync.RWMutex
	user    *models.User
	loading bool
	subs    []func()
}

// NewSessionStore returns an empty, anonymous session.
func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

// SetUser replaces the current user unconditionally. There is no merge;
// passing nil returns the session to the anonymous state.
func (s *SessionStore) SetUser(u *models.User) {
	s.mu.Lock()
	s.user = u
	subs := s.subs
	s.mu.Unlock()
	notify(subs)
}

// SetLoading replaces the loading flag.
func (s *SessionStore) SetLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	subs := s.subs
	s.mu.Unlock()
	notify(subs)
}

// User returns the current user, or nil when anonymous.
func (s *SessionStore) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Loading reports whether a session-mutating request is in flight.
func (s *SessionStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Subscribe registers fn to run after every store mutation. Subscribers are
// invoked synchronously, outside the store lock, in registration order.
func (s *SessionStore) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

func notify(subs []func()) {
	for _, fn := range subs {
		fn()
	}
}
