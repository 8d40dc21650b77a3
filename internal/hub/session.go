// Package hub holds the client-side state of Dev-Hub: the authenticated
// session, the catalog snapshot, the filter/search view model and the CRUD
// commands. The containers are created at application start and passed to
// whatever front end consumes them; there are no package-level globals.
package hub

import (
	"sync"

	"github.com/alshawwaf/dev-hub/internal/api"
)

// TokenStore persists the session credential across process restarts.
type TokenStore interface {
	Load() (token string, identity api.Identity, ok bool, err error)
	Save(token string, identity api.Identity) error
	Clear() error
}

// Session holds the current authenticated identity. The token and identity
// are set and cleared together: either both are present or neither is.
type Session struct {
	mu       sync.Mutex
	store    TokenStore
	token    string
	identity api.Identity
}

// NewSession restores any persisted credential from the store. A missing or
// unreadable store entry means unauthenticated; the backend gets to reject a
// stale token later, there is no upfront verification or refresh.
func NewSession(store TokenStore) *Session {
	s := &Session{store: store}
	if store != nil {
		token, identity, ok, err := store.Load()
		if err == nil && ok {
			s.token = token
			s.identity = identity
		}
	}
	return s
}

func (s *Session) Login(token string, identity api.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.identity = identity
	if s.store != nil {
		return s.store.Save(token, identity)
	}
	return nil
}

func (s *Session) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.identity = api.Identity{}
	if s.store != nil {
		return s.store.Clear()
	}
	return nil
}

// Token implements api.TokenSource.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *Session) Identity() (api.Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity, s.token != ""
}

func (s *Session) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != ""
}

func (s *Session) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != "" && s.identity.IsAdmin
}
