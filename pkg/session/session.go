// Package session holds the client-local authentication state: the access token and the
// user it resolves to. Token persistence goes through a Store so callers choose where it lives.
package session

import (
	"fmt"
	"sync"
	"time"
)

// User is the current user as returned by GET /users/me.
type User struct {
	ID    string `json:"_id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == AdminRole
}

// Session is the explicit session object shared by the API client and the auth hook.
type Session struct {
	mu    sync.RWMutex
	store Store
	token string
	user  *User
}

// New creates a Session backed by store and loads any persisted token.
func New(store Store) *Session {
	s := &Session{store: store}
	s.Load()
	return s
}

// Load re-reads the persisted token. The user is not touched.
func (s *Session) Load() {
	tok := s.store.Get(TokenKey)
	s.mu.Lock()
	s.token = tok
	s.mu.Unlock()
}

// Store returns the backing store.
func (s *Session) Store() Store {
	return s.store
}

// Token returns the current access token, "" when absent.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// HasToken reports whether an access token is held.
func (s *Session) HasToken() bool {
	return s.Token() != ""
}

// SetToken stores the access token in memory and persists it.
func (s *Session) SetToken(tok string) error {
	s.mu.Lock()
	s.token = tok
	s.mu.Unlock()

	if err := s.store.Set(TokenKey, tok); err != nil {
		return fmt.Errorf("persisting access token: %w", err)
	}
	return nil
}

// ClearToken drops the access token from memory and the store.
func (s *Session) ClearToken() error {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()

	if err := s.store.Remove(TokenKey); err != nil {
		return fmt.Errorf("removing access token: %w", err)
	}
	return nil
}

// Clear drops both the token and the user.
func (s *Session) Clear() error {
	s.SetUser(nil)
	return s.ClearToken()
}

// User returns a copy of the current user, nil when anonymous.
func (s *Session) User() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// SetUser replaces the current user. nil makes the session anonymous.
func (s *Session) SetUser(u *User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u == nil {
		s.user = nil
		return
	}
	cp := *u
	s.user = &cp
}

// IsAuthenticated reports whether a user is resolved.
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

// IsAdmin reports whether the resolved user is an administrator.
func (s *Session) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user.IsAdmin()
}

// TokenExpired reports whether the held token is a JWT whose exp claim is before now.
// Opaque tokens and tokens without exp are never considered expired.
func (s *Session) TokenExpired(now time.Time) bool {
	exp, ok := TokenExpiry(s.Token())
	if !ok {
		return false
	}
	return !now.Before(exp)
}
