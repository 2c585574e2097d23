// Package session holds the bearer credential shared by the HTTP client and
// the auth slice. The auth slice and the HTTP client's 401 handler are the only
// writers; everything else reads.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"adminconsole/pkg/logger"
)

// ErrNotJWT is returned by Claims for empty and demo tokens.
var ErrNotJWT = errors.New("token is not a JWT")

// Session is the current bearer credential backed by a durable Store.
type Session struct {
	mutex sync.RWMutex
	store Store
	token string
}

// New loads the persisted token, if any. A token present at startup is
// trusted optimistically until a profile fetch proves otherwise.
func New(store Store) (*Session, error) {
	token, err := store.Get(StorageKey)
	if err != nil {
		return nil, err
	}
	return &Session{store: store, token: token}, nil
}

// Token returns the current bearer token, or "" when signed out.
func (s *Session) Token() string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.token
}

// IsAuthenticated reports whether a token is held.
func (s *Session) IsAuthenticated() bool {
	return s.Token() != ""
}

// IsDemo reports whether the held token is a local demo token.
func (s *Session) IsDemo() bool {
	return IsDemoToken(s.Token())
}

// Set stores a newly issued token. The in-memory token only changes once the
// store accepted it.
func (s *Session) Set(token string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if err := s.store.Set(StorageKey, token); err != nil {
		logger.Warn("Failed to persist session token: %v", err)
		return err
	}
	s.token = token
	return nil
}

// Clear forgets the token in memory and in durable storage.
func (s *Session) Clear() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.token = ""
	if err := s.store.Delete(StorageKey); err != nil {
		logger.Warn("Failed to remove session token: %v", err)
		return err
	}
	return nil
}

// Claims is the subset of token claims the console shows.
type Claims struct {
	Subject   string
	ExpiresAt *time.Time
}

// Claims decodes the token payload without verifying its signature; the
// server stays the authority on validity.
func (s *Session) Claims() (*Claims, error) {
	token := s.Token()
	if token == "" || IsDemoToken(token) {
		return nil, ErrNotJWT
	}

	registered := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, registered); err != nil {
		return nil, ErrNotJWT
	}

	claims := &Claims{Subject: registered.Subject}
	if registered.ExpiresAt != nil {
		exp := registered.ExpiresAt.Time
		claims.ExpiresAt = &exp
	}
	return claims, nil
}

// Expired reports whether the token carries an expiry that has passed.
func (s *Session) Expired(now time.Time) bool {
	claims, err := s.Claims()
	if err != nil || claims.ExpiresAt == nil {
		return false
	}
	return now.After(*claims.ExpiresAt)
}
