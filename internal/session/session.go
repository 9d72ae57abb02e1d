// Package session holds per-visitor client state for the web UI: the opaque
// bearer token issued by the reporting API, the cached user profile, and the
// theme preference. Nothing here validates the token; expiry only surfaces
// as a failed API call.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/reuniteapp/reunite/internal/api"
)

// ErrNotFound reports a missing session record.
var ErrNotFound = errors.New("session not found")

// Theme is the cached UI theme preference. It is independent of the auth
// state and survives logout.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme coerces unknown values to the light default.
func ParseTheme(value string) Theme {
	if Theme(value) == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

// Session is one visitor's persisted client state.
type Session struct {
	ID        string
	Token     string
	User      *api.User
	Theme     Theme
	CreatedAt time.Time
	UpdatedAt time.Time
}

// New creates an empty session with the given ID.
func New(id string) Session {
	now := time.Now().UTC()
	return Session{ID: id, Theme: ThemeLight, CreatedAt: now, UpdatedAt: now}
}

// SetAuth stores the token and user profile together. This is the only
// mutation driven by API responses.
func (s *Session) SetAuth(token string, user api.User) {
	s.Token = token
	copied := user
	s.User = &copied
}

// ClearAuth removes the token and user profile together. The theme
// preference is kept. Calling it twice observes the same state as once.
func (s *Session) ClearAuth() {
	s.Token = ""
	s.User = nil
}

// IsLoggedIn reports token presence. No token format checks are performed.
func (s Session) IsLoggedIn() bool {
	return s.Token != ""
}

// IsAdmin reports whether a cached user profile marks the visitor as an
// admin. It is never true when IsLoggedIn is false.
func (s Session) IsAdmin() bool {
	return s.IsLoggedIn() && s.User != nil && s.User.IsAdmin
}

// Repository is the persistence seam for sessions so the store can be
// swapped for an in-memory fake under test.
type Repository interface {
	// Get loads a session by ID, returning ErrNotFound when absent.
	Get(ctx context.Context, id string) (Session, error)
	// Put inserts or replaces a session record.
	Put(ctx context.Context, sess Session) error
	// Delete removes a session by ID. Deleting an absent session is not an
	// error.
	Delete(ctx context.Context, id string) error
}
