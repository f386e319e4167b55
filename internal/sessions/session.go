// Package sessions keeps server-side session state behind a pluggable Store.
// The client only holds a signed token naming the session id.
package sessions

import (
	"context"
	"errors"
	"time"

	"github.com/sbilibin2017/gw-venue-booking/internal/models"
)

// Flash kinds rendered by the page templates.
const (
	FlashSuccess = "success_msg"
	FlashError   = "error_msg"
)

// ErrNotFound is returned by a Store when the id is unknown or expired.
var ErrNotFound = errors.New("session not found")

// Session is the server-held state of one browser.
type Session struct {
	ID      string              `json:"-"`
	User    *models.SessionUser `json:"user,omitempty"`
	Flashes map[string][]string `json:"flashes,omitempty"`
}

// Store persists sessions by id with a TTL.
type Store interface {
	Get(ctx context.Context, id string) (*Session, error)
	Set(ctx context.Context, s *Session, ttl time.Duration) error
	Destroy(ctx context.Context, id string) error
}

// IsAuthenticated reports whether the session carries an identity.
func (s *Session) IsAuthenticated() bool {
	return s != nil && s.User != nil
}

// IsAdmin reports whether the session identity has admin privilege.
func (s *Session) IsAdmin() bool {
	return s.IsAuthenticated() && s.User.IsAdmin
}

// AddFlash queues a message for the next rendered page.
func (s *Session) AddFlash(kind, message string) {
	if s.Flashes == nil {
		s.Flashes = make(map[string][]string)
	}
	s.Flashes[kind] = append(s.Flashes[kind], message)
}

// PopFlashes returns and clears the queued messages.
func (s *Session) PopFlashes() map[string][]string {
	flashes := s.Flashes
	s.Flashes = nil
	if flashes == nil {
		return map[string][]string{}
	}
	return flashes
}

type contextKey struct{}

var sessionKey = contextKey{}

// WithSession stores s in ctx.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// FromContext returns the session loaded by Manager.Middleware.
// A fresh anonymous session is returned when none is present.
func FromContext(ctx context.Context) *Session {
	if s, ok := ctx.Value(sessionKey).(*Session); ok && s != nil {
		return s
	}
	return &Session{}
}
