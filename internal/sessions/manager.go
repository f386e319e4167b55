package sessions

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-venue-booking/internal/jwt"
	"github.com/sbilibin2017/gw-venue-booking/internal/logger"
)

// Tokener signs and verifies the session cookie value.
type Tokener interface {
	Generate(ctx context.Context, sessionID string) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	CookieName() string
	Expiration() time.Duration
}

// Manager loads sessions for incoming requests and persists changes.
type Manager struct {
	store   Store
	tokener Tokener
	ttl     time.Duration
	secure  bool
}

// NewManager creates a Manager. Stored sessions and cookies live as long as
// the tokens tokener issues. secure marks the cookie as HTTPS-only.
func NewManager(store Store, tokener Tokener, secure bool) *Manager {
	return &Manager{store: store, tokener: tokener, ttl: tokener.Expiration(), secure: secure}
}

// Middleware attaches the caller's session to the request context.
// A missing, forged or expired cookie yields an anonymous session.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		next.ServeHTTP(w, r.WithContext(WithSession(ctx, m.load(ctx, r))))
	})
}

func (m *Manager) load(ctx context.Context, r *http.Request) *Session {
	token, err := m.tokener.GetTokenFromRequest(ctx, r)
	if err != nil {
		return &Session{}
	}

	claims, err := m.tokener.GetClaims(ctx, token)
	if err != nil {
		logger.Log.Debugw("rejected session cookie", "error", err)
		return &Session{}
	}

	s, err := m.store.Get(ctx, claims.SessionID)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger.Log.Errorw("failed to load session", "error", err)
		}
		return &Session{}
	}
	return s
}

// Save persists s, issuing a new id and cookie for sessions not stored yet.
func (m *Manager) Save(ctx context.Context, w http.ResponseWriter, s *Session) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if err := m.store.Set(ctx, s, m.ttl); err != nil {
		return err
	}
	return m.writeCookie(ctx, w, s.ID)
}

// Renew moves s to a fresh id. It is called when the privilege level changes
// so an id known before login cannot be reused afterwards.
func (m *Manager) Renew(ctx context.Context, w http.ResponseWriter, s *Session) error {
	if s.ID != "" {
		if err := m.store.Destroy(ctx, s.ID); err != nil {
			return err
		}
	}
	s.ID = ""
	return m.Save(ctx, w, s)
}

// Destroy removes s from the store and expires the cookie.
func (m *Manager) Destroy(ctx context.Context, w http.ResponseWriter, s *Session) error {
	if s.ID != "" {
		if err := m.store.Destroy(ctx, s.ID); err != nil {
			return err
		}
	}
	s.ID = ""
	s.User = nil
	s.Flashes = nil

	http.SetCookie(w, &http.Cookie{
		Name:     m.tokener.CookieName(),
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (m *Manager) writeCookie(ctx context.Context, w http.ResponseWriter, id string) error {
	token, err := m.tokener.Generate(ctx, id)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     m.tokener.CookieName(),
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
