// Package jwt signs the session cookie: the cookie carries an HS256 token whose
// claims hold the server-side session id.
package jwt

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultCookieName is the cookie that carries the signed session token.
const DefaultCookieName = "booking.sid"

// Claims are the claims stored in a session token.
type Claims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// JWT provides methods to generate and validate session tokens.
type JWT struct {
	secretKey  string
	exp        time.Duration
	cookieName string
}

// Option configures a JWT.
type Option func(*JWT)

// WithSecretKey sets the HMAC signing key.
func WithSecretKey(key string) Option {
	return func(j *JWT) { j.secretKey = key }
}

// WithExpiration sets how long a token stays valid.
func WithExpiration(exp time.Duration) Option {
	return func(j *JWT) { j.exp = exp }
}

// WithCookieName overrides DefaultCookieName.
func WithCookieName(name string) Option {
	return func(j *JWT) { j.cookieName = name }
}

// New creates a new JWT instance. Tokens expire after 24 hours unless configured otherwise.
func New(opts ...Option) *JWT {
	j := &JWT{
		exp:        24 * time.Hour,
		cookieName: DefaultCookieName,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// CookieName returns the name of the session cookie.
func (j *JWT) CookieName() string {
	return j.cookieName
}

// Expiration returns the token lifetime. The session manager reuses it for
// the cookie and the stored session.
func (j *JWT) Expiration() time.Duration {
	return j.exp
}

// Generate creates a signed token for sessionID.
func (j *JWT) Generate(ctx context.Context, sessionID string) (string, error) {
	now := time.Now()
	claims := Claims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.exp)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

// GetClaims parses and verifies tokenString.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.SessionID == "" {
		return nil, errors.New("session id not found in token")
	}
	return claims, nil
}

// GetTokenFromRequest extracts the token string from the session cookie.
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	cookie, err := r.Cookie(j.cookieName)
	if err != nil {
		return "", errors.New("session cookie missing")
	}
	if cookie.Value == "" {
		return "", errors.New("session cookie empty")
	}
	return cookie.Value, nil
}
