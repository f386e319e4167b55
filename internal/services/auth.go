package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/sbilibin2017/gw-venue-booking/internal/logger"
	"github.com/sbilibin2017/gw-venue-booking/internal/models"
	"github.com/sbilibin2017/gw-venue-booking/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

const resetTokenTTL = time.Hour

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Create(ctx context.Context, username, email, passwordHash string, verificationToken *string, isVerified, isAdmin bool) (int64, error)
	Verify(ctx context.Context, token string) (bool, error)
	SetResetToken(ctx context.Context, email, token string, expiresAt time.Time) (bool, error)
	ResetPassword(ctx context.Context, email, token, passwordHash string, now time.Time) (bool, error)
}

// AuthNotifier delivers account emails.
type AuthNotifier interface {
	SendVerification(ctx context.Context, email, link string) error
	SendPasswordReset(ctx context.Context, email, link string) error
}

// AuthService handles registration, login, email verification and password reset.
type AuthService struct {
	reader   UserReader
	writer   UserWriter
	notifier AuthNotifier
	baseURL  string
	now      func() time.Time
}

// NewAuthService creates a new AuthService. baseURL prefixes the links sent by email.
func NewAuthService(reader UserReader, writer UserWriter, notifier AuthNotifier, baseURL string) *AuthService {
	return &AuthService{
		reader:   reader,
		writer:   writer,
		notifier: notifier,
		baseURL:  strings.TrimRight(baseURL, "/"),
		now:      time.Now,
	}
}

// dummyHash is compared against when the user does not exist so both
// outcomes of a login attempt cost one bcrypt comparison.
var dummyHash = sync.OnceValue(func() []byte {
	hash, _ := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcrypt.DefaultCost)
	return hash
})

// Register creates an unverified user and emails the verification link.
// The verification token is returned even when delivery fails; the user row
// is kept in that case and ErrDeliveryFailure is returned.
func (svc *AuthService) Register(ctx context.Context, username, email, password string) (string, error) {
	if username == "" || email == "" || password == "" {
		return "", fmt.Errorf("%w: nama, email and password are required", ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return "", err
	}

	token, err := newToken()
	if err != nil {
		logger.Log.Errorw("failed to generate verification token", "err", err)
		return "", err
	}

	if _, err := svc.writer.Create(ctx, username, email, string(hash), &token, false, false); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			logger.Log.Infow("registration rejected: duplicate identity", "username", username, "email", email)
			return "", ErrDuplicateIdentity
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return "", err
	}

	link := svc.baseURL + "/auth/verify-email?token=" + url.QueryEscape(token)
	if err := svc.notifier.SendVerification(ctx, email, link); err != nil {
		logger.Log.Errorw("failed to send verification email", "email", email, "err", err)
		return token, fmt.Errorf("%w: %v", ErrDeliveryFailure, err)
	}

	return token, nil
}

// Login checks the credentials and returns the identity to keep in the session.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*models.SessionUser, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}

	if user == nil {
		_ = bcrypt.CompareHashAndPassword(dummyHash(), []byte(password))
		logger.Log.Infow("login failed: unknown email", "email", email)
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("login failed: wrong password", "email", email)
		return nil, ErrInvalidCredentials
	}

	if !user.IsVerified {
		return nil, ErrEmailNotVerified
	}

	return &models.SessionUser{
		UserID:   user.UserID,
		Username: user.Username,
		Email:    user.Email,
		IsAdmin:  user.IsAdmin,
	}, nil
}

// VerifyEmail consumes a verification token.
func (svc *AuthService) VerifyEmail(ctx context.Context, token string) error {
	if token == "" {
		return ErrInvalidToken
	}

	ok, err := svc.writer.Verify(ctx, token)
	if err != nil {
		logger.Log.Errorw("failed to verify email", "err", err)
		return err
	}
	if !ok {
		return ErrInvalidToken
	}
	return nil
}

// ForgotPassword issues a reset token valid for one hour and emails the reset link.
func (svc *AuthService) ForgotPassword(ctx context.Context, email string) error {
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	token, err := newToken()
	if err != nil {
		logger.Log.Errorw("failed to generate reset token", "err", err)
		return err
	}

	ok, err := svc.writer.SetResetToken(ctx, user.Email, token, svc.now().Add(resetTokenTTL))
	if err != nil {
		logger.Log.Errorw("failed to store reset token", "err", err)
		return err
	}
	if !ok {
		return ErrUserNotFound
	}

	link := svc.baseURL + "/auth/reset-password?token=" + url.QueryEscape(token) +
		"&email=" + url.QueryEscape(user.Email)
	if err := svc.notifier.SendPasswordReset(ctx, user.Email, link); err != nil {
		logger.Log.Errorw("failed to send reset email", "email", user.Email, "err", err)
		return fmt.Errorf("%w: %v", ErrDeliveryFailure, err)
	}
	return nil
}

// ResetPassword sets a new password if token is the unexpired reset token of email.
// The token is cleared in the same statement, so it cannot be used twice.
func (svc *AuthService) ResetPassword(ctx context.Context, email, token, newPassword string) error {
	if email == "" || token == "" || newPassword == "" {
		return fmt.Errorf("%w: token, email and password are required", ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	ok, err := svc.writer.ResetPassword(ctx, email, token, string(hash), svc.now())
	if err != nil {
		logger.Log.Errorw("failed to reset password", "err", err)
		return err
	}
	if !ok {
		return ErrInvalidOrExpiredToken
	}
	return nil
}

// newToken returns 32 random bytes hex encoded.
func newToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
