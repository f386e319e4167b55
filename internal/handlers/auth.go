package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/sbilibin2017/gw-venue-booking/internal/logger"
	"github.com/sbilibin2017/gw-venue-booking/internal/models"
	"github.com/sbilibin2017/gw-venue-booking/internal/services"
	"github.com/sbilibin2017/gw-venue-booking/internal/sessions"
	"github.com/sbilibin2017/gw-venue-booking/internal/views"
)

// Flash texts of the account pages.
const (
	msgWelcome              = "Selamat Datang User"
	msgInvalidCredentials   = "Email atau Password Salah"
	msgEmailNotVerified     = "Email Kamu Belum Dikonfirmasi"
	msgRegisterIncomplete   = "Nama, email dan password wajib diisi"
	msgRegisterDuplicate    = "Username atau email sudah terdaftar"
	msgRegisterSuccess      = "Registrasi berhasil! Silakan cek email Anda untuk verifikasi."
	msgVerificationNotSent  = "Registrasi berhasil, tetapi email verifikasi gagal dikirim"
	msgEmailVerified        = "Email berhasil diverifikasi! Silakan login"
	msgInvalidVerification  = "Token verifikasi tidak valid"
	msgEmailNotRegistered   = "Email tidak terdaftar"
	msgResetLinkSent        = "Link reset password telah dikirim ke email Anda"
	msgResetIncomplete      = "Data tidak lengkap"
	msgResetInvalid         = "Link reset password tidak valid atau sudah kadaluarsa"
	msgPasswordReset        = "Password berhasil direset. Silakan login dengan password baru"
	msgForgotPasswordFailed = "Terjadi kesalahan saat memproses permintaan"
	msgLogoutFailed         = "Terjadi kesalahan saat logout"
)

// Loginer authenticates credentials.
type Loginer interface {
	Login(ctx context.Context, email, password string) (*models.SessionUser, error)
}

// Registerer creates accounts.
type Registerer interface {
	Register(ctx context.Context, username, email, password string) (string, error)
}

// EmailVerifier consumes verification tokens.
type EmailVerifier interface {
	VerifyEmail(ctx context.Context, token string) error
}

// PasswordForgetter starts a password reset.
type PasswordForgetter interface {
	ForgotPassword(ctx context.Context, email string) error
}

// PasswordResetter completes a password reset.
type PasswordResetter interface {
	ResetPassword(ctx context.Context, email, token, newPassword string) error
}

// NewPageHandler renders a static page with the caller's flashes.
func NewPageHandler(renderer Renderer, sm SessionManager, page, title string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderPage(w, r, renderer, sm, page, title, nil)
	}
}

// NewLoginHandler handles the login form (email_user, password_user).
// On success the session id is rotated before the identity is stored.
func NewLoginHandler(svc Loginer, sm SessionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			redirectWithFlash(w, r, sm, sessions.FlashError, msgInternalError, "/auth/login")
			return
		}

		user, err := svc.Login(r.Context(), strings.TrimSpace(r.PostFormValue("email_user")), r.PostFormValue("password_user"))
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials):
				redirectWithFlash(w, r, sm, sessions.FlashError, msgInvalidCredentials, "/auth/login")
			case errors.Is(err, services.ErrEmailNotVerified):
				redirectWithFlash(w, r, sm, sessions.FlashError, msgEmailNotVerified, "/auth/login")
			default:
				logger.Log.Errorw("login failed", "err", err)
				redirectWithFlash(w, r, sm, sessions.FlashError, msgInternalError, "/auth/login")
			}
			return
		}

		s := sessions.FromContext(r.Context())
		s.User = user
		s.AddFlash(sessions.FlashSuccess, msgWelcome)
		if err := sm.Renew(r.Context(), w, s); err != nil {
			logger.Log.Errorw("failed to store session", "err", err)
			s.User = nil
			s.PopFlashes()
			redirectWithFlash(w, r, sm, sessions.FlashError, msgInternalError, "/auth/login")
			return
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// NewRegisterHandler handles the registration form (nama_user, email_user, password_user).
func NewRegisterHandler(svc Registerer, sm SessionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			redirectWithFlash(w, r, sm, sessions.FlashError, msgRegisterIncomplete, "/auth/register")
			return
		}

		_, err := svc.Register(r.Context(),
			strings.TrimSpace(r.PostFormValue("nama_user")),
			strings.TrimSpace(r.PostFormValue("email_user")),
			r.PostFormValue("password_user"),
		)
		switch {
		case err == nil:
			redirectWithFlash(w, r, sm, sessions.FlashSuccess, msgRegisterSuccess, "/auth/login")
		case errors.Is(err, services.ErrValidation):
			redirectWithFlash(w, r, sm, sessions.FlashError, msgRegisterIncomplete, "/auth/register")
		case errors.Is(err, services.ErrDuplicateIdentity):
			redirectWithFlash(w, r, sm, sessions.FlashError, msgRegisterDuplicate, "/auth/register")
		case errors.Is(err, services.ErrDeliveryFailure):
			redirectWithFlash(w, r, sm, sessions.FlashError, msgVerificationNotSent, "/auth/login")
		default:
			logger.Log.Errorw("registration failed", "err", err)
			redirectWithFlash(w, r, sm, sessions.FlashError, msgInternalError, "/auth/register")
		}
	}
}

// NewVerifyEmailHandler consumes ?token= and redirects to the login page.
func NewVerifyEmailHandler(svc EmailVerifier, sm SessionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := svc.VerifyEmail(r.Context(), r.URL.Query().Get("token"))
		switch {
		case err == nil:
			redirectWithFlash(w, r, sm, sessions.FlashSuccess, msgEmailVerified, "/auth/login")
		case errors.Is(err, services.ErrInvalidToken):
			redirectWithFlash(w, r, sm, sessions.FlashError, msgInvalidVerification, "/auth/register")
		default:
			logger.Log.Errorw("email verification failed", "err", err)
			redirectWithFlash(w, r, sm, sessions.FlashError, msgInternalError, "/auth/login")
		}
	}
}

// NewForgotPasswordHandler handles the forgot password form (email_user).
func NewForgotPasswordHandler(svc PasswordForgetter, sm SessionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			redirectWithFlash(w, r, sm, sessions.FlashError, msgForgotPasswordFailed, "/auth/forgot-password")
			return
		}

		err := svc.ForgotPassword(r.Context(), strings.TrimSpace(r.PostFormValue("email_user")))
		switch {
		case err == nil:
			redirectWithFlash(w, r, sm, sessions.FlashSuccess, msgResetLinkSent, "/auth/login")
		case errors.Is(err, services.ErrUserNotFound), errors.Is(err, services.ErrValidation):
			redirectWithFlash(w, r, sm, sessions.FlashError, msgEmailNotRegistered, "/auth/forgot-password")
		default:
			logger.Log.Errorw("forgot password failed", "err", err)
			redirectWithFlash(w, r, sm, sessions.FlashError, msgForgotPasswordFailed, "/auth/forgot-password")
		}
	}
}

type resetPasswordForm struct {
	Token string
	Email string
}

// NewResetPasswordPageHandler renders the reset form for ?token=&email=.
func NewResetPasswordPageHandler(renderer Renderer, sm SessionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		renderPage(w, r, renderer, sm, views.PageResetPassword, "Reset Password", resetPasswordForm{
			Token: q.Get("token"),
			Email: q.Get("email"),
		})
	}
}

// NewResetPasswordHandler handles the reset form (token, email, password_baru).
func NewResetPasswordHandler(svc PasswordResetter, sm SessionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			redirectWithFlash(w, r, sm, sessions.FlashError, msgResetIncomplete, "/auth/forgot-password")
			return
		}

		err := svc.ResetPassword(r.Context(),
			strings.TrimSpace(r.PostFormValue("email")),
			r.PostFormValue("token"),
			r.PostFormValue("password_baru"),
		)
		switch {
		case err == nil:
			redirectWithFlash(w, r, sm, sessions.FlashSuccess, msgPasswordReset, "/auth/login")
		case errors.Is(err, services.ErrValidation):
			redirectWithFlash(w, r, sm, sessions.FlashError, msgResetIncomplete, "/auth/forgot-password")
		case errors.Is(err, services.ErrInvalidOrExpiredToken):
			redirectWithFlash(w, r, sm, sessions.FlashError, msgResetInvalid, "/auth/forgot-password")
		default:
			logger.Log.Errorw("reset password failed", "err", err)
			redirectWithFlash(w, r, sm, sessions.FlashError, msgInternalError, "/auth/forgot-password")
		}
	}
}

// NewLogoutHandler destroys the session and expires the cookie.
func NewLogoutHandler(sm SessionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := sessions.FromContext(r.Context())
		if err := sm.Destroy(r.Context(), w, s); err != nil {
			logger.Log.Errorw("logout failed", "err", err)
			redirectWithFlash(w, r, sm, sessions.FlashError, msgLogoutFailed, "/")
			return
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
