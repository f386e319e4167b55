package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-venue-booking/internal/logger"
	"github.com/sbilibin2017/gw-venue-booking/internal/models"
	"github.com/sbilibin2017/gw-venue-booking/internal/sessions"
)

// Redirect targets and flash texts of the route guards.
const (
	LoginPath        = "/auth/login"
	HomePath         = "/"
	MsgLoginRequired = "Login Terlebih Dahulu"
	MsgAdminOnly     = "Halaman ini hanya untuk admin"
)

// SessionSaver persists the session so a queued flash survives the redirect.
type SessionSaver interface {
	Save(ctx context.Context, w http.ResponseWriter, s *sessions.Session) error
}

// RequireSession lets only requests with a logged-in session through.
// Others, including fetch calls sending JSON, are redirected to the login
// page with a flash message.
func RequireSession(saver SessionSaver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s := sessions.FromContext(r.Context())
			if !s.IsAuthenticated() {
				deny(w, r, saver, s, LoginPath, MsgLoginRequired)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin guards the whole admin area with one predicate: the session
// must carry an identity with the admin flag. Anonymous callers go to the
// login page, authenticated non-admins go home.
func RequireAdmin(saver SessionSaver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s := sessions.FromContext(r.Context())
			switch {
			case !s.IsAuthenticated():
				deny(w, r, saver, s, LoginPath, MsgLoginRequired)
			case !s.IsAdmin():
				logger.Log.Infow("admin access denied", "user_id", s.User.UserID, "uri", r.RequestURI)
				deny(w, r, saver, s, HomePath, MsgAdminOnly)
			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}

func deny(w http.ResponseWriter, r *http.Request, saver SessionSaver, s *sessions.Session, location, flash string) {
	s.AddFlash(sessions.FlashError, flash)
	if err := saver.Save(r.Context(), w, s); err != nil {
		logger.Log.Errorw("failed to save session", "error", err)
	}
	http.Redirect(w, r, location, http.StatusSeeOther)
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(models.ErrorResponse{Message: message}); err != nil {
		logger.Log.Errorw("failed to encode error response", "error", err)
	}
}
