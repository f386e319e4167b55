package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-venue-booking/internal/logger"
	"github.com/sbilibin2017/gw-venue-booking/internal/models"
	"github.com/sbilibin2017/gw-venue-booking/internal/sessions"
	"github.com/sbilibin2017/gw-venue-booking/internal/views"
)

// Flash texts shared by several handlers.
const (
	msgInternalError = "Terjadi Kesalahan"
	msgInternalJSON  = "Internal server error"
	msgInvalidBody   = "Invalid request body"
	msgInvalidID     = "Invalid id"
)

// Renderer renders HTML pages.
type Renderer interface {
	Render(w http.ResponseWriter, status int, page string, data views.PageData) error
}

// SessionManager persists session changes and rotates session ids.
type SessionManager interface {
	Save(ctx context.Context, w http.ResponseWriter, s *sessions.Session) error
	Renew(ctx context.Context, w http.ResponseWriter, s *sessions.Session) error
	Destroy(ctx context.Context, w http.ResponseWriter, s *sessions.Session) error
}

// redirectWithFlash queues a flash message and answers with 303 to location.
func redirectWithFlash(w http.ResponseWriter, r *http.Request, sm SessionManager, kind, message, location string) {
	s := sessions.FromContext(r.Context())
	s.AddFlash(kind, message)
	if err := sm.Save(r.Context(), w, s); err != nil {
		logger.Log.Errorw("failed to save session", "err", err)
	}
	http.Redirect(w, r, location, http.StatusSeeOther)
}

// renderPage renders page with the caller's identity and pending flashes.
// Flashes are consumed, so the session is written back when there were any.
func renderPage(w http.ResponseWriter, r *http.Request, renderer Renderer, sm SessionManager, page, title string, data any) {
	s := sessions.FromContext(r.Context())
	flashes := s.PopFlashes()
	if len(flashes) > 0 && s.ID != "" {
		if err := sm.Save(r.Context(), w, s); err != nil {
			logger.Log.Errorw("failed to save session", "err", err)
		}
	}

	if err := renderer.Render(w, http.StatusOK, page, views.PageData{
		Title:   title,
		User:    s.User,
		Flashes: flashes,
		Data:    data,
	}); err != nil {
		logger.Log.Errorw("failed to render page", "page", page, "err", err)
		http.Error(w, msgInternalError, http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, models.ErrorResponse{Message: message})
}

// urlID parses the {id} route parameter.
func urlID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
