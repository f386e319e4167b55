package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-venue-booking/internal/logger"
	"github.com/sbilibin2017/gw-venue-booking/internal/models"
)

// Pinger checks a backing dependency.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// NewHealthHandler reports whether the database answers within a second.
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} models.MessageResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /healthz [get]
func NewHealthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			logger.Log.Errorw("health check failed", "err", err)
			writeError(w, http.StatusServiceUnavailable, "database unavailable")
			return
		}
		writeJSON(w, http.StatusOK, models.MessageResponse{Message: "ok"})
	}
}
