package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-venue-booking/internal/logger"
	"github.com/sbilibin2017/gw-venue-booking/internal/models"
	"github.com/sbilibin2017/gw-venue-booking/internal/services"
)

const msgScheduleRequired = "Tanggal dan jam harus diisi."

// ScheduleChecker reports whether the bucket of a date and time is free.
type ScheduleChecker interface {
	Check(ctx context.Context, req models.ScheduleRequest) (*models.ScheduleResponse, error)
}

// NewScheduleHandler returns an HTTP handler for availability checks.
// @Summary Check schedule availability
// @Description Classify the requested time into a bucket and report whether the bucket is free on that date
// @Tags booking
// @Accept json
// @Produce json
// @Param scheduleRequest body models.ScheduleRequest true "Date and time"
// @Success 200 {object} models.ScheduleResponse "Availability of the bucket"
// @Failure 400 {object} models.ErrorResponse "Missing date or time"
// @Failure 303 "Redirect to login"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /cek-jadwal [post]
func NewScheduleHandler(svc ScheduleChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.ScheduleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgScheduleRequired)
			return
		}

		resp, err := svc.Check(r.Context(), req)
		if err != nil {
			if errors.Is(err, services.ErrValidation) {
				writeError(w, http.StatusBadRequest, msgScheduleRequired)
				return
			}
			logger.Log.Errorw("schedule check failed", "err", err)
			writeError(w, http.StatusInternalServerError, msgInternalJSON)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}
