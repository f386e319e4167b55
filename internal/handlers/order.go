package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/sbilibin2017/gw-venue-booking/internal/logger"
	"github.com/sbilibin2017/gw-venue-booking/internal/models"
	"github.com/sbilibin2017/gw-venue-booking/internal/services"
	"github.com/sbilibin2017/gw-venue-booking/internal/sessions"
	"github.com/shopspring/decimal"
)

// Flash texts of the checkout flow.
const (
	msgOrderPlaced      = "Detail pesanan telah dikirimkan ke email Anda."
	msgOrderLoginNeeded = "Anda harus login untuk membuat pesanan."
	msgOrderIncomplete  = "Nama dan email harus diisi."
	msgInvalidDateTime  = "Tanggal atau jam tidak valid."
	msgSlotUnavailable  = "Jadwal tidak tersedia."
)

// OrderPlacer books packages.
type OrderPlacer interface {
	PlaceOrder(ctx context.Context, user *models.SessionUser, req models.OrderRequest) (*models.OrderDB, error)
}

// NewSubmitOrderHandler handles the checkout form. A JSON body with
// selectedPackage is accepted as well.
func NewSubmitOrderHandler(svc OrderPlacer, sm SessionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := decodeOrderRequest(r)
		if err != nil {
			logger.Log.Infow("invalid order request", "err", err)
			redirectWithFlash(w, r, sm, sessions.FlashError, msgPackageNotFound, "/")
			return
		}

		back := checkoutPath(req.SelectedPackage.PackageID)
		s := sessions.FromContext(r.Context())

		order, err := svc.PlaceOrder(r.Context(), s.User, req)
		switch {
		case err == nil:
			logger.Log.Infow("order placed", "order_id", order.OrderID, "user_id", order.UserID)
			redirectWithFlash(w, r, sm, sessions.FlashSuccess, msgOrderPlaced, "/")
		case errors.Is(err, services.ErrAuthenticationRequired):
			redirectWithFlash(w, r, sm, sessions.FlashError, msgOrderLoginNeeded, "/auth/login")
		case errors.Is(err, services.ErrValidation):
			redirectWithFlash(w, r, sm, sessions.FlashError, msgOrderIncomplete, back)
		case errors.Is(err, services.ErrPackageNotFound):
			redirectWithFlash(w, r, sm, sessions.FlashError, msgPackageNotFound, back)
		case errors.Is(err, services.ErrInvalidDateTime):
			redirectWithFlash(w, r, sm, sessions.FlashError, msgInvalidDateTime, back)
		case errors.Is(err, services.ErrSlotUnavailable):
			redirectWithFlash(w, r, sm, sessions.FlashError, slotMessage(err), back)
		default:
			logger.Log.Errorw("failed to place order", "err", err)
			redirectWithFlash(w, r, sm, sessions.FlashError, msgInternalError, back)
		}
	}
}

func decodeOrderRequest(r *http.Request) (models.OrderRequest, error) {
	var req models.OrderRequest
	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return req, fmt.Errorf("decode body: %w", err)
		}
		return req, nil
	}

	if err := r.ParseForm(); err != nil {
		return req, fmt.Errorf("parse form: %w", err)
	}
	id, err := strconv.ParseInt(r.PostFormValue("package_id"), 10, 64)
	if err != nil {
		return req, fmt.Errorf("package_id: %w", err)
	}
	price, err := decimal.NewFromString(strings.TrimSpace(r.PostFormValue("package_price")))
	if err != nil {
		return req, fmt.Errorf("package_price: %w", err)
	}

	req.Name = strings.TrimSpace(r.PostFormValue("nama"))
	req.Email = strings.TrimSpace(r.PostFormValue("email"))
	req.Date = r.PostFormValue("tanggal")
	req.Time = r.PostFormValue("jam")
	req.SelectedPackage = models.SelectedPackage{
		PackageID: id,
		Name:      r.PostFormValue("package_name"),
		Price:     price,
	}
	return req, nil
}

func checkoutPath(packageID int64) string {
	if packageID <= 0 {
		return "/"
	}
	return "/pemesanan/" + strconv.FormatInt(packageID, 10)
}

// slotMessage extracts the customer facing reason wrapped with ErrSlotUnavailable.
func slotMessage(err error) string {
	prefix := services.ErrSlotUnavailable.Error() + ": "
	if msg, ok := strings.CutPrefix(err.Error(), prefix); ok && msg != "" {
		return msg
	}
	return msgSlotUnavailable
}
