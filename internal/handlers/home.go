package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-venue-booking/internal/logger"
	"github.com/sbilibin2017/gw-venue-booking/internal/models"
	"github.com/sbilibin2017/gw-venue-booking/internal/services"
	"github.com/sbilibin2017/gw-venue-booking/internal/sessions"
	"github.com/sbilibin2017/gw-venue-booking/internal/views"
)

const msgPackageNotFound = "Paket tidak ditemukan."

// Cataloguer serves the package catalogue.
type Cataloguer interface {
	Packages(ctx context.Context) ([]models.PackageDB, error)
	Package(ctx context.Context, id int64) (*models.PackageDB, error)
}

// NewHomeHandler renders the landing page with the package list.
func NewHomeHandler(svc Cataloguer, renderer Renderer, sm SessionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		packages, err := svc.Packages(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list packages", "err", err)
			http.Error(w, msgInternalError, http.StatusInternalServerError)
			return
		}
		renderPage(w, r, renderer, sm, views.PageHome, "Beranda", packages)
	}
}

// NewCheckoutHandler renders the checkout page of /pemesanan/{packageId}.
func NewCheckoutHandler(svc Cataloguer, renderer Renderer, sm SessionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "packageId"), 10, 64)
		if err != nil || id <= 0 {
			redirectWithFlash(w, r, sm, sessions.FlashError, msgPackageNotFound, "/")
			return
		}

		pkg, err := svc.Package(r.Context(), id)
		if err != nil {
			if errors.Is(err, services.ErrPackageNotFound) {
				redirectWithFlash(w, r, sm, sessions.FlashError, msgPackageNotFound, "/")
				return
			}
			redirectWithFlash(w, r, sm, sessions.FlashError, msgInternalError, "/")
			return
		}
		renderPage(w, r, renderer, sm, views.PageCheckout, "Pemesanan", pkg)
	}
}
