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

// PackageLister lists packages for the admin console.
type PackageLister interface {
	ListPackages(ctx context.Context) ([]models.PackageDB, error)
}

// PackageCreator creates packages.
type PackageCreator interface {
	CreatePackage(ctx context.Context, req models.PackageRequest) (int64, error)
}

// PackageUpdater updates packages.
type PackageUpdater interface {
	UpdatePackage(ctx context.Context, id int64, req models.PackageRequest) error
}

// PackageDeleter deletes packages.
type PackageDeleter interface {
	DeletePackage(ctx context.Context, id int64) error
}

// NewListPackagesHandler returns an HTTP handler listing packages.
// @Summary List packages
// @Tags admin
// @Produce json
// @Success 200 {array} models.PackageDB
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /admin/api/packages [get]
func NewListPackagesHandler(svc PackageLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		packages, err := svc.ListPackages(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list packages", "err", err)
			writeError(w, http.StatusInternalServerError, msgInternalJSON)
			return
		}
		if packages == nil {
			packages = []models.PackageDB{}
		}
		writeJSON(w, http.StatusOK, packages)
	}
}

// NewCreatePackageHandler returns an HTTP handler creating a package.
// @Summary Create package
// @Tags admin
// @Accept json
// @Produce json
// @Param package body models.PackageRequest true "Package"
// @Success 201 {object} models.CreatedResponse
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /admin/api/packages [post]
func NewCreatePackageHandler(svc PackageCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.PackageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		id, err := svc.CreatePackage(r.Context(), req)
		if err != nil {
			writePackageError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, models.CreatedResponse{Message: "Package created successfully", ID: id})
	}
}

// NewUpdatePackageHandler returns an HTTP handler updating a package.
// @Summary Update package
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Package ID"
// @Param package body models.PackageRequest true "Package"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 404 {object} models.ErrorResponse "Package not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /admin/api/packages/{id} [put]
func NewUpdatePackageHandler(svc PackageUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(r)
		if !ok {
			writeError(w, http.StatusBadRequest, msgInvalidID)
			return
		}
		var req models.PackageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		if err := svc.UpdatePackage(r.Context(), id, req); err != nil {
			writePackageError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Package updated successfully"})
	}
}

// NewDeletePackageHandler returns an HTTP handler deleting a package and its orders.
// @Summary Delete package
// @Tags admin
// @Produce json
// @Param id path int true "Package ID"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse "Invalid id"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /admin/api/packages/{id} [delete]
func NewDeletePackageHandler(svc PackageDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(r)
		if !ok {
			writeError(w, http.StatusBadRequest, msgInvalidID)
			return
		}
		if err := svc.DeletePackage(r.Context(), id); err != nil {
			logger.Log.Errorw("failed to delete package", "package_id", id, "err", err)
			writeError(w, http.StatusInternalServerError, msgInternalJSON)
			return
		}
		writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Package deleted successfully"})
	}
}

func writePackageError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		writeError(w, http.StatusBadRequest, "Name is required and price must not be negative")
	case errors.Is(err, services.ErrNotFound):
		writeError(w, http.StatusNotFound, "Package not found")
	default:
		logger.Log.Errorw("package mutation failed", "err", err)
		writeError(w, http.StatusInternalServerError, msgInternalJSON)
	}
}
