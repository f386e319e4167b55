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

// UserLister lists users for the admin console.
type UserLister interface {
	ListUsers(ctx context.Context) ([]models.UserView, error)
}

// UserCreator creates verified users.
type UserCreator interface {
	CreateUser(ctx context.Context, req models.CreateUserRequest) (int64, error)
}

// UserUpdater updates users.
type UserUpdater interface {
	UpdateUser(ctx context.Context, id int64, req models.UpdateUserRequest) error
}

// UserDeleter deletes users.
type UserDeleter interface {
	DeleteUser(ctx context.Context, id int64) error
}

// NewListUsersHandler returns an HTTP handler listing users.
// @Summary List users
// @Tags admin
// @Produce json
// @Success 200 {array} models.UserView
// @Failure 303 "Redirect to login or home"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /admin/api/users [get]
func NewListUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.ListUsers(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list users", "err", err)
			writeError(w, http.StatusInternalServerError, msgInternalJSON)
			return
		}
		if users == nil {
			users = []models.UserView{}
		}
		writeJSON(w, http.StatusOK, users)
	}
}

// NewCreateUserHandler returns an HTTP handler creating a user.
// @Summary Create user
// @Tags admin
// @Accept json
// @Produce json
// @Param user body models.CreateUserRequest true "User"
// @Success 201 {object} models.CreatedResponse
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 409 {object} models.ErrorResponse "Username or email already exists"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /admin/api/users [post]
func NewCreateUserHandler(svc UserCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CreateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		id, err := svc.CreateUser(r.Context(), req)
		if err != nil {
			writeUserError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, models.CreatedResponse{Message: "User created successfully", ID: id})
	}
}

// NewUpdateUserHandler returns an HTTP handler updating a user.
// @Summary Update user
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param user body models.UpdateUserRequest true "User"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Failure 409 {object} models.ErrorResponse "Username or email already exists"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /admin/api/users/{id} [put]
func NewUpdateUserHandler(svc UserUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(r)
		if !ok {
			writeError(w, http.StatusBadRequest, msgInvalidID)
			return
		}
		var req models.UpdateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		if err := svc.UpdateUser(r.Context(), id, req); err != nil {
			writeUserError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, models.MessageResponse{Message: "User updated successfully"})
	}
}

// NewDeleteUserHandler returns an HTTP handler deleting a user and its orders.
// @Summary Delete user
// @Tags admin
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse "Invalid id"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /admin/api/users/{id} [delete]
func NewDeleteUserHandler(svc UserDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(r)
		if !ok {
			writeError(w, http.StatusBadRequest, msgInvalidID)
			return
		}
		if err := svc.DeleteUser(r.Context(), id); err != nil {
			logger.Log.Errorw("failed to delete user", "user_id", id, "err", err)
			writeError(w, http.StatusInternalServerError, msgInternalJSON)
			return
		}
		writeJSON(w, http.StatusOK, models.MessageResponse{Message: "User deleted successfully"})
	}
}

func writeUserError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		writeError(w, http.StatusBadRequest, "Username, email and password are required")
	case errors.Is(err, services.ErrDuplicateIdentity):
		writeError(w, http.StatusConflict, "Username or email already exists")
	case errors.Is(err, services.ErrNotFound):
		writeError(w, http.StatusNotFound, "User not found")
	default:
		logger.Log.Errorw("user mutation failed", "err", err)
		writeError(w, http.StatusInternalServerError, msgInternalJSON)
	}
}
