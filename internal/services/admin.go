package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sbilibin2017/gw-venue-booking/internal/logger"
	"github.com/sbilibin2017/gw-venue-booking/internal/models"
	"github.com/sbilibin2017/gw-venue-booking/internal/repositories"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// UserAdminRepository manages user rows.
type UserAdminRepository interface {
	List(ctx context.Context) ([]models.UserView, error)
	Create(ctx context.Context, username, email, passwordHash string, verificationToken *string, isVerified, isAdmin bool) (int64, error)
	Update(ctx context.Context, id int64, username, email string, passwordHash *string, isAdmin *bool) (bool, error)
	Delete(ctx context.Context, id int64) error
}

// PackageAdminRepository manages package rows.
type PackageAdminRepository interface {
	List(ctx context.Context) ([]models.PackageDB, error)
	Create(ctx context.Context, name string, price decimal.Decimal) (int64, error)
	Update(ctx context.Context, id int64, name string, price decimal.Decimal) (bool, error)
	Delete(ctx context.Context, id int64) error
}

// OrderAdminRepository lists and removes orders.
type OrderAdminRepository interface {
	List(ctx context.Context) ([]models.OrderView, error)
	Delete(ctx context.Context, id int64) error
}

// StatsReader reads dashboard aggregates.
type StatsReader interface {
	Get(ctx context.Context) (*models.Stats, error)
}

// AdminService backs the admin console.
type AdminService struct {
	users    UserAdminRepository
	packages PackageAdminRepository
	orders   OrderAdminRepository
	stats    StatsReader
}

// NewAdminService creates a new AdminService.
func NewAdminService(
	users UserAdminRepository,
	packages PackageAdminRepository,
	orders OrderAdminRepository,
	stats StatsReader,
) *AdminService {
	return &AdminService{
		users:    users,
		packages: packages,
		orders:   orders,
		stats:    stats,
	}
}

func (svc *AdminService) ListUsers(ctx context.Context) ([]models.UserView, error) {
	return svc.users.List(ctx)
}

// CreateUser adds a verified user with a hashed password.
func (svc *AdminService) CreateUser(ctx context.Context, req models.CreateUserRequest) (int64, error) {
	if strings.TrimSpace(req.Username) == "" || strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return 0, fmt.Errorf("%w: username, email and password are required", ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return 0, err
	}

	id, err := svc.users.Create(ctx, req.Username, req.Email, string(hash), nil, true, req.IsAdmin)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return 0, ErrDuplicateIdentity
		}
		logger.Log.Errorw("failed to create user", "err", err)
		return 0, err
	}
	return id, nil
}

// UpdateUser changes a user. The password is rehashed only when a new one is given.
func (svc *AdminService) UpdateUser(ctx context.Context, id int64, req models.UpdateUserRequest) error {
	if strings.TrimSpace(req.Username) == "" || strings.TrimSpace(req.Email) == "" {
		return fmt.Errorf("%w: username and email are required", ErrValidation)
	}

	var passwordHash *string
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			logger.Log.Errorw("failed to hash password", "err", err)
			return err
		}
		h := string(hash)
		passwordHash = &h
	}

	ok, err := svc.users.Update(ctx, id, req.Username, req.Email, passwordHash, req.IsAdmin)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return ErrDuplicateIdentity
		}
		logger.Log.Errorw("failed to update user", "user_id", id, "err", err)
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

// DeleteUser removes a user and its orders. Deleting a missing user succeeds.
func (svc *AdminService) DeleteUser(ctx context.Context, id int64) error {
	return svc.users.Delete(ctx, id)
}

func (svc *AdminService) ListPackages(ctx context.Context) ([]models.PackageDB, error) {
	return svc.packages.List(ctx)
}

func (svc *AdminService) CreatePackage(ctx context.Context, req models.PackageRequest) (int64, error) {
	if err := validatePackage(req); err != nil {
		return 0, err
	}
	return svc.packages.Create(ctx, strings.TrimSpace(req.Name), req.Price)
}

func (svc *AdminService) UpdatePackage(ctx context.Context, id int64, req models.PackageRequest) error {
	if err := validatePackage(req); err != nil {
		return err
	}

	ok, err := svc.packages.Update(ctx, id, strings.TrimSpace(req.Name), req.Price)
	if err != nil {
		logger.Log.Errorw("failed to update package", "package_id", id, "err", err)
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

// DeletePackage removes a package and the orders referencing it.
func (svc *AdminService) DeletePackage(ctx context.Context, id int64) error {
	return svc.packages.Delete(ctx, id)
}

func (svc *AdminService) ListOrders(ctx context.Context) ([]models.OrderView, error) {
	return svc.orders.List(ctx)
}

func (svc *AdminService) DeleteOrder(ctx context.Context, id int64) error {
	return svc.orders.Delete(ctx, id)
}

func (svc *AdminService) Stats(ctx context.Context) (*models.Stats, error) {
	return svc.stats.Get(ctx)
}

func validatePackage(req models.PackageRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if req.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	return nil
}
