package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-venue-booking/internal/logger"
	"github.com/sbilibin2017/gw-venue-booking/internal/models"
)

// PackageReader reads the package catalogue.
type PackageReader interface {
	GetByID(ctx context.Context, id int64) (*models.PackageDB, error)
	List(ctx context.Context) ([]models.PackageDB, error)
}

// OrderCreator stores an order unless its window is already taken.
type OrderCreator interface {
	CreateInWindow(ctx context.Context, order *models.OrderDB, window models.TimeWindow) (bool, error)
}

// OrderEventPublisher announces stored orders.
type OrderEventPublisher interface {
	PublishOrderCreated(ctx context.Context, event models.OrderCreatedEvent) error
}

// OrderNotifier delivers the order confirmation email.
type OrderNotifier interface {
	SendOrderConfirmation(ctx context.Context, c models.OrderConfirmation) error
}

// BookingService serves the package catalogue and places orders.
type BookingService struct {
	packages  PackageReader
	orders    OrderCreator
	publisher OrderEventPublisher
	notifier  OrderNotifier
}

// NewBookingService creates a new BookingService.
func NewBookingService(
	packages PackageReader,
	orders OrderCreator,
	publisher OrderEventPublisher,
	notifier OrderNotifier,
) *BookingService {
	return &BookingService{
		packages:  packages,
		orders:    orders,
		publisher: publisher,
		notifier:  notifier,
	}
}

// Packages lists the bookable packages.
func (svc *BookingService) Packages(ctx context.Context) ([]models.PackageDB, error) {
	return svc.packages.List(ctx)
}

// Package returns one package or ErrPackageNotFound.
func (svc *BookingService) Package(ctx context.Context, id int64) (*models.PackageDB, error) {
	pkg, err := svc.packages.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get package", "package_id", id, "err", err)
		return nil, err
	}
	if pkg == nil {
		return nil, ErrPackageNotFound
	}
	return pkg, nil
}

// PlaceOrder books the package for the requested date and time.
//
// The package is looked up by id and the name and price shown to the customer
// must match the stored row. The order is charged the stored price. The slot
// check and insert happen atomically in the repository. Once stored, an
// order.created event is published (failures are only logged) and the
// confirmation is mailed; a mail failure returns the stored order together
// with ErrDeliveryFailure.
func (svc *BookingService) PlaceOrder(ctx context.Context, user *models.SessionUser, req models.OrderRequest) (*models.OrderDB, error) {
	if user == nil {
		return nil, ErrAuthenticationRequired
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" {
		return nil, fmt.Errorf("%w: nama and email are required", ErrValidation)
	}

	pkg, err := svc.verifyPackage(ctx, req.SelectedPackage)
	if err != nil {
		return nil, err
	}

	orderDate, err := parseDateTime(req.Date, req.Time)
	if err != nil {
		return nil, err
	}

	slot := Classify(req.Time)
	if slot.Kind != SlotBookable {
		return nil, fmt.Errorf("%w: %s", ErrSlotUnavailable, slot.Message())
	}
	window := Window(req.Date, slot.Bucket)

	order := &models.OrderDB{
		UserID:     user.UserID,
		PackageID:  pkg.PackageID,
		OrderDate:  orderDate,
		TotalPrice: pkg.Price,
	}
	created, err := svc.orders.CreateInWindow(ctx, order, window)
	if err != nil {
		logger.Log.Errorw("failed to create order", "user_id", user.UserID, "err", err)
		return nil, err
	}
	if !created {
		return nil, fmt.Errorf("%w: %s", ErrSlotUnavailable, unavailableMessage(window))
	}

	logger.Log.Infow("order created",
		"order_id", order.OrderID,
		"user_id", order.UserID,
		"package_id", order.PackageID,
		"order_date", order.OrderDate,
	)

	event := models.OrderCreatedEvent{
		OrderID:     order.OrderID,
		UserID:      order.UserID,
		PackageID:   order.PackageID,
		PackageName: pkg.Name,
		OrderDate:   order.OrderDate,
		TotalPrice:  order.TotalPrice,
		CreatedAt:   order.CreatedAt,
	}
	if err := svc.publisher.PublishOrderCreated(ctx, event); err != nil {
		logger.Log.Errorw("failed to publish order event", "order_id", order.OrderID, "err", err)
	}

	confirmation := models.OrderConfirmation{
		OrderID:       order.OrderID,
		CustomerName:  req.Name,
		CustomerEmail: req.Email,
		Date:          req.Date,
		Time:          orderDate.Format("15:04"),
		PackageName:   pkg.Name,
		Price:         pkg.Price,
	}
	if err := svc.notifier.SendOrderConfirmation(ctx, confirmation); err != nil {
		logger.Log.Errorw("failed to send order confirmation", "order_id", order.OrderID, "err", err)
		return order, fmt.Errorf("%w: %v", ErrDeliveryFailure, err)
	}

	return order, nil
}

// verifyPackage resolves the package by id and rejects stale or tampered
// name and price values.
func (svc *BookingService) verifyPackage(ctx context.Context, selected models.SelectedPackage) (*models.PackageDB, error) {
	if selected.PackageID <= 0 {
		return nil, ErrPackageNotFound
	}

	pkg, err := svc.Package(ctx, selected.PackageID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(selected.Name) != pkg.Name || !selected.Price.Equal(pkg.Price) {
		logger.Log.Infow("package mismatch",
			"package_id", pkg.PackageID,
			"name", selected.Name,
			"price", selected.Price,
		)
		return nil, ErrPackageNotFound
	}
	return pkg, nil
}

func parseDateTime(date, clock string) (time.Time, error) {
	for _, layout := range []string{dateLayout + " 15:04", dateLayout + " 15:04:05"} {
		if t, err := time.Parse(layout, date+" "+strings.TrimSpace(clock)); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDateTime
}
