package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-venue-booking/internal/logger"
	"github.com/sbilibin2017/gw-venue-booking/internal/models"
	"github.com/sbilibin2017/gw-venue-booking/internal/views"
)

// OrderLister lists orders newest first.
type OrderLister interface {
	ListOrders(ctx context.Context) ([]models.OrderView, error)
}

// OrderDeleter deletes orders.
type OrderDeleter interface {
	DeleteOrder(ctx context.Context, id int64) error
}

// StatsGetter computes the dashboard aggregates.
type StatsGetter interface {
	Stats(ctx context.Context) (*models.Stats, error)
}

// NewListOrdersHandler returns an HTTP handler listing orders.
// @Summary List orders
// @Tags admin
// @Produce json
// @Success 200 {array} models.OrderView
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /admin/api/orders [get]
func NewListOrdersHandler(svc OrderLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orders, err := svc.ListOrders(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list orders", "err", err)
			writeError(w, http.StatusInternalServerError, msgInternalJSON)
			return
		}
		if orders == nil {
			orders = []models.OrderView{}
		}
		writeJSON(w, http.StatusOK, orders)
	}
}

// NewDeleteOrderHandler returns an HTTP handler deleting an order.
// @Summary Delete order
// @Tags admin
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse "Invalid id"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /admin/api/orders/{id} [delete]
func NewDeleteOrderHandler(svc OrderDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(r)
		if !ok {
			writeError(w, http.StatusBadRequest, msgInvalidID)
			return
		}
		if err := svc.DeleteOrder(r.Context(), id); err != nil {
			logger.Log.Errorw("failed to delete order", "order_id", id, "err", err)
			writeError(w, http.StatusInternalServerError, msgInternalJSON)
			return
		}
		writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Order deleted successfully"})
	}
}

// NewStatsHandler returns an HTTP handler for the dashboard aggregates.
// @Summary Dashboard statistics
// @Tags admin
// @Produce json
// @Success 200 {object} models.Stats
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /admin/api/stats [get]
func NewStatsHandler(svc StatsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := svc.Stats(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to compute stats", "err", err)
			writeError(w, http.StatusInternalServerError, msgInternalJSON)
			return
		}
		writeJSON(w, http.StatusOK, stats)
	}
}

// NewDashboardHandler renders the admin console shell. Data is loaded by the
// browser script from the JSON endpoints.
func NewDashboardHandler(renderer Renderer, sm SessionManager) http.HandlerFunc {
	return NewPageHandler(renderer, sm, views.PageAdminDashboard, "Admin Dashboard")
}
