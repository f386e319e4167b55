package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-venue-booking/internal/models"
)

type StatsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) Get(ctx context.Context) (*models.Stats, error) {
	const query = `
		SELECT
			(SELECT COUNT(*) FROM users)                        AS total_users,
			(SELECT COUNT(*) FROM packages)                     AS total_packages,
			(SELECT COUNT(*) FROM orders)                       AS total_orders,
			(SELECT COALESCE(SUM(total_price), 0) FROM orders)  AS total_revenue
	`

	var stats models.Stats
	err := r.db.GetContext(ctx, &stats, query)
	logQuery(query, nil, stats, err)

	if err != nil {
		return nil, err
	}
	return &stats, nil
}
