package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-venue-booking/internal/logger"
	"github.com/sbilibin2017/gw-venue-booking/internal/models"
)

type OrderReadRepository struct {
	db *sqlx.DB
}

func NewOrderReadRepository(db *sqlx.DB) *OrderReadRepository {
	return &OrderReadRepository{db: db}
}

// CountInWindow counts orders on window.Date whose clock time falls within the window.
func (r *OrderReadRepository) CountInWindow(ctx context.Context, window models.TimeWindow) (int, error) {
	const query = `
		SELECT COUNT(*)
		FROM orders
		WHERE order_date::date = $1::date
		  AND order_date::time BETWEEN $2::time AND $3::time
	`

	args := []any{window.Date, window.Start, window.End}
	var count int
	err := r.db.GetContext(ctx, &count, query, args...)
	logQuery(query, args, count, err)

	if err != nil {
		return 0, err
	}
	return count, nil
}

// List returns orders joined with their user and package, newest booking first.
func (r *OrderReadRepository) List(ctx context.Context) ([]models.OrderView, error) {
	const query = `
		SELECT o.id, u.username, p.name AS package_name, o.order_date, o.total_price
		FROM orders o
		JOIN users u ON o.user_id = u.id
		JOIN packages p ON o.package_id = p.id
		ORDER BY o.order_date DESC
	`

	orders := []models.OrderView{}
	err := r.db.SelectContext(ctx, &orders, query)
	logQuery(query, nil, len(orders), err)

	if err != nil {
		return nil, err
	}
	return orders, nil
}

type OrderWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewOrderWriteRepository(db *sqlx.DB, txGetter TxGetter) *OrderWriteRepository {
	return &OrderWriteRepository{db: db, txGetter: txGetter}
}

// CreateInWindow inserts order unless another order already occupies window.
// Concurrent callers for the same date and bucket are serialised by a
// transaction-scoped advisory lock, so the check and the insert are atomic.
// On success order.OrderID and order.CreatedAt are filled in.
func (r *OrderWriteRepository) CreateInWindow(ctx context.Context, order *models.OrderDB, window models.TimeWindow) (bool, error) {
	const lockQuery = `SELECT pg_advisory_xact_lock(hashtext($1))`
	const insertQuery = `
		INSERT INTO orders (user_id, package_id, order_date, total_price)
		SELECT $1::BIGINT, $2::BIGINT, $3::TIMESTAMP, $4::NUMERIC
		WHERE NOT EXISTS (
			SELECT 1
			FROM orders
			WHERE order_date::date = $5::date
			  AND order_date::time BETWEEN $6::time AND $7::time
		)
		RETURNING id, created_at
	`

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer func() {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			logger.Log.Errorw("failed to rollback order transaction", "error", rbErr)
		}
	}()

	lockKey := "orders:" + window.Date + ":" + window.Bucket
	_, err = tx.ExecContext(ctx, lockQuery, lockKey)
	logQuery(lockQuery, []any{lockKey}, nil, err)
	if err != nil {
		return false, err
	}

	args := []any{
		order.UserID, order.PackageID, order.OrderDate, order.TotalPrice,
		window.Date, window.Start, window.End,
	}
	var inserted struct {
		ID        int64     `db:"id"`
		CreatedAt time.Time `db:"created_at"`
	}
	err = tx.GetContext(ctx, &inserted, insertQuery, args...)
	logQuery(insertQuery, args, inserted.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}

	order.OrderID = inserted.ID
	order.CreatedAt = inserted.CreatedAt
	return true, nil
}

// Delete removes the order; a missing id is not an error.
func (r *OrderWriteRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM orders WHERE id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{id}, rowsAffected, err)
	return err
}
