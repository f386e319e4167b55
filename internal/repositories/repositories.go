package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-venue-booking/internal/logger"
)

// ErrDuplicate is returned when a write violates a unique constraint.
var ErrDuplicate = errors.New("duplicate key")

const uniqueViolation = "23505"

// TxGetter returns the transaction bound to ctx, or nil.
type TxGetter func(ctx context.Context) *sqlx.Tx

func executor(ctx context.Context, db *sqlx.DB, txGetter TxGetter) sqlx.ExtContext {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx
		}
	}
	return db
}

// mapError converts driver errors the services care about into sentinels.
func mapError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrDuplicate
	}
	return err
}

// logQuery logs a statement on a single line together with its outcome.
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}

// UserRepository combines both sides of the users table for the admin console.
type UserRepository struct {
	*UserReadRepository
	*UserWriteRepository
}

// PackageRepository combines both sides of the packages table.
type PackageRepository struct {
	*PackageReadRepository
	*PackageWriteRepository
}

// OrderRepository combines both sides of the orders table.
type OrderRepository struct {
	*OrderReadRepository
	*OrderWriteRepository
}
