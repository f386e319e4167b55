package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-venue-booking/internal/models"
	"github.com/shopspring/decimal"
)

type PackageReadRepository struct {
	db *sqlx.DB
}

func NewPackageReadRepository(db *sqlx.DB) *PackageReadRepository {
	return &PackageReadRepository{db: db}
}

// GetByID returns the package, or nil when there is none.
func (r *PackageReadRepository) GetByID(ctx context.Context, id int64) (*models.PackageDB, error) {
	const query = `SELECT id, name, price FROM packages WHERE id = $1`

	var pkg models.PackageDB
	err := r.db.GetContext(ctx, &pkg, query, id)
	logQuery(query, []any{id}, pkg, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (r *PackageReadRepository) List(ctx context.Context) ([]models.PackageDB, error) {
	const query = `SELECT id, name, price FROM packages ORDER BY id`

	packages := []models.PackageDB{}
	err := r.db.SelectContext(ctx, &packages, query)
	logQuery(query, nil, len(packages), err)

	if err != nil {
		return nil, err
	}
	return packages, nil
}

type PackageWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewPackageWriteRepository(db *sqlx.DB, txGetter TxGetter) *PackageWriteRepository {
	return &PackageWriteRepository{db: db, txGetter: txGetter}
}

func (r *PackageWriteRepository) Create(ctx context.Context, name string, price decimal.Decimal) (int64, error) {
	const query = `INSERT INTO packages (name, price) VALUES ($1, $2) RETURNING id`

	var id int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &id, query, name, price)
	logQuery(query, []any{name, price}, id, err)

	if err != nil {
		return 0, err
	}
	return id, nil
}

// Update reports whether a package with id existed.
func (r *PackageWriteRepository) Update(ctx context.Context, id int64, name string, price decimal.Decimal) (bool, error) {
	const query = `UPDATE packages SET name = $1, price = $2 WHERE id = $3`

	args := []any{name, price, id}
	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

// Delete removes the package and, through the foreign key, its orders.
func (r *PackageWriteRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM packages WHERE id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{id}, rowsAffected, err)
	return err
}
