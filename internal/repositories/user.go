package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-venue-booking/internal/models"
)

const redacted = "***"

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByEmail returns the user with the given email, or nil when there is none.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `
		SELECT id, username, email, password, verification_token, is_verified, is_admin,
		       reset_token, reset_token_expires, created_at
		FROM users
		WHERE email = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, email)
	logQuery(query, []any{email}, user.UserID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// List returns every user ordered by id.
func (r *UserReadRepository) List(ctx context.Context) ([]models.UserView, error) {
	const query = `
		SELECT id, username, email, is_admin, is_verified, created_at
		FROM users
		ORDER BY id
	`

	users := []models.UserView{}
	err := r.db.SelectContext(ctx, &users, query)
	logQuery(query, nil, len(users), err)

	if err != nil {
		return nil, err
	}
	return users, nil
}

type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts a user and returns its id. A taken username or email yields ErrDuplicate.
func (r *UserWriteRepository) Create(
	ctx context.Context,
	username, email, passwordHash string,
	verificationToken *string,
	isVerified, isAdmin bool,
) (int64, error) {
	const query = `
		INSERT INTO users (username, email, password, verification_token, is_verified, is_admin)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	var id int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &id, query,
		username, email, passwordHash, verificationToken, isVerified, isAdmin)
	logQuery(query, []any{username, email, redacted, redacted, isVerified, isAdmin}, id, err)

	if err != nil {
		return 0, mapError(err)
	}
	return id, nil
}

// Verify marks the owner of token as verified and consumes the token.
// It reports whether a user matched.
func (r *UserWriteRepository) Verify(ctx context.Context, token string) (bool, error) {
	const query = `
		UPDATE users
		SET is_verified = TRUE, verification_token = NULL
		WHERE verification_token = $1
	`
	return r.exec(ctx, query, []any{token}, []any{redacted})
}

// SetResetToken stores a reset token and its expiry for the user with email.
func (r *UserWriteRepository) SetResetToken(ctx context.Context, email, token string, expiresAt time.Time) (bool, error) {
	const query = `
		UPDATE users
		SET reset_token = $1, reset_token_expires = $2
		WHERE email = $3
	`
	return r.exec(ctx, query, []any{token, expiresAt, email}, []any{redacted, expiresAt, email})
}

// ResetPassword replaces the password hash when email and token match an
// unexpired reset request, clearing the token in the same statement.
func (r *UserWriteRepository) ResetPassword(ctx context.Context, email, token, passwordHash string, now time.Time) (bool, error) {
	const query = `
		UPDATE users
		SET password = $1, reset_token = NULL, reset_token_expires = NULL
		WHERE email = $2
		  AND reset_token = $3
		  AND reset_token_expires > $4
	`
	return r.exec(ctx, query,
		[]any{passwordHash, email, token, now},
		[]any{redacted, email, redacted, now})
}

// Update changes username and email; a nil passwordHash or isAdmin keeps the stored value.
func (r *UserWriteRepository) Update(
	ctx context.Context,
	id int64,
	username, email string,
	passwordHash *string,
	isAdmin *bool,
) (bool, error) {
	const query = `
		UPDATE users
		SET username = $1,
		    email = $2,
		    password = COALESCE($3::VARCHAR, password),
		    is_admin = COALESCE($4::BOOLEAN, is_admin)
		WHERE id = $5
	`
	var logged any
	if passwordHash != nil {
		logged = redacted
	}
	ok, err := r.exec(ctx, query,
		[]any{username, email, passwordHash, isAdmin, id},
		[]any{username, email, logged, isAdmin, id})
	return ok, mapError(err)
}

// Delete removes the user and, through the foreign key, its orders.
func (r *UserWriteRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM users WHERE id = $1`
	_, err := r.exec(ctx, query, []any{id}, []any{id})
	return err
}

func (r *UserWriteRepository) exec(ctx context.Context, query string, args, logArgs []any) (bool, error) {
	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, logArgs, rowsAffected, err)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
