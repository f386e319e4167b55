package models

import (
	"time"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID            int64      `json:"id" db:"id"`                   // Primary key
	Username          string     `json:"username" db:"username"`       // Unique username
	Email             string     `json:"email" db:"email"`             // Unique email
	PasswordHash      string     `json:"-" db:"password"`              // bcrypt hash
	VerificationToken *string    `json:"-" db:"verification_token"`    // Set while the email is unverified
	IsVerified        bool       `json:"is_verified" db:"is_verified"` // Email ownership confirmed
	IsAdmin           bool       `json:"is_admin" db:"is_admin"`       // Access to the admin console
	ResetToken        *string    `json:"-" db:"reset_token"`           // Pending password reset token
	ResetTokenExpires *time.Time `json:"-" db:"reset_token_expires"`   // Expiry of ResetToken
	CreatedAt         time.Time  `json:"created_at" db:"created_at"`   // Creation timestamp
}

// UserView is the admin listing projection of a user
// swagger:model UserView
type UserView struct {
	// example: 1
	UserID int64 `json:"id" db:"id"`
	// example: alice
	Username string `json:"username" db:"username"`
	// example: alice@example.com
	Email string `json:"email" db:"email"`
	// example: false
	IsAdmin bool `json:"is_admin" db:"is_admin"`
	// example: true
	IsVerified bool      `json:"is_verified" db:"is_verified"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// CreateUserRequest represents the JSON body for creating a user from the admin console
// swagger:model CreateUserRequest
type CreateUserRequest struct {
	// required: true
	// example: alice
	Username string `json:"username"`

	// required: true
	// example: alice@example.com
	Email string `json:"email"`

	// required: true
	// example: secret123
	Password string `json:"password"`

	// example: false
	IsAdmin bool `json:"is_admin"`
}

// UpdateUserRequest represents the JSON body for updating a user.
// An empty password keeps the stored hash; a nil IsAdmin keeps the stored flag.
// swagger:model UpdateUserRequest
type UpdateUserRequest struct {
	// required: true
	// example: alice
	Username string `json:"username"`

	// required: true
	// example: alice@example.com
	Email string `json:"email"`

	// example: newsecret
	Password string `json:"password"`

	IsAdmin *bool `json:"is_admin,omitempty"`
}
