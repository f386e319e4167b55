package services

import "errors"

// Errors returned by the services. Handlers map them to responses with errors.Is.
var (
	ErrValidation             = errors.New("validation failed")
	ErrDuplicateIdentity      = errors.New("username or email already registered")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrEmailNotVerified       = errors.New("email not verified")
	ErrInvalidToken           = errors.New("invalid verification token")
	ErrInvalidOrExpiredToken  = errors.New("invalid or expired reset token")
	ErrUserNotFound           = errors.New("user not found")
	ErrAuthenticationRequired = errors.New("authentication required")
	ErrPackageNotFound        = errors.New("package not found")
	ErrInvalidDateTime        = errors.New("invalid date or time")
	ErrSlotUnavailable        = errors.New("slot unavailable")
	ErrNotFound               = errors.New("not found")
	ErrDeliveryFailure        = errors.New("email delivery failed")
)
