package models

// MessageResponse represents a successful mutation response
// swagger:model MessageResponse
type MessageResponse struct {
	// example: Package created successfully
	Message string `json:"message"`
}

// CreatedResponse represents a successful create response
// swagger:model CreatedResponse
type CreatedResponse struct {
	// example: Package created successfully
	Message string `json:"message"`

	// example: 7
	ID int64 `json:"id"`
}

// ErrorResponse represents an error response of the JSON API
// swagger:model ErrorResponse
type ErrorResponse struct {
	// example: Internal server error
	Message string `json:"message"`
}
