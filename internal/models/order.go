package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderDB represents an order row
type OrderDB struct {
	OrderID    int64           `json:"id" db:"id"`
	UserID     int64           `json:"user_id" db:"user_id"`
	PackageID  int64           `json:"package_id" db:"package_id"`
	OrderDate  time.Time       `json:"order_date" db:"order_date"`
	TotalPrice decimal.Decimal `json:"total_price" db:"total_price"`
	CreatedAt  time.Time       `json:"created_at" db:"created_at"`
}

// OrderView is the admin listing projection of an order
// swagger:model OrderView
type OrderView struct {
	// example: 12
	OrderID int64 `json:"id" db:"id"`
	// example: alice
	Username string `json:"username" db:"username"`
	// example: Paket Gold
	PackageName string    `json:"package_name" db:"package_name"`
	OrderDate   time.Time `json:"order_date" db:"order_date"`
	// swaggertype: string
	// example: 1500000.00
	TotalPrice decimal.Decimal `json:"total_price" db:"total_price"`
}

// SelectedPackage is the package as displayed to the customer at checkout
type SelectedPackage struct {
	PackageID int64           `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
}

// OrderRequest is the checkout submission
type OrderRequest struct {
	Name            string          `json:"nama"`
	Email           string          `json:"email"`
	Date            string          `json:"tanggal"`
	Time            string          `json:"jam"`
	SelectedPackage SelectedPackage `json:"selectedPackage"`
}

// OrderCreatedEvent is published after an order has been stored
type OrderCreatedEvent struct {
	OrderID     int64           `json:"order_id"`
	UserID      int64           `json:"user_id"`
	PackageID   int64           `json:"package_id"`
	PackageName string          `json:"package_name"`
	OrderDate   time.Time       `json:"order_date"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	CreatedAt   time.Time       `json:"created_at"`
}

// OrderConfirmation is the content of the confirmation email and its PDF receipt
type OrderConfirmation struct {
	OrderID       int64
	CustomerName  string
	CustomerEmail string
	Date          string
	Time          string
	PackageName   string
	Price         decimal.Decimal
}
