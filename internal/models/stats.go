package models

import "github.com/shopspring/decimal"

// Stats represents the admin dashboard aggregates
// swagger:model Stats
type Stats struct {
	// example: 42
	TotalUsers int64 `json:"totalUsers" db:"total_users"`

	// example: 3
	TotalPackages int64 `json:"totalPackages" db:"total_packages"`

	// example: 17
	TotalOrders int64 `json:"totalOrders" db:"total_orders"`

	// swaggertype: string
	// example: 25500000.00
	TotalRevenue decimal.Decimal `json:"totalRevenue" db:"total_revenue"`
}
