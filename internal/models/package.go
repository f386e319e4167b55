package models

import "github.com/shopspring/decimal"

// PackageDB represents a bookable package row
// swagger:model Package
type PackageDB struct {
	// example: 1
	PackageID int64 `json:"id" db:"id"`

	// example: Paket Gold
	Name string `json:"name" db:"name"`

	// swaggertype: string
	// example: 1500000.00
	Price decimal.Decimal `json:"price" db:"price"`
}

// PackageRequest represents the JSON body for creating or updating a package
// swagger:model PackageRequest
type PackageRequest struct {
	// required: true
	// example: Paket Gold
	Name string `json:"name"`

	// required: true
	// swaggertype: string
	// example: 1500000.00
	Price decimal.Decimal `json:"price"`
}
