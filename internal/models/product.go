package models

import "time"

// Product: a denim line stocked in bundles (not individual pieces).
type Product struct {
	ID        uint    `gorm:"primaryKey"`
	Name      string  `gorm:"size:100;not null"`
	SKU       string  `gorm:"size:50;uniqueIndex;not null"`
	Category  string  `gorm:"size:50"`  // one of ProductCategories
	Fit       string  `gorm:"size:50"`  // Slim, Skinny, Regular...
	Wash      string  `gorm:"size:100"` // wash descriptor (Acid Wash, Raw Indigo vs.)
	Sizes     string  `gorm:"size:100"` // free text, e.g. "28,30,32,34"
	Stock     int     `gorm:"not null;default:0"`
	CostPrice float64 `gorm:"not null;default:0"`
	Price     float64 `gorm:"not null;default:0"` // sale price per bundle
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProductCategories is the fixed category set the dashboard charts group by.
var ProductCategories = []string{
	"Slim Fit",
	"Skinny Fit",
	"Regular Fit",
	"Tapered Fit",
	"Straight Fit",
}

// LowStockThreshold: below this a product counts as low stock everywhere.
const LowStockThreshold = 20
