package models

import "time"

// Client: a wholesale buyer. Orders reference clients by id only; deleting a
// client leaves its orders in place and they render as "Unknown Client".
type Client struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100;uniqueIndex;not null"`
	Phone     string `gorm:"size:20"`
	Email     string `gorm:"size:100"`
	Address   string `gorm:"size:255"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
