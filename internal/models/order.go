package models

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusCompleted OrderStatus = "Completed"
)

type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "Unpaid"
	PaymentStatusPaid   PaymentStatus = "Paid"
)

// Order: a sales order. Total is frozen at creation time (quantity × unit
// price then) and never recomputed. Payment fields stay empty until the
// payment is verified.
type Order struct {
	ID            uint          `gorm:"primaryKey"`
	ClientID      *uint         `gorm:"index"` // nil when the client name matched nothing
	ProductID     uint          `gorm:"index;not null"`
	Quantity      int           `gorm:"not null"`
	Total         float64       `gorm:"not null"`
	Date          time.Time     `gorm:"index;not null"`
	Status        OrderStatus   `gorm:"size:20;not null;default:Pending"`
	PaymentStatus PaymentStatus `gorm:"size:20;not null;default:Unpaid"`
	PaymentMethod string        `gorm:"size:50"`  // Cash, Online...
	PaymentRef    string        `gorm:"size:100"` // reference id or notes
	PaymentDate   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
