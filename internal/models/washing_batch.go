package models

import "time"

type WashingStatus string

const (
	WashingStatusInWashing WashingStatus = "In Washing"
	WashingStatusDelivered WashingStatus = "Delivered"
)

// WashingBatch: stock sent out for external washing. The quantity is removed
// from the product's stock on dispatch and credited back exactly once when
// the batch is marked delivered.
type WashingBatch struct {
	ID        uint          `gorm:"primaryKey"`
	ProductID uint          `gorm:"index;not null"`
	Quantity  int           `gorm:"not null"`
	SentDate  time.Time     `gorm:"index;not null"`
	Status    WashingStatus `gorm:"size:20;not null;default:In Washing"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
