package models

import "time"

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeWastage TransactionType = "wastage"
)

// LedgerTransaction: append-only financial record. Rows are inserted and
// deleted, never updated. OrderID is set only on rows generated by payment
// verification.
type LedgerTransaction struct {
	ID          uint            `gorm:"primaryKey"`
	Type        TransactionType `gorm:"size:20;not null;index"`
	Category    string          `gorm:"size:100"`
	Amount      float64         `gorm:"not null"`
	Description string          `gorm:"size:500"`
	Date        time.Time       `gorm:"index;not null"`
	OrderID     *uint           `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
