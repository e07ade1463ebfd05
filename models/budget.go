package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget is one monthly allocation for a user. The composite unique index
// backs the atomic upsert: concurrent identical writes collapse into one row.
// No soft delete here, a deleted row would keep blocking the unique key.
type Budget struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	UserID    uint            `json:"user_id" gorm:"not null;uniqueIndex:idx_budgets_user_period"`
	Amount    decimal.Decimal `json:"amount" gorm:"type:decimal(10,2);not null"`
	Month     int             `json:"month" gorm:"not null;uniqueIndex:idx_budgets_user_period"` // 1 (Jan) to 12 (Dec)
	Year      int             `json:"year" gorm:"not null;uniqueIndex:idx_budgets_user_period"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (Budget) TableName() string {
	return "budgets"
}
