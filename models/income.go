package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Income is a single income record in a user's ledger.
// Date is set from the server clock at creation, never by the client.
type Income struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	UserID     uint            `json:"user_id" gorm:"index;not null"`
	CategoryID uint            `json:"category_id" gorm:"index;not null"`
	Amount     decimal.Decimal `json:"amount" gorm:"type:decimal(10,2);not null"`
	Date       time.Time       `json:"date" gorm:"type:date;not null;index"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
	DeletedAt  gorm.DeletedAt  `json:"-" gorm:"index"`
	User       User            `json:"-" gorm:"foreignKey:UserID"`
	Category   Category        `json:"-" gorm:"foreignKey:CategoryID"`
}

func (Income) TableName() string {
	return "incomes"
}
