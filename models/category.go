package models

import (
	"time"

	"gorm.io/gorm"
)

// Category is a shared lookup table for income and expense categories.
// Names are intentionally not unique; duplicates are allowed.
type Category struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"size:255;not null"`
	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (Category) TableName() string {
	return "categories"
}

// DefaultCategories seeds the category table on first start.
func DefaultCategories() []string {
	return []string{
		"Salary",
		"Rent",
		"Groceries",
		"Transport",
		"Entertainment",
		"Utilities",
		"Other",
	}
}
