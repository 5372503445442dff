package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product is a catalog entry. Names are unique regardless of letter
// case; the repository enforces that with a lowercased lookup because
// not every driver supports case-insensitive unique indexes.
type Product struct {
	gorm.Model
	Name     string          `gorm:"size:255;not null;index" json:"name"`
	Category string          `gorm:"size:100;not null" json:"category"`
	Price    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Stock    int             `gorm:"not null;default:0" json:"stock"`
}
