package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction is a committed sale. Items snapshot the product name and
// unit price at checkout time so later catalog edits never rewrite
// history.
type Transaction struct {
	gorm.Model
	Code     string            `gorm:"size:64;uniqueIndex;not null" json:"code"`
	UserID   uint              `gorm:"not null;index" json:"user_id"`
	Kasir    string            `gorm:"size:255;not null" json:"kasir"`
	Subtotal decimal.Decimal   `gorm:"type:decimal(14,2);not null" json:"subtotal"`
	Discount decimal.Decimal   `gorm:"type:decimal(14,2);not null" json:"discount"`
	Total    decimal.Decimal   `gorm:"type:decimal(14,2);not null" json:"total"`
	Items    []TransactionItem `gorm:"foreignKey:TransactionID" json:"items"`
}

// TransactionItem is one product line inside a transaction.
type TransactionItem struct {
	gorm.Model
	TransactionID uint            `gorm:"not null;index" json:"transaction_id"`
	ProductID     uint            `gorm:"not null;index" json:"product_id"`
	ProductName   string          `gorm:"size:255;not null" json:"product_name"`
	UnitPrice     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"unit_price"`
	Quantity      int             `gorm:"not null" json:"quantity"`
	LineTotal     decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"line_total"`
}
