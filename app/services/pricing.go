package services

import "github.com/shopspring/decimal"

// Business rules for checkout pricing.
const (
	// DiscountThreshold is the subtotal at which the order discount
	// kicks in (inclusive).
	DiscountThreshold = 100000

	// DiscountRate is the fraction taken off the subtotal once the
	// threshold is reached.
	DiscountRate = "0.10"

	// MinDistinctProducts is the smallest number of distinct product
	// lines a transaction may contain.
	MinDistinctProducts = 3
)

// Totals is the priced summary of a set of cart lines.
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
}

// PriceLine is the minimal shape the pricing rules need from a line.
type PriceLine struct {
	UnitPrice decimal.Decimal
	Quantity  int
}

// ComputeTotals sums the lines and applies the volume discount: once
// the subtotal reaches the threshold, 10% comes off the whole order.
// Amounts are rounded to two decimal places.
func ComputeTotals(lines []PriceLine) Totals {
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}

	discount := decimal.Zero
	if subtotal.GreaterThanOrEqual(decimal.NewFromInt(DiscountThreshold)) {
		discount = subtotal.Mul(decimal.RequireFromString(DiscountRate)).Round(2)
	}

	return Totals{
		Subtotal: subtotal.Round(2),
		Discount: discount,
		Total:    subtotal.Sub(discount).Round(2),
	}
}
