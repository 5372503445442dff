package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func price(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name     string
		lines    []PriceLine
		subtotal string
		discount string
		total    string
	}{
		{
			name:     "empty cart",
			lines:    nil,
			subtotal: "0",
			discount: "0",
			total:    "0",
		},
		{
			name: "below threshold no discount",
			lines: []PriceLine{
				{UnitPrice: price(5000), Quantity: 10},  // 50000
				{UnitPrice: price(12000), Quantity: 4},  // 48000
				{UnitPrice: price(1500), Quantity: 1},   // 1500
			}, // 99500
			subtotal: "99500",
			discount: "0",
			total:    "99500",
		},
		{
			name: "one short of threshold",
			lines: []PriceLine{
				{UnitPrice: price(99999), Quantity: 1},
			},
			subtotal: "99999",
			discount: "0",
			total:    "99999",
		},
		{
			name: "exactly at threshold gets discount",
			lines: []PriceLine{
				{UnitPrice: price(100000), Quantity: 1},
			},
			subtotal: "100000",
			discount: "10000",
			total:    "90000",
		},
		{
			name: "well above threshold",
			lines: []PriceLine{
				{UnitPrice: price(25000), Quantity: 4},  // 100000
				{UnitPrice: price(12000), Quantity: 5},  // 60000
			}, // 160000
			subtotal: "160000",
			discount: "16000",
			total:    "144000",
		},
		{
			name: "fractional prices round to two places",
			lines: []PriceLine{
				{UnitPrice: decimal.RequireFromString("33333.33"), Quantity: 3}, // 99999.99
				{UnitPrice: decimal.RequireFromString("0.02"), Quantity: 1},     // crosses threshold
			},
			subtotal: "100000.01",
			discount: "10000",
			total:    "90000.01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTotals(tt.lines)
			assert.True(t, got.Subtotal.Equal(decimal.RequireFromString(tt.subtotal)),
				"subtotal = %s, want %s", got.Subtotal, tt.subtotal)
			assert.True(t, got.Discount.Equal(decimal.RequireFromString(tt.discount)),
				"discount = %s, want %s", got.Discount, tt.discount)
			assert.True(t, got.Total.Equal(decimal.RequireFromString(tt.total)),
				"total = %s, want %s", got.Total, tt.total)
		})
	}
}
