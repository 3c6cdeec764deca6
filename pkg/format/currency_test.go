package format

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		symbol string
		want   string
	}{
		{"zero", 0, "₹", "₹0.00"},
		{"small", 5.5, "₹", "₹5.50"},
		{"thousands", 45000, "₹", "₹45,000.00"},
		{"millions", 1006522.2862, "₹", "₹1,006,522.29"},
		{"negative", -1234.5, "$", "-$1,234.50"},
		{"negative rounding to zero", -0.001, "$", "$0.00"},
		{"default symbol", 10, "", "₹10.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Currency(tt.amount, tt.symbol))
		})
	}
}

func TestDecimalCurrency(t *testing.T) {
	assert.Equal(t, "₹22,500.00", DecimalCurrency(decimal.NewFromInt(22500), "₹"))
	assert.Equal(t, "₹407.40", DecimalCurrency(decimal.RequireFromString("407.4048"), "₹"))
}

func TestWhole(t *testing.T) {
	assert.Equal(t, "₹12,324", Whole(12324.3095, "₹"))
	assert.Equal(t, "₹1,006,522", Whole(1006522.2862, "₹"))
	assert.Equal(t, "₹0", Whole(0, "₹"))
	assert.Equal(t, "-₹5", Whole(-4.6, "₹"))
}

func TestSigned(t *testing.T) {
	assert.Equal(t, "+₹8,500.00", Signed(decimal.NewFromInt(8500), true, "₹"))
	assert.Equal(t, "-₹2,450.00", Signed(decimal.NewFromInt(2450), false, "₹"))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "0%", Percent(0))
	assert.Equal(t, "-10%", Percent(-10))
	assert.Equal(t, "4.7%", RatePercent(0.047))
	assert.Equal(t, "12.0%", RatePercent(0.12))
}
