package budget

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocatePreset503020(t *testing.T) {
	split, ok := ApplyPreset(Split{}, Preset503020)
	require.True(t, ok)

	result := Allocate(decimal.NewFromInt(45000), split)

	assert.Equal(t, "22500.00", result.Amounts.Needs.StringFixed(2))
	assert.Equal(t, "13500.00", result.Amounts.Wants.StringFixed(2))
	assert.Equal(t, "9000.00", result.Amounts.Savings.StringFixed(2))
	assert.Equal(t, 0, result.RemainingPercent)
	assert.True(t, result.Valid)
	assert.Equal(t, StatusBalanced, result.Status())
}

func TestAllocateValidSplitsSumToBase(t *testing.T) {
	bases := []string{"0", "0.01", "0.15", "1", "99.99", "1234.56", "45000", "98765.43", "1000000"}
	splits := []Split{
		{50, 30, 20},
		{60, 20, 20},
		{70, 20, 10},
		{33, 33, 34},
		{100, 0, 0},
		{0, 0, 100},
		{1, 1, 98},
		{17, 41, 42},
	}
	tolerance := decimal.RequireFromString("0.01")

	for _, b := range bases {
		base := decimal.RequireFromString(b)
		for _, split := range splits {
			result := Allocate(base, split)
			assert.True(t, result.Valid, "split %+v should be valid", split)
			assert.Equal(t, 0, result.RemainingPercent)

			diff := result.Amounts.Total().Sub(base).Abs()
			assert.True(t, diff.LessThanOrEqual(tolerance),
				"base %s split %+v: amounts sum to %s", b, split, result.Amounts.Total())
		}
	}
}

func TestAllocateInvalidSplits(t *testing.T) {
	tests := []struct {
		name      string
		split     Split
		remaining int
		status    Status
	}{
		{"under allocated", Split{50, 30, 10}, 10, StatusUnder},
		{"over allocated", Split{60, 30, 20}, -10, StatusOver},
		{"empty split", Split{}, 100, StatusUnder},
		{"everything everywhere", Split{100, 100, 100}, -200, StatusOver},
		{"one over", Split{34, 33, 34}, -1, StatusOver},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Allocate(decimal.NewFromInt(45000), tt.split)
			assert.Equal(t, tt.remaining, result.RemainingPercent)
			assert.Equal(t, 100-tt.split.Total(), result.RemainingPercent)
			assert.False(t, result.Valid)
			assert.Equal(t, tt.status, result.Status())
		})
	}
}

func TestAllocateAmountRounding(t *testing.T) {
	tests := []struct {
		base    string
		percent int
		want    string
	}{
		{"45000", 50, "22500.00"},
		{"1234.56", 33, "407.40"},
		{"0.15", 50, "0.08"},
		{"0.05", 30, "0.02"},
		{"100", 0, "0.00"},
		{"10.01", 100, "10.01"},
	}

	for _, tt := range tests {
		t.Run(tt.base, func(t *testing.T) {
			got := AllocateAmount(decimal.RequireFromString(tt.base), tt.percent)
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestAllocateIsPure(t *testing.T) {
	base := decimal.RequireFromString("52345.67")
	split := Split{45, 35, 20}

	first := Allocate(base, split)
	second := Allocate(base, split)

	assert.True(t, first.Amounts.Needs.Equal(second.Amounts.Needs))
	assert.True(t, first.Amounts.Wants.Equal(second.Amounts.Wants))
	assert.True(t, first.Amounts.Savings.Equal(second.Amounts.Savings))
	assert.Equal(t, first.RemainingPercent, second.RemainingPercent)
	assert.Equal(t, "52345.67", base.String())
}

func TestSplitAccessors(t *testing.T) {
	split := Split{Needs: 60, Wants: 25, Savings: 15}
	assert.Equal(t, 100, split.Total())
	assert.Equal(t, 60, split.Percent(Needs))
	assert.Equal(t, 25, split.Percent(Wants))
	assert.Equal(t, 15, split.Percent(Savings))
	assert.Equal(t, 0, split.Percent(Category("other")))

	amounts := Allocate(decimal.NewFromInt(1000), split).Amounts
	for _, c := range Categories() {
		assert.Equal(t, decimal.NewFromInt(int64(split.Percent(c)*10)).StringFixed(2), amounts.Amount(c).StringFixed(2))
	}
	assert.True(t, amounts.Amount(Category("other")).IsZero())
}
