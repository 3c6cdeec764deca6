// Package budget splits a base amount across the needs, wants and savings
// categories and reports how far a split is from a full allocation.
package budget

import (
	"github.com/iwvelando/finance-tracker/pkg/constants"
	"github.com/shopspring/decimal"
)

// Category names one of the three budget buckets.
type Category string

const (
	Needs   Category = "needs"
	Wants   Category = "wants"
	Savings Category = "savings"
)

// Categories returns the budget categories in display order.
func Categories() []Category {
	return []Category{Needs, Wants, Savings}
}

var hundred = decimal.NewFromInt(constants.PercentTotal)

// Split holds whole-number percentages per category. A split is allowed to
// sum to something other than 100; Allocate reports the deviation.
type Split struct {
	Needs   int `json:"needs" yaml:"needs" mapstructure:"needs"`
	Wants   int `json:"wants" yaml:"wants" mapstructure:"wants"`
	Savings int `json:"savings" yaml:"savings" mapstructure:"savings"`
}

// Total returns the sum of the three percentages.
func (s Split) Total() int {
	return s.Needs + s.Wants + s.Savings
}

// Percent returns the percentage assigned to a category, or 0 for an unknown
// category.
func (s Split) Percent(c Category) int {
	switch c {
	case Needs:
		return s.Needs
	case Wants:
		return s.Wants
	case Savings:
		return s.Savings
	}
	return 0
}

// Amounts holds the currency amount allocated to each category.
type Amounts struct {
	Needs   decimal.Decimal `json:"needs"`
	Wants   decimal.Decimal `json:"wants"`
	Savings decimal.Decimal `json:"savings"`
}

// Amount returns the amount allocated to a category.
func (a Amounts) Amount(c Category) decimal.Decimal {
	switch c {
	case Needs:
		return a.Needs
	case Wants:
		return a.Wants
	case Savings:
		return a.Savings
	}
	return decimal.Zero
}

// Total returns the sum of the allocated amounts.
func (a Amounts) Total() decimal.Decimal {
	return a.Needs.Add(a.Wants).Add(a.Savings)
}

// Status classifies the remaining percentage of an allocation.
type Status string

const (
	StatusBalanced Status = "balanced"
	StatusUnder    Status = "under"
	StatusOver     Status = "over"
)

// Allocation is the result of applying a Split to a base amount.
type Allocation struct {
	Amounts          Amounts `json:"amounts"`
	RemainingPercent int     `json:"remainingPercent"`
	Valid            bool    `json:"isValid"`
}

// Status reports whether the split is fully allocated, under-allocated
// (positive remainder) or over-allocated (negative remainder).
func (a Allocation) Status() Status {
	switch {
	case a.RemainingPercent > 0:
		return StatusUnder
	case a.RemainingPercent < 0:
		return StatusOver
	default:
		return StatusBalanced
	}
}

// Allocate applies split to base. It never fails: an incomplete or
// over-committed split is reported through RemainingPercent and Valid so the
// caller can block saving.
func Allocate(base decimal.Decimal, split Split) Allocation {
	remaining := constants.PercentTotal - split.Total()
	return Allocation{
		Amounts: Amounts{
			Needs:   AllocateAmount(base, split.Needs),
			Wants:   AllocateAmount(base, split.Wants),
			Savings: AllocateAmount(base, split.Savings),
		},
		RemainingPercent: remaining,
		Valid:            remaining == 0,
	}
}

// AllocateAmount returns base * percent / 100 rounded to whole cents.
func AllocateAmount(base decimal.Decimal, percent int) decimal.Decimal {
	return base.Mul(decimal.NewFromInt(int64(percent))).Div(hundred).Round(constants.DecimalPlaces)
}
