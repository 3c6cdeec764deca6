// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/finance-tracker/pkg/constants"
)

// Round rounds val to cents. Stored goal figures go through it.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// WithinTolerance reports whether val1 and val2 differ by at most tolerance.
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// IsFinite reports whether val is neither NaN nor infinite.
func IsFinite(val float64) bool {
	return !math.IsNaN(val) && !math.IsInf(val, 0)
}

// Compound returns (1 + rate)^periods, the growth factor of one unit
// compounded at rate for the given number of periods.
func Compound(rate float64, periods int) float64 {
	return math.Pow(1+rate, float64(periods))
}

// PercentToFraction converts a percentage such as 4.7 into 0.047.
func PercentToFraction(percent float64) float64 {
	return percent / constants.PercentageMultiplier
}

// FractionToPercent converts a fraction such as 0.047 into 4.7.
func FractionToPercent(fraction float64) float64 {
	return fraction * constants.PercentageMultiplier
}
