// Package goals projects savings goals: it compounds a target forward by
// inflation and derives the monthly contribution (SIP) that reaches it under
// an expected annual return.
package goals

import (
	"strings"

	"github.com/iwvelando/finance-tracker/pkg/constants"
	"github.com/iwvelando/finance-tracker/pkg/mathutil"
)

// Kind selects whether a goal target is taken as-is or inflated.
type Kind string

const (
	KindFlat              Kind = "flat"
	KindInflationAdjusted Kind = "inflationAdjusted"
)

// Kinds returns the recognised goal kinds.
func Kinds() []Kind {
	return []Kind{KindFlat, KindInflationAdjusted}
}

// KindNames returns the recognised goal kinds joined for help text.
func KindNames() string {
	names := make([]string, 0, len(Kinds()))
	for _, k := range Kinds() {
		names = append(names, string(k))
	}
	return strings.Join(names, " or ")
}

// Valid reports whether k is a recognised kind.
func (k Kind) Valid() bool {
	return k == KindFlat || k == KindInflationAdjusted
}

// Spec holds the inputs of a goal projection. Rates are annual fractions,
// e.g. 0.047 for 4.7%.
type Spec struct {
	Name           string  `json:"name"`
	Kind           Kind    `json:"type"`
	TargetAmount   float64 `json:"targetAmount"`
	Years          int     `json:"years"`
	InflationRate  float64 `json:"inflationRate"`
	ExpectedReturn float64 `json:"expectedReturn"`
}

// Months returns the contribution horizon in months.
func (s Spec) Months() int {
	return s.Years * constants.MonthsPerYear
}

// Projection is derived from a Spec on every call and never cached.
type Projection struct {
	FutureValue         float64 `json:"futureValue"`
	MonthlyContribution float64 `json:"monthlyContribution"`
}

// InRange reports whether the horizon is within the projected range.
func (s Spec) InRange() bool {
	return s.Years > 0 && s.Years <= constants.MaxGoalYears
}

// Finite reports whether both figures are finite numbers.
func (p Projection) Finite() bool {
	return mathutil.IsFinite(p.FutureValue) && mathutil.IsFinite(p.MonthlyContribution)
}

// Project computes the future value of the goal target and the monthly
// contribution needed to reach it. A non-positive target, a horizon outside
// (0, MaxGoalYears], or a result too large to represent yields a zero
// projection.
func Project(spec Spec) Projection {
	if spec.TargetAmount <= 0 || !spec.InRange() {
		return Projection{}
	}

	futureValue := FutureValue(spec.Kind, spec.TargetAmount, spec.InflationRate, spec.Years)
	p := Projection{
		FutureValue:         futureValue,
		MonthlyContribution: MonthlyContribution(futureValue, spec.ExpectedReturn, spec.Months()),
	}
	if !p.Finite() {
		return Projection{}
	}
	return p
}

// FutureValue compounds target by inflationRate over years for
// inflation-adjusted goals; any other kind keeps the target.
func FutureValue(kind Kind, target, inflationRate float64, years int) float64 {
	if kind != KindInflationAdjusted {
		return target
	}
	return target * mathutil.Compound(inflationRate, years)
}

// MonthlyContribution returns the level end-of-month payment that grows to
// futureValue over months at annualReturn/12 per month (sinking fund). At a
// zero return the payment is futureValue spread evenly over the months.
func MonthlyContribution(futureValue, annualReturn float64, months int) float64 {
	if months <= 0 {
		return 0
	}

	monthlyRate := annualReturn / constants.MonthsPerYear
	if monthlyRate == 0 {
		return futureValue / float64(months)
	}
	return futureValue * monthlyRate / (mathutil.Compound(monthlyRate, months) - 1)
}
