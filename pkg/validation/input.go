package validation

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/iwvelando/finance-tracker/internal/record"
	"github.com/iwvelando/finance-tracker/pkg/budget"
	"github.com/iwvelando/finance-tracker/pkg/constants"
	"github.com/iwvelando/finance-tracker/pkg/datetime"
	"github.com/iwvelando/finance-tracker/pkg/goals"
	"github.com/iwvelando/finance-tracker/pkg/mathutil"
	"github.com/shopspring/decimal"
)

// GoalInput holds the raw form values of a goal. Rates are percentages as a
// user types them, e.g. "4.7".
type GoalInput struct {
	Name           string
	Kind           string
	TargetAmount   string
	Years          string
	InflationRate  string
	ExpectedReturn string
}

// ParseSalary parses a strictly positive salary.
func ParseSalary(raw string) (decimal.Decimal, error) {
	amount, err := parsePositiveDecimal(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidSalary, raw)
	}
	return amount, nil
}

// ParseAmount parses a strictly positive transaction amount.
func ParseAmount(raw string) (decimal.Decimal, error) {
	amount, err := parsePositiveDecimal(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	return amount, nil
}

// ParsePercent parses a whole percentage in [0, 100].
func ParsePercent(raw string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || value < 0 || value > constants.PercentTotal {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPercent, raw)
	}
	return value, nil
}

// ParseSplit parses the three category percentages. The result may still
// sum to something other than 100; that is reported by budget.Allocate.
func ParseSplit(needs, wants, savings string) (budget.Split, error) {
	var split budget.Split
	var err error
	if split.Needs, err = ParsePercent(needs); err != nil {
		return budget.Split{}, fmt.Errorf("needs: %w", err)
	}
	if split.Wants, err = ParsePercent(wants); err != nil {
		return budget.Split{}, fmt.Errorf("wants: %w", err)
	}
	if split.Savings, err = ParsePercent(savings); err != nil {
		return budget.Split{}, fmt.Errorf("savings: %w", err)
	}
	return split, nil
}

// ParseKind parses a goal kind; it is case-sensitive like the stored values.
func ParseKind(raw string) (goals.Kind, error) {
	kind := goals.Kind(strings.TrimSpace(raw))
	if !kind.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidGoalKind, raw)
	}
	return kind, nil
}

// ParseTransactionType parses income or expense.
func ParseTransactionType(raw string) (record.TransactionType, error) {
	switch t := record.TransactionType(strings.ToLower(strings.TrimSpace(raw))); t {
	case record.TransactionIncome, record.TransactionExpense:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTransactionType, raw)
}

// ParseDate validates a YYYY-MM-DD date. An empty value resolves to today.
func ParseDate(raw string, now time.Time) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return datetime.Today(now), nil
	}
	if _, err := datetime.ParseDate(trimmed); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}
	return trimmed, nil
}

// ParseRate parses a non-negative percentage into an annual fraction.
func ParseRate(raw string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || value < 0 || !mathutil.IsFinite(value) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidRate, raw)
	}
	return mathutil.PercentToFraction(value), nil
}

// ParseGoalSpec strictly parses a goal for saving: the name is required and
// the target and years must be positive.
func ParseGoalSpec(in GoalInput) (goals.Spec, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return goals.Spec{}, fmt.Errorf("%w: name is required", ErrGoalFields)
	}

	kind, err := ParseKind(in.Kind)
	if err != nil {
		return goals.Spec{}, err
	}

	target, err := strconv.ParseFloat(strings.TrimSpace(in.TargetAmount), 64)
	if err != nil || target <= 0 || !mathutil.IsFinite(target) {
		return goals.Spec{}, fmt.Errorf("%w: target amount %q", ErrGoalFields, in.TargetAmount)
	}

	years, err := strconv.Atoi(strings.TrimSpace(in.Years))
	if err != nil || years <= 0 || years > constants.MaxGoalYears {
		return goals.Spec{}, fmt.Errorf("%w: years %q must be between 1 and %d", ErrGoalFields, in.Years, constants.MaxGoalYears)
	}

	inflation, err := ParseRate(in.InflationRate)
	if err != nil {
		return goals.Spec{}, fmt.Errorf("inflation: %w", err)
	}
	expectedReturn, err := ParseRate(in.ExpectedReturn)
	if err != nil {
		return goals.Spec{}, fmt.Errorf("expected return: %w", err)
	}

	spec := goals.Spec{
		Name:           name,
		Kind:           kind,
		TargetAmount:   target,
		Years:          years,
		InflationRate:  inflation,
		ExpectedReturn: expectedReturn,
	}
	if goals.Project(spec).FutureValue <= 0 {
		return goals.Spec{}, fmt.Errorf("%w: target is too large to project", ErrGoalFields)
	}
	return spec, nil
}

// PreviewGoalSpec leniently parses a goal for live previews. Unparseable or
// negative numbers, and horizons beyond MaxGoalYears, become 0 so a
// half-typed form still previews (to a zero projection); an unknown kind
// previews as flat.
func PreviewGoalSpec(in GoalInput) goals.Spec {
	kind := goals.Kind(strings.TrimSpace(in.Kind))
	if !kind.Valid() {
		kind = goals.KindFlat
	}
	return goals.Spec{
		Name:           strings.TrimSpace(in.Name),
		Kind:           kind,
		TargetAmount:   lenientFloat(in.TargetAmount),
		Years:          lenientYears(in.Years),
		InflationRate:  mathutil.PercentToFraction(lenientFloat(in.InflationRate)),
		ExpectedReturn: mathutil.PercentToFraction(lenientFloat(in.ExpectedReturn)),
	}
}

func parsePositiveDecimal(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, err
	}
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("amount must be positive")
	}
	return amount, nil
}

func lenientFloat(raw string) float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || value < 0 || !mathutil.IsFinite(value) {
		return 0
	}
	return value
}

func lenientYears(raw string) int {
	trimmed := strings.TrimSpace(raw)
	value, err := strconv.Atoi(trimmed)
	if err != nil {
		// "5.5" years previews as 5, as integer parsing of a prefix would.
		f, ferr := strconv.ParseFloat(trimmed, 64)
		if ferr != nil || !mathutil.IsFinite(f) || f > constants.MaxGoalYears {
			return 0
		}
		value = int(math.Trunc(f))
	}
	if value < 0 || value > constants.MaxGoalYears {
		return 0
	}
	return value
}
