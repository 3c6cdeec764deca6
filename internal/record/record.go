// Package record defines the single-user finance record: salary, budget
// split, transactions, goals and reference inflation data, along with its
// JSON encoding and import merge.
package record

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/iwvelando/finance-tracker/pkg/budget"
	"github.com/iwvelando/finance-tracker/pkg/constants"
	"github.com/iwvelando/finance-tracker/pkg/goals"
	"github.com/iwvelando/finance-tracker/pkg/mathutil"
	"github.com/shopspring/decimal"
)

// TransactionType is the direction of a ledger entry.
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// Transaction is one income or expense entry. Date is YYYY-MM-DD.
type Transaction struct {
	ID       int64           `json:"id"`
	Type     TransactionType `json:"type"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Note     string          `json:"note"`
	Date     string          `json:"date"`
}

// IsIncome reports whether the transaction adds to the balance.
func (t Transaction) IsIncome() bool {
	return t.Type == TransactionIncome
}

// Goal is a saved savings goal. FutureValue and MonthlySIP are stored for
// export but are always recomputed from the inputs before use.
type Goal struct {
	ID             int64      `json:"id"`
	Name           string     `json:"name"`
	Type           goals.Kind `json:"type"`
	TargetAmount   float64    `json:"targetAmount"`
	Years          int        `json:"years"`
	InflationRate  float64    `json:"inflationRate"`
	ExpectedReturn float64    `json:"expectedReturn"`
	FutureValue    float64    `json:"futureValue"`
	MonthlySIP     float64    `json:"monthlySIP"`
	CreatedAt      string     `json:"createdAt,omitempty"`
}

// NewGoal builds a goal from a projection spec and stamps it.
func NewGoal(id int64, spec goals.Spec, createdAt time.Time) Goal {
	g := Goal{
		ID:             id,
		Name:           spec.Name,
		Type:           spec.Kind,
		TargetAmount:   spec.TargetAmount,
		Years:          spec.Years,
		InflationRate:  spec.InflationRate,
		ExpectedReturn: spec.ExpectedReturn,
		CreatedAt:      createdAt.UTC().Format(time.RFC3339Nano),
	}
	g.refresh()
	return g
}

// Spec returns the projection inputs of the goal.
func (g Goal) Spec() goals.Spec {
	return goals.Spec{
		Name:           g.Name,
		Kind:           g.Type,
		TargetAmount:   g.TargetAmount,
		Years:          g.Years,
		InflationRate:  g.InflationRate,
		ExpectedReturn: g.ExpectedReturn,
	}
}

// Projection recomputes the goal projection from its inputs.
func (g Goal) Projection() goals.Projection {
	return goals.Project(g.Spec())
}

// Stale reports whether the stored figures differ from a fresh projection by
// more than a cent.
func (g Goal) Stale() bool {
	p := g.Projection()
	return !mathutil.WithinTolerance(g.FutureValue, mathutil.Round(p.FutureValue), constants.CurrencyTolerance) ||
		!mathutil.WithinTolerance(g.MonthlySIP, mathutil.Round(p.MonthlyContribution), constants.CurrencyTolerance)
}

// refresh stores the projection rounded to cents.
func (g *Goal) refresh() {
	p := g.Projection()
	g.FutureValue = mathutil.Round(p.FutureValue)
	g.MonthlySIP = mathutil.Round(p.MonthlyContribution)
}

// CPIReading is a year-over-year consumer price inflation figure for a month
// (YYYY-MM).
type CPIReading struct {
	Date   string  `json:"date"`
	CPIYoY float64 `json:"cpiYoY"`
}

// InflationData holds the reference inflation figures offered as goal
// defaults.
type InflationData struct {
	Latest CPIReading `json:"latest"`
	Avg5y  float64    `json:"avg5y"`
}

// Record is the whole persisted state of the tracker.
type Record struct {
	Salary        decimal.Decimal `json:"salary"`
	Budgets       budget.Split    `json:"budgets"`
	Transactions  []Transaction   `json:"transactions"`
	Goals         []Goal          `json:"goals"`
	InflationData InflationData   `json:"inflationData"`
}

// Clone returns a copy that shares no slices with r.
func (r Record) Clone() Record {
	out := r
	out.Transactions = append([]Transaction(nil), r.Transactions...)
	out.Goals = append([]Goal(nil), r.Goals...)
	return out
}

// StaleGoals returns the names of goals whose stored projection has drifted
// from their inputs.
func (r Record) StaleGoals() []string {
	var names []string
	for _, g := range r.Goals {
		if g.Stale() {
			names = append(names, g.Name)
		}
	}
	return names
}

// Refresh rewrites every stored goal projection from the goal inputs.
func (r *Record) Refresh() {
	for i := range r.Goals {
		r.Goals[i].refresh()
	}
}

// AddTransaction puts tx at the front of the ledger, newest first.
func (r *Record) AddTransaction(tx Transaction) {
	r.Transactions = append([]Transaction{tx}, r.Transactions...)
}

// AddGoal appends g to the goal list.
func (r *Record) AddGoal(g Goal) {
	r.Goals = append(r.Goals, g)
}

// NextID returns a millisecond timestamp ID that is larger than every ID in
// the record.
func (r Record) NextID(now time.Time) int64 {
	id := now.UnixMilli()
	for _, tx := range r.Transactions {
		if tx.ID >= id {
			id = tx.ID + 1
		}
	}
	for _, g := range r.Goals {
		if g.ID >= id {
			id = g.ID + 1
		}
	}
	return id
}

// Encode returns the record as indented JSON.
func (r Record) Encode() ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode record: %w", err)
	}
	return data, nil
}
