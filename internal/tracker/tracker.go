// Package tracker owns the authoritative finance record, validates changes
// to it and mirrors every accepted change into a store.
package tracker

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iwvelando/finance-tracker/internal/record"
	"github.com/iwvelando/finance-tracker/internal/store"
	"github.com/iwvelando/finance-tracker/pkg/budget"
	"github.com/iwvelando/finance-tracker/pkg/goals"
	"github.com/iwvelando/finance-tracker/pkg/validation"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Tracker is not safe for concurrent use; callers serialise access.
type Tracker struct {
	logger *zap.Logger
	store  store.Store
	record record.Record
	now    func() time.Time
}

// Option customises a Tracker.
type Option func(*Tracker)

// WithClock replaces time.Now, e.g. for deterministic IDs and dates in tests.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		t.now = now
	}
}

// TransactionInput holds an already parsed transaction to add.
type TransactionInput struct {
	Type     record.TransactionType
	Category string
	Amount   decimal.Decimal
	Note     string
	Date     string
}

// Open loads the record from s. A store with nothing saved, or with data
// that cannot be decoded, starts from the default record.
func Open(logger *zap.Logger, s store.Store, opts ...Option) (*Tracker, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if s == nil {
		return nil, fmt.Errorf("store cannot be nil")
	}

	t := &Tracker{logger: logger, store: s, now: time.Now}
	for _, opt := range opts {
		opt(t)
	}

	data, err := s.Load()
	switch {
	case errors.Is(err, store.ErrNotFound):
		logger.Debug("no saved state, starting from defaults",
			zap.String("op", "tracker.Open"),
		)
		t.record = record.Default()
	case err != nil:
		return nil, fmt.Errorf("failed to load saved state: %w", err)
	default:
		r, decodeErr := record.Decode(data)
		if decodeErr != nil {
			logger.Warn("error loading saved state, starting from defaults",
				zap.String("op", "tracker.Open"),
				zap.Error(decodeErr),
			)
			r = record.Default()
		}
		t.record = r
	}

	return t, nil
}

// Close releases the underlying store.
func (t *Tracker) Close() error {
	return t.store.Close()
}

// Record returns a copy of the current record.
func (t *Tracker) Record() record.Record {
	return t.record.Clone()
}

// Summary returns the dashboard view with up to recent transactions.
func (t *Tracker) Summary(recent int) record.Summary {
	return t.record.Summary(recent)
}

// SetSalary replaces the salary.
func (t *Tracker) SetSalary(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: %s", validation.ErrInvalidSalary, amount)
	}

	next := t.record.Clone()
	next.Salary = amount
	if err := t.commit(next, "tracker.SetSalary"); err != nil {
		return err
	}

	t.logger.Info("salary saved",
		zap.String("op", "tracker.SetSalary"),
		zap.String("salary", amount.String()),
	)
	return nil
}

// PreviewBudgets allocates the current salary by split without saving.
func (t *Tracker) PreviewBudgets(split budget.Split) budget.Allocation {
	return budget.Allocate(t.record.Salary, split)
}

// SetBudgets saves split. Saving is refused while the split does not total
// 100%; the returned allocation tells the caller by how much.
func (t *Tracker) SetBudgets(split budget.Split) (budget.Allocation, error) {
	allocation := t.PreviewBudgets(split)
	if !allocation.Valid {
		return allocation, fmt.Errorf("%w: %d%% remaining", ErrInvalidSplit, allocation.RemainingPercent)
	}

	next := t.record.Clone()
	next.Budgets = split
	if err := t.commit(next, "tracker.SetBudgets"); err != nil {
		return allocation, err
	}

	t.logger.Info("budgets saved",
		zap.String("op", "tracker.SetBudgets"),
		zap.Int("needs", split.Needs),
		zap.Int("wants", split.Wants),
		zap.Int("savings", split.Savings),
	)
	return allocation, nil
}

// AddTransaction validates in and records it as the newest transaction.
// An empty date means today.
func (t *Tracker) AddTransaction(in TransactionInput) (record.Transaction, error) {
	if !in.Amount.IsPositive() {
		return record.Transaction{}, fmt.Errorf("%w: %s", validation.ErrInvalidAmount, in.Amount)
	}
	if in.Type != record.TransactionIncome && in.Type != record.TransactionExpense {
		return record.Transaction{}, fmt.Errorf("%w: %q", validation.ErrInvalidTransactionType, in.Type)
	}

	now := t.now()
	date, err := validation.ParseDate(in.Date, now)
	if err != nil {
		return record.Transaction{}, err
	}

	next := t.record.Clone()
	tx := record.Transaction{
		ID:       next.NextID(now),
		Type:     in.Type,
		Category: strings.TrimSpace(in.Category),
		Amount:   in.Amount,
		Note:     strings.TrimSpace(in.Note),
		Date:     date,
	}
	next.AddTransaction(tx)
	if err := t.commit(next, "tracker.AddTransaction"); err != nil {
		return record.Transaction{}, err
	}

	t.logger.Info("transaction added",
		zap.String("op", "tracker.AddTransaction"),
		zap.Int64("id", tx.ID),
		zap.String("type", string(tx.Type)),
		zap.String("amount", tx.Amount.String()),
	)
	return tx, nil
}

// AddGoal projects spec and saves it as a new goal.
func (t *Tracker) AddGoal(spec goals.Spec) (record.Goal, error) {
	spec.Name = strings.TrimSpace(spec.Name)
	if spec.Name == "" || spec.TargetAmount <= 0 || !spec.InRange() {
		return record.Goal{}, validation.ErrGoalFields
	}
	if !spec.Kind.Valid() {
		return record.Goal{}, fmt.Errorf("%w: %q", validation.ErrInvalidGoalKind, spec.Kind)
	}
	if spec.InflationRate < 0 || spec.ExpectedReturn < 0 {
		return record.Goal{}, validation.ErrInvalidRate
	}
	// A valid target always projects above zero unless the result overflowed.
	if goals.Project(spec).FutureValue <= 0 {
		return record.Goal{}, fmt.Errorf("%w: target is too large to project", validation.ErrGoalFields)
	}

	now := t.now()
	next := t.record.Clone()
	goal := record.NewGoal(next.NextID(now), spec, now)
	next.AddGoal(goal)
	if err := t.commit(next, "tracker.AddGoal"); err != nil {
		return record.Goal{}, err
	}

	t.logger.Info("goal saved",
		zap.String("op", "tracker.AddGoal"),
		zap.String("name", goal.Name),
		zap.Float64("futureValue", goal.FutureValue),
		zap.Float64("monthlySIP", goal.MonthlySIP),
	)
	return goal, nil
}

// Import merges an exported record into the current one field by field.
func (t *Tracker) Import(data []byte) error {
	next, err := record.Merge(t.record, data)
	if err != nil {
		return err
	}
	if stale := next.StaleGoals(); len(stale) > 0 {
		t.logger.Info("recomputing drifted goal projections",
			zap.String("op", "tracker.Import"),
			zap.Strings("goals", stale),
		)
	}
	next.Refresh()
	if err := t.commit(next, "tracker.Import"); err != nil {
		return err
	}

	t.logger.Info("data imported",
		zap.String("op", "tracker.Import"),
		zap.Int("transactions", len(next.Transactions)),
		zap.Int("goals", len(next.Goals)),
	)
	return nil
}

// Export returns the current record as indented JSON.
func (t *Tracker) Export() ([]byte, error) {
	return t.record.Encode()
}

// commit persists next and only then makes it current, so a failed save
// leaves the in-memory record unchanged.
func (t *Tracker) commit(next record.Record, op string) error {
	data, err := next.Encode()
	if err != nil {
		return err
	}
	if err := t.store.Save(data); err != nil {
		t.logger.Error("failed to save state",
			zap.String("op", op),
			zap.Error(err),
		)
		return fmt.Errorf("failed to save state: %w", err)
	}
	t.record = next
	return nil
}
