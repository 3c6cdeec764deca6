// Package output renders tracker views as pretty terminal tables, CSV or
// JSON, and exports the record as JSON or YAML.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/iwvelando/finance-tracker/internal/record"
	"github.com/iwvelando/finance-tracker/pkg/budget"
	"github.com/iwvelando/finance-tracker/pkg/constants"
	"github.com/iwvelando/finance-tracker/pkg/format"
	"github.com/iwvelando/finance-tracker/pkg/goals"
	"github.com/iwvelando/finance-tracker/pkg/validation"
)

// Renderer writes views to w in one output format.
type Renderer struct {
	w      io.Writer
	format string
	symbol string
}

// NewRenderer returns a renderer for the given output format and currency
// symbol.
func NewRenderer(w io.Writer, outputFormat, symbol string) (*Renderer, error) {
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		return nil, err
	}
	if symbol == "" {
		symbol = constants.DefaultCurrencySymbol
	}
	return &Renderer{w: w, format: outputFormat, symbol: symbol}, nil
}

// GoalPreview pairs goal inputs with their projection.
type GoalPreview struct {
	Spec       goals.Spec       `json:"spec"`
	Projection goals.Projection `json:"projection"`
}

// BudgetView pairs a split with its allocation of the salary.
type BudgetView struct {
	Salary     string            `json:"salary"`
	Split      budget.Split      `json:"split"`
	Status     budget.Status     `json:"status"`
	Allocation budget.Allocation `json:"allocation"`
}

// NewBudgetView builds the budget view of split against the record salary.
func NewBudgetView(r record.Record, split budget.Split) BudgetView {
	allocation := budget.Allocate(r.Salary, split)
	return BudgetView{
		Salary:     r.Salary.StringFixed(constants.DecimalPlaces),
		Split:      split,
		Status:     allocation.Status(),
		Allocation: allocation,
	}
}

// Summary renders the dashboard.
func (r *Renderer) Summary(s record.Summary) error {
	switch r.format {
	case constants.OutputFormatJSON:
		return r.json(s)
	case constants.OutputFormatCSV:
		rows := [][]string{
			{"metric", "value"},
			{"salary", s.Salary.StringFixed(constants.DecimalPlaces)},
			{"income", s.Income.StringFixed(constants.DecimalPlaces)},
			{"expenses", s.Expenses.StringFixed(constants.DecimalPlaces)},
			{"net", s.Net.StringFixed(constants.DecimalPlaces)},
		}
		for _, c := range budget.Categories() {
			rows = append(rows, []string{string(c), s.Allocation.Amounts.Amount(c).StringFixed(constants.DecimalPlaces)})
		}
		rows = append(rows,
			[]string{"remainingPercent", strconv.Itoa(s.Allocation.RemainingPercent)},
			[]string{"inflationLatest", strconv.FormatFloat(s.InflationData.Latest.CPIYoY, 'f', -1, 64)},
			[]string{"inflationAvg5y", strconv.FormatFloat(s.InflationData.Avg5y, 'f', -1, 64)},
		)
		return r.csv(rows)
	}

	kpis := table{
		title:      "Overview",
		headers:    []string{"Metric", "Amount"},
		rightAlign: map[int]bool{1: true},
		rows: [][]string{
			{"Monthly salary", format.DecimalCurrency(s.Salary, r.symbol)},
			{"Total income", incomeStyle.Render(format.DecimalCurrency(s.Income, r.symbol))},
			{"Total expenses", expenseStyle.Render(format.DecimalCurrency(s.Expenses, r.symbol))},
			{"Net", r.netCell(s)},
		},
	}
	if _, err := fmt.Fprintln(r.w, kpis.render()); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(r.w, r.allocationTable(s.Allocation, s.Budgets).render()+r.remainingLine(s.Allocation)); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(r.w, r.transactionTable("Recent transactions", s.RecentTransactions).render()); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(r.w, r.goalTable(s.Goals).render()); err != nil {
		return err
	}

	_, err := fmt.Fprintf(r.w, "%s\n", mutedStyle.Render(fmt.Sprintf("Inflation: latest %s (%s), 5-year average %s",
		format.RatePercent(s.InflationData.Latest.CPIYoY), s.InflationData.Latest.Date, format.RatePercent(s.InflationData.Avg5y))))
	return err
}

// Budget renders a split and its allocation.
func (r *Renderer) Budget(v BudgetView) error {
	switch r.format {
	case constants.OutputFormatJSON:
		return r.json(v)
	case constants.OutputFormatCSV:
		rows := [][]string{{"category", "percent", "amount"}}
		for _, c := range budget.Categories() {
			rows = append(rows, []string{
				string(c),
				strconv.Itoa(v.Split.Percent(c)),
				v.Allocation.Amounts.Amount(c).StringFixed(constants.DecimalPlaces),
			})
		}
		rows = append(rows, []string{"remaining", strconv.Itoa(v.Allocation.RemainingPercent), ""})
		return r.csv(rows)
	}

	_, err := fmt.Fprintln(r.w, r.allocationTable(v.Allocation, v.Split).render()+r.remainingLine(v.Allocation))
	return err
}

// Presets lists the named budget presets.
func (r *Renderer) Presets() error {
	type preset struct {
		Name  string       `json:"name"`
		Split budget.Split `json:"split"`
	}
	var presets []preset
	for _, name := range budget.PresetNames() {
		split, _ := budget.Preset(name)
		presets = append(presets, preset{Name: name, Split: split})
	}

	switch r.format {
	case constants.OutputFormatJSON:
		return r.json(presets)
	case constants.OutputFormatCSV:
		rows := [][]string{{"name", "needs", "wants", "savings"}}
		for _, p := range presets {
			rows = append(rows, []string{p.Name, strconv.Itoa(p.Split.Needs), strconv.Itoa(p.Split.Wants), strconv.Itoa(p.Split.Savings)})
		}
		return r.csv(rows)
	}

	t := table{
		title:      "Budget presets",
		headers:    []string{"Preset", "Needs", "Wants", "Savings"},
		rightAlign: map[int]bool{1: true, 2: true, 3: true},
	}
	for _, p := range presets {
		t.rows = append(t.rows, []string{p.Name, format.Percent(p.Split.Needs), format.Percent(p.Split.Wants), format.Percent(p.Split.Savings)})
	}
	_, err := fmt.Fprint(r.w, t.render())
	return err
}

// Transactions renders a ledger, newest first.
func (r *Renderer) Transactions(txs []record.Transaction) error {
	switch r.format {
	case constants.OutputFormatJSON:
		if txs == nil {
			txs = []record.Transaction{}
		}
		return r.json(txs)
	case constants.OutputFormatCSV:
		rows := [][]string{{"id", "date", "type", "category", "note", "amount"}}
		for _, tx := range txs {
			rows = append(rows, []string{
				strconv.FormatInt(tx.ID, 10),
				tx.Date,
				string(tx.Type),
				tx.Category,
				tx.Note,
				tx.Amount.StringFixed(constants.DecimalPlaces),
			})
		}
		return r.csv(rows)
	}

	_, err := fmt.Fprint(r.w, r.transactionTable("Transactions", txs).render())
	return err
}

// Goals renders saved goals with projections recomputed from their inputs.
func (r *Renderer) Goals(list []record.Goal) error {
	switch r.format {
	case constants.OutputFormatJSON:
		if list == nil {
			list = []record.Goal{}
		}
		return r.json(list)
	case constants.OutputFormatCSV:
		rows := [][]string{{"id", "name", "type", "targetAmount", "years", "inflationRate", "expectedReturn", "futureValue", "monthlySIP"}}
		for _, g := range list {
			p := g.Projection()
			rows = append(rows, []string{
				strconv.FormatInt(g.ID, 10),
				g.Name,
				string(g.Type),
				formatFloat(g.TargetAmount),
				strconv.Itoa(g.Years),
				strconv.FormatFloat(g.InflationRate, 'f', -1, 64),
				strconv.FormatFloat(g.ExpectedReturn, 'f', -1, 64),
				formatFloat(p.FutureValue),
				formatFloat(p.MonthlyContribution),
			})
		}
		return r.csv(rows)
	}

	_, err := fmt.Fprint(r.w, r.goalTable(list).render())
	return err
}

// GoalPreview renders an unsaved projection the way the live preview does,
// rounded to whole currency units.
func (r *Renderer) GoalPreview(p GoalPreview) error {
	switch r.format {
	case constants.OutputFormatJSON:
		return r.json(p)
	case constants.OutputFormatCSV:
		return r.csv([][]string{
			{"futureValue", "monthlyContribution"},
			{formatFloat(p.Projection.FutureValue), formatFloat(p.Projection.MonthlyContribution)},
		})
	}

	_, err := fmt.Fprintf(r.w, "%s\nFuture value needed: %s\nMonthly SIP required: %s\n",
		titleStyle.Render("Goal preview"),
		format.Whole(p.Projection.FutureValue, r.symbol),
		format.Whole(p.Projection.MonthlyContribution, r.symbol),
	)
	return err
}

func (r *Renderer) allocationTable(a budget.Allocation, split budget.Split) table {
	t := table{
		title:      "Budget allocation",
		headers:    []string{"Category", "Percent", "Amount"},
		rightAlign: map[int]bool{1: true, 2: true},
	}
	for _, c := range budget.Categories() {
		t.rows = append(t.rows, []string{
			categoryLabel(c),
			format.Percent(split.Percent(c)),
			format.DecimalCurrency(a.Amounts.Amount(c), r.symbol),
		})
	}
	return t
}

func (r *Renderer) remainingLine(a budget.Allocation) string {
	line := "Remaining: " + format.Percent(a.RemainingPercent)
	switch a.Status() {
	case budget.StatusUnder:
		return underStyle.Render(line + " unallocated")
	case budget.StatusOver:
		return overStyle.Render(line + " over-allocated")
	}
	return incomeStyle.Render(line)
}

func (r *Renderer) transactionTable(title string, txs []record.Transaction) table {
	t := table{
		title:      title,
		headers:    []string{"Date", "Category", "Note", "Amount"},
		rightAlign: map[int]bool{3: true},
	}
	for _, tx := range txs {
		amount := format.Signed(tx.Amount, tx.IsIncome(), r.symbol)
		if tx.IsIncome() {
			amount = incomeStyle.Render(amount)
		} else {
			amount = expenseStyle.Render(amount)
		}
		t.rows = append(t.rows, []string{tx.Date, tx.Category, tx.Note, amount})
	}
	return t
}

func (r *Renderer) goalTable(list []record.Goal) table {
	t := table{
		title:      "Goals",
		headers:    []string{"Goal", "Type", "Target", "Years", "Future value", "Monthly SIP"},
		rightAlign: map[int]bool{2: true, 3: true, 4: true, 5: true},
	}
	for _, g := range list {
		p := g.Projection()
		t.rows = append(t.rows, []string{
			g.Name,
			kindLabel(g.Type),
			format.Currency(g.TargetAmount, r.symbol),
			strconv.Itoa(g.Years),
			format.Currency(p.FutureValue, r.symbol),
			format.Currency(p.MonthlyContribution, r.symbol),
		})
	}
	return t
}

func (r *Renderer) netCell(s record.Summary) string {
	net := format.DecimalCurrency(s.Net, r.symbol)
	if s.Net.IsNegative() {
		return expenseStyle.Render(net)
	}
	return incomeStyle.Render(net)
}

func (r *Renderer) json(v any) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (r *Renderer) csv(rows [][]string) error {
	cw := csv.NewWriter(r.w)
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}

func categoryLabel(c budget.Category) string {
	switch c {
	case budget.Needs:
		return "Needs"
	case budget.Wants:
		return "Wants"
	case budget.Savings:
		return "Savings"
	}
	return string(c)
}

func kindLabel(k goals.Kind) string {
	if k == goals.KindInflationAdjusted {
		return "Inflation-adjusted"
	}
	return "Flat"
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', constants.DecimalPlaces, 64)
}
