package record

import (
	"sort"

	"github.com/iwvelando/finance-tracker/pkg/budget"
	"github.com/iwvelando/finance-tracker/pkg/datetime"
	"github.com/shopspring/decimal"
)

// Summary is the dashboard view of a record.
type Summary struct {
	Salary             decimal.Decimal   `json:"salary"`
	Income             decimal.Decimal   `json:"income"`
	Expenses           decimal.Decimal   `json:"expenses"`
	Net                decimal.Decimal   `json:"net"`
	Budgets            budget.Split      `json:"budgets"`
	Allocation         budget.Allocation `json:"allocation"`
	RecentTransactions []Transaction     `json:"recentTransactions"`
	Goals              []Goal            `json:"goals"`
	InflationData      InflationData     `json:"inflationData"`
}

// Totals sums income and expense transactions.
func (r Record) Totals() (income, expenses decimal.Decimal) {
	income, expenses = decimal.Zero, decimal.Zero
	for _, tx := range r.Transactions {
		switch tx.Type {
		case TransactionIncome:
			income = income.Add(tx.Amount)
		case TransactionExpense:
			expenses = expenses.Add(tx.Amount)
		}
	}
	return income, expenses
}

// Recent returns up to n transactions from the front of the ledger.
func (r Record) Recent(n int) []Transaction {
	if n <= 0 {
		return []Transaction{}
	}
	if n > len(r.Transactions) {
		n = len(r.Transactions)
	}
	return append([]Transaction{}, r.Transactions[:n]...)
}

// TransactionsInMonth returns the transactions dated in month (YYYY-MM),
// newest first. Entries with unparseable dates are skipped. Same-day entries
// keep ledger order.
func (r Record) TransactionsInMonth(month string) []Transaction {
	out := []Transaction{}
	for _, tx := range r.Transactions {
		if ok, err := datetime.InMonth(tx.Date, month); err == nil && ok {
			out = append(out, tx)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		after, _ := datetime.DateBeforeDate(out[j].Date, out[i].Date)
		return after
	})
	return out
}

// Summary computes the dashboard view, showing up to recent transactions.
func (r Record) Summary(recent int) Summary {
	income, expenses := r.Totals()

	view := r.Clone()
	view.Refresh()

	return Summary{
		Salary:             r.Salary,
		Income:             income,
		Expenses:           expenses,
		Net:                income.Sub(expenses),
		Budgets:            r.Budgets,
		Allocation:         budget.Allocate(r.Salary, r.Budgets),
		RecentTransactions: r.Recent(recent),
		Goals:              view.Goals,
		InflationData:      r.InflationData,
	}
}
