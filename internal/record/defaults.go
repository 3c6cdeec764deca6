package record

import (
	"github.com/iwvelando/finance-tracker/pkg/budget"
	"github.com/iwvelando/finance-tracker/pkg/goals"
	"github.com/shopspring/decimal"
)

// Default returns the record a new installation starts from.
func Default() Record {
	r := Record{
		Salary:  decimal.NewFromInt(45000),
		Budgets: budget.Split{Needs: 50, Wants: 30, Savings: 20},
		Transactions: []Transaction{
			{ID: 1, Type: TransactionExpense, Category: "Groceries", Amount: decimal.NewFromInt(2450), Note: "Grocery Shopping", Date: "2023-08-30"},
			{ID: 2, Type: TransactionIncome, Category: "Freelance", Amount: decimal.NewFromInt(8500), Note: "Freelance Payment", Date: "2023-08-28"},
			{ID: 3, Type: TransactionExpense, Category: "Utilities", Amount: decimal.NewFromInt(1850), Note: "Electricity Bill", Date: "2023-08-25"},
			{ID: 4, Type: TransactionExpense, Category: "Dining", Amount: decimal.NewFromInt(1200), Note: "Dinner Out", Date: "2023-08-22"},
			{ID: 5, Type: TransactionIncome, Category: "Salary", Amount: decimal.NewFromInt(40000), Note: "Monthly Salary", Date: "2023-08-20"},
		},
		Goals: []Goal{
			{
				ID:             1,
				Name:           "New Car",
				Type:           goals.KindInflationAdjusted,
				TargetAmount:   800000,
				Years:          5,
				InflationRate:  0.047,
				ExpectedReturn: 0.12,
			},
		},
		InflationData: InflationData{
			Latest: CPIReading{Date: "2025-07", CPIYoY: 0.047},
			Avg5y:  0.053,
		},
	}
	r.Refresh()
	return r
}
