package main

import (
	"fmt"

	"github.com/iwvelando/finance-tracker/internal/record"
	"github.com/iwvelando/finance-tracker/internal/tracker"
	"github.com/iwvelando/finance-tracker/pkg/datetime"
	"github.com/iwvelando/finance-tracker/pkg/validation"
	"github.com/spf13/cobra"
)

func newTransactionCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transaction",
		Aliases: []string{"tx"},
		Short:   "Record and list income and expenses",
	}

	var (
		txType   string
		category string
		amount   string
		note     string
		date     string
	)
	add := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction as the newest entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			parsedType, err := validation.ParseTransactionType(txType)
			if err != nil {
				return err
			}
			parsedAmount, err := validation.ParseAmount(amount)
			if err != nil {
				return err
			}

			tx, err := a.tracker.AddTransaction(tracker.TransactionInput{
				Type:     parsedType,
				Category: category,
				Amount:   parsedAmount,
				Note:     note,
				Date:     date,
			})
			if err != nil {
				return err
			}

			r, err := a.renderer()
			if err != nil {
				return err
			}
			return r.Transactions([]record.Transaction{tx})
		},
	}
	add.Flags().StringVar(&txType, "type", "expense", "income or expense")
	add.Flags().StringVar(&category, "category", "", "category, e.g. Groceries")
	add.Flags().StringVar(&amount, "amount", "", "positive amount")
	add.Flags().StringVar(&note, "note", "", "free-form note")
	add.Flags().StringVar(&date, "date", "", "date as YYYY-MM-DD (default today)")
	_ = add.MarkFlagRequired("amount")
	cmd.AddCommand(add)

	var (
		limit int
		month string
	)
	list := &cobra.Command{
		Use:   "list",
		Short: "List transactions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.renderer()
			if err != nil {
				return err
			}
			rec := a.tracker.Record()
			txs := rec.Transactions
			if month != "" {
				if !datetime.ValidMonth(month) {
					return fmt.Errorf("month must be formatted as YYYY-MM, got %q", month)
				}
				txs = rec.TransactionsInMonth(month)
			}
			if limit > 0 && limit < len(txs) {
				txs = txs[:limit]
			}
			return r.Transactions(txs)
		},
	}
	list.Flags().IntVar(&limit, "limit", 0, "show at most this many transactions (0 for all)")
	list.Flags().StringVar(&month, "month", "", "only transactions dated in this month (YYYY-MM)")
	cmd.AddCommand(list)

	return cmd
}
