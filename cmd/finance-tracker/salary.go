package main

import (
	"github.com/iwvelando/finance-tracker/pkg/output"
	"github.com/iwvelando/finance-tracker/pkg/validation"
	"github.com/spf13/cobra"
)

func newSalaryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "salary",
		Short: "Manage the monthly salary",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <amount>",
		Short: "Save the monthly salary and show the resulting allocation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := validation.ParseSalary(args[0])
			if err != nil {
				return err
			}
			if err := a.tracker.SetSalary(amount); err != nil {
				return err
			}

			r, err := a.renderer()
			if err != nil {
				return err
			}
			rec := a.tracker.Record()
			return r.Budget(output.NewBudgetView(rec, rec.Budgets))
		},
	})
	return cmd
}
