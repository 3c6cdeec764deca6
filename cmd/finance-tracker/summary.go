package main

import (
	"github.com/spf13/cobra"
)

func newSummaryCmd(a *app) *cobra.Command {
	var recent int

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show salary, totals, budget allocation, recent transactions and goals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.renderer()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("recent") {
				recent = a.conf.Defaults.RecentTransactions
			}
			return r.Summary(a.tracker.Summary(recent))
		},
	}
	cmd.Flags().IntVar(&recent, "recent", 0, "number of recent transactions to show (default from config)")
	return cmd
}
