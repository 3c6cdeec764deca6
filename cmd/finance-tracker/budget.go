package main

import (
	"fmt"

	"github.com/iwvelando/finance-tracker/pkg/budget"
	"github.com/iwvelando/finance-tracker/pkg/output"
	"github.com/iwvelando/finance-tracker/pkg/validation"
	"github.com/spf13/cobra"
)

type splitFlags struct {
	preset  string
	needs   string
	wants   string
	savings string
}

func (f *splitFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.preset, "preset", "", "start from a preset: 50-30-20, 60-20-20 or 70-20-10")
	cmd.Flags().StringVar(&f.needs, "needs", "", "needs percentage")
	cmd.Flags().StringVar(&f.wants, "wants", "", "wants percentage")
	cmd.Flags().StringVar(&f.savings, "savings", "", "savings percentage")
}

func (f *splitFlags) any(cmd *cobra.Command) bool {
	for _, name := range []string{"preset", "needs", "wants", "savings"} {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

// split starts from base, applies --preset, then any explicit percentages.
func (f *splitFlags) split(cmd *cobra.Command, base budget.Split) (budget.Split, error) {
	split := base
	if f.preset != "" {
		var ok bool
		if split, ok = budget.ApplyPreset(split, f.preset); !ok {
			return base, fmt.Errorf("unknown budget preset %q; expected one of %v", f.preset, budget.PresetNames())
		}
	}

	for _, field := range []struct {
		name string
		raw  string
		dst  *int
	}{
		{"needs", f.needs, &split.Needs},
		{"wants", f.wants, &split.Wants},
		{"savings", f.savings, &split.Savings},
	} {
		if !cmd.Flags().Changed(field.name) {
			continue
		}
		pct, err := validation.ParsePercent(field.raw)
		if err != nil {
			return base, fmt.Errorf("%s: %w", field.name, err)
		}
		*field.dst = pct
	}
	return split, nil
}

func newBudgetCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Show, preview and save the needs/wants/savings split",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the saved split and its allocation of the salary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.renderer()
			if err != nil {
				return err
			}
			rec := a.tracker.Record()
			return r.Budget(output.NewBudgetView(rec, rec.Budgets))
		},
	})

	var previewFlags splitFlags
	preview := &cobra.Command{
		Use:   "preview",
		Short: "Allocate the salary by a split without saving it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rec := a.tracker.Record()
			split, err := previewFlags.split(cmd, rec.Budgets)
			if err != nil {
				return err
			}
			r, err := a.renderer()
			if err != nil {
				return err
			}
			return r.Budget(output.NewBudgetView(rec, split))
		},
	}
	previewFlags.register(preview)
	cmd.AddCommand(preview)

	var setFlags splitFlags
	set := &cobra.Command{
		Use:   "set",
		Short: "Save a split; refused unless it totals 100%",
		Long:  "Save a split. Without flags the configured default preset is applied. The split is refused unless it totals 100%.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !setFlags.any(cmd) {
				setFlags.preset = a.conf.Defaults.BudgetPreset
			}
			rec := a.tracker.Record()
			split, err := setFlags.split(cmd, rec.Budgets)
			if err != nil {
				return err
			}

			r, err := a.renderer()
			if err != nil {
				return err
			}
			if _, err := a.tracker.SetBudgets(split); err != nil {
				// Show where the split stands before reporting the refusal.
				if renderErr := r.Budget(output.NewBudgetView(rec, split)); renderErr != nil {
					return renderErr
				}
				return err
			}
			return r.Budget(output.NewBudgetView(a.tracker.Record(), split))
		},
	}
	setFlags.register(set)
	cmd.AddCommand(set)

	cmd.AddCommand(&cobra.Command{
		Use:   "presets",
		Short: "List the budget presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.renderer()
			if err != nil {
				return err
			}
			return r.Presets()
		},
	})

	return cmd
}
