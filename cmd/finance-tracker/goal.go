package main

import (
	"strconv"

	"github.com/iwvelando/finance-tracker/internal/record"
	"github.com/iwvelando/finance-tracker/pkg/goals"
	"github.com/iwvelando/finance-tracker/pkg/mathutil"
	"github.com/iwvelando/finance-tracker/pkg/output"
	"github.com/iwvelando/finance-tracker/pkg/validation"
	"github.com/spf13/cobra"
)

const defaultExpectedReturn = "12"

type goalFlags struct {
	name           string
	kind           string
	target         string
	years          string
	inflation      string
	expectedReturn string
}

func (f *goalFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "goal name")
	cmd.Flags().StringVar(&f.kind, "type", string(goals.KindInflationAdjusted), goals.KindNames())
	cmd.Flags().StringVar(&f.target, "target", "", "target amount in today's money")
	cmd.Flags().StringVar(&f.years, "years", "", "years until the goal")
	cmd.Flags().StringVar(&f.inflation, "inflation", "", "annual inflation percent (default latest CPI)")
	cmd.Flags().StringVar(&f.expectedReturn, "return", defaultExpectedReturn, "expected annual return percent")
}

// input fills an unset inflation rate from the latest CPI reading, as the
// goal form does.
func (f *goalFlags) input(cmd *cobra.Command, rec record.Record) validation.GoalInput {
	inflation := f.inflation
	if !cmd.Flags().Changed("inflation") {
		inflation = strconv.FormatFloat(mathutil.FractionToPercent(rec.InflationData.Latest.CPIYoY), 'f', -1, 64)
	}
	return validation.GoalInput{
		Name:           f.name,
		Kind:           f.kind,
		TargetAmount:   f.target,
		Years:          f.years,
		InflationRate:  inflation,
		ExpectedReturn: f.expectedReturn,
	}
}

func newGoalCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Project and save savings goals",
	}

	var previewFlags goalFlags
	preview := &cobra.Command{
		Use:   "preview",
		Short: "Project a goal without saving it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			spec := validation.PreviewGoalSpec(previewFlags.input(cmd, a.tracker.Record()))
			r, err := a.renderer()
			if err != nil {
				return err
			}
			return r.GoalPreview(output.GoalPreview{Spec: spec, Projection: goals.Project(spec)})
		},
	}
	previewFlags.register(preview)
	cmd.AddCommand(preview)

	var addFlags goalFlags
	add := &cobra.Command{
		Use:   "add",
		Short: "Project a goal and save it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := validation.ParseGoalSpec(addFlags.input(cmd, a.tracker.Record()))
			if err != nil {
				return err
			}
			goal, err := a.tracker.AddGoal(spec)
			if err != nil {
				return err
			}
			r, err := a.renderer()
			if err != nil {
				return err
			}
			return r.Goals([]record.Goal{goal})
		},
	}
	addFlags.register(add)
	cmd.AddCommand(add)

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List saved goals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.renderer()
			if err != nil {
				return err
			}
			return r.Goals(a.tracker.Record().Goals)
		},
	})

	return cmd
}
