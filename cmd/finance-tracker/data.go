package main

import (
	"fmt"
	"io"
	"os"

	"github.com/iwvelando/finance-tracker/pkg/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		exportFormat string
		file         string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the full record as JSON or YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var w io.Writer = a.out
			if file != "" {
				f, err := os.Create(file)
				if err != nil {
					return fmt.Errorf("failed to create export file: %w", err)
				}
				defer f.Close()
				w = f
			}

			if err := output.ExportRecord(w, a.tracker.Record(), exportFormat); err != nil {
				return err
			}
			if file != "" {
				a.logger.Info("data exported",
					zap.String("op", "main.export"),
					zap.String("file", file),
				)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&exportFormat, "format", output.ExportJSON, "export format: json or yaml")
	cmd.Flags().StringVarP(&file, "file", "f", "", "write to this file instead of stdout")
	return cmd
}

func newImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Merge a JSON export into the current record",
		Long:  "Merge a JSON export into the current record. Top-level fields present in the file replace the current values; absent fields are kept.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read import file: %w", err)
			}
			if err := a.tracker.Import(data); err != nil {
				return err
			}

			r, err := a.renderer()
			if err != nil {
				return err
			}
			return r.Summary(a.tracker.Summary(a.conf.Defaults.RecentTransactions))
		},
	}
}
