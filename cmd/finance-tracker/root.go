package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/iwvelando/finance-tracker/internal/config"
	"github.com/iwvelando/finance-tracker/internal/store"
	"github.com/iwvelando/finance-tracker/internal/tracker"
	"github.com/iwvelando/finance-tracker/pkg/constants"
	"github.com/iwvelando/finance-tracker/pkg/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries the state shared by every command once the root pre-run has
// loaded configuration and opened the tracker.
type app struct {
	configPath   string
	logLevel     string
	outputFormat string

	out     io.Writer
	conf    *config.Configuration
	logger  *zap.Logger
	tracker *tracker.Tracker
}

// run executes the command line args, writing command output to out. The
// tracker is closed even when the command fails.
func run(out io.Writer, args []string) error {
	a := &app{out: out}
	root := newRootCmd(a)
	root.SetArgs(args)

	err := root.Execute()
	if closeErr := a.teardown(); err == nil {
		err = closeErr
	}
	return err
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "finance-tracker",
		Short:         "Personal finance tracker",
		Long:          "Track salary, budget split, transactions and savings goals.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.Flags().Changed("config"))
		},
	}
	root.SetOut(a.out)

	root.PersistentFlags().StringVar(&a.configPath, "config", constants.DefaultConfigFile, "path to configuration file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&a.outputFormat, "output-format", "", "type of output override: pretty, csv, json")

	root.AddCommand(
		newSummaryCmd(a),
		newSalaryCmd(a),
		newBudgetCmd(a),
		newTransactionCmd(a),
		newGoalCmd(a),
		newExportCmd(a),
		newImportCmd(a),
		newServeCmd(a),
	)
	return root
}

// setup loads configuration, builds the logger and opens the tracker. A
// missing config file is only an error when --config was given explicitly.
func (a *app) setup(configExplicit bool) error {
	conf, err := config.LoadConfiguration(a.configPath)
	if err != nil {
		if configExplicit || !configFileMissing(a.configPath) {
			return fmt.Errorf("failed to load configuration at %s: %w", a.configPath, err)
		}
		conf = config.Default()
	}

	if a.outputFormat != "" {
		conf.Output.Format = a.outputFormat
	}
	if err := conf.Validate(); err != nil {
		return err
	}
	a.conf = conf

	logger, err := initializeLogger(conf.Logging, a.logLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger

	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main.setup"),
		)
	}

	s, err := store.Open(conf.StoreConfig())
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}

	tr, err := tracker.Open(logger, s)
	if err != nil {
		_ = s.Close()
		return err
	}
	a.tracker = tr

	logger.Debug("tracker ready",
		zap.String("op", "main.setup"),
		zap.String("backend", conf.Storage.Backend),
		zap.String("path", conf.Storage.Path),
	)
	return nil
}

func (a *app) teardown() error {
	var err error
	if a.tracker != nil {
		err = a.tracker.Close()
		a.tracker = nil
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
	return err
}

func (a *app) renderer() (*output.Renderer, error) {
	return output.NewRenderer(a.out, a.conf.Output.Format, a.conf.Output.CurrencySymbol)
}

func configFileMissing(path string) bool {
	_, err := os.Stat(path)
	return errors.Is(err, fs.ErrNotExist)
}
