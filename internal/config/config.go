// Package config defines the application configuration and loads it from
// YAML with environment overrides.
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/finance-tracker/internal/store"
	"github.com/iwvelando/finance-tracker/pkg/budget"
	"github.com/iwvelando/finance-tracker/pkg/constants"
	"github.com/iwvelando/finance-tracker/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for finance-tracker.
type Configuration struct {
	Logging  LoggingConfig  `yaml:"logging,omitempty" mapstructure:"logging"`
	Output   OutputConfig   `yaml:"output,omitempty" mapstructure:"output"`
	Storage  StorageConfig  `yaml:"storage,omitempty" mapstructure:"storage"`
	Defaults DefaultsConfig `yaml:"defaults,omitempty" mapstructure:"defaults"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty" mapstructure:"level"`           // debug, info, warn, error
	Format     string `yaml:"format,omitempty" mapstructure:"format"`         // json, console
	OutputFile string `yaml:"outputFile,omitempty" mapstructure:"outputFile"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format         string `yaml:"format,omitempty" mapstructure:"format"` // pretty, csv, json
	CurrencySymbol string `yaml:"currencySymbol,omitempty" mapstructure:"currencySymbol"`
}

// StorageConfig selects where the finance record is kept.
type StorageConfig struct {
	Backend string `yaml:"backend,omitempty" mapstructure:"backend"` // file, sqlite, memory
	Path    string `yaml:"path,omitempty" mapstructure:"path"`
}

// DefaultsConfig holds presentation defaults.
type DefaultsConfig struct {
	BudgetPreset       string `yaml:"budgetPreset,omitempty" mapstructure:"budgetPreset"`
	RecentTransactions int    `yaml:"recentTransactions,omitempty" mapstructure:"recentTransactions"`
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yml")
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.outputFile", "")
	v.SetDefault("output.format", constants.OutputFormatPretty)
	v.SetDefault("output.currencySymbol", constants.DefaultCurrencySymbol)
	v.SetDefault("storage.backend", constants.StorageBackendFile)
	v.SetDefault("storage.path", constants.DefaultStoragePath)
	v.SetDefault("defaults.budgetPreset", constants.DefaultBudgetPreset)
	v.SetDefault("defaults.recentTransactions", constants.DefaultRecentTransactions)
	return v
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %w", err)
	}

	return decode(v)
}

// LoadConfigurationFromReader loads YAML-formatted configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config, %w", err)
	}

	return decode(v)
}

// Default returns the configuration used when no config file exists.
// Environment overrides still apply.
func Default() *Configuration {
	conf, err := decode(newViper())
	if err != nil {
		conf = &Configuration{}
	}
	conf.Normalize()
	return conf
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}
	configuration.Normalize()
	return &configuration, nil
}

// Normalize fills empty fields with their defaults and canonicalises case.
func (c *Configuration) Normalize() {
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if c.Output.Format == "" {
		c.Output.Format = constants.OutputFormatPretty
	}
	if c.Output.CurrencySymbol == "" {
		c.Output.CurrencySymbol = constants.DefaultCurrencySymbol
	}

	c.Storage.Backend = strings.ToLower(strings.TrimSpace(c.Storage.Backend))
	if c.Storage.Backend == "" {
		c.Storage.Backend = constants.StorageBackendFile
	}
	if c.Storage.Path == "" && c.Storage.Backend != constants.StorageBackendMemory {
		c.Storage.Path = constants.DefaultStoragePath
	}

	c.Defaults.BudgetPreset = strings.TrimSpace(c.Defaults.BudgetPreset)
	if c.Defaults.BudgetPreset == "" {
		c.Defaults.BudgetPreset = constants.DefaultBudgetPreset
	}
}

// Validate returns an error for settings the application cannot run with.
func (c *Configuration) Validate() error {
	if err := validation.ValidateOutputFormat(c.Output.Format); err != nil {
		return err
	}

	switch c.Storage.Backend {
	case constants.StorageBackendFile, constants.StorageBackendSQLite, constants.StorageBackendMemory:
	default:
		return fmt.Errorf("expected storage backend of %s, %s or %s, got %s",
			constants.StorageBackendFile, constants.StorageBackendSQLite, constants.StorageBackendMemory, c.Storage.Backend)
	}

	return nil
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if _, ok := budget.Preset(c.Defaults.BudgetPreset); !ok {
		warnings = append(warnings, fmt.Sprintf("unknown budget preset %q; expected one of %s",
			c.Defaults.BudgetPreset, strings.Join(budget.PresetNames(), ", ")))
	}

	if c.Defaults.RecentTransactions <= 0 {
		warnings = append(warnings, fmt.Sprintf("recentTransactions is %d; the summary will show no transactions",
			c.Defaults.RecentTransactions))
	}

	if c.Storage.Backend == constants.StorageBackendMemory {
		warnings = append(warnings, "memory storage backend selected; changes are lost on exit")
	}

	return warnings
}

// StoreConfig returns the storage settings in the form the store package
// expects.
func (c *Configuration) StoreConfig() store.Config {
	return store.Config{Backend: c.Storage.Backend, Path: c.Storage.Path}
}
