package config

import (
	"strings"
	"testing"

	"github.com/iwvelando/finance-tracker/internal/store"
	"github.com/iwvelando/finance-tracker/pkg/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfiguration(t *testing.T) {
	tests := []struct {
		name       string
		configPath string
		wantError  bool
	}{
		{
			name:       "Non-existent config file",
			configPath: "nonexistent.yaml",
			wantError:  true,
		},
		{
			name:       "Test fixture",
			configPath: "../../test/test_config.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf, err := LoadConfiguration(tt.configPath)
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, conf)
		})
	}
}

func TestLoadConfigurationFixture(t *testing.T) {
	conf, err := LoadConfiguration("../../test/test_config.yaml")
	require.NoError(t, err)

	assert.Equal(t, "debug", conf.Logging.Level)
	assert.Equal(t, "json", conf.Logging.Format)
	assert.Equal(t, constants.OutputFormatCSV, conf.Output.Format, "format is lower-cased")
	assert.Equal(t, "$", conf.Output.CurrencySymbol)
	assert.Equal(t, store.Config{Backend: constants.StorageBackendSQLite, Path: "finance.db"}, conf.StoreConfig())
	assert.Equal(t, "60-20-20", conf.Defaults.BudgetPreset)
	assert.Equal(t, 10, conf.Defaults.RecentTransactions)
	assert.NoError(t, conf.Validate())
	assert.Empty(t, conf.ValidateConfiguration())
}

func TestLoadConfigurationFromReaderDefaults(t *testing.T) {
	conf, err := LoadConfigurationFromReader(strings.NewReader("logging:\n  level: warn\n"))
	require.NoError(t, err)

	assert.Equal(t, "warn", conf.Logging.Level)
	assert.Equal(t, constants.OutputFormatPretty, conf.Output.Format)
	assert.Equal(t, constants.DefaultCurrencySymbol, conf.Output.CurrencySymbol)
	assert.Equal(t, constants.StorageBackendFile, conf.Storage.Backend)
	assert.Equal(t, constants.DefaultStoragePath, conf.Storage.Path)
	assert.Equal(t, constants.DefaultBudgetPreset, conf.Defaults.BudgetPreset)
	assert.Equal(t, constants.DefaultRecentTransactions, conf.Defaults.RecentTransactions)
}

func TestLoadConfigurationFromReaderInvalidYAML(t *testing.T) {
	_, err := LoadConfigurationFromReader(strings.NewReader("output: [unterminated"))
	assert.Error(t, err)
}

func TestEnvironmentOverride(t *testing.T) {
	t.Setenv("FINANCE_TRACKER_OUTPUT_FORMAT", "json")
	t.Setenv("FINANCE_TRACKER_STORAGE_BACKEND", "memory")

	conf, err := LoadConfigurationFromReader(strings.NewReader("output:\n  format: csv\n"))
	require.NoError(t, err)
	assert.Equal(t, constants.OutputFormatJSON, conf.Output.Format)
	assert.Equal(t, constants.StorageBackendMemory, conf.Storage.Backend)
}

func TestDefault(t *testing.T) {
	conf := Default()
	assert.Equal(t, constants.OutputFormatPretty, conf.Output.Format)
	assert.Equal(t, constants.DefaultRecentTransactions, conf.Defaults.RecentTransactions)
	assert.NoError(t, conf.Validate())
}

func TestNormalize(t *testing.T) {
	conf := &Configuration{
		Output:  OutputConfig{Format: " JSON "},
		Storage: StorageConfig{Backend: "Memory"},
	}
	conf.Normalize()

	assert.Equal(t, constants.OutputFormatJSON, conf.Output.Format)
	assert.Equal(t, constants.DefaultCurrencySymbol, conf.Output.CurrencySymbol)
	assert.Equal(t, constants.StorageBackendMemory, conf.Storage.Backend)
	assert.Empty(t, conf.Storage.Path, "memory backend needs no path")
	assert.Equal(t, constants.DefaultBudgetPreset, conf.Defaults.BudgetPreset)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		conf      Configuration
		wantError string
	}{
		{
			name: "valid",
			conf: Configuration{Output: OutputConfig{Format: "pretty"}, Storage: StorageConfig{Backend: "file"}},
		},
		{
			name:      "bad output format",
			conf:      Configuration{Output: OutputConfig{Format: "xml"}, Storage: StorageConfig{Backend: "file"}},
			wantError: "output format",
		},
		{
			name:      "bad backend",
			conf:      Configuration{Output: OutputConfig{Format: "csv"}, Storage: StorageConfig{Backend: "redis"}},
			wantError: "storage backend",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.conf.Validate()
			if tt.wantError == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantError)
		})
	}
}

func TestValidateConfigurationWarnings(t *testing.T) {
	tests := []struct {
		name         string
		defaults     DefaultsConfig
		backend      string
		wantWarnings int
		wantContains string
	}{
		{
			name:     "clean",
			defaults: DefaultsConfig{BudgetPreset: "70-20-10", RecentTransactions: 5},
			backend:  constants.StorageBackendFile,
		},
		{
			name:         "unknown preset",
			defaults:     DefaultsConfig{BudgetPreset: "40-40-20", RecentTransactions: 5},
			backend:      constants.StorageBackendFile,
			wantWarnings: 1,
			wantContains: "unknown budget preset",
		},
		{
			name:         "non-positive recent count",
			defaults:     DefaultsConfig{BudgetPreset: "50-30-20", RecentTransactions: 0},
			backend:      constants.StorageBackendFile,
			wantWarnings: 1,
			wantContains: "recentTransactions",
		},
		{
			name:         "memory backend",
			defaults:     DefaultsConfig{BudgetPreset: "50-30-20", RecentTransactions: 5},
			backend:      constants.StorageBackendMemory,
			wantWarnings: 1,
			wantContains: "lost on exit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf := Configuration{Defaults: tt.defaults, Storage: StorageConfig{Backend: tt.backend}}
			warnings := conf.ValidateConfiguration()
			require.Len(t, warnings, tt.wantWarnings)
			if tt.wantContains != "" {
				assert.Contains(t, warnings[0], tt.wantContains)
			}
		})
	}
}
