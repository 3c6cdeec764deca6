// Package constants provides shared constants for the finance-tracker application.
package constants

// TransactionDateLayout is the format of transaction dates in the record and
// on the command line.
const TransactionDateLayout = "2006-01-02"

// MonthLayout is the format of month-granular dates such as the CPI reading.
const MonthLayout = "2006-01"

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPlaces is the number of decimal places kept for currency amounts
	DecimalPlaces = 2

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentTotal is the sum a budget split must reach
	PercentTotal = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"

	// DefaultCurrencySymbol is prefixed to rendered amounts
	DefaultCurrencySymbol = "₹"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// EnvPrefix prefixes environment overrides, e.g. FINANCE_TRACKER_STORAGE_PATH
	EnvPrefix = "FINANCE_TRACKER"
)

// Storage constants
const (
	// StorageBackendFile keeps the record in a JSON file
	StorageBackendFile = "file"

	// StorageBackendSQLite keeps the record in a SQLite key/value table
	StorageBackendSQLite = "sqlite"

	// StorageBackendMemory keeps the record in process memory only
	StorageBackendMemory = "memory"

	// DefaultStoragePath is the default location of the file backend
	DefaultStoragePath = "finance-data.json"

	// StateKey is the key the record is stored under
	StateKey = "financeAppState"

	// ExportFileName is the default file name for exports
	ExportFileName = "finance-data.json"
)

// Record defaults
const (
	// DefaultBudgetPreset is the preset applied when none is configured
	DefaultBudgetPreset = "50-30-20"

	// DefaultRecentTransactions is the number of transactions on the summary
	DefaultRecentTransactions = 5

	// MaxGoalYears is the longest goal horizon that is projected
	MaxGoalYears = 100
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxUploadSizeBytes is the default maximum import size (256 KB)
	DefaultMaxUploadSizeBytes int64 = 256 * 1024
)
