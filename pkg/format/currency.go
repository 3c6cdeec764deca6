// Package format renders amounts and percentages for display.
package format

import (
	"math"

	"github.com/iwvelando/finance-tracker/pkg/constants"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Currency returns amount with the symbol, thousands separators and two
// decimals (e.g. "-₹1,234.56"). An empty symbol falls back to the default.
func Currency(amount float64, symbol string) string {
	if symbol == "" {
		symbol = constants.DefaultCurrencySymbol
	}
	if amount < 0 && !isZeroAtCents(amount) {
		return "-" + symbol + printer.Sprintf("%.2f", math.Abs(amount))
	}
	return symbol + printer.Sprintf("%.2f", math.Abs(amount))
}

// DecimalCurrency is Currency for decimal amounts.
func DecimalCurrency(amount decimal.Decimal, symbol string) string {
	return Currency(amount.Round(constants.DecimalPlaces).InexactFloat64(), symbol)
}

// Whole returns amount rounded to whole units with the symbol, as used for
// live goal previews (e.g. "₹12,324").
func Whole(amount float64, symbol string) string {
	if symbol == "" {
		symbol = constants.DefaultCurrencySymbol
	}
	rounded := math.Round(amount)
	if rounded < 0 {
		return "-" + symbol + printer.Sprintf("%.0f", -rounded)
	}
	return symbol + printer.Sprintf("%.0f", rounded)
}

// Signed prefixes a currency string with + for income and - for expenses.
func Signed(amount decimal.Decimal, income bool, symbol string) string {
	sign := "-"
	if income {
		sign = "+"
	}
	return sign + DecimalCurrency(amount.Abs(), symbol)
}

// Percent renders a whole percentage such as "-10%".
func Percent(value int) string {
	return printer.Sprintf("%d%%", value)
}

// RatePercent renders an annual fraction as a one-decimal percentage, e.g.
// 0.047 becomes "4.7%".
func RatePercent(fraction float64) string {
	return printer.Sprintf("%.1f%%", fraction*constants.PercentageMultiplier)
}

func isZeroAtCents(amount float64) bool {
	return math.Round(math.Abs(amount)*constants.DecimalPrecision) == 0
}
