// Package datetime provides date helpers for transaction dates (YYYY-MM-DD)
// and months (YYYY-MM).
package datetime

import (
	"time"

	"github.com/iwvelando/finance-tracker/pkg/constants"
)

// Today formats now as a transaction date.
func Today(now time.Time) string {
	return now.Format(constants.TransactionDateLayout)
}

// ParseDate parses a transaction date.
func ParseDate(date string) (time.Time, error) {
	return time.Parse(constants.TransactionDateLayout, date)
}

// MustParseTime parses a date string using the given layout and panics on error.
// This is intended for use in tests where the date string is known to be valid.
func MustParseTime(layout, dateStr string) time.Time {
	t, err := time.Parse(layout, dateStr)
	if err != nil {
		panic(err)
	}
	return t
}

// ValidMonth reports whether month is formatted as YYYY-MM.
func ValidMonth(month string) bool {
	_, err := time.Parse(constants.MonthLayout, month)
	return err == nil
}

// InMonth reports whether a transaction date falls in month (YYYY-MM).
func InMonth(date, month string) (bool, error) {
	dateT, err := ParseDate(date)
	if err != nil {
		return false, err
	}
	monthT, err := time.Parse(constants.MonthLayout, month)
	if err != nil {
		return false, err
	}
	return dateT.Year() == monthT.Year() && dateT.Month() == monthT.Month(), nil
}

// DateBeforeDate returns true if firstDate is strictly before secondDate.
func DateBeforeDate(firstDate string, secondDate string) (bool, error) {
	firstDateT, err := ParseDate(firstDate)
	if err != nil {
		return false, err
	}
	secondDateT, err := ParseDate(secondDate)
	if err != nil {
		return false, err
	}
	return firstDateT.Before(secondDateT), nil
}
