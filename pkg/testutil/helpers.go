// Package testutil provides common utility functions for testing.
package testutil

import (
	"time"

	"github.com/iwvelando/finance-tracker/internal/record"
)

// FixedClock returns a clock that always reports now.
func FixedClock(now time.Time) func() time.Time {
	return func() time.Time {
		return now
	}
}

// FindGoal finds a goal by name in the slice.
// Returns a pointer to the goal if found, nil otherwise.
func FindGoal(list []record.Goal, name string) *record.Goal {
	for i := range list {
		if list[i].Name == name {
			return &list[i]
		}
	}
	return nil
}

// FindTransaction finds a transaction by ID in the slice.
// Returns a pointer to the transaction if found, nil otherwise.
func FindTransaction(txs []record.Transaction, id int64) *record.Transaction {
	for i := range txs {
		if txs[i].ID == id {
			return &txs[i]
		}
	}
	return nil
}
