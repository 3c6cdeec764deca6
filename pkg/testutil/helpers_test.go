package testutil

import (
	"testing"
	"time"

	"github.com/iwvelando/finance-tracker/internal/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedClock(t *testing.T) {
	now := time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC)
	clock := FixedClock(now)
	assert.Equal(t, now, clock())
	assert.Equal(t, now, clock())
}

func TestFindGoal(t *testing.T) {
	list := record.Default().Goals

	tests := []struct {
		name        string
		searchName  string
		expectFound bool
	}{
		{name: "existing goal", searchName: "New Car", expectFound: true},
		{name: "case sensitive", searchName: "new car"},
		{name: "missing goal", searchName: "House"},
		{name: "empty name", searchName: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindGoal(list, tt.searchName)
			if !tt.expectFound {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.searchName, got.Name)
		})
	}

	assert.Nil(t, FindGoal(nil, "New Car"))
}

func TestFindGoalReturnsElementPointer(t *testing.T) {
	list := record.Default().Goals
	FindGoal(list, "New Car").Years = 7
	assert.Equal(t, 7, list[0].Years)
}

func TestFindTransaction(t *testing.T) {
	txs := record.Default().Transactions

	got := FindTransaction(txs, 3)
	require.NotNil(t, got)
	assert.Equal(t, "Electricity Bill", got.Note)

	assert.Nil(t, FindTransaction(txs, 99))
	assert.Nil(t, FindTransaction(nil, 1))
}
