package datetime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToday(t *testing.T) {
	now := time.Date(2025, 8, 5, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "2025-08-05", Today(now))
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2023-08-30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 8, 30, 0, 0, 0, 0, time.UTC), got)

	for _, bad := range []string{"", "2023-8-30", "30/08/2023", "2023-02-30"} {
		_, err := ParseDate(bad)
		assert.Error(t, err, bad)
	}
}

func TestMustParseTime(t *testing.T) {
	assert.Equal(t, 2025, MustParseTime("2006-01", "2025-07").Year())
	assert.Panics(t, func() { MustParseTime("2006-01", "July") })
}

func TestValidMonth(t *testing.T) {
	tests := []struct {
		month string
		want  bool
	}{
		{"2025-07", true},
		{"2025-13", false},
		{"2025-7", false},
		{"2025-07-01", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.month, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidMonth(tt.month))
		})
	}
}

func TestInMonth(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		month   string
		want    bool
		wantErr bool
	}{
		{name: "same month", date: "2023-08-30", month: "2023-08", want: true},
		{name: "first day", date: "2023-08-01", month: "2023-08", want: true},
		{name: "other month", date: "2023-09-01", month: "2023-08"},
		{name: "other year", date: "2024-08-01", month: "2023-08"},
		{name: "bad date", date: "yesterday", month: "2023-08", wantErr: true},
		{name: "bad month", date: "2023-08-01", month: "August", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := InMonth(tt.date, tt.month)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDateBeforeDate(t *testing.T) {
	before, err := DateBeforeDate("2023-08-20", "2023-08-22")
	require.NoError(t, err)
	assert.True(t, before)

	before, err = DateBeforeDate("2023-08-22", "2023-08-22")
	require.NoError(t, err)
	assert.False(t, before, "strictly before")

	_, err = DateBeforeDate("bad", "2023-08-22")
	assert.Error(t, err)
}
