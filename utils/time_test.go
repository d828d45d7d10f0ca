package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseTime(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	got, err := ParseTime("09:15:30", base)
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, 3, 2, 9, 15, 30, 0, time.UTC), got)

	_, err = ParseTime("9:15", base)
	require.Error(t, err)
}

func TestValidTimeOfDay(t *testing.T) {
	t.Parallel()

	require.True(t, ValidTimeOfDay("00:00:00"))
	require.True(t, ValidTimeOfDay("23:59:59"))
	require.False(t, ValidTimeOfDay("24:00:00"))
	require.False(t, ValidTimeOfDay("9:00"))
	require.False(t, ValidTimeOfDay(""))
}

func TestValidDate(t *testing.T) {
	t.Parallel()

	require.True(t, ValidDate("2026-03-02"))
	require.False(t, ValidDate("03/02/2026"))
	require.False(t, ValidDate("2026-13-01"))
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		timeIn  string
		timeOut string
		want    string
	}{
		{"standard day", "09:00:00", "17:05:00", "8h 5m"},
		{"same minute", "09:00:00", "09:00:00", "0h 0m"},
		{"overnight wrap", "22:00:00", "06:00:00", "8h 0m"},
		{"just under a full day", "09:00:00", "08:59:00", "23h 59m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatDuration(tt.timeIn, tt.timeOut)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestFormatDurationInvalid(t *testing.T) {
	t.Parallel()

	_, err := FormatDuration("9am", "17:00:00")
	require.Error(t, err)
}
