package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveLocalTime(t *testing.T) {
	// 2025-06-02 13:00 UTC, a Monday
	instant := time.Date(2025, time.June, 2, 13, 0, 0, 0, time.UTC)

	cases := []struct {
		timezone string
		wantTime string
		wantDay  string
	}{
		{"UTC", "13:00", "Monday"},
		{"America/New_York", "09:00", "Monday"}, // EDT, UTC-4
		{"Asia/Kolkata", "18:30", "Monday"},     // UTC+5:30
		{"Pacific/Auckland", "01:00", "Tuesday"},
	}

	for _, tc := range cases {
		gotTime, gotDay, err := ResolveLocalTime(instant, tc.timezone)
		require.NoError(t, err, tc.timezone)
		assert.Equal(t, tc.wantTime, gotTime, tc.timezone)
		assert.Equal(t, tc.wantDay, gotDay, tc.timezone)
	}
}

func TestResolveLocalTimeDST(t *testing.T) {
	// New York is UTC-5 outside daylight saving.
	winter := time.Date(2025, time.January, 6, 13, 0, 0, 0, time.UTC)
	gotTime, gotDay, err := ResolveLocalTime(winter, "America/New_York")
	require.NoError(t, err)
	assert.Equal(t, "08:00", gotTime)
	assert.Equal(t, "Monday", gotDay)
}

func TestResolveLocalTimeUnknownZone(t *testing.T) {
	_, _, err := ResolveLocalTime(time.Now(), "Not/AZone")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownTimezone)
}

func TestPreviousWeekRange(t *testing.T) {
	// Wednesday 2025-06-04 → previous week is Mon 2025-05-26 .. Sun 2025-06-01
	today := time.Date(2025, time.June, 4, 15, 30, 0, 0, time.UTC)
	mon, sun := PreviousWeekRange(today)
	assert.Equal(t, time.Date(2025, time.May, 26, 0, 0, 0, 0, time.UTC), mon)
	assert.Equal(t, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), sun)

	// Sunday itself still refers back to the prior full week.
	sunday := time.Date(2025, time.June, 8, 10, 0, 0, 0, time.UTC)
	mon, sun = PreviousWeekRange(sunday)
	assert.Equal(t, time.Date(2025, time.May, 26, 0, 0, 0, 0, time.UTC), mon)
	assert.Equal(t, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), sun)
}

func TestWeekNumber(t *testing.T) {
	assert.Equal(t, 1, WeekNumber(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)))
	assert.Greater(t, WeekNumber(time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)), 50)
}
