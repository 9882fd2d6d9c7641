package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHorizonDays(t *testing.T) {
	loc := time.UTC
	// Friday. Offsets 2..15 cover Sun Aug 30 through Sat Sep 12.
	now := time.Date(2026, 8, 28, 10, 30, 0, 0, loc)

	days := HorizonDays(now, loc)
	require.NotEmpty(t, days)

	// Two Sundays fall inside the window (Aug 30, Sep 6).
	assert.Len(t, days, 12)
	assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, loc), days[0])
	assert.Equal(t, time.Date(2026, 9, 12, 0, 0, 0, 0, loc), days[len(days)-1])

	for _, d := range days {
		assert.NotEqual(t, time.Sunday, d.Weekday(), "Sunday %s must be excluded", d)
		assert.Equal(t, 0, d.Hour(), "days must be midnights")
	}

	// The skipped Sundays are genuinely absent, not shifted.
	for _, d := range days {
		assert.NotEqual(t, time.Date(2026, 8, 30, 0, 0, 0, 0, loc), d)
		assert.NotEqual(t, time.Date(2026, 9, 6, 0, 0, 0, 0, loc), d)
	}
}

func TestHorizonDays_TimeOfDayIrrelevant(t *testing.T) {
	loc := time.UTC
	morning := time.Date(2026, 8, 28, 0, 1, 0, 0, loc)
	night := time.Date(2026, 8, 28, 23, 59, 0, 0, loc)

	assert.Equal(t, HorizonDays(morning, loc), HorizonDays(night, loc))
}

func TestHorizonBounds(t *testing.T) {
	loc := time.UTC
	now := time.Date(2026, 8, 28, 10, 30, 0, 0, loc)

	from, to := HorizonBounds(now, loc)
	assert.Equal(t, time.Date(2026, 8, 30, 0, 0, 0, 0, loc), from)
	assert.Equal(t, time.Date(2026, 9, 13, 0, 0, 0, 0, loc), to)

	// Every horizon day falls inside [from, to).
	for _, d := range HorizonDays(now, loc) {
		assert.False(t, d.Before(from))
		assert.True(t, d.Before(to))
	}
}
