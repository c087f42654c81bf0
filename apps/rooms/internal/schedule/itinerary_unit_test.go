package schedule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"salledispo.app/apps/rooms/internal/schedule"
)

func TestExtract(t *testing.T) {
	loc := paris(t)
	now := time.Date(2025, 3, 10, 14, 30, 0, 0, loc)

	intervals := []schedule.Interval{
		{
			// already over, dropped
			Start:   time.Date(2025, 3, 10, 8, 0, 0, 0, loc),
			End:     time.Date(2025, 3, 10, 10, 0, 0, 0, loc),
			Summary: "Passé",
		},
		{
			// beyond the horizon, dropped
			Start:   time.Date(2025, 4, 1, 8, 0, 0, 0, loc),
			End:     time.Date(2025, 4, 1, 10, 0, 0, 0, loc),
			Summary: "Trop loin",
		},
		{
			Start:   time.Date(2025, 3, 11, 9, 0, 0, 0, loc),
			End:     time.Date(2025, 3, 11, 10, 30, 0, 0, loc),
			Summary: "Demain",
		},
		{
			// ongoing right now, kept
			Start:   time.Date(2025, 3, 10, 14, 0, 0, 0, loc),
			End:     time.Date(2025, 3, 10, 15, 30, 0, 0, loc),
			Summary: "En cours",
		},
	}

	entries := schedule.Extract(intervals, now, 15)

	require.Len(t, entries, 2)

	assert.Equal(t, "En cours", entries[0].Title)
	assert.Equal(t, "2025-03-10", entries[0].Date)
	assert.Equal(t, "Lundi 10 mars", entries[0].DayLabel)
	assert.Equal(t, "14:00 - 15:30", entries[0].TimeRange)

	assert.Equal(t, "Demain", entries[1].Title)
	assert.Equal(t, "Mardi 11 mars", entries[1].DayLabel)
}

func TestExtractEmpty(t *testing.T) {
	loc := paris(t)
	now := time.Date(2025, 3, 10, 14, 30, 0, 0, loc)

	entries := schedule.Extract([]schedule.Interval{}, now, 15)

	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestExtractStableOnEqualStarts(t *testing.T) {
	loc := paris(t)
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, loc)
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, loc)

	intervals := []schedule.Interval{
		{Start: start, End: start.Add(time.Hour), Summary: "Premier"},
		{Start: start, End: start.Add(2 * time.Hour), Summary: "Second"},
	}

	entries := schedule.Extract(intervals, now, 15)

	require.Len(t, entries, 2)
	assert.Equal(t, "Premier", entries[0].Title)
	assert.Equal(t, "Second", entries[1].Title)
}
