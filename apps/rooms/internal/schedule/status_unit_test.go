package schedule_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"salledispo.app/apps/rooms/internal/schedule"
)

func TestResolveOccupied(t *testing.T) {
	loc := paris(t)
	now := time.Date(2025, 3, 10, 14, 45, 0, 0, loc)

	intervals := []schedule.Interval{
		{
			Start:   time.Date(2025, 3, 10, 14, 0, 0, 0, loc),
			End:     time.Date(2025, 3, 10, 15, 30, 0, 0, loc),
			Summary: "Analyse 2",
		},
	}

	status := schedule.Resolve(intervals, now)

	assert.Equal(t, schedule.StateOccupied, status.State)
	assert.Equal(t, "danger", status.Color)
	assert.Equal(t, "Analyse 2", status.Headline)
	assert.Equal(t, "Fin à 15:30", status.SubText)
	assert.Equal(t, 50, status.Progress)
}

func TestResolveOccupiedAtBoundaries(t *testing.T) {
	loc := paris(t)

	interval := schedule.Interval{
		Start:   time.Date(2025, 3, 10, 14, 0, 0, 0, loc),
		End:     time.Date(2025, 3, 10, 15, 0, 0, 0, loc),
		Summary: "TP",
	}
	intervals := []schedule.Interval{interval}

	atStart := schedule.Resolve(intervals, interval.Start)
	assert.Equal(t, schedule.StateOccupied, atStart.State)
	assert.Equal(t, 0, atStart.Progress)

	atEnd := schedule.Resolve(intervals, interval.End)
	assert.Equal(t, schedule.StateOccupied, atEnd.State)
	assert.Equal(t, 100, atEnd.Progress)
}

func TestResolveZeroDurationEvent(t *testing.T) {
	loc := paris(t)
	instant := time.Date(2025, 3, 10, 14, 0, 0, 0, loc)

	intervals := []schedule.Interval{
		{Start: instant, End: instant, Summary: "Ponctuel"},
	}

	status := schedule.Resolve(intervals, instant)

	assert.Equal(t, schedule.StateOccupied, status.State)
	assert.Equal(t, 100, status.Progress)
}

func TestResolveNextEvent(t *testing.T) {
	loc := paris(t)
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, loc)

	intervals := []schedule.Interval{
		{
			Start:   time.Date(2025, 3, 10, 17, 0, 0, 0, loc),
			End:     time.Date(2025, 3, 10, 18, 0, 0, 0, loc),
			Summary: "Plus tard",
		},
		{
			Start:   time.Date(2025, 3, 10, 16, 0, 0, 0, loc),
			End:     time.Date(2025, 3, 10, 17, 0, 0, 0, loc),
			Summary: "Algèbre",
		},
	}

	status := schedule.Resolve(intervals, now)

	assert.Equal(t, schedule.StateFree, status.State)
	assert.Equal(t, "success", status.Color)
	assert.Equal(t, "Libre", status.Headline)
	assert.Equal(t, "Prochain : 16:00 : Algèbre", status.SubText)
}

func TestResolveNextEventTruncatesTitle(t *testing.T) {
	loc := paris(t)
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, loc)

	title := strings.Repeat("é", 40)
	intervals := []schedule.Interval{
		{
			Start:   time.Date(2025, 3, 10, 16, 0, 0, 0, loc),
			End:     time.Date(2025, 3, 10, 17, 0, 0, 0, loc),
			Summary: title,
		},
	}

	status := schedule.Resolve(intervals, now)

	expected := "Prochain : 16:00 : " + strings.Repeat("é", 30) + "..."
	assert.Equal(t, expected, status.SubText)
}

func TestResolveNothingLeftToday(t *testing.T) {
	loc := paris(t)
	now := time.Date(2025, 3, 10, 19, 0, 0, 0, loc)

	intervals := []schedule.Interval{
		{
			Start:   time.Date(2025, 3, 10, 8, 0, 0, 0, loc),
			End:     time.Date(2025, 3, 10, 10, 0, 0, 0, loc),
			Summary: "Fini",
		},
	}

	status := schedule.Resolve(intervals, now)

	assert.Equal(t, schedule.StateFree, status.State)
	assert.Equal(t, "Plus de cours auj.", status.SubText)
}

func TestResolveEmptyPlanning(t *testing.T) {
	loc := paris(t)
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, loc)

	status := schedule.Resolve([]schedule.Interval{}, now)

	assert.Equal(t, schedule.StateFree, status.State)
	assert.Equal(t, "Planning vide", status.SubText)
}

func TestErrorStatus(t *testing.T) {
	notFound := schedule.ErrorStatus(true)
	assert.Equal(t, schedule.StateError, notFound.State)
	assert.Equal(t, "secondary", notFound.Color)
	assert.Equal(t, "Introuvable", notFound.SubText)

	corrupt := schedule.ErrorStatus(false)
	assert.Equal(t, schedule.StateError, corrupt.State)
	assert.Equal(t, "warning", corrupt.Color)
	assert.Equal(t, "Fichier corrompu", corrupt.SubText)
}
