package schedule

import (
	"math"
	"time"
)

type State string

const (
	StateOccupied State = "OCCUPIED"
	StateFree     State = "FREE"
	StateError    State = "ERROR"
)

// maxNextTitleLen bounds the next-event title shown on the dashboard tiles.
const maxNextTitleLen = 30

// Status is the occupancy of one room at one instant. Color is the display
// accent used by the templates. Progress is only meaningful when occupied.
type Status struct {
	State    State
	Color    string
	Headline string
	SubText  string
	Progress int
}

// Resolve computes the room status at now. It is a pure function of its
// inputs; nothing is cached between calls.
//
// The first interval containing now wins, in feed order. Otherwise the
// nearest future interval (smallest start, first encountered on ties) is
// reported as the next event.
func Resolve(intervals []Interval, now time.Time) Status {
	var next *Interval

	for i := range intervals {
		interval := intervals[i]

		if interval.Contains(now) {
			return occupiedStatus(interval, now)
		}

		if interval.Start.After(now) &&
			(next == nil || interval.Start.Before(next.Start)) {
			next = &intervals[i]
		}
	}

	if next != nil {
		return Status{
			State:    StateFree,
			Color:    "success",
			Headline: "Libre",
			SubText: "Prochain : " + next.Start.Format("15:04") +
				" : " + truncateTitle(next.Summary),
			Progress: 0,
		}
	}

	if len(intervals) > 0 {
		return Status{
			State:    StateFree,
			Color:    "success",
			Headline: "Libre",
			SubText:  "Plus de cours auj.",
			Progress: 0,
		}
	}

	return Status{
		State:    StateFree,
		Color:    "success",
		Headline: "Libre",
		SubText:  "Planning vide",
		Progress: 0,
	}
}

// ErrorStatus is the status surfaced when the feed itself could not be
// read. notFound selects the "no feed exists for this room" wording over
// the generic unreadable one.
func ErrorStatus(notFound bool) Status {
	if notFound {
		return Status{
			State:    StateError,
			Color:    "secondary",
			Headline: "Erreur",
			SubText:  "Introuvable",
			Progress: 0,
		}
	}

	return Status{
		State:    StateError,
		Color:    "warning",
		Headline: "Erreur",
		SubText:  "Fichier corrompu",
		Progress: 0,
	}
}

func occupiedStatus(interval Interval, now time.Time) Status {
	// Degenerate intervals count as fully elapsed.
	progress := 100

	if total := interval.End.Sub(interval.Start); total > 0 {
		elapsed := now.Sub(interval.Start)
		progress = int(math.Round(float64(elapsed) / float64(total) * 100))

		if progress < 0 {
			progress = 0
		} else if progress > 100 {
			progress = 100
		}
	}

	return Status{
		State:    StateOccupied,
		Color:    "danger",
		Headline: interval.Summary,
		SubText:  "Fin à " + interval.End.Format("15:04"),
		Progress: progress,
	}
}

func truncateTitle(title string) string {
	runes := []rune(title)
	if len(runes) <= maxNextTitleLen {
		return title
	}

	return string(runes[:maxNextTitleLen]) + "..."
}
