// Package schedule turns a room's ICS feed into normalized time intervals
// and answers the questions the rest of the application asks about them:
// is the room occupied right now, what comes next, what does the coming
// period look like and is a given window free.
//
// Every instant handled here is expressed in one reference timezone. The
// parser normalizes on the way in, so none of the consumers ever compares
// a naive or foreign-zone time.
package schedule

import "time"

// Interval is a single normalized calendar event. Start and End are in the
// reference timezone and Start <= End always holds; an event without an end
// marker is kept as a zero-duration interval.
type Interval struct {
	Start   time.Time
	End     time.Time
	Summary string
}

// Overlaps reports whether the interval shares any positive duration with
// the half-open window [queryStart, queryEnd). Touching a boundary exactly
// does not count as overlap.
func (i Interval) Overlaps(queryStart, queryEnd time.Time) bool {
	return i.Start.Before(queryEnd) && i.End.After(queryStart)
}

// Contains reports whether now falls inside the interval, boundaries
// included.
func (i Interval) Contains(now time.Time) bool {
	return !i.Start.After(now) && !i.End.Before(now)
}

// Available reports whether no interval overlaps [queryStart, queryEnd).
// An empty interval slice is always available.
func Available(intervals []Interval, queryStart, queryEnd time.Time) bool {
	for _, interval := range intervals {
		if interval.Overlaps(queryStart, queryEnd) {
			return false
		}
	}

	return true
}
