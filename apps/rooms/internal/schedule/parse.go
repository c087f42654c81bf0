package schedule

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
)

// ErrMalformedFeed wraps any failure to decode the ICS structure itself.
// Individual broken events are skipped instead.
var ErrMalformedFeed = errors.New("malformed calendar feed")

const (
	dateLayout          = "20060102"
	dateTimeLayout      = "20060102T150405"
	dateTimeUTCLayout   = "20060102T150405Z"
	dateTimeZonedLayout = "20060102T150405-0700"
)

// Parse reads an ICS feed and returns its events as normalized intervals
// in loc, in feed order. Events without a usable DTSTART are skipped; a
// missing DTEND falls back to a zero-duration interval.
func Parse(r io.Reader, loc *time.Location) ([]Interval, error) {
	cal, err := ics.ParseCalendar(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFeed, err)
	}

	intervals := []Interval{}
	for _, event := range cal.Events() {
		interval, ok := normalizeEvent(event, loc)
		if !ok {
			continue
		}

		intervals = append(intervals, interval)
	}

	return intervals, nil
}

func normalizeEvent(event *ics.VEvent, loc *time.Location) (Interval, bool) {
	startProp := event.GetProperty(ics.ComponentPropertyDtStart)
	if startProp == nil || startProp.Value == "" {
		return Interval{}, false
	}

	// DTSTART decides whether the whole event is full-day. DTEND then uses
	// the same branch, so an all-day start is never compared against a
	// clocked end.
	fullDay := isDateOnly(startProp)

	start, err := normalizeMarker(startProp, loc, fullDay)
	if err != nil {
		return Interval{}, false
	}

	end := start
	if endProp := event.GetProperty(ics.ComponentPropertyDtEnd); endProp != nil &&
		endProp.Value != "" {
		if parsed, endErr := normalizeMarker(endProp, loc, fullDay); endErr == nil {
			end = parsed
		}
	}

	if end.Before(start) {
		end = start
	}

	summary := ""
	if summaryProp := event.GetProperty(ics.ComponentPropertySummary); summaryProp != nil {
		summary = unescapeText(summaryProp.Value)
	}

	return Interval{Start: start, End: end, Summary: summary}, true
}

// isDateOnly reports whether the marker is a bare calendar date, either via
// an explicit VALUE=DATE parameter or a value without a time-of-day part.
func isDateOnly(prop *ics.IANAProperty) bool {
	if values, ok := prop.ICalParameters["VALUE"]; ok && len(values) > 0 &&
		strings.EqualFold(values[0], "DATE") {
		return true
	}

	return !strings.Contains(prop.Value, "T")
}

// normalizeMarker turns one DTSTART/DTEND property into an instant in loc.
//
// Rules, in order: a bare date becomes local midnight in loc; a marker with
// its own timezone (TZID parameter, Z suffix or numeric offset) is converted
// to loc; a naive date-time is taken to mean local time in loc.
func normalizeMarker(
	prop *ics.IANAProperty,
	loc *time.Location,
	fullDay bool,
) (time.Time, error) {
	raw := prop.Value

	if fullDay {
		// Strip any stray time-of-day so both markers of a full-day event
		// normalize through the same branch.
		if i := strings.IndexByte(raw, 'T'); i >= 0 {
			raw = raw[:i]
		}

		return time.ParseInLocation(dateLayout, raw, loc)
	}

	if tzids, ok := prop.ICalParameters["TZID"]; ok && len(tzids) > 0 {
		if eventLoc, err := time.LoadLocation(tzids[0]); err == nil {
			if t, err := time.ParseInLocation(dateTimeLayout, raw, eventLoc); err == nil {
				return t.In(loc), nil
			}
		}
	}

	if t, err := time.Parse(dateTimeUTCLayout, raw); err == nil {
		return t.In(loc), nil
	}

	if t, err := time.Parse(dateTimeZonedLayout, raw); err == nil {
		return t.In(loc), nil
	}

	if t, err := time.ParseInLocation(dateTimeLayout, raw, loc); err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("cannot parse ICS time: %s", prop.Value)
}

// unescapeText undoes the ICS comma escaping found in SUMMARY values.
func unescapeText(s string) string {
	return strings.ReplaceAll(s, `\,`, ",")
}
