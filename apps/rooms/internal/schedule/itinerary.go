package schedule

import (
	"fmt"
	"sort"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Entry is one itinerary line for the room detail page. Date is the civil
// date in the reference timezone, DayLabel a human French label such as
// "Lundi 10 mars".
type Entry struct {
	Date      string
	DayLabel  string
	TimeRange string
	Title     string
	Start     time.Time
}

//nolint:gochecknoglobals //lookup tables
var frenchDays = [...]string{
	"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi",
}

//nolint:gochecknoglobals //lookup tables
var frenchMonths = [...]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

// Extract returns the events intersecting [now, now+horizonDays), sorted
// ascending by start. Ties keep feed order. The result is always a valid
// slice, empty when nothing qualifies.
func Extract(intervals []Interval, now time.Time, horizonDays int) []Entry {
	horizon := now.AddDate(0, 0, horizonDays)

	entries := []Entry{}
	for _, interval := range intervals {
		if !interval.End.After(now) || !interval.Start.Before(horizon) {
			continue
		}

		entries = append(entries, Entry{
			Date:     interval.Start.Format("2006-01-02"),
			DayLabel: dayLabel(interval.Start),
			TimeRange: interval.Start.Format("15:04") + " - " +
				interval.End.Format("15:04"),
			Title: interval.Summary,
			Start: interval.Start,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Start.Before(entries[j].Start)
	})

	return entries
}

func dayLabel(t time.Time) string {
	day := cases.Title(language.French).String(frenchDays[t.Weekday()])

	return fmt.Sprintf("%s %d %s", day, t.Day(), frenchMonths[t.Month()-1])
}
