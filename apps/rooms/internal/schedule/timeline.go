package schedule

import (
	"math"
	"sort"
	"time"

	"github.com/sgreben/piecewiselinear"
)

const hoursPerDay = 24

// DayTimeline is the cumulative busy-time curve of one civil day, built as
// a piecewise linear function of the hour of day. It backs the utilization
// figure and the hourly load bar on the room detail page.
type DayTimeline struct {
	f piecewiselinear.Function
}

// NewDayTimeline builds the timeline for the civil day containing day,
// in day's own location. Intervals are clipped to the day and merged, so
// overlapping bookings are not counted twice.
func NewDayTimeline(intervals []Interval, day time.Time) DayTimeline {
	dayStart := time.Date(
		day.Year(), day.Month(), day.Day(),
		0, 0, 0, 0,
		day.Location(),
	)
	dayEnd := dayStart.AddDate(0, 0, 1)

	segments := clipAndMerge(intervals, dayStart, dayEnd)

	x := []float64{0}
	y := []float64{0}
	busy := 0.0

	for _, segment := range segments {
		from := hoursSince(dayStart, segment.Start)
		to := hoursSince(dayStart, segment.End)

		x, y = appendPoint(x, y, from, busy)
		busy += to - from
		x, y = appendPoint(x, y, to, busy)
	}

	x, y = appendPoint(x, y, hoursPerDay, busy)

	return DayTimeline{f: piecewiselinear.Function{X: x, Y: y}}
}

// BusyHours is the total booked time of the day, in hours.
func (t DayTimeline) BusyHours() float64 {
	return t.f.Y[len(t.f.Y)-1]
}

// UtilizationPercent is the share of the day that is booked, 0-100.
func (t DayTimeline) UtilizationPercent() int {
	return int(math.Round(t.BusyHours() / hoursPerDay * 100))
}

// HourlyLoad returns, per hour of the day, the booked fraction of that
// hour (0..1).
func (t DayTimeline) HourlyLoad() [hoursPerDay]float64 {
	var load [hoursPerDay]float64
	for hour := 0; hour < hoursPerDay; hour++ {
		load[hour] = t.f.At(float64(hour+1)) - t.f.At(float64(hour))
	}

	return load
}

func clipAndMerge(intervals []Interval, from, to time.Time) []Interval {
	clipped := []Interval{}
	for _, interval := range intervals {
		if !interval.Overlaps(from, to) {
			continue
		}

		segment := interval
		if segment.Start.Before(from) {
			segment.Start = from
		}
		if segment.End.After(to) {
			segment.End = to
		}

		clipped = append(clipped, segment)
	}

	sort.SliceStable(clipped, func(i, j int) bool {
		return clipped[i].Start.Before(clipped[j].Start)
	})

	merged := []Interval{}
	for _, segment := range clipped {
		last := len(merged) - 1
		if last >= 0 && !segment.Start.After(merged[last].End) {
			if segment.End.After(merged[last].End) {
				merged[last].End = segment.End
			}

			continue
		}

		merged = append(merged, segment)
	}

	return merged
}

func hoursSince(from, t time.Time) float64 {
	return t.Sub(from).Hours()
}

func appendPoint(x, y []float64, newX, newY float64) ([]float64, []float64) {
	last := len(x) - 1
	if x[last] == newX && y[last] == newY {
		return x, y
	}

	return append(x, newX), append(y, newY)
}
