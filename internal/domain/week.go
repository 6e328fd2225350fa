package domain

import "time"

// TimePrecision is the resolution of stored timestamps; BSON datetimes keep
// milliseconds.
const TimePrecision = time.Millisecond

// WeekBounds is the Monday-Sunday window used to scope weekly completion.
type WeekBounds struct {
	Start time.Time // Monday 00:00:00.000
	End   time.Time // Sunday 23:59:59.999
}

// ComputeWeekBounds returns the week containing ref in the given location.
// Weeks start on Monday regardless of the time package's Sunday-first
// weekday numbering. A nil location means UTC.
func ComputeWeekBounds(ref time.Time, loc *time.Location) WeekBounds {
	if loc == nil {
		loc = time.UTC
	}
	local := ref.Truncate(TimePrecision).In(loc)
	y, m, d := local.Date()
	start := time.Date(y, m, d-mondayOffset(local.Weekday()), 0, 0, 0, 0, loc)
	end := start.AddDate(0, 0, 7).Add(-time.Millisecond)
	return WeekBounds{Start: start, End: end}
}

// Contains reports whether t lies inside the window, both ends inclusive.
// t is compared at TimePrecision.
func (w WeekBounds) Contains(t time.Time) bool {
	t = t.Truncate(TimePrecision)
	return !t.Before(w.Start) && !t.After(w.End)
}
