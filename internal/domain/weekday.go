package domain

import "time"

// DayOfWeek is the weekday label a session is logged against. It is chosen by
// the caller and need not match the calendar day of the completion time.
type DayOfWeek string

const (
	Monday    DayOfWeek = "Monday"
	Tuesday   DayOfWeek = "Tuesday"
	Wednesday DayOfWeek = "Wednesday"
	Thursday  DayOfWeek = "Thursday"
	Friday    DayOfWeek = "Friday"
	Saturday  DayOfWeek = "Saturday"
	Sunday    DayOfWeek = "Sunday"
)

// Weekdays lists the seven day labels, Monday first.
var Weekdays = [7]DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

func (d DayOfWeek) IsValid() bool {
	for _, w := range Weekdays {
		if d == w {
			return true
		}
	}
	return false
}

// DayOfWeekFor returns the label of the calendar day t falls on.
func DayOfWeekFor(t time.Time) DayOfWeek {
	return Weekdays[mondayOffset(t.Weekday())]
}

// mondayOffset maps time.Weekday (Sunday == 0) to days since Monday.
func mondayOffset(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}
