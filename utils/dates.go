// utils/dates.go
package utils

import (
	"strconv"
	"time"
)

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func DaysBetween(start, end time.Time) int {
	start = BeginningOfDay(start)
	end = BeginningOfDay(end)
	return int(end.Sub(start).Hours() / 24)
}

// DaysAgo renders a past timestamp the way the list screens show it.
func DaysAgo(t time.Time, now time.Time) string {
	switch d := DaysBetween(t, now); {
	case d <= 0:
		return "Today"
	case d == 1:
		return "Yesterday"
	default:
		return strconv.Itoa(d) + " days ago"
	}
}
