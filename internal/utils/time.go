package utils

import (
	"strings"
	"time"
)

const layoutDate = "2006-01-02"

// ParseDate parses YYYY-MM-DD in local timezone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(layoutDate, strings.TrimSpace(s), time.Local)
}

// FormatDate formats time to YYYY-MM-DD in local timezone.
func FormatDate(t time.Time) string {
	return t.In(time.Local).Format(layoutDate)
}

// SameCalendarDay reports whether two instants fall on the same calendar date,
// ignoring time of day.
func SameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// NightsBetween returns the stay length in nights as ceil of the absolute
// difference in milliseconds over a day. Matches the web client's math.
func NightsBetween(checkIn, checkOut time.Time) int {
	diff := checkOut.Sub(checkIn)
	if diff < 0 {
		diff = -diff
	}
	const dayMs = 86_400_000
	ms := diff.Milliseconds()
	nights := ms / dayMs
	if ms%dayMs != 0 {
		nights++
	}
	return int(nights)
}
