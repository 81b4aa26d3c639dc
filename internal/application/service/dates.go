package service

import (
	"math"
	"time"
)

// truncateToDay returns midnight of t's civil day in t's location.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// daysBetween returns the number of civil days from a to b. Both inputs
// are expected to be midnight-truncated; rounding absorbs the one-hour
// drift DST transitions introduce.
func daysBetween(a, b time.Time) int {
	return int(math.Round(b.Sub(a).Hours() / 24))
}

// nextAnniversary returns the next occurrence of birthDate's month/day
// on or after today, in today's location. A Feb 29 birth date observes
// Feb 28 in non-leap years.
func nextAnniversary(birthDate, today time.Time) time.Time {
	month, day := birthDate.Month(), birthDate.Day()

	anniversary := anniversaryInYear(today.Year(), month, day, today.Location())
	if anniversary.Before(today) {
		anniversary = anniversaryInYear(today.Year()+1, month, day, today.Location())
	}
	return anniversary
}

func anniversaryInYear(year int, month time.Month, day int, loc *time.Location) time.Time {
	if month == time.February && day == 29 && !isLeapYear(year) {
		day = 28
	}
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
