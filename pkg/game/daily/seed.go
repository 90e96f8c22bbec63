// Package daily turns calendar dates into dungeon seeds.
package daily

import (
	"fmt"
	"strconv"
	"time"
)

// DateLayout is the date format accepted on the command line and by the server
const DateLayout = "2006-01-02"

// SeedForDate concatenates the year, zero-based month and day as decimal
// digits and parses the result. month is 1-12 as in time.Month.
// 19 October 2026 gives "2026" "9" "19", so 2026919.
func SeedForDate(year int, month time.Month, day int) int64 {
	digits := fmt.Sprintf("%d%d%d", year, int(month)-1, day)
	seed, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		// Years large enough to overflow int64
		return 0
	}
	return seed
}

// Seed returns the seed for the calendar date of t in t's own location.
// Callers pass time.Now() so the player's local date is used.
func Seed(t time.Time) int64 {
	return SeedForDate(t.Year(), t.Month(), t.Day())
}

// Today returns the seed for the local calendar date
func Today() int64 {
	return Seed(time.Now())
}

// ParseDate parses a YYYY-MM-DD date in the local time zone
func ParseDate(s string) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", s, err)
	}
	return d, nil
}

// SeedForString parses a YYYY-MM-DD date and returns its seed
func SeedForString(s string) (int64, error) {
	d, err := ParseDate(s)
	if err != nil {
		return 0, err
	}
	return Seed(d), nil
}
