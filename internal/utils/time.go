package utils

import (
	"fmt"
	"time"

	"github.com/nousjournal/nous/internal/constants"
)

// FormatDateKey formats a time as a date key (YYYY-MM-DD) in its own location.
func FormatDateKey(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// ParseDateKey parses a date key into a time anchored at local noon. Noon
// avoids day boundary surprises when the result is shifted across timezones.
func ParseDateKey(dateKey string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, dateKey)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date key %q: %w", dateKey, err)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, time.Local), nil
}

// FallbackTimestamp returns the canonical stand-in timestamp for an entry
// whose real timestamps were missing or corrupt: noon UTC on the entry's day.
func FallbackTimestamp(dateKey string) string {
	return dateKey + "T12:00:00.000Z"
}

// GetTodayInTimezone returns today's date key in the given IANA timezone.
// "Today" follows the user's configured timezone, not the system clock zone.
func GetTodayInTimezone(timezone string) (string, error) {
	now, err := NowInTimezone(timezone)
	if err != nil {
		return "", err
	}
	return FormatDateKey(now), nil
}

// LoadLocation loads a timezone location. "Local" or empty means the system
// local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// NowInTimezone returns the current time in the given timezone.
func NowInTimezone(timezone string) (time.Time, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return time.Now().In(loc), nil
}

// DayOfYear returns the 1-based ordinal day of the year for t.
func DayOfYear(t time.Time) int {
	return t.YearDay()
}

// DaysInYear returns 365 or 366.
func DaysInYear(year int) int {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year+1, time.January, 1, 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours() / 24)
}

// MondayFirstOffset converts a time.Weekday to a Monday-first column index
// (Monday=0 ... Sunday=6).
func MondayFirstOffset(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}
