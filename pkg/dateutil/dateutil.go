package dateutil

import (
	"fmt"
	"time"
)

// StartOfDay returns the start of the day (00:00:00) for the given date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// EndOfDay returns the last millisecond of the day (23:59:59.999) for the given date
func EndOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 23, 59, 59, int(999*time.Millisecond), date.Location())
}

// StartOfWeek returns the first day of the week containing date, where
// weeks begin on weekStart.
func StartOfWeek(date time.Time, weekStart time.Weekday) time.Time {
	offset := (int(date.Weekday()) - int(weekStart) + 7) % 7
	return StartOfDay(date.AddDate(0, 0, -offset))
}

// EndOfWeek returns the last millisecond of the week containing date
func EndOfWeek(date time.Time, weekStart time.Weekday) time.Time {
	first := StartOfWeek(date, weekStart)
	return EndOfDay(first.AddDate(0, 0, 6))
}

// StartOfMonth returns midnight of the first day of the month
func StartOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// EndOfMonth returns the last millisecond of the month
func EndOfMonth(date time.Time) time.Time {
	return EndOfDay(time.Date(date.Year(), date.Month()+1, 0, 0, 0, 0, 0, date.Location()))
}

// DaysInMonth returns the number of days in the given month.
// Day 0 of the next month is the last day of this one.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ClampDay keeps day inside 1..DaysInMonth(year, month)
func ClampDay(year int, month time.Month, day int) int {
	if day < 1 {
		return 1
	}
	if max := DaysInMonth(year, month); day > max {
		return max
	}
	return day
}

// IsWeekend returns true if the date is Saturday or Sunday
func IsWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// IsSameDay returns true if two dates are on the same day
func IsSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// IsSameMonth returns true if two dates share year and month
func IsSameMonth(date1, date2 time.Time) bool {
	return date1.Year() == date2.Year() && date1.Month() == date2.Month()
}

// IsSameYear returns true if two dates share the year
func IsSameYear(date1, date2 time.Time) bool {
	return date1.Year() == date2.Year()
}

// FormatISO8601 formats date to ISO 8601 format with timezone
// Example: 2025-01-15T10:00:00.000+0000
func FormatISO8601(date time.Time) string {
	return date.Format("2006-01-02T15:04:05.000-0700")
}

var parseFormats = []string{
	"2006-01-02",
	"02.01.2006",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05-0700",
}

// ParseDate parses date string in various formats. Values without an
// explicit offset are interpreted in loc.
func ParseDate(dateStr string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	for _, format := range parseFormats {
		if t, err := time.ParseInLocation(format, dateStr, loc); err == nil {
			return t.In(loc), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", dateStr)
}

// ParseDates parses every string with ParseDate, stopping at the first failure
func ParseDates(values []string, loc *time.Location) ([]time.Time, error) {
	if values == nil {
		return nil, nil
	}
	dates := make([]time.Time, 0, len(values))
	for _, v := range values {
		t, err := ParseDate(v, loc)
		if err != nil {
			return nil, err
		}
		dates = append(dates, t)
	}
	return dates, nil
}
