// Package dateadapter is the boundary between calendar math and the date
// library underneath it. Higher layers depend only on the Adapter interface;
// TimeAdapter is the implementation over the standard time package.
//
// Instants are time.Time values. The zero time.Time stands for an absent
// value wherever an operation accepts one. A nil *Locale selects the
// adapter's default locale.
package dateadapter

import "time"

// Adapter is the set of date primitives the helpers are built from.
type Adapter interface {
	// Date builds an instant at midnight in the reference zone.
	Date(year int, month time.Month, day int) time.Time
	// Now returns the current instant in the reference zone.
	Now() time.Time
	// DefaultLocale returns the locale used when nil is passed.
	DefaultLocale() *Locale

	GetYear(t time.Time) int
	GetMonth(t time.Time) time.Month
	GetDate(t time.Time) int
	GetDay(t time.Time) time.Weekday
	GetHours(t time.Time) int
	GetMinutes(t time.Time) int
	GetSeconds(t time.Time) int

	SetYear(t time.Time, year int) time.Time
	SetMonth(t time.Time, month time.Month) time.Time
	SetDate(t time.Time, day int) time.Time
	SetHours(t time.Time, hours int) time.Time
	SetMinutes(t time.Time, minutes int) time.Time
	SetSeconds(t time.Time, seconds int) time.Time

	AddDays(t time.Time, n int) time.Time
	AddWeeks(t time.Time, n int) time.Time
	AddMonths(t time.Time, n int) time.Time
	AddYears(t time.Time, n int) time.Time
	SubDays(t time.Time, n int) time.Time
	SubWeeks(t time.Time, n int) time.Time
	SubMonths(t time.Time, n int) time.Time
	SubYears(t time.Time, n int) time.Time

	GetStartOfDay(t time.Time) time.Time
	GetEndOfDay(t time.Time) time.Time
	GetStartOfMonth(t time.Time) time.Time
	GetEndOfMonth(t time.Time) time.Time
	GetStartOfWeek(t time.Time, loc *Locale) time.Time
	GetEndOfWeek(t time.Time, loc *Locale) time.Time
	IsStartOfMonth(t time.Time) bool
	IsEndOfMonth(t time.Time) bool

	// The comparisons below report false when either argument is zero.
	IsSameDay(a, b time.Time) bool
	IsSameMonth(a, b time.Time) bool
	IsSameYear(a, b time.Time) bool
	IsBefore(a, b time.Time) bool
	IsAfter(a, b time.Time) bool

	// DifferenceInCalendarMonths returns a-b in calendar months.
	DifferenceInCalendarMonths(a, b time.Time) int
	// DifferenceInCalendarDays returns a-b in calendar days.
	DifferenceInCalendarDays(a, b time.Time) int

	FormatDate(t time.Time, pattern string, loc *Locale) (string, error)
	GetWeekdayInLocale(t time.Time, loc *Locale) string
	GetWeekdayMinInLocale(t time.Time, loc *Locale) string
	GetMonthInLocale(month time.Month, loc *Locale) string

	// Min and Max must not be called with an empty slice.
	Min(ts []time.Time) time.Time
	Max(ts []time.Time) time.Time
}
