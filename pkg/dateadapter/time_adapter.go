package dateadapter

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/goodsign/monday"
	"github.com/username/datepicker-core/pkg/dateutil"
)

var _ Adapter = (*TimeAdapter)(nil)

// TimeAdapter implements Adapter on top of the time package. Every
// returned instant is expressed in the adapter's reference location.
type TimeAdapter struct {
	loc    *time.Location
	locale *Locale
	now    func() time.Time
}

// Option configures a TimeAdapter.
type Option func(*TimeAdapter)

// WithLocation sets the reference time zone. Defaults to UTC.
func WithLocation(loc *time.Location) Option {
	return func(a *TimeAdapter) {
		if loc != nil {
			a.loc = loc
		}
	}
}

// WithDefaultLocale sets the locale used when callers pass nil.
func WithDefaultLocale(l *Locale) Option {
	return func(a *TimeAdapter) {
		if l != nil {
			a.locale = l
		}
	}
}

// WithNow overrides the clock, which is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(a *TimeAdapter) {
		a.now = now
	}
}

// NewTimeAdapter constructs a TimeAdapter.
func NewTimeAdapter(opts ...Option) *TimeAdapter {
	a := &TimeAdapter{
		loc:    time.UTC,
		locale: EnUS,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Location returns the reference time zone.
func (a *TimeAdapter) Location() *time.Location { return a.loc }

func (a *TimeAdapter) in(t time.Time) time.Time { return t.In(a.loc) }

func (a *TimeAdapter) localeOrDefault(l *Locale) *Locale {
	if l == nil {
		return a.locale
	}
	return l
}

// Date returns midnight of the given day in the reference location.
func (a *TimeAdapter) Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, a.loc)
}

// Now returns the current instant in the reference location.
func (a *TimeAdapter) Now() time.Time { return a.in(a.now()) }

// DefaultLocale returns the locale used when callers pass nil.
func (a *TimeAdapter) DefaultLocale() *Locale { return a.locale }

// GetYear returns the year of t.
func (a *TimeAdapter) GetYear(t time.Time) int { return a.in(t).Year() }

// GetMonth returns the month of t.
func (a *TimeAdapter) GetMonth(t time.Time) time.Month { return a.in(t).Month() }

// GetDate returns the day of the month of t.
func (a *TimeAdapter) GetDate(t time.Time) int { return a.in(t).Day() }

// GetDay returns the weekday of t.
func (a *TimeAdapter) GetDay(t time.Time) time.Weekday { return a.in(t).Weekday() }

// GetHours returns the hour of t.
func (a *TimeAdapter) GetHours(t time.Time) int { return a.in(t).Hour() }

// GetMinutes returns the minute of t.
func (a *TimeAdapter) GetMinutes(t time.Time) int { return a.in(t).Minute() }

// GetSeconds returns the second of t.
func (a *TimeAdapter) GetSeconds(t time.Time) int { return a.in(t).Second() }

// SetYear keeps month and day, clamping Feb 29 in common years.
func (a *TimeAdapter) SetYear(t time.Time, year int) time.Time {
	t = a.in(t)
	return a.withMonth(t, year, t.Month())
}

// SetMonth rolls months outside 1..12 into the year and clamps the day
// to the length of the target month.
func (a *TimeAdapter) SetMonth(t time.Time, month time.Month) time.Time {
	t = a.in(t)
	return a.withMonth(t, t.Year(), month)
}

// SetDate lets the day overflow: day 0 is the last day of the previous
// month and day 32 of a 31-day month is the 1st of the next one.
func (a *TimeAdapter) SetDate(t time.Time, day int) time.Time {
	t = a.in(t)
	return time.Date(t.Year(), t.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), a.loc)
}

// SetHours replaces the hour; out-of-range values roll over.
func (a *TimeAdapter) SetHours(t time.Time, hours int) time.Time {
	t = a.in(t)
	return time.Date(t.Year(), t.Month(), t.Day(), hours, t.Minute(), t.Second(), t.Nanosecond(), a.loc)
}

// SetMinutes replaces the minute; out-of-range values roll over.
func (a *TimeAdapter) SetMinutes(t time.Time, minutes int) time.Time {
	t = a.in(t)
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), minutes, t.Second(), t.Nanosecond(), a.loc)
}

// SetSeconds replaces the second; out-of-range values roll over.
func (a *TimeAdapter) SetSeconds(t time.Time, seconds int) time.Time {
	t = a.in(t)
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), seconds, t.Nanosecond(), a.loc)
}

func (a *TimeAdapter) withMonth(t time.Time, year int, month time.Month) time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, a.loc)
	day := dateutil.ClampDay(first.Year(), first.Month(), t.Day())
	return time.Date(first.Year(), first.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), a.loc)
}

// AddDays adds n calendar days.
func (a *TimeAdapter) AddDays(t time.Time, n int) time.Time { return a.in(t).AddDate(0, 0, n) }

// AddWeeks adds n weeks.
func (a *TimeAdapter) AddWeeks(t time.Time, n int) time.Time { return a.AddDays(t, 7*n) }

// AddMonths clamps the day when the target month is shorter.
func (a *TimeAdapter) AddMonths(t time.Time, n int) time.Time {
	t = a.in(t)
	return a.withMonth(t, t.Year(), t.Month()+time.Month(n))
}

// AddYears adds n years, clamping Feb 29.
func (a *TimeAdapter) AddYears(t time.Time, n int) time.Time { return a.AddMonths(t, 12*n) }

// SubDays subtracts n calendar days.
func (a *TimeAdapter) SubDays(t time.Time, n int) time.Time { return a.AddDays(t, -n) }

// SubWeeks subtracts n weeks.
func (a *TimeAdapter) SubWeeks(t time.Time, n int) time.Time { return a.AddWeeks(t, -n) }

// SubMonths subtracts n months, clamping the day.
func (a *TimeAdapter) SubMonths(t time.Time, n int) time.Time { return a.AddMonths(t, -n) }

// SubYears subtracts n years.
func (a *TimeAdapter) SubYears(t time.Time, n int) time.Time { return a.AddYears(t, -n) }

// GetStartOfDay returns midnight of t's day.
func (a *TimeAdapter) GetStartOfDay(t time.Time) time.Time { return dateutil.StartOfDay(a.in(t)) }

// GetEndOfDay returns the last millisecond of t's day.
func (a *TimeAdapter) GetEndOfDay(t time.Time) time.Time { return dateutil.EndOfDay(a.in(t)) }

// GetStartOfMonth returns midnight of the 1st of t's month.
func (a *TimeAdapter) GetStartOfMonth(t time.Time) time.Time { return dateutil.StartOfMonth(a.in(t)) }

// GetEndOfMonth returns the last millisecond of t's month.
func (a *TimeAdapter) GetEndOfMonth(t time.Time) time.Time { return dateutil.EndOfMonth(a.in(t)) }

// GetStartOfWeek returns midnight of the locale's first weekday on or before t.
func (a *TimeAdapter) GetStartOfWeek(t time.Time, l *Locale) time.Time {
	return dateutil.StartOfWeek(a.in(t), a.localeOrDefault(l).WeekStart())
}

// GetEndOfWeek returns the last millisecond of the week containing t.
func (a *TimeAdapter) GetEndOfWeek(t time.Time, l *Locale) time.Time {
	return dateutil.EndOfWeek(a.in(t), a.localeOrDefault(l).WeekStart())
}

// IsStartOfMonth reports whether t is the 1st.
func (a *TimeAdapter) IsStartOfMonth(t time.Time) bool { return a.in(t).Day() == 1 }

// IsEndOfMonth reports whether t is the last day of its month.
func (a *TimeAdapter) IsEndOfMonth(t time.Time) bool {
	t = a.in(t)
	return t.Day() == dateutil.DaysInMonth(t.Year(), t.Month())
}

// IsSameDay reports whether x and y fall on the same calendar day.
func (a *TimeAdapter) IsSameDay(x, y time.Time) bool {
	if x.IsZero() || y.IsZero() {
		return false
	}
	return dateutil.IsSameDay(a.in(x), a.in(y))
}

// IsSameMonth reports whether x and y fall in the same month of the same year.
func (a *TimeAdapter) IsSameMonth(x, y time.Time) bool {
	if x.IsZero() || y.IsZero() {
		return false
	}
	return dateutil.IsSameMonth(a.in(x), a.in(y))
}

// IsSameYear reports whether x and y fall in the same year.
func (a *TimeAdapter) IsSameYear(x, y time.Time) bool {
	if x.IsZero() || y.IsZero() {
		return false
	}
	return dateutil.IsSameYear(a.in(x), a.in(y))
}

// IsBefore compares instants, not calendar days.
func (a *TimeAdapter) IsBefore(x, y time.Time) bool {
	if x.IsZero() || y.IsZero() {
		return false
	}
	return x.Before(y)
}

// IsAfter compares instants, not calendar days.
func (a *TimeAdapter) IsAfter(x, y time.Time) bool {
	if x.IsZero() || y.IsZero() {
		return false
	}
	return x.After(y)
}

// DifferenceInCalendarMonths returns the month count from y to x, ignoring days.
func (a *TimeAdapter) DifferenceInCalendarMonths(x, y time.Time) int {
	x, y = a.in(x), a.in(y)
	return (x.Year()-y.Year())*12 + int(x.Month()) - int(y.Month())
}

// DifferenceInCalendarDays returns the day count from y to x, ignoring time of day.
func (a *TimeAdapter) DifferenceInCalendarDays(x, y time.Time) int {
	return civil.DateOf(a.in(x)).DaysSince(civil.DateOf(a.in(y)))
}

// FormatDate renders t with a CLDR-style pattern such as "yyyy-MM-dd" or
// "EEEE, d MMMM". Names come from the locale.
func (a *TimeAdapter) FormatDate(t time.Time, pattern string, l *Locale) (string, error) {
	return formatPattern(a.in(t), pattern, a.localeOrDefault(l).names)
}

// GetWeekdayInLocale returns the full weekday name, e.g. "Wednesday".
func (a *TimeAdapter) GetWeekdayInLocale(t time.Time, l *Locale) string {
	return monday.Format(a.in(t), "Monday", a.localeOrDefault(l).names)
}

// GetWeekdayMinInLocale returns the first letter of the weekday name.
func (a *TimeAdapter) GetWeekdayMinInLocale(t time.Time, l *Locale) string {
	return firstLetter(a.GetWeekdayInLocale(t, l))
}

// GetMonthInLocale returns the full month name.
func (a *TimeAdapter) GetMonthInLocale(month time.Month, l *Locale) string {
	t := time.Date(2000, month, 1, 12, 0, 0, 0, time.UTC)
	return monday.Format(t, "January", a.localeOrDefault(l).names)
}

// Min returns the earliest instant. ts must not be empty.
func (a *TimeAdapter) Min(ts []time.Time) time.Time {
	m := ts[0]
	for _, t := range ts[1:] {
		if t.Before(m) {
			m = t
		}
	}
	return m
}

// Max returns the latest instant. ts must not be empty.
func (a *TimeAdapter) Max(ts []time.Time) time.Time {
	m := ts[0]
	for _, t := range ts[1:] {
		if t.After(m) {
			m = t
		}
	}
	return m
}
