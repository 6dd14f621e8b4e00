// Package datehelpers implements the calendar math a date picker needs
// (bounds, disabled days, effective limits, time merging) using only the
// primitives of a dateadapter.Adapter.
package datehelpers

import (
	"time"

	"github.com/username/datepicker-core/pkg/dateadapter"
	"go.uber.org/zap"
)

// Helpers embeds the adapter so every primitive is reachable from here.
// It holds no mutable state and is safe for concurrent use.
type Helpers struct {
	dateadapter.Adapter
	logger *zap.Logger
}

// Option configures Helpers.
type Option func(*Helpers)

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(h *Helpers) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// New creates Helpers over the given adapter.
func New(adapter dateadapter.Adapter, opts ...Option) *Helpers {
	h := &Helpers{
		Adapter: adapter,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// IsOutOfBounds reports whether date falls on a day strictly before
// MinDate or strictly after MaxDate. Absent bounds are unconstrained.
func (h *Helpers) IsOutOfBounds(date time.Time, b Bounds) bool {
	if !b.MinDate.IsZero() && h.DifferenceInCalendarDays(date, b.MinDate) < 0 {
		return true
	}
	if !b.MaxDate.IsZero() && h.DifferenceInCalendarDays(date, b.MaxDate) > 0 {
		return true
	}
	return false
}

// IsDayDisabled reports whether date cannot be selected. When an include
// list is given it alone decides membership and MinDate, MaxDate and
// ExcludeDates are ignored. Otherwise a day outside the bounds or on the
// exclude list is disabled. FilterDate applies in both cases.
func (h *Helpers) IsDayDisabled(date time.Time, b Bounds) bool {
	if b.IncludeDates != nil {
		if !h.containsDay(b.IncludeDates, date) {
			return true
		}
	} else if h.IsOutOfBounds(date, b) || h.containsDay(b.ExcludeDates, date) {
		return true
	}
	if b.FilterDate != nil && !b.FilterDate(date) {
		return true
	}
	return false
}

// IsDaySelectable is the negation of IsDayDisabled.
func (h *Helpers) IsDaySelectable(date time.Time, b Bounds) bool {
	return !h.IsDayDisabled(date, b)
}

func (h *Helpers) containsDay(dates []time.Time, date time.Time) bool {
	for _, d := range dates {
		if h.IsSameDay(d, date) {
			return true
		}
	}
	return false
}

// MonthDisabledBefore reports whether nothing in the month before date's
// month can be selected: MinDate lies in a later month, or every include
// date does.
func (h *Helpers) MonthDisabledBefore(date time.Time, b Bounds) bool {
	previous := h.SubMonths(date, 1)
	if !b.MinDate.IsZero() && h.DifferenceInCalendarMonths(b.MinDate, previous) > 0 {
		return true
	}
	if b.IncludeDates != nil && h.allMonths(b.IncludeDates, func(d time.Time) bool {
		return h.DifferenceInCalendarMonths(d, previous) > 0
	}) {
		return true
	}
	return false
}

// MonthDisabledAfter reports whether nothing in the month after date's
// month can be selected.
func (h *Helpers) MonthDisabledAfter(date time.Time, b Bounds) bool {
	next := h.AddMonths(date, 1)
	if !b.MaxDate.IsZero() && h.DifferenceInCalendarMonths(next, b.MaxDate) > 0 {
		return true
	}
	if b.IncludeDates != nil && h.allMonths(b.IncludeDates, func(d time.Time) bool {
		return h.DifferenceInCalendarMonths(next, d) > 0
	}) {
		return true
	}
	return false
}

func (h *Helpers) allMonths(dates []time.Time, pred func(time.Time) bool) bool {
	for _, d := range dates {
		if !pred(d) {
			return false
		}
	}
	return true
}

// GetEffectiveMinDate returns the earliest selectable day. With both
// MinDate and IncludeDates it is the earliest include date on or after
// MinDate, or the zero time when there is none. With neither it is now.
func (h *Helpers) GetEffectiveMinDate(b Bounds) time.Time {
	switch {
	case len(b.IncludeDates) > 0 && !b.MinDate.IsZero():
		candidates := make([]time.Time, 0, len(b.IncludeDates))
		for _, d := range b.IncludeDates {
			if h.DifferenceInCalendarDays(d, b.MinDate) >= 0 {
				candidates = append(candidates, d)
			}
		}
		if len(candidates) == 0 {
			return time.Time{}
		}
		return h.Min(candidates)
	case len(b.IncludeDates) > 0:
		return h.Min(b.IncludeDates)
	case !b.MinDate.IsZero():
		return b.MinDate
	default:
		return h.Now()
	}
}

// GetEffectiveMaxDate mirrors GetEffectiveMinDate for the upper limit.
func (h *Helpers) GetEffectiveMaxDate(b Bounds) time.Time {
	switch {
	case len(b.IncludeDates) > 0 && !b.MaxDate.IsZero():
		candidates := make([]time.Time, 0, len(b.IncludeDates))
		for _, d := range b.IncludeDates {
			if h.DifferenceInCalendarDays(d, b.MaxDate) <= 0 {
				candidates = append(candidates, d)
			}
		}
		if len(candidates) == 0 {
			return time.Time{}
		}
		return h.Max(candidates)
	case len(b.IncludeDates) > 0:
		return h.Max(b.IncludeDates)
	case !b.MaxDate.IsZero():
		return b.MaxDate
	default:
		return h.Now()
	}
}

// ApplyTimeToDate keeps date's calendar day and takes hour and minute
// from t; seconds and below are zeroed. A zero date returns t.
func (h *Helpers) ApplyTimeToDate(date, t time.Time) time.Time {
	if date.IsZero() {
		return t
	}
	out := h.SetHours(h.GetStartOfDay(date), h.GetHours(t))
	return h.SetMinutes(out, h.GetMinutes(t))
}

// ApplyDateToTime moves t onto date's calendar day, keeping t's clock
// including seconds. A zero date returns t.
func (h *Helpers) ApplyDateToTime(t, date time.Time) time.Time {
	if date.IsZero() {
		return t
	}
	// Move to the 1st first so a long source month cannot overflow.
	out := h.SetDate(t, 1)
	out = h.SetYear(out, h.GetYear(date))
	out = h.SetMonth(out, h.GetMonth(date))
	return h.SetDate(out, h.GetDate(date))
}

// IsDayInRange reports whether date falls on start, on end, or between
// them.
func (h *Helpers) IsDayInRange(date, start, end time.Time) bool {
	return h.DifferenceInCalendarDays(date, start) >= 0 && h.DifferenceInCalendarDays(end, date) >= 0
}

// GetWeekdayMinInLocale returns the one-letter weekday name for loc.
func (h *Helpers) GetWeekdayMinInLocale(date time.Time, loc *dateadapter.Locale) string {
	return h.Adapter.GetWeekdayMinInLocale(date, loc)
}

// GetWeekdayInLocale returns the full weekday name for loc.
func (h *Helpers) GetWeekdayInLocale(date time.Time, loc *dateadapter.Locale) string {
	return h.Adapter.GetWeekdayInLocale(date, loc)
}

// GetMonthInLocale returns the full month name for loc.
func (h *Helpers) GetMonthInLocale(month time.Month, loc *dateadapter.Locale) string {
	return h.Adapter.GetMonthInLocale(month, loc)
}

// FormatDate wraps the adapter call and logs failures at debug level.
func (h *Helpers) FormatDate(date time.Time, pattern string, loc *dateadapter.Locale) (string, error) {
	s, err := h.Adapter.FormatDate(date, pattern, loc)
	if err != nil {
		h.logger.Debug("Format failed",
			zap.String("pattern", pattern),
			zap.Error(err))
	}
	return s, err
}
