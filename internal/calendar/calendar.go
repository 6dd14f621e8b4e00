package calendar

import (
	"errors"
	"fmt"
	"time"

	"github.com/username/datepicker-core/pkg/dateadapter"
	"github.com/username/datepicker-core/pkg/datehelpers"
	"go.uber.org/zap"
)

// ErrInvalidMonth indicates the month is not in the 1..12 range.
var ErrInvalidMonth = errors.New("month must be between 1 and 12")

// Day represents a single cell of the month grid.
type Day struct {
	Date     time.Time
	InMonth  bool
	IsToday  bool
	Disabled bool
	InRange  bool
	Holiday  *DayInfo
}

// MonthView describes a month laid out into full weeks.
type MonthView struct {
	Year         int
	Month        time.Month
	Title        string
	Weekdays     []string // one-letter names in display order
	Weeks        [][]Day
	PrevDisabled bool
	NextDisabled bool
}

// Selection is the currently selected range. A zero End selects only
// Start; a zero Start selects nothing.
type Selection struct {
	Start time.Time
	End   time.Time
}

// Service materialises month views from the date helpers.
type Service struct {
	helpers  *datehelpers.Helpers
	locale   *dateadapter.Locale
	holidays *FileCalendar
	logger   *zap.Logger
}

// Option configures the Service.
type Option func(*Service)

// WithLocale sets the locale for names and week layout.
func WithLocale(l *dateadapter.Locale) Option {
	return func(s *Service) {
		s.locale = l
	}
}

// WithHolidays excludes listed holidays and lets listed working days
// through the date filter.
func WithHolidays(fc *FileCalendar) Option {
	return func(s *Service) {
		s.holidays = fc
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// NewService constructs a Service.
func NewService(helpers *datehelpers.Helpers, opts ...Option) *Service {
	s := &Service{
		helpers: helpers,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.locale == nil {
		s.locale = helpers.DefaultLocale()
	}
	return s
}

// Bounds merges the holiday file into b.
func (s *Service) Bounds(b datehelpers.Bounds) datehelpers.Bounds {
	if s.holidays == nil {
		return b
	}

	holidays := s.holidays.Holidays()
	exclude := make([]time.Time, 0, len(b.ExcludeDates)+len(holidays))
	exclude = append(exclude, b.ExcludeDates...)
	b.ExcludeDates = append(exclude, holidays...)

	if filter := b.FilterDate; filter != nil {
		b.FilterDate = func(t time.Time) bool {
			return s.holidays.IsWorkdayOverride(t) || filter(t)
		}
	}
	return b
}

// Month builds a MonthView.
func (s *Service) Month(year int, month time.Month, bounds datehelpers.Bounds, sel Selection) (MonthView, error) {
	if month < time.January || month > time.December {
		return MonthView{}, ErrInvalidMonth
	}

	h := s.helpers
	bounds = s.Bounds(bounds)
	first := h.Date(year, month, 1)
	start := h.GetStartOfWeek(first, s.locale)
	end := h.GetEndOfWeek(h.GetEndOfMonth(first), s.locale)
	now := h.Now()

	title, err := h.FormatDate(first, "MMMM yyyy", s.locale)
	if err != nil {
		return MonthView{}, fmt.Errorf("failed to format title: %w", err)
	}

	view := MonthView{
		Year:         year,
		Month:        month,
		Title:        title,
		Weekdays:     make([]string, 7),
		PrevDisabled: h.MonthDisabledBefore(first, bounds),
		NextDisabled: h.MonthDisabledAfter(first, bounds),
	}
	for i := range view.Weekdays {
		view.Weekdays[i] = h.GetWeekdayMinInLocale(h.AddDays(start, i), s.locale)
	}

	days := h.DifferenceInCalendarDays(end, start) + 1
	for offset := 0; offset < days; offset += 7 {
		week := make([]Day, 7)
		for i := range week {
			week[i] = s.buildDay(h.AddDays(start, offset+i), first, now, bounds, sel)
		}
		view.Weeks = append(view.Weeks, week)
	}

	s.logger.Debug("Month view built",
		zap.Int("year", year),
		zap.Int("month", int(month)),
		zap.Int("weeks", len(view.Weeks)))

	return view, nil
}

func (s *Service) buildDay(day, first, now time.Time, bounds datehelpers.Bounds, sel Selection) Day {
	h := s.helpers
	d := Day{
		Date:     day,
		InMonth:  h.IsSameMonth(day, first),
		IsToday:  h.IsSameDay(day, now),
		Disabled: h.IsDayDisabled(day, bounds),
	}

	switch {
	case !sel.Start.IsZero() && !sel.End.IsZero():
		d.InRange = h.IsDayInRange(day, sel.Start, sel.End)
	case !sel.Start.IsZero():
		d.InRange = h.IsSameDay(day, sel.Start)
	}

	if s.holidays != nil {
		d.Holiday = s.holidays.GetDayInfo(day)
	}
	return d
}
