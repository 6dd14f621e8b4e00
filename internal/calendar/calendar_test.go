package calendar

import (
	"strings"
	"testing"
	"time"

	"github.com/username/datepicker-core/pkg/dateadapter"
	"github.com/username/datepicker-core/pkg/datehelpers"
	"github.com/username/datepicker-core/pkg/dateutil"
	"go.uber.org/zap"
)

func newTestService(t *testing.T, now time.Time, opts ...Option) *Service {
	t.Helper()
	adapter := dateadapter.NewTimeAdapter(dateadapter.WithNow(func() time.Time { return now }))
	return NewService(datehelpers.New(adapter), opts...)
}

func TestMonthGeneratesCompleteWeeks(t *testing.T) {
	now := time.Date(2025, 11, 18, 10, 0, 0, 0, time.UTC)
	svc := newTestService(t, now)

	view, err := svc.Month(2025, time.November, datehelpers.Bounds{}, Selection{})
	if err != nil {
		t.Fatalf("Month returned error: %v", err)
	}
	if view.Title != "November 2025" {
		t.Errorf("Title = %q", view.Title)
	}
	if got := strings.Join(view.Weekdays, ""); got != "SMTWTFS" {
		t.Errorf("Weekdays = %q, want SMTWTFS", got)
	}
	if len(view.Weeks) != 6 {
		t.Fatalf("expected 6 weeks for November 2025, got %d", len(view.Weeks))
	}
	if start := view.Weeks[0][0].Date; start.Weekday() != time.Sunday || start.Day() != 26 {
		t.Fatalf("calendar should start on Sunday Oct 26, got %v", start)
	}

	foundToday := false
	inMonth := 0
	for _, week := range view.Weeks {
		if len(week) != 7 {
			t.Fatalf("week should have 7 days, got %d", len(week))
		}
		for _, day := range week {
			if day.InMonth {
				inMonth++
			}
			if day.IsToday {
				foundToday = true
				if day.Date.Day() != 18 {
					t.Fatalf("expected IsToday on 18th, got %d", day.Date.Day())
				}
			}
		}
	}
	if !foundToday {
		t.Fatalf("expected to flag current day")
	}
	if inMonth != 30 {
		t.Errorf("expected 30 in-month days, got %d", inMonth)
	}
}

func TestMonthUsesLocaleWeekStart(t *testing.T) {
	es := dateadapter.MustParseLocale("es")
	svc := newTestService(t, time.Now(), WithLocale(es))

	view, err := svc.Month(2020, time.April, datehelpers.Bounds{}, Selection{})
	if err != nil {
		t.Fatalf("Month returned error: %v", err)
	}
	if view.Weeks[0][0].Date.Weekday() != time.Monday {
		t.Errorf("Spanish weeks should start on Monday, got %v", view.Weeks[0][0].Date.Weekday())
	}
	if view.Title != "abril 2020" {
		t.Errorf("Title = %q, want abril 2020", view.Title)
	}
}

func TestMonthMarksDisabledAndRange(t *testing.T) {
	svc := newTestService(t, time.Now())
	bounds := datehelpers.Bounds{
		MinDate:      time.Date(2020, 5, 5, 0, 0, 0, 0, time.UTC),
		MaxDate:      time.Date(2020, 5, 20, 0, 0, 0, 0, time.UTC),
		ExcludeDates: []time.Time{time.Date(2020, 5, 10, 0, 0, 0, 0, time.UTC)},
	}
	sel := Selection{
		Start: time.Date(2020, 5, 12, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2020, 5, 14, 0, 0, 0, 0, time.UTC),
	}

	view, err := svc.Month(2020, time.May, bounds, sel)
	if err != nil {
		t.Fatalf("Month returned error: %v", err)
	}
	if !view.PrevDisabled || !view.NextDisabled {
		t.Errorf("PrevDisabled = %v, NextDisabled = %v, want both true", view.PrevDisabled, view.NextDisabled)
	}

	for _, week := range view.Weeks {
		for _, day := range week {
			if !day.InMonth {
				continue
			}
			d := day.Date.Day()
			wantDisabled := d < 5 || d > 20 || d == 10
			if day.Disabled != wantDisabled {
				t.Errorf("May %d Disabled = %v, want %v", d, day.Disabled, wantDisabled)
			}
			wantRange := d >= 12 && d <= 14
			if day.InRange != wantRange {
				t.Errorf("May %d InRange = %v, want %v", d, day.InRange, wantRange)
			}
		}
	}
}

func TestMonthWithHolidays(t *testing.T) {
	fc := NewFileCalendar("", time.UTC, zap.NewNop())
	data := `# test data
2020-05-01 holiday Labour Day
2020-05-09 workday
bad-line
2020-13-01 holiday Nope
2020-05-02 vacation
`
	if err := fc.read(strings.NewReader(data)); err != nil {
		t.Fatalf("read() error = %v", err)
	}

	svc := newTestService(t, time.Now(), WithHolidays(fc))
	bounds := datehelpers.Bounds{
		FilterDate: func(d time.Time) bool { return !dateutil.IsWeekend(d) },
	}

	view, err := svc.Month(2020, time.May, bounds, Selection{})
	if err != nil {
		t.Fatalf("Month returned error: %v", err)
	}

	byDay := map[int]Day{}
	for _, week := range view.Weeks {
		for _, day := range week {
			if day.InMonth {
				byDay[day.Date.Day()] = day
			}
		}
	}

	if !byDay[1].Disabled || byDay[1].Holiday == nil || byDay[1].Holiday.Note != "Labour Day" {
		t.Errorf("May 1 should be a disabled holiday, got %+v", byDay[1])
	}
	if byDay[9].Disabled {
		t.Error("May 9 is a Saturday listed as a working day and should be enabled")
	}
	if !byDay[10].Disabled {
		t.Error("May 10 is a Sunday and should be disabled")
	}
	if byDay[4].Disabled {
		t.Error("May 4 is a plain Monday and should be enabled")
	}
}

func TestInvalidMonth(t *testing.T) {
	svc := newTestService(t, time.Now())
	if _, err := svc.Month(2024, 13, datehelpers.Bounds{}, Selection{}); err != ErrInvalidMonth {
		t.Fatalf("expected ErrInvalidMonth, got %v", err)
	}
}
