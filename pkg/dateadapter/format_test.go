package dateadapter

import (
	"errors"
	"testing"
	"time"
)

func TestFormatDate(t *testing.T) {
	a := NewTimeAdapter()
	es := MustParseLocale("es")
	midnight := time.Date(2019, time.April, 19, 0, 0, 0, 0, time.UTC)
	afternoon := time.Date(2020, time.January, 5, 15, 4, 9, 123000000, time.UTC)

	tests := []struct {
		name    string
		t       time.Time
		pattern string
		locale  *Locale
		want    string
	}{
		{"iso date", midnight, "yyyy-MM-dd", nil, "2019-04-19"},
		{"short month es", midnight, "MMM", es, "abr"},
		{"long month", midnight, "MMMM", nil, "April"},
		{"long month es", midnight, "d 'de' MMMM", es, "19 de abril"},
		{"weekday", midnight, "EEEE", nil, "Friday"},
		{"short weekday", midnight, "EEE", nil, "Fri"},
		{"narrow weekday", midnight, "EEEEE", nil, "F"},
		{"two digit year", midnight, "yy/M/d", nil, "19/4/19"},
		{"24h clock", afternoon, "HH:mm:ss.SSS", nil, "15:04:09.123"},
		{"12h clock", afternoon, "h:mm a", nil, "3:04 PM"},
		{"escaped quote", midnight, "''yy", nil, "'19"},
		{"literal digits", midnight, "'2006' yyyy", nil, "2006 2019"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := a.FormatDate(tt.t, tt.pattern, tt.locale)
			if err != nil {
				t.Fatalf("FormatDate(%q) error = %v", tt.pattern, err)
			}
			if got != tt.want {
				t.Errorf("FormatDate(%q) = %q, want %q", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestFormatDate_InvalidPattern(t *testing.T) {
	a := NewTimeAdapter()
	midnight := time.Date(2019, time.April, 19, 0, 0, 0, 0, time.UTC)

	for _, pattern := range []string{"yyyy-QQ", "ddd", "'unterminated", "MMMMMM"} {
		t.Run(pattern, func(t *testing.T) {
			_, err := a.FormatDate(midnight, pattern, nil)
			if !errors.Is(err, ErrInvalidPattern) {
				t.Errorf("FormatDate(%q) error = %v, want ErrInvalidPattern", pattern, err)
			}
		})
	}
}
