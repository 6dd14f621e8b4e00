package datehelpers

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidBounds indicates a MinDate later than MaxDate.
var ErrInvalidBounds = errors.New("invalid date bounds")

// Bounds holds the optional constraints that decide whether a day can
// be selected. Zero MinDate/MaxDate, nil slices and a nil FilterDate are
// absent. A non-nil empty IncludeDates is present and allows nothing.
type Bounds struct {
	MinDate      time.Time
	MaxDate      time.Time
	ExcludeDates []time.Time
	IncludeDates []time.Time
	FilterDate   func(time.Time) bool
}

// Validate reports ErrInvalidBounds when MinDate is after MaxDate.
func (b Bounds) Validate() error {
	if !b.MinDate.IsZero() && !b.MaxDate.IsZero() && b.MinDate.After(b.MaxDate) {
		return fmt.Errorf("%w: min date %s is after max date %s", ErrInvalidBounds,
			b.MinDate.Format("2006-01-02"), b.MaxDate.Format("2006-01-02"))
	}
	return nil
}
