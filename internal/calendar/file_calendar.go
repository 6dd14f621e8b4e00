package calendar

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/username/datepicker-core/pkg/dateutil"
	"go.uber.org/zap"
)

// DayType represents the type of a listed day
type DayType int

const (
	DayTypeHoliday DayType = iota + 1
	DayTypeWorkday
)

// DayInfo represents one line of the holidays file
type DayInfo struct {
	Date time.Time
	Type DayType
	Note string
}

// FileCalendar loads holidays and working-day overrides from a local text file
type FileCalendar struct {
	filePath string
	loc      *time.Location
	logger   *zap.Logger
	data     map[string]*DayInfo // key: "YYYY-MM-DD"
}

// NewFileCalendar creates a new FileCalendar instance. Dates are read in loc.
func NewFileCalendar(filePath string, loc *time.Location, logger *zap.Logger) *FileCalendar {
	if loc == nil {
		loc = time.UTC
	}
	return &FileCalendar{
		filePath: filePath,
		loc:      loc,
		logger:   logger,
		data:     make(map[string]*DayInfo),
	}
}

// Load loads calendar data from file
func (fc *FileCalendar) Load() error {
	file, err := os.Open(fc.filePath)
	if err != nil {
		return fmt.Errorf("failed to open calendar file: %w", err)
	}
	defer file.Close()

	if err := fc.read(file); err != nil {
		return err
	}

	fc.logger.Info("Calendar file loaded",
		zap.String("file", fc.filePath),
		zap.Int("days", len(fc.data)))

	return nil
}

func (fc *FileCalendar) read(r io.Reader) error {
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Format: YYYY-MM-DD type [note]
		// Example: 2025-01-01 holiday New Year's Day
		parts := strings.SplitN(line, " ", 3)
		if len(parts) < 2 {
			fc.logger.Warn("Invalid line format", zap.String("line", line))
			continue
		}

		date, err := dateutil.ParseDate(parts[0], fc.loc)
		if err != nil {
			fc.logger.Warn("Failed to parse date", zap.String("date", parts[0]), zap.Error(err))
			continue
		}

		var dayType DayType
		switch parts[1] {
		case "holiday":
			dayType = DayTypeHoliday
		case "workday":
			dayType = DayTypeWorkday
		default:
			fc.logger.Warn("Unknown day type", zap.String("type", parts[1]))
			continue
		}

		note := ""
		if len(parts) == 3 {
			note = strings.TrimSpace(parts[2])
		}

		fc.data[dayKey(date)] = &DayInfo{
			Date: date,
			Type: dayType,
			Note: note,
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading calendar file: %w", err)
	}
	return nil
}

// GetDayInfo returns the entry for date, or nil when the day is not listed
func (fc *FileCalendar) GetDayInfo(date time.Time) *DayInfo {
	return fc.data[dayKey(date.In(fc.loc))]
}

// Holidays returns every listed holiday in ascending order, suitable for
// an exclude list
func (fc *FileCalendar) Holidays() []time.Time {
	var out []time.Time
	for _, d := range fc.data {
		if d.Type == DayTypeHoliday {
			out = append(out, d.Date)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// IsWorkdayOverride reports whether date is listed as a working day,
// e.g. a Saturday that replaces a bridged holiday
func (fc *FileCalendar) IsWorkdayOverride(date time.Time) bool {
	d := fc.GetDayInfo(date)
	return d != nil && d.Type == DayTypeWorkday
}

func dayKey(date time.Time) string {
	return date.Format("2006-01-02")
}
