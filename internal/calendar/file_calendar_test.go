package calendar

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestFileCalendar_Load(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	path := filepath.Join(t.TempDir(), "holidays.txt")
	data := "2025-01-07 holiday Christmas\n2025-01-01 holiday New Year\n2025-01-11 workday\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	fc := NewFileCalendar(path, time.UTC, logger)
	if err := fc.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	holidays := fc.Holidays()
	if len(holidays) != 2 {
		t.Fatalf("Holidays() = %v, want 2 entries", holidays)
	}
	if holidays[0].Day() != 1 || holidays[1].Day() != 7 {
		t.Errorf("Holidays() not sorted: %v", holidays)
	}

	if !fc.IsWorkdayOverride(time.Date(2025, 1, 11, 15, 0, 0, 0, time.UTC)) {
		t.Error("Jan 11 should be a working-day override")
	}
	if fc.IsWorkdayOverride(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Error("Jan 1 is a holiday, not a working-day override")
	}

	info := fc.GetDayInfo(time.Date(2025, 1, 7, 0, 0, 0, 0, time.UTC))
	if info == nil || info.Type != DayTypeHoliday || info.Note != "Christmas" {
		t.Errorf("GetDayInfo(Jan 7) = %+v", info)
	}
	if fc.GetDayInfo(time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC)) != nil {
		t.Error("unlisted days should return nil")
	}
}

func TestFileCalendar_LoadMissingFile(t *testing.T) {
	fc := NewFileCalendar(filepath.Join(t.TempDir(), "missing.txt"), nil, zap.NewNop())
	if err := fc.Load(); err == nil {
		t.Fatal("Load() expected error for missing file")
	}
}
