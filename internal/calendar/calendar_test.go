package calendar

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestNewCalendarDate_Normalizes(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
		day   int
		want  string
	}{
		{"Valid date", 2000, time.February, 29, "2000-02-29"},
		{"31 April", 2025, time.April, 31, "2025-05-01"},
		{"29 February common year", 2023, time.February, 29, "2023-03-01"},
		{"Month 13", 2025, 13, 1, "2026-01-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewCalendarDate(tt.year, tt.month, tt.day).String()
			if got != tt.want {
				t.Errorf("NewCalendarDate(%d, %v, %d) = %s, want %s", tt.year, tt.month, tt.day, got, tt.want)
			}
		})
	}
}

func TestCalendarDate_TimeIsMidnightLocal(t *testing.T) {
	tm := NewCalendarDate(2000, time.February, 20).Time()

	if tm.Hour() != 0 || tm.Minute() != 0 || tm.Second() != 0 || tm.Nanosecond() != 0 {
		t.Errorf("Time() = %v, want midnight", tm)
	}
	if tm.Location() != time.Local {
		t.Errorf("Time() location = %v, want Local", tm.Location())
	}
}

func TestParseOrToday(t *testing.T) {
	now := time.Date(2026, 10, 19, 15, 4, 5, 0, time.Local)

	tests := []struct {
		name     string
		value    string
		want     string
		wantUsed bool
	}{
		{"ISO value", "2000-02-20", "2000-02-20", true},
		{"Empty value", "", "2026-10-19", false},
		{"Malformed value", "20/02/2000", "2026-10-19", false},
		{"Impossible value", "2023-02-30", "2026-10-19", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, used := ParseOrToday(tt.value, now)
			if got.String() != tt.want || used != tt.wantUsed {
				t.Errorf("ParseOrToday(%q) = (%s, %v), want (%s, %v)", tt.value, got, used, tt.want, tt.wantUsed)
			}
		})
	}
}

func TestHolidayFile_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "holidays.txt")
	content := `# company calendar
2025-01-01 holiday New Year's Day
2025-01-02 shortened
2025-13-01 holiday broken month
2025-01-03 vacation unknown type
garbage
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	hf := NewHolidayFile(path, zap.NewNop())
	if err := hf.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	info, ok := hf.Lookup(NewCalendarDate(2025, time.January, 1))
	if !ok {
		t.Fatal("expected 2025-01-01 to be marked")
	}
	if info.Type != DayTypeHoliday || info.Note != "New Year's Day" {
		t.Errorf("Lookup(2025-01-01) = %+v", info)
	}
	if !hf.IsHoliday(NewCalendarDate(2025, time.January, 1)) {
		t.Error("IsHoliday(2025-01-01) = false, want true")
	}
	if hf.IsHoliday(NewCalendarDate(2025, time.January, 2)) {
		t.Error("shortened day reported as holiday")
	}
	if _, ok := hf.Lookup(NewCalendarDate(2025, time.January, 3)); ok {
		t.Error("line with unknown day type should be skipped")
	}
}

func TestHolidayFile_MissingFile(t *testing.T) {
	hf := NewHolidayFile(filepath.Join(t.TempDir(), "missing.txt"), zap.NewNop())
	if err := hf.Load(); err == nil {
		t.Error("Load() of a missing file should fail")
	}
}

func TestHolidayFile_NilLookup(t *testing.T) {
	var hf *HolidayFile
	if _, ok := hf.Lookup(NewCalendarDate(2025, time.January, 1)); ok {
		t.Error("nil HolidayFile should mark nothing")
	}
}
