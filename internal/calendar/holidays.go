package calendar

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
)

// HolidayFile marks days of the grid from a local text file.
// It only decorates the rendering; selection never depends on it.
type HolidayFile struct {
	filePath string
	logger   *zap.Logger
	days     map[CalendarDate]DayInfo
}

// NewHolidayFile creates a new HolidayFile instance
func NewHolidayFile(filePath string, logger *zap.Logger) *HolidayFile {
	return &HolidayFile{
		filePath: filePath,
		logger:   logger,
		days:     make(map[CalendarDate]DayInfo),
	}
}

// Load loads day marks from file
func (hf *HolidayFile) Load() error {
	file, err := os.Open(hf.filePath)
	if err != nil {
		return fmt.Errorf("failed to open holiday file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Format: YYYY-MM-DD type [note]
		// Example: 2025-01-01 holiday New Year's Day
		parts := strings.SplitN(line, " ", 3)
		if len(parts) < 2 {
			hf.logger.Warn("Invalid line format", zap.String("line", line))
			continue
		}

		date, err := ParseCalendarDate(parts[0])
		if err != nil {
			hf.logger.Warn("Failed to parse date", zap.String("date", parts[0]), zap.Error(err))
			continue
		}

		dayType, ok := parseDayType(parts[1])
		if !ok {
			hf.logger.Warn("Unknown day type", zap.String("type", parts[1]))
			continue
		}

		info := DayInfo{Date: date, Type: dayType}
		if len(parts) == 3 {
			info.Note = strings.TrimSpace(parts[2])
		}
		hf.days[date] = info
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading holiday file: %w", err)
	}

	hf.logger.Info("Holiday file loaded",
		zap.String("file", hf.filePath),
		zap.Int("days", len(hf.days)))

	return nil
}

// Lookup returns the mark for date, if any
func (hf *HolidayFile) Lookup(date CalendarDate) (DayInfo, bool) {
	if hf == nil {
		return DayInfo{}, false
	}
	info, ok := hf.days[date]
	return info, ok
}

// IsHoliday reports whether date is marked as a non-working day
func (hf *HolidayFile) IsHoliday(date CalendarDate) bool {
	info, ok := hf.Lookup(date)
	return ok && info.Type == DayTypeHoliday
}

func parseDayType(s string) (DayType, bool) {
	switch s {
	case "workday":
		return DayTypeWorkday, true
	case "weekend":
		return DayTypeWeekend, true
	case "holiday":
		return DayTypeHoliday, true
	case "shortened":
		return DayTypeShortened, true
	}
	return 0, false
}
