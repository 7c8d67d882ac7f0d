package calendar

import (
	"fmt"
	"time"

	"github.com/username/datepicker/pkg/dateutil"
)

// DayType represents the type of day
type DayType int

const (
	DayTypeWorkday DayType = iota + 1
	DayTypeWeekend
	DayTypeHoliday
	DayTypeShortened
)

func (t DayType) String() string {
	switch t {
	case DayTypeWorkday:
		return "workday"
	case DayTypeWeekend:
		return "weekend"
	case DayTypeHoliday:
		return "holiday"
	case DayTypeShortened:
		return "shortened"
	}
	return fmt.Sprintf("DayType(%d)", int(t))
}

// DayInfo represents information about a specific day
type DayInfo struct {
	Date CalendarDate
	Type DayType
	Note string
}

// CalendarDate is a date truncated to day precision.
// The zero value is not a valid date; use NewCalendarDate.
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// NewCalendarDate normalizes year/month/day into a valid Gregorian date
// (e.g. 31 April becomes 1 May).
func NewCalendarDate(year int, month time.Month, day int) CalendarDate {
	return FromTime(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// FromTime drops the time of day of t
func FromTime(t time.Time) CalendarDate {
	year, month, day := t.Date()
	return CalendarDate{Year: year, Month: month, Day: day}
}

// Time returns the date at midnight local time
func (d CalendarDate) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.Local)
}

// String returns the zero-padded YYYY-MM-DD form
func (d CalendarDate) String() string {
	return dateutil.FormatDate(d.Year, d.Month, d.Day)
}

// Equal reports whether both values denote the same day
func (d CalendarDate) Equal(other CalendarDate) bool {
	return d == other
}

// ParseCalendarDate parses an ISO (or any dateutil-supported) date string
func ParseCalendarDate(value string) (CalendarDate, error) {
	t, err := dateutil.ParseDate(value)
	if err != nil {
		return CalendarDate{}, fmt.Errorf("failed to parse calendar date: %w", err)
	}
	return FromTime(t), nil
}

// ParseOrToday parses value and falls back to the day of now when value
// is empty or malformed. The second result reports whether value was used.
func ParseOrToday(value string, now time.Time) (CalendarDate, bool) {
	if value != "" {
		if d, err := ParseCalendarDate(value); err == nil {
			return d, true
		}
	}
	return FromTime(dateutil.Today(now)), false
}
