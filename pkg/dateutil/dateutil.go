package dateutil

import (
	"fmt"
	"time"
)

// ISODate is the layout of every date value exchanged with the host
const ISODate = "2006-01-02"

// StartOfDay returns the start of the day (00:00:00) for the given date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// StartOfWeek returns the Monday of the week for the given date
func StartOfWeek(date time.Time) time.Time {
	return StartOfDay(date.AddDate(0, 0, -MondayIndex(date.Weekday())))
}

// MondayIndex remaps a weekday so that Monday = 0 ... Sunday = 6
func MondayIndex(weekday time.Weekday) int {
	index := int(weekday) - 1
	if index < 0 {
		index = 6 // Sunday
	}
	return index
}

// FirstOfMonth returns midnight of day 1 of the given month in loc
func FirstOfMonth(year int, month time.Month, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(year, month, 1, 0, 0, 0, 0, loc)
}

// DaysInMonth returns the number of days in the month.
// Day 1 of the following month minus one day lands on the last day.
func DaysInMonth(year int, month time.Month) int {
	next := FirstOfMonth(year, month, time.UTC).AddDate(0, 1, 0)
	return next.AddDate(0, 0, -1).Day()
}

// IsWeekend returns true if the date is Saturday or Sunday
func IsWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// IsSameDay returns true if two dates are on the same day
func IsSameDay(date1, date2 time.Time) bool {
	return date1.Year() == date2.Year() &&
		date1.Month() == date2.Month() &&
		date1.Day() == date2.Day()
}

// FormatDate formats a date as zero-padded YYYY-MM-DD
// Example: 0987-03-07
func FormatDate(year int, month time.Month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}

// ParseDate parses date string in various formats.
// The result is always in the local location at midnight.
func ParseDate(dateStr string) (time.Time, error) {
	formats := []string{
		ISODate,
		"02.01.2006",
		"2006-01-02T15:04:05",
		"2006-01-02T15:04:05Z",
		"2006-01-02T15:04:05-0700",
	}

	for _, format := range formats {
		if t, err := time.ParseInLocation(format, dateStr, time.Local); err == nil {
			return StartOfDay(t), nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date format: %q", dateStr)
}

// Today returns the date of now at the start of the day
func Today(now time.Time) time.Time {
	return StartOfDay(now)
}
