package calendar

import (
	"time"

	"github.com/username/datepicker/pkg/dateutil"
)

const (
	// GridColumns is the number of weekday columns, Monday first
	GridColumns = 7
	// GridRows is the number of week rows
	GridRows = 6
	// GridSize is the number of cells in every grid
	GridSize = GridColumns * GridRows
)

// WeekdayHeaders labels the grid columns
var WeekdayHeaders = [GridColumns]string{"M", "T", "W", "T", "F", "S", "S"}

// GridCell is one day shown in the month grid
type GridCell struct {
	Day              int
	Month            time.Month
	Year             int
	InDisplayedMonth bool
}

// Date returns the calendar date the cell stands for
func (c GridCell) Date() CalendarDate {
	return CalendarDate{Year: c.Year, Month: c.Month, Day: c.Day}
}

// Grid holds the cells of a month view in chronological order
type Grid [GridSize]GridCell

// Rows splits the grid into weeks
func (g Grid) Rows() [GridRows][GridColumns]GridCell {
	var rows [GridRows][GridColumns]GridCell
	for i, cell := range g {
		rows[i/GridColumns][i%GridColumns] = cell
	}
	return rows
}

// BuildGrid computes the 42 cells displayed for a month: the tail of the
// previous month up to the first Monday, every day of the month, then the
// head of the next month.
func BuildGrid(month time.Month, year int) Grid {
	firstOfMonth := dateutil.FirstOfMonth(year, month, time.UTC)
	leading := dateutil.MondayIndex(firstOfMonth.Weekday())

	prev := firstOfMonth.AddDate(0, -1, 0)
	next := firstOfMonth.AddDate(0, 1, 0)
	daysInPrevious := dateutil.DaysInMonth(prev.Year(), prev.Month())
	daysInCurrent := dateutil.DaysInMonth(year, month)

	var grid Grid
	i := 0
	for day := daysInPrevious - leading + 1; day <= daysInPrevious; day++ {
		grid[i] = GridCell{Day: day, Month: prev.Month(), Year: prev.Year()}
		i++
	}
	for day := 1; day <= daysInCurrent; day++ {
		grid[i] = GridCell{Day: day, Month: month, Year: year, InDisplayedMonth: true}
		i++
	}
	remaining := GridSize - (leading + daysInCurrent)
	for day := 1; day <= remaining; day++ {
		grid[i] = GridCell{Day: day, Month: next.Month(), Year: next.Year()}
		i++
	}
	return grid
}
