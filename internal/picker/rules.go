package picker

import (
	"fmt"
	"time"

	"github.com/username/datepicker/internal/calendar"
)

// DefaultYearEdge is the distance from the current year to the (excluded)
// ends of the selectable year window.
const DefaultYearEdge = 500

// YearWindow is the inclusive range of years offered for navigation
type YearWindow struct {
	First int
	Last  int
}

// NewYearWindow centres the window on the year of now. Both ends, now-edge
// and now+edge, are excluded, so an edge of 500 offers 999 years.
func NewYearWindow(now time.Time, edge int) YearWindow {
	if edge <= 0 {
		edge = DefaultYearEdge
	}
	current := now.Year()
	return YearWindow{First: current - edge + 1, Last: current + edge - 1}
}

// Contains reports whether year can be navigated to
func (w YearWindow) Contains(year int) bool {
	return year >= w.First && year <= w.Last
}

// Len returns the number of years offered
func (w YearWindow) Len() int {
	if w.Last < w.First {
		return 0
	}
	return w.Last - w.First + 1
}

// Options lists the years in ascending order
func (w YearWindow) Options() []int {
	years := make([]int, 0, w.Len())
	for y := w.First; y <= w.Last; y++ {
		years = append(years, y)
	}
	return years
}

// SpilloverPolicy decides which year a selected spill-over cell commits
type SpilloverPolicy int

const (
	// SpilloverCarry commits the cell's own month and year, so the
	// 1 January cell of a December grid commits the following year.
	SpilloverCarry SpilloverPolicy = iota
	// SpilloverNavigated always commits the navigated year.
	SpilloverNavigated
)

// ParseSpilloverPolicy maps the configuration value onto a policy
func ParseSpilloverPolicy(s string) (SpilloverPolicy, error) {
	switch s {
	case "", "carry":
		return SpilloverCarry, nil
	case "navigated":
		return SpilloverNavigated, nil
	}
	return SpilloverCarry, fmt.Errorf("spillover policy must be 'carry' or 'navigated', got '%s'", s)
}

func (p SpilloverPolicy) String() string {
	if p == SpilloverNavigated {
		return "navigated"
	}
	return "carry"
}

// resolve returns the date committed when cell is selected while year is navigated
func (p SpilloverPolicy) resolve(cell calendar.GridCell, navigatedYear int) calendar.CalendarDate {
	year := cell.Year
	if p == SpilloverNavigated {
		year = navigatedYear
	}
	return calendar.NewCalendarDate(year, cell.Month, cell.Day)
}

// Rules are the fixed parameters of a picker's transitions
type Rules struct {
	Years     YearWindow
	Spillover SpilloverPolicy
}
