package picker

import (
	"time"

	"github.com/username/datepicker/internal/calendar"
)

// State is everything a picker instance owns
type State struct {
	Open bool
	// Month and Year are the navigated month, shown while open
	Month    time.Month
	Year     int
	Selected calendar.CalendarDate
	Grid     calendar.Grid
}

// NewState returns a closed picker navigated to selected
func NewState(selected calendar.CalendarDate) State {
	return State{
		Month:    selected.Month,
		Year:     selected.Year,
		Selected: selected,
		Grid:     calendar.BuildGrid(selected.Month, selected.Year),
	}
}

// Value is the committed value in the host's format
func (s State) Value() string {
	return s.Selected.String()
}

// Event is an input to Transition
type Event interface {
	event()
}

// ToggleRequested opens a closed picker or closes an open one
type ToggleRequested struct{}

// MonthChanged navigates the open grid to Month
type MonthChanged struct {
	Month time.Month
}

// YearChanged navigates the open grid to Year
type YearChanged struct {
	Year int
}

// CellSelected commits the date of Cell
type CellSelected struct {
	Cell calendar.GridCell
}

// OutsideInteraction is a press outside the grid and its trigger
type OutsideInteraction struct{}

func (ToggleRequested) event()    {}
func (MonthChanged) event()       {}
func (YearChanged) event()        {}
func (CellSelected) event()       {}
func (OutsideInteraction) event() {}

// Effect is what the owner of the state must do after a transition
type Effect struct {
	// Commit is the value to emit to the host, empty for none
	Commit string
}

// Transition applies ev to s. It never fails: events that do not apply to
// the current state, months outside January..December and years outside
// the window leave s unchanged.
func Transition(s State, ev Event, rules Rules) (State, Effect) {
	switch e := ev.(type) {
	case ToggleRequested:
		if s.Open {
			s.Open = false
			return s, Effect{}
		}
		s.Open = true
		s.Month, s.Year = s.Selected.Month, s.Selected.Year
		s.Grid = calendar.BuildGrid(s.Month, s.Year)

	case MonthChanged:
		if !s.Open || e.Month < time.January || e.Month > time.December {
			return s, Effect{}
		}
		s.Month = e.Month
		s.Grid = calendar.BuildGrid(s.Month, s.Year)

	case YearChanged:
		if !s.Open || !rules.Years.Contains(e.Year) {
			return s, Effect{}
		}
		s.Year = e.Year
		s.Grid = calendar.BuildGrid(s.Month, s.Year)

	case CellSelected:
		if !s.Open {
			return s, Effect{}
		}
		s.Selected = rules.Spillover.resolve(e.Cell, s.Year)
		s.Open = false
		return s, Effect{Commit: s.Selected.String()}

	case OutsideInteraction:
		s.Open = false
	}
	return s, Effect{}
}
