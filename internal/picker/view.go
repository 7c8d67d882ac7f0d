package picker

import (
	"strconv"
	"time"

	"github.com/username/datepicker/internal/calendar"
	"github.com/username/datepicker/pkg/dateutil"
)

// CellView is one grid cell ready for rendering
type CellView struct {
	Cell     calendar.GridCell
	Label    string
	Dimmed   bool // spill-over cell
	Selected bool
	Today    bool
	Weekend  bool
}

// View is the rendering projection of a State
type View struct {
	ID         string
	Value      string
	Open       bool
	Month      time.Month
	MonthLabel string
	Year       int
	YearLabel  string
	Weekdays   [calendar.GridColumns]string
	Rows       [calendar.GridRows][calendar.GridColumns]CellView
}

// Project maps s onto what a host renders. Rows are only filled while open.
func Project(s State, id string, now time.Time) View {
	v := View{
		ID:         id,
		Value:      s.Value(),
		Open:       s.Open,
		Month:      s.Month,
		MonthLabel: s.Month.String(),
		Year:       s.Year,
		YearLabel:  strconv.Itoa(s.Year),
		Weekdays:   calendar.WeekdayHeaders,
	}
	if !s.Open {
		return v
	}

	for r, row := range s.Grid.Rows() {
		for c, cell := range row {
			date := cell.Date()
			v.Rows[r][c] = CellView{
				Cell:     cell,
				Label:    strconv.Itoa(cell.Day),
				Dimmed:   !cell.InDisplayedMonth,
				Selected: date == s.Selected,
				Today:    dateutil.IsSameDay(date.Time(), now),
				Weekend:  c >= 5,
			}
		}
	}
	return v
}
