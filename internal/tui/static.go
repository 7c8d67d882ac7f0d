package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/username/datepicker/internal/calendar"
	"github.com/username/datepicker/pkg/dateutil"
)

// RenderGrid draws a month grid without any interaction, for printing
func RenderGrid(grid calendar.Grid, month time.Month, year int, holidays *calendar.HolidayFile) string {
	var lines []string
	lines = append(lines, headerStyle.Render(fmt.Sprintf("%s %d", month, year)))

	var row strings.Builder
	for _, wd := range calendar.WeekdayHeaders {
		row.WriteString(weekdayStyle.Render(fmt.Sprintf("%3s ", wd)))
	}
	lines = append(lines, row.String())

	for _, week := range grid.Rows() {
		row.Reset()
		for _, cell := range week {
			style := dayStyle
			switch {
			case !cell.InDisplayedMonth:
				style = spillStyle
			case holidays.IsHoliday(cell.Date()):
				style = holidayStyle
			case dateutil.IsWeekend(cell.Date().Time()):
				style = weekendStyle
			}
			row.WriteString(style.Render(fmt.Sprintf("%3d", cell.Day)) + " ")
		}
		lines = append(lines, strings.TrimRight(row.String(), " "))
	}

	return panelStyle.Render(strings.Join(lines, "\n"))
}
