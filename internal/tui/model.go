// Package tui hosts a date picker in a terminal form field.
//
// The model renders the picker's projection with lipgloss, records a hit
// region for everything clickable while rendering, and turns mouse presses
// into picker input. Every press is also published on the interaction bus,
// which is how an open picker learns about presses outside its grid.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/username/datepicker/internal/calendar"
	"github.com/username/datepicker/internal/interaction"
	"github.com/username/datepicker/internal/picker"
	"go.uber.org/zap"
)

const (
	regionPanel     = "panel"
	regionMonthPrev = "month-prev"
	regionMonthNext = "month-next"
	regionYearPrev  = "year-prev"
	regionYearNext  = "year-next"
)

// Options configures a Model
type Options struct {
	ID           string
	Label        string
	InitialValue string
	Spillover    picker.SpilloverPolicy
	YearEdge     int
	Holidays     *calendar.HolidayFile
	Clock        func() time.Time
	Logger       *zap.Logger
}

type keyMap struct {
	Quit    key.Binding
	Dismiss key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close calendar"),
		),
	}
}

// Model is the bubbletea model of a single date field
type Model struct {
	picker   *picker.Controller
	bus      *interaction.Bus
	holidays *calendar.HolidayFile
	hits     *HitMap
	panel    Rect
	keys     keyMap
	label    string
	commits  int
	logger   *zap.Logger
}

// New creates a model with a closed picker
func New(opts Options) *Model {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Label == "" {
		opts.Label = opts.ID
	}

	m := &Model{
		bus:      interaction.NewBus(opts.Logger),
		holidays: opts.Holidays,
		hits:     NewHitMap(),
		keys:     defaultKeyMap(),
		label:    opts.Label,
		logger:   opts.Logger,
	}
	m.picker = picker.NewController(picker.Options{
		ID:           opts.ID,
		InitialValue: opts.InitialValue,
		OnCommit:     m.onCommit,
		Observer:     m.bus,
		Clock:        opts.Clock,
		Spillover:    opts.Spillover,
		YearEdge:     opts.YearEdge,
		Logger:       opts.Logger,
	})
	return m
}

// Value returns the field's committed value
func (m *Model) Value() string {
	return m.picker.Value()
}

// Commits returns how many values were committed
func (m *Model) Commits() int {
	return m.commits
}

// Close unmounts the picker
func (m *Model) Close() {
	m.picker.Destroy()
}

func (m *Model) onCommit(value string) {
	m.commits++
	m.logger.Info("Field value changed",
		zap.String("field", m.picker.ID()),
		zap.String("value", value))
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.Close()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Dismiss):
			if m.picker.State().Open {
				m.picker.Toggle()
			}
		}

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		m.click(msg.X, msg.Y)
	}
	return m, nil
}

func (m *Model) click(x, y int) {
	region := m.hits.Test(x, y)

	in := interaction.Interaction{X: x, Y: y}
	if region != nil {
		in.TargetID = region.ID
	}
	in.InsideGrid = m.picker.State().Open && m.panel.Contains(x, y)
	m.bus.Publish(in)

	if region == nil {
		return
	}

	switch region.ID {
	case m.picker.ID():
		m.picker.Toggle()
	case regionMonthPrev:
		m.shiftMonth(-1)
	case regionMonthNext:
		m.shiftMonth(1)
	case regionYearPrev:
		m.picker.ChangeYear(m.picker.State().Year - 1)
	case regionYearNext:
		m.picker.ChangeYear(m.picker.State().Year + 1)
	default:
		if cell, ok := region.Data.(calendar.GridCell); ok {
			m.picker.Select(cell)
		}
	}
}

// shiftMonth navigates by delta months, crossing into the adjacent year
// when the year window allows it.
func (m *Model) shiftMonth(delta int) {
	s := m.picker.State()
	first := time.Date(s.Year, s.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, delta, 0)

	if first.Year() != s.Year {
		if !m.picker.YearWindow().Contains(first.Year()) {
			return
		}
		m.picker.ChangeYear(first.Year())
	}
	m.picker.ChangeMonth(first.Month())
}

// View implements tea.Model. It also records the hit regions of what it
// draws, so it must run before the next mouse press is handled.
func (m *Model) View() string {
	m.hits.Clear()
	m.panel = Rect{}

	v := m.picker.View()

	label := labelStyle.Render(m.label + ": ")
	style := inputStyle
	if v.Open {
		style = inputOpenStyle
	}
	input := style.Render(" " + v.Value + " ")
	m.hits.AddRect(v.ID, lipgloss.Width(label), 0, lipgloss.Width(input), 1, nil)

	var b strings.Builder
	b.WriteString(label + input + "\n\n")

	if v.Open {
		panel := m.renderPanel(v, strings.Count(b.String(), "\n"))
		b.WriteString(panel + "\n")
		b.WriteString(helpStyle.Render("click a day to select · click outside to close · esc close · q quit"))
	} else {
		b.WriteString(helpStyle.Render("click the field to pick a date · q quit"))
	}
	return b.String()
}

// renderPanel draws the open grid with its top edge on row top. Hit
// regions are measured from the rendered text and the panel frame.
func (m *Model) renderPanel(v picker.View, top int) string {
	var lines []string
	originX := panelStyle.GetBorderLeftSize() + panelStyle.GetPaddingLeft()
	originY := top + panelStyle.GetBorderTopSize() + panelStyle.GetPaddingTop()

	type segment struct {
		id   string
		text string
	}
	header := []segment{
		{regionMonthPrev, arrowStyle.Render(" ‹ ")},
		{"", headerStyle.Render(fmt.Sprintf("%-11s", v.MonthLabel))},
		{regionMonthNext, arrowStyle.Render(" › ")},
		{"", "  "},
		{regionYearPrev, arrowStyle.Render(" « ")},
		{"", headerStyle.Render(fmt.Sprintf("%-6s", v.YearLabel))},
		{regionYearNext, arrowStyle.Render(" » ")},
	}
	type hit struct {
		id      string
		x, y, w int
		data    any
	}
	var hits []hit

	var row strings.Builder
	x := originX
	for _, seg := range header {
		w := lipgloss.Width(seg.text)
		if seg.id != "" {
			hits = append(hits, hit{id: seg.id, x: x, y: originY, w: w})
		}
		row.WriteString(seg.text)
		x += w
	}
	lines = append(lines, row.String())

	row.Reset()
	for _, wd := range v.Weekdays {
		row.WriteString(weekdayStyle.Render(fmt.Sprintf("%3s ", wd)))
	}
	lines = append(lines, row.String())

	for r, cells := range v.Rows {
		row.Reset()
		x = originX
		for c, cell := range cells {
			text := m.cellStyle(cell).Render(fmt.Sprintf("%3s", cell.Label)) + " "
			w := lipgloss.Width(text)
			hits = append(hits, hit{
				id:   fmt.Sprintf("cell-%d", r*calendar.GridColumns+c),
				x:    x,
				y:    originY + len(lines),
				w:    w,
				data: cell.Cell,
			})
			row.WriteString(text)
			x += w
		}
		lines = append(lines, row.String())
	}

	panel := panelStyle.Render(strings.Join(lines, "\n"))
	m.panel = Rect{X: 0, Y: top, W: lipgloss.Width(panel), H: lipgloss.Height(panel)}
	// The panel goes below its controls so that they win the hit test.
	m.hits.AddRect(regionPanel, m.panel.X, m.panel.Y, m.panel.W, m.panel.H, nil)
	for _, h := range hits {
		m.hits.AddRect(h.id, h.x, h.y, h.w, 1, h.data)
	}
	return panel
}

func (m *Model) cellStyle(cell picker.CellView) lipgloss.Style {
	switch {
	case cell.Selected:
		return selectedStyle
	case cell.Dimmed:
		return spillStyle
	case cell.Today:
		return todayStyle
	case m.holidays.IsHoliday(cell.Cell.Date()):
		return holidayStyle
	case cell.Weekend:
		return weekendStyle
	}
	return dayStyle
}
