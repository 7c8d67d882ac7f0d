package picker

import (
	"testing"
	"time"

	"github.com/username/datepicker/internal/calendar"
	"github.com/username/datepicker/internal/interaction"
	"go.uber.org/zap"
)

func fixedClock() time.Time {
	return time.Date(2026, 10, 19, 9, 30, 0, 0, time.Local)
}

type recorder struct {
	commits []string
}

func (r *recorder) onCommit(value string) {
	r.commits = append(r.commits, value)
}

func newTestController(t *testing.T, initial string) (*Controller, *interaction.Bus, *recorder) {
	t.Helper()
	bus := interaction.NewBus(zap.NewNop())
	rec := &recorder{}
	c := NewController(Options{
		ID:           "dateOfBirth",
		InitialValue: initial,
		OnCommit:     rec.onCommit,
		Observer:     bus,
		Clock:        fixedClock,
		Logger:       zap.NewNop(),
	})
	return c, bus, rec
}

func TestController_InitialValue(t *testing.T) {
	tests := []struct {
		name    string
		initial string
		want    string
	}{
		{"ISO value", "2000-02-20", "2000-02-20"},
		{"Empty value is today", "", "2026-10-19"},
		{"Malformed value is today", "next tuesday", "2026-10-19"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _, _ := newTestController(t, tt.initial)
			if c.Value() != tt.want {
				t.Errorf("Value() = %s, want %s", c.Value(), tt.want)
			}
			s := c.State()
			if s.Open || s.Month != s.Selected.Month || s.Year != s.Selected.Year {
				t.Errorf("new controller state = %+v", s)
			}
		})
	}
}

func TestController_OpenSelectCommit(t *testing.T) {
	c, bus, rec := newTestController(t, "2000-02-20")

	c.Toggle()

	s := c.State()
	if !s.Open || s.Month != time.February || s.Year != 2000 {
		t.Fatalf("opened at %v %d (open=%v), want February 2000", s.Month, s.Year, s.Open)
	}
	if first := s.Grid[0]; first.Month != time.January || first.Day != 31 {
		t.Errorf("first cell = %+v, want 31 January", first)
	}
	if bus.Listeners() != 1 || !c.Listening() {
		t.Errorf("listeners = %d while open, want 1", bus.Listeners())
	}

	c.Select(findCell(t, s.Grid, time.February, 29))

	if len(rec.commits) != 1 || rec.commits[0] != "2000-02-29" {
		t.Errorf("commits = %v, want [2000-02-29]", rec.commits)
	}
	if c.State().Open {
		t.Error("picker should close after a selection")
	}
	if bus.Listeners() != 0 || c.Listening() {
		t.Errorf("listeners = %d after commit, want 0", bus.Listeners())
	}
}

func TestController_ToggleWithoutSelection(t *testing.T) {
	c, bus, rec := newTestController(t, "2000-02-20")

	c.Toggle()
	c.ChangeYear(2010)
	c.ChangeMonth(time.August)
	c.Toggle()

	if c.Value() != "2000-02-20" {
		t.Errorf("Value() = %s, want 2000-02-20", c.Value())
	}
	if len(rec.commits) != 0 {
		t.Errorf("unexpected commits %v", rec.commits)
	}
	if bus.Listeners() != 0 {
		t.Errorf("listeners = %d after close, want 0", bus.Listeners())
	}
}

func TestController_OutsideInteraction(t *testing.T) {
	tests := []struct {
		name     string
		in       interaction.Interaction
		wantOpen bool
	}{
		{"Press outside closes", interaction.Interaction{TargetID: "lastName"}, false},
		{"Press on nothing closes", interaction.Interaction{}, false},
		{"Press inside the grid keeps open", interaction.Interaction{TargetID: "cell-12", InsideGrid: true}, true},
		{"Press on the trigger keeps open", interaction.Interaction{TargetID: "dateOfBirth"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, bus, rec := newTestController(t, "2000-02-20")
			c.Toggle()

			bus.Publish(tt.in)

			if c.State().Open != tt.wantOpen {
				t.Errorf("open = %v, want %v", c.State().Open, tt.wantOpen)
			}
			if len(rec.commits) != 0 || c.Value() != "2000-02-20" {
				t.Errorf("outside interaction committed %v", rec.commits)
			}
			wantListeners := 0
			if tt.wantOpen {
				wantListeners = 1
			}
			if bus.Listeners() != wantListeners {
				t.Errorf("listeners = %d, want %d", bus.Listeners(), wantListeners)
			}
		})
	}
}

func TestController_EmptyIDUsesDefault(t *testing.T) {
	bus := interaction.NewBus(zap.NewNop())
	c := NewController(Options{Observer: bus, Clock: fixedClock})
	if c.ID() != DefaultID {
		t.Fatalf("ID() = %q, want %q", c.ID(), DefaultID)
	}

	c.Toggle()
	bus.Publish(interaction.Interaction{})
	if c.State().Open || bus.Listeners() != 0 {
		t.Error("press on nothing should close a picker created without an id")
	}

	c.Toggle()
	bus.Publish(interaction.Interaction{TargetID: DefaultID})
	if !c.State().Open || bus.Listeners() != 1 {
		t.Error("press on the default trigger should keep the picker open")
	}
}

func TestController_ClosedIgnoresInteractions(t *testing.T) {
	c, bus, _ := newTestController(t, "2000-02-20")

	bus.Publish(interaction.Interaction{TargetID: "elsewhere"})

	if c.State().Open || bus.Listeners() != 0 {
		t.Error("closed picker should not listen")
	}
}

func TestController_DestroyReleasesListener(t *testing.T) {
	c, bus, rec := newTestController(t, "2000-02-20")
	c.Toggle()

	c.Destroy()

	if bus.Listeners() != 0 {
		t.Errorf("listeners = %d after Destroy, want 0", bus.Listeners())
	}

	c.Toggle()
	c.Select(calendar.GridCell{Day: 1, Month: time.March, Year: 2000})
	bus.Publish(interaction.Interaction{})

	if c.State().Open || len(rec.commits) != 0 || bus.Listeners() != 0 {
		t.Error("destroyed controller reacted to input")
	}
	c.Destroy()
}

func TestController_ListenerPerOpenInstance(t *testing.T) {
	bus := interaction.NewBus(zap.NewNop())
	first := NewController(Options{ID: "hireDate", Observer: bus, Clock: fixedClock})
	second := NewController(Options{ID: "dateOfBirth", Observer: bus, Clock: fixedClock})

	for i := 0; i < 5; i++ {
		first.Toggle()
		first.Toggle()
	}
	if bus.Listeners() != 0 {
		t.Fatalf("listeners leaked: %d", bus.Listeners())
	}

	first.Toggle()
	second.Toggle()
	if bus.Listeners() != 2 {
		t.Fatalf("listeners = %d with two open pickers, want 2", bus.Listeners())
	}

	// A press on the second trigger dismisses only the first picker.
	bus.Publish(interaction.Interaction{TargetID: "dateOfBirth"})

	if first.State().Open || !second.State().Open {
		t.Errorf("open states = (%v, %v), want (false, true)", first.State().Open, second.State().Open)
	}
	if bus.Listeners() != 1 {
		t.Errorf("listeners = %d, want 1", bus.Listeners())
	}

	second.Destroy()
	if bus.Listeners() != 0 {
		t.Errorf("listeners = %d after unmount, want 0", bus.Listeners())
	}
}

func TestController_YearOptions(t *testing.T) {
	c, _, _ := newTestController(t, "1200-06-01")

	years := c.YearOptions()
	if len(years) != 999 || years[0] != 1527 || years[998] != 2525 {
		t.Errorf("YearOptions() = %d years from %d", len(years), years[0])
	}

	// The window does not depend on the selected date.
	c.Toggle()
	if s := c.State(); s.Year != 1200 {
		t.Errorf("opened at year %d, want 1200", s.Year)
	}
	c.ChangeYear(1300)
	if s := c.State(); s.Year != 1200 {
		t.Errorf("navigated outside the window to %d", s.Year)
	}
}

func TestController_View(t *testing.T) {
	c, _, _ := newTestController(t, "2026-10-19")

	closed := c.View()
	if closed.Open || closed.Value != "2026-10-19" || closed.ID != "dateOfBirth" {
		t.Errorf("closed view = %+v", closed)
	}

	c.Toggle()
	v := c.View()

	if v.MonthLabel != "October" || v.YearLabel != "2026" {
		t.Errorf("header = %s %s, want October 2026", v.MonthLabel, v.YearLabel)
	}

	var selected, today int
	for _, row := range v.Rows {
		for col, cell := range row {
			if cell.Selected {
				selected++
			}
			if cell.Today {
				today++
			}
			if cell.Weekend != (col >= 5) {
				t.Errorf("cell %s weekend flag = %v at column %d", cell.Label, cell.Weekend, col)
			}
			if cell.Dimmed == cell.Cell.InDisplayedMonth {
				t.Errorf("cell %s dimmed flag = %v", cell.Label, cell.Dimmed)
			}
		}
	}
	if selected != 1 || today != 1 {
		t.Errorf("selected cells = %d, today cells = %d; want 1 each", selected, today)
	}
	// 1 October 2026 is a Thursday.
	if v.Rows[0][3].Label != "1" || v.Rows[0][2].Label != "30" {
		t.Errorf("first row = %s %s, want 30 1 at Wednesday/Thursday", v.Rows[0][2].Label, v.Rows[0][3].Label)
	}
}
