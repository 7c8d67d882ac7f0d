package picker

import (
	"time"

	"github.com/username/datepicker/internal/calendar"
	"github.com/username/datepicker/internal/interaction"
	"go.uber.org/zap"
)

// DefaultID names the trigger control when Options.ID is empty
const DefaultID = "date"

// Options configures a Controller
type Options struct {
	// ID identifies the trigger control; presses on it never count as
	// outside. Empty means DefaultID.
	ID string
	// InitialValue is an ISO date; empty or malformed means today
	InitialValue string
	// OnCommit receives every committed value as YYYY-MM-DD
	OnCommit func(value string)
	// Observer watches the host's pointer interactions, nil disables
	// outside dismissal
	Observer interaction.Observer
	// Clock supplies the current time, time.Now when nil
	Clock func() time.Time
	// Spillover selects the year committed for spill-over cells
	Spillover SpilloverPolicy
	// YearEdge sizes the year window, DefaultYearEdge when zero
	YearEdge int
	Logger   *zap.Logger
}

// Controller drives one date picker instance. It is not safe for
// concurrent use; the host calls it from its event loop.
type Controller struct {
	id         string
	onCommit   func(string)
	observer   interaction.Observer
	clock      func() time.Time
	rules      Rules
	state      State
	deregister func()
	destroyed  bool
	logger     *zap.Logger
}

// NewController creates a closed picker showing the initial value
func NewController(opts Options) *Controller {
	if opts.ID == "" {
		opts.ID = DefaultID
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	now := opts.Clock()
	selected, parsed := calendar.ParseOrToday(opts.InitialValue, now)
	if !parsed && opts.InitialValue != "" {
		opts.Logger.Warn("Unparseable initial value, using today",
			zap.String("id", opts.ID),
			zap.String("value", opts.InitialValue))
	}

	return &Controller{
		id:       opts.ID,
		onCommit: opts.OnCommit,
		observer: opts.Observer,
		clock:    opts.Clock,
		rules: Rules{
			Years:     NewYearWindow(now, opts.YearEdge),
			Spillover: opts.Spillover,
		},
		state:  NewState(selected),
		logger: opts.Logger.With(zap.String("picker_id", opts.ID)),
	}
}

// ID returns the trigger identifier
func (c *Controller) ID() string {
	return c.id
}

// Toggle opens or closes the grid
func (c *Controller) Toggle() {
	c.Dispatch(ToggleRequested{})
}

// ChangeMonth navigates the open grid to month
func (c *Controller) ChangeMonth(month time.Month) {
	c.Dispatch(MonthChanged{Month: month})
}

// ChangeYear navigates the open grid to year
func (c *Controller) ChangeYear(year int) {
	c.Dispatch(YearChanged{Year: year})
}

// Select commits the date of cell
func (c *Controller) Select(cell calendar.GridCell) {
	c.Dispatch(CellSelected{Cell: cell})
}

// Dispatch applies ev and carries out its effects: the interaction
// listener is held exactly while the grid is open, and commits are
// forwarded to OnCommit.
func (c *Controller) Dispatch(ev Event) {
	if c.destroyed {
		return
	}

	prev := c.state
	next, effect := Transition(prev, ev, c.rules)
	c.state = next

	switch {
	case !prev.Open && next.Open:
		c.listen()
		c.logger.Debug("Picker opened",
			zap.Int("year", next.Year),
			zap.String("month", next.Month.String()))
	case prev.Open && !next.Open:
		c.unlisten()
		c.logger.Debug("Picker closed", zap.String("value", next.Value()))
	case next.Open && (prev.Month != next.Month || prev.Year != next.Year):
		c.logger.Debug("Picker navigated",
			zap.Int("year", next.Year),
			zap.String("month", next.Month.String()))
	}

	if effect.Commit != "" {
		c.logger.Info("Date committed", zap.String("value", effect.Commit))
		if c.onCommit != nil {
			c.onCommit(effect.Commit)
		}
	}
}

// Destroy releases the interaction listener. The controller ignores every
// later call.
func (c *Controller) Destroy() {
	if c.destroyed {
		return
	}
	c.unlisten()
	c.state.Open = false
	c.destroyed = true
}

// State returns a copy of the current state
func (c *Controller) State() State {
	return c.state
}

// Value returns the committed value as YYYY-MM-DD
func (c *Controller) Value() string {
	return c.state.Value()
}

// View returns the rendering projection of the current state
func (c *Controller) View() View {
	return Project(c.state, c.id, c.clock())
}

// YearOptions lists the years the host may offer for navigation
func (c *Controller) YearOptions() []int {
	return c.rules.Years.Options()
}

// YearWindow returns the selectable year range
func (c *Controller) YearWindow() YearWindow {
	return c.rules.Years
}

// Listening reports whether an interaction listener is registered
func (c *Controller) Listening() bool {
	return c.deregister != nil
}

func (c *Controller) listen() {
	if c.observer == nil || c.deregister != nil {
		return
	}
	c.deregister = c.observer.Register(c.handleInteraction)
}

func (c *Controller) unlisten() {
	if c.deregister == nil {
		return
	}
	c.deregister()
	c.deregister = nil
}

func (c *Controller) handleInteraction(in interaction.Interaction) {
	if in.InsideGrid || in.TargetID == c.id {
		return
	}
	c.logger.Debug("Outside interaction",
		zap.String("target", in.TargetID),
		zap.Int("x", in.X),
		zap.Int("y", in.Y))
	c.Dispatch(OutsideInteraction{})
}
