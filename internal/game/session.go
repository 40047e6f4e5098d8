package game

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/Garsondee/hextiles/internal/events"
	"github.com/Garsondee/hextiles/internal/hexgrid"
)

// Tooltip displays a short hint about the cell under the cursor.
type Tooltip interface {
	Show(msg string)
}

// TooltipFunc adapts a function to Tooltip.
type TooltipFunc func(msg string)

// Show calls f(msg).
func (f TooltipFunc) Show(msg string) { f(msg) }

// Session owns the State and is the single orchestrator of input: every
// handler mutates the state, then renders exactly once.
type Session struct {
	State    *State
	Renderer *Renderer

	layout  Layout
	tooltip Tooltip
	journal *Journal
	logger  *log.Logger
}

// NewSession wires a session. A nil logger discards output; a nil tooltip
// drops hints.
func NewSession(st *State, layout Layout, r *Renderer, tip Tooltip, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if tip == nil {
		tip = TooltipFunc(func(string) {})
	}
	return &Session{
		State:    st,
		Renderer: r,
		layout:   layout,
		tooltip:  tip,
		journal:  NewJournal(),
		logger:   logger,
	}
}

// Journal returns the session's change journal.
func (s *Session) Journal() *Journal { return s.journal }

// Start draws the first frame.
func (s *Session) Start() error {
	s.logger.Info("drawing grid", "rows", s.State.Rows, "columns", s.State.Columns,
		"tiles", len(s.State.Tiles), "info_tiles", len(s.State.InfoTiles))
	return s.render()
}

// HandleSelected toggles the selection of the cell under the pointer.
// Points that fall outside the board are ignored.
func (s *Session) HandleSelected(p hexgrid.Point) error {
	s.journal.Begin()
	cell := s.layout.PixelToCell(p)
	c := Coord{X: cell.Col, Y: cell.Row}
	if !s.State.InBounds(c) {
		s.logger.Debug("click outside board ignored", "x", p.X, "y", p.Y, "cell", c)
		s.journal.Add(CatSelect, "ignored", c.String())
		return s.render()
	}

	if s.State.Selected.Toggle(c) {
		s.journal.Add(CatSelect, "add", c.String())
		s.logger.Debug("selected", "cell", c)
	} else {
		s.journal.Add(CatSelect, "remove", c.String())
		s.logger.Debug("deselected", "cell", c)
	}
	return s.render()
}

// HandleKeyUp applies a released key.
func (s *Session) HandleKeyUp(k events.Key) error {
	s.journal.Begin()
	s.logger.Debug("keyup", "key", k.String())

	ch := ApplyKey(s.State, k)
	if ch.CursorMoved() {
		s.journal.Add(CatCursor, "move", fmt.Sprintf("%s -> %s", ch.CursorFrom, ch.CursorTo))
	}
	if ch.ModeChanged() {
		s.journal.Add(CatMode, ch.ModeTo.String(), fmt.Sprintf("%s -> %s", ch.ModeFrom, ch.ModeTo))
		s.logger.Info("mode changed", "from", ch.ModeFrom, "to", ch.ModeTo, "cursor", ch.CursorTo)
	}

	if ch.Tooltip != "" {
		s.tooltip.Show(ch.Tooltip)
		s.journal.Add(CatTooltip, "show", ch.Tooltip)
	} else {
		s.logger.Warn("no tile under cursor", "cursor", ch.CursorTo)
	}

	if ch.Resolved {
		s.journal.Add(CatSelect, "resolve", ch.CursorTo.String())
		s.journal.Add(CatScore, "increment", fmt.Sprintf("%d", s.State.Score))
		s.logger.Info("tile resolved", "cell", ch.CursorTo, "score", s.State.Score)
	}
	return s.render()
}

func (s *Session) render() error {
	if err := s.Renderer.Render(s.State); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}
