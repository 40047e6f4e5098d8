package game

import (
	"fmt"

	"github.com/Garsondee/hextiles/internal/events"
)

const tooltipSpecial = "This is a special tile, try hit ENTER"

// Change describes what one key press did to the state.
type Change struct {
	Key        events.Key
	CursorFrom Coord
	CursorTo   Coord
	ModeFrom   Mode
	ModeTo     Mode
	// Tooltip is empty when there is nothing under the cursor to describe.
	Tooltip string
	// Resolved is set when a selected coordinate under the cursor was
	// cleared for a point.
	Resolved bool
}

// CursorMoved reports whether the cursor changed.
func (c Change) CursorMoved() bool { return c.CursorFrom != c.CursorTo }

// ModeChanged reports whether the UI mode changed.
func (c Change) ModeChanged() bool { return c.ModeFrom != c.ModeTo }

// MoveCursor applies an arrow key to c, clamping to the board. Other keys
// leave c unchanged.
func MoveCursor(c Coord, k events.Key, rows, columns int) Coord {
	switch k {
	case events.KeyArrowUp:
		c.Y = clamp(c.Y-1, 0, rows-1)
	case events.KeyArrowDown:
		c.Y = clamp(c.Y+1, 0, rows-1)
	case events.KeyArrowLeft:
		c.X = clamp(c.X-1, 0, columns-1)
	case events.KeyArrowRight:
		c.X = clamp(c.X+1, 0, columns-1)
	}
	return c
}

// NextMode is the UI mode machine: Enter on an info tile opens the info
// window, Escape returns to the board, nothing else changes the mode.
func NextMode(m Mode, k events.Key, onInfoTile bool) Mode {
	switch k {
	case events.KeyEnter:
		if onInfoTile {
			return ModeInfoWindow
		}
	case events.KeyEscape:
		return ModeBoard
	}
	return m
}

// TooltipAt returns the hint for the cursor cell: a prompt on info tiles,
// the terrain kind otherwise, or "" when no tile backs the coordinate.
func TooltipAt(s *State, c Coord) string {
	if _, ok := s.InfoAt(c); ok {
		return tooltipSpecial
	}
	if t, ok := s.TileAt(c); ok {
		return fmt.Sprintf("Terrain tile of type %s", t.Kind)
	}
	return ""
}

// Resolve clears a selected cursor coordinate and scores it.
func Resolve(s *State) bool {
	if !s.Selected.Remove(s.Cursor) {
		return false
	}
	s.Score++
	return true
}

// ApplyKey runs the whole key-up transition: cursor, mode, tooltip text,
// then resolution of a selected cursor cell.
func ApplyKey(s *State, k events.Key) Change {
	ch := Change{Key: k, CursorFrom: s.Cursor, ModeFrom: s.Mode}

	s.Cursor = MoveCursor(s.Cursor, k, s.Rows, s.Columns)
	_, onInfo := s.InfoAt(s.Cursor)
	s.Mode = NextMode(s.Mode, k, onInfo)

	ch.CursorTo = s.Cursor
	ch.ModeTo = s.Mode
	ch.Tooltip = TooltipAt(s, s.Cursor)
	ch.Resolved = Resolve(s)
	return ch
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
