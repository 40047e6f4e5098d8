package game

import (
	"math/rand"

	"github.com/Garsondee/hextiles/internal/events"
	"github.com/Garsondee/hextiles/internal/hexgrid"
)

// TestSession is a windowless session harness used by tests and the
// headless report. It records tooltips instead of drawing them.
type TestSession struct {
	*Session
	Grid     *hexgrid.Grid
	Tooltips []string

	rows, columns int
	hexSize       float64
	viewW, viewH  float64
	rng           *rand.Rand
	info          []InfoTile
	terrain       map[Coord]Terrain
	cursor        Coord
	selected      []Coord
}

// sessionOptionKind controls the pass in which an option is applied.
type sessionOptionKind int

const (
	sessOptInfra sessionOptionKind = iota // grid size, seed, applied first
	sessOptBoard                          // terrain overrides, info tiles, applied after tiles exist
	sessOptState                          // cursor, selection, applied last
)

// SessionOption is a builder function applied to a TestSession during construction.
type SessionOption struct {
	kind sessionOptionKind
	fn   func(*TestSession)
}

// WithGridSize sets the board to columns x rows.
func WithGridSize(columns, rows int) SessionOption {
	return SessionOption{sessOptInfra, func(ts *TestSession) {
		ts.columns = columns
		ts.rows = rows
	}}
}

// WithHexSize sets the hex radius in pixels.
func WithHexSize(size float64) SessionOption {
	return SessionOption{sessOptInfra, func(ts *TestSession) {
		ts.hexSize = size
	}}
}

// WithSeed sets the RNG seed for deterministic terrain.
func WithSeed(seed int64) SessionOption {
	return SessionOption{sessOptInfra, func(ts *TestSession) {
		ts.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- test harness
	}}
}

// WithInfoTile places an info tile.
func WithInfoTile(x, y int, text string) SessionOption {
	return SessionOption{sessOptBoard, func(ts *TestSession) {
		ts.info = append(ts.info, InfoTile{Coord: Coord{X: x, Y: y}, Text: text, Portrait: len(ts.info)})
	}}
}

// WithTerrain forces the kind of one tile. Kinds outside the closed set are
// allowed so tests can exercise ErrUnknownTerrain.
func WithTerrain(x, y int, kind Terrain) SessionOption {
	return SessionOption{sessOptBoard, func(ts *TestSession) {
		ts.terrain[Coord{X: x, Y: y}] = kind
	}}
}

// WithCursor places the cursor.
func WithCursor(x, y int) SessionOption {
	return SessionOption{sessOptState, func(ts *TestSession) {
		ts.cursor = Coord{X: x, Y: y}
	}}
}

// WithSelected pre-selects coordinates.
func WithSelected(coords ...Coord) SessionOption {
	return SessionOption{sessOptState, func(ts *TestSession) {
		ts.selected = append(ts.selected, coords...)
	}}
}

// NewTestSession constructs a TestSession from the given options in ordered passes:
//  1. Infrastructure (grid size, hex size, seed)
//  2. Tiles, then board options (terrain overrides, info tiles)
//  3. State options (cursor, selection)
//
// The first frame is rendered and its error dropped; tests that care about
// render failures call Renderer.Render themselves.
func NewTestSession(opts ...SessionOption) *TestSession {
	ts := &TestSession{
		rows:    20,
		columns: 20,
		hexSize: 20,
		viewW:   1200,
		viewH:   768,
		rng:     rand.New(rand.NewSource(1)), // #nosec G404 -- test harness default
		terrain: map[Coord]Terrain{},
	}
	for _, o := range opts {
		if o.kind == sessOptInfra {
			o.fn(ts)
		}
	}
	tiles := CreateGameTiles(ts.rows, ts.columns, ts.rng)
	for _, o := range opts {
		if o.kind == sessOptBoard {
			o.fn(ts)
		}
	}
	for i := range tiles {
		if k, ok := ts.terrain[tiles[i].Coord]; ok {
			tiles[i].Kind = k
		}
	}
	for _, o := range opts {
		if o.kind == sessOptState {
			o.fn(ts)
		}
	}

	st := NewState(ts.rows, ts.columns, tiles, ts.info)
	st.Cursor = ts.cursor
	for _, c := range ts.selected {
		st.Selected.Add(c)
	}

	ts.Grid = hexgrid.NewRectangle(ts.columns, ts.rows, ts.hexSize)
	r := NewRenderer(ts.Grid, ts.viewW, ts.viewH)
	ts.Session = NewSession(st, ts.Grid, r, TooltipFunc(func(msg string) {
		ts.Tooltips = append(ts.Tooltips, msg)
	}), nil)
	// Render directly so the journal starts empty.
	_ = r.Render(st)
	return ts
}

// Press releases each key in order.
func (ts *TestSession) Press(keys ...events.Key) error {
	for _, k := range keys {
		if err := ts.HandleKeyUp(k); err != nil {
			return err
		}
	}
	return nil
}

// Click clicks the centre of the cell at c. c may be off the board.
func (ts *TestSession) Click(c Coord) error {
	return ts.HandleSelected(ts.PointFor(c))
}

// PointFor returns the screen centre of the cell at c, extrapolating the
// grid for coordinates off the board.
func (ts *TestSession) PointFor(c Coord) hexgrid.Point {
	return ts.Grid.Unbounded(c.X, c.Y).Origin()
}

// LastTooltip returns the most recent tooltip, or "".
func (ts *TestSession) LastTooltip() string {
	if len(ts.Tooltips) == 0 {
		return ""
	}
	return ts.Tooltips[len(ts.Tooltips)-1]
}
