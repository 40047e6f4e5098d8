// Package game holds the hex tile game core: board state, the input
// transitions that mutate it, and the render pass that rebuilds the scene.
// It has no ebiten dependency; internal/screen hosts it in a window.
package game

import (
	"fmt"
	"sort"
)

// Coord is a grid coordinate: X is the column, Y the row.
type Coord struct {
	X int
	Y int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Terrain is the closed set of tile kinds.
type Terrain uint8

const (
	TerrainWater Terrain = iota
	TerrainDesert
	TerrainWood
	TerrainClay

	terrainCount
)

var terrainNames = [terrainCount]string{
	TerrainWater:  "Water",
	TerrainDesert: "Desert",
	TerrainWood:   "Wood",
	TerrainClay:   "Clay",
}

func (t Terrain) String() string {
	if t < terrainCount {
		return terrainNames[t]
	}
	return fmt.Sprintf("Terrain(%d)", uint8(t))
}

// Valid reports whether t is one of the four kinds.
func (t Terrain) Valid() bool { return t < terrainCount }

// TerrainTile is one cell's content. Kind never changes after creation.
type TerrainTile struct {
	Coord Coord
	Kind  Terrain
}

// InfoTile is a marker overlaid on the board that opens the info window.
type InfoTile struct {
	Coord    Coord
	Text     string
	Portrait int
}

// Mode selects which render branch runs.
type Mode uint8

const (
	ModeBoard Mode = iota
	ModeInfoWindow
)

func (m Mode) String() string {
	if m == ModeInfoWindow {
		return "info-window"
	}
	return "board"
}

// Selection is a set of coordinates.
type Selection struct {
	set map[Coord]struct{}
}

// NewSelection returns an empty selection.
func NewSelection() *Selection {
	return &Selection{set: make(map[Coord]struct{})}
}

// Has reports membership.
func (s *Selection) Has(c Coord) bool {
	_, ok := s.set[c]
	return ok
}

// Toggle adds c if absent, removes it otherwise. Returns true if c was added.
func (s *Selection) Toggle(c Coord) bool {
	if s.Has(c) {
		delete(s.set, c)
		return false
	}
	s.set[c] = struct{}{}
	return true
}

// Add inserts c. Returns false if already present.
func (s *Selection) Add(c Coord) bool {
	if s.Has(c) {
		return false
	}
	s.set[c] = struct{}{}
	return true
}

// Remove deletes c. Returns false if it was absent.
func (s *Selection) Remove(c Coord) bool {
	if !s.Has(c) {
		return false
	}
	delete(s.set, c)
	return true
}

// Len returns the member count.
func (s *Selection) Len() int { return len(s.set) }

// Coords returns the members sorted by row then column.
func (s *Selection) Coords() []Coord {
	out := make([]Coord, 0, len(s.set))
	for c := range s.set {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// State is the authoritative game model. Input handlers are its only
// writers; the render pass only reads it.
type State struct {
	Rows    int
	Columns int

	Tiles     []TerrainTile
	InfoTiles []InfoTile

	Cursor   Coord
	Selected *Selection
	Score    int
	Mode     Mode

	tileIndex map[Coord]int
}

// NewState builds a board in Board mode with the cursor at (0,0).
func NewState(rows, columns int, tiles []TerrainTile, info []InfoTile) *State {
	s := &State{
		Rows:      rows,
		Columns:   columns,
		Tiles:     tiles,
		InfoTiles: info,
		Selected:  NewSelection(),
		tileIndex: make(map[Coord]int, len(tiles)),
	}
	for i, t := range tiles {
		s.tileIndex[t.Coord] = i
	}
	return s
}

// InBounds reports whether c is on the board.
func (s *State) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < s.Columns && c.Y >= 0 && c.Y < s.Rows
}

// TileAt returns the terrain tile at c.
func (s *State) TileAt(c Coord) (TerrainTile, bool) {
	i, ok := s.tileIndex[c]
	if !ok {
		return TerrainTile{}, false
	}
	return s.Tiles[i], true
}

// InfoAt returns the first info tile at c.
func (s *State) InfoAt(c Coord) (InfoTile, bool) {
	for _, it := range s.InfoTiles {
		if it.Coord == c {
			return it, true
		}
	}
	return InfoTile{}, false
}
