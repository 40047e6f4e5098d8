// Package hexgrid converts between hex grid coordinates and pixel points.
//
// Hexes are pointy-top and addressed with odd-row offset coordinates
// (col, row): odd rows are shoved right by half a hex. Internally the maths
// is done in axial (q, r) / cube space.
package hexgrid

import "math"

var sqrt3 = math.Sqrt(3)

// Point is a pixel position.
type Point struct {
	X float64
	Y float64
}

// Add returns p translated by o.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Cell is one hex of a grid, addressed by offset coordinates.
type Cell struct {
	Col    int
	Row    int
	size   float64
	offset Point
}

// Axial returns the axial (q, r) coordinates of the cell.
func (c Cell) Axial() (q, r int) {
	return offsetToAxial(c.Col, c.Row)
}

// Origin returns the pixel position of the cell centre. The grid's bounding
// box starts at the grid Offset.
func (c Cell) Origin() Point {
	q, r := c.Axial()
	return Point{
		X: c.offset.X + c.size*sqrt3*(float64(q)+float64(r)/2) + c.size*sqrt3/2,
		Y: c.offset.Y + c.size*1.5*float64(r) + c.size,
	}
}

// Corners returns the six corner offsets relative to Origin, clockwise
// starting from the top vertex.
func (c Cell) Corners() [6]Point {
	var out [6]Point
	for i := 0; i < 6; i++ {
		a := math.Pi/180*(60*float64(i)) - math.Pi/2
		out[i] = Point{X: c.size * math.Cos(a), Y: c.size * math.Sin(a)}
	}
	return out
}

// Size returns the hex radius in pixels.
func (c Cell) Size() float64 { return c.size }

// Width and Height return the bounding box of one hex.
func (c Cell) Width() float64  { return c.size * sqrt3 }
func (c Cell) Height() float64 { return c.size * 2 }

// Grid is a rectangle of Columns x Rows hexes.
type Grid struct {
	Columns int
	Rows    int
	Size    float64
	// Offset is the screen position of the grid's top-left corner.
	Offset Point
}

// NewRectangle builds a grid width hexes across and height hexes down.
func NewRectangle(width, height int, size float64) *Grid {
	return &Grid{Columns: width, Rows: height, Size: size}
}

// Contains reports whether (col, row) is inside the rectangle.
func (g *Grid) Contains(col, row int) bool {
	return col >= 0 && col < g.Columns && row >= 0 && row < g.Rows
}

// CellAt returns the cell at (col, row), or false if it is outside the grid.
func (g *Grid) CellAt(col, row int) (Cell, bool) {
	if !g.Contains(col, row) {
		return Cell{}, false
	}
	return g.cell(col, row), true
}

// Unbounded returns the cell at (col, row) extrapolating past the
// rectangle.
func (g *Grid) Unbounded(col, row int) Cell {
	return g.cell(col, row)
}

// PixelToCell returns the hex under the pixel. The result is not bounded by
// the rectangle; callers check Contains when that matters.
func (g *Grid) PixelToCell(p Point) Cell {
	// Undo the offset and half-hex shift applied by Origin.
	x := p.X - g.Offset.X - g.Size*sqrt3/2
	y := p.Y - g.Offset.Y - g.Size

	fq := (sqrt3/3*x - y/3) / g.Size
	fr := (2.0 / 3 * y) / g.Size
	q, r := cubeRound(fq, fr)
	col, row := axialToOffset(q, r)
	return g.cell(col, row)
}

// Cells returns every cell row by row.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, 0, g.Columns*g.Rows)
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Columns; col++ {
			out = append(out, g.cell(col, row))
		}
	}
	return out
}

func (g *Grid) cell(col, row int) Cell {
	return Cell{Col: col, Row: row, size: g.Size, offset: g.Offset}
}

// PixelSize returns the bounding box of the whole grid in pixels.
func (g *Grid) PixelSize() (w, h float64) {
	if g.Columns == 0 || g.Rows == 0 {
		return 0, 0
	}
	w = g.Size * sqrt3 * float64(g.Columns)
	if g.Rows > 1 {
		w += g.Size * sqrt3 / 2
	}
	h = g.Size*1.5*float64(g.Rows-1) + g.Size*2
	return w, h
}

func offsetToAxial(col, row int) (q, r int) {
	return col - (row-(row&1))/2, row
}

func axialToOffset(q, r int) (col, row int) {
	return q + (r-(r&1))/2, r
}

func cubeRound(fq, fr float64) (q, r int) {
	fs := -fq - fr
	rq, rr, rs := math.Round(fq), math.Round(fr), math.Round(fs)
	dq := math.Abs(rq - fq)
	dr := math.Abs(rr - fr)
	ds := math.Abs(rs - fs)
	switch {
	case dq > dr && dq > ds:
		rq = -rr - rs
	case dr > ds:
		rr = -rq - rs
	}
	return int(rq), int(rr)
}
