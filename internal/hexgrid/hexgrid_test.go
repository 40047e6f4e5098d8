package hexgrid

import (
	"math"
	"testing"
)

func TestCellAt_Bounds(t *testing.T) {
	g := NewRectangle(20, 20, 30)
	if _, ok := g.CellAt(0, 0); !ok {
		t.Fatal("expected (0,0) inside grid")
	}
	if _, ok := g.CellAt(19, 19); !ok {
		t.Fatal("expected (19,19) inside grid")
	}
	for _, c := range [][2]int{{-1, 0}, {0, -1}, {20, 0}, {0, 20}} {
		if _, ok := g.CellAt(c[0], c[1]); ok {
			t.Fatalf("expected (%d,%d) outside grid", c[0], c[1])
		}
	}
}

func TestCells_RowMajorCount(t *testing.T) {
	g := NewRectangle(7, 3, 10)
	cells := g.Cells()
	if len(cells) != 21 {
		t.Fatalf("expected 21 cells, got %d", len(cells))
	}
	if cells[0].Col != 0 || cells[0].Row != 0 {
		t.Fatalf("first cell = (%d,%d), want (0,0)", cells[0].Col, cells[0].Row)
	}
	if last := cells[len(cells)-1]; last.Col != 6 || last.Row != 2 {
		t.Fatalf("last cell = (%d,%d), want (6,2)", last.Col, last.Row)
	}
}

func TestPixelToCell_RoundTripsOrigins(t *testing.T) {
	g := NewRectangle(20, 20, 30)
	for _, c := range g.Cells() {
		got := g.PixelToCell(c.Origin())
		if got.Col != c.Col || got.Row != c.Row {
			t.Fatalf("origin of (%d,%d) maps back to (%d,%d)", c.Col, c.Row, got.Col, got.Row)
		}
	}
}

func TestPixelToCell_NearCornerStaysInside(t *testing.T) {
	g := NewRectangle(5, 5, 20)
	c, _ := g.CellAt(2, 3)
	o := c.Origin()
	for _, corner := range c.Corners() {
		// 80% of the way to each corner is still inside the hex.
		p := Point{X: o.X + corner.X*0.8, Y: o.Y + corner.Y*0.8}
		got := g.PixelToCell(p)
		if got.Col != 2 || got.Row != 3 {
			t.Fatalf("point %+v mapped to (%d,%d), want (2,3)", p, got.Col, got.Row)
		}
	}
}

func TestPixelToCell_OutsideRectangle(t *testing.T) {
	g := NewRectangle(3, 3, 20)
	c := g.PixelToCell(Point{X: -200, Y: -200})
	if g.Contains(c.Col, c.Row) {
		t.Fatalf("far off-grid point mapped inside grid: (%d,%d)", c.Col, c.Row)
	}
}

func TestOrigin_OddRowShift(t *testing.T) {
	g := NewRectangle(2, 2, 10)
	even, _ := g.CellAt(0, 0)
	odd, _ := g.CellAt(0, 1)
	shift := odd.Origin().X - even.Origin().X
	if math.Abs(shift-even.Width()/2) > 1e-9 {
		t.Fatalf("odd row shift = %v, want %v", shift, even.Width()/2)
	}
	if even.Origin().X-even.Width()/2 != 0 || even.Origin().Y-even.Size() != 0 {
		t.Fatalf("cell (0,0) bounding box should start at the grid origin, got %+v", even.Origin())
	}
}

func TestCorners_Radius(t *testing.T) {
	g := NewRectangle(1, 1, 30)
	c, _ := g.CellAt(0, 0)
	for i, p := range c.Corners() {
		d := math.Hypot(p.X, p.Y)
		if math.Abs(d-30) > 1e-9 {
			t.Fatalf("corner %d at distance %v, want 30", i, d)
		}
	}
	if top := c.Corners()[0]; math.Abs(top.X) > 1e-9 || top.Y >= 0 {
		t.Fatalf("first corner should be the top vertex, got %+v", top)
	}
}

func TestOffsetAxial_Inverse(t *testing.T) {
	for row := -5; row <= 5; row++ {
		for col := -5; col <= 5; col++ {
			q, r := offsetToAxial(col, row)
			c2, r2 := axialToOffset(q, r)
			if c2 != col || r2 != row {
				t.Fatalf("(%d,%d) -> (%d,%d) -> (%d,%d)", col, row, q, r, c2, r2)
			}
		}
	}
}

func TestPixelSize(t *testing.T) {
	g := NewRectangle(4, 3, 10)
	w, h := g.PixelSize()
	wantW := 10*math.Sqrt(3)*4 + 10*math.Sqrt(3)/2
	wantH := 10*1.5*2 + 20
	if math.Abs(w-wantW) > 1e-9 || math.Abs(h-wantH) > 1e-9 {
		t.Fatalf("PixelSize = %vx%v, want %vx%v", w, h, wantW, wantH)
	}
}

func TestOffset_ShiftsOriginsAndPicking(t *testing.T) {
	g := NewRectangle(6, 6, 15)
	g.Offset = Point{X: 24, Y: 24}
	c, _ := g.CellAt(0, 0)
	if o := c.Origin(); math.Abs(o.X-(24+15*math.Sqrt(3)/2)) > 1e-9 || math.Abs(o.Y-39) > 1e-9 {
		t.Fatalf("origin with offset = %+v", o)
	}
	for _, cell := range g.Cells() {
		got := g.PixelToCell(cell.Origin())
		if got.Col != cell.Col || got.Row != cell.Row {
			t.Fatalf("(%d,%d) round-tripped to (%d,%d) with offset", cell.Col, cell.Row, got.Col, got.Row)
		}
	}
	if got := g.PixelToCell(Point{X: 1, Y: 1}); g.Contains(got.Col, got.Row) {
		t.Fatalf("point in the border mapped inside the grid: (%d,%d)", got.Col, got.Row)
	}
}

func TestUnbounded_RoundTripsOffGrid(t *testing.T) {
	g := NewRectangle(3, 3, 12)
	for _, c := range [][2]int{{-1, -1}, {5, 2}, {-3, 4}, {2, -5}} {
		cell := g.Unbounded(c[0], c[1])
		got := g.PixelToCell(cell.Origin())
		if got.Col != c[0] || got.Row != c[1] {
			t.Fatalf("(%d,%d) round-tripped to (%d,%d)", c[0], c[1], got.Col, got.Row)
		}
		if g.Contains(got.Col, got.Row) {
			t.Fatalf("(%d,%d) should be outside the grid", c[0], c[1])
		}
	}
}
