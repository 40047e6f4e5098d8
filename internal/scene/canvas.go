package scene

import (
	"image/color"

	"github.com/Garsondee/hextiles/internal/hexgrid"
)

// ShapeKind distinguishes canvas shapes.
type ShapeKind uint8

const (
	ShapePolygon ShapeKind = iota
	ShapeRect
)

// Shape is one recorded vector shape.
type Shape struct {
	Kind   ShapeKind
	Points []hexgrid.Point // ShapePolygon: closed outline
	X, Y   float64         // ShapeRect
	W, H   float64

	LineWidth float64 // 0 = no outline
	LineColor color.RGBA
	Filled    bool
	FillColor color.RGBA
}

// Canvas is a persistent vector drawing surface. Shapes accumulate until
// Clear; line style and fill state carry over between shapes like a pen.
type Canvas struct {
	shapes    []Shape
	lineWidth float64
	lineColor color.RGBA
	filling   bool
	fillColor color.RGBA
}

// NewCanvas returns an empty canvas.
func NewCanvas() *Canvas {
	return &Canvas{}
}

// Clear drops every shape and resets the pen.
func (c *Canvas) Clear() {
	c.shapes = c.shapes[:0]
	c.lineWidth = 0
	c.lineColor = color.RGBA{}
	c.filling = false
}

// LineStyle sets the outline for subsequent shapes.
func (c *Canvas) LineStyle(width float64, col color.RGBA) {
	c.lineWidth = width
	c.lineColor = col
}

// BeginFill fills subsequent shapes with col until EndFill.
func (c *Canvas) BeginFill(col color.RGBA) {
	c.filling = true
	c.fillColor = col
}

// EndFill stops filling.
func (c *Canvas) EndFill() {
	c.filling = false
}

// Polygon records a closed polygon through pts.
func (c *Canvas) Polygon(pts []hexgrid.Point) {
	cp := make([]hexgrid.Point, len(pts))
	copy(cp, pts)
	c.shapes = append(c.shapes, c.stamp(Shape{Kind: ShapePolygon, Points: cp}))
}

// Rect records an axis-aligned rectangle.
func (c *Canvas) Rect(x, y, w, h float64) {
	c.shapes = append(c.shapes, c.stamp(Shape{Kind: ShapeRect, X: x, Y: y, W: w, H: h}))
}

func (c *Canvas) stamp(s Shape) Shape {
	s.LineWidth = c.lineWidth
	s.LineColor = c.lineColor
	s.Filled = c.filling
	s.FillColor = c.fillColor
	return s
}

// Shapes returns the recorded shapes in draw order.
func (c *Canvas) Shapes() []Shape {
	return c.shapes
}
