package screen

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/hextiles/internal/scene"
)

// Painter draws a Stage and Canvas onto an ebiten image. It never mutates
// either; the session owns them.
type Painter struct {
	atlas *Atlas
	fonts *Fonts
}

// NewPainter creates a painter.
func NewPainter(atlas *Atlas, fonts *Fonts) *Painter {
	return &Painter{atlas: atlas, fonts: fonts}
}

// isGround reports whether n belongs under the canvas: terrain sprites sit
// below the grid outline and fills, everything else above.
func isGround(n scene.Node) bool {
	return n.Kind == scene.NodeSprite && strings.HasPrefix(n.Texture, "terrain/")
}

// Paint draws ground sprites, then the canvas, then the remaining nodes in
// stage order.
func (p *Painter) Paint(dst *ebiten.Image, stage *scene.Stage, canvas *scene.Canvas) {
	nodes := stage.Nodes()
	for _, n := range nodes {
		if isGround(n) {
			p.paintNode(dst, n)
		}
	}
	for _, s := range canvas.Shapes() {
		paintShape(dst, s)
	}
	for _, n := range nodes {
		if !isGround(n) {
			p.paintNode(dst, n)
		}
	}
}

func (p *Painter) paintNode(dst *ebiten.Image, n scene.Node) {
	switch n.Kind {
	case scene.NodeSprite:
		img := p.atlas.Image(n.Texture)
		b := img.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(n.X-float64(b.Dx())/2, n.Y-float64(b.Dy())/2)
		op.Filter = ebiten.FilterLinear
		dst.DrawImage(img, op)
	case scene.NodeText:
		face := p.fonts.Face(n.Style.Bold, n.Style.Italic, n.Style.FontSize)
		drawStyledText(dst, n.Text, n.Style, face, n.X, n.Y)
	}
}

func paintShape(dst *ebiten.Image, s scene.Shape) {
	switch s.Kind {
	case scene.ShapeRect:
		x, y, w, h := float32(s.X), float32(s.Y), float32(s.W), float32(s.H)
		if s.Filled {
			vector.FillRect(dst, x, y, w, h, s.FillColor, false)
		}
		if s.LineWidth > 0 {
			vector.StrokeRect(dst, x, y, w, h, float32(s.LineWidth), s.LineColor, false)
		}
	case scene.ShapePolygon:
		if len(s.Points) < 2 {
			return
		}
		var path vector.Path
		path.MoveTo(float32(s.Points[0].X), float32(s.Points[0].Y))
		for _, pt := range s.Points[1:] {
			path.LineTo(float32(pt.X), float32(pt.Y))
		}
		path.Close()
		if s.Filled {
			fillPath(dst, &path, s.FillColor)
		}
		if s.LineWidth > 0 {
			strokePath(dst, &path, float32(s.LineWidth), s.LineColor)
		}
	}
}

func strokePath(dst *ebiten.Image, path *vector.Path, width float32, c color.Color) {
	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(c)
	vector.StrokePath(dst, path, &vector.StrokeOptions{Width: width, LineJoin: vector.LineJoinMiter, MiterLimit: 4}, op)
}
