package game

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/Garsondee/hextiles/internal/hexgrid"
	"github.com/Garsondee/hextiles/internal/scene"
)

// ErrUnknownTerrain means a tile carries a kind outside the closed set.
var ErrUnknownTerrain = errors.New("unknown terrain type")

// Texture keys the host atlas must provide.
const (
	TextureWater  = "terrain/water"
	TextureDesert = "terrain/desert"
	TextureWood   = "terrain/wood"
	TextureClay   = "terrain/clay"
)

// PortraitTexture is the atlas key for an info tile portrait.
func PortraitTexture(n int) string {
	return fmt.Sprintf("portrait/%d", n)
}

// TextureFor maps a terrain kind to its texture.
func TextureFor(kind Terrain) (string, error) {
	switch kind {
	case TerrainWater:
		return TextureWater, nil
	case TerrainDesert:
		return TextureDesert, nil
	case TerrainWood:
		return TextureWood, nil
	case TerrainClay:
		return TextureClay, nil
	}
	return "", fmt.Errorf("%w: %d", ErrUnknownTerrain, uint8(kind))
}

var (
	colorGridLine = color.RGBA{R: 0x99, G: 0x99, B: 0x99, A: 255} // light grey
	colorSelected = color.RGBA{R: 40, G: 200, B: 90, A: 200}     // green
	colorCursor   = color.RGBA{R: 150, G: 60, B: 190, A: 200}    // purple
	colorOverlay  = color.RGBA{A: 255}                           // black
)

// Fixed screen positions.
const (
	infoTextX   = 50
	infoTextY   = 250
	scoreX      = 50
	scoreMargin = 60 // score baseline distance from the bottom edge
)

// InfoTextStyle is the info window text: bold italic, white-to-green
// gradient, purple stroke, soft drop shadow, wrapped at 440px.
func InfoTextStyle() scene.TextStyle {
	return scene.TextStyle{
		FontFamily: "Arial",
		FontSize:   36,
		Bold:       true,
		Italic:     true,
		Fill: []color.RGBA{
			{R: 0xff, G: 0xff, B: 0xff, A: 255}, // white
			{R: 0x00, G: 0xff, B: 0x99, A: 255}, // mint
		},
		Stroke:          color.RGBA{R: 0x4a, G: 0x18, B: 0x50, A: 255},
		StrokeThickness: 5,
		DropShadow: &scene.DropShadow{
			Color:    color.RGBA{A: 255},
			Blur:     4,
			Angle:    math.Pi / 6,
			Distance: 6,
		},
		WordWrapWidth: 440,
	}
}

// Layout is the hex geometry the renderer and pointer handler need.
// *hexgrid.Grid satisfies it.
type Layout interface {
	CellAt(col, row int) (hexgrid.Cell, bool)
	PixelToCell(p hexgrid.Point) hexgrid.Cell
	Cells() []hexgrid.Cell
}

// Renderer rebuilds the scene from a State. Each Render is a destructive
// rebuild: every node it added last time is removed first.
type Renderer struct {
	Stage  *scene.Stage
	Canvas *scene.Canvas

	layout Layout
	viewW  float64
	viewH  float64

	terrainNodes []scene.NodeID
	infoNodes    []scene.NodeID
	scoreNode    scene.NodeID
	infoText     scene.NodeID
}

// NewRenderer renders into a fresh stage and canvas for a viewW x viewH
// viewport.
func NewRenderer(layout Layout, viewW, viewH float64) *Renderer {
	return &Renderer{
		Stage:  scene.NewStage(),
		Canvas: scene.NewCanvas(),
		layout: layout,
		viewW:  viewW,
		viewH:  viewH,
	}
}

// Render rebuilds the scene. It fails only on ErrUnknownTerrain.
func (r *Renderer) Render(s *State) error {
	r.Canvas.Clear()

	r.Stage.RemoveAll(r.infoNodes)
	r.infoNodes = r.infoNodes[:0]
	r.Stage.RemoveAll(r.terrainNodes)
	r.terrainNodes = r.terrainNodes[:0]
	r.Stage.Remove(r.scoreNode)
	r.Stage.Remove(r.infoText)
	r.scoreNode, r.infoText = 0, 0

	if s.Mode == ModeInfoWindow {
		r.drawInfoScreen(s)
		return nil
	}

	r.Canvas.LineStyle(1, colorGridLine)
	if err := r.drawTiles(s); err != nil {
		return err
	}
	r.drawGrid(s)
	r.drawInfoTiles(s)
	r.drawScore(s)
	return nil
}

func (r *Renderer) drawTiles(s *State) error {
	for _, t := range s.Tiles {
		tex, err := TextureFor(t.Kind)
		if err != nil {
			return fmt.Errorf("tile %s: %w", t.Coord, err)
		}
		cell, ok := r.layout.CellAt(t.Coord.X, t.Coord.Y)
		if !ok {
			continue
		}
		o := cell.Origin()
		r.terrainNodes = append(r.terrainNodes, r.Stage.AddSprite(tex, o.X, o.Y))
	}
	return nil
}

// drawGrid outlines every cell. Selection fill wins over cursor fill.
func (r *Renderer) drawGrid(s *State) {
	for _, cell := range r.layout.Cells() {
		c := Coord{X: cell.Col, Y: cell.Row}
		o := cell.Origin()
		corners := cell.Corners()
		pts := make([]hexgrid.Point, len(corners))
		for i, p := range corners {
			pts[i] = p.Add(o)
		}

		filled := true
		switch {
		case s.Selected.Has(c):
			r.Canvas.BeginFill(colorSelected)
		case c == s.Cursor:
			r.Canvas.BeginFill(colorCursor)
		default:
			filled = false
		}
		r.Canvas.Polygon(pts)
		if filled {
			r.Canvas.EndFill()
		}
	}
}

func (r *Renderer) drawInfoTiles(s *State) {
	for _, it := range s.InfoTiles {
		cell, ok := r.layout.CellAt(it.Coord.X, it.Coord.Y)
		if !ok {
			continue
		}
		o := cell.Origin()
		r.infoNodes = append(r.infoNodes, r.Stage.AddSprite(PortraitTexture(it.Portrait), o.X, o.Y))
	}
}

func (r *Renderer) drawScore(s *State) {
	r.scoreNode = r.Stage.AddText(fmt.Sprintf("Game score: %d", s.Score),
		scene.DefaultTextStyle(), scoreX, r.viewH-scoreMargin)
}

// drawInfoScreen covers the viewport and shows the text of the info tile
// under the cursor. The board is not drawn underneath.
func (r *Renderer) drawInfoScreen(s *State) {
	r.Canvas.BeginFill(colorOverlay)
	r.Canvas.Rect(0, 0, r.viewW, r.viewH)
	r.Canvas.EndFill()

	text := ""
	if it, ok := s.InfoAt(s.Cursor); ok {
		text = it.Text
	}
	r.infoText = r.Stage.AddText(text, InfoTextStyle(), infoTextX, infoTextY)
}

// InfoText returns the text currently shown in the info window, if open.
func (r *Renderer) InfoText() (string, bool) {
	if r.infoText == 0 {
		return "", false
	}
	for _, n := range r.Stage.Nodes() {
		if n.ID == r.infoText {
			return n.Text, true
		}
	}
	return "", false
}
