package screen

import (
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/Garsondee/hextiles/internal/scene"
)

// wrapText breaks s into lines no wider than width, splitting on spaces.
// Explicit newlines are kept. A single word wider than width gets its own
// line. width <= 0 disables wrapping.
func wrapText(s string, width float64, measure func(string) float64) []string {
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		if width <= 0 {
			lines = append(lines, para)
			continue
		}
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			candidate := line + " " + w
			if measure(candidate) > width {
				lines = append(lines, line)
				line = w
				continue
			}
			line = candidate
		}
		lines = append(lines, line)
	}
	return lines
}

// gradientAt returns the fill colour for line i of n. Stops are spread
// evenly from the first line to the last.
func gradientAt(fill []color.RGBA, i, n int) color.RGBA {
	switch {
	case len(fill) == 0:
		return color.RGBA{A: 255}
	case len(fill) == 1 || n <= 1:
		return fill[0]
	}
	t := float64(i) / float64(n-1) * float64(len(fill)-1)
	k := int(t)
	if k >= len(fill)-1 {
		return fill[len(fill)-1]
	}
	return lerpColor(fill[k], fill[k+1], t-float64(k))
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

func drawLine(dst *ebiten.Image, s string, face text.Face, x, y float64, col color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(dst, s, face, op)
}

// strokeOffsets approximates an outline by redrawing the glyphs around the
// anchor.
var strokeOffsets = [8][2]float64{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// drawStyledText draws s with its top-left corner at (x, y).
func drawStyledText(dst *ebiten.Image, s string, st scene.TextStyle, face *text.GoTextFace, x, y float64) {
	m := face.Metrics()
	lineH := m.HAscent + m.HDescent + m.HLineGap
	measure := func(l string) float64 { return text.Advance(l, face) }
	lines := wrapText(s, st.WordWrapWidth, measure)

	for i, l := range lines {
		ly := y + float64(i)*lineH
		if sh := st.DropShadow; sh != nil {
			dx := math.Cos(sh.Angle) * sh.Distance
			dy := math.Sin(sh.Angle) * sh.Distance
			shadow := sh.Color
			if sh.Blur > 0 {
				// Two offset passes at reduced alpha stand in for a blur.
				shadow.A = uint8(float64(shadow.A) * 0.5)
				drawLine(dst, l, face, x+dx+sh.Blur/4, ly+dy+sh.Blur/4, shadow)
			}
			drawLine(dst, l, face, x+dx, ly+dy, shadow)
		}
		if st.StrokeThickness > 0 {
			r := st.StrokeThickness / 2
			for _, o := range strokeOffsets {
				drawLine(dst, l, face, x+o[0]*r, ly+o[1]*r, st.Stroke)
			}
		}
		drawLine(dst, l, face, x, ly, gradientAt(st.Fill, i, len(lines)))
	}
}
