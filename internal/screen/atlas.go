package screen

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/hextiles/internal/game"
)

// terrainPalette gives each terrain texture a base and an accent colour.
var terrainPalette = map[string][2]color.RGBA{
	game.TextureWater:  {{R: 58, G: 112, B: 196, A: 255}, {R: 120, G: 170, B: 230, A: 255}}, // deep blue, foam
	game.TextureDesert: {{R: 226, G: 198, B: 136, A: 255}, {R: 244, G: 224, B: 176, A: 255}}, // sand, pale dune
	game.TextureWood:   {{R: 52, G: 110, B: 56, A: 255}, {R: 30, G: 78, B: 36, A: 255}},     // leaf, canopy
	game.TextureClay:   {{R: 172, G: 92, B: 60, A: 255}, {R: 204, G: 128, B: 92, A: 255}},   // terracotta, baked
}

// portraitPalette cycles by portrait index.
var portraitPalette = []color.RGBA{
	{R: 230, G: 180, B: 60, A: 255},  // gold
	{R: 200, G: 70, B: 90, A: 255},   // crimson
	{R: 90, G: 160, B: 220, A: 255},  // sky
	{R: 160, G: 100, B: 210, A: 255}, // violet
	{R: 240, G: 240, B: 240, A: 255}, // bone
}

var colorMissing = color.RGBA{R: 255, G: 0, B: 255, A: 255} // magenta

// Atlas builds sprite textures procedurally, keyed by the texture names the
// renderer emits. Textures are generated on first use and cached.
type Atlas struct {
	hexSize float64
	images  map[string]*ebiten.Image
	warned  map[string]bool
	logger  *log.Logger
}

// NewAtlas creates an atlas for hexes of the given radius.
func NewAtlas(hexSize float64, logger *log.Logger) *Atlas {
	return &Atlas{
		hexSize: hexSize,
		images:  map[string]*ebiten.Image{},
		warned:  map[string]bool{},
		logger:  logger,
	}
}

// Image returns the texture for key. Unknown keys get a magenta placeholder
// and a single warning.
func (a *Atlas) Image(key string) *ebiten.Image {
	if img, ok := a.images[key]; ok {
		return img
	}
	var img *ebiten.Image
	if pal, ok := terrainPalette[key]; ok {
		img = a.terrainImage(pal[0], pal[1])
	} else if n, ok := parsePortrait(key); ok {
		img = a.portraitImage(portraitPalette[n%len(portraitPalette)])
	} else {
		if !a.warned[key] && a.logger != nil {
			a.logger.Warn("missing texture", "key", key)
		}
		a.warned[key] = true
		img = a.terrainImage(colorMissing, colorMissing)
	}
	a.images[key] = img
	return img
}

func parsePortrait(key string) (int, bool) {
	if !strings.HasPrefix(key, "portrait/") {
		return 0, false
	}
	var n int
	if _, err := fmt.Sscanf(key, "portrait/%d", &n); err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// hexPath traces a pointy-top hex of radius r centred at (cx, cy).
func hexPath(cx, cy, r float32) *vector.Path {
	var path vector.Path
	for i := 0; i < 6; i++ {
		a := float64(60*i-90) * math.Pi / 180
		x := cx + r*float32(math.Cos(a))
		y := cy + r*float32(math.Sin(a))
		if i == 0 {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
	}
	path.Close()
	return &path
}

func fillPath(dst *ebiten.Image, path *vector.Path, c color.Color) {
	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(c)
	vector.FillPath(dst, path, &vector.FillOptions{}, op)
}

func (a *Atlas) terrainImage(base, accent color.RGBA) *ebiten.Image {
	w := int(math.Ceil(a.hexSize * math.Sqrt(3)))
	h := int(math.Ceil(a.hexSize * 2))
	img := ebiten.NewImage(w, h)
	cx, cy := float32(w)/2, float32(h)/2
	r := float32(a.hexSize)

	fillPath(img, hexPath(cx, cy, r), base)
	// Inner highlight.
	fillPath(img, hexPath(cx, cy-r*0.1, r*0.45), accent)
	return img
}

func (a *Atlas) portraitImage(c color.RGBA) *ebiten.Image {
	d := int(math.Ceil(a.hexSize * 1.4))
	img := ebiten.NewImage(d, d)
	r := float32(d) / 2
	vector.FillCircle(img, r, r, r, color.RGBA{R: 20, G: 20, B: 28, A: 255}, true)
	vector.FillCircle(img, r, r, r-2, c, true)
	// Head and shoulders.
	vector.FillCircle(img, r, r*0.8, r*0.3, color.RGBA{R: 20, G: 20, B: 28, A: 220}, true)
	vector.FillRect(img, r*0.45, r*1.2, r*1.1, r*0.45, color.RGBA{R: 20, G: 20, B: 28, A: 220}, true)
	return img
}
