package screen

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// panelFontSize is the tooltip panel text size.
const panelFontSize = 13

// Fonts holds the embedded Go font family. Every scene font family maps onto
// it; only weight and slant are honoured.
type Fonts struct {
	regular    *text.GoTextFaceSource
	bold       *text.GoTextFaceSource
	italic     *text.GoTextFaceSource
	boldItalic *text.GoTextFaceSource

	faces map[faceKey]*text.GoTextFace
}

type faceKey struct {
	bold, italic bool
	size         float64
}

// LoadFonts parses the embedded Go fonts.
func LoadFonts() (*Fonts, error) {
	f := &Fonts{faces: map[faceKey]*text.GoTextFace{}}
	for _, src := range []struct {
		name string
		ttf  []byte
		dst  **text.GoTextFaceSource
	}{
		{"Go Regular", goregular.TTF, &f.regular},
		{"Go Bold", gobold.TTF, &f.bold},
		{"Go Italic", goitalic.TTF, &f.italic},
		{"Go Bold Italic", gobolditalic.TTF, &f.boldItalic},
	} {
		s, err := text.NewGoTextFaceSource(bytes.NewReader(src.ttf))
		if err != nil {
			return nil, fmt.Errorf("load font %s: %w", src.name, err)
		}
		*src.dst = s
	}
	return f, nil
}

// Face returns a cached face for the given weight, slant and size.
func (f *Fonts) Face(bold, italic bool, size float64) *text.GoTextFace {
	key := faceKey{bold: bold, italic: italic, size: size}
	if face, ok := f.faces[key]; ok {
		return face
	}
	src := f.regular
	switch {
	case bold && italic:
		src = f.boldItalic
	case bold:
		src = f.bold
	case italic:
		src = f.italic
	}
	face := &text.GoTextFace{Source: src, Size: size}
	f.faces[key] = face
	return face
}
