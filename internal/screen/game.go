// Package screen hosts a game session in an ebiten window: it turns raw
// keyboard, mouse and touch input into dispatcher events and paints the
// session's scene every frame.
package screen

import (
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Garsondee/hextiles/internal/events"
	"github.com/Garsondee/hextiles/internal/game"
	"github.com/Garsondee/hextiles/internal/hexgrid"
)

var colorBackground = color.RGBA{R: 0xf4, G: 0xf1, B: 0xe8, A: 255} // parchment

// Game implements ebiten.Game.
type Game struct {
	session    *game.Session
	dispatcher *events.Dispatcher
	messages   *MessageLog
	painter    *Painter
	fonts      *Fonts
	logger     *log.Logger

	width, height int

	keys    []ebiten.Key
	touches []ebiten.TouchID
}

// New wires a host around a session that is already subscribed to
// dispatcher. messages must be the session's tooltip.
func New(session *game.Session, dispatcher *events.Dispatcher, messages *MessageLog,
	hexSize float64, width, height int, logger *log.Logger) (*Game, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	fonts, err := LoadFonts()
	if err != nil {
		return nil, err
	}
	return &Game{
		session:    session,
		dispatcher: dispatcher,
		messages:   messages,
		painter:    NewPainter(NewAtlas(hexSize, logger), fonts),
		fonts:      fonts,
		logger:     logger,
		width:      width,
		height:     height,
	}, nil
}

// Update polls input and dispatches it. A handler error ends the game loop.
func (g *Game) Update() error {
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		g.keyDown(MapKey(k))
	}

	g.keys = inpututil.AppendJustReleasedKeys(g.keys[:0])
	for _, k := range g.keys {
		if err := g.dispatcher.EmitKeyUp(MapKey(k)); err != nil {
			return fmt.Errorf("keyup %s: %w", k, err)
		}
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if err := g.dispatcher.EmitSelected(hexgrid.Point{X: float64(x), Y: float64(y)}); err != nil {
			return fmt.Errorf("click: %w", err)
		}
	}

	g.touches = inpututil.AppendJustReleasedTouchIDs(g.touches[:0])
	for _, id := range g.touches {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		if err := g.dispatcher.EmitSelected(hexgrid.Point{X: float64(x), Y: float64(y)}); err != nil {
			return fmt.Errorf("touch: %w", err)
		}
	}
	return nil
}

// keyDown never touches game state. Scroll keys are swallowed here; the
// copy shortcut fires on press so it does not wait for the release.
func (g *Game) keyDown(k events.Key) {
	if events.IsScrollKey(k) {
		g.logger.Debug("scroll key consumed", "key", k.String())
		return
	}
	if k == events.KeyC {
		g.copyToClipboard()
	}
}

func (g *Game) copyToClipboard() {
	info, open := g.session.Renderer.InfoText()
	last, hasLast := g.messages.Last()
	s, ok := clipboardText(info, open, last, hasLast)
	if !ok {
		return
	}
	if err := writeClipboard(s); err != nil {
		g.logger.Warn("clipboard copy failed", "err", err)
		return
	}
	g.logger.Debug("copied to clipboard", "text", s)
}

// Draw paints the current scene. The tooltip panel is hidden while the info
// window covers the board.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	r := g.session.Renderer
	g.painter.Paint(screen, r.Stage, r.Canvas)
	if g.session.State.Mode == game.ModeBoard {
		g.messages.Draw(screen, g.fonts.Face(false, false, panelFontSize), g.width-panelWidth, g.height)
	}
}

// Layout keeps a fixed logical resolution.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}
