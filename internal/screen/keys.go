package screen

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/hextiles/internal/events"
)

// keyMap lists the physical keys the board reacts to. Everything else is
// delivered as events.KeyOther.
var keyMap = map[ebiten.Key]events.Key{
	ebiten.KeyArrowUp:     events.KeyArrowUp,
	ebiten.KeyArrowDown:   events.KeyArrowDown,
	ebiten.KeyArrowLeft:   events.KeyArrowLeft,
	ebiten.KeyArrowRight:  events.KeyArrowRight,
	ebiten.KeyEnter:       events.KeyEnter,
	ebiten.KeyNumpadEnter: events.KeyEnter,
	ebiten.KeyEscape:      events.KeyEscape,
	ebiten.KeySpace:       events.KeySpace,
	ebiten.KeyC:           events.KeyC,
}

// MapKey translates an ebiten key to a board key.
func MapKey(k ebiten.Key) events.Key {
	if ek, ok := keyMap[k]; ok {
		return ek
	}
	return events.KeyOther
}
