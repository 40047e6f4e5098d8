// Package events adapts raw host input into the two game channels:
// "selected" (a pointer click at a screen point) and "keyup".
package events

import (
	"errors"

	"github.com/Garsondee/hextiles/internal/hexgrid"
)

// Key is a host-independent key identifier.
type Key uint8

const (
	KeyOther Key = iota
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyEnter
	KeyEscape
	KeySpace
	KeyC
)

var keyNames = [...]string{
	KeyOther:      "Other",
	KeyArrowUp:    "ArrowUp",
	KeyArrowDown:  "ArrowDown",
	KeyArrowLeft:  "ArrowLeft",
	KeyArrowRight: "ArrowRight",
	KeyEnter:      "Enter",
	KeyEscape:     "Escape",
	KeySpace:      " ",
	KeyC:          "c",
}

// String returns the DOM-style key identifier.
func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "Other"
}

// ParseKey maps a DOM-style identifier back to a Key. Unknown names are
// KeyOther.
func ParseKey(name string) Key {
	for k, n := range keyNames {
		if n == name && Key(k) != KeyOther {
			return Key(k)
		}
	}
	return KeyOther
}

// IsScrollKey reports keys whose keydown would scroll the host view.
// The host swallows these keydowns; gameplay only reacts on keyup.
func IsScrollKey(k Key) bool {
	switch k {
	case KeyArrowUp, KeyArrowDown, KeyArrowLeft, KeyArrowRight, KeySpace:
		return true
	}
	return false
}

// Handler consumes the two game channels.
type Handler interface {
	HandleSelected(p hexgrid.Point) error
	HandleKeyUp(k Key) error
}

// ErrAlreadySubscribed is returned when a second handler subscribes.
var ErrAlreadySubscribed = errors.New("events: handler already subscribed")

// Dispatcher routes input to the single subscribed Handler.
type Dispatcher struct {
	h Handler
}

// Subscribe attaches h. The core subscribes exactly once at startup.
func (d *Dispatcher) Subscribe(h Handler) error {
	if d.h != nil {
		return ErrAlreadySubscribed
	}
	d.h = h
	return nil
}

// EmitSelected forwards a click. No-op without a subscriber.
func (d *Dispatcher) EmitSelected(p hexgrid.Point) error {
	if d.h == nil {
		return nil
	}
	return d.h.HandleSelected(p)
}

// EmitKeyUp forwards a key release. No-op without a subscriber.
func (d *Dispatcher) EmitKeyUp(k Key) error {
	if d.h == nil {
		return nil
	}
	return d.h.HandleKeyUp(k)
}
