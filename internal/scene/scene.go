// Package scene is the backend-free drawing surface the game renders into:
// a retained Stage of sprite and text nodes plus a persistent vector Canvas.
// The ebiten host paints both every frame.
package scene

import "image/color"

// NodeID identifies a node on the Stage.
type NodeID int

// NodeKind distinguishes stage node payloads.
type NodeKind uint8

const (
	NodeSprite NodeKind = iota
	NodeText
)

// Node is one element of the display tree.
type Node struct {
	ID      NodeID
	Kind    NodeKind
	X, Y    float64
	Texture string // NodeSprite: atlas key
	Text    string // NodeText
	Style   TextStyle
}

// Stage is the retained display tree. Nodes draw in insertion order.
type Stage struct {
	nodes  []Node
	nextID NodeID
}

// NewStage returns an empty stage.
func NewStage() *Stage {
	return &Stage{nextID: 1}
}

// AddSprite places a texture with its centre at (x, y).
func (s *Stage) AddSprite(texture string, x, y float64) NodeID {
	return s.add(Node{Kind: NodeSprite, Texture: texture, X: x, Y: y})
}

// AddText places text with its top-left corner at (x, y).
func (s *Stage) AddText(text string, style TextStyle, x, y float64) NodeID {
	return s.add(Node{Kind: NodeText, Text: text, Style: style, X: x, Y: y})
}

func (s *Stage) add(n Node) NodeID {
	n.ID = s.nextID
	s.nextID++
	s.nodes = append(s.nodes, n)
	return n.ID
}

// Remove detaches a node. Removing an absent node is a no-op.
func (s *Stage) Remove(id NodeID) bool {
	for i, n := range s.nodes {
		if n.ID == id {
			s.nodes = append(s.nodes[:i], s.nodes[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveAll detaches every listed node and returns how many were present.
func (s *Stage) RemoveAll(ids []NodeID) int {
	if len(ids) == 0 {
		return 0
	}
	drop := make(map[NodeID]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}
	kept := s.nodes[:0]
	removed := 0
	for _, n := range s.nodes {
		if _, ok := drop[n.ID]; ok {
			removed++
			continue
		}
		kept = append(kept, n)
	}
	s.nodes = kept
	return removed
}

// Nodes returns the current nodes in draw order. The slice must not be
// modified.
func (s *Stage) Nodes() []Node {
	return s.nodes
}

// Len returns the node count.
func (s *Stage) Len() int { return len(s.nodes) }

// TextStyle mirrors the text options the game sets at its call sites.
type TextStyle struct {
	FontFamily string
	FontSize   float64
	Bold       bool
	Italic     bool
	// Fill holds one colour, or several for a top-to-bottom gradient.
	Fill            []color.RGBA
	Stroke          color.RGBA
	StrokeThickness float64
	DropShadow      *DropShadow
	// WordWrapWidth wraps lines at this pixel width; 0 disables wrapping.
	WordWrapWidth float64
}

// DropShadow describes a text shadow offset by Distance along Angle.
type DropShadow struct {
	Color    color.RGBA
	Blur     float64
	Angle    float64 // radians
	Distance float64
}

// DefaultTextStyle is plain black 26px text.
func DefaultTextStyle() TextStyle {
	return TextStyle{
		FontFamily: "Arial",
		FontSize:   26,
		Fill:       []color.RGBA{{R: 0, G: 0, B: 0, A: 255}},
	}
}
