// Package overlay builds debug annotations describing the logo's aim at the next corner
// Annotations are plain values rebuilt every tick, nothing here holds state between frames
package overlay

import (
	"github.com/lixenwraith/bounce/vmath"
)

// Color is the semantic color of an annotation, resolved to a terminal color by the renderer
type Color uint8

const (
	ColorNone Color = iota
	ColorTarget
	ColorAligned
	ColorRay
)

// Stroke is the line drawing pattern
type Stroke uint8

const (
	StrokeSolid Stroke = iota
	StrokeDashed
)

// Annotation is a drawable debug primitive, either Line or Label
type Annotation interface {
	annotation()
}

// Line is a segment in virtual pixels
type Line struct {
	From, To vmath.Vec2
	Color    Color
	Stroke   Stroke
}

// Label is text anchored at a position in virtual pixels
type Label struct {
	Position vmath.Vec2
	Text     string
	Color    Color
}

func (Line) annotation()  {}
func (Label) annotation() {}
