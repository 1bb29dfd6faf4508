package physics

import (
	"github.com/lixenwraith/bounce/vmath"
)

// Aim describes where the box is heading relative to the viewport corner in its travel quadrant
type Aim struct {
	Corner    CornerID
	Vertex    vmath.Vec2 // Leading vertex of the box
	Target    vmath.Vec2 // Viewport corner in the travel quadrant
	Direction vmath.Vec2 // Unit velocity direction
	AngleDeg  float64    // Angle between Direction and Target - Vertex
	Aligned   bool       // AngleDeg below the cone threshold
}

// ToTarget returns the vector from the leading vertex to the target corner
func (a Aim) ToTarget() vmath.Vec2 {
	return vmath.V2Sub(a.Target, a.Vertex)
}

// ComputeAim selects the leading vertex and target corner from the velocity signs
// (+,+) bottom-right, (+,-) top-right, (-,+) bottom-left, anything else top-left
func ComputeAim(s State, b Bounds, e Extent, coneDeg float64) Aim {
	p := s.Position
	dx, dy := vmath.Sign(s.Velocity.X), vmath.Sign(s.Velocity.Y)

	var a Aim
	switch {
	case dx > 0 && dy > 0:
		a.Corner = CornerBottomRight
		a.Vertex = vmath.Vec2{X: p.X + e.Width, Y: p.Y + e.Height}
		a.Target = vmath.Vec2{X: b.Width, Y: b.Height}
	case dx > 0 && dy < 0:
		a.Corner = CornerTopRight
		a.Vertex = vmath.Vec2{X: p.X + e.Width, Y: p.Y}
		a.Target = vmath.Vec2{X: b.Width, Y: 0}
	case dx < 0 && dy > 0:
		a.Corner = CornerBottomLeft
		a.Vertex = vmath.Vec2{X: p.X, Y: p.Y + e.Height}
		a.Target = vmath.Vec2{X: 0, Y: b.Height}
	default:
		a.Corner = CornerTopLeft
		a.Vertex = p
		a.Target = vmath.Vec2{}
	}

	a.Direction = vmath.V2Normalize(s.Velocity)
	a.AngleDeg = vmath.V2AngleDeg(s.Velocity, a.ToTarget())
	a.Aligned = a.AngleDeg < coneDeg
	return a
}
