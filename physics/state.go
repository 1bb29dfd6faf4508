package physics

import (
	"time"

	"github.com/lixenwraith/bounce/vmath"
)

// State is the bouncing logo's simulation state
// Velocity components are in {-1, +1}, movement per tick is Velocity * speed
type State struct {
	Position   vmath.Vec2
	Velocity   vmath.Vec2
	LastBounce time.Time
}

// Bounds is the measured viewport size in virtual pixels
type Bounds struct {
	Width, Height float64
}

// BoundsFromCells converts a terminal size to virtual pixel bounds
func BoundsFromCells(cols, rows int, cellWidth, cellHeight float64) Bounds {
	return Bounds{
		Width:  float64(cols) * cellWidth,
		Height: float64(rows) * cellHeight,
	}
}

// Max returns the largest valid top-left position of a box with the given extent
func (b Bounds) Max(e Extent) vmath.Vec2 {
	return vmath.Vec2{X: b.Width - e.Width, Y: b.Height - e.Height}
}

// Degenerate reports whether the box no longer fits on at least one axis
// Advance does not correct this, positions will clamp outside [0, max]
func (b Bounds) Degenerate(e Extent) bool {
	m := b.Max(e)
	return m.X < 0 || m.Y < 0
}

// Extent is the fixed logo box size
type Extent struct {
	Width, Height float64
}

// ExtentFromAspect builds an extent from width and width/height ratio
func ExtentFromAspect(width, aspect float64) Extent {
	if aspect <= 0 {
		return Extent{Width: width, Height: width}
	}
	return Extent{Width: width, Height: width / aspect}
}

// Half returns the extent center offset
func (e Extent) Half() vmath.Vec2 {
	return vmath.Vec2{X: e.Width / 2, Y: e.Height / 2}
}
