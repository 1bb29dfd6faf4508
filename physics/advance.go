package physics

import (
	"time"
)

// Result is the outcome of one Advance step
type Result struct {
	State    State
	BouncedX bool
	BouncedY bool
}

// Bounced reports whether either axis hit an edge this tick
func (r Result) Bounced() bool {
	return r.BouncedX || r.BouncedY
}

// Advance moves the box one tick and resolves edge contact per axis
// An axis at or past 0 clamps to 0, else at or past max clamps to max; both invert that axis's velocity
// A corner hit inverts both axes in the same tick
// now stamps LastBounce when a bounce occurs
func Advance(s State, b Bounds, e Extent, speed float64, now time.Time) Result {
	limit := b.Max(e)

	s.Position.X += s.Velocity.X * speed
	s.Position.Y += s.Velocity.Y * speed

	var r Result
	s.Position.X, s.Velocity.X, r.BouncedX = resolveAxis(s.Position.X, s.Velocity.X, limit.X)
	s.Position.Y, s.Velocity.Y, r.BouncedY = resolveAxis(s.Position.Y, s.Velocity.Y, limit.Y)

	if r.Bounced() {
		s.LastBounce = now
	}
	r.State = s
	return r
}

func resolveAxis(pos, vel, limit float64) (float64, float64, bool) {
	switch {
	case pos <= 0:
		return 0, -vel, true
	case pos >= limit:
		return limit, -vel, true
	default:
		return pos, vel, false
	}
}
