package physics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/bounce/vmath"
)

var (
	testExtent = Extent{Width: 128, Height: 64}
	// maxX = 600, maxY = 400
	testBounds = Bounds{Width: 728, Height: 464}
	testNow    = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
)

func TestAdvanceNearEdgeNoBounce(t *testing.T) {
	s := State{Position: vmath.V2(598, 2), Velocity: vmath.V2(1, -1)}

	r := Advance(s, testBounds, testExtent, 0.75, testNow)

	assert.InDelta(t, 598.75, r.State.Position.X, 1e-9)
	assert.InDelta(t, 1.25, r.State.Position.Y, 1e-9)
	assert.Equal(t, vmath.V2(1, -1), r.State.Velocity)
	assert.False(t, r.Bounced())
	assert.True(t, r.State.LastBounce.IsZero())
}

func TestAdvanceEdgeContact(t *testing.T) {
	tests := []struct {
		name     string
		pos, vel vmath.Vec2
		wantPos  vmath.Vec2
		wantVel  vmath.Vec2
		bx, by   bool
	}{
		{"left wall", vmath.V2(0.5, 100), vmath.V2(-1, 1), vmath.V2(0, 100.75), vmath.V2(1, 1), true, false},
		{"right wall", vmath.V2(599.5, 100), vmath.V2(1, 1), vmath.V2(600, 100.75), vmath.V2(-1, 1), true, false},
		{"top wall", vmath.V2(100, 0.5), vmath.V2(1, -1), vmath.V2(100.75, 0), vmath.V2(1, 1), false, true},
		{"bottom wall", vmath.V2(100, 399.5), vmath.V2(-1, 1), vmath.V2(99.25, 400), vmath.V2(-1, -1), false, true},
		{"exact max counts as contact", vmath.V2(599.25, 50), vmath.V2(1, 1), vmath.V2(600, 50.75), vmath.V2(-1, 1), true, false},
		{"corner inverts both axes", vmath.V2(599.5, 399.5), vmath.V2(1, 1), vmath.V2(600, 400), vmath.V2(-1, -1), true, true},
		{"origin corner", vmath.V2(0.25, 0.25), vmath.V2(-1, -1), vmath.V2(0, 0), vmath.V2(1, 1), true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Advance(State{Position: tt.pos, Velocity: tt.vel}, testBounds, testExtent, 0.75, testNow)
			assert.InDelta(t, tt.wantPos.X, r.State.Position.X, 1e-9)
			assert.InDelta(t, tt.wantPos.Y, r.State.Position.Y, 1e-9)
			assert.Equal(t, tt.wantVel, r.State.Velocity)
			assert.Equal(t, tt.bx, r.BouncedX)
			assert.Equal(t, tt.by, r.BouncedY)
			assert.Equal(t, testNow, r.State.LastBounce)
		})
	}
}

// Long random walks: position stays in range, signs only flip on contact ticks
func TestAdvanceInvariants(t *testing.T) {
	rng := vmath.NewFastRand(7)
	for run := 0; run < 20; run++ {
		b := Bounds{Width: rng.Range(200, 2000), Height: rng.Range(100, 1200)}
		limit := b.Max(testExtent)
		s := State{
			Position: vmath.V2(rng.Range(0, limit.X), rng.Range(0, limit.Y)),
			Velocity: vmath.V2(pickSign(rng), pickSign(rng)),
		}
		speed := rng.Range(0.25, 9)

		for tick := 0; tick < 5000; tick++ {
			r := Advance(s, b, testExtent, speed, testNow)
			p := r.State.Position

			require.GreaterOrEqual(t, p.X, 0.0)
			require.LessOrEqual(t, p.X, limit.X)
			require.GreaterOrEqual(t, p.Y, 0.0)
			require.LessOrEqual(t, p.Y, limit.Y)

			flippedX := r.State.Velocity.X != s.Velocity.X
			flippedY := r.State.Velocity.Y != s.Velocity.Y
			require.Equal(t, flippedX, r.BouncedX)
			require.Equal(t, flippedY, r.BouncedY)
			if r.BouncedX {
				require.True(t, p.X == 0 || p.X == limit.X)
			}
			if r.BouncedY {
				require.True(t, p.Y == 0 || p.Y == limit.Y)
			}

			// Magnitude is constant
			require.Equal(t, 1.0, vmath.Abs(r.State.Velocity.X))
			require.Equal(t, 1.0, vmath.Abs(r.State.Velocity.Y))
			s = r.State
		}
	}
}

func TestAdvanceAfterShrinkReclamps(t *testing.T) {
	// Position valid for the old bounds, outside the new ones
	s := State{Position: vmath.V2(590, 390), Velocity: vmath.V2(1, 1)}
	shrunk := Bounds{Width: 428, Height: 264} // max (300, 200)

	r := Advance(s, shrunk, testExtent, 0.75, testNow)
	assert.Equal(t, vmath.V2(300, 200), r.State.Position)
	assert.Equal(t, vmath.V2(-1, -1), r.State.Velocity)
}

func TestDegenerateBounds(t *testing.T) {
	tiny := Bounds{Width: 100, Height: 300}
	assert.True(t, tiny.Degenerate(testExtent))
	assert.False(t, testBounds.Degenerate(testExtent))

	// Not corrected: x clamps to the negative max, then back to 0 on the next tick
	r := Advance(State{Position: vmath.V2(0, 10), Velocity: vmath.V2(1, 1)}, tiny, testExtent, 0.75, testNow)
	assert.Equal(t, -28.0, r.State.Position.X)
	assert.Equal(t, -1.0, r.State.Velocity.X)

	r = Advance(r.State, tiny, testExtent, 0.75, testNow)
	assert.Equal(t, 0.0, r.State.Position.X)
	assert.Equal(t, 1.0, r.State.Velocity.X)
}

func TestNearCornersExactCorner(t *testing.T) {
	near := NearCorners(vmath.V2(0, 0), testBounds, testExtent, 6)
	require.Len(t, near, 1)
	assert.Equal(t, CornerTopLeft, near[0].ID)
}

func TestNearCornersThreshold(t *testing.T) {
	tests := []struct {
		name string
		pos  vmath.Vec2
		want []CornerID
	}{
		{"inside threshold top-right", vmath.V2(594, 6), []CornerID{CornerTopRight}},
		{"one axis outside", vmath.V2(594, 6.01), nil},
		{"bottom-left", vmath.V2(5, 396), []CornerID{CornerBottomLeft}},
		{"bottom-right exact", vmath.V2(600, 400), []CornerID{CornerBottomRight}},
		{"center", vmath.V2(300, 200), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []CornerID
			for _, c := range NearCorners(tt.pos, testBounds, testExtent, 6) {
				got = append(got, c.ID)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNearCornersTinyViewportNotDeduplicated(t *testing.T) {
	// max (4, 4): every corner is within 6 of (2, 2)
	tiny := Bounds{Width: testExtent.Width + 4, Height: testExtent.Height + 4}
	near := NearCorners(vmath.V2(2, 2), tiny, testExtent, 6)
	assert.Len(t, near, 4)
}

func TestComputeAimQuadrants(t *testing.T) {
	pos := vmath.V2(100, 50)
	tests := []struct {
		vel    vmath.Vec2
		corner CornerID
		vertex vmath.Vec2
		target vmath.Vec2
	}{
		{vmath.V2(1, 1), CornerBottomRight, vmath.V2(228, 114), vmath.V2(728, 464)},
		{vmath.V2(1, -1), CornerTopRight, vmath.V2(228, 50), vmath.V2(728, 0)},
		{vmath.V2(-1, 1), CornerBottomLeft, vmath.V2(100, 114), vmath.V2(0, 464)},
		{vmath.V2(-1, -1), CornerTopLeft, vmath.V2(100, 50), vmath.V2(0, 0)},
		{vmath.V2(0, 0), CornerTopLeft, vmath.V2(100, 50), vmath.V2(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.corner.String(), func(t *testing.T) {
			a := ComputeAim(State{Position: pos, Velocity: tt.vel}, testBounds, testExtent, 8)
			assert.Equal(t, tt.corner, a.Corner)
			assert.Equal(t, tt.vertex, a.Vertex)
			assert.Equal(t, tt.target, a.Target)
		})
	}
}

func TestComputeAimAngle(t *testing.T) {
	// Leading vertex (328, 64) to (728, 464) is a pure diagonal
	aligned := ComputeAim(State{Position: vmath.V2(200, 0), Velocity: vmath.V2(1, 1)}, testBounds, testExtent, 8)
	assert.InDelta(t, 0, aligned.AngleDeg, 1e-4)
	assert.True(t, aligned.Aligned)
	assert.InDelta(t, 1, vmath.V2Mag(aligned.Direction), 1e-12)

	// Leading vertex (128, 64) to (728, 464): atan(400/600) vs 45 degrees
	off := ComputeAim(State{Position: vmath.V2(0, 0), Velocity: vmath.V2(1, 1)}, testBounds, testExtent, 8)
	assert.InDelta(t, 11.31, off.AngleDeg, 0.01)
	assert.False(t, off.Aligned)
}

func TestComputeAimAtTarget(t *testing.T) {
	// Vertex on the target: zero vector normalizes to zero, no NaN
	a := ComputeAim(State{Position: vmath.V2(0, 0), Velocity: vmath.V2(-1, -1)}, testBounds, testExtent, 8)
	assert.Equal(t, vmath.Vec2{}, a.ToTarget())
	assert.InDelta(t, 90, a.AngleDeg, 1e-9)
}

func TestBoundsFromCells(t *testing.T) {
	b := BoundsFromCells(80, 24, 8, 16)
	assert.Equal(t, Bounds{Width: 640, Height: 384}, b)
}

func TestExtentFromAspect(t *testing.T) {
	assert.Equal(t, Extent{Width: 128, Height: 64}, ExtentFromAspect(128, 2))
	assert.Equal(t, Extent{Width: 10, Height: 10}, ExtentFromAspect(10, 0))
}

func pickSign(r *vmath.FastRand) float64 {
	if r.Intn(2) == 0 {
		return -1
	}
	return 1
}
