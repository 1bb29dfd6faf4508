package effect

import (
	"github.com/lixenwraith/bounce/physics"
	"github.com/lixenwraith/bounce/vmath"
)

// Burst is a particle burst request, Origin is a viewport fraction in [0, 1] on each axis
type Burst struct {
	ParticleCount int
	Spread        float64 // Cone width in degrees
	Origin        vmath.Vec2
	Corner        physics.CornerID
	Manual        bool // Fired from the keyboard, Corner is meaningless
}

// Emitter renders or otherwise reacts to bursts
type Emitter interface {
	Emit(Burst)
}

// Fanout delivers every burst to each emitter in order
type Fanout []Emitter

func (f Fanout) Emit(b Burst) {
	for _, e := range f {
		if e != nil {
			e.Emit(b)
		}
	}
}

// Shape is the particle count and spread of one kind of burst
type Shape struct {
	ParticleCount int
	Spread        float64
}

// CornerBursts builds one burst per near corner, no deduplication
// Origin is the logo center at that corner as a fraction of the viewport
func CornerBursts(near []physics.Corner, b physics.Bounds, e physics.Extent, shape Shape) []Burst {
	if len(near) == 0 || b.Width <= 0 || b.Height <= 0 {
		return nil
	}

	half := e.Half()
	bursts := make([]Burst, 0, len(near))
	for _, c := range near {
		bursts = append(bursts, Burst{
			ParticleCount: shape.ParticleCount,
			Spread:        shape.Spread,
			Origin: vmath.Vec2{
				X: (c.Position.X + half.X) / b.Width,
				Y: (c.Position.Y + half.Y) / b.Height,
			},
			Corner: c.ID,
		})
	}
	return bursts
}

// CenterBurst builds a manual burst at the viewport center
func CenterBurst(shape Shape) Burst {
	return Burst{
		ParticleCount: shape.ParticleCount,
		Spread:        shape.Spread,
		Origin:        vmath.Vec2{X: 0.5, Y: 0.5},
		Manual:        true,
	}
}
