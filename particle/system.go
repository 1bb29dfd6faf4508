// Package particle runs the terminal confetti shown on corner hits and manual bursts
package particle

import (
	"math"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/bounce/constants"
	"github.com/lixenwraith/bounce/effect"
	"github.com/lixenwraith/bounce/physics"
	"github.com/lixenwraith/bounce/vmath"
)

var glyphs = []rune{'*', '+', 'o', '.', '~', 'x'}

// Particle is a single confetti piece in virtual pixels
type Particle struct {
	Pos   vmath.Vec2
	Vel   vmath.Vec2 // Pixels per second
	Age   time.Duration
	Life  time.Duration
	Color colorful.Color
	Glyph rune
}

// Fade returns remaining life in [0, 1]
func (p *Particle) Fade() float64 {
	if p.Life <= 0 {
		return 0
	}
	return vmath.Clamp(1-float64(p.Age)/float64(p.Life), 0, 1)
}

// Config tunes the simulation
type Config struct {
	StartSpeed float64       // Initial speed, pixels per second
	Gravity    float64       // Downward acceleration, pixels per second²
	Decay      float64       // Velocity retained after one second
	Lifetime   time.Duration // Max particle age
	Max        int           // Live particle cap, oldest dropped first
	Seed       uint64
}

// DefaultConfig returns the stock confetti tuning
func DefaultConfig() Config {
	return Config{
		StartSpeed: constants.ParticleStartSpeed,
		Gravity:    constants.ParticleGravity,
		Decay:      constants.ParticleDecay,
		Lifetime:   constants.ParticleLifetime,
		Max:        constants.MaxParticles,
		Seed:       uint64(time.Now().UnixNano()),
	}
}

// System owns live particles, implements effect.Emitter
// Not safe for concurrent use, driven from the frame loop only
type System struct {
	cfg       Config
	rng       *vmath.FastRand
	bounds    physics.Bounds
	palette   []colorful.Color
	particles []Particle
}

// NewSystem creates an empty particle system
func NewSystem(cfg Config) *System {
	if cfg.Max <= 0 {
		cfg.Max = constants.MaxParticles
	}
	return &System{
		cfg:       cfg,
		rng:       vmath.NewFastRand(cfg.Seed),
		palette:   Palette(12),
		particles: make([]Particle, 0, 256),
	}
}

// Palette returns n evenly spaced saturated hues
func Palette(n int) []colorful.Color {
	if n <= 0 {
		n = 1
	}
	p := make([]colorful.Color, n)
	for i := range p {
		p[i] = colorful.Hsv(float64(i)*360/float64(n), 0.75, 1.0)
	}
	return p
}

// SetBounds updates the viewport used to place burst origins and cull fallen particles
func (s *System) SetBounds(b physics.Bounds) {
	s.bounds = b
}

// Emit spawns a burst, origin is resolved against the current bounds
func (s *System) Emit(b effect.Burst) {
	if b.ParticleCount <= 0 {
		return
	}

	origin := vmath.Vec2{X: b.Origin.X * s.bounds.Width, Y: b.Origin.Y * s.bounds.Height}
	half := b.Spread / 2

	for i := 0; i < b.ParticleCount; i++ {
		angle := 90 + s.rng.Range(-half, half)
		speed := s.cfg.StartSpeed * s.rng.Range(0.5, 1.0)
		s.particles = append(s.particles, Particle{
			Pos:   origin,
			Vel:   vmath.V2Scale(vmath.V2FromAngle(angle), speed),
			Life:  time.Duration(float64(s.cfg.Lifetime) * s.rng.Range(0.6, 1.0)),
			Color: s.palette[s.rng.Intn(len(s.palette))],
			Glyph: glyphs[s.rng.Intn(len(glyphs))],
		})
	}

	if over := len(s.particles) - s.cfg.Max; over > 0 {
		s.particles = append(s.particles[:0], s.particles[over:]...)
	}
}

// Step advances all particles by dt, removing expired and fallen ones
func (s *System) Step(dt time.Duration) {
	if len(s.particles) == 0 || dt <= 0 {
		return
	}

	sec := dt.Seconds()
	drag := math.Pow(s.cfg.Decay, sec)

	live := s.particles[:0]
	for _, p := range s.particles {
		p.Age += dt
		if p.Age >= p.Life {
			continue
		}
		p.Vel.Y += s.cfg.Gravity * sec
		p.Vel = vmath.V2Scale(p.Vel, drag)
		p.Pos = vmath.V2Add(p.Pos, vmath.V2Scale(p.Vel, sec))
		if p.Pos.Y > s.bounds.Height {
			continue
		}
		live = append(live, p)
	}
	s.particles = live
}

// Particles returns live particles, valid until the next Emit or Step
func (s *System) Particles() []Particle {
	return s.particles
}

// Len returns the live particle count
func (s *System) Len() int {
	return len(s.particles)
}

// Clear drops all particles
func (s *System) Clear() {
	s.particles = s.particles[:0]
}
