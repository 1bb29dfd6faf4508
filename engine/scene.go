package engine

import (
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/bounce/constants"
	"github.com/lixenwraith/bounce/effect"
	"github.com/lixenwraith/bounce/input"
	"github.com/lixenwraith/bounce/overlay"
	"github.com/lixenwraith/bounce/particle"
	"github.com/lixenwraith/bounce/physics"
	"github.com/lixenwraith/bounce/render"
	"github.com/lixenwraith/bounce/vmath"
)

// maxStep caps particle dt after a stall so confetti does not teleport
const maxStep = 100 * time.Millisecond

// Viewport reports the current terminal size in cells, tcell.Screen satisfies it
type Viewport interface {
	Size() (cols, rows int)
}

// Params is the scene tuning, see config.Config
type Params struct {
	Speed           float64
	CornerThreshold float64
	Overlay         overlay.Params
	CornerBurst     effect.Shape
	ManualBurst     effect.Shape
	Extent          physics.Extent
	CellWidth       float64
	CellHeight      float64
	FrameInterval   time.Duration
}

// DefaultParams returns the stock tuning
func DefaultParams() Params {
	return Params{
		Speed:           constants.DefaultSpeed,
		CornerThreshold: constants.CornerThreshold,
		Overlay:         overlay.Params{ConeDeg: constants.ConeThreshold, RayLength: constants.RayLength},
		CornerBurst:     effect.Shape{ParticleCount: constants.CornerParticleCount, Spread: constants.CornerSpread},
		ManualBurst:     effect.Shape{ParticleCount: constants.ManualParticleCount, Spread: constants.ManualSpread},
		Extent:          physics.ExtentFromAspect(constants.LogoWidth, constants.LogoAspectRatio),
		CellWidth:       constants.DefaultCellWidth,
		CellHeight:      constants.DefaultCellHeight,
		FrameInterval:   constants.FrameUpdateInterval,
	}
}

// Scene owns the simulation state, it is only touched from the frame loop
type Scene struct {
	params  Params
	logger  *zap.Logger
	emitter effect.Emitter

	state  physics.State
	bounds physics.Bounds
	placed bool

	particles   *particle.System
	debug       bool
	annotations []overlay.Annotation
	aim         physics.Aim

	stats    render.Stats
	lastTick time.Time
}

// NewScene creates a scene, bursts go to emitter and confetti is stepped on particles
// Either may be nil
func NewScene(p Params, particles *particle.System, emitter effect.Emitter, logger *zap.Logger) *Scene {
	if logger == nil {
		logger = zap.NewNop()
	}
	if emitter == nil {
		emitter = effect.Fanout{}
	}
	return &Scene{
		params:    p,
		logger:    logger.Named("scene"),
		emitter:   emitter,
		particles: particles,
		state:     physics.State{Velocity: vmath.V2(1, 1)},
	}
}

// Measure recomputes bounds from the viewport's rendered size
// The position is kept; the next tick re-clamps it if the viewport shrank
// The first measurement centers the logo
func (s *Scene) Measure(v Viewport) {
	cols, rows := v.Size()
	s.SetBounds(physics.BoundsFromCells(cols, rows, s.params.CellWidth, s.params.CellHeight))
}

// SetBounds replaces the viewport bounds
// Live confetti is dropped on a size change, its positions belong to the old layout
func (s *Scene) SetBounds(b physics.Bounds) {
	resized := s.placed && b != s.bounds
	s.bounds = b
	if s.particles != nil {
		s.particles.SetBounds(b)
		if resized {
			s.particles.Clear()
		}
	}

	if b.Degenerate(s.params.Extent) {
		s.logger.Warn("viewport smaller than logo, positions will leave the visible range",
			zap.Float64("width", b.Width),
			zap.Float64("height", b.Height),
			zap.Float64("logo_width", s.params.Extent.Width),
			zap.Float64("logo_height", s.params.Extent.Height),
		)
	}

	if !s.placed {
		m := b.Max(s.params.Extent)
		s.state.Position = vmath.V2(vmath.Clamp(m.X/2, 0, m.X), vmath.Clamp(m.Y/2, 0, m.Y))
		s.placed = true
	}
	s.logger.Debug("bounds measured", zap.Float64("width", b.Width), zap.Float64("height", b.Height))
}

// Place sets position and velocity directly
func (s *Scene) Place(pos, vel vmath.Vec2) {
	s.state.Position = pos
	s.state.Velocity = vel
	s.placed = true
}

// Tick runs one simulation step: confetti, movement and collisions, corner bursts, debug annotations
func (s *Scene) Tick(now time.Time) {
	dt := s.params.FrameInterval
	if !s.lastTick.IsZero() {
		dt = min(max(now.Sub(s.lastTick), 0), maxStep)
	}
	s.lastTick = now

	if s.particles != nil {
		s.particles.Step(dt)
	}

	res := physics.Advance(s.state, s.bounds, s.params.Extent, s.params.Speed, now)
	s.state = res.State
	if res.Bounced() {
		s.stats.Bounces++
	}

	near := physics.NearCorners(s.state.Position, s.bounds, s.params.Extent, s.params.CornerThreshold)
	for _, b := range effect.CornerBursts(near, s.bounds, s.params.Extent, s.params.CornerBurst) {
		s.stats.CornerHits++
		s.logger.Debug("corner burst",
			zap.Stringer("corner", b.Corner),
			zap.Float64("x", s.state.Position.X),
			zap.Float64("y", s.state.Position.Y),
		)
		s.emitter.Emit(b)
	}

	if s.debug {
		s.annotations, s.aim = overlay.Diagnose(s.state, s.bounds, s.params.Extent, s.params.Overlay)
	}

	s.stats.Ticks++
}

// HandleAction applies a key action, quit is handled by the loop
func (s *Scene) HandleAction(a input.Action) {
	switch a {
	case input.ActionToggleDebug:
		s.debug = !s.debug
		if !s.debug {
			s.annotations = nil
			s.aim = physics.Aim{}
		}
		s.logger.Debug("debug overlay toggled", zap.Bool("enabled", s.debug))
	case input.ActionBurst:
		s.emitter.Emit(effect.CenterBurst(s.params.ManualBurst))
	}
}

// RenderContext returns the frame projection of current state
func (s *Scene) RenderContext() *render.RenderContext {
	ctx := &render.RenderContext{
		State:  s.state,
		Bounds: s.bounds,
		Extent: s.params.Extent,
		Debug:  s.debug,
		Stats:  s.stats,
	}
	if s.debug {
		ctx.Annotations = s.annotations
		ctx.Aim = s.aim
	}
	if s.particles != nil {
		ctx.Particles = s.particles.Particles()
	}
	return ctx
}

func (s *Scene) State() physics.State              { return s.state }
func (s *Scene) Bounds() physics.Bounds            { return s.bounds }
func (s *Scene) Annotations() []overlay.Annotation { return s.annotations }
func (s *Scene) Stats() render.Stats               { return s.stats }
