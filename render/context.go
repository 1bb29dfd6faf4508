package render

import (
	"github.com/lixenwraith/bounce/overlay"
	"github.com/lixenwraith/bounce/particle"
	"github.com/lixenwraith/bounce/physics"
)

// Stats is the counters shown on the debug status line
type Stats struct {
	Ticks      uint64
	Bounces    uint64
	CornerHits uint64
}

// RenderContext is one frame's read-only projection of scene state, passed by pointer per frame
// Slices are only valid for the duration of RenderFrame
type RenderContext struct {
	State  physics.State
	Bounds physics.Bounds
	Extent physics.Extent

	Particles   []particle.Particle
	Annotations []overlay.Annotation
	Aim         physics.Aim

	Debug bool
	Stats Stats
}
