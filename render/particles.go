package render

import (
	"github.com/gdamore/tcell/v2"
)

// ParticleRenderer draws confetti, fading each piece toward black as it ages
type ParticleRenderer struct{}

func NewParticleRenderer() *ParticleRenderer {
	return &ParticleRenderer{}
}

func (r *ParticleRenderer) Render(ctx *RenderContext, c *Canvas) {
	proj := c.Projection()
	for i := range ctx.Particles {
		p := &ctx.Particles[i]
		x, y := proj.ToCell(p.Pos)
		style := tcell.StyleDefault.Foreground(toTcell(p.Color, 0.3+0.7*p.Fade()))
		c.Set(x, y, p.Glyph, style)
	}
}
