package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/bounce/overlay"
)

// StatusRenderer draws the debug status line on the bottom row
type StatusRenderer struct{}

func NewStatusRenderer() *StatusRenderer {
	return &StatusRenderer{}
}

func (r *StatusRenderer) IsVisible(ctx *RenderContext) bool {
	return ctx.Debug
}

func (r *StatusRenderer) Render(ctx *RenderContext, c *Canvas) {
	_, h := c.Size()
	if h <= 0 {
		return
	}

	s := ctx.State
	line := fmt.Sprintf(" pos %.2f,%.2f vel %+.0f,%+.0f bounces %d corners %d tick %d aim %s %s ",
		s.Position.X, s.Position.Y,
		s.Velocity.X, s.Velocity.Y,
		ctx.Stats.Bounces, ctx.Stats.CornerHits, ctx.Stats.Ticks,
		ctx.Aim.Corner, overlay.FormatAngle(ctx.Aim.AngleDeg),
	)
	style := tcell.StyleDefault.Foreground(colorStatus).Reverse(true)
	c.Text(0, h-1, line, style)
}
