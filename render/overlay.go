package render

import (
	"github.com/lixenwraith/bounce/overlay"
	"github.com/lixenwraith/bounce/vmath"
)

// Dash pattern in cells: on, then off
const (
	dashOn  = 2
	dashOff = 2
)

// OverlayRenderer draws debug annotations, visible only in debug mode
// The overlay never takes input, mouse reporting is never enabled
type OverlayRenderer struct{}

func NewOverlayRenderer() *OverlayRenderer {
	return &OverlayRenderer{}
}

func (r *OverlayRenderer) IsVisible(ctx *RenderContext) bool {
	return ctx.Debug && len(ctx.Annotations) > 0
}

func (r *OverlayRenderer) Render(ctx *RenderContext, c *Canvas) {
	proj := c.Projection()
	for _, a := range ctx.Annotations {
		switch ann := a.(type) {
		case overlay.Line:
			drawLine(c, proj, ann)
		case overlay.Label:
			x, y := proj.ToCell(ann.Position)
			c.Text(x, y, ann.Text, overlayStyle(ann.Color))
		}
	}
}

// drawLine rasterizes with Bresenham in cell space, dashed lines skip cells by pattern
func drawLine(c *Canvas, proj Projection, l overlay.Line) {
	x0, y0 := proj.ToCell(l.From)
	x1, y1 := proj.ToCell(l.To)
	glyph := slopeGlyph(x1-x0, y1-y0)
	style := overlayStyle(l.Color)

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy

	for step := 0; ; step++ {
		if l.Stroke != overlay.StrokeDashed || step%(dashOn+dashOff) < dashOn {
			c.Set(x0, y0, glyph, style)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// slopeGlyph picks a line character for a cell-space direction
func slopeGlyph(dx, dy int) rune {
	ax, ay := abs(dx), abs(dy)
	switch {
	case ax == 0 && ay == 0:
		return '+'
	case ay*2 < ax:
		return '-'
	case ax*2 < ay:
		return '|'
	case vmath.Sign(float64(dx)) == vmath.Sign(float64(dy)):
		return '\\'
	default:
		return '/'
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
