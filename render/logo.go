package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/bounce/constants"
	"github.com/lixenwraith/bounce/particle"
)

// LogoRenderer draws the logo box, its color steps through a palette on each bounce
type LogoRenderer struct {
	palette []colorful.Color
	text    string
}

func NewLogoRenderer() *LogoRenderer {
	return &LogoRenderer{
		palette: particle.Palette(7),
		text:    constants.LogoText,
	}
}

// Color returns the logo color after the given number of bounces
func (l *LogoRenderer) Color(bounces uint64) colorful.Color {
	return l.palette[bounces%uint64(len(l.palette))]
}

func (l *LogoRenderer) Render(ctx *RenderContext, c *Canvas) {
	proj := c.Projection()
	x, y := proj.ToCellRounded(ctx.State.Position)
	w := max(int(ctx.Extent.Width/proj.CellWidth+0.5), 1)
	h := max(int(ctx.Extent.Height/proj.CellHeight+0.5), 1)

	bg := toTcell(l.Color(ctx.Stats.Bounces), 1)
	style := tcell.StyleDefault.Background(bg).Foreground(tcell.ColorBlack).Bold(true)
	c.Fill(x, y, w, h, ' ', style)

	textW := runewidth.StringWidth(l.text)
	if textW <= w {
		c.Text(x+(w-textW)/2, y+(h-1)/2, l.text, style)
	}
}
