package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/bounce/overlay"
)

// Overlay colors
var (
	colorTarget  = tcell.NewRGBColor(255, 200, 0)
	colorAligned = tcell.NewRGBColor(0, 255, 120)
	colorRay     = tcell.NewRGBColor(0, 200, 255)
	colorStatus  = tcell.NewRGBColor(200, 200, 200)
)

func overlayStyle(c overlay.Color) tcell.Style {
	switch c {
	case overlay.ColorTarget:
		return tcell.StyleDefault.Foreground(colorTarget)
	case overlay.ColorAligned:
		return tcell.StyleDefault.Foreground(colorAligned).Bold(true)
	case overlay.ColorRay:
		return tcell.StyleDefault.Foreground(colorRay)
	default:
		return tcell.StyleDefault
	}
}

// toTcell converts a colorful color, scaled by brightness in [0, 1]
func toTcell(c colorful.Color, brightness float64) tcell.Color {
	dimmed := colorful.Color{R: c.R * brightness, G: c.G * brightness, B: c.B * brightness}.Clamped()
	r, g, b := dimmed.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
