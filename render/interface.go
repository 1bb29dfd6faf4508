package render

import (
	"github.com/gdamore/tcell/v2"
)

// Screen is the subset of tcell.Screen the renderer draws to
type Screen interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (int, int)
	Clear()
	Show()
	Sync()
}

// SystemRenderer draws one layer of the frame
type SystemRenderer interface {
	Render(ctx *RenderContext, c *Canvas)
}

// VisibilityToggle is optionally implemented for per-frame enable/disable
type VisibilityToggle interface {
	IsVisible(ctx *RenderContext) bool
}
