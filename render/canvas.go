package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/bounce/vmath"
)

// Projection maps virtual pixels to terminal cells
type Projection struct {
	CellWidth  float64
	CellHeight float64
}

// ToCell returns the cell containing p
func (p Projection) ToCell(v vmath.Vec2) (int, int) {
	return int(math.Floor(v.X / p.CellWidth)), int(math.Floor(v.Y / p.CellHeight))
}

// ToCellRounded returns the nearest cell corner to p, used for box edges
func (p Projection) ToCellRounded(v vmath.Vec2) (int, int) {
	return int(math.Round(v.X / p.CellWidth)), int(math.Round(v.Y / p.CellHeight))
}

// Canvas is a clipped drawing surface over a Screen
type Canvas struct {
	screen Screen
	proj   Projection
}

// NewCanvas wraps screen
func NewCanvas(screen Screen, proj Projection) *Canvas {
	return &Canvas{screen: screen, proj: proj}
}

// Projection returns the cell metrics
func (c *Canvas) Projection() Projection {
	return c.proj
}

// Size returns the screen size in cells
func (c *Canvas) Size() (int, int) {
	return c.screen.Size()
}

// Set writes one cell, silently clipped
func (c *Canvas) Set(x, y int, r rune, style tcell.Style) {
	w, h := c.screen.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	c.screen.SetContent(x, y, r, nil, style)
}

// Text writes s starting at (x, y), returns the column after the last rune
func (c *Canvas) Text(x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		c.Set(x, y, r, style)
		x += max(runewidth.RuneWidth(r), 1)
	}
	return x
}

// Fill paints a rectangle of cells
func (c *Canvas) Fill(x, y, w, h int, r rune, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			c.Set(col, row, r, style)
		}
	}
}
