package physics

import (
	"github.com/lixenwraith/bounce/vmath"
)

// CornerID names a viewport corner
type CornerID uint8

const (
	CornerTopLeft CornerID = iota
	CornerTopRight
	CornerBottomLeft
	CornerBottomRight
)

var cornerNames = [...]string{"top-left", "top-right", "bottom-left", "bottom-right"}

func (c CornerID) String() string {
	if int(c) < len(cornerNames) {
		return cornerNames[c]
	}
	return "unknown"
}

// Corner is a reachable top-left position of the box at a viewport corner
type Corner struct {
	ID       CornerID
	Position vmath.Vec2
}

// Corners returns the four extreme box positions: (0,0), (maxX,0), (0,maxY), (maxX,maxY)
func Corners(b Bounds, e Extent) [4]Corner {
	m := b.Max(e)
	return [4]Corner{
		{CornerTopLeft, vmath.Vec2{X: 0, Y: 0}},
		{CornerTopRight, vmath.Vec2{X: m.X, Y: 0}},
		{CornerBottomLeft, vmath.Vec2{X: 0, Y: m.Y}},
		{CornerBottomRight, vmath.Vec2{X: m.X, Y: m.Y}},
	}
}

// NearCorners returns every corner within threshold on both axes
// Multiple corners only match when the viewport is smaller than twice the threshold plus the box
func NearCorners(pos vmath.Vec2, b Bounds, e Extent, threshold float64) []Corner {
	var near []Corner
	for _, c := range Corners(b, e) {
		if vmath.Abs(pos.X-c.Position.X) <= threshold && vmath.Abs(pos.Y-c.Position.Y) <= threshold {
			near = append(near, c)
		}
	}
	return near
}
