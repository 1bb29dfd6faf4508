package overlay

import (
	"fmt"

	"github.com/lixenwraith/bounce/physics"
	"github.com/lixenwraith/bounce/vmath"
)

// Params tunes the diagnostic geometry
type Params struct {
	ConeDeg   float64 // Highlight when aim angle is below this
	RayLength float64 // Length of the velocity ray in virtual pixels
}

// Diagnose returns the annotations for the current state:
// a dashed line from the leading vertex to the target corner, the angle label, and the velocity ray
func Diagnose(s physics.State, b physics.Bounds, e physics.Extent, p Params) ([]Annotation, physics.Aim) {
	aim := physics.ComputeAim(s, b, e, p.ConeDeg)

	color := ColorTarget
	if aim.Aligned {
		color = ColorAligned
	}

	mid := vmath.V2Scale(vmath.V2Add(aim.Vertex, aim.Target), 0.5)
	rayEnd := vmath.V2Add(aim.Vertex, vmath.V2Scale(aim.Direction, p.RayLength))

	return []Annotation{
		Line{From: aim.Vertex, To: aim.Target, Color: color, Stroke: StrokeDashed},
		Label{Position: mid, Text: FormatAngle(aim.AngleDeg), Color: color},
		Line{From: aim.Vertex, To: rayEnd, Color: ColorRay, Stroke: StrokeSolid},
	}, aim
}

// FormatAngle renders degrees rounded to one decimal place
func FormatAngle(deg float64) string {
	return fmt.Sprintf("%.1f°", deg)
}
