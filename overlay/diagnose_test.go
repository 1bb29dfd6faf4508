package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/bounce/physics"
	"github.com/lixenwraith/bounce/vmath"
)

var (
	extent = physics.Extent{Width: 128, Height: 64}
	bounds = physics.Bounds{Width: 728, Height: 464}
	params = Params{ConeDeg: 8, RayLength: 300}
)

func TestDiagnoseAligned(t *testing.T) {
	s := physics.State{Position: vmath.V2(200, 0), Velocity: vmath.V2(1, 1)}

	anns, aim := Diagnose(s, bounds, extent, params)
	require.Len(t, anns, 3)
	assert.True(t, aim.Aligned)

	target, ok := anns[0].(Line)
	require.True(t, ok)
	assert.Equal(t, vmath.V2(328, 64), target.From)
	assert.Equal(t, vmath.V2(728, 464), target.To)
	assert.Equal(t, ColorAligned, target.Color)
	assert.Equal(t, StrokeDashed, target.Stroke)

	label, ok := anns[1].(Label)
	require.True(t, ok)
	assert.Equal(t, "0.0°", label.Text)
	assert.Equal(t, ColorAligned, label.Color)
	assert.Equal(t, vmath.V2(528, 264), label.Position)

	ray, ok := anns[2].(Line)
	require.True(t, ok)
	assert.Equal(t, ColorRay, ray.Color)
	assert.Equal(t, StrokeSolid, ray.Stroke)
	assert.InDelta(t, 300, vmath.V2Mag(vmath.V2Sub(ray.To, ray.From)), 1e-9)
}

func TestDiagnoseNotAligned(t *testing.T) {
	s := physics.State{Position: vmath.V2(0, 0), Velocity: vmath.V2(1, 1)}

	anns, aim := Diagnose(s, bounds, extent, params)
	assert.False(t, aim.Aligned)
	assert.Equal(t, ColorTarget, anns[0].(Line).Color)
	assert.Equal(t, "11.3°", anns[1].(Label).Text)
	assert.Equal(t, ColorRay, anns[2].(Line).Color)
}

func TestDiagnoseIsPure(t *testing.T) {
	s := physics.State{Position: vmath.V2(42, 17), Velocity: vmath.V2(-1, 1)}

	a, _ := Diagnose(s, bounds, extent, params)
	b, _ := Diagnose(s, bounds, extent, params)
	assert.Equal(t, a, b)
	assert.Equal(t, vmath.V2(42, 17), s.Position)
}

func TestFormatAngle(t *testing.T) {
	assert.Equal(t, "90.0°", FormatAngle(90))
	assert.Equal(t, "7.9°", FormatAngle(7.94))
	assert.Equal(t, "8.0°", FormatAngle(7.96))
}
