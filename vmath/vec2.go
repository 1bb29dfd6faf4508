package vmath

import (
	"math"
)

// Vec2 is a float64 2D vector in virtual pixels
type Vec2 struct {
	X, Y float64
}

func V2(x, y float64) Vec2 {
	return Vec2{x, y}
}

func V2Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func V2Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func V2Scale(v Vec2, s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func V2Dot(a, b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

func V2MagSq(v Vec2) float64 {
	return v.X*v.X + v.Y*v.Y
}

func V2Mag(v Vec2) float64 {
	return math.Sqrt(V2MagSq(v))
}

// V2Normalize returns the unit vector, zero vector for zero-length input
func V2Normalize(v Vec2) Vec2 {
	mag := V2Mag(v)
	if mag == 0 {
		return Vec2{}
	}
	inv := 1.0 / mag
	return Vec2{v.X * inv, v.Y * inv}
}

// V2AngleDeg returns the angle between a and b in degrees, range [0, 180]
// Dot product is clamped to [-1, 1] so float drift never leaves acos domain
// Zero-length input normalizes to zero, yielding 90
func V2AngleDeg(a, b Vec2) float64 {
	dot := V2Dot(V2Normalize(a), V2Normalize(b))
	dot = Clamp(dot, -1, 1)
	return math.Acos(dot) * 180 / math.Pi
}

// V2FromAngle returns the unit vector for an angle in degrees
// Screen space: +Y is down, 90 points straight up
func V2FromAngle(deg float64) Vec2 {
	rad := deg * math.Pi / 180
	return Vec2{math.Cos(rad), -math.Sin(rad)}
}
