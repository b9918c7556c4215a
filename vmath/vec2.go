package vmath

import (
	"math"
)

// Vec2 is a float64 2D vector for chain geometry
// Float path is used throughout; solver hot loops stay allocation-free
type Vec2 struct {
	X, Y float64
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

func V2MagSq(v Vec2) float64 {
	return v.X*v.X + v.Y*v.Y
}

func V2Mag(v Vec2) float64 {
	return math.Sqrt(V2MagSq(v))
}

// V2Normalize returns the unit vector, zero-safe
func V2Normalize(v Vec2) Vec2 {
	mag := V2Mag(v)
	if mag == 0 {
		return Vec2{}
	}
	inv := 1.0 / mag
	return Vec2{v.X * inv, v.Y * inv}
}

// V2Dist returns the Euclidean distance between two points
func V2Dist(a, b Vec2) float64 {
	return V2Mag(V2Sub(b, a))
}

// V2Lerp interpolates from a to b; t outside [0,1] extrapolates
func V2Lerp(a, b Vec2, t float64) Vec2 {
	return Vec2{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}

// V2Angle returns the angle in radians of the direction from a to b
func V2Angle(a, b Vec2) float64 {
	return math.Atan2(b.Y-a.Y, b.X-a.X)
}

// V2FromAngle returns a vector of the given magnitude at the given angle
func V2FromAngle(angle, mag float64) Vec2 {
	return Vec2{
		X: math.Cos(angle) * mag,
		Y: math.Sin(angle) * mag,
	}
}

// V2Perpendicular returns the vector rotated 90° counter-clockwise
func V2Perpendicular(v Vec2) Vec2 {
	return Vec2{-v.Y, v.X}
}

// Clamp01 limits v to the closed unit interval
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
