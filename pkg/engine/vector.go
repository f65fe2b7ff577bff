package engine

import (
	"math"

	"mist/internal/util"
)

// Vector3 represents a 3D vector
type Vector3 struct {
	X, Y, Z float64
}

// Add adds two vectors
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
	}
}

// Sub subtracts a vector from another
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{
		X: v.X - other.X,
		Y: v.Y - other.Y,
		Z: v.Z - other.Z,
	}
}

// Mul multiplies a vector by a scalar
func (v Vector3) Mul(scalar float64) Vector3 {
	return Vector3{
		X: v.X * scalar,
		Y: v.Y * scalar,
		Z: v.Z * scalar,
	}
}

// Dot calculates the dot product of two vectors
func (v Vector3) Dot(other Vector3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross calculates the cross product of two vectors
func (v Vector3) Cross(other Vector3) Vector3 {
	return Vector3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the length of the vector
func (v Vector3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns a normalized (unit) vector. The zero vector is returned
// unchanged so degenerate gradients never produce NaN components.
func (v Vector3) Normalize() Vector3 {
	len := v.Length()
	if len == 0 {
		return v
	}
	return Vector3{
		X: v.X / len,
		Y: v.Y / len,
		Z: v.Z / len,
	}
}

// Color represents an RGBA color with float channels
type Color struct {
	R, G, B, A float64
}

// Add adds two colors componentwise
func (c Color) Add(other Color) Color {
	return Color{
		R: c.R + other.R,
		G: c.G + other.G,
		B: c.B + other.B,
		A: c.A + other.A,
	}
}

// Scale multiplies all four channels by a scalar
func (c Color) Scale(s float64) Color {
	return Color{R: c.R * s, G: c.G * s, B: c.B * s, A: c.A * s}
}

// Premultiply scales the RGB channels by the color's own alpha
func (c Color) Premultiply() Color {
	return Color{R: c.R * c.A, G: c.G * c.A, B: c.B * c.A, A: c.A}
}

// Clamp restricts every channel to [0,1]
func (c Color) Clamp() Color {
	return Color{
		R: util.Clamp(c.R, 0, 1),
		G: util.Clamp(c.G, 0, 1),
		B: util.Clamp(c.B, 0, 1),
		A: util.Clamp(c.A, 0, 1),
	}
}
