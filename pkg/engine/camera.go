package engine

import (
	"math"

	"mist/pkg/config"
)

// Camera describes the orbital camera. It is a pure function of time: every
// frame derives its full state from the elapsed seconds, so nothing persists
// between frames.
type Camera struct {
	OrbitRadius float64
	OrbitHeight float64
	OrbitSpeed  float64
	FOV         float64 // vertical field of view in radians
	ZNear       float64
}

// CameraFrame is the per-frame camera state: the eye position and the four
// corners of the near plane, stored as a corner plus two spanning vectors so
// per-pixel targets are a bilinear interpolation.
type CameraFrame struct {
	Position   Vector3
	Forward    Vector3
	lowerLeft  Vector3 // world-space position of the (u=0, v=0) near-plane corner
	horizontal Vector3 // spans the near plane along the camera right axis
	vertical   Vector3 // spans the near plane along the camera up axis
}

// NewCamera creates a camera from configuration
func NewCamera(cfg config.CameraConfig) Camera {
	return Camera{
		OrbitRadius: cfg.OrbitRadius,
		OrbitHeight: cfg.OrbitHeight,
		OrbitSpeed:  cfg.OrbitSpeed,
		FOV:         cfg.FOV * (math.Pi / 180.0),
		ZNear:       cfg.ZNear,
	}
}

// FrameAt computes the camera state for elapsed time t and the given aspect
// ratio. The eye circles the origin in the XZ plane at a fixed height, always
// looking at the origin.
func (c Camera) FrameAt(t, aspect float64) CameraFrame {
	pos := Vector3{
		X: c.OrbitRadius * math.Cos(c.OrbitSpeed*t),
		Y: c.OrbitHeight,
		Z: c.OrbitRadius * math.Sin(c.OrbitSpeed*t),
	}

	dir := pos.Mul(-1).Normalize()
	worldUp := Vector3{X: 0, Y: 1, Z: 0}
	right := dir.Cross(worldUp).Normalize()
	up := right.Cross(dir).Normalize() // re-orthogonalized

	// Horizontal FOV follows from the vertical FOV and the aspect ratio:
	// tan(fovH/2) = tan(fovV/2) * aspect
	halfH := math.Tan(c.FOV/2) * c.ZNear
	halfW := halfH * aspect

	center := pos.Add(dir.Mul(c.ZNear))

	return CameraFrame{
		Position:   pos,
		Forward:    dir,
		lowerLeft:  center.Sub(right.Mul(halfW)).Sub(up.Mul(halfH)),
		horizontal: right.Mul(2 * halfW),
		vertical:   up.Mul(2 * halfH),
	}
}

// Ray returns the world-space ray through the normalized pixel coordinate
// (u, v), both in [0,1] with v pointing up. The direction is always unit
// length since the near plane never touches the eye.
func (f CameraFrame) Ray(u, v float64) Ray {
	target := f.lowerLeft.Add(f.horizontal.Mul(u)).Add(f.vertical.Mul(v))

	return Ray{
		Origin:    f.Position,
		Direction: target.Sub(f.Position).Normalize(),
	}
}
