package engine

import (
	"fmt"
	"math"

	"mist/pkg/config"
)

// classifyEps avoids float-equality artifacts at the thresholds of the
// transfer function when overlapping densities are summed.
const classifyEps = 1e-7

// Box is an axis-aligned box primitive with a uniform half-width on all axes
type Box struct {
	Center    Vector3
	HalfWidth float64
	Density   float64
}

// Sphere is a sphere primitive
type Sphere struct {
	Center  Vector3
	Radius  float64
	Density float64
}

// Scene holds the three analytic density primitives and the bounding box that
// clips the marching range. It is immutable after construction and safe to
// share across worker goroutines.
type Scene struct {
	Box1   Box
	Box2   Box
	Sphere Sphere

	BoundsMin Vector3
	BoundsMax Vector3
}

// NewScene builds a scene from configuration
func NewScene(cfg config.SceneConfig) (*Scene, error) {
	s := &Scene{
		Box1: Box{
			Center:    Vector3{X: cfg.Box1.Center.X, Y: cfg.Box1.Center.Y, Z: cfg.Box1.Center.Z},
			HalfWidth: cfg.Box1.HalfWidth,
			Density:   cfg.Box1.Density,
		},
		Box2: Box{
			Center:    Vector3{X: cfg.Box2.Center.X, Y: cfg.Box2.Center.Y, Z: cfg.Box2.Center.Z},
			HalfWidth: cfg.Box2.HalfWidth,
			Density:   cfg.Box2.Density,
		},
		Sphere: Sphere{
			Center:  Vector3{X: cfg.Sphere.Center.X, Y: cfg.Sphere.Center.Y, Z: cfg.Sphere.Center.Z},
			Radius:  cfg.Sphere.Radius,
			Density: cfg.Sphere.Density,
		},
		BoundsMin: Vector3{X: cfg.BoundsMin.X, Y: cfg.BoundsMin.Y, Z: cfg.BoundsMin.Z},
		BoundsMax: Vector3{X: cfg.BoundsMax.X, Y: cfg.BoundsMax.Y, Z: cfg.BoundsMax.Z},
	}

	if s.BoundsMin.X >= s.BoundsMax.X || s.BoundsMin.Y >= s.BoundsMax.Y || s.BoundsMin.Z >= s.BoundsMax.Z {
		return nil, fmt.Errorf("scene bounds are inverted: min %v, max %v", s.BoundsMin, s.BoundsMax)
	}

	return s, nil
}

// PointInSphere reports whether p lies inside or on the sphere
func PointInSphere(p, center Vector3, radius float64) bool {
	return p.Sub(center).Length() <= radius
}

// PointInBox reports whether p lies strictly inside the box
func PointInBox(p, center Vector3, halfWidth float64) bool {
	return math.Abs(p.X-center.X) < halfWidth &&
		math.Abs(p.Y-center.Y) < halfWidth &&
		math.Abs(p.Z-center.Z) < halfWidth
}

// Density returns the summed density of every primitive containing p.
// Overlapping primitives stack, so the result distinguishes single, double
// and triple overlap regions.
func (s *Scene) Density(p Vector3) float64 {
	d := 0.0
	if PointInBox(p, s.Box1.Center, s.Box1.HalfWidth) {
		d += s.Box1.Density
	}
	if PointInBox(p, s.Box2.Center, s.Box2.HalfWidth) {
		d += s.Box2.Density
	}
	if PointInSphere(p, s.Sphere.Center, s.Sphere.Radius) {
		d += s.Sphere.Density
	}
	return d
}

// Occupancy returns 1 if p is inside any primitive, else 0. The gradient
// estimator differentiates this binary union field, not the weighted density.
func (s *Scene) Occupancy(p Vector3) float64 {
	if PointInBox(p, s.Box1.Center, s.Box1.HalfWidth) ||
		PointInBox(p, s.Box2.Center, s.Box2.HalfWidth) ||
		PointInSphere(p, s.Sphere.Center, s.Sphere.Radius) {
		return 1.0
	}
	return 0.0
}

// Classify maps a summed density to an RGBA color. The threshold order
// resolves each possible overlap combination to a distinct color.
func (s *Scene) Classify(value float64) Color {
	s1 := s.Box1.Density
	s2 := s.Box2.Density

	switch {
	case value <= classifyEps:
		return Color{}
	case value <= s1+classifyEps:
		return Color{R: 0, G: 0, B: 1, A: 1}
	case value <= s2+classifyEps:
		return Color{R: 0, G: 1, B: 0, A: 1}
	case value <= s1+s2+classifyEps:
		return Color{R: 1, G: 0, B: 0, A: 1}
	default:
		return Color{R: 0, G: 0, B: 0, A: 1}
	}
}
