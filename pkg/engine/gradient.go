package engine

import (
	"fmt"
	"math"
	"strings"
)

// GradientScheme selects the finite-difference scheme used to estimate the
// local direction of increasing occupancy
type GradientScheme int

// Supported gradient schemes
const (
	GradientNone GradientScheme = iota
	GradientCentral
	GradientIntermediate
	GradientSobel
	GradientSobelIsotropic
)

// ParseGradientScheme parses a scheme name from configuration
func ParseGradientScheme(name string) (GradientScheme, error) {
	switch strings.ToLower(name) {
	case "none":
		return GradientNone, nil
	case "central":
		return GradientCentral, nil
	case "intermediate", "forward":
		return GradientIntermediate, nil
	case "sobel":
		return GradientSobel, nil
	case "sobel-isotropic":
		return GradientSobelIsotropic, nil
	default:
		return GradientNone, fmt.Errorf("unknown gradient scheme %q", name)
	}
}

// String returns the configuration name of the scheme
func (s GradientScheme) String() string {
	switch s {
	case GradientCentral:
		return "central"
	case GradientIntermediate:
		return "intermediate"
	case GradientSobel:
		return "sobel"
	case GradientSobelIsotropic:
		return "sobel-isotropic"
	default:
		return "none"
	}
}

// ScalarField is a scalar function of a world-space position
type ScalarField func(Vector3) float64

// GradientEstimator differentiates a scalar field with a scheme fixed at
// construction time. The estimate is never normalized here; its sign points
// toward increasing field values and the lighting step negates and normalizes
// it into a surface normal.
type GradientEstimator struct {
	scheme   GradientScheme
	h        float64
	estimate func(Vector3) Vector3
}

// NewGradientEstimator builds an estimator over field with voxel width h.
// The scheme is resolved to a concrete evaluation function once, so the march
// loop carries no per-sample scheme branching.
func NewGradientEstimator(scheme GradientScheme, field ScalarField, h float64) (*GradientEstimator, error) {
	if h <= 0 {
		return nil, fmt.Errorf("voxel width must be positive, got %g", h)
	}

	g := &GradientEstimator{scheme: scheme, h: h}

	switch scheme {
	case GradientNone:
		g.estimate = func(Vector3) Vector3 { return Vector3{} }
	case GradientCentral:
		g.estimate = func(p Vector3) Vector3 { return centralDifference(field, p, h) }
	case GradientIntermediate:
		g.estimate = func(p Vector3) Vector3 { return intermediateDifference(field, p, h) }
	case GradientSobel:
		g.estimate = func(p Vector3) Vector3 { return sobelDifference(field, p, h, false) }
	case GradientSobelIsotropic:
		g.estimate = func(p Vector3) Vector3 { return sobelDifference(field, p, h, true) }
	default:
		return nil, fmt.Errorf("unknown gradient scheme %d", scheme)
	}

	return g, nil
}

// Scheme returns the active scheme
func (g *GradientEstimator) Scheme() GradientScheme {
	return g.scheme
}

// Estimate returns the unnormalized gradient of the field at p
func (g *GradientEstimator) Estimate(p Vector3) Vector3 {
	return g.estimate(p)
}

func centralDifference(field ScalarField, p Vector3, h float64) Vector3 {
	return Vector3{
		X: (field(Vector3{p.X + h, p.Y, p.Z}) - field(Vector3{p.X - h, p.Y, p.Z})) / (2 * h),
		Y: (field(Vector3{p.X, p.Y + h, p.Z}) - field(Vector3{p.X, p.Y - h, p.Z})) / (2 * h),
		Z: (field(Vector3{p.X, p.Y, p.Z + h}) - field(Vector3{p.X, p.Y, p.Z - h})) / (2 * h),
	}
}

func intermediateDifference(field ScalarField, p Vector3, h float64) Vector3 {
	center := field(p)
	return Vector3{
		X: (field(Vector3{p.X + h, p.Y, p.Z}) - center) / h,
		Y: (field(Vector3{p.X, p.Y + h, p.Z}) - center) / h,
		Z: (field(Vector3{p.X, p.Y, p.Z + h}) - center) / h,
	}
}

// sobelDifference applies a separable 3x3x3 Sobel operator. The isotropic
// variant smooths with {1, sqrt2, 1} and normalizes by h*(2+sqrt2)^2; the
// classic variant uses integer weights {1, 2, 1} and normalizes by 16h.
func sobelDifference(field ScalarField, p Vector3, h float64, isotropic bool) Vector3 {
	smooth := [3]float64{1, 2, 1}
	norm := 16.0 * h
	if isotropic {
		smooth = [3]float64{1, math.Sqrt2, 1}
		norm = (2 + math.Sqrt2) * (2 + math.Sqrt2) * h // ~11.656854*h
	}
	deriv := [3]float64{-1, 0, 1}

	var grad Vector3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				if i == 1 && j == 1 && k == 1 {
					continue
				}
				offset := Vector3{
					X: float64(i-1) * h,
					Y: float64(j-1) * h,
					Z: float64(k-1) * h,
				}
				v := field(p.Add(offset))
				grad.X += deriv[i] * smooth[j] * smooth[k] * v
				grad.Y += smooth[i] * deriv[j] * smooth[k] * v
				grad.Z += smooth[i] * smooth[j] * deriv[k] * v
			}
		}
	}

	return grad.Mul(1 / norm)
}
