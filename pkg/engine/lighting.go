package engine

import (
	"math"

	"mist/pkg/config"
)

// Light is a single directional Blinn-Phong light with white defaults
type Light struct {
	// Direction points toward the scene, not toward the light
	Direction     Vector3
	Color         Vector3
	SpecularColor Vector3
	Ambient       float64
	Diffuse       float64
	Specular      float64
	Shininess     float64
}

// NewLight creates a light from configuration
func NewLight(cfg config.LightingConfig) Light {
	return Light{
		Direction:     Vector3{X: cfg.Direction.X, Y: cfg.Direction.Y, Z: cfg.Direction.Z},
		Color:         Vector3{X: cfg.Color.X, Y: cfg.Color.Y, Z: cfg.Color.Z},
		SpecularColor: Vector3{X: cfg.SpecularColor.X, Y: cfg.SpecularColor.Y, Z: cfg.SpecularColor.Z},
		Ambient:       cfg.Ambient,
		Diffuse:       cfg.Diffuse,
		Specular:      cfg.Specular,
		Shininess:     cfg.Shininess,
	}
}

// Shade applies Blinn-Phong shading to a classified sample color. The normal
// and view vectors need not be pre-normalized. Ambient keeps the sample's
// coverage while diffuse and specular contribute color only, so lighting can
// never add or remove opacity. A zero-length normal (interior samples where
// the occupancy gradient vanishes) degrades to pure ambient.
func (l Light) Shade(c Color, normal, view Vector3) Color {
	n := normal.Normalize()
	e := view.Normalize()
	toLight := l.Direction.Mul(-1).Normalize()
	half := toLight.Add(e).Normalize()

	nDotL := math.Max(n.Dot(toLight), 0)
	nDotH := math.Max(n.Dot(half), 0)
	spec := l.Specular * math.Pow(nDotH, l.Shininess)

	out := Color{
		R: l.Ambient*l.Color.X*c.R + l.Diffuse*l.Color.X*nDotL*c.R + spec*l.Color.X*l.SpecularColor.X,
		G: l.Ambient*l.Color.Y*c.G + l.Diffuse*l.Color.Y*nDotL*c.G + spec*l.Color.Y*l.SpecularColor.Y,
		B: l.Ambient*l.Color.Z*c.B + l.Diffuse*l.Color.Z*nDotL*c.B + spec*l.Color.Z*l.SpecularColor.Z,
		A: c.A, // ambient carries coverage, diffuse and specular add none
	}

	return out.Clamp()
}
