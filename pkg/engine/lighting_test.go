package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mist/pkg/config"
)

func newTestLight() Light {
	return NewLight(config.DefaultConfig().Lighting)
}

func TestShadeFullyLitSurface(t *testing.T) {
	l := newTestLight()
	toLight := l.Direction.Mul(-1)

	// Normal and view both face the light: full diffuse, full specular
	red := Color{R: 1, A: 1}
	out := l.Shade(red, toLight, toLight)

	assert.Equal(t, 1.0, out.R, "ambient + diffuse saturate the lit channel")
	assert.InDelta(t, l.Specular, out.G, 1e-9, "unlit channels carry only the highlight")
	assert.InDelta(t, l.Specular, out.B, 1e-9)
	assert.Equal(t, 1.0, out.A)
}

func TestShadeZeroNormalIsPureAmbient(t *testing.T) {
	l := newTestLight()

	red := Color{R: 1, A: 1}
	view := Vector3{X: 1, Y: 1, Z: 0}
	out := l.Shade(red, Vector3{}, view)

	assert.Equal(t, Color{R: l.Ambient, A: 1}, out)
}

func TestShadeBackfacingNormalHasNoDiffuse(t *testing.T) {
	l := newTestLight()

	// Normal along the light direction: n.l clamps to zero
	blue := Color{B: 1, A: 1}
	out := l.Shade(blue, l.Direction, l.Direction.Mul(-1))

	assert.InDelta(t, l.Ambient, out.B, 1e-9)
	assert.InDelta(t, 0, out.R, 1e-9)
}

func TestShadePreservesCoverage(t *testing.T) {
	l := newTestLight()
	n := Vector3{Y: 1}
	view := Vector3{Y: 1}

	for _, alpha := range []float64{0, 0.25, 1} {
		out := l.Shade(Color{R: 0.5, G: 0.5, B: 0.5, A: alpha}, n, view)
		assert.Equal(t, alpha, out.A)
	}
}

func TestShadeClampsChannels(t *testing.T) {
	l := newTestLight()
	l.Ambient = 10 // exaggerated to force overflow
	toLight := l.Direction.Mul(-1)

	out := l.Shade(Color{R: 1, G: 1, B: 1, A: 1}, toLight, toLight)
	assert.Equal(t, Color{R: 1, G: 1, B: 1, A: 1}, out)
}
