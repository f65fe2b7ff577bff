package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stepFieldX is 1 for x < 0 and 0 elsewhere: occupancy of a half-space
func stepFieldX(p Vector3) float64 {
	if p.X < 0 {
		return 1.0
	}
	return 0.0
}

const testVoxelWidth = 1.0 / 64.0

func newEstimator(t *testing.T, scheme GradientScheme, field ScalarField) *GradientEstimator {
	t.Helper()
	g, err := NewGradientEstimator(scheme, field, testVoxelWidth)
	require.NoError(t, err)
	return g
}

func TestParseGradientScheme(t *testing.T) {
	for _, name := range []string{"none", "central", "intermediate", "sobel", "sobel-isotropic"} {
		scheme, err := ParseGradientScheme(name)
		require.NoError(t, err)
		assert.Equal(t, name, scheme.String())
	}

	_, err := ParseGradientScheme("bilateral")
	assert.Error(t, err)
}

func TestStepFieldGradientDirection(t *testing.T) {
	// Just inside the occupied half-space, one finite difference away from
	// the boundary
	p := Vector3{X: -1e-3, Y: 0.2, Z: -0.7}

	schemes := []GradientScheme{
		GradientCentral,
		GradientIntermediate,
		GradientSobel,
		GradientSobelIsotropic,
	}

	for _, scheme := range schemes {
		g := newEstimator(t, scheme, stepFieldX)
		grad := g.Estimate(p)

		// The field decreases toward +x, so the gradient points along -x.
		// Schemes disagree on magnitude but must agree on the dominant
		// direction.
		assert.Less(t, grad.X, 0.0, "%s", scheme)
		assert.Greater(t, math.Abs(grad.X), math.Abs(grad.Y), "%s", scheme)
		assert.Greater(t, math.Abs(grad.X), math.Abs(grad.Z), "%s", scheme)
		assert.InDelta(t, 0, grad.Y, 1e-9, "%s", scheme)
		assert.InDelta(t, 0, grad.Z, 1e-9, "%s", scheme)
	}
}

func TestCentralAndIntermediateMagnitudes(t *testing.T) {
	p := Vector3{X: -1e-3}

	central := newEstimator(t, GradientCentral, stepFieldX).Estimate(p)
	forward := newEstimator(t, GradientIntermediate, stepFieldX).Estimate(p)

	// Both straddle the step: central spreads the unit jump over 2h, the
	// intermediate scheme over h
	assert.InDelta(t, -1/(2*testVoxelWidth), central.X, 1e-12)
	assert.InDelta(t, -1/testVoxelWidth, forward.X, 1e-12)
}

func TestNoneSchemeReturnsZero(t *testing.T) {
	g := newEstimator(t, GradientNone, stepFieldX)
	assert.Equal(t, Vector3{}, g.Estimate(Vector3{X: -1e-3}))
}

func TestGradientOnSceneOccupancy(t *testing.T) {
	s := newTestScene(t)
	g := newEstimator(t, GradientIntermediate, s.Occupancy)

	// Just outside the -x face of box1: the forward probe lands inside, so
	// the occupancy grows toward +x
	p := Vector3{X: -0.501, Y: -0.3, Z: -0.3}
	grad := g.Estimate(p)
	assert.Greater(t, grad.X, 0.0)
	assert.Zero(t, grad.Y)
	assert.Zero(t, grad.Z)
}

func TestEstimatorRejectsBadVoxelWidth(t *testing.T) {
	_, err := NewGradientEstimator(GradientCentral, stepFieldX, 0)
	assert.Error(t, err)
}
