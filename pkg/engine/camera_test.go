package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"mist/pkg/config"
)

func newTestCamera() Camera {
	return NewCamera(config.DefaultConfig().Camera)
}

func TestCameraStartPosition(t *testing.T) {
	cam := newTestCamera()
	frame := cam.FrameAt(0, 4.0/3.0)

	assert.Equal(t, Vector3{X: 7, Y: 0.5, Z: 0}, frame.Position)
}

func TestCameraLooksAtOrigin(t *testing.T) {
	cam := newTestCamera()

	for _, elapsed := range []float64{0, 1.7, 42.0} {
		frame := cam.FrameAt(elapsed, 4.0/3.0)
		ray := frame.Ray(0.5, 0.5)

		// The center ray passes through the origin
		closest := ray.At(ray.Origin.Mul(-1).Dot(ray.Direction))
		assert.InDelta(t, 0, closest.Length(), 1e-9, "t=%v", elapsed)
	}
}

func TestCameraRaysAreUnitLength(t *testing.T) {
	frame := newTestCamera().FrameAt(3.2, 4.0/3.0)

	for _, uv := range [][2]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0.5, 0.5}, {0.25, 0.75}} {
		ray := frame.Ray(uv[0], uv[1])
		assert.InDelta(t, 1.0, ray.Direction.Length(), 1e-12, "uv=%v", uv)
	}
}

func TestCameraFieldOfView(t *testing.T) {
	cam := newTestCamera()
	aspect := 4.0 / 3.0
	frame := cam.FrameAt(0, aspect)
	forward := frame.Forward

	// The edge-center rays subtend exactly the half field of view
	top := frame.Ray(0.5, 1)
	assert.InDelta(t, math.Cos(cam.FOV/2), forward.Dot(top.Direction), 1e-9)

	halfHorizontal := math.Atan(math.Tan(cam.FOV/2) * aspect)
	side := frame.Ray(1, 0.5)
	assert.InDelta(t, math.Cos(halfHorizontal), forward.Dot(side.Direction), 1e-9)
}

func TestCameraOrbitReturnsToStart(t *testing.T) {
	cam := newTestCamera()
	period := 2 * math.Pi / cam.OrbitSpeed

	start := cam.FrameAt(0, 4.0/3.0).Position
	after := cam.FrameAt(period, 4.0/3.0).Position

	assert.InDelta(t, start.X, after.X, 1e-9)
	assert.InDelta(t, start.Y, after.Y, 1e-9)
	assert.InDelta(t, start.Z, after.Z, 1e-9)
}
