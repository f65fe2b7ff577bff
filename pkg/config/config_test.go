package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 640, cfg.Renderer.Width)
	assert.Equal(t, 480, cfg.Renderer.Height)
	assert.Equal(t, 256, cfg.Renderer.SampleCount)
	assert.Equal(t, "intermediate", cfg.Renderer.GradientScheme)
	assert.Equal(t, 1.0/64.0, cfg.Renderer.VoxelWidth)

	assert.Equal(t, 7.0, cfg.Camera.OrbitRadius)
	assert.Equal(t, 45.0, cfg.Camera.FOV)

	assert.Equal(t, 50.0, cfg.Lighting.Shininess)
	assert.Equal(t, Color{R: 1, G: 1, B: 1, A: 1}, cfg.Renderer.Background)

	// The step size implied by the defaults equals the voxel width, so one
	// march sample advances exactly one finite-difference cell
	extent := cfg.Scene.BoundsMax.X - cfg.Scene.BoundsMin.X
	assert.Equal(t, cfg.Renderer.VoxelWidth, extent/float64(cfg.Renderer.SampleCount))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.Renderer.Width = 320
	cfg.Renderer.GradientScheme = "sobel"
	cfg.Scene.Sphere.Radius = 0.4
	cfg.Viewer.VSync = false

	require.NoError(t, SaveConfig(cfg, path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadConfigMissingFileFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.yaml")

	cfg, err := LoadConfig(path)
	assert.Error(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("renderer: [not a map"), 0644))

	cfg, err := LoadConfig(path)
	assert.Error(t, err)
	assert.NotNil(t, cfg)
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("renderer:\n  width: 128\n"), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 128, cfg.Renderer.Width)
	assert.Equal(t, 256, cfg.Renderer.SampleCount, "unset keys keep their defaults")
}
