package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config represents the main configuration
type Config struct {
	Renderer RendererConfig `yaml:"renderer"`
	Scene    SceneConfig    `yaml:"scene"`
	Camera   CameraConfig   `yaml:"camera"`
	Lighting LightingConfig `yaml:"lighting"`
	Viewer   ViewerConfig   `yaml:"viewer"`
	Export   ExportConfig   `yaml:"export"`
}

// Vec3 is a 3-component vector as it appears in configuration files
type Vec3 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// Color is an RGBA color as it appears in configuration files
type Color struct {
	R float64 `yaml:"r"`
	G float64 `yaml:"g"`
	B float64 `yaml:"b"`
	A float64 `yaml:"a"`
}

// RendererConfig contains the raymarcher configuration
type RendererConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// SampleCount bounds the number of steps taken along each ray
	SampleCount int `yaml:"sample_count"`
	// NumThreads is the size of the row worker pool; 0 means autodetect
	NumThreads int `yaml:"num_threads"`
	// GradientScheme selects the finite-difference scheme used for shading
	// normals: none, central, intermediate, sobel, sobel-isotropic
	GradientScheme string `yaml:"gradient_scheme"`
	// VoxelWidth is the finite-difference offset h
	VoxelWidth float64 `yaml:"voxel_width"`
	// Background is returned for rays that miss the scene bounds
	Background Color `yaml:"background"`
}

// BoxConfig describes an axis-aligned box primitive with a uniform half-width
type BoxConfig struct {
	Center    Vec3    `yaml:"center"`
	HalfWidth float64 `yaml:"half_width"`
	Density   float64 `yaml:"density"`
}

// SphereConfig describes a sphere primitive
type SphereConfig struct {
	Center  Vec3    `yaml:"center"`
	Radius  float64 `yaml:"radius"`
	Density float64 `yaml:"density"`
}

// SceneConfig contains the scene geometry. The three primitives never move;
// the camera orbit is the only time-varying input.
type SceneConfig struct {
	Box1   BoxConfig    `yaml:"box1"`
	Box2   BoxConfig    `yaml:"box2"`
	Sphere SphereConfig `yaml:"sphere"`
	// BoundsMin/BoundsMax clip the marching range; every primitive must lie
	// inside them for correct rendering
	BoundsMin Vec3 `yaml:"bounds_min"`
	BoundsMax Vec3 `yaml:"bounds_max"`
}

// CameraConfig contains the orbital camera configuration
type CameraConfig struct {
	OrbitRadius float64 `yaml:"orbit_radius"`
	OrbitHeight float64 `yaml:"orbit_height"`
	OrbitSpeed  float64 `yaml:"orbit_speed"`
	// FOV is the vertical field of view in degrees
	FOV   float64 `yaml:"fov"`
	ZNear float64 `yaml:"znear"`
}

// LightingConfig contains the Blinn-Phong lighting configuration
type LightingConfig struct {
	// Direction points toward the scene
	Direction     Vec3    `yaml:"direction"`
	Color         Vec3    `yaml:"color"`
	SpecularColor Vec3    `yaml:"specular_color"`
	Ambient       float64 `yaml:"ambient"`
	Diffuse       float64 `yaml:"diffuse"`
	Specular      float64 `yaml:"specular"`
	Shininess     float64 `yaml:"shininess"`
}

// ViewerConfig contains the interactive viewer configuration
type ViewerConfig struct {
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	VSync         bool    `yaml:"vsync"`
	FrameRate     int     `yaml:"framerate"`
	Gamma         float64 `yaml:"gamma"`
	Vignette      float64 `yaml:"vignette"`
	ScreenshotDir string  `yaml:"screenshot_dir"`
}

// ExportConfig contains the offline frame export configuration
type ExportConfig struct {
	Format    string  `yaml:"format"` // exr, png
	OutputDir string  `yaml:"output_dir"`
	Frames    int     `yaml:"frames"`
	StartTime float64 `yaml:"start_time"`
	TimeStep  float64 `yaml:"time_step"`
}

// DefaultConfig creates a default configuration
func DefaultConfig() *Config {
	return &Config{
		Renderer: RendererConfig{
			Width:          640,
			Height:         480,
			SampleCount:    256,
			NumThreads:     0, // autodetect
			GradientScheme: "intermediate",
			VoxelWidth:     1.0 / 64.0,
			Background:     Color{R: 1, G: 1, B: 1, A: 1},
		},
		Scene: SceneConfig{
			Box1: BoxConfig{
				Center:    Vec3{X: 0, Y: 0, Z: 0},
				HalfWidth: 0.5,
				Density:   0.015,
			},
			Box2: BoxConfig{
				Center:    Vec3{X: 0.05, Y: 0.15, Z: 0.05},
				HalfWidth: 0.45,
				Density:   0.02,
			},
			Sphere: SphereConfig{
				Center:  Vec3{X: 0.2, Y: 0, Z: 0},
				Radius:  0.3,
				Density: 0.03,
			},
			BoundsMin: Vec3{X: -2, Y: -2, Z: -2},
			BoundsMax: Vec3{X: 2, Y: 2, Z: 2},
		},
		Camera: CameraConfig{
			OrbitRadius: 7.0,
			OrbitHeight: 0.5,
			OrbitSpeed:  0.5,
			FOV:         45.0,
			ZNear:       0.1,
		},
		Lighting: LightingConfig{
			Direction:     Vec3{X: 1, Y: -1, Z: -1},
			Color:         Vec3{X: 1, Y: 1, Z: 1},
			SpecularColor: Vec3{X: 1, Y: 1, Z: 1},
			Ambient:       0.5,
			Diffuse:       0.5,
			Specular:      0.7,
			Shininess:     50.0,
		},
		Viewer: ViewerConfig{
			Width:         960,
			Height:        720,
			VSync:         true,
			FrameRate:     60,
			Gamma:         2.2,
			Vignette:      0.3,
			ScreenshotDir: "screenshots",
		},
		Export: ExportConfig{
			Format:    "exr",
			OutputDir: "frames",
			Frames:    1,
			StartTime: 0.0,
			TimeStep:  1.0 / 30.0,
		},
	}
}

// LoadConfig loads the configuration from a file
func LoadConfig(filePath string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filePath)
	if err != nil {
		return config, fmt.Errorf("config file not found, using defaults: %v", err)
	}

	err = yaml.Unmarshal(data, config)
	if err != nil {
		return config, fmt.Errorf("error parsing config: %v", err)
	}

	return config, nil
}

// SaveConfig saves the configuration to a file
func SaveConfig(config *Config, filePath string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("error serializing config: %v", err)
	}

	err = os.WriteFile(filePath, data, 0644)
	if err != nil {
		return fmt.Errorf("error writing config file: %v", err)
	}

	return nil
}
