package engine

import (
	"fmt"
	"math"
	"runtime"
	"sync"

	"github.com/shirou/gopsutil/cpu"

	"mist/pkg/config"
)

// earlyOutAlpha stops the march once the accumulator is effectively opaque
const earlyOutAlpha = 0.99

// Raymarcher casts one ray per pixel through the scene's density field and
// composites classified samples front to back. All fields are immutable after
// construction, so one Raymarcher serves every worker goroutine of a frame.
type Raymarcher struct {
	scene    *Scene
	camera   Camera
	light    Light
	gradient *GradientEstimator

	sampleCount int
	stepSize    float64
	background  Color
	numThreads  int
}

// NewRaymarcher builds a raymarcher from configuration
func NewRaymarcher(cfg *config.Config) (*Raymarcher, error) {
	if cfg.Renderer.Width <= 0 || cfg.Renderer.Height <= 0 {
		return nil, fmt.Errorf("invalid render resolution %dx%d", cfg.Renderer.Width, cfg.Renderer.Height)
	}
	if cfg.Renderer.SampleCount <= 0 {
		return nil, fmt.Errorf("sample count must be positive, got %d", cfg.Renderer.SampleCount)
	}

	scene, err := NewScene(cfg.Scene)
	if err != nil {
		return nil, fmt.Errorf("invalid scene: %v", err)
	}

	scheme, err := ParseGradientScheme(cfg.Renderer.GradientScheme)
	if err != nil {
		return nil, err
	}

	gradient, err := NewGradientEstimator(scheme, scene.Occupancy, cfg.Renderer.VoxelWidth)
	if err != nil {
		return nil, err
	}

	numThreads := cfg.Renderer.NumThreads
	if numThreads <= 0 {
		numThreads = detectThreads()
	}

	rm := &Raymarcher{
		scene:       scene,
		camera:      NewCamera(cfg.Camera),
		light:       NewLight(cfg.Lighting),
		gradient:    gradient,
		sampleCount: cfg.Renderer.SampleCount,
		// The step uses only the x-extent of the bounds; the default scene
		// box is cubic so the step is uniform in every direction
		stepSize: (cfg.Scene.BoundsMax.X - cfg.Scene.BoundsMin.X) / float64(cfg.Renderer.SampleCount),
		background: Color{
			R: cfg.Renderer.Background.R,
			G: cfg.Renderer.Background.G,
			B: cfg.Renderer.Background.B,
			A: cfg.Renderer.Background.A,
		},
		numThreads: numThreads,
	}

	return rm, nil
}

// detectThreads sizes the worker pool from the machine's logical CPU count
func detectThreads() int {
	if n, err := cpu.Counts(true); err == nil && n > 0 {
		return n
	}
	return runtime.NumCPU()
}

// NumThreads returns the size of the row worker pool
func (rm *Raymarcher) NumThreads() int {
	return rm.numThreads
}

// Scene returns the immutable scene
func (rm *Raymarcher) Scene() *Scene {
	return rm.scene
}

// RenderPixel computes the color of one pixel. It is a pure function of the
// pixel coordinate, the resolution and the elapsed time, so identical inputs
// always produce identical output.
func (rm *Raymarcher) RenderPixel(px, py, width, height, t float64) Color {
	u := (px + 0.5) / width
	v := 1.0 - (py+0.5)/height // pixel rows grow downward, v points up
	frame := rm.camera.FrameAt(t, width/height)

	color, _ := rm.March(frame.Ray(u, v))
	return color
}

// March steps a fixed sample budget along the ray through the scene bounds
// and composites classified samples with the premultiplied over operator.
// It returns the final pixel color and the number of samples taken, which is
// bounded by the configured sample count.
func (rm *Raymarcher) March(ray Ray) (Color, int) {
	// Marching is bounded by the sample budget, not the exit distance, so
	// tFar is not needed here
	tNear, _, hit := IntersectBox(ray, rm.scene.BoundsMin, rm.scene.BoundsMax)
	if !hit {
		return rm.background, 0
	}

	pos := ray.At(math.Max(tNear, 0))
	accum := Color{}
	steps := 0

	for i := 0; i < rm.sampleCount; i++ {
		if accum.A > earlyOutAlpha {
			break
		}

		// Advance before sampling: the first sample sits one step past tNear
		pos = pos.Add(ray.Direction.Mul(rm.stepSize))
		steps++

		density := rm.scene.Density(pos)
		if density <= 0 {
			continue // empty space, skip shading entirely
		}

		sample := rm.scene.Classify(density)
		grad := rm.gradient.Estimate(pos)
		shaded := rm.light.Shade(sample, grad.Mul(-1), ray.Direction.Mul(-1))

		// Premultiplied front-to-back over
		accum = accum.Add(shaded.Premultiply().Scale(1 - accum.A))
	}

	// The accumulator is blended against the background with its own alpha as
	// the weight, which applies alpha to the premultiplied color a second
	// time. Existing imagery depends on this exact blend; do not "fix" it.
	final := accum.Scale(accum.A).Add(rm.background.Scale(1 - accum.A))
	return final, steps
}

// RenderFrame fills the frame for elapsed time t, fanning rows out across the
// worker pool. Workers share only the immutable raymarcher and write disjoint
// rows, so the only synchronization is the final wait.
func (rm *Raymarcher) RenderFrame(frame *Frame, t float64) {
	width := float64(frame.Width)
	height := float64(frame.Height)
	camFrame := rm.camera.FrameAt(t, width/height)

	var wg sync.WaitGroup
	rowsPerWorker := frame.Height / rm.numThreads
	if rowsPerWorker < 1 {
		rowsPerWorker = 1
	}

	for startRow := 0; startRow < frame.Height; startRow += rowsPerWorker {
		endRow := startRow + rowsPerWorker
		if endRow > frame.Height {
			endRow = frame.Height
		}

		wg.Add(1)
		go func(startRow, endRow int) {
			defer wg.Done()

			for y := startRow; y < endRow; y++ {
				v := 1.0 - (float64(y)+0.5)/height
				for x := 0; x < frame.Width; x++ {
					u := (float64(x) + 0.5) / width
					color, _ := rm.March(camFrame.Ray(u, v))
					frame.Set(x, y, color)
				}
			}
		}(startRow, endRow)
	}

	wg.Wait()
}
