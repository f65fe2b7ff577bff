package engine

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"mist/internal/logger"
	"mist/internal/util"
	"mist/pkg/config"
)

// Engine ties the raymarcher to the interactive viewer window
type Engine struct {
	window     *glfw.Window
	config     *config.Config
	logger     *logger.Logger
	raymarcher *Raymarcher
	display    *Display
	input      *InputHandler
	frame      *Frame

	isRunning  bool
	paused     bool
	simTime    float64
	lastUpdate time.Time
	frameRate  int
}

// NewEngine creates the viewer engine. The caller must have locked the main
// OS thread; GLFW requires it.
func NewEngine(cfg *config.Config, log *logger.Logger) (*Engine, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %v", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(
		cfg.Viewer.Width,
		cfg.Viewer.Height,
		"Mist - Volumetric Viewer",
		nil,
		nil,
	)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create GLFW window: %v", err)
	}

	window.MakeContextCurrent()
	if cfg.Viewer.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	raymarcher, err := NewRaymarcher(cfg)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize raymarcher: %v", err)
	}

	display, err := NewDisplay(cfg.Viewer)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize display: %v", err)
	}

	e := &Engine{
		window:     window,
		config:     cfg,
		logger:     log,
		raymarcher: raymarcher,
		display:    display,
		input:      NewInputHandler(window),
		frame:      NewFrame(cfg.Renderer.Width, cfg.Renderer.Height),
		frameRate:  cfg.Viewer.FrameRate,
	}

	window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		e.logger.Debugf("Window resized to %dx%d", width, height)
		e.display.UpdateResolution(width, height)
	})

	log.Infof("Renderer: %dx%d, %d samples/ray, %s gradients, %d workers",
		cfg.Renderer.Width, cfg.Renderer.Height, cfg.Renderer.SampleCount,
		raymarcher.gradient.Scheme(), raymarcher.NumThreads())

	return e, nil
}

// Run starts the main viewer loop
func (e *Engine) Run() {
	e.isRunning = true
	e.lastUpdate = time.Now()

	for e.isRunning && !e.window.ShouldClose() {
		currentTime := time.Now()
		deltaTime := currentTime.Sub(e.lastUpdate).Seconds()
		e.lastUpdate = currentTime

		e.processInput()

		if !e.paused {
			e.simTime += deltaTime
		}

		renderStart := time.Now()
		e.raymarcher.RenderFrame(e.frame, e.simTime)
		e.logger.Debugf("Frame rendered in %s", time.Since(renderStart))

		e.display.Render(e.frame)

		e.window.SwapBuffers()
		glfw.PollEvents()

		// Cap the frame rate
		if e.frameRate > 0 {
			frameTime := time.Since(currentTime)
			targetFrameTime := time.Second / time.Duration(e.frameRate)
			if frameTime < targetFrameTime {
				time.Sleep(targetFrameTime - frameTime)
			}
		}
	}

	e.cleanup()
}

// processInput handles user input
func (e *Engine) processInput() {
	e.input.Update()

	if e.input.IsKeyDown(glfw.KeyEscape) {
		e.isRunning = false
	}

	if e.input.IsKeyPressed(glfw.KeySpace) {
		e.paused = !e.paused
		e.logger.Infof("Orbit %s", map[bool]string{true: "paused", false: "resumed"}[e.paused])
	}

	if e.input.IsKeyPressed(glfw.KeyF12) {
		e.saveScreenshot()
	}
}

// saveScreenshot writes the current frame as an EXR file
func (e *Engine) saveScreenshot() {
	dir := e.config.Viewer.ScreenshotDir
	if err := util.CreateDirIfNotExist(dir); err != nil {
		e.logger.Errorf("Screenshot failed: %v", err)
		return
	}

	path := filepath.Join(dir, fmt.Sprintf("mist_%s.exr", time.Now().Format("20060102_150405")))
	if err := WriteEXR(path, e.frame); err != nil {
		e.logger.Errorf("Screenshot failed: %v", err)
		return
	}

	e.logger.Infof("Saved screenshot to %s", path)
}

// cleanup performs necessary cleanup before exiting
func (e *Engine) cleanup() {
	e.logger.Info("Shutting down viewer...")
	e.display.Close()
	glfw.Terminate()
}
