package main

import (
	"flag"
	"fmt"
	"path/filepath"
	"time"

	"mist/internal/logger"
	"mist/internal/util"
	"mist/pkg/config"
	"mist/pkg/engine"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	outputDir := flag.String("out", "", "Output directory (overrides config)")
	format := flag.String("format", "", "Frame format: exr or png (overrides config)")
	frames := flag.Int("frames", 0, "Number of frames to render (overrides config)")
	startTime := flag.Float64("time", -1, "Animation time of the first frame in seconds (overrides config)")
	timeStep := flag.Float64("dt", 0, "Time step between frames in seconds (overrides config)")
	logLevel := flag.String("log", "info", "Log level: debug, info, warn, error, fatal")
	flag.Parse()

	log := logger.NewLogger(*logLevel)

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Warnf("%v", err)
	}

	if *outputDir != "" {
		cfg.Export.OutputDir = *outputDir
	}
	if *format != "" {
		cfg.Export.Format = *format
	}
	if *frames > 0 {
		cfg.Export.Frames = *frames
	}
	if *startTime >= 0 {
		cfg.Export.StartTime = *startTime
	}
	if *timeStep > 0 {
		cfg.Export.TimeStep = *timeStep
	}

	raymarcher, err := engine.NewRaymarcher(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize raymarcher: %v", err)
	}

	if err := util.CreateDirIfNotExist(cfg.Export.OutputDir); err != nil {
		log.Fatalf("%v", err)
	}

	log.Infof("Rendering %d frame(s) at %dx%d to %s (%s)",
		cfg.Export.Frames, cfg.Renderer.Width, cfg.Renderer.Height,
		cfg.Export.OutputDir, cfg.Export.Format)

	frame := engine.NewFrame(cfg.Renderer.Width, cfg.Renderer.Height)
	for i := 0; i < cfg.Export.Frames; i++ {
		t := cfg.Export.StartTime + float64(i)*cfg.Export.TimeStep
		renderStart := time.Now()
		raymarcher.RenderFrame(frame, t)

		path := filepath.Join(cfg.Export.OutputDir,
			fmt.Sprintf("frame_%04d.%s", i, cfg.Export.Format))
		if err := engine.WriteFrame(path, frame); err != nil {
			log.Fatalf("%v", err)
		}

		log.Infof("Frame %d/%d (t=%.3fs) rendered in %s -> %s",
			i+1, cfg.Export.Frames, t, time.Since(renderStart), path)
	}
}
