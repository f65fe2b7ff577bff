package main

import (
	"flag"
	"runtime"

	"mist/internal/logger"
	"mist/pkg/config"
	"mist/pkg/engine"
)

func init() {
	// GLFW requires the program to be running on the main thread
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	saveConfig := flag.Bool("save-config", false, "Write the default configuration to the config path and exit")
	logLevel := flag.String("log", "info", "Log level: debug, info, warn, error, fatal")
	flag.Parse()

	log := logger.NewLogger(*logLevel)
	log.Info("Starting Mist volumetric viewer...")

	if *saveConfig {
		if err := config.SaveConfig(config.DefaultConfig(), *configPath); err != nil {
			log.Fatalf("Failed to write config: %v", err)
		}
		log.Infof("Wrote default configuration to %s", *configPath)
		return
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Warnf("%v", err)
	}

	viewer, err := engine.NewEngine(cfg, log)
	if err != nil {
		log.Fatalf("Failed to initialize viewer: %v", err)
	}

	log.Info("Viewer initialized, entering render loop...")
	viewer.Run()
}
