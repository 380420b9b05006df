package main

import (
	"flag"
	"log"
	"os"

	"SentientToken/internal/di"
	"SentientToken/pkg/config"
)

func main() {
	// Parse flags
	configPath := flag.String("config", "config/config.yaml", "config file path")
	flag.Parse()

	// Load config
	cfg, err := config.LoadWithEnv(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	cfg.Defaults()

	log.Printf("env=%s storage=%s ai=%s/%s", cfg.Environment, cfg.Storage.Backend, cfg.AI.Provider, cfg.AI.Model)

	// Wire DI: Initialize all dependencies
	app, err := di.InitializeApp(cfg)
	if err != nil {
		log.Fatalf("app initialization failed: %v", err)
	}

	// Run application (blocks until signal)
	if err := app.Run(); err != nil {
		log.Printf("app error: %v", err)
		os.Exit(1)
	}
}
