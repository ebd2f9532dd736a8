// Package main is the entry point for the headless terrain simulator.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-terrain/internal/config"
	"github.com/Faultbox/midgard-terrain/internal/game"
	"github.com/Faultbox/midgard-terrain/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Midgard Terrain Simulator ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	g, err := game.New(cfg)
	if err != nil {
		logger.Error("failed to create simulator", zap.Error(err))
		os.Exit(1)
	}
	defer g.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := g.Run(ctx); err != nil {
		logger.Warn("simulation stopped", zap.Error(err))
	}

	s := g.Summary()
	logger.Info("simulation finished",
		zap.Int("ticks", s.Ticks),
		zap.Int("loaded", s.Loaded),
		zap.Int("generated", s.Generated),
		zap.Int("deferred", s.Deferred),
		zap.Int("swept", s.Swept),
		zap.Int("live", s.Live),
		zap.Int("visuals_created", s.Visuals.Created),
		zap.Int("visuals_destroyed", s.Visuals.Destroyed),
	)
}
