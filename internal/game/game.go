// Package game wires the terrain simulator together and runs its tick loop.
package game

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-terrain/internal/assets"
	"github.com/Faultbox/midgard-terrain/internal/config"
	"github.com/Faultbox/midgard-terrain/internal/engine/camera"
	"github.com/Faultbox/midgard-terrain/internal/engine/scene"
	"github.com/Faultbox/midgard-terrain/internal/engine/terrain"
	"github.com/Faultbox/midgard-terrain/internal/game/streaming"
	"github.com/Faultbox/midgard-terrain/internal/game/world"
	"github.com/Faultbox/midgard-terrain/internal/logger"
)

// Game is the headless simulator: a scripted camera flying over streamed terrain.
type Game struct {
	config  *config.Config
	assets  *assets.Manager
	store   *world.Store
	scene   *scene.Scene
	manager *streaming.Manager
	camera  *camera.FlyCamera
	path    *camera.Path
	log     *zap.Logger

	ticks int
	total streaming.Report
}

// Summary accumulates the tick reports of a run.
type Summary struct {
	Ticks     int
	Loaded    int
	Generated int
	Deferred  int
	Swept     int
	Live      int
	Visuals   scene.Stats
	Position  mgl32.Vec3
}

// New creates a simulator from cfg.
func New(cfg *config.Config) (*Game, error) {
	log := logger.Named("game")
	log.Info("initializing simulator",
		zap.String("assets", cfg.Assets.Dir),
		zap.Int("ticks", cfg.Simulation.Ticks),
		zap.String("export", cfg.Export.Dir),
	)

	g := &Game{
		config: cfg,
		assets: assets.NewManager(),
		store:  world.NewStore(),
		scene:  scene.New(),
		log:    log,
	}

	if cfg.Assets.Dir == "" {
		g.assets.Builtin()
	} else if err := g.assets.LoadDir(cfg.Assets.Dir, cfg.Assets.Async); err != nil {
		// Broken files were replaced by built-in swatches.
		log.Warn("some biome images failed to load", zap.Error(err))
	}

	if cfg.Export.Dir != "" {
		if err := os.MkdirAll(cfg.Export.Dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create export dir: %w", err)
		}
		g.scene.SetExportDir(cfg.Export.Dir)
	}

	g.manager = streaming.NewManager(
		g.store,
		terrain.NewGenerator(terrain.DefaultSeeds()),
		g.assets,
		g.scene,
	)

	sim := cfg.Simulation
	g.camera = camera.NewFlyCamera(mgl32.Vec3{sim.Start[0], sim.Start[1], sim.Start[2]})
	g.path = &camera.Path{Legs: []camera.Leg{{
		Step:  camera.Step{Forward: sim.Speed, Turn: sim.YawRate},
		Ticks: sim.Ticks,
	}}}

	log.Info("simulator initialized")
	return g, nil
}

// Run ticks the simulation until the path is walked or ctx is cancelled.
func (g *Game) Run(ctx context.Context) error {
	var ticker *time.Ticker
	if g.config.Simulation.TickInterval > 0 {
		ticker = time.NewTicker(g.config.Simulation.TickInterval)
		defer ticker.Stop()
	}

	g.log.Info("starting tick loop")
	start := time.Now()

	for g.ticks < g.config.Simulation.Ticks {
		if ticker != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		g.Tick()
	}

	g.log.Info("tick loop finished",
		zap.Int("ticks", g.ticks),
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("generated", g.total.Generated),
		zap.Int("swept", g.total.Swept),
	)
	return nil
}

// Tick moves the camera one step and runs one streaming pass.
func (g *Game) Tick() streaming.Report {
	g.path.Next().Apply(g.camera)
	r := g.manager.Tick(g.camera)
	g.ticks++

	g.total.Loaded += r.Loaded
	g.total.Generated += r.Generated
	g.total.Deferred += r.Deferred
	g.total.Swept += r.Swept

	if r.Loaded > 0 || r.Swept > 0 {
		g.log.Info("viewer entered chunk",
			zap.Int("tick", g.ticks),
			zap.Stringer("chunk", r.Viewer),
			zap.Int("loaded", r.Loaded),
			zap.Int("swept", r.Swept),
			zap.Int("live", g.manager.Len()),
		)
	}
	if r.Missing != "" {
		g.log.Debug("waiting for biome image", zap.String("name", r.Missing), zap.Int("deferred", r.Deferred))
	}
	return r
}

// Summary returns the totals of the run so far.
func (g *Game) Summary() Summary {
	return Summary{
		Ticks:     g.ticks,
		Loaded:    g.total.Loaded,
		Generated: g.total.Generated,
		Deferred:  g.total.Deferred,
		Swept:     g.total.Swept,
		Live:      g.manager.Len(),
		Visuals:   g.scene.Stats(),
		Position:  g.camera.CurrentWorldPosition(),
	}
}

// Close waits for background asset loads and releases cached images.
func (g *Game) Close() {
	g.log.Info("closing simulator")
	if err := g.assets.Wait(); err != nil {
		g.log.Warn("biome image errors", zap.Error(err))
	}
	g.assets.Close()
}
