package game

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/midgard-terrain/internal/config"
	"github.com/Faultbox/midgard-terrain/internal/engine/terrain"
)

func testConfig(ticks int) *config.Config {
	cfg := config.Default()
	cfg.Simulation.Ticks = ticks
	cfg.Assets.Async = false
	return cfg
}

func TestRunStaysInStartChunk(t *testing.T) {
	g, err := New(testConfig(4))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer g.Close()

	if err := g.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	s := g.Summary()
	if s.Ticks != 4 {
		t.Errorf("ran %d ticks, want 4", s.Ticks)
	}
	if s.Loaded != 9 || s.Generated != 9 || s.Swept != 0 || s.Live != 9 {
		t.Errorf("summary = %+v, want 9 chunks loaded and live", s)
	}
	if s.Visuals.Live != 9 {
		t.Errorf("scene holds %d visuals, want 9", s.Visuals.Live)
	}
}

func TestRunCrossesChunks(t *testing.T) {
	cfg := testConfig(3)
	cfg.Simulation.Speed = terrain.ChunkSpacing

	g, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer g.Close()

	if err := g.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// The camera moves before each streaming pass: the viewer visits
	// chunks (0,-1), (0,-2) and (0,-3), so row 0 is swept on the last tick.
	s := g.Summary()
	if got := terrain.CoordAt(s.Position.X(), s.Position.Z()); got != (terrain.Coord{X: 0, Y: -3}) {
		t.Errorf("camera ended in chunk %v, want (0,-3)", got)
	}
	if s.Loaded != 15 || s.Swept != 3 || s.Live != 12 {
		t.Errorf("summary = %+v, want 15 loaded, 3 swept, 12 live", s)
	}
	if s.Generated != s.Loaded {
		t.Errorf("generated %d of %d loaded chunks", s.Generated, s.Loaded)
	}
}

func TestRunCancelled(t *testing.T) {
	g, err := New(testConfig(10))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer g.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := g.Run(ctx); err != context.Canceled {
		t.Errorf("Run error = %v, want context.Canceled", err)
	}
	if g.Summary().Ticks != 0 {
		t.Error("ticked after cancellation")
	}
}

func TestExport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "chunks")
	cfg := testConfig(1)
	cfg.Export.Dir = dir

	g, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer g.Close()
	g.Tick()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading export dir: %v", err)
	}
	if len(entries) != 9 {
		t.Errorf("exported %d textures, want 9", len(entries))
	}
	if _, err := os.Stat(filepath.Join(dir, "chunk_-1_-1.png")); err != nil {
		t.Errorf("missing export for chunk (-1,-1): %v", err)
	}
}
