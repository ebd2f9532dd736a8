package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Assets.Dir != "" {
		t.Errorf("expected built-in assets by default, got dir %q", cfg.Assets.Dir)
	}
	if !cfg.Assets.Async {
		t.Error("expected async asset loading by default")
	}
	if cfg.Simulation.Ticks != 600 {
		t.Errorf("expected 600 ticks, got %d", cfg.Simulation.Ticks)
	}
	if cfg.Simulation.Speed != 0.3 {
		t.Errorf("expected speed 0.3, got %f", cfg.Simulation.Speed)
	}
	if cfg.Export.Dir != "" {
		t.Errorf("expected export disabled, got %q", cfg.Export.Dir)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	yamlContent := `
assets:
  dir: "textures"
  async: false

simulation:
  ticks: 120
  tick_interval: 16ms
  start: [1, 2, 3]
  speed: 1.5
  yaw_rate: 0.05

export:
  dir: "out"

logging:
  level: "debug"
  log_file: "terrain.log"
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Assets.Dir != "textures" || cfg.Assets.Async {
		t.Errorf("unexpected assets config %+v", cfg.Assets)
	}
	if cfg.Simulation.Ticks != 120 {
		t.Errorf("expected 120 ticks, got %d", cfg.Simulation.Ticks)
	}
	if cfg.Simulation.TickInterval != 16*time.Millisecond {
		t.Errorf("expected 16ms interval, got %v", cfg.Simulation.TickInterval)
	}
	if cfg.Simulation.Start != [3]float32{1, 2, 3} {
		t.Errorf("unexpected start %v", cfg.Simulation.Start)
	}
	if cfg.Simulation.Speed != 1.5 || cfg.Simulation.YawRate != 0.05 {
		t.Errorf("unexpected motion %+v", cfg.Simulation)
	}
	if cfg.Export.Dir != "out" {
		t.Errorf("expected export dir 'out', got %q", cfg.Export.Dir)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.LogFile != "terrain.log" {
		t.Errorf("unexpected logging config %+v", cfg.Logging)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.yaml")

	invalidYAML := `
simulation:
  ticks: not a number
  invalid syntax here
`
	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if err := loadFromFile(Default(), configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	if err := loadFromFile(Default(), "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Simulation.Ticks = -1
	if err := cfg.Validate(); err == nil {
		t.Error("expected negative ticks to be rejected")
	}

	cfg = Default()
	cfg.Simulation.TickInterval = -time.Second
	if err := cfg.Validate(); err == nil {
		t.Error("expected negative interval to be rejected")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "assets flag",
			setup: func() { *flagAssets = "/data/biomes" },
			verify: func(cfg *Config) {
				if cfg.Assets.Dir != "/data/biomes" {
					t.Errorf("expected assets dir /data/biomes, got %s", cfg.Assets.Dir)
				}
			},
			teardown: func() { *flagAssets = "" },
		},
		{
			name: "ticks and speed flags",
			setup: func() {
				*flagTicks = 42
				*flagSpeed = 2
			},
			verify: func(cfg *Config) {
				if cfg.Simulation.Ticks != 42 {
					t.Errorf("expected 42 ticks, got %d", cfg.Simulation.Ticks)
				}
				if cfg.Simulation.Speed != 2 {
					t.Errorf("expected speed 2, got %f", cfg.Simulation.Speed)
				}
			},
			teardown: func() {
				*flagTicks = 0
				*flagSpeed = 0
			},
		},
		{
			name:  "export flag",
			setup: func() { *flagExport = "dump" },
			verify: func(cfg *Config) {
				if cfg.Export.Dir != "dump" {
					t.Errorf("expected export dir dump, got %s", cfg.Export.Dir)
				}
			},
			teardown: func() { *flagExport = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	yamlContent := `
simulation:
  ticks: 50
  speed: 0.7
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagTicks = 99
	defer func() {
		*flagConfig = ""
		*flagTicks = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Simulation.Ticks != 99 {
		t.Errorf("expected 99 ticks from flag, got %d", cfg.Simulation.Ticks)
	}
	if cfg.Simulation.Speed != 0.7 {
		t.Errorf("expected speed 0.7 from file, got %f", cfg.Simulation.Speed)
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Export.Dir = "chunks"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload saved config: %v", err)
	}
	if loaded.Export.Dir != "chunks" {
		t.Errorf("expected export dir to survive save, got %q", loaded.Export.Dir)
	}
}
