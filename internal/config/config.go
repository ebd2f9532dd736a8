// Package config handles simulator configuration loading and management.
package config

import "time"

// Config holds all runtime settings. Generation constants are compiled in.
type Config struct {
	Assets     AssetsConfig     `yaml:"assets"`
	Simulation SimulationConfig `yaml:"simulation"`
	Export     ExportConfig     `yaml:"export"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// AssetsConfig holds biome image settings.
type AssetsConfig struct {
	Dir   string `yaml:"dir"`   // Directory with biome images; empty uses the built-in palette
	Async bool   `yaml:"async"` // Load images in the background and poll for them
}

// SimulationConfig drives the scripted viewer of the simulator.
type SimulationConfig struct {
	Ticks        int           `yaml:"ticks"`
	TickInterval time.Duration `yaml:"tick_interval"`
	Start        [3]float32    `yaml:"start"`
	Speed        float32       `yaml:"speed"`    // World units moved forward per tick
	YawRate      float32       `yaml:"yaw_rate"` // Radians turned per tick
}

// ExportConfig holds debug export settings.
type ExportConfig struct {
	Dir string `yaml:"dir"` // Chunk textures are written here when set
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Assets: AssetsConfig{
			Dir:   "",
			Async: true,
		},
		Simulation: SimulationConfig{
			Ticks:        600,
			TickInterval: 0,
			Start:        [3]float32{12.6, 20, 12.6},
			Speed:        0.3,
			YawRate:      0,
		},
		Export: ExportConfig{
			Dir: "",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
