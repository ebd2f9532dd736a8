package config

import "flag"

var (
	flagConfig = flag.String("config", "", "Path to config file")
	flagDebug  = flag.Bool("debug", false, "Enable debug logging")
	flagAssets = flag.String("assets", "", "Directory with biome images")
	flagTicks  = flag.Int("ticks", 0, "Number of ticks to simulate")
	flagSpeed  = flag.Float64("speed", 0, "Viewer speed in world units per tick")
	flagExport = flag.String("export", "", "Directory to export chunk textures to")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagAssets != "" {
		cfg.Assets.Dir = *flagAssets
	}
	if *flagTicks > 0 {
		cfg.Simulation.Ticks = *flagTicks
	}
	if *flagSpeed > 0 {
		cfg.Simulation.Speed = float32(*flagSpeed)
	}
	if *flagExport != "" {
		cfg.Export.Dir = *flagExport
	}
}
