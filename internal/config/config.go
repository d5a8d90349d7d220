// Package config handles gizmoview configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Draw    DrawConfig    `yaml:"draw"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// DrawConfig holds shape-builder settings.
type DrawConfig struct {
	// DefaultColor is applied to the draw context at startup (RGB in [0,1]).
	DefaultColor [3]float32 `yaml:"default_color"`
	// CellSize is the terrain voxel grid cell edge length.
	CellSize float32 `yaml:"cell_size"`
	// Seed fixes the random-color sequence; 0 means time-seeded.
	Seed int64 `yaml:"seed"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Draw: DrawConfig{
			DefaultColor: [3]float32{1, 0, 0},
			CellSize:     4,
			Seed:         0,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
