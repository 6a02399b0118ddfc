// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Camera  CameraConfig  `yaml:"camera"`
	Scene   SceneConfig   `yaml:"scene"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// CameraConfig holds projection and orbit settings. Angles are in degrees
// in the file and converted at the call site.
type CameraConfig struct {
	FovDegrees  float64 `yaml:"fov_degrees"`
	Near        float64 `yaml:"near"`
	Far         float64 `yaml:"far"`
	Distance    float64 `yaml:"distance"`
	MinDistance float64 `yaml:"min_distance"`
	MaxDistance float64 `yaml:"max_distance"`
}

// SceneConfig holds demo scene settings.
type SceneConfig struct {
	Spin        bool    `yaml:"spin"`
	SpinSpeed   float64 `yaml:"spin_speed"` // radians per second
	CubeSize    float64 `yaml:"cube_size"`
	CubeSpacing float64 `yaml:"cube_spacing"`
	GridCells   int     `yaml:"grid_cells"` // cubes per side of the grid
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
		Camera: CameraConfig{
			FovDegrees:  60,
			Near:        0.1,
			Far:         1000,
			Distance:    10,
			MinDistance: 2,
			MaxDistance: 100,
		},
		Scene: SceneConfig{
			Spin:        true,
			SpinSpeed:   0.8,
			CubeSize:    1,
			CubeSpacing: 3,
			GridCells:   3,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
