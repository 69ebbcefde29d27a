// Package config handles viewer configuration loading and management.
package config

import "time"

// Config holds all viewer settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Assets  AssetsConfig  `yaml:"assets"`
	Camera  CameraConfig  `yaml:"camera"`
	Debug   DebugConfig   `yaml:"debug"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// AssetsConfig locates the scene and light descriptions.
// Locations are http(s) URLs or local file paths.
type AssetsConfig struct {
	Triangles string        `yaml:"triangles"`
	Lights    string        `yaml:"lights"`
	Timeout   time.Duration `yaml:"timeout"`
}

// CameraConfig holds the initial camera placement. Reset returns here.
type CameraConfig struct {
	Eye    [3]float64 `yaml:"eye,flow"`
	Target [3]float64 `yaml:"target,flow"`
	Up     [3]float64 `yaml:"up,flow"`
}

// DebugConfig holds developer conveniences.
type DebugConfig struct {
	ScreenshotDir    string `yaml:"screenshot_dir"`
	ScreenshotFormat string `yaml:"screenshot_format"` // png or bmp
	ShowCoords       bool   `yaml:"show_coords"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the documented default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "sceneview",
			Width:  800,
			Height: 800,
			VSync:  true,
		},
		Assets: AssetsConfig{
			Triangles: "https://ncsucgclass.github.io/prog3/triangles2.json",
			Lights:    "https://ncsucgclass.github.io/prog3/lights.json",
			Timeout:   3 * time.Second,
		},
		Camera: CameraConfig{
			Eye:    [3]float64{2.3, 2.165, 1.405},
			Target: [3]float64{1.351, 1.559, 0.610},
			Up:     [3]float64{0, 1, 0},
		},
		Debug: DebugConfig{
			ScreenshotDir:    "screenshots",
			ScreenshotFormat: "png",
			ShowCoords:       true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
