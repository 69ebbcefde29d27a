package config

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
)

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagSaveConfig = flag.String("save-config", "", "Write the effective config to this path and exit")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagTriangles  = flag.String("triangles", "", "Triangle set URL or file")
	flagLights     = flag.String("lights", "", "Light set URL or file")
	flagTimeout    = flag.Duration("timeout", 0, "Asset fetch timeout")
	flagEye        = flag.String("eye", "", "Initial eye position as x,y,z")
	flagTarget     = flag.String("target", "", "Initial look-at point as x,y,z")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// SaveConfigPath returns the --save-config destination, if any.
func SaveConfigPath() string {
	return *flagSaveConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) error {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWindowed {
		cfg.Window.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Window.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
	if *flagTriangles != "" {
		cfg.Assets.Triangles = *flagTriangles
	}
	if *flagLights != "" {
		cfg.Assets.Lights = *flagLights
	}
	if *flagTimeout > 0 {
		cfg.Assets.Timeout = *flagTimeout
	}
	if *flagEye != "" {
		v, err := parseVec3(*flagEye)
		if err != nil {
			return fmt.Errorf("--eye: %w", err)
		}
		cfg.Camera.Eye = v
	}
	if *flagTarget != "" {
		v, err := parseVec3(*flagTarget)
		if err != nil {
			return fmt.Errorf("--target: %w", err)
		}
		cfg.Camera.Target = v
	}
	return nil
}

// parseVec3 reads "x,y,z".
func parseVec3(s string) ([3]float64, error) {
	var v [3]float64
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return v, fmt.Errorf("want x,y,z, got %q", s)
	}
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return v, fmt.Errorf("component %d: %w", i, err)
		}
		v[i] = f
	}
	return v, nil
}
