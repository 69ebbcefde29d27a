package config

import (
	"errors"
	"fmt"
)

// ErrInvalid reports a config value the viewer cannot start with.
var ErrInvalid = errors.New("invalid config")

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "warning": true, "error": true}

// Validate rejects values that would leave the viewer without a usable
// window, camera or asset deadline.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Assets.Timeout <= 0 {
		return fmt.Errorf("%w: assets.timeout must be positive, got %v", ErrInvalid, c.Assets.Timeout)
	}
	if c.Camera.Eye == c.Camera.Target {
		return fmt.Errorf("%w: camera eye and target coincide at %v", ErrInvalid, c.Camera.Eye)
	}
	if c.Camera.Up == ([3]float64{}) {
		return fmt.Errorf("%w: camera up is the zero vector", ErrInvalid)
	}
	if !logLevels[c.Logging.Level] {
		return fmt.Errorf("%w: logging.level %q", ErrInvalid, c.Logging.Level)
	}
	return nil
}
