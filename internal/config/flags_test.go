package config

import "time"

// resetFlags restores flag values to their zero state.
func resetFlags() {
	*flagConfig = ""
	*flagSaveConfig = ""
	*flagDebug = false
	*flagWindowed = false
	*flagFullscreen = false
	*flagWidth = 0
	*flagHeight = 0
	*flagTriangles = ""
	*flagLights = ""
	*flagTimeout = time.Duration(0)
	*flagEye = ""
	*flagTarget = ""
}
