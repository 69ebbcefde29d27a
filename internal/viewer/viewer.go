// Package viewer holds the live state of a viewing session and routes key
// presses into camera, selection and object transform changes.
package viewer

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/Faultbox/sceneview/internal/engine/camera"
	"github.com/Faultbox/sceneview/internal/engine/lighting"
	"github.com/Faultbox/sceneview/internal/logger"
	"github.com/Faultbox/sceneview/internal/scene"
)

// pose is the part of the state restored by Reset.
type pose struct {
	eye, target, up mgl64.Vec3
	light           lighting.PointLight
}

// State is everything one viewing session mutates.
//
// It is owned by the render loop goroutine. Key events are applied whole
// between frames, so no locking is needed.
type State struct {
	Scene     *scene.Scene
	Camera    *camera.Camera
	Light     lighting.PointLight
	Selection *scene.Selection

	initial pose
	log     *zap.Logger
}

// New captures the camera and light as the pose Reset returns to.
func New(s *scene.Scene, cam *camera.Camera, light lighting.PointLight) *State {
	return &State{
		Scene:     s,
		Camera:    cam,
		Light:     light,
		Selection: scene.NewSelection(),
		initial: pose{
			eye:    cam.Eye,
			target: cam.Target,
			up:     cam.Up,
			light:  light,
		},
		log: logger.Named("viewer"),
	}
}

// Reset restores the load-time camera and light, clears every object
// transform and drops the selection.
func (v *State) Reset() {
	v.Scene.ResetTransforms()
	v.Selection.Clear()
	v.Camera.SetView(v.initial.eye, v.initial.target, v.initial.up)
	v.Light = v.initial.light
	v.log.Info("view reset")
}

// SetView replaces the camera pose. Yaw and pitch follow the new direction.
func (v *State) SetView(eye, target, up mgl64.Vec3) {
	v.Camera.SetView(eye, target, up)
}

// SetLightPosition moves the light. Intensities are unchanged.
func (v *State) SetLightPosition(p mgl64.Vec3) {
	v.Light.Position = p
}

// Describe summarises the camera, light and selection on one line.
func (v *State) Describe() string {
	sel := "none"
	if idx, ok := v.Selection.Selected(); ok {
		sel = fmt.Sprintf("%d/%d", idx+1, v.Scene.Len())
	}
	return fmt.Sprintf("Eye %s | Target %s | Up %s | Light %s | Selected %s",
		formatVec(v.Camera.Eye), formatVec(v.Camera.Target), formatVec(v.Camera.Up),
		formatVec(v.Light.Position), sel)
}

func formatVec(p mgl64.Vec3) string {
	return fmt.Sprintf("X: %.3f, Y: %.3f, Z: %.3f", p[0], p[1], p[2])
}
