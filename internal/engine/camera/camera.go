// Package camera provides the yaw/pitch look-at camera used by the viewer.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Fixed projection parameters.
const (
	FovY   = math.Pi / 2
	Aspect = 1.0
	Near   = 0.01
	Far    = 100.0
)

// Camera is a look-at camera whose direction is also tracked as yaw/pitch.
//
// Eye/Target and Yaw/Pitch describe the same direction. Every mutator goes
// through SetDirection or SetPosition so the two never drift apart.
type Camera struct {
	Eye    mgl64.Vec3
	Target mgl64.Vec3
	Up     mgl64.Vec3

	Yaw   float64 // radians, bearing in the XZ plane measured from +Z toward +X
	Pitch float64 // radians, elevation above the XZ plane
}

// New creates a camera and derives yaw/pitch from eye and target.
func New(eye, target, up mgl64.Vec3) *Camera {
	c := &Camera{Up: up}
	c.SetPosition(eye, target)
	return c
}

// SetDirection sets yaw/pitch and re-aims the target one unit from the eye.
func (c *Camera) SetDirection(yaw, pitch float64) {
	c.Yaw = yaw
	c.Pitch = pitch
	cp := math.Cos(pitch)
	c.Target = c.Eye.Add(mgl64.Vec3{
		math.Sin(yaw) * cp,
		math.Sin(pitch),
		math.Cos(yaw) * cp,
	})
}

// Rotate adds to yaw and pitch. Pitch is not clamped.
func (c *Camera) Rotate(dYaw, dPitch float64) {
	c.SetDirection(c.Yaw+dYaw, c.Pitch+dPitch)
}

// SetPosition sets eye and target and recomputes yaw/pitch from them.
// When eye and target coincide the previous yaw/pitch are kept.
func (c *Camera) SetPosition(eye, target mgl64.Vec3) {
	c.Eye = eye
	c.Target = target

	d := target.Sub(eye)
	horiz := math.Hypot(d[0], d[2])
	if horiz == 0 && d[1] == 0 {
		return
	}
	c.Yaw = math.Atan2(d[0], d[2])
	c.Pitch = math.Atan2(d[1], horiz)
}

// Move shifts eye and target together.
func (c *Camera) Move(delta mgl64.Vec3) {
	c.SetPosition(c.Eye.Add(delta), c.Target.Add(delta))
}

// SetView replaces the whole camera pose.
func (c *Camera) SetView(eye, target, up mgl64.Vec3) {
	c.Up = up
	c.SetPosition(eye, target)
}

// ViewMatrix returns lookAt(eye, target, up).
func (c *Camera) ViewMatrix() mgl64.Mat4 {
	return mgl64.LookAtV(c.Eye, c.Target, c.Up)
}

// ProjectionMatrix returns the fixed perspective projection.
func (c *Camera) ProjectionMatrix() mgl64.Mat4 {
	return Projection()
}

// Projection returns perspective(FovY, Aspect, Near, Far).
func Projection() mgl64.Mat4 {
	return mgl64.Perspective(FovY, Aspect, Near, Far)
}
