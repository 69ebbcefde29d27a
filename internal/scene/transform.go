package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Axes for object rotation.
var (
	AxisX = mgl64.Vec3{1, 0, 0}
	AxisY = mgl64.Vec3{0, 1, 0}
	AxisZ = mgl64.Vec3{0, 0, 1}
)

func (s *Scene) group(idx int) (*TriangleGroup, error) {
	g := s.Group(idx)
	if g == nil {
		return nil, fmt.Errorf("%w: %d (scene has %d groups)", ErrInvalidGroupIndex, idx, len(s.groups))
	}
	return g, nil
}

// Translate post-multiplies the group's model matrix by a translation.
func (s *Scene) Translate(dx, dy, dz float64, idx int) error {
	g, err := s.group(idx)
	if err != nil {
		return err
	}
	g.Model = g.Model.Mul4(mgl64.Translate3D(dx, dy, dz))
	return nil
}

// Scale scales the group uniformly about its centroid.
func (s *Scene) Scale(factor float64, idx int) error {
	g, err := s.group(idx)
	if err != nil {
		return err
	}
	g.Model = g.Model.Mul4(aboutCentroid(g.Centroid, mgl64.Scale3D(factor, factor, factor)))
	return nil
}

// Rotate rotates the group by angle radians about axis through its centroid.
func (s *Scene) Rotate(angle float64, axis mgl64.Vec3, idx int) error {
	g, err := s.group(idx)
	if err != nil {
		return err
	}
	g.Model = g.Model.Mul4(aboutCentroid(g.Centroid, mgl64.HomogRotate3D(angle, axis.Normalize())))
	return nil
}

// aboutCentroid returns T(c) · op · T(-c): points are moved to the origin,
// transformed, and moved back.
func aboutCentroid(c mgl64.Vec3, op mgl64.Mat4) mgl64.Mat4 {
	return mgl64.Translate3D(c[0], c[1], c[2]).
		Mul4(op).
		Mul4(mgl64.Translate3D(-c[0], -c[1], -c[2]))
}

// ResetTransforms sets every model matrix back to identity.
func (s *Scene) ResetTransforms() {
	for _, g := range s.groups {
		g.Model = mgl64.Ident4()
	}
}
