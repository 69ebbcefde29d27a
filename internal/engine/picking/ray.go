// Package picking casts rays from the cursor into the scene to find the group
// under it.
package picking

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/sceneview/internal/scene"
)

// Ray represents a ray in world space.
type Ray struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3 // normalized
}

// AABB is an axis-aligned bounding box in world space.
type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// ScreenToRay converts window coordinates to a world-space ray.
// invViewProj is the inverse of projection·view.
func ScreenToRay(screenX, screenY, viewportW, viewportH float64, invViewProj mgl64.Mat4) Ray {
	ndcX := 2*screenX/viewportW - 1
	ndcY := 1 - 2*screenY/viewportH // window y grows downward

	near := unproject(invViewProj, ndcX, ndcY, -1)
	far := unproject(invViewProj, ndcX, ndcY, 1)

	dir := far.Sub(near)
	if dir.Len() > 0 {
		dir = dir.Normalize()
	}
	return Ray{Origin: near, Direction: dir}
}

func unproject(inv mgl64.Mat4, x, y, z float64) mgl64.Vec3 {
	p := inv.Mul4x1(mgl64.Vec4{x, y, z, 1})
	if p[3] != 0 {
		return p.Vec3().Mul(1 / p[3])
	}
	return p.Vec3()
}

// IntersectAABB tests the ray against box using the slab method.
// If the ray starts inside the box the exit distance is returned.
func (r Ray) IntersectAABB(box AABB) (t float64, hit bool) {
	tmin := -math.MaxFloat64
	tmax := math.MaxFloat64

	for axis := 0; axis < 3; axis++ {
		o, d := r.Origin[axis], r.Direction[axis]
		if d == 0 {
			if o < box.Min[axis] || o > box.Max[axis] {
				return 0, false
			}
			continue
		}
		t1 := (box.Min[axis] - o) / d
		t2 := (box.Max[axis] - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}

// NewAABB creates a box from two corners in any order.
func NewAABB(a, b mgl64.Vec3) AABB {
	var box AABB
	for i := 0; i < 3; i++ {
		box.Min[i] = math.Min(a[i], b[i])
		box.Max[i] = math.Max(a[i], b[i])
	}
	return box
}

// GroupBounds returns the world-space box of g's vertices under its model
// matrix. ok is false for a group with no vertices.
func GroupBounds(g *scene.TriangleGroup) (box AABB, ok bool) {
	if len(g.Vertices) == 0 {
		return AABB{}, false
	}
	for i, v := range g.Vertices {
		p := mgl64.TransformCoordinate(mgl64.Vec3{float64(v[0]), float64(v[1]), float64(v[2])}, g.Model)
		if i == 0 {
			box = AABB{Min: p, Max: p}
			continue
		}
		for a := 0; a < 3; a++ {
			box.Min[a] = math.Min(box.Min[a], p[a])
			box.Max[a] = math.Max(box.Max[a], p[a])
		}
	}
	return box, true
}

// Pick returns the index of the nearest group whose bounds the ray hits.
func Pick(s *scene.Scene, r Ray) (int, bool) {
	best, bestT := scene.None, math.MaxFloat64
	for i, g := range s.Groups() {
		box, ok := GroupBounds(g)
		if !ok {
			continue
		}
		if t, hit := r.IntersectAABB(box); hit && t < bestT {
			best, bestT = i, t
		}
	}
	return best, best != scene.None
}
