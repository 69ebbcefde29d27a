// Package scene holds the loaded triangle groups and the per-group model
// transforms that the viewer mutates.
//
// Topology is fixed once Build returns: groups are never added or removed,
// only their model matrices change. Group order is both render order and
// selection order.
package scene

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/sceneview/internal/assets"
)

var (
	// ErrMalformedAsset reports a group whose arrays disagree.
	ErrMalformedAsset = errors.New("malformed scene asset")
	// ErrInvalidGroupIndex reports a transform aimed at a group that does not exist.
	ErrInvalidGroupIndex = errors.New("invalid group index")
)

// Material is the uniform surface description of one group.
type Material struct {
	Diffuse   [3]float32
	Ambient   [3]float32
	Specular  [3]float32
	Shininess float32
	Alpha     float32
}

// TriangleGroup is one independently transformable mesh.
type TriangleGroup struct {
	Vertices  [][3]float32
	Normals   [][3]float32
	Triangles [][3]uint32
	Material  Material

	// Centroid is the mean of Vertices, fixed at load time.
	Centroid mgl64.Vec3
	// Model maps object space to world space.
	Model mgl64.Mat4

	// StartIndex and EndIndex delimit this group's slice of the global
	// index buffer.
	StartIndex int
	EndIndex   int
	// BaseVertex is the number of vertices in all preceding groups.
	BaseVertex int
}

// IndexCount returns the number of indices drawn for this group.
func (g *TriangleGroup) IndexCount() int {
	return g.EndIndex - g.StartIndex
}

// Scene is the ordered set of groups.
type Scene struct {
	groups []*TriangleGroup
}

// Stats summarises a scene for logging.
type Stats struct {
	Groups    int
	Vertices  int
	Triangles int
}

// Build validates the raw asset and lays the groups out in order.
// A nil or empty input yields an empty scene.
func Build(raw []assets.RawGroup) (*Scene, error) {
	s := &Scene{groups: make([]*TriangleGroup, 0, len(raw))}

	var baseVertex, index int
	for i := range raw {
		r := &raw[i]
		if len(r.Normals) != len(r.Vertices) {
			return nil, fmt.Errorf("%w: group %d has %d vertices but %d normals",
				ErrMalformedAsset, i, len(r.Vertices), len(r.Normals))
		}
		for t, tri := range r.Triangles {
			for _, v := range tri {
				if int(v) >= len(r.Vertices) {
					return nil, fmt.Errorf("%w: group %d triangle %d references vertex %d of %d",
						ErrMalformedAsset, i, t, v, len(r.Vertices))
				}
			}
		}

		g := &TriangleGroup{
			Vertices:  append([][3]float32(nil), r.Vertices...),
			Normals:   append([][3]float32(nil), r.Normals...),
			Triangles: append([][3]uint32(nil), r.Triangles...),
			Material: Material{
				Diffuse:   r.Material.Diffuse,
				Ambient:   r.Material.Ambient,
				Specular:  r.Material.Specular,
				Shininess: r.Material.N,
				Alpha:     r.Material.Alpha,
			},
			Centroid:   centroid(r.Vertices),
			Model:      mgl64.Ident4(),
			StartIndex: index,
			BaseVertex: baseVertex,
		}
		index += 3 * len(r.Triangles)
		g.EndIndex = index
		baseVertex += len(r.Vertices)

		s.groups = append(s.groups, g)
	}

	return s, nil
}

func centroid(vertices [][3]float32) mgl64.Vec3 {
	var sum mgl64.Vec3
	if len(vertices) == 0 {
		return sum
	}
	for _, v := range vertices {
		sum = sum.Add(mgl64.Vec3{float64(v[0]), float64(v[1]), float64(v[2])})
	}
	return sum.Mul(1 / float64(len(vertices)))
}

// Len returns the number of groups.
func (s *Scene) Len() int {
	return len(s.groups)
}

// Group returns group i, or nil when i is out of range.
func (s *Scene) Group(i int) *TriangleGroup {
	if i < 0 || i >= len(s.groups) {
		return nil
	}
	return s.groups[i]
}

// Groups returns the groups in render order. The slice must not be modified.
func (s *Scene) Groups() []*TriangleGroup {
	return s.groups
}

// Stats counts groups, vertices and triangles.
func (s *Scene) Stats() Stats {
	st := Stats{Groups: len(s.groups)}
	for _, g := range s.groups {
		st.Vertices += len(g.Vertices)
		st.Triangles += len(g.Triangles)
	}
	return st
}
