package stl

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/sceneview/internal/assets"
)

// DefaultMaterial is the material given to converted meshes.
func DefaultMaterial() assets.RawMaterial {
	return assets.RawMaterial{
		Ambient:  [3]float32{0.1, 0.1, 0.1},
		Diffuse:  [3]float32{0.6, 0.4, 0.4},
		Specular: [3]float32{0.3, 0.3, 0.3},
		N:        11,
		Alpha:    1,
	}
}

// ZUpToYUp maps a Z-up point (modelling tools) to the viewer's Y-up frame.
func ZUpToYUp(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{v[0], v[2], -v[1]}
}

type vertexKey [3]int64

// key rounds to six decimals so nearly coincident vertices merge.
func key(v mgl32.Vec3) vertexKey {
	var k vertexKey
	for i := range v {
		k[i] = int64(math.Round(float64(v[i]) * 1e6))
	}
	return k
}

// ToGroup converts the mesh into a single triangle group in Y-up space.
// Shared vertices are merged and keep the normal of the first face that
// introduced them.
func (m *Mesh) ToGroup(mat assets.RawMaterial) assets.RawGroup {
	g := assets.RawGroup{
		Material:  mat,
		Triangles: make([][3]uint32, 0, len(m.Facets)),
	}
	index := make(map[vertexKey]uint32)

	for _, f := range m.Facets {
		normal := ZUpToYUp(f.Normal)
		var tri [3]uint32
		for i, v := range f.Vertices {
			v = ZUpToYUp(v)
			k := key(v)
			idx, ok := index[k]
			if !ok {
				idx = uint32(len(g.Vertices))
				index[k] = idx
				g.Vertices = append(g.Vertices, v)
				g.Normals = append(g.Normals, normal)
			}
			tri[i] = idx
		}
		g.Triangles = append(g.Triangles, tri)
	}
	return g
}
