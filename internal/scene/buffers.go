package scene

// Buffers holds the flattened per-vertex channels and the global index
// array, ready for upload. Material channels repeat the group's material
// once per vertex.
type Buffers struct {
	Positions []float32 // 3 per vertex
	Normals   []float32 // 3 per vertex
	Diffuse   []float32 // 3 per vertex
	Ambient   []float32 // 3 per vertex
	Specular  []float32 // 3 per vertex
	Shininess []float32 // 1 per vertex
	Alpha     []float32 // 1 per vertex
	Indices   []uint32
}

// VertexCount returns the number of vertices in the buffers.
func (b *Buffers) VertexCount() int {
	return len(b.Positions) / 3
}

// Buffers flattens the scene. Each group's local indices are offset by the
// vertex count of all groups before it.
func (s *Scene) Buffers() Buffers {
	st := s.Stats()
	b := Buffers{
		Positions: make([]float32, 0, st.Vertices*3),
		Normals:   make([]float32, 0, st.Vertices*3),
		Diffuse:   make([]float32, 0, st.Vertices*3),
		Ambient:   make([]float32, 0, st.Vertices*3),
		Specular:  make([]float32, 0, st.Vertices*3),
		Shininess: make([]float32, 0, st.Vertices),
		Alpha:     make([]float32, 0, st.Vertices),
		Indices:   make([]uint32, 0, st.Triangles*3),
	}

	for _, g := range s.groups {
		m := g.Material
		for i, v := range g.Vertices {
			n := g.Normals[i]
			b.Positions = append(b.Positions, v[0], v[1], v[2])
			b.Normals = append(b.Normals, n[0], n[1], n[2])
			b.Diffuse = append(b.Diffuse, m.Diffuse[0], m.Diffuse[1], m.Diffuse[2])
			b.Ambient = append(b.Ambient, m.Ambient[0], m.Ambient[1], m.Ambient[2])
			b.Specular = append(b.Specular, m.Specular[0], m.Specular[1], m.Specular[2])
			b.Shininess = append(b.Shininess, m.Shininess)
			b.Alpha = append(b.Alpha, m.Alpha)
		}

		base := uint32(g.BaseVertex)
		for _, tri := range g.Triangles {
			b.Indices = append(b.Indices, tri[0]+base, tri[1]+base, tri[2]+base)
		}
	}

	return b
}
