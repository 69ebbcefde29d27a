package stl

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const cubeCorner = `solid corner
  facet normal 0 0 1
    outer loop
      vertex 0 0 0
      vertex 1 0 0
      vertex 0 1 0
    endloop
  endfacet
  facet normal 0 0 -1
    outer loop
      vertex 1 0 0
      vertex 1 1 0
      vertex 0 1 0
    endloop
  endfacet
endsolid corner
`

// binarySTL builds a binary STL whose header begins with "solid", as some
// exporters write.
func binarySTL(facets []Facet) []byte {
	var buf bytes.Buffer
	header := make([]byte, headerSize)
	copy(header, "solid exported by a binary writer")
	buf.Write(header)
	binary.Write(&buf, binary.LittleEndian, uint32(len(facets)))
	for _, f := range facets {
		binary.Write(&buf, binary.LittleEndian, f.Normal)
		for _, v := range f.Vertices {
			binary.Write(&buf, binary.LittleEndian, v)
		}
		binary.Write(&buf, binary.LittleEndian, uint16(0))
	}
	return buf.Bytes()
}

func TestParseASCII(t *testing.T) {
	m, err := Parse([]byte(cubeCorner))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if m.Binary {
		t.Error("detected as binary")
	}
	if m.Name != "corner" {
		t.Errorf("name = %q", m.Name)
	}
	if len(m.Facets) != 2 {
		t.Fatalf("expected 2 facets, got %d", len(m.Facets))
	}
	if m.Facets[1].Normal != (mgl32.Vec3{0, 0, -1}) {
		t.Errorf("facet 1 normal = %v", m.Facets[1].Normal)
	}
	if m.Facets[1].Vertices[1] != (mgl32.Vec3{1, 1, 0}) {
		t.Errorf("facet 1 vertex 1 = %v", m.Facets[1].Vertices[1])
	}
}

func TestParseBinary(t *testing.T) {
	facets := []Facet{
		{Normal: mgl32.Vec3{0, 0, 1}, Vertices: [3]mgl32.Vec3{{0, 0, 0}, {2, 0, 0}, {0, 2, 0}}},
		{Normal: mgl32.Vec3{1, 0, 0}, Vertices: [3]mgl32.Vec3{{0, 0, 0}, {0, 2, 0}, {0, 0, 2.5}}},
	}
	m, err := Parse(binarySTL(facets))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !m.Binary {
		t.Error("binary file with a solid header detected as ASCII")
	}
	if len(m.Facets) != 2 || m.Facets[1] != facets[1] {
		t.Errorf("facets = %+v", m.Facets)
	}
}

func TestParseErrors(t *testing.T) {
	truncated := binarySTL([]Facet{{}, {}})
	truncated = truncated[:len(truncated)-10]

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"short binary", []byte{1, 2, 3}, ErrTruncatedSTLData},
		{"short facet list", truncated, ErrTruncatedSTLData},
		{"bad number", []byte("solid x\nfacet normal 0 0 z\nendfacet\nendsolid x\n"), ErrMalformedSTL},
		{"two vertices", []byte("solid x\nfacet normal 0 0 1\nvertex 0 0 0\nvertex 1 0 0\nendfacet\nendsolid x\n"), ErrMalformedSTL},
		{"unterminated", []byte("solid x\nfacet normal 0 0 1\nvertex 0 0 0\n"), ErrTruncatedSTLData},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.data); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestToGroup(t *testing.T) {
	m, err := Parse([]byte(cubeCorner))
	if err != nil {
		t.Fatal(err)
	}
	g := m.ToGroup(DefaultMaterial())

	// Four distinct corners shared by two faces.
	if len(g.Vertices) != 4 || len(g.Normals) != 4 {
		t.Fatalf("vertices %d normals %d, want 4", len(g.Vertices), len(g.Normals))
	}
	want := [][3]uint32{{0, 1, 2}, {1, 3, 2}}
	for i, tri := range g.Triangles {
		if tri != want[i] {
			t.Errorf("triangle %d = %v, want %v", i, tri, want[i])
		}
	}

	// (0,1,0) Z-up becomes (0,0,-1) Y-up.
	if g.Vertices[2] != [3]float32{0, 0, -1} {
		t.Errorf("vertex 2 = %v", g.Vertices[2])
	}
	// Shared vertex 1 keeps the first face's normal, (0,0,1) -> (0,1,0).
	if g.Normals[1] != [3]float32{0, 1, 0} {
		t.Errorf("normal 1 = %v", g.Normals[1])
	}
	if g.Normals[3] != [3]float32{0, -1, 0} {
		t.Errorf("normal 3 = %v", g.Normals[3])
	}
	if g.Material.N != 11 || g.Material.Diffuse != [3]float32{0.6, 0.4, 0.4} {
		t.Errorf("material = %+v", g.Material)
	}
}

func TestToGroupMergesNearlyEqual(t *testing.T) {
	m := &Mesh{Facets: []Facet{
		{Vertices: [3]mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}},
		{Vertices: [3]mgl32.Vec3{{1.0000001, 0, 0}, {1, 1, 0}, {0, 1, 0}}},
	}}
	if g := m.ToGroup(DefaultMaterial()); len(g.Vertices) != 4 {
		t.Errorf("expected 4 merged vertices, got %d", len(g.Vertices))
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corner.stl")
	if err := os.WriteFile(path, []byte(cubeCorner), 0644); err != nil {
		t.Fatal(err)
	}
	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(m.Facets) != 2 {
		t.Errorf("expected 2 facets, got %d", len(m.Facets))
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.stl")); err == nil {
		t.Error("expected error for missing file")
	}
}
