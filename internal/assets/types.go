package assets

// RawMaterial is the per-group material block of the triangle asset.
type RawMaterial struct {
	Diffuse  [3]float32 `json:"diffuse"`
	Ambient  [3]float32 `json:"ambient"`
	Specular [3]float32 `json:"specular"`
	N        float32    `json:"n"`
	Alpha    float32    `json:"alpha"`
}

// RawGroup is one entry of the triangle asset: a mesh with a uniform material.
// Triangle indices are local to the group's own vertex list.
type RawGroup struct {
	Material  RawMaterial  `json:"material"`
	Vertices  [][3]float32 `json:"vertices"`
	Normals   [][3]float32 `json:"normals"`
	Triangles [][3]uint32  `json:"triangles"`
}

// RawLight is one entry of the light asset.
type RawLight struct {
	X        float32    `json:"x"`
	Y        float32    `json:"y"`
	Z        float32    `json:"z"`
	Diffuse  [3]float32 `json:"diffuse"`
	Ambient  [3]float32 `json:"ambient"`
	Specular [3]float32 `json:"specular"`
}
