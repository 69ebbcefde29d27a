// Package gpu defines the narrow GPU surface the viewer renders through.
//
// The OpenGL implementation lives in GL; tests use gputest.Recorder.
package gpu

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Handle names a GPU object (buffer, shader or program). Zero is never valid.
type Handle uint32

// Location is an attribute or uniform location. Negative means inactive.
type Location int32

// Stage is a shader stage.
type Stage int

const (
	VertexStage Stage = iota
	FragmentStage
)

func (s Stage) String() string {
	switch s {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	default:
		return "unknown"
	}
}

// Primitive is the topology of an indexed draw.
type Primitive int

// Triangles is the only topology the viewer draws.
const Triangles Primitive = 0

// Backend is everything the renderer needs from a GPU.
//
// All calls must be made from the goroutine that owns the GL context.
type Backend interface {
	CreateBuffer() Handle
	UploadFloats(buf Handle, data []float32)
	UploadIndices(buf Handle, data []uint32)

	// CompileShader returns the driver's info log as the error on failure.
	CompileShader(stage Stage, src string) (Handle, error)
	// LinkProgram returns the driver's info log as the error on failure.
	LinkProgram(vs, fs Handle) (Handle, error)
	UseProgram(program Handle)

	AttribLocation(program Handle, name string) Location
	UniformLocation(program Handle, name string) Location
	// BindAttribute feeds buf into loc, size floats per vertex.
	BindAttribute(loc Location, buf Handle, size int)

	SetUniformMat4(loc Location, m mgl32.Mat4)
	SetUniformVec3(loc Location, v mgl32.Vec3)

	Viewport(width, height int)
	Clear()
	// DrawIndexed draws count indices starting at index offset of the bound
	// index buffer.
	DrawIndexed(mode Primitive, count, offset int)
	// ReadPixels returns the RGBA framebuffer contents, bottom row first.
	ReadPixels(width, height int) []byte

	DeleteBuffer(buf Handle)
	DeleteShader(shader Handle)
	DeleteProgram(program Handle)
}

// Mat4 narrows a float64 matrix for uniform upload.
func Mat4(m mgl64.Mat4) mgl32.Mat4 {
	var out mgl32.Mat4
	for i, v := range m {
		out[i] = float32(v)
	}
	return out
}

// Vec3 narrows a float64 vector for uniform upload.
func Vec3(v mgl64.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
}
