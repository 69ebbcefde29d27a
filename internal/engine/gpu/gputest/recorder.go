// Package gputest provides an in-memory gpu.Backend that records every call.
package gputest

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/sceneview/internal/engine/gpu"
)

// Draw is one recorded DrawIndexed call together with the model matrix that
// was bound when it was issued.
type Draw struct {
	Mode   gpu.Primitive
	Count  int
	Offset int
	Model  mgl32.Mat4
}

// Attribute is one recorded BindAttribute call.
type Attribute struct {
	Buffer gpu.Handle
	Size   int
}

// Recorder implements gpu.Backend without a GPU.
//
// Set CompileErrors or LinkError before use to simulate driver failures.
type Recorder struct {
	CompileErrors map[gpu.Stage]string
	LinkError     string

	next      gpu.Handle
	Floats    map[gpu.Handle][]float32
	Indices   map[gpu.Handle][]uint32
	Shaders   map[gpu.Handle]gpu.Stage
	Programs  []gpu.Handle
	Used      gpu.Handle
	Deleted   []gpu.Handle
	Clears    int
	Draws     []Draw
	Viewports [][2]int

	uniformNames map[gpu.Location]string
	locations    map[string]gpu.Location
	Attributes   map[string]Attribute
	Mat4s        map[string]mgl32.Mat4
	Vec3s        map[string]mgl32.Vec3
	// UniformSets counts every uniform write by name.
	UniformSets map[string]int
}

// New returns an empty recorder.
func New() *Recorder {
	return &Recorder{
		Floats:       make(map[gpu.Handle][]float32),
		Indices:      make(map[gpu.Handle][]uint32),
		Shaders:      make(map[gpu.Handle]gpu.Stage),
		uniformNames: make(map[gpu.Location]string),
		locations:    make(map[string]gpu.Location),
		Attributes:   make(map[string]Attribute),
		Mat4s:        make(map[string]mgl32.Mat4),
		Vec3s:        make(map[string]mgl32.Vec3),
		UniformSets:  make(map[string]int),
	}
}

func (r *Recorder) handle() gpu.Handle {
	r.next++
	return r.next
}

// location hands out one location per name; attributes and uniforms share
// the space so every name maps back unambiguously.
func (r *Recorder) location(name string) gpu.Location {
	if loc, ok := r.locations[name]; ok {
		return loc
	}
	loc := gpu.Location(len(r.locations))
	r.locations[name] = loc
	r.uniformNames[loc] = name
	return loc
}

func (r *Recorder) CreateBuffer() gpu.Handle {
	return r.handle()
}

func (r *Recorder) UploadFloats(buf gpu.Handle, data []float32) {
	r.Floats[buf] = append([]float32(nil), data...)
}

func (r *Recorder) UploadIndices(buf gpu.Handle, data []uint32) {
	r.Indices[buf] = append([]uint32(nil), data...)
}

func (r *Recorder) CompileShader(stage gpu.Stage, src string) (gpu.Handle, error) {
	if msg, ok := r.CompileErrors[stage]; ok {
		return 0, errors.New(msg)
	}
	h := r.handle()
	r.Shaders[h] = stage
	return h, nil
}

func (r *Recorder) LinkProgram(vs, fs gpu.Handle) (gpu.Handle, error) {
	if r.LinkError != "" {
		return 0, errors.New(r.LinkError)
	}
	h := r.handle()
	r.Programs = append(r.Programs, h)
	return h, nil
}

func (r *Recorder) UseProgram(program gpu.Handle) {
	r.Used = program
}

func (r *Recorder) AttribLocation(program gpu.Handle, name string) gpu.Location {
	return r.location(name)
}

func (r *Recorder) UniformLocation(program gpu.Handle, name string) gpu.Location {
	return r.location(name)
}

func (r *Recorder) BindAttribute(loc gpu.Location, buf gpu.Handle, size int) {
	r.Attributes[r.uniformNames[loc]] = Attribute{Buffer: buf, Size: size}
}

func (r *Recorder) SetUniformMat4(loc gpu.Location, m mgl32.Mat4) {
	name := r.uniformNames[loc]
	r.Mat4s[name] = m
	r.UniformSets[name]++
}

func (r *Recorder) SetUniformVec3(loc gpu.Location, v mgl32.Vec3) {
	name := r.uniformNames[loc]
	r.Vec3s[name] = v
	r.UniformSets[name]++
}

func (r *Recorder) Viewport(width, height int) {
	r.Viewports = append(r.Viewports, [2]int{width, height})
}

func (r *Recorder) Clear() {
	r.Clears++
}

func (r *Recorder) DrawIndexed(mode gpu.Primitive, count, offset int) {
	r.Draws = append(r.Draws, Draw{Mode: mode, Count: count, Offset: offset, Model: r.Mat4s["modelMat"]})
}

// ReadPixels returns an opaque gradient so captures have known content.
func (r *Recorder) ReadPixels(width, height int) []byte {
	pixels := make([]byte, width*height*4)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := (y*width + x) * 4
			pixels[i] = byte(x)
			pixels[i+1] = byte(y)
			pixels[i+3] = 255
		}
	}
	return pixels
}

func (r *Recorder) DeleteBuffer(buf gpu.Handle) {
	r.Deleted = append(r.Deleted, buf)
}

func (r *Recorder) DeleteShader(shader gpu.Handle) {
	r.Deleted = append(r.Deleted, shader)
}

func (r *Recorder) DeleteProgram(program gpu.Handle) {
	r.Deleted = append(r.Deleted, program)
}

// ResetFrame forgets draws, clears and uniform counts, keeping uploads.
func (r *Recorder) ResetFrame() {
	r.Draws = nil
	r.Clears = 0
	r.UniformSets = make(map[string]int)
}

// DrawnTriangles sums the triangle count of every recorded draw.
func (r *Recorder) DrawnTriangles() int {
	n := 0
	for _, d := range r.Draws {
		n += d.Count / 3
	}
	return n
}

var _ gpu.Backend = (*Recorder)(nil)
