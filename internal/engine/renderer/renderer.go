// Package renderer uploads scene geometry once and draws it every frame.
package renderer

import (
	"go.uber.org/zap"

	"github.com/Faultbox/sceneview/internal/engine/camera"
	"github.com/Faultbox/sceneview/internal/engine/gpu"
	"github.com/Faultbox/sceneview/internal/engine/lighting"
	"github.com/Faultbox/sceneview/internal/engine/shader"
	"github.com/Faultbox/sceneview/internal/logger"
	"github.com/Faultbox/sceneview/internal/scene"
)

// Stats describes the last rendered frame.
type Stats struct {
	Draws     int
	Triangles int
}

type uniforms struct {
	model, view, projection gpu.Location
	lightPos, eye           gpu.Location
	lightDiffuse            gpu.Location
	lightAmbient            gpu.Location
	lightSpec               gpu.Location
}

// Renderer draws a Scene through a gpu.Backend with the Phong program.
type Renderer struct {
	backend gpu.Backend
	program gpu.Handle
	loc     uniforms

	buffers  []gpu.Handle
	uploaded bool
	stats    Stats
	log      *zap.Logger
}

// New creates a renderer for an already linked Phong program.
func New(b gpu.Backend, program gpu.Handle) *Renderer {
	r := &Renderer{
		backend: b,
		program: program,
		log:     logger.Named("renderer"),
	}
	r.loc = uniforms{
		model:        b.UniformLocation(program, shader.UniformModel),
		view:         b.UniformLocation(program, shader.UniformView),
		projection:   b.UniformLocation(program, shader.UniformProjection),
		lightPos:     b.UniformLocation(program, shader.UniformLightPos),
		lightDiffuse: b.UniformLocation(program, shader.UniformLightDiffuse),
		lightAmbient: b.UniformLocation(program, shader.UniformLightAmbient),
		lightSpec:    b.UniformLocation(program, shader.UniformLightSpec),
		eye:          b.UniformLocation(program, shader.UniformEye),
	}
	return r
}

// Upload creates one buffer per vertex channel plus the index buffer and
// binds the program's attributes to them. Scene topology is immutable, so
// this happens once per scene.
func (r *Renderer) Upload(data scene.Buffers) {
	r.release()
	b := r.backend
	b.UseProgram(r.program)

	channels := []struct {
		attr string
		data []float32
		size int
	}{
		{shader.AttrPosition, data.Positions, 3},
		{shader.AttrDiffuse, data.Diffuse, 3},
		{shader.AttrAmbient, data.Ambient, 3},
		{shader.AttrSpecular, data.Specular, 3},
		{shader.AttrN, data.Shininess, 1},
		{shader.AttrAlpha, data.Alpha, 1},
		{shader.AttrNormal, data.Normals, 3},
	}
	for _, ch := range channels {
		buf := b.CreateBuffer()
		b.UploadFloats(buf, ch.data)
		b.BindAttribute(b.AttribLocation(r.program, ch.attr), buf, ch.size)
		r.buffers = append(r.buffers, buf)
	}

	idx := b.CreateBuffer()
	b.UploadIndices(idx, data.Indices)
	r.buffers = append(r.buffers, idx)
	r.uploaded = true

	r.log.Info("scene uploaded",
		zap.Int("vertices", data.VertexCount()),
		zap.Int("indices", len(data.Indices)),
		zap.Int("buffers", len(r.buffers)),
	)
}

// Frame clears the target, pushes camera and light uniforms and issues one
// indexed draw per group over that group's index range.
func (r *Renderer) Frame(s *scene.Scene, cam *camera.Camera, light lighting.PointLight) Stats {
	b := r.backend
	b.Clear()
	b.UseProgram(r.program)

	b.SetUniformMat4(r.loc.view, gpu.Mat4(cam.ViewMatrix()))
	b.SetUniformMat4(r.loc.projection, gpu.Mat4(cam.ProjectionMatrix()))
	b.SetUniformVec3(r.loc.eye, gpu.Vec3(cam.Eye))
	b.SetUniformVec3(r.loc.lightPos, gpu.Vec3(light.Position))
	b.SetUniformVec3(r.loc.lightDiffuse, light.Diffuse)
	b.SetUniformVec3(r.loc.lightAmbient, light.Ambient)
	b.SetUniformVec3(r.loc.lightSpec, light.Specular)

	r.stats = Stats{}
	if !r.uploaded {
		return r.stats
	}
	for _, g := range s.Groups() {
		b.SetUniformMat4(r.loc.model, gpu.Mat4(g.Model))
		b.DrawIndexed(gpu.Triangles, g.IndexCount(), g.StartIndex)
		r.stats.Draws++
		r.stats.Triangles += g.IndexCount() / 3
	}
	return r.stats
}

// Stats returns the counters of the last frame.
func (r *Renderer) Stats() Stats {
	return r.stats
}

// Resize updates the viewport. The projection keeps its fixed aspect.
func (r *Renderer) Resize(width, height int) {
	r.backend.Viewport(width, height)
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

func (r *Renderer) release() {
	for _, buf := range r.buffers {
		r.backend.DeleteBuffer(buf)
	}
	r.buffers = nil
	r.uploaded = false
}

// Close releases GPU buffers and the program.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	r.release()
	if r.program != 0 {
		r.backend.DeleteProgram(r.program)
		r.program = 0
	}
}
