package gpu

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/sceneview/internal/logger"
)

// GL implements Backend on an OpenGL 4.1 core context.
//
// A single vertex array object is created at startup and stays bound, so
// attribute and index buffer bindings are recorded once at upload time.
type GL struct {
	vao uint32
}

// NewGL loads the GL function pointers and sets the fixed pipeline state.
// IMPORTANT: Must be called AFTER the OpenGL context is created!
func NewGL() (*GL, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0, 0, 0, 1)
	gl.ClearDepth(1)

	b := &GL{}
	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)
	return b, nil
}

// Close releases the vertex array.
func (b *GL) Close() {
	if b.vao != 0 {
		gl.BindVertexArray(0)
		gl.DeleteVertexArrays(1, &b.vao)
		b.vao = 0
	}
}

func (b *GL) CreateBuffer() Handle {
	var buf uint32
	gl.GenBuffers(1, &buf)
	return Handle(buf)
}

func (b *GL) UploadFloats(buf Handle, data []float32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(buf))
	if len(data) == 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, gl.STATIC_DRAW)
		return
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
}

func (b *GL) UploadIndices(buf Handle, data []uint32) {
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, uint32(buf))
	if len(data) == 0 {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, 0, nil, gl.STATIC_DRAW)
		return
	}
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
}

func (b *GL) CompileShader(stage Stage, src string) (Handle, error) {
	var kind uint32
	switch stage {
	case VertexStage:
		kind = gl.VERTEX_SHADER
	case FragmentStage:
		kind = gl.FRAGMENT_SHADER
	default:
		return 0, fmt.Errorf("unsupported shader stage %d", stage)
	}

	shader := gl.CreateShader(kind)
	csource, free := gl.Strs(src + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, errors.New(strings.TrimRight(log, "\x00\n"))
	}
	return Handle(shader), nil
}

func (b *GL) LinkProgram(vs, fs Handle) (Handle, error) {
	program := gl.CreateProgram()
	gl.AttachShader(program, uint32(vs))
	gl.AttachShader(program, uint32(fs))
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(program, logLen, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return 0, errors.New(strings.TrimRight(log, "\x00\n"))
	}
	return Handle(program), nil
}

func (b *GL) UseProgram(program Handle) {
	gl.UseProgram(uint32(program))
}

func (b *GL) AttribLocation(program Handle, name string) Location {
	return Location(gl.GetAttribLocation(uint32(program), gl.Str(name+"\x00")))
}

func (b *GL) UniformLocation(program Handle, name string) Location {
	return Location(gl.GetUniformLocation(uint32(program), gl.Str(name+"\x00")))
}

func (b *GL) BindAttribute(loc Location, buf Handle, size int) {
	if loc < 0 {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(buf))
	gl.EnableVertexAttribArray(uint32(loc))
	gl.VertexAttribPointerWithOffset(uint32(loc), int32(size), gl.FLOAT, false, 0, 0)
}

func (b *GL) SetUniformMat4(loc Location, m mgl32.Mat4) {
	gl.UniformMatrix4fv(int32(loc), 1, false, &m[0])
}

func (b *GL) SetUniformVec3(loc Location, v mgl32.Vec3) {
	gl.Uniform3f(int32(loc), v[0], v[1], v[2])
}

func (b *GL) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (b *GL) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (b *GL) DrawIndexed(mode Primitive, count, offset int) {
	if count <= 0 {
		return
	}
	gl.DrawElementsWithOffset(primitive(mode), int32(count), gl.UNSIGNED_INT, uintptr(offset*4))
}

func (b *GL) ReadPixels(width, height int) []byte {
	pixels := make([]byte, width*height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels
}

func (b *GL) DeleteBuffer(buf Handle) {
	id := uint32(buf)
	gl.DeleteBuffers(1, &id)
}

func (b *GL) DeleteShader(shader Handle) {
	gl.DeleteShader(uint32(shader))
}

func (b *GL) DeleteProgram(program Handle) {
	gl.DeleteProgram(uint32(program))
}

func primitive(mode Primitive) uint32 {
	if mode != Triangles {
		panic(fmt.Sprintf("gpu: unsupported primitive %d", mode))
	}
	return gl.TRIANGLES
}
