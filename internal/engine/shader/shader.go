// Package shader builds GPU programs and holds the embedded Phong sources.
package shader

import (
	_ "embed"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/sceneview/internal/engine/gpu"
	"github.com/Faultbox/sceneview/internal/logger"
)

// PhongVertexShader transforms vertices to clip space and passes world-space
// position, normal and material to the fragment stage.
//
//go:embed phong.vert
var PhongVertexShader string

// PhongFragmentShader shades each fragment with the Blinn-Phong half vector.
//
//go:embed phong.frag
var PhongFragmentShader string

// Attribute names consumed by the Phong program.
const (
	AttrPosition = "vertexPosition"
	AttrDiffuse  = "vertexDiffuse"
	AttrAmbient  = "vertexAmbient"
	AttrSpecular = "vertexSpec"
	AttrN        = "vertexN"
	AttrAlpha    = "vertexAlpha"
	AttrNormal   = "vertexNormal"
)

// Uniform names consumed by the Phong program.
const (
	UniformModel        = "modelMat"
	UniformView         = "viewMat"
	UniformProjection   = "projectionMat"
	UniformLightPos     = "lightPos"
	UniformLightDiffuse = "lightDiffuse"
	UniformLightAmbient = "lightAmbient"
	UniformLightSpec    = "lightSpec"
	UniformEye          = "eyePosition"
)

// CompileError is a shader stage that failed to compile.
type CompileError struct {
	Stage gpu.Stage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s shader: %s", e.Stage, e.Log)
}

// LinkError is a program that failed to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return "link: " + e.Log
}

// CompileProgram compiles vertex and fragment shaders and links them into a program.
// Shader objects are released once the program is linked.
func CompileProgram(b gpu.Backend, vertexSrc, fragmentSrc string) (gpu.Handle, error) {
	vs, err := b.CompileShader(gpu.VertexStage, vertexSrc)
	if err != nil {
		return 0, &CompileError{Stage: gpu.VertexStage, Log: err.Error()}
	}
	defer b.DeleteShader(vs)

	fs, err := b.CompileShader(gpu.FragmentStage, fragmentSrc)
	if err != nil {
		return 0, &CompileError{Stage: gpu.FragmentStage, Log: err.Error()}
	}
	defer b.DeleteShader(fs)

	program, err := b.LinkProgram(vs, fs)
	if err != nil {
		return 0, &LinkError{Log: err.Error()}
	}

	logger.Debug("shader program created", zap.Uint32("program", uint32(program)))
	return program, nil
}

// Phong builds the embedded Phong program.
func Phong(b gpu.Backend) (gpu.Handle, error) {
	return CompileProgram(b, PhongVertexShader, PhongFragmentShader)
}
