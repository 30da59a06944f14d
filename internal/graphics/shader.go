package graphics

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Dialect is the language the shader files on disk are written in.
type Dialect int

const (
	// DialectGLSL330 sources are handed to the driver unchanged.
	DialectGLSL330 Dialect = iota
	// DialectWebGL2 sources are GLSL ES 3.00 and get translated first.
	DialectWebGL2
)

func (d Dialect) String() string {
	switch d {
	case DialectGLSL330:
		return "glsl330"
	case DialectWebGL2:
		return "webgl2"
	}
	return "unknown"
}

func ParseDialect(s string) (Dialect, error) {
	switch strings.ToLower(s) {
	case "glsl330", "":
		return DialectGLSL330, nil
	case "webgl2":
		return DialectWebGL2, nil
	}
	return 0, fmt.Errorf("unknown shader dialect %q", s)
}

// ShaderSet finds shader programs by name in a directory. WebGL2 sources
// live in a webgl2 subdirectory.
type ShaderSet struct {
	Dir     string
	Dialect Dialect
}

// Paths returns the vertex and fragment source paths of the named program.
func (s ShaderSet) Paths(name string) (vert, frag string) {
	dir := s.Dir
	if s.Dialect == DialectWebGL2 {
		dir = filepath.Join(dir, "webgl2")
	}
	return filepath.Join(dir, name+".vert"), filepath.Join(dir, name+".frag")
}

func (s ShaderSet) Load(name string) (*Shader, error) {
	vert, frag := s.Paths(name)
	return NewShader(vert, frag, s.Dialect)
}

// Shader is a linked program. A Shader with ID 0 failed to build; using
// it draws nothing.
type Shader struct {
	ID uint32

	// names maps source uniform names to the names the translator emitted.
	names     map[string]string
	locations map[string]int32
}

// NewShader reads, compiles and links a program. It always returns a usable
// *Shader; on error the program ID is 0 and the error says why.
func NewShader(vertexPath, fragmentPath string, dialect Dialect) (*Shader, error) {
	s := &Shader{
		names:     make(map[string]string),
		locations: make(map[string]int32),
	}

	vertexSource, verr := readSource(vertexPath)
	fragmentSource, ferr := readSource(fragmentPath)
	if err := errors.Join(verr, ferr); err != nil {
		return s, err
	}

	if dialect == DialectWebGL2 {
		var err error
		vertexSource, fragmentSource, err = s.translate(vertexSource, fragmentSource)
		if err != nil {
			return s, err
		}
	}

	program, err := compileProgram(vertexSource, fragmentSource)
	if err != nil {
		return s, fmt.Errorf("%s, %s: %w", filepath.Base(vertexPath), filepath.Base(fragmentPath), err)
	}
	s.ID = program
	return s, nil
}

func readSource(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("could not read shader file: %w", err)
	}
	return string(b), nil
}

func (s *Shader) Use() {
	gl.UseProgram(s.ID)
}

func (s *Shader) Delete() {
	if s.ID != 0 {
		gl.DeleteProgram(s.ID)
		s.ID = 0
	}
}

// uniformName resolves a source-level uniform name to the one in the
// compiled program.
func (s *Shader) uniformName(name string) string {
	if mapped, ok := s.names[name]; ok {
		return mapped
	}
	return name
}

func (s *Shader) location(name string) int32 {
	if loc, ok := s.locations[name]; ok {
		return loc
	}
	loc := int32(-1)
	if s.ID != 0 {
		loc = gl.GetUniformLocation(s.ID, gl.Str(s.uniformName(name)+"\x00"))
	}
	s.locations[name] = loc
	return loc
}

func (s *Shader) SetInt(name string, value int32) {
	gl.Uniform1i(s.location(name), value)
}

func (s *Shader) SetFloat(name string, value float32) {
	gl.Uniform1f(s.location(name), value)
}

func (s *Shader) SetVector3(name string, v mgl32.Vec3) {
	gl.Uniform3f(s.location(name), v.X(), v.Y(), v.Z())
}

func (s *Shader) SetMatrix4(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(s.location(name), 1, false, &m[0])
}

func compileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertexShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex: %w", err)
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment: %w", err)
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		info := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(info))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("failed to link program: %s", strings.TrimRight(info, "\x00"))
	}
	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		info := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(info))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("failed to compile shader: %s", strings.TrimRight(info, "\x00"))
	}
	return shader, nil
}
