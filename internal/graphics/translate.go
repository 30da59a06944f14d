package graphics

import (
	"context"
	"fmt"
	"sync"

	gst "github.com/richinsley/goshadertranslator"
)

var (
	translatorOnce sync.Once
	translator     *gst.ShaderTranslator
	translatorErr  error
)

// shaderTranslator starts the translator on first use. Startup compiles a
// WebAssembly module, so it is shared by every shader.
func shaderTranslator() (*gst.ShaderTranslator, error) {
	translatorOnce.Do(func() {
		translator, translatorErr = gst.NewShaderTranslator(context.Background())
	})
	return translator, translatorErr
}

// translate turns GLSL ES 3.00 sources into desktop GLSL 330 and records how
// uniforms were renamed.
func (s *Shader) translate(vertexSrc, fragmentSrc string) (string, string, error) {
	t, err := shaderTranslator()
	if err != nil {
		return "", "", fmt.Errorf("start shader translator: %w", err)
	}

	vs, err := t.TranslateShader(vertexSrc, "vertex", gst.ShaderSpecWebGL2, gst.OutputFormatGLSL330)
	if err != nil {
		return "", "", fmt.Errorf("vertex shader translation failed: %w", err)
	}
	fs, err := t.TranslateShader(fragmentSrc, "fragment", gst.ShaderSpecWebGL2, gst.OutputFormatGLSL330)
	if err != nil {
		return "", "", fmt.Errorf("fragment shader translation failed: %w", err)
	}

	for name, v := range vs.Variables {
		s.names[name] = v.MappedName
	}
	for name, v := range fs.Variables {
		s.names[name] = v.MappedName
	}
	return vs.Code, fs.Code, nil
}
