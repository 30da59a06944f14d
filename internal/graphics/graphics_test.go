package graphics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseDialect(t *testing.T) {
	tests := []struct {
		in      string
		want    Dialect
		wantErr bool
	}{
		{"glsl330", DialectGLSL330, false},
		{"", DialectGLSL330, false},
		{"WebGL2", DialectWebGL2, false},
		{"hlsl", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseDialect(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDialect(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDialect(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestShaderSetPaths(t *testing.T) {
	s := ShaderSet{Dir: "assets/shaders"}
	vert, frag := s.Paths("scene")
	if vert != filepath.Join("assets", "shaders", "scene.vert") || frag != filepath.Join("assets", "shaders", "scene.frag") {
		t.Errorf("glsl330 paths %s %s", vert, frag)
	}
	s.Dialect = DialectWebGL2
	vert, _ = s.Paths("text")
	if vert != filepath.Join("assets", "shaders", "webgl2", "text.vert") {
		t.Errorf("webgl2 path %s", vert)
	}
}

func TestMissingShaderFilesAreReported(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "only.vert"), []byte("void main(){}"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := NewShader(filepath.Join(dir, "only.vert"), filepath.Join(dir, "only.frag"), DialectGLSL330)
	if err == nil {
		t.Fatal("expected an error for the missing fragment shader")
	}
	if !strings.Contains(err.Error(), "only.frag") {
		t.Errorf("error %q does not name the missing file", err)
	}
	if s == nil || s.ID != 0 {
		t.Errorf("want a zero program, got %+v", s)
	}
}

func TestUniformNameMapping(t *testing.T) {
	s := &Shader{names: map[string]string{"MVP": "_uMVP"}, locations: map[string]int32{}}
	if got := s.uniformName("MVP"); got != "_uMVP" {
		t.Errorf("mapped name %q", got)
	}
	if got := s.uniformName("textColor"); got != "textColor" {
		t.Errorf("unmapped name %q", got)
	}
	// Without a program the location is -1 and cached.
	if loc := s.location("MVP"); loc != -1 {
		t.Errorf("location %d", loc)
	}
	if _, ok := s.locations["MVP"]; !ok {
		t.Error("location not cached")
	}
}

func TestCheckMeshData(t *testing.T) {
	tests := []struct {
		name     string
		vertices []float32
		colors   []float32
		wantErr  bool
	}{
		{"ok", make([]float32, 9), make([]float32, 9), false},
		{"empty", nil, nil, true},
		{"partial vertex", make([]float32, 8), make([]float32, 8), true},
		{"color mismatch", make([]float32, 9), make([]float32, 6), true},
	}
	for _, tt := range tests {
		if err := checkMeshData(tt.vertices, tt.colors); (err != nil) != tt.wantErr {
			t.Errorf("%s: error = %v", tt.name, err)
		}
	}
}

func TestCameraViewport(t *testing.T) {
	c := NewCamera(800, 400)
	if c.AspectRatio != 2 || c.FOV != DefaultFOV {
		t.Errorf("camera %+v", c)
	}
	c.SetViewport(0, 0)
	if c.AspectRatio != 2 {
		t.Error("zero viewport changed the aspect ratio")
	}
	m := c.GetProjectionMatrix()
	if m[0] == 0 || m[5] == 0 {
		t.Errorf("degenerate projection %v", m)
	}
}

func TestBakeFontAtlas(t *testing.T) {
	a, err := BakeFontAtlas(16)
	if err != nil {
		t.Fatal(err)
	}
	if len(a.Characters) != 95 {
		t.Errorf("baked %d glyphs, want printable ASCII", len(a.Characters))
	}
	if a.AtlasH&(a.AtlasH-1) != 0 {
		t.Errorf("atlas height %d is not a power of two", a.AtlasH)
	}
	for r, fc := range a.Characters {
		if fc.AtlasX+fc.Width > float32(a.AtlasW) || fc.AtlasY+fc.Height > float32(a.AtlasH) {
			t.Errorf("glyph %q outside the atlas: %+v", r, fc)
		}
	}
	if a.Characters[' '].Advance <= 0 {
		t.Error("space has no advance")
	}
}

func TestLayout(t *testing.T) {
	a, err := BakeFontAtlas(16)
	if err != nil {
		t.Fatal(err)
	}
	verts := a.Layout("Hi", 10, 20, 1)
	if len(verts) != 2*6*4 {
		t.Fatalf("got %d floats for two glyphs", len(verts))
	}
	// Spaces and unknown runes emit nothing.
	if got := a.Layout(" é", 0, 0, 1); len(got) != 0 {
		t.Errorf("blank text emitted %d floats", len(got))
	}

	w1, _ := a.Measure("Hi", 1)
	w2, _ := a.Measure("Hi", 2)
	if w1 <= 0 || w2 != 2*w1 {
		t.Errorf("measure %v at scale 1, %v at scale 2", w1, w2)
	}
}

func TestBundledShadersExist(t *testing.T) {
	for _, d := range []Dialect{DialectGLSL330, DialectWebGL2} {
		set := ShaderSet{Dir: filepath.Join("..", "..", "assets", "shaders"), Dialect: d}
		for _, name := range []string{"scene", "text"} {
			vert, frag := set.Paths(name)
			for _, p := range []string{vert, frag} {
				if _, err := os.Stat(p); err != nil {
					t.Errorf("%v %s: %v", d, name, err)
				}
			}
		}
	}
}

func TestTranslateWebGL2Shaders(t *testing.T) {
	set := ShaderSet{Dir: filepath.Join("..", "..", "assets", "shaders"), Dialect: DialectWebGL2}
	uniforms := map[string][]string{
		"scene": {"MVP"},
		"text":  {"projection", "textColor", "text"},
	}
	for name, want := range uniforms {
		vertPath, fragPath := set.Paths(name)
		vert, err := readSource(vertPath)
		if err != nil {
			t.Fatal(err)
		}
		frag, err := readSource(fragPath)
		if err != nil {
			t.Fatal(err)
		}

		s := &Shader{names: map[string]string{}, locations: map[string]int32{}}
		vs, fs, err := s.translate(vert, frag)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		for stage, code := range map[string]string{"vertex": vs, "fragment": fs} {
			if !strings.HasPrefix(strings.TrimSpace(code), "#version 330") {
				t.Errorf("%s %s: output does not target GLSL 330:\n%s", name, stage, code)
			}
		}
		for _, u := range want {
			if s.names[u] == "" {
				t.Errorf("%s: no mapped name for uniform %q (have %v)", name, u, s.names)
			}
		}
	}
}
