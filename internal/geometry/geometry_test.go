package geometry

import "testing"

func TestVertexCounts(t *testing.T) {
	type mesh func() ([]float32, []float32)
	tests := []struct {
		name  string
		build mesh
		want  int
	}{
		{"box", func() ([]float32, []float32) { return Box(0.2, 0.2, 0.2) }, 36},
		{"triangle", func() ([]float32, []float32) { return Triangle(0.1, 0.2, 0.3, 0.4) }, 3},
		{"plane", Plane, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, c := tt.build()
			if len(v) != 3*tt.want {
				t.Errorf("got %d vertex floats, want %d", len(v), 3*tt.want)
			}
			if len(c) != len(v) {
				t.Errorf("got %d color floats for %d vertex floats", len(c), len(v))
			}
		})
	}
}

func TestBoxExtents(t *testing.T) {
	v, _ := Box(0.2, 0.05, 0.2)
	for i := 0; i < len(v); i += 3 {
		x, y, z := v[i], v[i+1], v[i+2]
		if x != 0.2 && x != -0.2 {
			t.Fatalf("vertex %d: x=%v", i/3, x)
		}
		if y != 0.05 && y != -0.05 {
			t.Fatalf("vertex %d: y=%v", i/3, y)
		}
		if z != 0 && z != 0.4 {
			t.Fatalf("vertex %d: z=%v", i/3, z)
		}
	}
}

func TestBoxFaceColors(t *testing.T) {
	_, c := Box(1, 1, 1)
	// Second face is blue.
	if c[18] != 0 || c[19] != 0 || c[20] != 1 {
		t.Errorf("right face color %v", c[18:21])
	}
	// Last vertex is white.
	n := len(c)
	if c[n-3] != 1 || c[n-2] != 1 || c[n-1] != 1 {
		t.Errorf("last color %v", c[n-3:])
	}
}

func TestUniformColors(t *testing.T) {
	c := UniformColors(4, 0.5, 0.25, 1)
	if len(c) != 12 {
		t.Fatalf("len %d", len(c))
	}
	for i := 0; i < len(c); i += 3 {
		if c[i] != 0.5 || c[i+1] != 0.25 || c[i+2] != 1 {
			t.Fatalf("color %d: %v", i/3, c[i:i+3])
		}
	}
	if len(UniformColors(0, 1, 1, 1)) != 0 {
		t.Error("zero colors should be empty")
	}
}
