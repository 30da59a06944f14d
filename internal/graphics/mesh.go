package graphics

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// Mesh is uploaded vertex and color data plus how to draw it. Attribute 0
// is the position, attribute 1 the color.
type Mesh struct {
	vao uint32
	vbo uint32
	cbo uint32

	mode  uint32
	fill  uint32
	count int32
}

func checkMeshData(vertices, colors []float32) error {
	if len(vertices) == 0 || len(vertices)%3 != 0 {
		return fmt.Errorf("vertex data has %d floats, want a positive multiple of 3", len(vertices))
	}
	if len(colors) != len(vertices) {
		return fmt.Errorf("%d color floats for %d vertex floats", len(colors), len(vertices))
	}
	return nil
}

// NewMesh uploads vertices and colors. mode is the primitive (gl.TRIANGLES)
// and fill the polygon mode (gl.FILL or gl.LINE).
func NewMesh(mode uint32, vertices, colors []float32, fill uint32) (*Mesh, error) {
	if err := checkMeshData(vertices, colors); err != nil {
		return nil, err
	}
	m := &Mesh{mode: mode, fill: fill, count: int32(len(vertices) / 3)}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, gl.PtrOffset(0))

	gl.GenBuffers(1, &m.cbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.cbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(colors)*4, gl.Ptr(colors), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, 3*4, gl.PtrOffset(0))

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return m, nil
}

func (m *Mesh) Draw() {
	gl.PolygonMode(gl.FRONT_AND_BACK, m.fill)
	gl.BindVertexArray(m.vao)
	gl.DrawArrays(m.mode, 0, m.count)
	gl.BindVertexArray(0)
}

func (m *Mesh) Dispose() {
	if m.vao == 0 {
		return
	}
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteBuffers(1, &m.cbo)
	gl.DeleteVertexArrays(1, &m.vao)
	m.vao, m.vbo, m.cbo = 0, 0, 0
}
