// Package geometry builds the vertex and color arrays for the scene's meshes.
// Every array is flat: three floats per vertex.
package geometry

// Box returns a box spanning [-x,x] and [-y,y] with depth [0,2z], as 12
// triangles. Each face has a fixed color.
func Box(x, y, z float32) (vertices, colors []float32) {
	d := 2 * z
	vertices = []float32{
		// back
		-x, -y, 0, x, -y, 0, x, y, 0,
		x, y, 0, -x, y, 0, -x, -y, 0,
		// right
		x, y, 0, x, -y, 0, x, -y, d,
		x, y, 0, x, y, d, x, -y, d,
		// left
		-x, y, 0, -x, -y, 0, -x, y, d,
		-x, -y, 0, -x, -y, d, -x, y, d,
		// front
		x, y, d, -x, y, d, x, -y, d,
		-x, -y, d, x, -y, d, -x, y, d,
		// top
		x, y, d, -x, y, d, x, y, 0,
		x, y, 0, -x, y, 0, -x, y, d,
		// bottom
		x, -y, d, -x, -y, d, x, -y, 0,
		x, -y, 0, -x, -y, 0, -x, -y, d,
	}

	faces := [][3]float32{
		{152.0 / 255, 205.0 / 255, 152.0 / 255},
		{0, 0, 1},
		{1, 0, 0},
		{0, 1, 0},
		{1, 1, 1},
	}
	colors = make([]float32, 0, len(vertices))
	for _, c := range faces {
		for i := 0; i < 6; i++ {
			colors = append(colors, c[:]...)
		}
	}
	// The bottom face blends three colors per triangle.
	for i := 0; i < 2; i++ {
		colors = append(colors, 1, 1, 0, 1, 0, 1, 1, 1, 1)
	}
	return vertices, colors
}

// Triangle returns a flat white triangle in the xz plane.
func Triangle(x, y, z, w float32) (vertices, colors []float32) {
	vertices = []float32{
		x, 0, z,
		w, 0, y,
		-x, 0, -z,
	}
	return vertices, UniformColors(3, 1, 1, 1)
}

// PlaneSize is the edge length of the ground quad.
const PlaneSize = 165

// Plane returns the ground quad, extending from the origin along +x and -z.
func Plane() (vertices, colors []float32) {
	const s = PlaneSize
	vertices = []float32{
		s, 0, 0,
		0, 0, 0,
		0, 0, -s,
		s, 0, 0,
		0, 0, -s,
		s, 0, -s,
	}
	return vertices, UniformColors(6, 0, 128.0/255, 1)
}

// UniformColors returns n copies of the color (r, g, b).
func UniformColors(n int, r, g, b float32) []float32 {
	out := make([]float32, 0, 3*n)
	for i := 0; i < n; i++ {
		out = append(out, r, g, b)
	}
	return out
}
