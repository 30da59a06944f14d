package maze

import (
	"cube-maze/internal/geometry"
	"cube-maze/internal/graphics"
	renderer "cube-maze/internal/graphics/renderer"
	"cube-maze/internal/profiling"
	"cube-maze/internal/world"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Ground plane origin, far below and behind the maze.
var planeOrigin = mgl32.Vec3{-68, -10, 60}

// Maze draws the ground, the board and the cube stacks.
type Maze struct {
	solid *graphics.Mesh
	wire  *graphics.Mesh
	board *graphics.Mesh
	plane *graphics.Mesh
}

func NewMaze() *Maze {
	return &Maze{}
}

func (m *Maze) Init() error {
	half := world.CellSize / 2

	v, c := geometry.Box(half, half, half)
	solid, err := graphics.NewMesh(gl.TRIANGLES, v, c, gl.FILL)
	if err != nil {
		return err
	}
	wire, err := graphics.NewMesh(gl.TRIANGLES, v, c, gl.LINE)
	if err != nil {
		solid.Dispose()
		return err
	}

	v, c = geometry.Box(half, 0.05, half)
	board, err := graphics.NewMesh(gl.TRIANGLES, v, c, gl.FILL)
	if err != nil {
		solid.Dispose()
		wire.Dispose()
		return err
	}

	v, c = geometry.Plane()
	plane, err := graphics.NewMesh(gl.TRIANGLES, v, c, gl.FILL)
	if err != nil {
		solid.Dispose()
		wire.Dispose()
		board.Dispose()
		return err
	}

	m.solid, m.wire, m.board, m.plane = solid, wire, board, plane
	return nil
}

func (m *Maze) Render(ctx renderer.RenderContext) {
	defer profiling.Track("maze.Render")()

	w := ctx.State.World
	ctx.Draw(m.plane, mgl32.Translate3D(planeOrigin.Elem()))
	ctx.Draw(m.board, mgl32.Translate3D(w.Board.Origin()))

	w.Stacks(func(row, col, level int, solid bool) {
		mesh := m.wire
		if solid {
			mesh = m.solid
		}
		ctx.Draw(mesh, mgl32.Translate3D(world.CubeOrigin(row, col, level)))
	})
}

func (m *Maze) Dispose() {
	for _, mesh := range []*graphics.Mesh{m.solid, m.wire, m.board, m.plane} {
		if mesh != nil {
			mesh.Dispose()
		}
	}
}

func (m *Maze) SetViewport(width, height int) {}
