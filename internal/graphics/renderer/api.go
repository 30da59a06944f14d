package renderer

import (
	"cube-maze/internal/game"
	"cube-maze/internal/graphics"

	"github.com/go-gl/mathgl/mgl32"
)

// RenderContext provides shared context for all renderables
type RenderContext struct {
	Camera *graphics.Camera
	Shader *graphics.Shader // scene program, already in use
	State  *game.State
	View   mgl32.Mat4
	Proj   mgl32.Mat4
	FPS    int
}

// Draw renders mesh with the given model matrix.
func (ctx RenderContext) Draw(mesh *graphics.Mesh, model mgl32.Mat4) {
	ctx.Shader.SetMatrix4("MVP", ctx.Proj.Mul4(ctx.View).Mul4(model))
	mesh.Draw()
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}
