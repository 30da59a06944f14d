package renderer

import (
	"fmt"
	"log"

	"cube-maze/internal/game"
	"cube-maze/internal/graphics"
	"cube-maze/internal/profiling"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
	camera      *graphics.Camera
	scene       *graphics.Shader
}

// NewRenderer configures GL, loads the scene program and initializes every
// renderable. A scene shader that fails to build is logged and the scene
// renders empty.
func NewRenderer(shaders graphics.ShaderSet, width, height int, rs ...Renderable) (*Renderer, error) {
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)

	scene, err := shaders.Load("scene")
	if err != nil {
		log.Printf("scene shader: %v", err)
	}

	r := &Renderer{
		renderables: rs,
		camera:      graphics.NewCamera(width, height),
		scene:       scene,
	}
	for i, rr := range rs {
		if err := rr.Init(); err != nil {
			for j := i - 1; j >= 0; j-- {
				rs[j].Dispose()
			}
			scene.Delete()
			return nil, fmt.Errorf("init renderable %T: %w", rr, err)
		}
	}
	r.SetViewport(width, height)
	return r, nil
}

// Render draws one frame of s.
func (r *Renderer) Render(s *game.State, fps int) {
	defer profiling.Track("renderer.Render")()

	gl.ClearColor(0.3, 0.3, 0.3, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	r.scene.Use()
	ctx := RenderContext{
		Camera: r.camera,
		Shader: r.scene,
		State:  s,
		View:   s.Camera.View(s.Player),
		Proj:   r.camera.GetProjectionMatrix(),
		FPS:    fps,
	}
	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// SetViewport resizes the GL viewport, the projection and every renderable.
func (r *Renderer) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	gl.Viewport(0, 0, int32(width), int32(height))
	r.camera.SetViewport(width, height)
	for _, renderable := range r.renderables {
		renderable.SetViewport(width, height)
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
	r.scene.Delete()
}

func (r *Renderer) GetCamera() *graphics.Camera {
	return r.camera
}
