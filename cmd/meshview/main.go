// Command meshview spins one of the game's meshes in a window. It checks the
// scene shaders in either dialect without starting the game.
package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"time"

	"cube-maze/internal/config"
	"cube-maze/internal/geometry"
	"cube-maze/internal/graphics"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	windowWidth  = 800
	windowHeight = 600
)

func init() {
	runtime.LockOSThread()
}

func meshData(name string) (vertices, colors []float32, err error) {
	switch name {
	case "cube":
		vertices, colors = geometry.Box(0.2, 0.2, 0.2)
	case "board":
		vertices, colors = geometry.Box(0.2, 0.05, 0.2)
	case "body":
		vertices, colors = geometry.Box(0.2, 0.2, 0.05)
	case "arrow":
		vertices, colors = geometry.Triangle(0, 0, 0.1, 0.15)
	default:
		return nil, nil, fmt.Errorf("unknown mesh %q", name)
	}
	return vertices, colors, nil
}

func main() {
	opts := config.Defaults()
	fs := flag.CommandLine
	fs.StringVar(&opts.ShaderDir, "shaders", opts.ShaderDir, "directory holding the shader sources")
	fs.StringVar(&opts.ShaderDialect, "shader-dialect", opts.ShaderDialect, "shader source dialect: glsl330 or webgl2")
	meshName := fs.String("mesh", "cube", "mesh to show: cube, board, body or arrow")
	wire := fs.Bool("wire", false, "draw as wireframe")
	flag.Parse()

	dialect, err := graphics.ParseDialect(opts.ShaderDialect)
	if err != nil {
		log.Fatalln(err)
	}
	vertices, colors, err := meshData(*meshName)
	if err != nil {
		log.Fatalln(err)
	}

	if err := glfw.Init(); err != nil {
		log.Fatalln(err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, "meshview: "+*meshName, nil, nil)
	if err != nil {
		log.Fatalln(err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		log.Fatalln(err)
	}

	shader, err := graphics.ShaderSet{Dir: opts.ShaderDir, Dialect: dialect}.Load("scene")
	if err != nil {
		log.Fatalln(err)
	}
	defer shader.Delete()

	fill := uint32(gl.FILL)
	if *wire {
		fill = gl.LINE
	}
	mesh, err := graphics.NewMesh(gl.TRIANGLES, vertices, colors, fill)
	if err != nil {
		log.Fatalln(err)
	}
	defer mesh.Dispose()

	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(0.3, 0.3, 0.3, 1.0)

	fbWidth, fbHeight := window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
	proj := mgl32.Perspective(mgl32.DegToRad(45), float32(fbWidth)/float32(fbHeight), 0.1, 10)
	view := mgl32.LookAtV(mgl32.Vec3{0, 0.4, 1.2}, mgl32.Vec3{0, 0, 0.2}, mgl32.Vec3{0, 1, 0})

	shader.Use()
	start := time.Now()
	frames := 0
	last := start
	for !window.ShouldClose() {
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
		}

		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
		angle := float32(time.Since(start).Seconds())
		model := mgl32.HomogRotate3DY(angle)
		shader.SetMatrix4("MVP", proj.Mul4(view).Mul4(model))
		mesh.Draw()

		window.SwapBuffers()
		glfw.PollEvents()

		frames++
		if elapsed := time.Since(last); elapsed >= time.Second {
			fmt.Printf("FPS: %d\n", int(float64(frames)/elapsed.Seconds()+0.5))
			frames = 0
			last = time.Now()
		}
	}
}
