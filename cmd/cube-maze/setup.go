package main

import (
	"fmt"
	"log"

	"cube-maze/internal/audio"
	"cube-maze/internal/config"
	"cube-maze/internal/game"
	"cube-maze/internal/graphics"
	"cube-maze/internal/graphics/renderables/avatar"
	"cube-maze/internal/graphics/renderables/hud"
	"cube-maze/internal/graphics/renderables/maze"
	renderer "cube-maze/internal/graphics/renderer"
	"cube-maze/internal/input"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"
)

func setupWindow(opts config.Options) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		window.Destroy()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	if opts.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	log.Printf("VENDOR: %s", gl.GoStr(gl.GetString(gl.VENDOR)))
	log.Printf("RENDERER: %s", gl.GoStr(gl.GetString(gl.RENDERER)))
	log.Printf("VERSION: %s", gl.GoStr(gl.GetString(gl.VERSION)))
	log.Printf("GLSL: %s", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)))

	return window, nil
}

// GameComponents holds all the initialized game components
type GameComponents struct {
	Renderer     *renderer.Renderer
	State        *game.State
	InputManager *input.InputManager
}

func setupGame(window *glfw.Window, opts config.Options) (*GameComponents, error) {
	dialect, err := graphics.ParseDialect(opts.ShaderDialect)
	if err != nil {
		return nil, err
	}
	shaders := graphics.ShaderSet{Dir: opts.ShaderDir, Dialect: dialect}

	fbWidth, fbHeight := window.GetFramebufferSize()
	r, err := renderer.NewRenderer(shaders, fbWidth, fbHeight,
		maze.NewMaze(),
		avatar.NewAvatar(),
		hud.NewHUD(shaders),
	)
	if err != nil {
		return nil, err
	}

	state := game.NewState()
	if opts.SoundPath != "" {
		if snd := loadSound(opts.SoundPath); snd != nil {
			state.JumpSound = snd
		}
	}

	return &GameComponents{
		Renderer:     r,
		State:        state,
		InputManager: input.NewInputManager(),
	}, nil
}

// loadSound returns nil when the sound cannot be played. The game runs
// silently in that case.
func loadSound(path string) *audio.Player {
	clip, err := audio.Load(path)
	if err != nil {
		log.Printf("sound disabled: %v", err)
		return nil
	}
	p, err := audio.NewPlayer(clip)
	if err != nil {
		log.Printf("sound disabled: %v", err)
		return nil
	}
	closer.Bind(func() {
		if err := p.Close(); err != nil {
			log.Printf("close audio: %v", err)
		}
	})
	log.Printf("loaded %s (%.2fs at %d Hz)", path, clip.Duration(), clip.SampleRate)
	return p
}
