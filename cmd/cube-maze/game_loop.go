package main

import (
	"log"
	"time"

	"cube-maze/internal/config"
	"cube-maze/internal/game"
	renderer "cube-maze/internal/graphics/renderer"
	"cube-maze/internal/input"
	"cube-maze/internal/profiling"

	"github.com/go-gl/glfw/v3.3/glfw"
)

const (
	// A frame that misses this many ticks gets logged.
	slowFrame = 3 * time.Second / game.TickRate

	maxTicksPerFrame = 10
)

// GameLoop manages the main game loop state
type GameLoop struct {
	window       *glfw.Window
	renderer     *renderer.Renderer
	state        *game.State
	inputManager *input.InputManager

	fpsLimiter *game.FPSLimiter
	ticker     *game.Ticker

	frames       int
	fps          int
	lastFPSCheck time.Time
	lastTime     time.Time
}

func NewGameLoop(window *glfw.Window, comps *GameComponents) *GameLoop {
	now := time.Now()
	return &GameLoop{
		window:       window,
		renderer:     comps.Renderer,
		state:        comps.State,
		inputManager: comps.InputManager,
		fpsLimiter:   game.NewFPSLimiter(),
		ticker:       game.NewTicker(game.TickRate, maxTicksPerFrame),
		lastFPSCheck: now,
		lastTime:     now,
	}
}

// Run loops until the window closes or the player quits.
func (l *GameLoop) Run() {
	for !l.window.ShouldClose() && !l.state.Quit {
		l.tick()
	}
}

func (l *GameLoop) tick() {
	profiling.ResetFrame()
	now := time.Now()
	elapsed := now.Sub(l.lastTime)
	l.lastTime = now

	func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()

	for _, a := range l.inputManager.Drain() {
		l.state.Apply(a)
	}
	for n := l.ticker.Advance(elapsed); n > 0; n-- {
		l.state.Tick()
	}

	l.renderer.Render(l.state, l.fps)
	func() { defer profiling.Track("glfw.SwapBuffers")(); l.window.SwapBuffers() }()

	l.frames++
	if time.Since(l.lastFPSCheck) >= time.Second {
		l.fps = l.frames
		l.frames = 0
		l.lastFPSCheck = time.Now()
		if config.IsVerbose() {
			log.Printf("FPS: %d", l.fps)
		}
	}

	if d := time.Since(now); d > slowFrame {
		log.Printf("Frame took too long: %.2fms (%s)", float64(d.Microseconds())/1000, profiling.TopN(3))
	}

	l.fpsLimiter.Wait()
}

// RefreshRender draws the current state without advancing it.
func (l *GameLoop) RefreshRender() {
	l.renderer.Render(l.state, l.fps)
	l.window.SwapBuffers()
}
