package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"runtime"

	"cube-maze/internal/config"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	opts, err := config.Parse(os.Args[0], os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalln(err)
	}

	if err := glfw.Init(); err != nil {
		closer.Fatalln("glfw init:", err)
	}

	window, err := setupWindow(opts)
	if err != nil {
		glfw.Terminate()
		closer.Fatalln("window:", err)
	}

	comps, err := setupGame(window, opts)
	if err != nil {
		window.Destroy()
		glfw.Terminate()
		closer.Fatalln("setup:", err)
	}

	loop := NewGameLoop(window, comps)
	setupInputHandlers(window, loop)
	loop.Run()

	comps.Renderer.Dispose()
	window.Destroy()
	glfw.Terminate()
	closer.Close()
}
