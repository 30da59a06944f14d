package main

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

func setupInputHandlers(window *glfw.Window, loop *GameLoop) {
	loop.inputManager.SetCallbacks(window)
	state := loop.state

	// Left drag pans the view.
	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		if button != glfw.MouseButtonLeft {
			return
		}
		x, y := w.GetCursorPos()
		width, height := w.GetSize()
		switch action {
		case glfw.Press:
			state.BeginDrag(x, y, height)
		case glfw.Release:
			state.EndDrag(x, y, width, height)
		}
	})

	window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		state.Scroll(yoff)
	})

	window.SetFramebufferSizeCallback(func(w *glfw.Window, fbWidth, fbHeight int) {
		loop.renderer.SetViewport(fbWidth, fbHeight)
	})

	// Redraw while the window is being resized.
	window.SetRefreshCallback(func(w *glfw.Window) {
		loop.RefreshRender()
	})
}
