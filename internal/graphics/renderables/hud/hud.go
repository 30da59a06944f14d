package hud

import (
	"fmt"
	"log"

	"cube-maze/internal/config"
	"cube-maze/internal/game"
	"cube-maze/internal/graphics"
	renderer "cube-maze/internal/graphics/renderer"
	"cube-maze/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	fontPixels = 18
	margin     = 10
	lineStep   = 22
)

var (
	textColor   = mgl32.Vec3{1, 1, 1}
	bannerColor = mgl32.Vec3{1, 0.85, 0.2}
)

// HUD draws the status lines in the top-left corner and a banner when the
// game is won or lost.
type HUD struct {
	shaders      graphics.ShaderSet
	fontRenderer *graphics.FontRenderer
	width        int
	height       int
}

func NewHUD(shaders graphics.ShaderSet) *HUD {
	return &HUD{shaders: shaders}
}

func (h *HUD) Init() error {
	atlas, err := graphics.BakeFontAtlas(fontPixels)
	if err != nil {
		return err
	}
	shader, err := h.shaders.Load("text")
	if err != nil {
		log.Printf("text shader: %v", err)
	}
	fr, err := graphics.NewFontRenderer(atlas, shader)
	if err != nil {
		return err
	}
	h.fontRenderer = fr
	return nil
}

// StatusLines is the text shown in the corner.
func StatusLines(s *game.State, fps int) []string {
	p := s.Player
	row, col := p.Cell()
	lines := []string{
		"camera: " + s.Camera.Mode.String(),
		fmt.Sprintf("cell: %d,%d  facing: %v", row, col, p.Facing),
		fmt.Sprintf("height: %.2f", p.Height),
	}
	if p.OnBoard {
		lines = append(lines, "riding the board")
	}
	if config.IsVerbose() {
		lines = append(lines, fmt.Sprintf("fps: %d", fps))
		if top := profiling.TopN(2); top != "" {
			lines = append(lines, top)
		}
	}
	return lines
}

// Banner is the outcome message, or "" while playing.
func Banner(s *game.State) string {
	switch {
	case s.Player.Fallen:
		return "You fell off the maze. Press n to restart."
	case s.Player.Won:
		return "You Win"
	}
	return ""
}

func (h *HUD) Render(ctx renderer.RenderContext) {
	defer profiling.Track("hud.Render")()

	h.fontRenderer.RenderLines(StatusLines(ctx.State, ctx.FPS), margin, margin+fontPixels, lineStep, 1, textColor)

	if msg := Banner(ctx.State); msg != "" {
		const scale = 2
		w, _ := h.fontRenderer.Atlas().Measure(msg, scale)
		x := (float32(h.width) - w) / 2
		y := float32(h.height) / 2
		h.fontRenderer.RenderLines([]string{msg}, x, y, 0, scale, bannerColor)
	}
}

func (h *HUD) Dispose() {
	if h.fontRenderer != nil {
		h.fontRenderer.Dispose()
	}
}

func (h *HUD) SetViewport(width, height int) {
	h.width, h.height = width, height
	if h.fontRenderer != nil {
		h.fontRenderer.SetViewport(width, height)
	}
}
