package graphics

import (
	"fmt"
	"image"
	"image/draw"
	"math"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// FontCharacter describes a single character's placement and metrics within the atlas
type FontCharacter struct {
	// Pixel coordinates of the glyph in the atlas (top-left origin)
	AtlasX float32
	AtlasY float32
	Width  float32
	Height float32
	// Offset from the pen position on the baseline
	BearingX float32
	BearingY float32
	Advance  int
}

// FontAtlas is the baked glyph image and its metrics. TextureID is 0 until
// the atlas is uploaded.
type FontAtlas struct {
	TextureID  uint32
	AtlasW     int
	AtlasH     int
	Characters map[rune]FontCharacter

	image *image.Alpha
}

const (
	atlasWidth   = 512
	glyphPadding = 1
)

// BakeFontAtlas rasterizes printable ASCII of the Go Regular face at the
// given pixel size.
func BakeFontAtlas(fontPixels int) (*FontAtlas, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: float64(fontPixels), DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	defer func() { _ = face.Close() }()

	type glyph struct {
		r       rune
		dr      image.Rectangle
		mask    image.Image
		maskp   image.Point
		advance fixed.Int26_6
	}
	var glyphs []glyph
	for r := rune(32); r <= 126; r++ {
		dr, mask, maskp, advance, ok := face.Glyph(fixed.P(0, 0), r)
		if !ok {
			// Blank glyphs still need an advance.
			if advance, ok = face.GlyphAdvance(r); !ok {
				continue
			}
			dr, mask = image.Rectangle{}, nil
		}
		glyphs = append(glyphs, glyph{r, dr, mask, maskp, advance})
	}

	// Pack into rows, then size the atlas to the next power of two.
	characters := make(map[rune]FontCharacter, len(glyphs))
	x, y, rowH := 0, 0, 0
	for _, g := range glyphs {
		w, h := g.dr.Dx(), g.dr.Dy()
		if x+w > atlasWidth {
			x = 0
			y += rowH + glyphPadding
			rowH = 0
		}
		characters[g.r] = FontCharacter{
			AtlasX:   float32(x),
			AtlasY:   float32(y),
			Width:    float32(w),
			Height:   float32(h),
			BearingX: float32(g.dr.Min.X),
			BearingY: float32(-g.dr.Min.Y),
			Advance:  int(math.Round(float64(g.advance) / 64)),
		}
		if w > 0 {
			x += w + glyphPadding
		}
		rowH = max(rowH, h)
	}
	atlasH := 1
	for atlasH < y+rowH {
		atlasH *= 2
	}

	img := image.NewAlpha(image.Rect(0, 0, atlasWidth, atlasH))
	for _, g := range glyphs {
		fc := characters[g.r]
		if fc.Width == 0 || fc.Height == 0 || g.mask == nil {
			continue
		}
		dst := image.Rect(int(fc.AtlasX), int(fc.AtlasY), int(fc.AtlasX+fc.Width), int(fc.AtlasY+fc.Height))
		draw.Draw(img, dst, g.mask, g.maskp, draw.Src)
	}

	return &FontAtlas{AtlasW: atlasWidth, AtlasH: atlasH, Characters: characters, image: img}, nil
}

// Upload copies the atlas into a single-channel texture.
func (a *FontAtlas) Upload() {
	gl.GenTextures(1, &a.TextureID)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, a.TextureID)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, int32(a.AtlasW), int32(a.AtlasH), 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(a.image.Pix))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// Measure returns the width and tallest glyph height of text in pixels.
func (a *FontAtlas) Measure(text string, scale float32) (float32, float32) {
	var width, height float32
	for _, r := range text {
		fc, ok := a.Characters[r]
		if !ok {
			fc = a.Characters[' ']
		}
		width += float32(fc.Advance) * scale
		height = max(height, fc.Height*scale)
	}
	return width, height
}

// Layout builds two triangles per glyph, four floats per vertex (screen x,
// screen y, u, v). y is the baseline. Unknown runes advance like a space.
func (a *FontAtlas) Layout(text string, x, y, scale float32) []float32 {
	verts := make([]float32, 0, len(text)*6*4)
	aw, ah := float32(a.AtlasW), float32(a.AtlasH)
	for _, r := range text {
		fc, ok := a.Characters[r]
		if !ok {
			x += float32(a.Characters[' '].Advance) * scale
			continue
		}
		if fc.Width > 0 && fc.Height > 0 {
			x0 := x + fc.BearingX*scale
			y0 := y - fc.BearingY*scale
			w, h := fc.Width*scale, fc.Height*scale
			u0, v0 := fc.AtlasX/aw, fc.AtlasY/ah
			u1, v1 := (fc.AtlasX+fc.Width)/aw, (fc.AtlasY+fc.Height)/ah
			verts = append(verts,
				x0, y0+h, u0, v1,
				x0, y0, u0, v0,
				x0+w, y0, u1, v0,
				x0, y0+h, u0, v1,
				x0+w, y0, u1, v0,
				x0+w, y0+h, u1, v1,
			)
		}
		x += float32(fc.Advance) * scale
	}
	return verts
}

// FontRenderer draws text in pixel coordinates with a top-left origin.
type FontRenderer struct {
	atlas      *FontAtlas
	shader     *Shader
	projection mgl32.Mat4
	vao        uint32
	vbo        uint32
}

// NewFontRenderer uploads the atlas and creates the dynamic vertex buffer.
func NewFontRenderer(atlas *FontAtlas, shader *Shader) (*FontRenderer, error) {
	if atlas == nil || len(atlas.Characters) == 0 {
		return nil, fmt.Errorf("invalid font atlas")
	}
	if atlas.TextureID == 0 {
		atlas.Upload()
	}
	fr := &FontRenderer{atlas: atlas, shader: shader, projection: mgl32.Ident4()}

	gl.GenVertexArrays(1, &fr.vao)
	gl.GenBuffers(1, &fr.vbo)
	gl.BindVertexArray(fr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, fr.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, 256*6*4*4, nil, gl.DYNAMIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 4, gl.FLOAT, false, 4*4, gl.PtrOffset(0))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return fr, nil
}

func (fr *FontRenderer) SetViewport(width, height int) {
	fr.projection = mgl32.Ortho(0, float32(width), float32(height), 0, -1, 1)
}

func (fr *FontRenderer) Atlas() *FontAtlas {
	return fr.atlas
}

// RenderLines draws lines top to bottom starting at baseline yStart.
func (fr *FontRenderer) RenderLines(lines []string, x, yStart, lineStep, scale float32, color mgl32.Vec3) {
	var verts []float32
	y := yStart
	for _, line := range lines {
		verts = append(verts, fr.atlas.Layout(line, x, y, scale)...)
		y += lineStep
	}
	if len(verts) == 0 {
		return
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	fr.shader.Use()
	fr.shader.SetVector3("textColor", color)
	fr.shader.SetMatrix4("projection", fr.projection)
	fr.shader.SetInt("text", 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, fr.atlas.TextureID)
	gl.BindVertexArray(fr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, fr.vbo)
	size := len(verts) * 4
	gl.BufferData(gl.ARRAY_BUFFER, size, gl.Ptr(verts), gl.DYNAMIC_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(verts)/4))
	gl.BindVertexArray(0)

	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
}

func (fr *FontRenderer) Dispose() {
	gl.DeleteBuffers(1, &fr.vbo)
	gl.DeleteVertexArrays(1, &fr.vao)
	if fr.atlas.TextureID != 0 {
		gl.DeleteTextures(1, &fr.atlas.TextureID)
		fr.atlas.TextureID = 0
	}
}
