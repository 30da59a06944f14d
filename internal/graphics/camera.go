package graphics

import "github.com/go-gl/mathgl/mgl32"

// Projection defaults. The narrow field of view makes the far orbit camera
// look almost orthographic.
const (
	DefaultFOV float32 = 0.2 // radians
	NearPlane  float32 = 0.1
	FarPlane   float32 = 500
)

// Camera holds the projection parameters
type Camera struct {
	AspectRatio float32
	FOV         float32
	NearPlane   float32
	FarPlane    float32
}

func NewCamera(width, height int) *Camera {
	c := &Camera{
		AspectRatio: 1,
		FOV:         DefaultFOV,
		NearPlane:   NearPlane,
		FarPlane:    FarPlane,
	}
	c.SetViewport(width, height)
	return c
}

// SetViewport updates the aspect ratio. A minimized window reports a zero
// size, which is ignored.
func (c *Camera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.AspectRatio = float32(width) / float32(height)
}

func (c *Camera) GetProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(c.FOV, c.AspectRatio, c.NearPlane, c.FarPlane)
}
