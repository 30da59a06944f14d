package avatar

import (
	"math"

	"cube-maze/internal/geometry"
	"cube-maze/internal/graphics"
	renderer "cube-maze/internal/graphics/renderer"
	"cube-maze/internal/player"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// The walk swing pivots at the top of the body.
	pivotHeight float32 = 0.2
	arrowHeight float32 = 0.35
)

// Avatar draws the player body and an arrow showing where it faces.
type Avatar struct {
	bodyZ *graphics.Mesh // thin along z, used when facing north or south
	bodyX *graphics.Mesh
	arrow *graphics.Mesh
}

func NewAvatar() *Avatar {
	return &Avatar{}
}

func (a *Avatar) Init() error {
	meshes := []struct {
		dst  **graphics.Mesh
		v, c []float32
	}{
		{dst: &a.bodyZ},
		{dst: &a.bodyX},
		{dst: &a.arrow},
	}
	meshes[0].v, meshes[0].c = geometry.Box(0.2, 0.2, 0.05)
	meshes[1].v, meshes[1].c = geometry.Box(0.05, 0.2, 0.2)
	meshes[2].v, meshes[2].c = geometry.Triangle(0, 0, 0.1, 0.15)

	for _, m := range meshes {
		mesh, err := graphics.NewMesh(gl.TRIANGLES, m.v, m.c, gl.FILL)
		if err != nil {
			a.Dispose()
			return err
		}
		*m.dst = mesh
	}
	return nil
}

// BodyModel is the body's model matrix, including the walk swing.
func BodyModel(p *player.Player) mgl32.Mat4 {
	model := mgl32.Translate3D(p.BodyPosition().Elem())
	if !p.SwingEnabled || !p.Walking() {
		return model
	}
	axis := mgl32.Vec3{1, 0, 0}
	if p.Facing.AlongX() {
		axis = mgl32.Vec3{0, 0, 1}
	}
	swing := mgl32.Translate3D(0, pivotHeight, 0).
		Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(p.SwingAngle), axis)).
		Mul4(mgl32.Translate3D(0, -pivotHeight, 0))
	return model.Mul4(swing)
}

// ArrowModel places the arrow above the head, pointing along the facing.
// The arrow mesh points along +x.
func ArrowModel(p *player.Player) mgl32.Mat4 {
	var yaw float32
	switch p.Facing {
	case player.FacingNorth:
		yaw = math.Pi / 2
	case player.FacingSouth:
		yaw = -math.Pi / 2
	case player.FacingWest:
		yaw = math.Pi
	}
	pos := p.Center().Add(mgl32.Vec3{0, arrowHeight, 0})
	return mgl32.Translate3D(pos.Elem()).Mul4(mgl32.HomogRotate3DY(yaw))
}

func (a *Avatar) Render(ctx renderer.RenderContext) {
	s := ctx.State
	if !s.Camera.ShowsAvatar() {
		return
	}
	p := s.Player
	body := a.bodyZ
	if p.Facing.AlongX() {
		body = a.bodyX
	}
	ctx.Draw(body, BodyModel(p))
	ctx.Draw(a.arrow, ArrowModel(p))
}

func (a *Avatar) Dispose() {
	for _, m := range []**graphics.Mesh{&a.bodyZ, &a.bodyX, &a.arrow} {
		if *m != nil {
			(*m).Dispose()
			*m = nil
		}
	}
}

func (a *Avatar) SetViewport(width, height int) {}
