package avatar

import (
	"testing"

	"cube-maze/internal/player"
	"cube-maze/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

func TestArrowPointsAlongFacing(t *testing.T) {
	p := player.New()
	tip := mgl32.Vec4{0.15, 0, 0, 1}
	for _, f := range []player.Facing{player.FacingNorth, player.FacingSouth, player.FacingEast, player.FacingWest} {
		p.Facing = f
		model := ArrowModel(p)
		got := model.Mul4x1(tip).Vec3().Sub(model.Col(3).Vec3())

		dx, dz := f.Delta()
		want := mgl32.Vec3{0.15 * float32(dx), 0, -0.15 * float32(dz)}
		if !got.ApproxEqualThreshold(want, 1e-5) {
			t.Errorf("%v: arrow tip offset %v, want %v", f, got, want)
		}
	}
}

func TestBodyModelSwingsOnlyWhileWalking(t *testing.T) {
	heights := world.DefaultHeights()
	p := player.New()
	p.SwingAngle = 20

	rest := BodyModel(p)
	if !rest.ApproxEqual(mgl32.Translate3D(p.BodyPosition().Elem())) {
		t.Errorf("idle body is rotated: %v", rest)
	}

	p.Step(player.FacingNorth, &heights)
	p.SwingAngle = 20
	walking := BodyModel(p)
	if walking.ApproxEqual(mgl32.Translate3D(p.BodyPosition().Elem())) {
		t.Error("walking body is not rotated")
	}

	// The pivot at the top of the body stays put.
	pivot := mgl32.Vec4{0, 0.2, 0, 1}
	want := p.BodyPosition().Add(mgl32.Vec3{0, 0.2, 0})
	if got := walking.Mul4x1(pivot).Vec3(); !got.ApproxEqualThreshold(want, 1e-5) {
		t.Errorf("pivot moved to %v, want %v", got, want)
	}

	p.SwingEnabled = false
	if !BodyModel(p).ApproxEqual(mgl32.Translate3D(p.BodyPosition().Elem())) {
		t.Error("disabled swing still rotates")
	}
}
