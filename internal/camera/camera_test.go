package camera

import (
	"math"
	"testing"

	"cube-maze/internal/player"

	"github.com/go-gl/mathgl/mgl32"
)

func TestModeSwitching(t *testing.T) {
	r := New()
	if r.Mode != ModeOrbit {
		t.Fatalf("default mode %v, want orbit", r.Mode)
	}

	steps := []struct {
		enter, leave *Mode
		want         Mode
	}{
		{enter: ptr(ModeFollow), want: ModeFollow},
		{leave: ptr(ModeTopDown), want: ModeFollow},
		{enter: ptr(ModeTopDown), want: ModeTopDown},
		{enter: ptr(ModeFirstPerson), want: ModeFirstPerson},
		{leave: ptr(ModeFollow), want: ModeFirstPerson},
		{leave: ptr(ModeFirstPerson), want: ModeOrbit},
	}
	for i, s := range steps {
		if s.enter != nil {
			r.Enter(*s.enter)
		}
		if s.leave != nil {
			r.Leave(*s.leave)
		}
		if r.Mode != s.want {
			t.Fatalf("step %d: mode %v, want %v", i, r.Mode, s.want)
		}
	}
}

func ptr(m Mode) *Mode { return &m }

func TestOrbitStartsOnTheXAxis(t *testing.T) {
	r := New()
	p := player.New()
	eye, target := r.Look(p)
	if !eye.ApproxEqual(mgl32.Vec3{40, 20, 0}) {
		t.Errorf("orbit eye %v, want (40,20,0)", eye)
	}
	if !target.ApproxEqual(mgl32.Vec3{-1, 3, -1.8}) {
		t.Errorf("orbit target %v", target)
	}
}

func TestRotateKeepsRadius(t *testing.T) {
	r := New()
	for i := 0; i < 15; i++ {
		r.Rotate()
	}
	// A quarter turn later the eye sits on +z.
	if math.Abs(float64(r.Orbit.X())) > 1e-3 || math.Abs(float64(r.Orbit.Z()-40)) > 1e-3 {
		t.Errorf("after a quarter turn orbit is %v", r.Orbit)
	}
	if math.Abs(float64(r.Follow.Y()-10)) > 1e-3 {
		t.Errorf("follow eye should rotate with the orbit, got %v", r.Follow)
	}
}

func TestScrollChangesRadius(t *testing.T) {
	r := New()
	r.Scroll(-1)
	r.Scroll(-1)
	if r.Radius != 42 || r.Orbit.X() != 42 {
		t.Fatalf("wheel down twice: radius %v orbit %v", r.Radius, r.Orbit)
	}
	for i := 0; i < 100; i++ {
		r.Scroll(1)
	}
	if r.Radius != minRadius {
		t.Errorf("radius should stop at %d, got %v", minRadius, r.Radius)
	}
	r.Scroll(0)
	if r.Radius != minRadius {
		t.Errorf("zero scroll changed the radius to %v", r.Radius)
	}
}

func TestDragShiftsView(t *testing.T) {
	r := New()
	r.BeginDrag(100, 500, 600)
	r.EndDrag(400, 200, 600, 600)
	// 300px right is 4 units, 300px up is 4 units the other way.
	if r.ShiftX != 4 || r.ShiftY != -4 {
		t.Errorf("shift (%v,%v), want (4,-4)", r.ShiftX, r.ShiftY)
	}

	r.EndDrag(0, 0, 600, 600)
	if r.ShiftX != 4 || r.ShiftY != -4 {
		t.Error("release without press must not move the view")
	}
}

func TestFirstPersonLooksAlongFacing(t *testing.T) {
	r := New()
	r.Enter(ModeFirstPerson)
	p := player.New()

	for _, f := range []player.Facing{player.FacingNorth, player.FacingSouth, player.FacingEast, player.FacingWest} {
		p.Facing = f
		eye, target := r.Look(p)
		dir := target.Sub(eye)
		dx, dz := f.Delta()
		if dx != 0 && (dir.X() > 0) != (dx > 0) {
			t.Errorf("%v: looking along %v", f, dir)
		}
		if dz != 0 && (dir.Z() < 0) != (dz > 0) {
			t.Errorf("%v: looking along %v", f, dir)
		}
		if dir.Y() >= 0 {
			t.Errorf("%v: first person view should tilt down, got %v", f, dir)
		}
	}
	if r.ShowsAvatar() {
		t.Error("avatar must be hidden in first person")
	}
}

func TestFollowTargetsPlayer(t *testing.T) {
	r := New()
	r.Enter(ModeFollow)
	p := player.New()
	p.StepX = 6
	_, target := r.Look(p)
	if !target.ApproxEqual(p.Center()) {
		t.Errorf("follow target %v, player at %v", target, p.Center())
	}
}

func TestNudgeIgnoresUnknownAxis(t *testing.T) {
	r := New()
	before := r.Orbit
	r.Nudge(3, 5)
	r.Nudge(-1, 5)
	if r.Orbit != before {
		t.Errorf("invalid axis changed the orbit: %v", r.Orbit)
	}
	r.Nudge(1, -1)
	if r.Orbit.Y() != -1 {
		t.Errorf("y nudge: %v", r.Orbit)
	}
}
