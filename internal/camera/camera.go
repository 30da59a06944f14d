package camera

import (
	"math"

	"cube-maze/internal/player"

	"github.com/go-gl/mathgl/mgl32"
)

type Mode int

const (
	ModeOrbit Mode = iota
	ModeFollow
	ModeTopDown
	ModeFirstPerson
)

func (m Mode) String() string {
	switch m {
	case ModeOrbit:
		return "orbit"
	case ModeFollow:
		return "follow"
	case ModeTopDown:
		return "top-down"
	case ModeFirstPerson:
		return "first person"
	}
	return "unknown"
}

const (
	orbitHeight   = 20
	orbitStep     = math.Pi / 30
	followRadius  = 10
	defaultRadius = 40
	minRadius     = 1
	topDownHeight = 30

	// A full-window drag moves the view by this many units.
	dragScale = 8

	lookAhead = 40
	lookDrop  = 3
	eyeLift   = 0.15
)

var (
	mazeCenter = mgl32.Vec3{-1, 3, -1.8}
	up         = mgl32.Vec3{0, 1, 0}
)

// Rig holds every camera parameter the input can change. Only one mode is
// active at a time.
type Rig struct {
	Mode Mode

	// Orbit parameters
	Angle  float64
	Radius float32
	Orbit  mgl32.Vec3 // eye offset, y is added on top of orbitHeight
	Follow mgl32.Vec2 // follow eye x/z

	// Mouse drag shift
	ShiftX float32
	ShiftY float32

	dragging bool
	dragX    float64
	dragY    float64
}

func New() *Rig {
	r := &Rig{Radius: defaultRadius}
	r.place()
	return r
}

func (r *Rig) place() {
	s, c := math.Sincos(r.Angle)
	r.Orbit[0] = r.Radius * float32(c)
	r.Orbit[2] = r.Radius * float32(s)
	r.Follow = mgl32.Vec2{followRadius * float32(c), followRadius * float32(s)}
}

// Enter switches to mode m.
func (r *Rig) Enter(m Mode) {
	r.Mode = m
}

// Leave returns to the orbit view if m is the active mode.
func (r *Rig) Leave(m Mode) {
	if r.Mode == m {
		r.Mode = ModeOrbit
	}
}

// Rotate advances the orbit by one notch.
func (r *Rig) Rotate() {
	r.Angle += orbitStep
	r.place()
}

// Nudge moves the orbit eye along one axis (0=x, 1=y, 2=z).
func (r *Rig) Nudge(axis int, delta float32) {
	if axis < 0 || axis > 2 {
		return
	}
	r.Orbit[axis] += delta
}

// Scroll grows the orbit radius on wheel-down and shrinks it on wheel-up.
func (r *Rig) Scroll(yoff float64) {
	switch {
	case yoff < 0:
		r.Radius++
	case yoff > 0:
		r.Radius--
		if r.Radius < minRadius {
			r.Radius = minRadius
		}
	default:
		return
	}
	r.place()
}

// BeginDrag records the cursor when the left button goes down. y is in
// window coordinates (top-left origin).
func (r *Rig) BeginDrag(x, y float64, height int) {
	r.dragging = true
	r.dragX = x
	r.dragY = float64(height) - y
}

// EndDrag applies the drag distance to the view shift.
func (r *Rig) EndDrag(x, y float64, width, height int) {
	if !r.dragging || width <= 0 || height <= 0 {
		return
	}
	r.dragging = false
	y = float64(height) - y
	r.ShiftY -= float32(math.Trunc((y - r.dragY) * dragScale / float64(height)))
	r.ShiftX += float32(math.Trunc((x - r.dragX) * dragScale / float64(width)))
}

// Look returns the eye and target for the active mode.
func (r *Rig) Look(p *player.Player) (eye, target mgl32.Vec3) {
	switch r.Mode {
	case ModeFollow:
		eye = mgl32.Vec3{r.Follow.X() + r.ShiftX, r.Orbit.Y() + r.ShiftY, r.Follow.Y()}
		return eye, p.Center()
	case ModeTopDown:
		return mgl32.Vec3{0, topDownHeight, 0}, mazeCenter
	case ModeFirstPerson:
		eye = p.Center().Add(mgl32.Vec3{0, eyeLift, 0})
		dx, dz := p.Facing.Delta()
		forward := mgl32.Vec3{float32(dx), 0, -float32(dz)}
		return eye, eye.Add(forward.Mul(lookAhead)).Sub(mgl32.Vec3{0, lookDrop, 0})
	default:
		eye = mgl32.Vec3{r.Orbit.X() + r.ShiftX, orbitHeight + r.Orbit.Y() + r.ShiftY, r.Orbit.Z()}
		return eye, mazeCenter
	}
}

// View returns the view matrix for the active mode.
func (r *Rig) View(p *player.Player) mgl32.Mat4 {
	eye, target := r.Look(p)
	return mgl32.LookAtV(eye, target, up)
}

// ShowsAvatar reports whether the avatar should be drawn. The first person
// view sits inside its head.
func (r *Rig) ShowsAvatar() bool {
	return r.Mode != ModeFirstPerson
}
