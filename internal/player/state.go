package player

import (
	"cube-maze/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// TopLevel is the stack height the player starts on.
	TopLevel float32 = 9

	// StepSize is how far one key press moves the player. Two steps make a cell.
	StepSize float32 = 0.2

	// FallRate is the height lost per tick while dropping into a pit.
	FallRate float32 = 0.04
)

type Facing int

const (
	FacingNorth Facing = iota
	FacingSouth
	FacingEast
	FacingWest
)

func (f Facing) String() string {
	switch f {
	case FacingNorth:
		return "north"
	case FacingSouth:
		return "south"
	case FacingEast:
		return "east"
	case FacingWest:
		return "west"
	}
	return "unknown"
}

// Delta is the grid step for one move in this direction. StepZ grows northwards.
func (f Facing) Delta() (dx, dz int) {
	switch f {
	case FacingNorth:
		return 0, 1
	case FacingSouth:
		return 0, -1
	case FacingEast:
		return 1, 0
	case FacingWest:
		return -1, 0
	}
	return 0, 0
}

// AlongX reports whether the direction runs along the world x axis.
func (f Facing) AlongX() bool {
	return f == FacingEast || f == FacingWest
}

// Player is the avatar walking the maze.
type Player struct {
	// Grid position in steps of StepSize.
	StepX int
	StepZ int

	Facing Facing
	Height float32

	Jump JumpState

	OnBoard bool
	boardZ  float32

	Won    bool
	Fallen bool

	// Walk swing animation
	SwingEnabled bool
	SwingAngle   float32
	swingDir     float32
	swingsLeft   int
}

func New() *Player {
	return &Player{
		Facing:       FacingEast,
		Height:       TopLevel,
		SwingEnabled: true,
		swingDir:     1,
	}
}

// Reset puts the player back on the start cell, keeping preferences.
func (p *Player) Reset() {
	swing := p.SwingEnabled
	*p = *New()
	p.SwingEnabled = swing
}

// Cell returns the height-map cell under the player. Division truncates
// toward zero, so the half step west of column 0 still counts as column 0.
func (p *Player) Cell() (row, col int) {
	return p.StepZ / 2, p.StepX / 2
}

// Aligned reports whether the player stands exactly on one cell.
func (p *Player) Aligned() bool {
	return p.StepX%2 == 0 && p.StepZ%2 == 0
}

// AtTop reports whether the player still stands on the maze's top level.
func (p *Player) AtTop() bool {
	return p.Height >= TopLevel
}

// Airborne reports whether a jump is in progress.
func (p *Player) Airborne() bool {
	return p.Jump.Active
}

// Walking reports whether the swing from the last step is still playing.
func (p *Player) Walking() bool {
	return p.swingsLeft > 0
}

// Center is the world-space middle of the avatar's body, including the jump
// arc and board ride.
func (p *Player) Center() mgl32.Vec3 {
	x := world.OriginX + float32(p.StepX)*StepSize
	z := world.CellSize/2 - float32(p.StepZ)*StepSize
	if p.OnBoard && !p.Jump.Active {
		z = p.boardZ
	}
	y := 1.4 + p.Height*world.CellSize + float32(p.Jump.Rise)

	dx, dz := p.Facing.Delta()
	x += float32(dx) * float32(p.Jump.Along)
	z -= float32(dz) * float32(p.Jump.Along)
	return mgl32.Vec3{x, y, z}
}

func stepZForWorld(z float32) int {
	s := (world.CellSize/2 - z) / StepSize
	if s < 0 {
		return int(s - 0.5)
	}
	return int(s + 0.5)
}

// BodyPosition is the model origin of the body mesh for the current facing.
// The x-facing body is offset so both meshes share a center.
func (p *Player) BodyPosition() mgl32.Vec3 {
	c := p.Center()
	if p.Facing.AlongX() {
		return mgl32.Vec3{c.X() - StepSize/2, c.Y(), c.Z() - world.CellSize/2}
	}
	return c
}
