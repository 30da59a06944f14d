package player

import (
	"math"

	"cube-maze/internal/world"
)

// Launch parameters of the jump arc. The arc is integrated once per tick.
const (
	jumpVelocity  = 7.7
	jumpAngle     = math.Pi / 2.5
	jumpTimeScale = 0.005
	jumpClock     = 0.01
	landingSteps  = 2
)

// JumpState is the in-flight part of a jump. Along is the displacement in the
// facing direction, Rise the height above the take-off level.
type JumpState struct {
	Active bool
	Time   float64
	Along  float64
	Rise   float64
}

// StartJump launches a jump in the facing direction.
func (p *Player) StartJump() bool {
	if p.Jump.Active || p.Fallen {
		return false
	}
	p.Jump = JumpState{Active: true}
	return true
}

func (p *Player) advanceJump(heights *world.HeightMap) {
	j := &p.Jump
	j.Along += jumpVelocity * math.Cos(jumpAngle) * jumpTimeScale
	j.Rise += jumpVelocity*math.Sin(jumpAngle)*jumpTimeScale - j.Time*j.Time
	j.Time += jumpClock
	if j.Rise >= 0 {
		return
	}

	p.Jump = JumpState{}
	p.OnBoard = false
	dx, dz := p.Facing.Delta()
	p.StepX += dx * landingSteps
	p.StepZ += dz * landingSteps
	if p.blocked(p.Facing, heights) {
		p.StepX -= dx * landingSteps
		p.StepZ -= dz * landingSteps
	}
}
