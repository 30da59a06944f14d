package player

import (
	"cube-maze/internal/world"
)

const (
	// Boarding only catches a player who has barely started to drop.
	boardCatchHeight float32 = 8.5

	swingLimit float32 = 25
	swingSpeed float32 = 1
)

// Step moves the player one step in dir. Walls only stop a player standing
// on the top level; once inside a pit the stacks around are open. The return
// value reports whether the player actually moved.
func (p *Player) Step(dir Facing, heights *world.HeightMap) bool {
	if p.Jump.Active || p.Fallen {
		return false
	}
	p.Facing = dir
	p.swingsLeft = 1
	p.OnBoard = false

	dx, dz := dir.Delta()
	p.StepX += dx
	p.StepZ += dz
	if p.blocked(dir, heights) {
		p.StepX -= dx
		p.StepZ -= dz
		return false
	}
	return true
}

// blocked checks the destination cell and, when the player straddles two
// cells across the direction of travel, the second one too.
func (p *Player) blocked(dir Facing, heights *world.HeightMap) bool {
	if !p.AtTop() {
		return false
	}
	row, col := p.Cell()
	if heights.IsWall(row, col) {
		return true
	}
	if dir.AlongX() && p.StepZ%2 != 0 {
		return heights.IsWall(straddled(p.StepZ, row), col)
	}
	if !dir.AlongX() && p.StepX%2 != 0 {
		return heights.IsWall(row, straddled(p.StepX, col))
	}
	return false
}

// straddled is the second cell covered by an odd step. Cell truncates toward
// zero, so below zero the other half lies one cell further down.
func straddled(step, cell int) int {
	if step < 0 {
		return cell - 1
	}
	return cell + 1
}

// Tick advances the player by one simulation step.
func (p *Player) Tick(w *world.World) {
	if p.Jump.Active {
		p.advanceJump(&w.Heights)
	}
	if p.OnBoard && !p.Jump.Active {
		p.followBoard(w.Board)
	}
	if !p.Jump.Active {
		p.fall(w)
	}
	if !p.Fallen {
		row, col := p.Cell()
		if row == world.Goal.Row && col == world.Goal.Col {
			p.Won = true
		}
	}
	p.advanceSwing()
}

func (p *Player) fall(w *world.World) {
	row, col := p.Cell()
	ground, inside := w.Heights.Height(row, col)
	if !inside {
		p.drop()
		return
	}
	if p.OnBoard || float32(ground) >= p.Height {
		return
	}
	if col == 0 && p.Height > boardCatchHeight && w.Board.Covers(p.Center().Z()) {
		p.OnBoard = true
		p.followBoard(w.Board)
		return
	}
	if p.Aligned() {
		p.drop()
		return
	}
	// Straddling a pit edge: the neighbouring cell holds the player up.
	if next, _ := w.Heights.Height(row+1, col); float32(next) < p.Height {
		p.drop()
	}
}

func (p *Player) drop() {
	if p.Height <= 0 {
		return
	}
	p.Height -= FallRate
	if p.Height <= 0 {
		p.Height = 0
		p.Fallen = true
	}
}

func (p *Player) followBoard(b *world.Board) {
	p.boardZ = b.CenterZ()
	p.StepZ = stepZForWorld(p.boardZ)
}

func (p *Player) advanceSwing() {
	if !p.SwingEnabled {
		return
	}
	if p.SwingAngle > swingLimit || p.SwingAngle < -swingLimit {
		p.swingDir = -p.swingDir
		if p.swingsLeft > 0 {
			p.swingsLeft--
		}
	}
	p.SwingAngle += swingSpeed * p.swingDir
}
