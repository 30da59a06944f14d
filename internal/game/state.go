package game

import (
	"log"

	"cube-maze/internal/camera"
	"cube-maze/internal/input"
	"cube-maze/internal/player"
	"cube-maze/internal/profiling"
	"cube-maze/internal/world"
)

// TickRate is the number of simulation steps per second.
const TickRate = 60

// Sound is something that can be played on an event.
type Sound interface {
	Play()
}

// State is everything the simulation owns. It is only touched from the main
// thread.
type State struct {
	World  *world.World
	Player *player.Player
	Camera *camera.Rig

	// JumpSound is optional.
	JumpSound Sound

	Quit  bool
	Ticks uint64

	reportedWin  bool
	reportedFall bool
}

func NewState() *State {
	return &State{
		World:  world.New(),
		Player: player.New(),
		Camera: camera.New(),
	}
}

// Apply performs one input action.
func (s *State) Apply(a input.Action) {
	switch a {
	case input.ActionQuit:
		s.Quit = true
	case input.ActionMoveNorth:
		s.Player.Step(player.FacingNorth, &s.World.Heights)
	case input.ActionMoveSouth:
		s.Player.Step(player.FacingSouth, &s.World.Heights)
	case input.ActionMoveEast:
		s.Player.Step(player.FacingEast, &s.World.Heights)
	case input.ActionMoveWest:
		s.Player.Step(player.FacingWest, &s.World.Heights)
	case input.ActionJump:
		if s.Player.StartJump() && s.JumpSound != nil {
			s.JumpSound.Play()
		}
	case input.ActionRestart:
		s.Restart()
	case input.ActionToggleSwing:
		s.Player.SwingEnabled = !s.Player.SwingEnabled
	case input.ActionRotateCamera:
		s.Camera.Rotate()
	case input.ActionFollowOn:
		s.Camera.Enter(camera.ModeFollow)
	case input.ActionFollowOff:
		s.Camera.Leave(camera.ModeFollow)
	case input.ActionTopDownOn:
		s.Camera.Enter(camera.ModeTopDown)
	case input.ActionTopDownOff:
		s.Camera.Leave(camera.ModeTopDown)
	case input.ActionFirstPersonOn:
		s.Camera.Enter(camera.ModeFirstPerson)
	case input.ActionFirstPersonOff:
		s.Camera.Leave(camera.ModeFirstPerson)
	case input.ActionNudgeXUp:
		s.Camera.Nudge(0, 1)
	case input.ActionNudgeXDown:
		s.Camera.Nudge(0, -1)
	case input.ActionNudgeYUp:
		s.Camera.Nudge(1, 1)
	case input.ActionNudgeYDown:
		s.Camera.Nudge(1, -1)
	case input.ActionNudgeZUp:
		s.Camera.Nudge(2, 1)
	case input.ActionNudgeZDown:
		s.Camera.Nudge(2, -1)
	}
}

// Tick advances the board and the player by one step.
func (s *State) Tick() {
	defer profiling.Track("game.Tick")()

	s.Ticks++
	s.World.Tick()
	s.Player.Tick(s.World)

	if s.Player.Won && !s.reportedWin {
		s.reportedWin = true
		log.Println("You Win")
	}
	if s.Player.Fallen && !s.reportedFall {
		s.reportedFall = true
		log.Println("Fell off the maze, press n to restart")
	}
}

// Restart puts the player back on the start cell. The board and the camera
// keep their state.
func (s *State) Restart() {
	s.Player.Reset()
	s.reportedWin = false
	s.reportedFall = false
}

func (s *State) BeginDrag(x, y float64, height int) {
	s.Camera.BeginDrag(x, y, height)
}

func (s *State) EndDrag(x, y float64, width, height int) {
	s.Camera.EndDrag(x, y, width, height)
}

func (s *State) Scroll(yoff float64) {
	s.Camera.Scroll(yoff)
}
