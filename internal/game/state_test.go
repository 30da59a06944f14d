package game

import (
	"testing"
	"time"

	"cube-maze/internal/camera"
	"cube-maze/internal/config"
	"cube-maze/internal/input"
)

type countingSound struct{ plays int }

func (c *countingSound) Play() { c.plays++ }

func TestApplyMoves(t *testing.T) {
	s := NewState()
	s.Apply(input.ActionMoveEast)
	s.Apply(input.ActionMoveEast)
	s.Apply(input.ActionMoveNorth)
	if s.Player.StepX != 2 || s.Player.StepZ != 1 {
		t.Errorf("player at (%d,%d), want (2,1)", s.Player.StepX, s.Player.StepZ)
	}
}

func TestApplyCameraModes(t *testing.T) {
	s := NewState()
	tests := []struct {
		action input.Action
		want   camera.Mode
	}{
		{input.ActionFollowOn, camera.ModeFollow},
		{input.ActionTopDownOff, camera.ModeFollow},
		{input.ActionTopDownOn, camera.ModeTopDown},
		{input.ActionFirstPersonOn, camera.ModeFirstPerson},
		{input.ActionFirstPersonOff, camera.ModeOrbit},
	}
	for _, tt := range tests {
		s.Apply(tt.action)
		if s.Camera.Mode != tt.want {
			t.Errorf("after %v: mode %v, want %v", tt.action, s.Camera.Mode, tt.want)
		}
	}
}

func TestJumpPlaysSoundOnce(t *testing.T) {
	s := NewState()
	snd := &countingSound{}
	s.JumpSound = snd

	s.Apply(input.ActionJump)
	s.Apply(input.ActionJump)
	if snd.plays != 1 {
		t.Errorf("sound played %d times, want 1", snd.plays)
	}
	for i := 0; i < 60; i++ {
		s.Tick()
	}
	s.Apply(input.ActionJump)
	if snd.plays != 2 {
		t.Errorf("sound played %d times after landing, want 2", snd.plays)
	}
}

func TestJumpWithoutSound(t *testing.T) {
	s := NewState()
	s.Apply(input.ActionJump)
	if !s.Player.Airborne() {
		t.Error("jump did not start")
	}
}

func TestQuitAndToggles(t *testing.T) {
	s := NewState()
	s.Apply(input.ActionToggleSwing)
	if s.Player.SwingEnabled {
		t.Error("swing still enabled")
	}
	s.Apply(input.ActionNudgeYUp)
	s.Apply(input.ActionNudgeYUp)
	if s.Camera.Orbit.Y() != 2 {
		t.Errorf("orbit y %v", s.Camera.Orbit.Y())
	}
	s.Apply(input.ActionQuit)
	if !s.Quit {
		t.Error("quit not set")
	}
}

func TestRestartAfterFall(t *testing.T) {
	s := NewState()
	s.Apply(input.ActionToggleSwing)
	s.Apply(input.ActionMoveSouth)
	s.Apply(input.ActionMoveSouth)
	for i := 0; i < 400 && !s.Player.Fallen; i++ {
		s.Tick()
	}
	if !s.Player.Fallen {
		t.Fatal("player did not fall off the south edge")
	}
	if !s.reportedFall {
		t.Error("fall not reported")
	}

	s.Apply(input.ActionRestart)
	if s.Player.Fallen || s.Player.StepZ != 0 || s.reportedFall {
		t.Errorf("restart left %+v", s.Player)
	}
	if s.Player.SwingEnabled {
		t.Error("restart reset the swing preference")
	}
}

func TestTickerCapsSteps(t *testing.T) {
	tk := NewTicker(TickRate, 5)
	if n := tk.Advance(8 * time.Millisecond); n != 0 {
		t.Errorf("8ms gave %d steps", n)
	}
	if n := tk.Advance(10 * time.Millisecond); n != 1 {
		t.Errorf("18ms total gave %d steps", n)
	}
	if n := tk.Advance(time.Second); n != 5 {
		t.Errorf("a one second hitch gave %d steps, want the cap", n)
	}
	if n := tk.Advance(0); n != 0 {
		t.Errorf("leftover after the cap gave %d steps", n)
	}
}

func TestFPSLimiterPaces(t *testing.T) {
	defer config.SetFPSLimit(config.GetFPSLimit())
	config.SetFPSLimit(100)

	f := NewFPSLimiter()
	start := time.Now()
	for i := 0; i < 5; i++ {
		f.Wait()
	}
	if d := time.Since(start); d < 45*time.Millisecond {
		t.Errorf("5 frames at 100fps took %v", d)
	}

	config.SetFPSLimit(0)
	start = time.Now()
	f.Wait()
	if d := time.Since(start); d > 5*time.Millisecond {
		t.Errorf("uncapped wait took %v", d)
	}
}

func BenchmarkTick(b *testing.B) {
	s := NewState()
	for i := 0; i < b.N; i++ {
		s.Tick()
	}
}
