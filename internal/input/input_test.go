package input

import (
	"reflect"
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func TestKeysFireOnPressOnly(t *testing.T) {
	im := NewInputManager()
	im.HandleKeyEvent(glfw.KeyUp, glfw.Press)
	im.HandleKeyEvent(glfw.KeyUp, glfw.Repeat)
	im.HandleKeyEvent(glfw.KeyUp, glfw.Release)

	got := im.Drain()
	if !reflect.DeepEqual(got, []Action{ActionMoveNorth}) {
		t.Errorf("got %v, want a single move-north", got)
	}
}

func TestCharsRepeat(t *testing.T) {
	im := NewInputManager()
	for i := 0; i < 3; i++ {
		im.HandleCharEvent('d')
	}
	if got := im.Drain(); len(got) != 3 {
		t.Errorf("got %d actions, want 3", len(got))
	}
}

func TestQueueKeepsArrivalOrder(t *testing.T) {
	im := NewInputManager()
	im.HandleCharEvent('w')
	im.HandleKeyEvent(glfw.KeyLeft, glfw.Press)
	im.HandleCharEvent(' ')
	im.HandleCharEvent('P')

	want := []Action{ActionMoveNorth, ActionMoveWest, ActionJump, ActionFirstPersonOff}
	if got := im.Drain(); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got := im.Drain(); got != nil {
		t.Errorf("second drain returned %v", got)
	}
}

func TestCaseSensitiveChars(t *testing.T) {
	im := NewInputManager()
	pairs := []struct {
		lower, upper rune
		on, off      Action
	}{
		{'o', 'O', ActionFollowOn, ActionFollowOff},
		{'t', 'T', ActionTopDownOn, ActionTopDownOff},
		{'x', 'X', ActionNudgeXUp, ActionNudgeXDown},
		{'z', 'Z', ActionNudgeZUp, ActionNudgeZDown},
	}
	for _, p := range pairs {
		im.HandleCharEvent(p.lower)
		im.HandleCharEvent(p.upper)
		got := im.Drain()
		if !reflect.DeepEqual(got, []Action{p.on, p.off}) {
			t.Errorf("%q/%q: got %v", p.lower, p.upper, got)
		}
	}
}

func TestUnboundInputIsIgnored(t *testing.T) {
	im := NewInputManager()
	im.HandleCharEvent('k')
	im.HandleKeyEvent(glfw.KeyF1, glfw.Press)
	if got := im.Drain(); got != nil {
		t.Errorf("unbound input queued %v", got)
	}

	im.UnbindKey(glfw.KeyEscape)
	im.HandleKeyEvent(glfw.KeyEscape, glfw.Press)
	if got := im.Drain(); got != nil {
		t.Errorf("unbound escape queued %v", got)
	}
}

func TestBindRejectsInvalidAction(t *testing.T) {
	im := NewInputManager()
	im.BindChar('k', ActionCount)
	im.BindKey(glfw.KeyF2, -1)
	im.HandleCharEvent('k')
	im.HandleKeyEvent(glfw.KeyF2, glfw.Press)
	if got := im.Drain(); got != nil {
		t.Errorf("invalid bindings queued %v", got)
	}
}

func TestActionNames(t *testing.T) {
	for a := Action(0); a < ActionCount; a++ {
		if a.String() == "" {
			t.Errorf("action %d has no name", a)
		}
	}
	if ActionCount.String() != "unknown" {
		t.Errorf("sentinel named %q", ActionCount.String())
	}
}
