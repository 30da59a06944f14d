package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action is a logical game command, independent of the key that produced it.
type Action int

const (
	ActionQuit Action = iota
	ActionMoveNorth
	ActionMoveSouth
	ActionMoveEast
	ActionMoveWest
	ActionJump
	ActionRestart
	ActionToggleSwing

	// Camera
	ActionRotateCamera
	ActionFollowOn
	ActionFollowOff
	ActionTopDownOn
	ActionTopDownOff
	ActionFirstPersonOn
	ActionFirstPersonOff

	// Orbit eye nudges
	ActionNudgeXUp
	ActionNudgeXDown
	ActionNudgeYUp
	ActionNudgeYDown
	ActionNudgeZUp
	ActionNudgeZDown

	ActionCount // Sentinel value for array sizing
)

var actionNames = [ActionCount]string{
	ActionQuit:           "quit",
	ActionMoveNorth:      "move-north",
	ActionMoveSouth:      "move-south",
	ActionMoveEast:       "move-east",
	ActionMoveWest:       "move-west",
	ActionJump:           "jump",
	ActionRestart:        "restart",
	ActionToggleSwing:    "toggle-swing",
	ActionRotateCamera:   "rotate-camera",
	ActionFollowOn:       "follow-on",
	ActionFollowOff:      "follow-off",
	ActionTopDownOn:      "top-down-on",
	ActionTopDownOff:     "top-down-off",
	ActionFirstPersonOn:  "first-person-on",
	ActionFirstPersonOff: "first-person-off",
	ActionNudgeXUp:       "nudge-x+",
	ActionNudgeXDown:     "nudge-x-",
	ActionNudgeYUp:       "nudge-y+",
	ActionNudgeYDown:     "nudge-y-",
	ActionNudgeZUp:       "nudge-z+",
	ActionNudgeZDown:     "nudge-z-",
}

func (a Action) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// InputManager maps physical keys and typed characters to actions and
// queues them in arrival order until the frame drains them.
//
// Keys fire on press only. Characters fire on every char event, so holding
// a letter repeats it at the OS key-repeat rate.
type InputManager struct {
	mu sync.Mutex

	keyToActions  map[glfw.Key][]Action
	charToActions map[rune][]Action

	queue []Action
}

// NewInputManager creates an InputManager with the default bindings.
func NewInputManager() *InputManager {
	im := &InputManager{
		keyToActions:  make(map[glfw.Key][]Action),
		charToActions: make(map[rune][]Action),
	}

	im.BindKey(glfw.KeyEscape, ActionQuit)
	im.BindKey(glfw.KeyUp, ActionMoveNorth)
	im.BindKey(glfw.KeyDown, ActionMoveSouth)
	im.BindKey(glfw.KeyRight, ActionMoveEast)
	im.BindKey(glfw.KeyLeft, ActionMoveWest)

	chars := []struct {
		r rune
		a Action
	}{
		{'q', ActionQuit}, {'Q', ActionQuit},
		{'w', ActionMoveNorth},
		{'s', ActionMoveSouth},
		{'d', ActionMoveEast},
		{'a', ActionMoveWest},
		{' ', ActionJump},
		{'n', ActionRestart},
		{'c', ActionToggleSwing},
		{'r', ActionRotateCamera},
		{'o', ActionFollowOn}, {'O', ActionFollowOff},
		{'t', ActionTopDownOn}, {'T', ActionTopDownOff},
		{'p', ActionFirstPersonOn}, {'P', ActionFirstPersonOff},
		{'x', ActionNudgeXUp}, {'X', ActionNudgeXDown},
		{'y', ActionNudgeYUp}, {'Y', ActionNudgeYDown},
		{'z', ActionNudgeZUp}, {'Z', ActionNudgeZDown},
	}
	for _, c := range chars {
		im.BindChar(c.r, c.a)
	}

	return im
}

// BindKey binds a physical key to an action. A key may carry several actions.
func (im *InputManager) BindKey(key glfw.Key, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}
	im.mu.Lock()
	defer im.mu.Unlock()
	im.keyToActions[key] = append(im.keyToActions[key], action)
}

// UnbindKey removes all action bindings for a key.
func (im *InputManager) UnbindKey(key glfw.Key) {
	im.mu.Lock()
	defer im.mu.Unlock()
	delete(im.keyToActions, key)
}

// BindChar binds a typed character to an action.
func (im *InputManager) BindChar(r rune, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}
	im.mu.Lock()
	defer im.mu.Unlock()
	im.charToActions[r] = append(im.charToActions[r], action)
}

// HandleKeyEvent queues the actions bound to key on press.
func (im *InputManager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	if action != glfw.Press {
		return
	}
	im.mu.Lock()
	defer im.mu.Unlock()
	im.queue = append(im.queue, im.keyToActions[key]...)
}

// HandleCharEvent queues the actions bound to r.
func (im *InputManager) HandleCharEvent(r rune) {
	im.mu.Lock()
	defer im.mu.Unlock()
	im.queue = append(im.queue, im.charToActions[r]...)
}

// SetCallbacks installs the key and char callbacks on window.
func (im *InputManager) SetCallbacks(window *glfw.Window) {
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleKeyEvent(key, action)
	})
	window.SetCharCallback(func(w *glfw.Window, char rune) {
		im.HandleCharEvent(char)
	})
}

// Drain returns the queued actions in arrival order and empties the queue.
func (im *InputManager) Drain() []Action {
	im.mu.Lock()
	defer im.mu.Unlock()
	if len(im.queue) == 0 {
		return nil
	}
	out := im.queue
	im.queue = nil
	return out
}
