package core

// Control is a logical game control, abstracted from physical keys.
type Control int

const (
	ControlNone  Control = iota
	ControlLeft          // ArrowLeft, Left
	ControlRight         // ArrowRight, Right
	ControlFire          // " ", Spacebar
)

// String returns a human-readable name for the control.
func (c Control) String() string {
	switch c {
	case ControlNone:
		return "None"
	case ControlLeft:
		return "Left"
	case ControlRight:
		return "Right"
	case ControlFire:
		return "Fire"
	default:
		return "Unknown"
	}
}

// ControlForKey maps a key name to a control. Both the DOM-style names and
// their legacy aliases are accepted, plus the names Bubble Tea and
// Ebitengine report.
// Unrecognized keys map to ControlNone.
func ControlForKey(key string) Control {
	switch key {
	case "ArrowLeft", "Left", "left":
		return ControlLeft
	case "ArrowRight", "Right", "right":
		return ControlRight
	case " ", "Spacebar", "space", "Space":
		return ControlFire
	}
	return ControlNone
}

// InputState is the three-flag snapshot the simulation reads each frame.
type InputState struct {
	Left  bool
	Right bool
	Fire  bool
}

// Tracker records press/release state of the controls.
//
// Fire is edge-triggered: a press arms it, spawning a shot disarms it, and a
// press while fire is already held (key auto-repeat) does not re-arm it.
type Tracker struct {
	state    InputState
	fireHeld bool
}

// Press records a key-down for the control. ControlNone is ignored.
func (t *Tracker) Press(c Control) {
	switch c {
	case ControlLeft:
		t.state.Left = true
	case ControlRight:
		t.state.Right = true
	case ControlFire:
		if !t.fireHeld {
			t.state.Fire = true
		}
		t.fireHeld = true
	}
}

// Release records a key-up for the control. ControlNone is ignored.
func (t *Tracker) Release(c Control) {
	switch c {
	case ControlLeft:
		t.state.Left = false
	case ControlRight:
		t.state.Right = false
	case ControlFire:
		t.state.Fire = false
		t.fireHeld = false
	}
}

// PressKey maps a key name and records a press.
// It reports whether the key was recognized.
func (t *Tracker) PressKey(key string) bool {
	c := ControlForKey(key)
	t.Press(c)
	return c != ControlNone
}

// ReleaseKey maps a key name and records a release.
// It reports whether the key was recognized.
func (t *Tracker) ReleaseKey(key string) bool {
	c := ControlForKey(key)
	t.Release(c)
	return c != ControlNone
}

// ConsumeFire disarms a pending fire request after a shot spawned.
// The key stays held until it is released.
func (t *Tracker) ConsumeFire() {
	t.state.Fire = false
}

// State returns the current flags.
func (t *Tracker) State() InputState {
	return t.state
}

// Reset releases every control.
func (t *Tracker) Reset() {
	*t = Tracker{}
}
