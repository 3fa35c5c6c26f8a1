package core

import "testing"

func TestControlForKey(t *testing.T) {
	tests := []struct {
		key      string
		expected Control
	}{
		{"ArrowLeft", ControlLeft},
		{"Left", ControlLeft},
		{"left", ControlLeft},
		{"ArrowRight", ControlRight},
		{"Right", ControlRight},
		{"right", ControlRight},
		{" ", ControlFire},
		{"Spacebar", ControlFire},
		{"space", ControlFire},
		{"Space", ControlFire},
		{"a", ControlNone},
		{"Enter", ControlNone},
		{"", ControlNone},
	}

	for _, tc := range tests {
		if got := ControlForKey(tc.key); got != tc.expected {
			t.Errorf("ControlForKey(%q) = %v, expected %v", tc.key, got, tc.expected)
		}
	}
}

func TestTrackerPressRelease(t *testing.T) {
	var tr Tracker

	tr.Press(ControlLeft)
	tr.Press(ControlRight)
	if s := tr.State(); !s.Left || !s.Right || s.Fire {
		t.Errorf("unexpected state after pressing left+right: %+v", s)
	}

	tr.Release(ControlLeft)
	if s := tr.State(); s.Left || !s.Right {
		t.Errorf("unexpected state after releasing left: %+v", s)
	}
}

func TestTrackerIgnoresUnknownKeys(t *testing.T) {
	var tr Tracker

	if tr.PressKey("x") {
		t.Error("PressKey should report an unknown key as unrecognized")
	}
	if tr.ReleaseKey("Escape") {
		t.Error("ReleaseKey should report an unknown key as unrecognized")
	}
	if s := tr.State(); s != (InputState{}) {
		t.Errorf("unknown keys must not change state, got %+v", s)
	}
}

func TestTrackerFireIsEdgeTriggered(t *testing.T) {
	var tr Tracker

	tr.PressKey(" ")
	if !tr.State().Fire {
		t.Fatal("press should arm fire")
	}

	tr.ConsumeFire()
	if tr.State().Fire {
		t.Fatal("ConsumeFire should disarm fire")
	}
	// Auto-repeat while held must not re-arm.
	tr.PressKey(" ")
	tr.PressKey("Spacebar")
	if tr.State().Fire {
		t.Error("repeated press while held must not re-arm fire")
	}

	tr.ReleaseKey(" ")
	tr.PressKey(" ")
	if !tr.State().Fire {
		t.Error("press after release should arm fire again")
	}
}

func TestTrackerReset(t *testing.T) {
	var tr Tracker
	tr.Press(ControlLeft)
	tr.Press(ControlFire)

	tr.Reset()

	if s := tr.State(); s != (InputState{}) {
		t.Errorf("Reset should clear flags, got %+v", s)
	}
	tr.Press(ControlFire)
	if !tr.State().Fire {
		t.Error("Reset should release fire so the next press arms it")
	}
}
