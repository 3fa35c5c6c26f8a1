package tui

import (
	"time"

	"github.com/vovakirdan/invaders/internal/core"
)

// Terminals report key presses and auto-repeats but never releases, so a
// control counts as held until its repeats stop arriving.
const (
	initialHold = 500 * time.Millisecond // Covers the auto-repeat delay
	repeatHold  = 150 * time.Millisecond

	// Auto-repeat never starts sooner than this after a key goes down. A
	// second press arriving earlier is a new tap.
	minRepeatDelay = 250 * time.Millisecond
)

type hold struct {
	since     time.Time // First press of this hold
	deadline  time.Time
	repeating bool
}

// releaser synthesizes key-up events from press timing.
type releaser struct {
	holds map[core.Control]hold
}

func newReleaser() releaser {
	return releaser{holds: make(map[core.Control]hold)}
}

// press records a key-down at now. It reports whether this is a new press
// rather than an auto-repeat of a key still held.
func (r releaser) press(c core.Control, now time.Time) bool {
	h, ok := r.holds[c]
	if ok && (h.repeating || now.Sub(h.since) >= minRepeatDelay) {
		h.repeating = true
		h.deadline = now.Add(repeatHold)
		r.holds[c] = h
		return false
	}

	r.holds[c] = hold{since: now, deadline: now.Add(initialHold)}
	return true
}

// holding reports whether the control is still considered down.
func (r releaser) holding(c core.Control) bool {
	_, ok := r.holds[c]
	return ok
}

// forget drops a control without waiting for its deadline.
func (r releaser) forget(c core.Control) {
	delete(r.holds, c)
}

// expire forgets and returns the controls whose deadline passed.
func (r releaser) expire(now time.Time) []core.Control {
	var released []core.Control
	for c, h := range r.holds {
		if now.After(h.deadline) {
			released = append(released, c)
			delete(r.holds, c)
		}
	}
	return released
}

func (r releaser) reset() {
	clear(r.holds)
}
