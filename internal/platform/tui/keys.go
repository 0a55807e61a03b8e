package tui

import (
	"time"

	"github.com/vovakirdan/tui-lander/internal/core"
)

// heldKey is the hold window of one key.
type heldKey struct {
	last  time.Time // Latest key event
	until time.Time // Key reads as pressed before this
	shift bool      // Latest event was typed with shift
	pulse bool      // Report one released frame before the next press
}

// HeldKeys turns terminal key events into polled key state.
//
// Terminals report key presses and auto-repeats but never releases, so a
// key counts as held for initialHold after an isolated event, which covers
// the terminal's own repeat delay, and for repeatHold after each event of
// a fast repeat stream. An event that arrives while the key is still held
// but too late to be a repeat is a new tap: the next frame reports the
// key released so the press edge is not lost.
type HeldKeys struct {
	initialHold time.Duration
	repeatHold  time.Duration
	keys        [core.KeyCount]heldKey
}

// NewHeldKeys creates an adapter with the given hold windows.
func NewHeldKeys(initialHold, repeatHold time.Duration) *HeldKeys {
	if repeatHold <= 0 {
		repeatHold = 120 * time.Millisecond
	}
	if initialHold < repeatHold {
		initialHold = repeatHold
	}
	return &HeldKeys{initialHold: initialHold, repeatHold: repeatHold}
}

// Press records a key event at.
func (h *HeldKeys) Press(k core.Key, shift bool, at time.Time) {
	if k < 0 || k >= core.KeyCount {
		return
	}
	st := &h.keys[k]
	held := at.Before(st.until)
	switch {
	case held && at.Sub(st.last) <= h.repeatHold:
		st.until = at.Add(h.repeatHold)
	case held:
		st.pulse = true
		st.until = at.Add(h.initialHold)
	default:
		st.until = at.Add(h.initialHold)
	}
	st.last = at
	st.shift = shift
}

// Release forgets k immediately.
func (h *HeldKeys) Release(k core.Key) {
	if k >= 0 && k < core.KeyCount {
		h.keys[k] = heldKey{}
	}
}

// Reset forgets all keys.
func (h *HeldKeys) Reset() {
	h.keys = [core.KeyCount]heldKey{}
}

// Frame samples the key state at now. Shift follows the most recent held
// key event; terminals do not report caps lock.
func (h *HeldKeys) Frame(now time.Time) core.KeySet {
	var (
		ks     core.KeySet
		latest time.Time
	)
	for k := range h.keys {
		st := &h.keys[k]
		if st.pulse {
			st.pulse = false
			continue
		}
		if !now.Before(st.until) {
			continue
		}
		ks.Press(core.Key(k))
		if st.last.After(latest) {
			latest = st.last
			ks.Mods.Shift = st.shift
		}
	}
	return ks
}
