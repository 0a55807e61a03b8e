package textentry

import (
	"time"

	"github.com/vovakirdan/tui-lander/internal/core"
)

// Phase is the edge state of a key between two frames.
type Phase int

const (
	Released Phase = iota // Not pressed this frame
	NewPress              // Pressed this frame, not the previous one
	Held                  // Pressed this frame and the previous one
)

// keyTiming is the repeat bookkeeping for one key.
// Zero times mean the key has never been accepted, which makes it due.
type keyTiming struct {
	lastAccepted time.Time
	nextRepeat   time.Time
}

// RepeatState classifies keys as new, held or released and decides when a
// held key repeats. State is kept in fixed arrays indexed by core.Key.
type RepeatState struct {
	delay    time.Duration
	interval time.Duration
	prev     [core.KeyCount]bool
	timing   [core.KeyCount]keyTiming
}

// NewRepeatState creates a repeat tracker. A held key first repeats delay
// after it was accepted, then every interval.
func NewRepeatState(delay, interval time.Duration) *RepeatState {
	return &RepeatState{delay: delay, interval: interval}
}

// Reset forgets all keys.
func (r *RepeatState) Reset() {
	r.prev = [core.KeyCount]bool{}
	r.timing = [core.KeyCount]keyTiming{}
}

// Consume marks keys as already held and accepted at now, so a key that is
// still down from before does not register as a fresh press.
func (r *RepeatState) Consume(keys []core.Key, now time.Time) {
	for _, k := range keys {
		if !valid(k) {
			continue
		}
		r.prev[k] = true
		r.timing[k] = keyTiming{lastAccepted: now, nextRepeat: now.Add(r.delay)}
	}
}

// Phase compares this frame's state of k with the previous frame.
func (r *RepeatState) Phase(k core.Key, pressed bool) Phase {
	if !valid(k) || !pressed {
		return Released
	}
	if r.prev[k] {
		return Held
	}
	return NewPress
}

// Due reports whether a held key may repeat at now: its next repeat time
// has passed and at least one interval has gone by since it was accepted.
func (r *RepeatState) Due(k core.Key, now time.Time) bool {
	if !valid(k) {
		return false
	}
	t := r.timing[k]
	return !now.Before(t.nextRepeat) && now.Sub(t.lastAccepted) >= r.interval
}

// Accept records that k produced input at now. A fresh press waits the
// full delay before repeating; a repeat waits one interval.
func (r *RepeatState) Accept(k core.Key, now time.Time, phase Phase) {
	if !valid(k) {
		return
	}
	wait := r.interval
	if phase == NewPress {
		wait = r.delay
	}
	r.timing[k] = keyTiming{lastAccepted: now, nextRepeat: now.Add(wait)}
}

// Remember stores this frame's pressed state for the next edge check.
func (r *RepeatState) Remember(pressed [core.KeyCount]bool) {
	r.prev = pressed
}

func valid(k core.Key) bool {
	return k >= 0 && k < core.KeyCount
}
