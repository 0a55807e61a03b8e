// Package textentry implements the pilot name editor: a frame-driven text
// entry state machine with per-key auto-repeat over polled key state.
package textentry

import (
	"strings"
	"time"
	"unicode"

	"github.com/vovakirdan/tui-lander/internal/core"
)

// Status is the outcome of one Update.
type Status int

const (
	Idle   Status = iota // Still entering, or not active
	Commit               // Enter pressed; Result carries the name
	Cancel               // Escape pressed; the buffer was discarded
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Commit:
		return "Commit"
	case Cancel:
		return "Cancel"
	default:
		return "Unknown"
	}
}

// Result is returned by Update.
// On Commit, HasName is false when the trimmed buffer was empty.
type Result struct {
	Status  Status
	Name    string
	HasName bool
}

// Options configure a Machine.
type Options struct {
	RepeatDelay    time.Duration
	RepeatInterval time.Duration
	BlinkInterval  time.Duration
	MaxLength      int
}

// DefaultOptions returns the stock timings: 500ms delay, 50ms interval,
// 500ms cursor blink, 15 characters.
func DefaultOptions() Options {
	return Options{
		RepeatDelay:    500 * time.Millisecond,
		RepeatInterval: 50 * time.Millisecond,
		BlinkInterval:  500 * time.Millisecond,
		MaxLength:      15,
	}
}

// charKeys is the typing alphabet in acceptance order.
var charKeys = func() []core.Key {
	keys := make([]core.Key, 0, 38)
	for k := core.KeyA; k <= core.KeyZ; k++ {
		keys = append(keys, k)
	}
	for k := core.Key0; k <= core.Key9; k++ {
		keys = append(keys, k)
	}
	return append(keys, core.KeySpace, core.KeyMinus)
}()

// Machine edits a name one frame at a time.
// It is not safe for concurrent use; the game loop owns it.
type Machine struct {
	opts    Options
	repeat  *RepeatState
	enter   bool
	buffer  []rune
	cursor  bool
	blinkAt time.Time
}

// New creates an inactive machine.
func New(opts Options) *Machine {
	if opts.MaxLength <= 0 {
		opts.MaxLength = DefaultOptions().MaxLength
	}
	return &Machine{
		opts:   opts,
		repeat: NewRepeatState(opts.RepeatDelay, opts.RepeatInterval),
		cursor: true,
	}
}

// Start begins editing with initial as the buffer. Keys in consumed are
// treated as already pressed, so the key that opened the editor is not
// typed into it.
func (m *Machine) Start(initial string, consumed []core.Key, now time.Time) {
	m.enter = true
	m.buffer = []rune(initial)
	if len(m.buffer) > m.opts.MaxLength {
		m.buffer = m.buffer[:m.opts.MaxLength]
	}
	m.cursor = true
	m.blinkAt = now
	m.repeat.Reset()
	m.repeat.Consume(consumed, now)
}

// Stop leaves edit mode and forgets key state.
func (m *Machine) Stop() {
	m.enter = false
	m.repeat.Reset()
	m.blinkAt = time.Time{}
	m.cursor = true
}

// Entering reports whether the machine is active.
func (m *Machine) Entering() bool {
	return m.enter
}

// Text returns the current buffer.
func (m *Machine) Text() string {
	return string(m.buffer)
}

// CursorVisible reports the blink phase of the trailing cursor.
func (m *Machine) CursorVisible() bool {
	return m.cursor
}

// DisplayText returns the buffer followed by the cursor glyph, or a space
// while the cursor is blinked off.
func (m *Machine) DisplayText() string {
	if m.cursor {
		return string(m.buffer) + "_"
	}
	return string(m.buffer) + " "
}

// Update processes one frame of key state sampled at now.
// A nil keys behaves as no key pressed.
func (m *Machine) Update(keys core.KeyQuery, now time.Time) Result {
	if !m.enter {
		return Result{Status: Idle}
	}
	if keys == nil {
		keys = core.NoKeys{}
	}

	if now.Sub(m.blinkAt) >= m.opts.BlinkInterval {
		m.cursor = !m.cursor
		m.blinkAt = now
	}

	if keys.IsPressed(core.KeyEnter) {
		name := strings.TrimFunc(string(m.buffer), unicode.IsSpace)
		m.Stop()
		return Result{Status: Commit, Name: name, HasName: name != ""}
	}
	if keys.IsPressed(core.KeyEscape) {
		m.buffer = m.buffer[:0]
		m.Stop()
		return Result{Status: Cancel}
	}

	mods := keys.Modifiers()
	var pressed [core.KeyCount]bool
	for _, k := range charKeys {
		pressed[k] = keys.IsPressed(k)
	}
	pressed[core.KeyBackspace] = keys.IsPressed(core.KeyBackspace)

	m.backspace(pressed[core.KeyBackspace], now)
	m.typeChar(pressed, mods, now)

	m.repeat.Remember(pressed)
	return Result{Status: Idle}
}

// backspace deletes the last rune on a fresh press and on each repeat.
func (m *Machine) backspace(pressed bool, now time.Time) {
	phase := m.repeat.Phase(core.KeyBackspace, pressed)
	switch phase {
	case Released:
		return
	case Held:
		if !m.repeat.Due(core.KeyBackspace, now) {
			return
		}
	}
	if len(m.buffer) > 0 {
		m.buffer = m.buffer[:len(m.buffer)-1]
	}
	m.repeat.Accept(core.KeyBackspace, now, phase)
}

// typeChar appends at most one character. Fresh presses win over held
// keys; held keys are only considered when nothing was newly pressed.
func (m *Machine) typeChar(pressed [core.KeyCount]bool, mods core.Modifiers, now time.Time) {
	anyNew := false
	for _, k := range charKeys {
		if m.repeat.Phase(k, pressed[k]) != NewPress {
			continue
		}
		anyNew = true
		if m.room() {
			m.append(k, mods)
			m.repeat.Accept(k, now, NewPress)
			return
		}
	}
	if anyNew {
		return
	}

	for _, k := range charKeys {
		if m.repeat.Phase(k, pressed[k]) != Held || !m.repeat.Due(k, now) {
			continue
		}
		if m.room() {
			m.append(k, mods)
			m.repeat.Accept(k, now, Held)
			return
		}
	}
}

func (m *Machine) room() bool {
	return len(m.buffer) < m.opts.MaxLength
}

// append types k with the modifier rules: shift XOR caps lock uppercases
// letters, shift turns '-' into '_'.
func (m *Machine) append(k core.Key, mods core.Modifiers) {
	r, _ := k.Rune()
	switch {
	case k.IsLetter() && mods.Shift != mods.CapsLock:
		r = unicode.ToUpper(r)
	case k == core.KeyMinus && mods.Shift:
		r = '_'
	}
	m.buffer = append(m.buffer, r)
}
