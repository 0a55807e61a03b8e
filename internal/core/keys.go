package core

// Key identifies a logical key the simulation can query.
// The set is closed so per-key state can live in fixed arrays of KeyCount.
type Key int

const (
	KeyA Key = iota
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeySpace
	KeyMinus
	KeyBackspace
	KeyEnter
	KeyEscape
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	KeyCount // number of keys, not a key
)

var keyNames = [KeyCount]string{
	KeySpace:     "space",
	KeyMinus:     "-",
	KeyBackspace: "backspace",
	KeyEnter:     "enter",
	KeyEscape:    "esc",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
}

// String returns the key name as Bubble Tea spells it.
func (k Key) String() string {
	if r, ok := k.Rune(); ok && k != KeySpace && k != KeyMinus {
		return string(r)
	}
	if k >= 0 && k < KeyCount {
		return keyNames[k]
	}
	return "unknown"
}

// Rune returns the unshifted character a key types.
// The second result is false for keys that don't type anything.
func (k Key) Rune() (rune, bool) {
	switch {
	case k >= KeyA && k <= KeyZ:
		return 'a' + rune(k-KeyA), true
	case k >= Key0 && k <= Key9:
		return '0' + rune(k-Key0), true
	case k == KeySpace:
		return ' ', true
	case k == KeyMinus:
		return '-', true
	}
	return 0, false
}

// IsLetter reports whether k is one of a-z.
func (k Key) IsLetter() bool {
	return k >= KeyA && k <= KeyZ
}

// KeyForRune maps a typed character back to its key and whether shift
// was needed to produce it. Uppercase letters and '_' report shift.
func KeyForRune(r rune) (k Key, shift bool, ok bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return KeyA + Key(r-'a'), false, true
	case r >= 'A' && r <= 'Z':
		return KeyA + Key(r-'A'), true, true
	case r >= '0' && r <= '9':
		return Key0 + Key(r-'0'), false, true
	case r == ' ':
		return KeySpace, false, true
	case r == '-':
		return KeyMinus, false, true
	case r == '_':
		return KeyMinus, true, true
	}
	return 0, false, false
}

// Modifiers is the modifier state sampled alongside key presses.
type Modifiers struct {
	Shift    bool
	CapsLock bool
}

// KeyQuery reports which keys are currently held down.
// Implementations must not fail: an unreadable input source reports
// nothing pressed and zero modifiers.
type KeyQuery interface {
	IsPressed(k Key) bool
	Modifiers() Modifiers
}

// NoKeys is a KeyQuery with nothing pressed.
type NoKeys struct{}

// IsPressed always returns false.
func (NoKeys) IsPressed(Key) bool { return false }

// Modifiers always returns no modifiers.
func (NoKeys) Modifiers() Modifiers { return Modifiers{} }

// KeySet is a fixed-size pressed-state snapshot that implements KeyQuery.
// Tests and replays build frames from it.
type KeySet struct {
	Pressed [KeyCount]bool
	Mods    Modifiers
}

// NewKeySet returns a KeySet with the given keys held.
func NewKeySet(keys ...Key) KeySet {
	var s KeySet
	for _, k := range keys {
		s.Press(k)
	}
	return s
}

// Press marks k as held.
func (s *KeySet) Press(k Key) {
	if k >= 0 && k < KeyCount {
		s.Pressed[k] = true
	}
}

// Release marks k as not held.
func (s *KeySet) Release(k Key) {
	if k >= 0 && k < KeyCount {
		s.Pressed[k] = false
	}
}

// IsPressed reports whether k is held.
func (s KeySet) IsPressed(k Key) bool {
	if k < 0 || k >= KeyCount {
		return false
	}
	return s.Pressed[k]
}

// Modifiers returns the modifier state.
func (s KeySet) Modifiers() Modifiers {
	return s.Mods
}
