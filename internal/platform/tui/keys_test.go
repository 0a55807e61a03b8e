package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-lander/internal/core"
)

var keyEpoch = time.Unix(1700000000, 0)

func ms(n int) time.Time {
	return keyEpoch.Add(time.Duration(n) * time.Millisecond)
}

func TestHeldKeysSingleTap(t *testing.T) {
	h := NewHeldKeys(400*time.Millisecond, 120*time.Millisecond)
	h.Press(core.KeyUp, false, ms(0))

	if !h.Frame(ms(16)).IsPressed(core.KeyUp) {
		t.Error("key not held right after event")
	}
	if !h.Frame(ms(399)).IsPressed(core.KeyUp) {
		t.Error("key released inside initial hold")
	}
	if h.Frame(ms(400)).IsPressed(core.KeyUp) {
		t.Error("key still held after initial hold")
	}
}

func TestHeldKeysRepeatStream(t *testing.T) {
	h := NewHeldKeys(400*time.Millisecond, 120*time.Millisecond)

	// Terminal repeats arrive every 30ms
	for n := 0; n <= 300; n += 30 {
		h.Press(core.KeyLeft, false, ms(n))
		if !h.Frame(ms(n + 1)).IsPressed(core.KeyLeft) {
			t.Fatalf("dropped at %dms", n)
		}
	}
	if !h.Frame(ms(419)).IsPressed(core.KeyLeft) {
		t.Error("released inside repeat hold")
	}
	if h.Frame(ms(420)).IsPressed(core.KeyLeft) {
		t.Error("held past repeat hold after last event")
	}
}

func TestHeldKeysSecondTapMakesEdge(t *testing.T) {
	h := NewHeldKeys(400*time.Millisecond, 120*time.Millisecond)
	h.Press(core.KeyO, false, ms(0))
	if !h.Frame(ms(16)).IsPressed(core.KeyO) {
		t.Fatal("first tap not held")
	}

	h.Press(core.KeyO, false, ms(200))
	if h.Frame(ms(208)).IsPressed(core.KeyO) {
		t.Error("second tap did not report a release frame")
	}
	if !h.Frame(ms(224)).IsPressed(core.KeyO) {
		t.Error("second tap not held")
	}
	if !h.Frame(ms(599)).IsPressed(core.KeyO) {
		t.Error("second tap hold too short")
	}
}

func TestHeldKeysShiftFollowsLatestEvent(t *testing.T) {
	h := NewHeldKeys(400*time.Millisecond, 120*time.Millisecond)
	h.Press(core.KeyA, true, ms(0))
	if ks := h.Frame(ms(10)); !ks.Modifiers().Shift {
		t.Error("shifted key should report shift")
	}

	h.Press(core.KeyB, false, ms(100))
	ks := h.Frame(ms(110))
	if !ks.IsPressed(core.KeyA) || !ks.IsPressed(core.KeyB) {
		t.Fatal("both keys should be held")
	}
	if ks.Modifiers().Shift {
		t.Error("unshifted latest key reported shift")
	}
}

func TestHeldKeysReleaseAndReset(t *testing.T) {
	h := NewHeldKeys(400*time.Millisecond, 120*time.Millisecond)
	h.Press(core.KeyA, false, ms(0))
	h.Press(core.KeyB, false, ms(0))

	h.Release(core.KeyA)
	ks := h.Frame(ms(10))
	if ks.IsPressed(core.KeyA) || !ks.IsPressed(core.KeyB) {
		t.Errorf("after release: a=%v b=%v", ks.IsPressed(core.KeyA), ks.IsPressed(core.KeyB))
	}

	h.Reset()
	if h.Frame(ms(20)).IsPressed(core.KeyB) {
		t.Error("key held after reset")
	}
}

func TestKeyMapperMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name  string
		msg   tea.KeyMsg
		key   core.Key
		shift bool
		ok    bool
	}{
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.KeyUp, false, true},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, core.KeyLeft, false, true},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, core.KeyRight, false, true},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.KeySpace, false, true},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.KeyEnter, false, true},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, core.KeyEscape, false, true},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, core.KeyBackspace, false, true},
		{"letter", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}}, core.KeyN, false, true},
		{"upper", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'N'}}, core.KeyN, true, true},
		{"digit", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'7'}}, core.Key7, false, true},
		{"underscore", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'_'}}, core.KeyMinus, true, true},
		{"unsupported rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'!'}}, 0, false, false},
		{"alt letter", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}, Alt: true}, 0, false, false},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, 0, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, shift, ok := km.MapKey(tt.msg)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && (k != tt.key || shift != tt.shift) {
				t.Errorf("MapKey() = %v/%v, want %v/%v", k, shift, tt.key, tt.shift)
			}
		})
	}
}

func TestKeyMapperMenuActions(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, MenuActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, MenuActionQuit},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}
