package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/guacamole-runner/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"w", runeKey('w'), core.ActionUp, false},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{"s", runeKey('s'), core.ActionDown, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"pause", runeKey('p'), core.ActionPause, false},
		{"restart", runeKey('r'), core.ActionRestart, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('x'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = (%v, %v), expected (%v, %v)", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestIsSteering(t *testing.T) {
	for _, a := range []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight} {
		if !IsSteering(a) {
			t.Errorf("%v should steer", a)
		}
	}
	for _, a := range []core.Action{core.ActionNone, core.ActionPause, core.ActionRestart, core.ActionQuit} {
		if IsSteering(a) {
			t.Errorf("%v should not steer", a)
		}
	}
}

func TestHeldKeysWindow(t *testing.T) {
	h := NewHeldKeys(3)
	h.Press(core.ActionRight)

	for tick := 0; tick < 5; tick++ {
		f := core.NewInputFrame()
		h.Apply(&f)
		if got, want := f.Has(core.ActionRight), tick < 3; got != want {
			t.Errorf("tick %d: held = %v, expected %v", tick, got, want)
		}
	}
}

func TestHeldKeysRepressExtends(t *testing.T) {
	h := NewHeldKeys(2)
	h.Press(core.ActionUp)

	f := core.NewInputFrame()
	h.Apply(&f)
	h.Press(core.ActionUp) // Auto-repeat

	for tick := 0; tick < 2; tick++ {
		f := core.NewInputFrame()
		h.Apply(&f)
		if !f.Has(core.ActionUp) {
			t.Errorf("tick %d: repeat should keep the key held", tick)
		}
	}
}

func TestHeldKeysOppositeReleases(t *testing.T) {
	h := NewHeldKeys(10)
	h.Press(core.ActionUp)
	h.Press(core.ActionLeft)
	h.Press(core.ActionDown)

	f := core.NewInputFrame()
	h.Apply(&f)
	if f.Has(core.ActionUp) {
		t.Error("pressing down should release up")
	}
	if !f.Has(core.ActionDown) || !f.Has(core.ActionLeft) {
		t.Errorf("expected down and left held, got %v", f.Actions)
	}

	h.Release()
	f = core.NewInputFrame()
	h.Apply(&f)
	if len(f.Actions) != 0 {
		t.Errorf("Release() left %v held", f.Actions)
	}
}
