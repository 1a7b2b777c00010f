package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cashdodge/internal/core"
	"github.com/vovakirdan/cashdodge/internal/games/dodge"
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
		{"w", runeKey('w'), core.ActionUp, false},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"s", runeKey('s'), core.ActionDown, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"d", runeKey('d'), core.ActionRight, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			if action != tc.action {
				t.Errorf("action = %v, expected %v", action, tc.action)
			}
			if quit != tc.quit {
				t.Errorf("quit = %v, expected %v", quit, tc.quit)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg    tea.KeyMsg
		action MenuAction
	}{
		{runeKey('k'), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey('b'), MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}

	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(tc.msg); got != tc.action {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.msg.String(), got, tc.action)
		}
	}
}

func TestHeldKeysHoldWindow(t *testing.T) {
	h := NewHeldKeys(250*time.Millisecond, 60)
	h.Press(core.ActionUp, 10)

	for tick := uint64(10); tick < 25; tick++ {
		if !h.Held(core.ActionUp, tick) {
			t.Fatalf("up should be held at tick %d", tick)
		}
	}
	if h.Held(core.ActionUp, 25) {
		t.Error("up should be released after the hold window")
	}

	// Key repeat refreshes the window
	h.Press(core.ActionUp, 20)
	if !h.Held(core.ActionUp, 30) {
		t.Error("repeated press should extend the hold")
	}
}

func TestHeldKeysOppositeReleases(t *testing.T) {
	h := NewHeldKeys(DefaultHoldWindow, 60)
	h.Press(core.ActionLeft, 0)
	h.Press(core.ActionRight, 1)

	if h.Held(core.ActionLeft, 1) {
		t.Error("pressing right should release left")
	}
	if !h.Held(core.ActionRight, 1) {
		t.Error("right should be held")
	}
}

func TestHeldKeysSignal(t *testing.T) {
	h := NewHeldKeys(DefaultHoldWindow, 60)
	if got := h.Signal(0); got != dodge.DigitalSignal(false, false, false, false) {
		t.Errorf("idle signal = %+v", got)
	}

	h.Press(core.ActionUp, 0)
	h.Press(core.ActionLeft, 0)
	if got := h.Signal(1); got != dodge.DigitalSignal(true, false, true, false) {
		t.Errorf("signal = %+v, expected up-left", got)
	}

	h.Press(core.ActionPause, 0)
	h.Release()
	if got := h.Signal(1); got.X != 0 || got.Y != 0 {
		t.Errorf("released signal = %+v, expected neutral", got)
	}
}

func TestNewHeldKeysHoldsAtLeastOneTick(t *testing.T) {
	h := NewHeldKeys(0, 60)
	h.Press(core.ActionDown, 5)
	if !h.Held(core.ActionDown, 5) {
		t.Error("a press should be held for at least the tick it happened in")
	}
	if h.Held(core.ActionDown, 6) {
		t.Error("zero window should hold exactly one tick")
	}
}
