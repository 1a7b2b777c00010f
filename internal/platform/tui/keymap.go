package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cashdodge/internal/core"
	"github.com/vovakirdan/cashdodge/internal/games/dodge"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "w", "up", "k":
		return core.ActionUp, false
	case "s", "down", "j":
		return core.ActionDown, false
	case "a", "left", "h":
		return core.ActionLeft, false
	case "d", "right", "l":
		return core.ActionRight, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p", " ":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}

// DefaultHoldWindow is how long a single key press keeps its direction held.
// Terminals only report presses, so a direction stays active until the
// window runs out or key repeat refreshes it.
const DefaultHoldWindow = 250 * time.Millisecond

// HeldKeys turns discrete key presses into a held four-direction state.
// Time is measured in ticks so the tracker is deterministic under test.
type HeldKeys struct {
	until [4]uint64 // Tick until which up, down, left, right stay held
	hold  uint64
}

// NewHeldKeys creates a tracker that holds each press for window at tickRate.
func NewHeldKeys(window time.Duration, tickRate int) HeldKeys {
	if tickRate <= 0 {
		tickRate = 60
	}
	ticks := uint64((window*time.Duration(tickRate) + time.Second - 1) / time.Second)
	if ticks == 0 {
		ticks = 1
	}
	return HeldKeys{hold: ticks}
}

// Press holds a direction starting at tick. The opposite direction is released.
func (h *HeldKeys) Press(a core.Action, tick uint64) {
	i, ok := directionIndex(a)
	if !ok {
		return
	}
	h.until[i] = tick + h.hold
	h.until[i^1] = 0
}

// Held reports whether a direction is still held at tick.
func (h *HeldKeys) Held(a core.Action, tick uint64) bool {
	i, ok := directionIndex(a)
	if !ok {
		return false
	}
	return tick < h.until[i]
}

// Signal returns the digital control signal for tick.
func (h *HeldKeys) Signal(tick uint64) dodge.ControlSignal {
	return dodge.DigitalSignal(
		h.Held(core.ActionUp, tick),
		h.Held(core.ActionDown, tick),
		h.Held(core.ActionLeft, tick),
		h.Held(core.ActionRight, tick),
	)
}

// Release drops every held direction.
func (h *HeldKeys) Release() {
	h.until = [4]uint64{}
}

// directionIndex maps a direction to its slot. Opposites differ in the low bit.
func directionIndex(a core.Action) (int, bool) {
	switch a {
	case core.ActionUp:
		return 0, true
	case core.ActionDown:
		return 1, true
	case core.ActionLeft:
		return 2, true
	case core.ActionRight:
		return 3, true
	}
	return 0, false
}
