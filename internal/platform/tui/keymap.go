package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// DefaultHoldWindow is how long a key counts as held after its last press or
// auto-repeat event.
const DefaultHoldWindow = 150 * time.Millisecond

// KeyMapper translates Bubble Tea key messages to game keys.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game key.
// ok is false for keys the game does not use; isQuit reports a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (k core.Key, ok bool, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return 0, false, true
	case "a", "left":
		return core.KeyLeft, true, false
	case "d", "right":
		return core.KeyRight, true, false
	case " ":
		return core.KeyLaunch, true, false
	case "w", "up", "k":
		return core.KeyUp, true, false
	case "s", "down", "j":
		return core.KeyDown, true, false
	case "enter":
		return core.KeyEnter, true, false
	}
	return 0, false, false
}

// HeldKeys rebuilds a held-key table from press events.
// Terminals report presses and auto-repeats but never releases, so a key
// stays held for a short window after each event.
type HeldKeys struct {
	window time.Duration
	until  [core.KeyCount]time.Time
}

// NewHeldKeys creates a tracker; a non-positive window uses DefaultHoldWindow.
func NewHeldKeys(window time.Duration) *HeldKeys {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HeldKeys{window: window}
}

// Press records a press (or repeat) of k at now.
// Pressing one horizontal direction releases the other.
func (h *HeldKeys) Press(k core.Key, now time.Time) {
	if k < 0 || k >= core.KeyCount {
		return
	}
	switch k {
	case core.KeyLeft:
		h.Release(core.KeyRight)
	case core.KeyRight:
		h.Release(core.KeyLeft)
	}
	h.until[k] = now.Add(h.window)
}

// Release drops k immediately.
func (h *HeldKeys) Release(k core.Key) {
	if k < 0 || k >= core.KeyCount {
		return
	}
	h.until[k] = time.Time{}
}

// State returns the keys held at now.
func (h *HeldKeys) State(now time.Time) core.KeyState {
	var s core.KeyState
	for k := range core.KeyCount {
		s.Set(k, now.Before(h.until[k]))
	}
	return s
}
