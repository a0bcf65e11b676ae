package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ledgrid/ledarcade/internal/core"
	"github.com/ledgrid/ledarcade/internal/input"
)

// Terminals deliver key events, not key state, so a press holds the
// emulated line low for this window. Long enough to register on the
// next tick, short enough that a single tap is a single press at the
// hardware debounce interval.
const keyHoldMS = 120

// Keyboard adapts Bubble Tea key events to the button Source contract:
// an instantaneous active-low sample per button.
type Keyboard struct {
	clock core.Clock
	until map[input.Button]int64
}

// NewKeyboard creates a keyboard source over the given clock.
func NewKeyboard(clock core.Clock) *Keyboard {
	return &Keyboard{
		clock: clock,
		until: make(map[input.Button]int64),
	}
}

// Press records a key event, holding the mapped button low. Returns
// false for keys with no button mapping.
func (k *Keyboard) Press(msg tea.KeyMsg) bool {
	b, ok := mapKey(msg.String())
	if !ok {
		return false
	}
	k.until[b] = k.clock.NowMS() + keyHoldMS
	return true
}

// Read returns the emulated logic level: false (low) while the hold
// window of the last press is open, true (high) otherwise.
func (k *Keyboard) Read(b input.Button) bool {
	return k.clock.NowMS() >= k.until[b]
}

func mapKey(key string) (input.Button, bool) {
	switch key {
	case "w":
		return input.BtnP1Up, true
	case "s":
		return input.BtnP1Down, true
	case "up":
		return input.BtnP2Up, true
	case "down":
		return input.BtnP2Down, true
	case "a", "left":
		return input.BtnLeft, true
	case "d", "right":
		return input.BtnRight, true
	case " ", "f":
		return input.BtnFire, true
	case "n", "enter":
		return input.BtnNext, true
	}
	return 0, false
}
