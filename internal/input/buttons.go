// Package input turns physical button samples into per-tick game intents.
// Buttons are wired active-low (pull-up, pressed = logic 0), matching the
// GPIO wiring of the matrix controller.
package input

import "github.com/ledgrid/ledarcade/internal/core"

// Button identifies a logical button on the controller. The set is fixed
// at configuration time: four paddle buttons for the paddle game, or
// left/right/fire for the shooter, plus a slideshow advance button.
type Button int

const (
	BtnP1Up Button = iota
	BtnP1Down
	BtnP2Up
	BtnP2Down
	BtnLeft
	BtnRight
	BtnFire
	BtnNext
)

// String returns the button's name.
func (b Button) String() string {
	switch b {
	case BtnP1Up:
		return "P1Up"
	case BtnP1Down:
		return "P1Down"
	case BtnP2Up:
		return "P2Up"
	case BtnP2Down:
		return "P2Down"
	case BtnLeft:
		return "Left"
	case BtnRight:
		return "Right"
	case BtnFire:
		return "Fire"
	case BtnNext:
		return "Next"
	default:
		return "Unknown"
	}
}

// Source exposes an instantaneous electrical sample per button.
// Read returns the logic level: true = high (released), false = low
// (pressed). Implementations wrap real GPIO lines or, in the simulator,
// keyboard state.
type Source interface {
	Read(b Button) bool
}

// Binding maps a button to the action it emits and the debounce interval
// that gates repeated emission while the button is held.
type Binding struct {
	Button     Button
	Action     core.Action
	DebounceMS int64
}

// Movement buttons repeat once per tick while held; the slideshow advance
// button gets a longer interval so one press skips exactly one sprite.
const (
	holdDebounceMS = 50
	nextDebounceMS = 300
)

// PongBindings returns the button layout for the paddle game.
func PongBindings() []Binding {
	return []Binding{
		{BtnP1Up, core.ActionP1Up, holdDebounceMS},
		{BtnP1Down, core.ActionP1Down, holdDebounceMS},
		{BtnP2Up, core.ActionP2Up, holdDebounceMS},
		{BtnP2Down, core.ActionP2Down, holdDebounceMS},
	}
}

// InvadersBindings returns the button layout for the formation shooter.
func InvadersBindings() []Binding {
	return []Binding{
		{BtnLeft, core.ActionLeft, holdDebounceMS},
		{BtnRight, core.ActionRight, holdDebounceMS},
		{BtnFire, core.ActionFire, holdDebounceMS},
	}
}

// SlideshowBindings returns the button layout for the pixel-art slideshow.
func SlideshowBindings() []Binding {
	return []Binding{
		{BtnNext, core.ActionNext, nextDebounceMS},
	}
}
