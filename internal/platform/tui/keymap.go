package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/goalsat7/space-game/internal/core"
)

// holdTicks is how many simulation ticks a movement or fire key stays
// asserted after its last key event. Terminals report key-down events only
// (refreshed by autorepeat), never key-up, so "held" is approximated by a
// short decay window that autorepeat keeps topping up.
const holdTicks = 9

// KeyMapper translates Bubble Tea key messages into per-tick input intents,
// including the edge/level split the simulation expects: jump, pause and
// confirm are edge-triggered per key event, movement and shooting are
// level-triggered through hold counters.
type KeyMapper struct {
	leftHold  int
	rightHold int
	shootHold int

	pending core.Intent
}

// NewKeyMapper creates a key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// HandleKey records a key event. Returns true for a quit request.
func (km *KeyMapper) HandleKey(msg tea.KeyMsg) (isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return true

	case "left", "a":
		km.leftHold = holdTicks
	case "right", "d":
		km.rightHold = holdTicks
	case "up", "w", " ":
		km.pending.JumpPressed = true
	case "j":
		km.shootHold = holdTicks
	case "p", "esc":
		km.pending.PausePressed = true
	case "enter":
		km.pending.ConfirmPressed = true
	}
	return false
}

// NextIntent assembles the intent for the upcoming tick and decays the hold
// windows. Edge flags are consumed: they fire on exactly one tick per key
// event.
func (km *KeyMapper) NextIntent() core.Intent {
	in := km.pending
	km.pending = core.Intent{}

	in.MoveLeft = km.leftHold > 0
	in.MoveRight = km.rightHold > 0
	in.ShootHeld = km.shootHold > 0

	if km.leftHold > 0 {
		km.leftHold--
	}
	if km.rightHold > 0 {
		km.rightHold--
	}
	if km.shootHold > 0 {
		km.shootHold--
	}
	return in
}

// Reset drops all pending input, e.g. when the game restarts.
func (km *KeyMapper) Reset() {
	*km = KeyMapper{}
}
