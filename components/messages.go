// Package components contains the behavior components and the message
// payloads they exchange over an entity's bus.
package components

// Message names consumed and emitted by movement components.
const (
	// MsgTick drives one simulation step; payload is a Tick.
	MsgTick = "handle-logic"

	// MsgStop clears all directional intent; payload is an optional Input.
	MsgStop = "stop"

	// MsgState is emitted when the derived movement state changes;
	// payload is a State.
	MsgState = "logical-state"

	// MsgMoving and MsgStopped are emitted (without payload) on the
	// corresponding edge of the moving flag, after MsgState.
	MsgMoving  = "moving"
	MsgStopped = "stopped"
)

// Input is the payload of directional and stop messages. A nil Pressed
// means the sender gave no press/release information; handlers treat
// that as a press.
type Input struct {
	Pressed *bool
}

// Pressed returns an Input with an explicit pressed value.
func Pressed(v bool) Input {
	return Input{Pressed: &v}
}

// Tick is the payload of MsgTick. DeltaT is the elapsed time for the
// tick, in the same unit as movement speed denominators (milliseconds).
type Tick struct {
	DeltaT float64
}

// State is the movement snapshot broadcast with MsgState. The four
// direction fields are derived cardinals: true when the direction is
// active directly or as a component of an active diagonal.
type State struct {
	Moving bool
	Up     bool
	Down   bool
	Left   bool
	Right  bool
}
