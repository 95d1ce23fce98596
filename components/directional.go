package components

import (
	"fmt"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/drift/config"
	"github.com/pthm-cable/drift/entity"
)

// DirectionalMovementName is the registry name of the component.
const DirectionalMovementName = "directional-movement"

// DefaultSpeed is the built-in movement speed fallback, in world units
// per millisecond. It matches the embedded movement.default_speed; the
// registry factory consults the live configuration instead.
const DefaultSpeed = 0.3

// Direction identifies one of the eight intent flags.
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
	DirUpLeft
	DirUpRight
	DirDownLeft
	DirDownRight

	numDirections
)

// String returns the canonical message suffix for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUpLeft:
		return "up-left"
	case DirUpRight:
		return "up-right"
	case DirDownLeft:
		return "down-left"
	case DirDownRight:
		return "down-right"
	default:
		return "unknown"
	}
}

// directionMessages maps every directional message name to its intent
// flag. Each direction has a relative alias and a compass alias; both
// resolve to the same flag through one parameterized handler, so the
// table is the single place the message surface is defined.
var directionMessages = map[string]Direction{
	"go-up":    DirUp,
	"go-north": DirUp,

	"go-down":  DirDown,
	"go-south": DirDown,

	"go-left": DirLeft,
	"go-west": DirLeft,

	"go-right": DirRight,
	"go-east":  DirRight,

	"go-up-left":   DirUpLeft,
	"go-northwest": DirUpLeft,

	"go-up-right":  DirUpRight,
	"go-northeast": DirUpRight,

	"go-down-left": DirDownLeft,
	"go-southwest": DirDownLeft,

	"go-down-right": DirDownRight,
	"go-southeast":  DirDownRight,
}

// DirectionalMovement converts directional intent messages into position
// change per tick and broadcasts a compact movement state when it changes.
//
// The eight intent flags are independent: conflicting flags (up and down
// both held) are legal at write time and resolved by the motion resolver,
// where opposing cardinals cancel all movement for the tick.
type DirectionalMovement struct {
	speed float64

	flags [numDirections]bool
	state State

	owner *entity.Entity
	subs  []entity.Subscription
}

// NewDirectionalMovement creates the component with the given speed in
// units per millisecond. Non-positive speeds fall back to DefaultSpeed.
func NewDirectionalMovement(speed float64) *DirectionalMovement {
	if speed <= 0 {
		speed = DefaultSpeed
	}
	return &DirectionalMovement{speed: speed}
}

// NewDirectionalMovementComponent is the registry factory for the
// component. Definitions that give no speed use the configured
// movement.default_speed.
func NewDirectionalMovementComponent(opts *yaml.Node) (entity.Component, error) {
	def := struct {
		Speed *float64 `yaml:"speed"`
	}{}
	if opts != nil {
		if err := opts.Decode(&def); err != nil {
			return nil, fmt.Errorf("decoding options: %w", err)
		}
	}
	speed := config.Cfg().Movement.DefaultSpeed
	if def.Speed != nil {
		if *def.Speed <= 0 {
			return nil, fmt.Errorf("speed must be positive, got %v", *def.Speed)
		}
		speed = *def.Speed
	}
	return NewDirectionalMovement(speed), nil
}

// Attach subscribes the component to its message surface on e.
func (d *DirectionalMovement) Attach(e *entity.Entity) {
	d.owner = e
	for name, dir := range directionMessages {
		d.subs = append(d.subs, e.Subscribe(name, func(data any) {
			d.handleDirection(dir, data)
		}))
	}
	d.subs = append(d.subs, e.Subscribe(MsgStop, d.handleStop))
	d.subs = append(d.subs, e.Subscribe(MsgTick, d.handleTick))
}

// Detach drops every subscription made in Attach.
func (d *DirectionalMovement) Detach() {
	for _, sub := range d.subs {
		d.owner.Unsubscribe(sub)
	}
	d.subs = nil
	d.owner = nil
}

// Speed returns the configured speed in units per millisecond.
func (d *DirectionalMovement) Speed() float64 {
	return d.speed
}

// State returns the last broadcast movement state.
func (d *DirectionalMovement) State() State {
	return d.state
}

// Flag reports whether the raw intent flag for dir is currently held.
func (d *DirectionalMovement) Flag(dir Direction) bool {
	if dir >= numDirections {
		return false
	}
	return d.flags[dir]
}

// handleDirection updates one intent flag. An explicit pressed value is
// honored; a missing payload or pressed field counts as a press, so
// fire-and-forget "go" commands stay set until an explicit stop.
func (d *DirectionalMovement) handleDirection(dir Direction, data any) {
	if in, ok := data.(Input); ok && in.Pressed != nil {
		d.flags[dir] = *in.Pressed
		return
	}
	d.flags[dir] = true
}

// handleStop clears all intent flags, unless the payload carries an
// explicit pressed=false. That exception keeps a stop bound to some
// key's release event from halting motion on the key-down edge.
func (d *DirectionalMovement) handleStop(data any) {
	if in, ok := data.(Input); ok && in.Pressed != nil && !*in.Pressed {
		return
	}
	d.flags = [numDirections]bool{}
}

// handleTick runs the motion resolver once: combines the intent flags
// into a velocity, applies it to the owner's position, and broadcasts
// the derived state if it changed since the previous tick.
func (d *DirectionalMovement) handleTick(data any) {
	tick, ok := data.(Tick)
	dt := tick.DeltaT
	if !ok || math.IsNaN(dt) || math.IsInf(dt, 0) {
		// Malformed tick: resolve state normally but do not move.
		dt = 0
	}

	up := d.flags[DirUp]
	down := d.flags[DirDown]
	left := d.flags[DirLeft]
	right := d.flags[DirRight]

	// A diagonal is active when its own flag is held or both adjacent
	// cardinals are.
	upLeft := d.flags[DirUpLeft] || (up && left)
	upRight := d.flags[DirUpRight] || (up && right)
	downLeft := d.flags[DirDownLeft] || (down && left)
	downRight := d.flags[DirDownRight] || (down && right)

	// Strict priority: opposing raw cardinals cancel everything, then
	// diagonals, then single cardinals.
	var vx, vy float64
	moving := true
	diag := d.speed / math.Sqrt2
	switch {
	case up && down:
		moving = false
	case left && right:
		moving = false
	case upLeft:
		vx, vy = -diag, -diag
	case upRight:
		vx, vy = diag, -diag
	case downLeft:
		vx, vy = -diag, diag
	case downRight:
		vx, vy = diag, diag
	case left:
		vx = -d.speed
	case right:
		vx = d.speed
	case up:
		vy = -d.speed
	case down:
		vy = d.speed
	default:
		moving = false
	}

	pos := d.owner.Position()
	pos.X += vx * dt
	pos.Y += vy * dt

	next := State{
		Moving: moving,
		Up:     up || upLeft || upRight,
		Down:   down || downLeft || downRight,
		Left:   left || upLeft || downLeft,
		Right:  right || upRight || downRight,
	}
	if next == d.state {
		return
	}
	wasMoving := d.state.Moving
	d.state = next
	d.owner.Publish(MsgState, next)
	if next.Moving != wasMoving {
		if next.Moving {
			d.owner.Publish(MsgMoving, nil)
		} else {
			d.owner.Publish(MsgStopped, nil)
		}
	}
}
