package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/drift/components"
)

// keyBinding maps a key to a directional message name.
type keyBinding struct {
	key int32
	msg string
}

// Cardinal keys publish press/release edges so holding a key holds the
// flag. The diagonal keys use the compass aliases to exercise the same
// dispatch surface a controller would.
var keyBindings = []keyBinding{
	{rl.KeyW, "go-up"},
	{rl.KeyUp, "go-north"},
	{rl.KeyS, "go-down"},
	{rl.KeyDown, "go-south"},
	{rl.KeyA, "go-left"},
	{rl.KeyLeft, "go-west"},
	{rl.KeyD, "go-right"},
	{rl.KeyRight, "go-east"},
	{rl.KeyQ, "go-northwest"},
	{rl.KeyE, "go-northeast"},
	{rl.KeyZ, "go-southwest"},
	{rl.KeyC, "go-southeast"},
}

// handleInput processes keyboard input.
func (g *Game) handleInput() {
	// Fullscreen toggle
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeyP) {
		g.paused = !g.paused
	}

	// Steps-per-update control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) && g.stepsPerUpdate > 1 {
		g.stepsPerUpdate--
	}
	if rl.IsKeyPressed(rl.KeyPeriod) && g.stepsPerUpdate < 10 {
		g.stepsPerUpdate++
	}

	// Debug panel toggle
	if rl.IsKeyPressed(rl.KeyTab) {
		g.showDebugPanel = !g.showDebugPanel
	}

	g.handleMovementInput()
}

// handleMovementInput translates key edges into directional messages on
// the player entity. Space publishes stop with no payload.
func (g *Game) handleMovementInput() {
	if g.player == nil {
		return
	}

	for _, b := range keyBindings {
		if rl.IsKeyPressed(b.key) {
			g.player.Publish(b.msg, components.Pressed(true))
		}
		if rl.IsKeyReleased(b.key) {
			g.player.Publish(b.msg, components.Pressed(false))
		}
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		g.player.Publish(components.MsgStop, nil)
	}
}
