package game

import (
	"fmt"
	"time"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/drift/components"
)

// Debug panel layout
const (
	panelWidth  = 260
	panelMargin = 10
	rowHeight   = 20
)

// drawDebugPanel draws the raygui debug overlay: pause control, time
// scale, per-entity intent flags, and perf timings.
func (g *Game) drawDebugPanel() {
	if !g.showDebugPanel {
		return
	}

	x := g.screenWidth - panelWidth - panelMargin
	y := float32(panelMargin)

	height := float32(120 + len(g.movers)*3*rowHeight)
	gui.Panel(rl.Rectangle{X: x, Y: y, Width: panelWidth, Height: height}, "debug")
	x += 10
	y += 30

	label := "Pause"
	if g.paused {
		label = "Resume"
	}
	if gui.Button(rl.Rectangle{X: x, Y: y, Width: 100, Height: 24}, label) {
		g.paused = !g.paused
	}
	y += 32

	// Time scale multiplies deltaT fed to the logic message; the
	// components themselves never see wall time.
	g.timeScale = gui.SliderBar(
		rl.Rectangle{X: x + 60, Y: y, Width: panelWidth - 140, Height: 16},
		"dt x0", "x4",
		g.timeScale, 0, 4,
	)
	rl.DrawText(fmt.Sprintf("%.2f", g.timeScale), int32(x+panelWidth-70), int32(y), 14, rl.Gray)
	y += 28

	for _, ref := range g.movers {
		state := ref.mover.State()
		rl.DrawText(fmt.Sprintf("%s  speed=%.2f  moving=%t", ref.entity.Name(), ref.mover.Speed(), state.Moving),
			int32(x), int32(y), 13, rl.RayWhite)
		y += rowHeight
		rl.DrawText("  flags: "+flagLine(ref.mover), int32(x), int32(y), 13, rl.Gray)
		y += rowHeight
		rl.DrawText(fmt.Sprintf("  state: up=%t down=%t left=%t right=%t", state.Up, state.Down, state.Left, state.Right),
			int32(x), int32(y), 13, rl.Gray)
		y += rowHeight
	}

	rl.DrawText(fmt.Sprintf("logic %s  telemetry %s",
		g.perf.Avg("logic").Round(time.Microsecond),
		g.perf.Avg("telemetry").Round(time.Microsecond)),
		int32(x), int32(y), 13, rl.DarkGray)
}

// flagLine renders the raw intent flags as a compact string.
func flagLine(m *components.DirectionalMovement) string {
	line := ""
	for dir := components.DirUp; dir <= components.DirDownRight; dir++ {
		if m.Flag(dir) {
			if line != "" {
				line += " "
			}
			line += dir.String()
		}
	}
	if line == "" {
		return "(none)"
	}
	return line
}
