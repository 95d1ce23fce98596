package game

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Visual constants
const (
	entityRadius  = 10.0
	headingLength = 18.0
	gridSpacing   = 60
	labelFontSize = 12
	hudFontSize   = 18
)

// Draw renders one frame.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(18, 22, 28, 255))

	g.drawGrid()
	g.drawEntities()
	g.drawHUD()
	g.drawDebugPanel()

	rl.EndDrawing()
}

// drawGrid draws a faint reference grid.
func (g *Game) drawGrid() {
	line := rl.NewColor(32, 38, 46, 255)
	for x := int32(0); x < int32(g.screenWidth); x += gridSpacing {
		rl.DrawLine(x, 0, x, int32(g.screenHeight), line)
	}
	for y := int32(0); y < int32(g.screenHeight); y += gridSpacing {
		rl.DrawLine(0, y, int32(g.screenWidth), y, line)
	}
}

// drawEntities draws every entity as a circle with a heading tick.
// Positions are unbounded in world space; drawing wraps them into the
// screen so runaway drones stay visible. The wrap is display-only.
func (g *Game) drawEntities() {
	for _, ref := range g.movers {
		pos := ref.entity.Position()
		x := float32(wrap(pos.X, float64(g.screenWidth)))
		y := float32(wrap(pos.Y, float64(g.screenHeight)))

		state := ref.mover.State()
		fill := rl.NewColor(90, 96, 104, 255)
		if state.Moving {
			fill = rl.NewColor(86, 196, 120, 255)
		}

		rl.DrawCircleV(rl.NewVector2(x, y), entityRadius, fill)
		rl.DrawCircleLinesV(rl.NewVector2(x, y), entityRadius, rl.NewColor(200, 208, 216, 255))

		// Heading tick from the derived cardinals
		hx, hy := headingVector(state.Left, state.Right, state.Up, state.Down)
		if hx != 0 || hy != 0 {
			rl.DrawLineEx(
				rl.NewVector2(x, y),
				rl.NewVector2(x+hx*headingLength, y+hy*headingLength),
				2, rl.NewColor(240, 200, 90, 255),
			)
		}

		rl.DrawText(ref.entity.Name(), int32(x)-20, int32(y)+int32(entityRadius)+4, labelFontSize, rl.Gray)
	}
}

// drawHUD draws the status line.
func (g *Game) drawHUD() {
	status := fmt.Sprintf("tick %d | entities %d | steps/update %d", g.tick, g.world.Count(), g.stepsPerUpdate)
	if g.paused {
		status += " | PAUSED"
	}
	rl.DrawText(status, 10, 10, hudFontSize, rl.RayWhite)
	rl.DrawText("WASD/arrows move · QEZC diagonals · space stop · P pause · tab debug", 10, int32(g.screenHeight)-24, 14, rl.Gray)
}

// headingVector converts derived cardinals into a unit display vector.
func headingVector(left, right, up, down bool) (float32, float32) {
	var hx, hy float32
	if left {
		hx--
	}
	if right {
		hx++
	}
	if up {
		hy--
	}
	if down {
		hy++
	}
	if hx != 0 && hy != 0 {
		inv := float32(1 / math.Sqrt2)
		hx *= inv
		hy *= inv
	}
	return hx, hy
}

// wrap maps v into [0, size) preserving direction of travel.
func wrap(v, size float64) float64 {
	if size <= 0 {
		return v
	}
	w := math.Mod(v, size)
	if w < 0 {
		w += size
	}
	return w
}
