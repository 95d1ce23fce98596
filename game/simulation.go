package game

import (
	"time"

	"github.com/pthm-cable/drift/components"
)

// Update runs one frame of the windowed game: input, then the configured
// number of simulation steps.
func (g *Game) Update() {
	g.handleInput()

	if g.paused {
		return
	}
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.step()
	}
}

// UpdateHeadless runs simulation steps without any input or rendering.
func (g *Game) UpdateHeadless() {
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.step()
	}
}

// step advances simulation time by one tick: every entity receives the
// logic message, then telemetry samples the resulting movement state.
func (g *Game) step() {
	dt := g.tickMS * float64(g.timeScale)

	start := time.Now()
	g.world.Broadcast(components.MsgTick, components.Tick{DeltaT: dt})
	g.perf.Record("logic", time.Since(start))

	g.tick++

	start = time.Now()
	g.sampleTelemetry()
	g.perf.Record("telemetry", time.Since(start))
}

// sampleTelemetry records this tick's movement sample and flushes the
// stats window when due.
func (g *Game) sampleTelemetry() {
	moving := 0
	for _, ref := range g.movers {
		if ref.mover.State().Moving {
			moving++
		}
	}
	g.collector.RecordTick(moving, len(g.movers))

	if !g.collector.ShouldFlush(g.tick) {
		return
	}

	stats := g.collector.Flush(g.tick)
	if g.logStats {
		stats.Log()
		logPerfStats(g.perf)
	}
	if err := g.output.WriteStats(stats); err != nil {
		Logf("writing stats: %v", err)
	}
	if err := g.output.WriteTransitions(g.collector.DrainTransitions()); err != nil {
		Logf("writing transitions: %v", err)
	}
}
