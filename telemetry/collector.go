// Package telemetry records movement activity and aggregates it into
// windowed statistics for CSV output.
package telemetry

import "github.com/pthm-cable/drift/components"

// Transition is one logical-state change, as emitted by a movement
// component at tick end.
type Transition struct {
	Tick   int64   `csv:"tick"`
	SimMS  float64 `csv:"sim_ms"`
	Entity string  `csv:"entity"`
	Moving bool    `csv:"moving"`
	Up     bool    `csv:"up"`
	Down   bool    `csv:"down"`
	Left   bool    `csv:"left"`
	Right  bool    `csv:"right"`
}

// Collector accumulates per-tick movement samples and state transitions
// within a window of fixed tick length.
type Collector struct {
	windowTicks int64
	tickMS      float64

	windowStartTick int64

	// Current window accumulation
	movingFractions []float64
	transitions     int

	// Pending transition records, drained by the output layer.
	pending []Transition
}

// NewCollector creates a collector. windowTicks is the stats window
// length in ticks; tickMS converts ticks to simulation milliseconds.
func NewCollector(windowTicks int, tickMS float64) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{
		windowTicks: int64(windowTicks),
		tickMS:      tickMS,
	}
}

// RecordTransition records one logical-state change.
func (c *Collector) RecordTransition(tick int64, entityName string, s components.State) {
	c.transitions++
	c.pending = append(c.pending, Transition{
		Tick:   tick,
		SimMS:  float64(tick) * c.tickMS,
		Entity: entityName,
		Moving: s.Moving,
		Up:     s.Up,
		Down:   s.Down,
		Left:   s.Left,
		Right:  s.Right,
	})
}

// RecordTick records one tick's movement sample: how many of the
// tracked entities were moving out of how many total.
func (c *Collector) RecordTick(moving, total int) {
	frac := 0.0
	if total > 0 {
		frac = float64(moving) / float64(total)
	}
	c.movingFractions = append(c.movingFractions, frac)
}

// DrainTransitions returns and clears the pending transition records.
func (c *Collector) DrainTransitions() []Transition {
	out := c.pending
	c.pending = nil
	return out
}

// ShouldFlush returns true once the current window is complete.
func (c *Collector) ShouldFlush(currentTick int64) bool {
	return currentTick-c.windowStartTick >= c.windowTicks
}

// Flush produces the stats for the completed window and starts the next.
func (c *Collector) Flush(currentTick int64) WindowStats {
	stats := newWindowStats(c.windowStartTick, currentTick, c.tickMS, c.movingFractions, c.transitions)
	c.windowStartTick = currentTick
	c.movingFractions = c.movingFractions[:0]
	c.transitions = 0
	return stats
}
