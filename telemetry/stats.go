package telemetry

import (
	"log/slog"
	"math"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated movement statistics for one window.
type WindowStats struct {
	WindowStartTick int64   `csv:"-"`
	WindowEndTick   int64   `csv:"window_end"`
	SimTimeMS       float64 `csv:"sim_ms"`

	// Per-tick moving fraction over the window
	MovingFracMean float64 `csv:"moving_frac_mean"`
	MovingFracStd  float64 `csv:"moving_frac_std"`
	MovingFracMin  float64 `csv:"moving_frac_min"`
	MovingFracMax  float64 `csv:"moving_frac_max"`

	// State changes during the window
	Transitions     int     `csv:"transitions"`
	TransitionsPerK float64 `csv:"transitions_per_1k_ticks"`
}

// newWindowStats aggregates one window's samples.
func newWindowStats(startTick, endTick int64, tickMS float64, movingFractions []float64, transitions int) WindowStats {
	ws := WindowStats{
		WindowStartTick: startTick,
		WindowEndTick:   endTick,
		SimTimeMS:       float64(endTick) * tickMS,
		Transitions:     transitions,
	}

	if n := len(movingFractions); n > 0 {
		ws.MovingFracMean = stat.Mean(movingFractions, nil)
		if n > 1 {
			ws.MovingFracStd = stat.StdDev(movingFractions, nil)
		}
		minF, maxF := movingFractions[0], movingFractions[0]
		for _, f := range movingFractions[1:] {
			minF = math.Min(minF, f)
			maxF = math.Max(maxF, f)
		}
		ws.MovingFracMin = minF
		ws.MovingFracMax = maxF
	}

	if ticks := endTick - startTick; ticks > 0 {
		ws.TransitionsPerK = float64(transitions) / float64(ticks) * 1000
	}
	return ws
}

// Log emits the window stats via slog for headless runs.
func (ws WindowStats) Log() {
	slog.Info("movement window",
		"window_end", ws.WindowEndTick,
		"sim_ms", ws.SimTimeMS,
		"moving_frac_mean", ws.MovingFracMean,
		"moving_frac_std", ws.MovingFracStd,
		"transitions", ws.Transitions,
	)
}
