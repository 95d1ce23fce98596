package game

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/drift/components"
	"github.com/pthm-cable/drift/config"
)

func TestStep_AdvancesTickAndMovesEntities(t *testing.T) {
	g := newHeadlessGame(t, Options{})

	drone := g.world.Find("drone-east")
	startX := drone.Position().X

	for i := 0; i < 10; i++ {
		g.UpdateHeadless()
	}

	if g.Tick() != 10 {
		t.Errorf("expected tick 10, got %d", g.Tick())
	}

	// drone-east: speed 0.12 units/ms, 16.667 ms/tick, 10 ticks.
	wantDX := 0.12 * config.Cfg().Simulation.TickMS * 10
	gotDX := drone.Position().X - startX
	if diff := gotDX - wantDX; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("expected dx %v, got %v", wantDX, gotDX)
	}
}

func TestStep_StepsPerUpdate(t *testing.T) {
	g := newHeadlessGame(t, Options{StepsPerUpdate: 4})

	g.UpdateHeadless()

	if g.Tick() != 4 {
		t.Errorf("expected 4 ticks per update, got %d", g.Tick())
	}
}

func TestStep_PlayerRespondsToMessages(t *testing.T) {
	g := newHeadlessGame(t, Options{})
	player := g.Player()
	startY := player.Position().Y

	player.Publish("go-up", components.Pressed(true))
	g.UpdateHeadless()

	if player.Position().Y >= startY {
		t.Error("player should move up after go-up")
	}

	player.Publish(components.MsgStop, nil)
	y := 0.0
	g.UpdateHeadless()
	y = player.Position().Y
	g.UpdateHeadless()

	if player.Position().Y != y {
		t.Error("player must hold position after stop")
	}
}

func TestTelemetry_CSVOutputWritten(t *testing.T) {
	dir := t.TempDir()
	g := newHeadlessGame(t, Options{OutputDir: dir})

	// Run past one stats window so a flush happens.
	window := config.Cfg().Telemetry.StatsWindowTicks
	for i := 0; i < window+1; i++ {
		g.UpdateHeadless()
	}
	g.Unload()

	stats, err := os.ReadFile(filepath.Join(dir, "stats.csv"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(stats), "window_end") {
		t.Error("stats.csv missing header")
	}
	if len(strings.Split(strings.TrimSpace(string(stats)), "\n")) < 2 {
		t.Error("stats.csv missing data rows")
	}

	transitions, err := os.ReadFile(filepath.Join(dir, "transitions.csv"))
	if err != nil {
		t.Fatal(err)
	}
	// The demo drones start moving on tick 1, so transitions exist.
	if !strings.Contains(string(transitions), "drone-east") {
		t.Error("transitions.csv missing drone transition")
	}

	if _, err := os.Stat(filepath.Join(dir, "config.yaml")); err != nil {
		t.Error("config snapshot not written")
	}
}
