// Package game wires the entity world, scene loading, input, rendering,
// and telemetry into a runnable sandbox.
package game

import (
	"fmt"

	"github.com/pthm-cable/drift/components"
	"github.com/pthm-cable/drift/config"
	"github.com/pthm-cable/drift/entity"
	"github.com/pthm-cable/drift/telemetry"
)

// PlayerEntityName is the scene entity driven by keyboard input.
const PlayerEntityName = "player"

// Options configures game creation.
type Options struct {
	ScenePath      string // empty = embedded demo scene
	OutputDir      string // empty = CSV output disabled
	LogStats       bool   // emit window stats via slog
	Headless       bool
	StepsPerUpdate int
}

// Game holds the complete sandbox state.
type Game struct {
	world    *entity.World
	registry *entity.Registry
	player   *entity.Entity

	// movers tracks each entity's movement component, in spawn order,
	// for telemetry sampling and the debug overlay.
	movers []moverRef

	tick           int64
	tickMS         float64
	timeScale      float32
	paused         bool
	stepsPerUpdate int

	collector *telemetry.Collector
	output    *telemetry.OutputManager
	logStats  bool

	perf *PerfStats

	screenWidth, screenHeight float32
	showDebugPanel            bool
}

type moverRef struct {
	entity *entity.Entity
	mover  *components.DirectionalMovement
}

// NewGame creates a game from options: builds the component registry,
// loads the scene, and wires telemetry.
func NewGame(opts Options) (*Game, error) {
	cfg := config.Cfg()

	if opts.StepsPerUpdate < 1 {
		opts.StepsPerUpdate = 1
	}

	registry := entity.NewRegistry()
	if err := registry.Register(components.DirectionalMovementName, components.NewDirectionalMovementComponent); err != nil {
		return nil, fmt.Errorf("registering components: %w", err)
	}

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("initializing output: %w", err)
	}
	if err := output.WriteConfig(cfg); err != nil {
		return nil, fmt.Errorf("snapshotting config: %w", err)
	}

	g := &Game{
		world:          entity.NewWorld(),
		registry:       registry,
		tickMS:         cfg.Simulation.TickMS,
		timeScale:      1,
		stepsPerUpdate: opts.StepsPerUpdate,
		collector:      telemetry.NewCollector(cfg.Telemetry.StatsWindowTicks, cfg.Simulation.TickMS),
		output:         output,
		logStats:       opts.LogStats,
		perf:           NewPerfStats(),
		screenWidth:    float32(cfg.Screen.Width),
		screenHeight:   float32(cfg.Screen.Height),
	}

	if err := g.loadSceneFile(opts.ScenePath); err != nil {
		output.Close()
		return nil, err
	}

	g.player = g.world.Find(PlayerEntityName)
	if g.player == nil && !opts.Headless {
		Logf("scene has no %q entity; keyboard input is inert", PlayerEntityName)
	}

	return g, nil
}

// Tick returns the current simulation tick.
func (g *Game) Tick() int64 {
	return g.tick
}

// World returns the entity world.
func (g *Game) World() *entity.World {
	return g.world
}

// Player returns the keyboard-driven entity, or nil.
func (g *Game) Player() *entity.Entity {
	return g.player
}

// Unload flushes telemetry output and releases resources.
func (g *Game) Unload() {
	if err := g.output.WriteTransitions(g.collector.DrainTransitions()); err != nil {
		Logf("flushing transitions: %v", err)
	}
	if err := g.output.Close(); err != nil {
		Logf("closing output: %v", err)
	}
	g.output = nil
}
