package game

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/drift/config"
)

func newHeadlessGame(t *testing.T, opts Options) *Game {
	t.Helper()
	config.MustInit("")
	opts.Headless = true
	g, err := NewGame(opts)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(g.Unload)
	return g
}

func TestDemoScene_Loads(t *testing.T) {
	g := newHeadlessGame(t, Options{})

	if g.world.Count() != 3 {
		t.Fatalf("demo scene should have 3 entities, got %d", g.world.Count())
	}
	if g.Player() == nil {
		t.Fatal("demo scene must include a player entity")
	}
	if len(g.movers) != 3 {
		t.Fatalf("every demo entity carries a movement component, got %d", len(g.movers))
	}
}

func TestDemoScene_StartupMessagesDriveDrones(t *testing.T) {
	g := newHeadlessGame(t, Options{})

	drone := g.world.Find("drone-east")
	if drone == nil {
		t.Fatal("demo scene must include drone-east")
	}
	startX := drone.Position().X

	g.UpdateHeadless()

	if drone.Position().X <= startX {
		t.Error("drone-east should move east from its fire-and-forget go command")
	}
	player := g.Player()
	if player.Position().X != 480 || player.Position().Y != 270 {
		t.Error("player received no intent and must not move")
	}
}

func TestLoadScene_CustomFile(t *testing.T) {
	scene := `
entities:
  - name: runner
    x: 10
    y: 20
    components:
      - type: directional-movement
        speed: 0.5
`
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte(scene), 0644); err != nil {
		t.Fatal(err)
	}

	g := newHeadlessGame(t, Options{ScenePath: path})

	e := g.world.Find("runner")
	if e == nil {
		t.Fatal("scene entity not spawned")
	}
	if pos := e.Position(); pos.X != 10 || pos.Y != 20 {
		t.Errorf("expected (10, 20), got (%v, %v)", pos.X, pos.Y)
	}
	if len(g.movers) != 1 || g.movers[0].mover.Speed() != 0.5 {
		t.Error("component options not applied")
	}
}

func TestLoadScene_UnknownComponentType(t *testing.T) {
	config.MustInit("")
	scene := `
entities:
  - name: broken
    components:
      - type: no-such-component
`
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte(scene), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := NewGame(Options{ScenePath: path, Headless: true})
	if err == nil || !strings.Contains(err.Error(), "unknown component type") {
		t.Errorf("expected unknown component error, got %v", err)
	}
}

func TestLoadScene_MissingComponentType(t *testing.T) {
	config.MustInit("")
	scene := `
entities:
  - name: broken
    components:
      - speed: 0.5
`
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte(scene), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := NewGame(Options{ScenePath: path, Headless: true})
	if err == nil || !strings.Contains(err.Error(), "has no type") {
		t.Errorf("expected missing type error, got %v", err)
	}
}

func TestLoadScene_UnnamedEntitiesGetIndexNames(t *testing.T) {
	scene := `
entities:
  - x: 1
    y: 2
    components:
      - type: directional-movement
`
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte(scene), 0644); err != nil {
		t.Fatal(err)
	}

	g := newHeadlessGame(t, Options{ScenePath: path})
	if g.world.Find("entity-0") == nil {
		t.Error("unnamed entity should be named by index")
	}
}
