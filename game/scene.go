package game

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/drift/components"
	"github.com/pthm-cable/drift/entity"
)

//go:embed demo_scene.yaml
var demoSceneYAML []byte

// sceneDef is the YAML shape of a scene file.
type sceneDef struct {
	Entities []entityDef `yaml:"entities"`
}

// entityDef describes one entity: a name, a starting position, the
// components to attach, and optional messages published once after the
// components are attached (for fire-and-forget startup intent).
type entityDef struct {
	Name       string      `yaml:"name"`
	X          float64     `yaml:"x"`
	Y          float64     `yaml:"y"`
	Components []yaml.Node `yaml:"components"`
	Messages   []string    `yaml:"messages"`
}

// loadSceneFile loads a scene from path, or the embedded demo scene if
// path is empty.
func (g *Game) loadSceneFile(path string) error {
	data := demoSceneYAML
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading scene file: %w", err)
		}
	}
	return g.loadScene(data)
}

// loadScene instantiates every entity in the scene definition through
// the component registry.
func (g *Game) loadScene(data []byte) error {
	var def sceneDef
	if err := yaml.Unmarshal(data, &def); err != nil {
		return fmt.Errorf("parsing scene: %w", err)
	}

	for i := range def.Entities {
		ed := &def.Entities[i]
		name := ed.Name
		if name == "" {
			name = fmt.Sprintf("entity-%d", i)
		}

		e := g.world.Spawn(name, ed.X, ed.Y)
		for j := range ed.Components {
			node := &ed.Components[j]

			var head struct {
				Type string `yaml:"type"`
			}
			if err := node.Decode(&head); err != nil {
				return fmt.Errorf("entity %q: parsing component %d: %w", name, j, err)
			}
			if head.Type == "" {
				return fmt.Errorf("entity %q: component %d has no type", name, j)
			}

			c, err := g.registry.New(head.Type, node)
			if err != nil {
				return fmt.Errorf("entity %q: %w", name, err)
			}
			e.AddComponent(c)

			if dm, ok := c.(*components.DirectionalMovement); ok {
				g.movers = append(g.movers, moverRef{entity: e, mover: dm})
			}
		}

		g.hookTelemetry(e)

		for _, msg := range ed.Messages {
			e.Publish(msg, nil)
		}
	}

	return nil
}

// hookTelemetry subscribes the game's telemetry collector to the
// entity's state broadcasts.
func (g *Game) hookTelemetry(e *entity.Entity) {
	e.Subscribe(components.MsgState, func(data any) {
		s, ok := data.(components.State)
		if !ok {
			return
		}
		g.collector.RecordTransition(g.tick, e.Name(), s)
		Logf("[state] tick=%d entity=%s moving=%t up=%t down=%t left=%t right=%t",
			g.tick, e.Name(), s.Moving, s.Up, s.Down, s.Left, s.Right)
	})
}
