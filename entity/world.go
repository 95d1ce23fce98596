package entity

import "github.com/mlange-42/ark/ecs"

// World owns the ECS store and the set of live entities. Entity positions
// live in the ECS; everything message-related lives on the entities
// themselves. All operations are single-threaded.
type World struct {
	ecs    *ecs.World
	posMap *ecs.Map1[Position]

	// Spawn-order list; message broadcast and ticking follow this order.
	entities []*Entity
}

// NewWorld creates an empty world.
func NewWorld() *World {
	world := ecs.NewWorld()
	return &World{
		ecs:    world,
		posMap: ecs.NewMap1[Position](world),
	}
}

// Spawn creates a named entity at the given position, with no components.
func (w *World) Spawn(name string, x, y float64) *Entity {
	id := w.posMap.NewEntity(&Position{X: x, Y: y})
	e := &Entity{name: name, id: id, world: w}
	w.entities = append(w.entities, e)
	return e
}

// Remove destroys an entity: detaches its components (dropping their
// message subscriptions) and frees its ECS storage. Removing an entity
// twice is a no-op.
func (w *World) Remove(e *Entity) {
	for i, have := range w.entities {
		if have == e {
			w.entities = append(w.entities[:i:i], w.entities[i+1:]...)
			e.detachAll()
			w.ecs.RemoveEntity(e.id)
			return
		}
	}
}

// Entities returns the live entities in spawn order.
func (w *World) Entities() []*Entity {
	return w.entities
}

// Find returns the first entity with the given name, or nil.
func (w *World) Find(name string) *Entity {
	for _, e := range w.entities {
		if e.name == name {
			return e
		}
	}
	return nil
}

// Broadcast publishes a message to every entity in spawn order.
// Used by the simulation loop for the per-tick logic message.
func (w *World) Broadcast(name string, data any) {
	for _, e := range w.entities {
		e.bus.Publish(name, data)
	}
}

// Count returns the number of live entities.
func (w *World) Count() int {
	return len(w.entities)
}
