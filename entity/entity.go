// Package entity provides the entity/component container: entities with
// world-space positions backed by an ECS store, a per-entity message bus,
// and explicit component registration.
package entity

import "github.com/mlange-42/ark/ecs"

// Entity is a game object composed of behavior components. It owns a
// position (stored in the world's ECS) and a message bus through which
// its components communicate.
type Entity struct {
	name       string
	id         ecs.Entity
	world      *World
	bus        Bus
	components []Component
}

// Name returns the entity's scene name.
func (e *Entity) Name() string {
	return e.name
}

// Position returns a pointer to the entity's live position component.
// Mutations through the pointer are visible to all readers immediately.
func (e *Entity) Position() *Position {
	return e.world.posMap.Get(e.id)
}

// Subscribe registers a handler for the named message on this entity's bus.
func (e *Entity) Subscribe(name string, h Handler) Subscription {
	return e.bus.Subscribe(name, h)
}

// Unsubscribe removes a handler registration.
func (e *Entity) Unsubscribe(sub Subscription) {
	e.bus.Unsubscribe(sub)
}

// Publish delivers a message to this entity's components synchronously.
func (e *Entity) Publish(name string, data any) {
	e.bus.Publish(name, data)
}

// AddComponent attaches a component to this entity. The component
// subscribes to its messages during Attach.
func (e *Entity) AddComponent(c Component) {
	e.components = append(e.components, c)
	c.Attach(e)
}

// RemoveComponent detaches a component, dropping its subscriptions.
// Unknown components are ignored.
func (e *Entity) RemoveComponent(c Component) {
	for i, have := range e.components {
		if have == c {
			e.components = append(e.components[:i:i], e.components[i+1:]...)
			c.Detach()
			return
		}
	}
}

// Components returns the attached components in attach order.
func (e *Entity) Components() []Component {
	return e.components
}

// detachAll detaches every component. Called by the world on removal.
func (e *Entity) detachAll() {
	for _, c := range e.components {
		c.Detach()
	}
	e.components = nil
}
