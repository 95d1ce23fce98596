package entity

import "testing"

// recordingComponent tracks lifecycle and message delivery for tests.
type recordingComponent struct {
	owner    *Entity
	sub      Subscription
	received []any
	detached bool
}

func (c *recordingComponent) Attach(e *Entity) {
	c.owner = e
	c.sub = e.Subscribe("ping", func(data any) {
		c.received = append(c.received, data)
	})
}

func (c *recordingComponent) Detach() {
	c.owner.Unsubscribe(c.sub)
	c.owner = nil
	c.detached = true
}

func TestWorld_SpawnStoresPosition(t *testing.T) {
	w := NewWorld()
	e := w.Spawn("a", 3, -7)

	pos := e.Position()
	if pos.X != 3 || pos.Y != -7 {
		t.Errorf("expected (3, -7), got (%v, %v)", pos.X, pos.Y)
	}

	// Mutations through the pointer persist.
	pos.X += 1
	if e.Position().X != 4 {
		t.Errorf("expected mutated x=4, got %v", e.Position().X)
	}
}

func TestWorld_EntitiesInSpawnOrder(t *testing.T) {
	w := NewWorld()
	w.Spawn("a", 0, 0)
	w.Spawn("b", 0, 0)
	w.Spawn("c", 0, 0)

	names := []string{}
	for _, e := range w.Entities() {
		names = append(names, e.Name())
	}
	if len(names) != 3 || names[0] != "a" || names[1] != "b" || names[2] != "c" {
		t.Errorf("expected spawn order, got %v", names)
	}
}

func TestWorld_Find(t *testing.T) {
	w := NewWorld()
	w.Spawn("a", 0, 0)
	b := w.Spawn("b", 0, 0)

	if got := w.Find("b"); got != b {
		t.Error("Find should return the named entity")
	}
	if w.Find("missing") != nil {
		t.Error("Find of unknown name should return nil")
	}
}

func TestWorld_BroadcastReachesAllInOrder(t *testing.T) {
	w := NewWorld()
	var order []string
	for _, name := range []string{"a", "b", "c"} {
		e := w.Spawn(name, 0, 0)
		e.Subscribe("tick", func(any) { order = append(order, name) })
	}

	w.Broadcast("tick", nil)

	if len(order) != 3 || order[0] != "a" || order[1] != "b" || order[2] != "c" {
		t.Errorf("expected broadcast in spawn order, got %v", order)
	}
}

func TestWorld_RemoveDetachesComponents(t *testing.T) {
	w := NewWorld()
	e := w.Spawn("a", 0, 0)
	c := &recordingComponent{}
	e.AddComponent(c)

	w.Remove(e)

	if !c.detached {
		t.Error("removal must detach components")
	}
	if w.Count() != 0 {
		t.Errorf("expected empty world, got %d entities", w.Count())
	}

	// Broadcast after removal reaches nothing.
	w.Broadcast("ping", nil)
	if len(c.received) != 0 {
		t.Error("removed entity must not receive broadcasts")
	}

	// Double removal is a no-op.
	w.Remove(e)
}

func TestEntity_RemoveComponentDetaches(t *testing.T) {
	w := NewWorld()
	e := w.Spawn("a", 0, 0)
	c := &recordingComponent{}
	e.AddComponent(c)

	e.Publish("ping", 1)
	e.RemoveComponent(c)
	e.Publish("ping", 2)

	if len(c.received) != 1 {
		t.Errorf("expected one delivery before detach, got %d", len(c.received))
	}
	if !c.detached {
		t.Error("RemoveComponent must call Detach")
	}
	if len(e.Components()) != 0 {
		t.Error("component list should be empty")
	}

	// Removing an unknown component is a no-op.
	e.RemoveComponent(&recordingComponent{})
}
