package entity

// Handler processes a single message. Data is nil for payload-free messages.
type Handler func(data any)

// Subscription identifies a single handler registration on a Bus.
// Returned by Subscribe so callers can detach later.
type Subscription struct {
	name string
	id   int
}

type subscriber struct {
	id      int
	handler Handler
}

// Bus is a per-entity publish/subscribe channel keyed by message name.
//
// Dispatch is synchronous and single-threaded: Publish invokes every
// handler registered for the name, in subscription order, and returns
// when all have run to completion. Handlers may subscribe or unsubscribe
// during dispatch; such changes take effect on the next Publish.
type Bus struct {
	subs   map[string][]subscriber
	nextID int
}

// Subscribe registers a handler for the named message.
func (b *Bus) Subscribe(name string, h Handler) Subscription {
	if b.subs == nil {
		b.subs = make(map[string][]subscriber)
	}
	b.nextID++
	b.subs[name] = append(b.subs[name], subscriber{id: b.nextID, handler: h})
	return Subscription{name: name, id: b.nextID}
}

// Unsubscribe removes a previously registered handler.
// Unknown or already-removed subscriptions are ignored.
func (b *Bus) Unsubscribe(sub Subscription) {
	list := b.subs[sub.name]
	for i, s := range list {
		if s.id == sub.id {
			b.subs[sub.name] = append(list[:i:i], list[i+1:]...)
			return
		}
	}
}

// Publish delivers a message to every handler registered for name,
// in subscription order. Pass nil data for payload-free messages.
func (b *Bus) Publish(name string, data any) {
	// Snapshot so handlers can mutate subscriptions mid-dispatch.
	list := b.subs[name]
	for _, s := range list {
		s.handler(data)
	}
}

// HandlerCount returns the number of handlers registered for name.
func (b *Bus) HandlerCount(name string) int {
	return len(b.subs[name])
}
