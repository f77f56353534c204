// Package event provides a small named-event publish/subscribe bus that
// gameplay code uses to decouple side effects (pickup collected, player
// landed) from the systems that detect them. Dispatch is synchronous and
// single-threaded, matching the frame-stepped game loop.
package event

// Handler receives the payload published with an event.
type Handler func(data any)

type entry struct {
	id int
	fn Handler
}

// Bus routes published events to subscribers by event name.
type Bus struct {
	subs   map[string][]entry
	nextID int
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[string][]entry)}
}

// Subscription identifies one subscriber so it can be removed later.
type Subscription struct {
	bus  *Bus
	name string
	id   int
}

// Subscribe registers fn for every publish of name. Handlers run in
// subscription order.
func (b *Bus) Subscribe(name string, fn Handler) *Subscription {
	if fn == nil {
		return nil
	}
	b.nextID++
	b.subs[name] = append(b.subs[name], entry{id: b.nextID, fn: fn})
	return &Subscription{bus: b, name: name, id: b.nextID}
}

// Publish delivers data to every subscriber of name, synchronously. The
// subscriber list is snapshotted first, so handlers may subscribe or
// unsubscribe without affecting the current dispatch.
func (b *Bus) Publish(name string, data any) {
	current := b.subs[name]
	if len(current) == 0 {
		return
	}
	snapshot := make([]entry, len(current))
	copy(snapshot, current)
	for _, e := range snapshot {
		e.fn(data)
	}
}

// Close removes the subscription. Closing twice is a no-op.
func (s *Subscription) Close() {
	if s == nil || s.bus == nil {
		return
	}
	entries := s.bus.subs[s.name]
	for i, e := range entries {
		if e.id == s.id {
			s.bus.subs[s.name] = append(entries[:i:i], entries[i+1:]...)
			break
		}
	}
	s.bus = nil
}
