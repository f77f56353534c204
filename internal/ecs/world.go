package ecs

import (
	"errors"
	"reflect"
)

// ErrReentrantUpdate is returned when a system calls World.Update from
// inside its own update.
var ErrReentrantUpdate = errors.New("ecs: Update called from inside a system update")

// World owns one registry and one scheduler and drives one update tick
// per frame. All mutation happens on the single logical game thread.
type World struct {
	reg     *registry
	sched   *scheduler
	timers  timerQueue
	tick    uint64
	running bool
	inTick  bool
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		reg:   newRegistry(),
		sched: newScheduler(),
	}
}

// AddActor allocates a fresh actor id, unique for the world's lifetime.
func (w *World) AddActor() Actor {
	return w.reg.create()
}

// RemoveActor detaches all of the actor's components, invoking their
// OnRemove hooks, then deletes the actor and its tags. Safe to call
// while iterating a snapshot from ActorsWith/ActorsWithTag; not safe
// from inside a live iteration of the registry itself.
func (w *World) RemoveActor(a Actor) {
	for _, c := range w.reg.remove(a) {
		if d, ok := c.(Detacher); ok {
			d.OnRemove(w, a)
		}
	}
}

// Alive reports whether a identifies a live actor.
func (w *World) Alive(a Actor) bool {
	return w.reg.alive(a)
}

// ActorCount returns the number of live actors.
func (w *World) ActorCount() int {
	return w.reg.count()
}

// AddComponent attaches c to the actor under c's concrete type and
// invokes its OnAdd hook. A second component of the same type replaces
// the first (last write wins); the replaced component's OnRemove hook
// fires before the new one's OnAdd so lifecycle hooks stay balanced.
// Attaching to an unknown actor is a no-op.
func (w *World) AddComponent(a Actor, c Component) {
	replaced, ok := w.reg.attach(a, c)
	if !ok {
		return
	}
	if d, isD := replaced.(Detacher); isD {
		d.OnRemove(w, a)
	}
	if at, isA := c.(Attacher); isA {
		at.OnAdd(w, a)
	}
}

// RemoveComponent detaches the actor's component of type t, invoking its
// OnRemove hook first. No-op if absent.
func (w *World) RemoveComponent(a Actor, t reflect.Type) {
	c, ok := w.reg.get(a, t)
	if !ok {
		return
	}
	if d, isD := c.(Detacher); isD {
		d.OnRemove(w, a)
	}
	w.reg.detach(a, t)
}

// GetComponent returns the actor's component of type t. Absence is a
// normal outcome, not an error; callers are expected to check ok.
func (w *World) GetComponent(a Actor, t reflect.Type) (Component, bool) {
	return w.reg.get(a, t)
}

// HasComponent reports whether the actor carries a component of type t.
func (w *World) HasComponent(a Actor, t reflect.Type) bool {
	return w.reg.has(a, t)
}

// AddTag adds a tag to the actor. Adding a present tag is a no-op.
func (w *World) AddTag(a Actor, tag string) {
	w.reg.addTag(a, tag)
}

// RemoveTag removes a tag from the actor. No-op if absent.
func (w *World) RemoveTag(a Actor, tag string) {
	w.reg.removeTag(a, tag)
}

// HasTag reports tag membership.
func (w *World) HasTag(a Actor, tag string) bool {
	return w.reg.hasTag(a, tag)
}

// ActorsWith returns a snapshot of all actors carrying a component of
// type t, in unspecified order. The registry may be mutated while the
// snapshot is iterated.
func (w *World) ActorsWith(t reflect.Type) []Actor {
	return w.reg.actorsWith(t)
}

// ActorsWithTag is the tag analogue of ActorsWith.
func (w *World) ActorsWithTag(tag string) []Actor {
	return w.reg.actorsWithTag(tag)
}

// AddSystem registers a per-frame system, optionally declaring systems
// that must run before it. Referencing an unregistered system name or
// reusing a name is a configuration error.
func (w *World) AddSystem(sys System, runAfter ...string) error {
	return w.sched.add(sys, runAfter...)
}

// SetupDependency declares that system before must complete ahead of
// system after on every tick. Takes effect at the next recompute.
func (w *World) SetupDependency(before, after string) error {
	return w.sched.dependency(before, after)
}

// Start computes the system order and enables ticking. Configuration
// errors (dependency cycles) abort the start. Idempotent.
func (w *World) Start() error {
	if w.running {
		return nil
	}
	if _, err := w.sched.order(); err != nil {
		return err
	}
	w.running = true
	return nil
}

// Stop disables ticking. Idempotent.
func (w *World) Stop() {
	w.running = false
}

// Running reports whether Update currently does anything.
func (w *World) Running() bool {
	return w.running
}

// Tick returns the number of completed update ticks.
func (w *World) Tick() uint64 {
	return w.tick
}

// Update runs one frame: due deferred actions fire first, then every
// system once in scheduler order, recomputing the order if the graph
// changed. No-op while stopped. Must not be called re-entrantly from a
// system update.
func (w *World) Update() error {
	if !w.running {
		return nil
	}
	if w.inTick {
		return ErrReentrantUpdate
	}
	order, err := w.sched.order()
	if err != nil {
		return err
	}
	w.inTick = true
	defer func() { w.inTick = false }()

	w.tick++
	w.timers.fire(w.tick)
	for _, sys := range order {
		sys.Update(w)
	}
	return nil
}
