// Package ecs provides the shared actor/component/system scaffold used by
// all arcade game prototypes. A World owns actors, their components and
// tags, and a set of per-frame systems whose execution order is derived
// from declared dependencies.
//
// The package is strictly single-threaded: one Update tick runs to
// completion before the next begins, so no locking is used anywhere.
package ecs

import "strconv"

// Actor is a unique identifier for a game object within a World.
// Identifiers are allocated monotonically and never reused.
type Actor uint64

// NoActor is the zero Actor; it never identifies a live game object.
const NoActor Actor = 0

// String returns the decimal form of the actor id.
func (a Actor) String() string {
	return strconv.FormatUint(uint64(a), 10)
}

// Component is typed data attached to exactly one actor. A World stores
// at most one component of each concrete type per actor.
type Component any

// Attacher is implemented by components that want a hook invoked right
// after they are attached to an actor.
type Attacher interface {
	OnAdd(w *World, a Actor)
}

// Detacher is implemented by components that want a hook invoked right
// before they are detached from an actor (including actor removal).
type Detacher interface {
	OnRemove(w *World, a Actor)
}
