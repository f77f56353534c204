package ecs

import "reflect"

// TypeOf returns the registry key for component type T.
func TypeOf[T Component]() reflect.Type {
	return reflect.TypeFor[T]()
}

// Get returns the actor's component of type T. Absence is a normal
// outcome; callers short-circuit their per-actor work on !ok.
func Get[T Component](w *World, a Actor) (T, bool) {
	var zero T
	c, ok := w.GetComponent(a, reflect.TypeFor[T]())
	if !ok {
		return zero, false
	}
	v, ok := c.(T)
	if !ok {
		return zero, false
	}
	return v, true
}

// Has reports whether the actor carries a component of type T.
func Has[T Component](w *World, a Actor) bool {
	return w.HasComponent(a, reflect.TypeFor[T]())
}

// Remove detaches the actor's component of type T, if present.
func Remove[T Component](w *World, a Actor) {
	w.RemoveComponent(a, reflect.TypeFor[T]())
}

// ActorsWith returns a snapshot of all actors carrying a component of
// type T, in unspecified order.
func ActorsWith[T Component](w *World) []Actor {
	return w.ActorsWith(reflect.TypeFor[T]())
}
