package ecs

import "reflect"

// registry maps actors to their components (keyed by concrete type) and
// tags, with reverse indexes for both so queries stay O(matches).
type registry struct {
	nextID     Actor
	components map[Actor]map[reflect.Type]Component
	byType     map[reflect.Type]map[Actor]struct{}
	tags       map[Actor]map[string]struct{}
	byTag      map[string]map[Actor]struct{}
}

func newRegistry() *registry {
	return &registry{
		components: make(map[Actor]map[reflect.Type]Component),
		byType:     make(map[reflect.Type]map[Actor]struct{}),
		tags:       make(map[Actor]map[string]struct{}),
		byTag:      make(map[string]map[Actor]struct{}),
	}
}

func (r *registry) create() Actor {
	r.nextID++
	a := r.nextID
	r.components[a] = make(map[reflect.Type]Component)
	return a
}

func (r *registry) alive(a Actor) bool {
	_, ok := r.components[a]
	return ok
}

// attach stores c under its concrete type and returns the component it
// replaced, if any. Attaching to an unknown actor is a no-op.
func (r *registry) attach(a Actor, c Component) (replaced Component, ok bool) {
	comps, exists := r.components[a]
	if !exists || c == nil {
		return nil, false
	}
	t := reflect.TypeOf(c)
	replaced = comps[t]
	comps[t] = c
	idx := r.byType[t]
	if idx == nil {
		idx = make(map[Actor]struct{})
		r.byType[t] = idx
	}
	idx[a] = struct{}{}
	return replaced, true
}

// detach removes and returns the component of type t, if present.
func (r *registry) detach(a Actor, t reflect.Type) (Component, bool) {
	comps, exists := r.components[a]
	if !exists {
		return nil, false
	}
	c, ok := comps[t]
	if !ok {
		return nil, false
	}
	delete(comps, t)
	if idx := r.byType[t]; idx != nil {
		delete(idx, a)
	}
	return c, true
}

func (r *registry) get(a Actor, t reflect.Type) (Component, bool) {
	comps, exists := r.components[a]
	if !exists {
		return nil, false
	}
	c, ok := comps[t]
	return c, ok
}

func (r *registry) has(a Actor, t reflect.Type) bool {
	_, ok := r.get(a, t)
	return ok
}

func (r *registry) addTag(a Actor, tag string) {
	if !r.alive(a) {
		return
	}
	set := r.tags[a]
	if set == nil {
		set = make(map[string]struct{})
		r.tags[a] = set
	}
	set[tag] = struct{}{}
	idx := r.byTag[tag]
	if idx == nil {
		idx = make(map[Actor]struct{})
		r.byTag[tag] = idx
	}
	idx[a] = struct{}{}
}

func (r *registry) removeTag(a Actor, tag string) {
	if set := r.tags[a]; set != nil {
		delete(set, tag)
	}
	if idx := r.byTag[tag]; idx != nil {
		delete(idx, a)
	}
}

func (r *registry) hasTag(a Actor, tag string) bool {
	set := r.tags[a]
	if set == nil {
		return false
	}
	_, ok := set[tag]
	return ok
}

// actorsWith returns a snapshot of all actors carrying a component of
// type t, in unspecified order. The snapshot stays valid while the
// registry is mutated.
func (r *registry) actorsWith(t reflect.Type) []Actor {
	idx := r.byType[t]
	if len(idx) == 0 {
		return nil
	}
	out := make([]Actor, 0, len(idx))
	for a := range idx {
		out = append(out, a)
	}
	return out
}

// actorsWithTag is the tag analogue of actorsWith.
func (r *registry) actorsWithTag(tag string) []Actor {
	idx := r.byTag[tag]
	if len(idx) == 0 {
		return nil
	}
	out := make([]Actor, 0, len(idx))
	for a := range idx {
		out = append(out, a)
	}
	return out
}

// remove detaches every component (returning them for hook dispatch) and
// deletes the actor with its tag memberships.
func (r *registry) remove(a Actor) []Component {
	comps, exists := r.components[a]
	if !exists {
		return nil
	}
	detached := make([]Component, 0, len(comps))
	for t, c := range comps {
		if idx := r.byType[t]; idx != nil {
			delete(idx, a)
		}
		detached = append(detached, c)
	}
	delete(r.components, a)
	for tag := range r.tags[a] {
		if idx := r.byTag[tag]; idx != nil {
			delete(idx, a)
		}
	}
	delete(r.tags, a)
	return detached
}

func (r *registry) count() int {
	return len(r.components)
}
