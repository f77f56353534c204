package ecs

import (
	"fmt"
	"sort"
	"strings"
)

// scheduler derives a deterministic total order over registered systems
// from declared "A before B" constraints. Each system's priority is the
// length of its longest dependency chain, so every system sorts strictly
// after all of its dependencies; ties keep registration order.
//
// The order is cached and recomputed lazily when the graph changes.
type scheduler struct {
	nodes   []*schedNode
	byName  map[string]*schedNode
	ordered []System
	dirty   bool
}

type schedNode struct {
	sys        System
	deps       map[string]struct{}
	dependents map[string]struct{}
	priority   int
	mark       visitMark
}

type visitMark uint8

const (
	markUnvisited visitMark = iota
	markVisiting
	markDone
)

// CycleError reports a dependency cycle found during recompute. Path
// lists the system names along the cycle, ending where it started.
type CycleError struct {
	Path []string
}

func (e *CycleError) Error() string {
	return "ecs: dependency cycle: " + strings.Join(e.Path, " -> ")
}

func newScheduler() *scheduler {
	return &scheduler{byName: make(map[string]*schedNode)}
}

// add registers a system, optionally with dependencies on already
// registered systems that must run before it.
func (s *scheduler) add(sys System, runAfter ...string) error {
	name := sys.Name()
	if name == "" {
		return fmt.Errorf("ecs: system has empty name")
	}
	if _, exists := s.byName[name]; exists {
		return fmt.Errorf("ecs: system %q already registered", name)
	}
	n := &schedNode{
		sys:        sys,
		deps:       make(map[string]struct{}),
		dependents: make(map[string]struct{}),
	}
	s.nodes = append(s.nodes, n)
	s.byName[name] = n
	s.dirty = true
	for _, dep := range runAfter {
		if err := s.dependency(dep, name); err != nil {
			return err
		}
	}
	return nil
}

// dependency declares that system before must complete ahead of system
// after on every tick. Both must already be registered.
func (s *scheduler) dependency(before, after string) error {
	bn, ok := s.byName[before]
	if !ok {
		return fmt.Errorf("ecs: dependency references unknown system %q", before)
	}
	an, ok := s.byName[after]
	if !ok {
		return fmt.Errorf("ecs: dependency references unknown system %q", after)
	}
	if before == after {
		return &CycleError{Path: []string{before, after}}
	}
	an.deps[before] = struct{}{}
	bn.dependents[after] = struct{}{}
	s.dirty = true
	return nil
}

// order returns the cached execution order, recomputing it first if the
// graph changed since the last call.
func (s *scheduler) order() ([]System, error) {
	if !s.dirty {
		return s.ordered, nil
	}
	if err := s.recompute(); err != nil {
		return nil, err
	}
	return s.ordered, nil
}

func (s *scheduler) recompute() error {
	for _, n := range s.nodes {
		n.priority = 0
		n.mark = markUnvisited
	}
	stack := make([]string, 0, len(s.nodes))
	for _, n := range s.nodes {
		if err := s.visit(n, stack); err != nil {
			return err
		}
	}

	ordered := make([]*schedNode, len(s.nodes))
	copy(ordered, s.nodes)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].priority < ordered[j].priority
	})
	s.ordered = make([]System, len(ordered))
	for i, n := range ordered {
		s.ordered[i] = n.sys
	}
	s.dirty = false
	return nil
}

// visit assigns n's priority to one past its deepest dependency. A node
// encountered while still on the visit stack closes a cycle.
func (s *scheduler) visit(n *schedNode, stack []string) error {
	switch n.mark {
	case markDone:
		return nil
	case markVisiting:
		return &CycleError{Path: cyclePath(stack, n.sys.Name())}
	}
	n.mark = markVisiting
	stack = append(stack, n.sys.Name())
	for dep := range n.deps {
		if err := s.visit(s.byName[dep], stack); err != nil {
			return err
		}
		if p := s.byName[dep].priority + 1; p > n.priority {
			n.priority = p
		}
	}
	n.mark = markDone
	return nil
}

// cyclePath trims the visit stack to the segment forming the cycle and
// closes it by repeating the entry point.
func cyclePath(stack []string, entry string) []string {
	start := 0
	for i, name := range stack {
		if name == entry {
			start = i
			break
		}
	}
	path := append([]string(nil), stack[start:]...)
	return append(path, entry)
}
