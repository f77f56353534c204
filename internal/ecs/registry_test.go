package ecs

import "testing"

type health struct {
	HP int
}

type position struct {
	X, Y float64
}

// hooked records lifecycle hook invocations for assertions.
type hooked struct {
	added   *int
	removed *int
}

func (h *hooked) OnAdd(w *World, a Actor)    { *h.added++ }
func (h *hooked) OnRemove(w *World, a Actor) { *h.removed++ }

func TestActorLifecycle(t *testing.T) {
	tests := []struct {
		name         string
		create       int
		removeIndex  int // -1 = none
		wantAlive    int
	}{
		{"single", 1, -1, 1},
		{"remove_middle", 3, 1, 2},
		{"remove_only", 1, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := NewWorld()
			actors := make([]Actor, 0, tc.create)
			for i := 0; i < tc.create; i++ {
				actors = append(actors, w.AddActor())
			}
			if tc.removeIndex >= 0 {
				w.RemoveActor(actors[tc.removeIndex])
				if w.Alive(actors[tc.removeIndex]) {
					t.Fatalf("actor should not be alive after removal")
				}
			}
			if got := w.ActorCount(); got != tc.wantAlive {
				t.Errorf("ActorCount() = %d, expected %d", got, tc.wantAlive)
			}
		})
	}
}

func TestActorIDsNeverReused(t *testing.T) {
	w := NewWorld()
	a := w.AddActor()
	w.RemoveActor(a)
	b := w.AddActor()
	if a == b {
		t.Errorf("actor id %v was reused after removal", a)
	}
}

func TestComponentAddGetRemove(t *testing.T) {
	w := NewWorld()
	a := w.AddActor()

	w.AddComponent(a, &health{HP: 3})

	got, ok := Get[*health](w, a)
	if !ok || got.HP != 3 {
		t.Fatalf("Get[*health] = %+v ok=%v, expected HP=3", got, ok)
	}
	if !Has[*health](w, a) {
		t.Errorf("Has[*health] = false, expected true")
	}

	// Absence is a normal outcome, not an error.
	if _, ok := Get[*position](w, a); ok {
		t.Errorf("Get[*position] reported a component that was never attached")
	}

	Remove[*health](w, a)
	if Has[*health](w, a) {
		t.Errorf("component still present after Remove")
	}
	// Removing again is a no-op.
	Remove[*health](w, a)
}

func TestAddComponentLastWriteWins(t *testing.T) {
	w := NewWorld()
	a := w.AddActor()

	w.AddComponent(a, &health{HP: 1})
	w.AddComponent(a, &health{HP: 2})

	got, ok := Get[*health](w, a)
	if !ok || got.HP != 2 {
		t.Fatalf("expected replacement component HP=2, got %+v ok=%v", got, ok)
	}
	if n := len(ActorsWith[*health](w)); n != 1 {
		t.Errorf("ActorsWith returned %d actors after overwrite, expected 1", n)
	}
}

func TestComponentHooks(t *testing.T) {
	var added, removed int
	w := NewWorld()
	a := w.AddActor()

	w.AddComponent(a, &hooked{added: &added, removed: &removed})
	if added != 1 || removed != 0 {
		t.Fatalf("after add: added=%d removed=%d, expected 1/0", added, removed)
	}

	// Overwrite fires the old component's OnRemove and the new one's OnAdd.
	w.AddComponent(a, &hooked{added: &added, removed: &removed})
	if added != 2 || removed != 1 {
		t.Fatalf("after overwrite: added=%d removed=%d, expected 2/1", added, removed)
	}

	// Actor removal runs OnRemove for every component.
	w.RemoveActor(a)
	if removed != 2 {
		t.Fatalf("after RemoveActor: removed=%d, expected 2", removed)
	}
}

func TestTagsIdempotent(t *testing.T) {
	w := NewWorld()
	a := w.AddActor()

	w.AddTag(a, "solid")
	w.AddTag(a, "solid")

	if !w.HasTag(a, "solid") {
		t.Fatalf("HasTag = false after AddTag")
	}
	if n := len(w.ActorsWithTag("solid")); n != 1 {
		t.Errorf("ActorsWithTag returned %d actors, expected 1 (no duplicate membership)", n)
	}

	w.RemoveTag(a, "solid")
	if w.HasTag(a, "solid") {
		t.Errorf("HasTag = true after RemoveTag")
	}
	// Removing an absent tag is a no-op.
	w.RemoveTag(a, "solid")
}

func TestQuerySnapshotsSurviveMutation(t *testing.T) {
	w := NewWorld()
	for i := 0; i < 4; i++ {
		a := w.AddActor()
		w.AddComponent(a, &health{HP: i})
		w.AddTag(a, "enemy")
	}

	// Removing actors while iterating a previously taken snapshot must
	// be safe.
	snapshot := w.ActorsWithTag("enemy")
	if len(snapshot) != 4 {
		t.Fatalf("snapshot has %d actors, expected 4", len(snapshot))
	}
	for _, a := range snapshot {
		w.RemoveActor(a)
	}
	if n := len(w.ActorsWithTag("enemy")); n != 0 {
		t.Errorf("%d tagged actors remain after removal, expected 0", n)
	}
	if n := len(ActorsWith[*health](w)); n != 0 {
		t.Errorf("%d actors with component remain after removal, expected 0", n)
	}
}
