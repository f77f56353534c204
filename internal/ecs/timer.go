package ecs

// TimerHandle identifies a pending deferred action. The action fires at
// most once; Cancel is idempotent and is a no-op after firing.
type TimerHandle struct {
	fn       func()
	due      uint64
	canceled bool
	fired    bool
}

// Cancel prevents a pending action from firing. Canceling twice, or
// after the action has fired, is a no-op.
func (h *TimerHandle) Cancel() {
	if h == nil {
		return
	}
	h.canceled = true
}

// Pending reports whether the action can still fire.
func (h *TimerHandle) Pending() bool {
	return h != nil && !h.fired && !h.canceled
}

// timerQueue holds deferred actions ordered by scheduling time. Actions
// fire at the start of the tick they fall due on, before systems run.
type timerQueue struct {
	pending []*TimerHandle
}

// After schedules fn to run at the start of a later tick. A delay below
// one tick is raised to one: an action registered during tick N always
// fires during a later tick, never within the same one.
func (w *World) After(ticks int, fn func()) *TimerHandle {
	if fn == nil {
		return nil
	}
	if ticks < 1 {
		ticks = 1
	}
	h := &TimerHandle{fn: fn, due: w.tick + uint64(ticks)}
	w.timers.pending = append(w.timers.pending, h)
	return h
}

// fire runs every action due at or before now. The due list is
// snapshotted first so an action scheduling further actions cannot make
// them fire within the same tick.
func (q *timerQueue) fire(now uint64) {
	if len(q.pending) == 0 {
		return
	}
	var due []*TimerHandle
	keep := q.pending[:0]
	for _, h := range q.pending {
		switch {
		case h.canceled:
			// dropped
		case h.due <= now:
			due = append(due, h)
		default:
			keep = append(keep, h)
		}
	}
	q.pending = keep
	for _, h := range due {
		if h.canceled {
			continue
		}
		h.fired = true
		h.fn()
	}
}
