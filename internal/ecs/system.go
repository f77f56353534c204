package ecs

// System is a per-frame update unit. Each system has a name unique within
// its World; dependency constraints between systems are declared by name.
type System interface {
	Name() string
	Update(w *World)
}

// SystemFunc adapts a plain function to the System interface.
type SystemFunc struct {
	ID string
	Fn func(w *World)
}

// Name returns the system's unique name.
func (s SystemFunc) Name() string { return s.ID }

// Update invokes the wrapped function.
func (s SystemFunc) Update(w *World) {
	if s.Fn != nil {
		s.Fn(w)
	}
}
