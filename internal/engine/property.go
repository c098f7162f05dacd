package engine

// Property is an explicit accessor pair. Assigning through Set runs the
// setter's side effects instead of storing a value directly, and Get may
// report something other than what was last stored.
type Property[T any] struct {
	get func() T
	set func(T)
}

// NewProperty builds a property from a getter and a setter.
func NewProperty[T any](get func() T, set func(T)) Property[T] {
	return Property[T]{get: get, set: set}
}

// Get returns the derived value. A zero Property reads as the zero value.
func (p Property[T]) Get() T {
	if p.get == nil {
		var zero T
		return zero
	}
	return p.get()
}

// Set runs the setter. A zero Property ignores the assignment.
func (p Property[T]) Set(v T) {
	if p.set != nil {
		p.set(v)
	}
}

// ReadOnlyProperty exposes a derived value with no setter.
type ReadOnlyProperty[T any] struct {
	get func() T
}

func NewReadOnlyProperty[T any](get func() T) ReadOnlyProperty[T] {
	return ReadOnlyProperty[T]{get: get}
}

func (p ReadOnlyProperty[T]) Get() T {
	if p.get == nil {
		var zero T
		return zero
	}
	return p.get()
}
