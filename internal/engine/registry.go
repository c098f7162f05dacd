package engine

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownComponent is returned when a scene names a component type that
// was never registered.
var ErrUnknownComponent = errors.New("unknown component type")

// ComponentFactory builds a component from decoded scene-file properties.
type ComponentFactory func(props Props) (Component, error)

var registry = map[string]ComponentFactory{}

// RegisterComponent makes a component type constructible by name. Intended
// for init functions; registering a name twice panics.
func RegisterComponent(name string, factory ComponentFactory) {
	if factory == nil {
		panic(fmt.Sprintf("component %q registered with nil factory", name))
	}
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("component %q already registered", name))
	}
	registry[name] = factory
}

// CreateComponent builds a registered component type.
func CreateComponent(name string, props Props) (Component, error) {
	factory, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownComponent, name)
	}
	c, err := factory(props)
	if err != nil {
		return nil, fmt.Errorf("component %q: %w", name, err)
	}
	return c, nil
}

func IsRegistered(name string) bool {
	_, ok := registry[name]
	return ok
}

// RegisteredComponents returns the registered names, sorted.
func RegisteredComponents() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
