package entity

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// Component is a self-contained behavior unit attached to an entity.
// Attach subscribes the component to the messages it handles; Detach
// must drop every subscription made in Attach. A component belongs to
// at most one entity at a time.
type Component interface {
	Attach(e *Entity)
	Detach()
}

// Factory builds a component from its scene definition options.
// opts is the component's YAML mapping node (including the type field,
// which factories ignore), or nil when the definition carries no options.
type Factory func(opts *yaml.Node) (Component, error)

// Registry maps component type names to factories. The framework owner
// constructs a registry, registers its component set, and hands the
// registry to the scene loader; there is no process-global table.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry creates an empty component registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory under the given type name.
// Duplicate names are an error.
func (r *Registry) Register(name string, f Factory) error {
	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("component type %q already registered", name)
	}
	r.factories[name] = f
	return nil
}

// New builds a component of the named type from its options.
func (r *Registry) New(name string, opts *yaml.Node) (Component, error) {
	f, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown component type %q", name)
	}
	c, err := f(opts)
	if err != nil {
		return nil, fmt.Errorf("building component %q: %w", name, err)
	}
	return c, nil
}

// Names returns the registered type names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
