// Package registry provides a named-factory registry.
// Components register themselves in init() functions, allowing the platform
// to discover and instantiate them by name without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
)

// Info contains metadata about a registered entry.
type Info struct {
	Name        string
	Description string
}

// Factory is a function that creates a new instance of T.
type Factory[T any] func() T

// Registry maps names to factories. The zero value is not usable; call New.
type Registry[T any] struct {
	kind         string // Used in error messages, e.g. "reward"
	mu           sync.RWMutex
	factories    map[string]Factory[T]
	descriptions map[string]string
}

// New creates an empty registry. kind names the registered things in errors.
func New[T any](kind string) *Registry[T] {
	return &Registry[T]{
		kind:         kind,
		factories:    make(map[string]Factory[T]),
		descriptions: make(map[string]string),
	}
}

// Register adds a factory under name.
// Typically called from an init() function.
// Panics if the name is already registered.
func (r *Registry[T]) Register(name, description string, f Factory[T]) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		panic(fmt.Sprintf("registry: %s %q already registered", r.kind, name))
	}
	r.factories[name] = f
	r.descriptions[name] = description
}

// List returns all registered entries, sorted by name.
func (r *Registry[T]) List() []Info {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Info, 0, len(r.factories))
	for name := range r.factories {
		result = append(result, Info{
			Name:        name,
			Description: r.descriptions[name],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Names returns the registered names, sorted.
func (r *Registry[T]) Names() []string {
	infos := r.List()
	names := make([]string, len(infos))
	for i, info := range infos {
		names[i] = info.Name
	}
	return names
}

// Create instantiates a new T by name.
// Returns an error if the name is not registered.
func (r *Registry[T]) Create(name string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.factories[name]
	if !ok {
		var zero T
		return zero, fmt.Errorf("registry: unknown %s %q", r.kind, name)
	}

	return f(), nil
}

// Exists checks if name is registered.
func (r *Registry[T]) Exists(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.factories[name]
	return ok
}
