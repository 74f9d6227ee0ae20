// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glcompose

import (
	"sort"
	"sync"

	"github.com/gogpu/glcompose/gles"
)

// TableLoader resolves a GL function table. Loaders run during
// Initialize, on the thread that just made the GL context current; a
// loader that cannot produce a valid table returns an error and the
// compositor stays uninitialized.
type TableLoader func() (gles.API, error)

// LoaderEntry represents a registered function table loader.
type LoaderEntry struct {
	// Name is the unique identifier for this loader.
	Name string

	// Priority determines selection order (higher = preferred).
	// Standard priorities:
	//   - 100: native bindings (backend/opengl)
	//   - 10: fallback or diagnostic tables
	Priority int

	// Load resolves the function table.
	Load TableLoader

	// Available reports if the loader can work on this system.
	Available func() bool
}

// globalLoaders is the default registry.
var globalLoaders = &LoaderRegistry{}

// LoaderRegistry manages registered function table loaders.
//
// The registry lets backends register themselves without the core
// importing them; hosts pick a backend with a blank import.
//
// Example registration:
//
//	func init() {
//	    glcompose.RegisterLoader("opengl", 100, load, nil)
//	}
//
// Example usage:
//
//	import _ "github.com/gogpu/glcompose/backend/opengl"
//
//	comp, err := glcompose.New(ctx)   // Initialize uses the best loader
type LoaderRegistry struct {
	mu      sync.RWMutex
	entries map[string]*LoaderEntry
}

// NewLoaderRegistry creates a new empty registry. Most code should use
// the global registry via RegisterLoader.
func NewLoaderRegistry() *LoaderRegistry {
	return &LoaderRegistry{
		entries: make(map[string]*LoaderEntry),
	}
}

// RegisterLoader adds a loader to the global registry.
//
// If available is nil, the loader is assumed always available.
// Registering a name that already exists replaces the previous entry.
func RegisterLoader(name string, priority int, load TableLoader, available func() bool) {
	globalLoaders.Register(name, priority, load, available)
}

// UnregisterLoader removes a loader from the global registry.
func UnregisterLoader(name string) {
	globalLoaders.Unregister(name)
}

// Loaders returns all registered loader names sorted by priority
// (highest first).
func Loaders() []string {
	return globalLoaders.List()
}

// AvailableLoaders returns names of all available loaders sorted by
// priority.
func AvailableLoaders() []string {
	return globalLoaders.Available()
}

// GetLoader returns information about a specific loader.
func GetLoader(name string) (*LoaderEntry, bool) {
	return globalLoaders.Get(name)
}

// LoadTable resolves a function table using the best available loader.
func LoadTable() (gles.API, error) {
	return globalLoaders.Load()
}

// LoadTableByName resolves a function table using a specific loader.
func LoadTableByName(name string) (gles.API, error) {
	return globalLoaders.LoadByName(name)
}

// Register adds a loader to this registry.
func (r *LoaderRegistry) Register(name string, priority int, load TableLoader, available func() bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[string]*LoaderEntry)
	}

	if available == nil {
		available = func() bool { return true }
	}

	r.entries[name] = &LoaderEntry{
		Name:      name,
		Priority:  priority,
		Load:      load,
		Available: available,
	}
}

// Unregister removes a loader from this registry.
func (r *LoaderRegistry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, name)
}

// List returns all registered loader names sorted by priority.
func (r *LoaderRegistry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(false)
}

// Available returns names of all available loaders sorted by priority.
func (r *LoaderRegistry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(true)
}

// Get returns information about a specific loader.
func (r *LoaderRegistry) Get(name string) (*LoaderEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[name]
	if !ok {
		return nil, false
	}

	// Return a copy to prevent modification
	entryCopy := *entry
	return &entryCopy, true
}

// Load resolves a function table using the best available loader,
// trying each available loader in priority order.
func (r *LoaderRegistry) Load() (gles.API, error) {
	r.mu.RLock()
	available := r.sortedNames(true)
	r.mu.RUnlock()

	if len(available) == 0 {
		return nil, ErrNoLoaderAvailable
	}

	var lastErr error
	for _, name := range available {
		api, err := r.LoadByName(name)
		if err == nil {
			return api, nil
		}
		lastErr = err
	}

	if lastErr != nil {
		return nil, lastErr
	}
	return nil, ErrNoLoaderAvailable
}

// LoadByName resolves a function table using a specific loader.
func (r *LoaderRegistry) LoadByName(name string) (gles.API, error) {
	r.mu.RLock()
	entry, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &LoaderNotFoundError{Name: name}
	}

	if !entry.Available() {
		return nil, &LoaderUnavailableError{Name: name}
	}

	return entry.Load()
}

// sortedNames returns loader names sorted by priority (highest first).
// If onlyAvailable is true, filters to available loaders only.
// Must be called with lock held.
func (r *LoaderRegistry) sortedNames(onlyAvailable bool) []string {
	if len(r.entries) == 0 {
		return nil
	}

	type entry struct {
		name     string
		priority int
	}

	entries := make([]entry, 0, len(r.entries))
	for name, e := range r.entries {
		if onlyAvailable && !e.Available() {
			continue
		}
		entries = append(entries, entry{name: name, priority: e.Priority})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].priority > entries[j].priority
	})

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	return names
}
