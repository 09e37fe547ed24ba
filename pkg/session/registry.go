package session

import (
	"fmt"
	"sort"
)

var globalBackends = &globalBackendRegistry{
	backends: make(map[string]Backend),
}

// GlobalBackendRegistry returns the default backend registry.  Backends in
// this package register themselves at init.
func GlobalBackendRegistry() BackendRegistry {
	return globalBackends
}

// BackendRegistry is an index of session backends by name.
type BackendRegistry interface {
	// Backends returns all registered backends, sorted by name.
	Backends() []Backend

	// Backend returns the named backend.  If not known `(nil, false)` is
	// returned.
	Backend(name string) (Backend, bool)

	// AddBackend registers a backend.  It is an error to register two
	// backends with the same name.
	AddBackend(backend Backend) error
}

// New creates a session using the named backend from the global registry.
func New(name string, opts ...Option) (Session, error) {
	backend, ok := GlobalBackendRegistry().Backend(name)
	if !ok {
		return nil, fmt.Errorf("session backend not found: %q (available: %v)", name, BackendNames())
	}
	sess, err := backend.NewSession(newConfig(opts))
	if err != nil {
		return nil, fmt.Errorf("%s: creating session: %w", name, err)
	}
	return sess, nil
}

// BackendNames returns the names of the globally registered backends.
func BackendNames() []string {
	var names []string
	for _, b := range GlobalBackendRegistry().Backends() {
		names = append(names, b.Name())
	}
	return names
}

type globalBackendRegistry struct {
	backends map[string]Backend
}

// Backends implements part of the BackendRegistry interface.
func (r *globalBackendRegistry) Backends() []Backend {
	all := make([]Backend, 0, len(r.backends))
	for _, b := range r.backends {
		all = append(all, b)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].Name() < all[j].Name()
	})
	return all
}

// Backend implements part of the BackendRegistry interface.
func (r *globalBackendRegistry) Backend(name string) (Backend, bool) {
	b, ok := r.backends[name]
	return b, ok
}

// AddBackend implements part of the BackendRegistry interface.
func (r *globalBackendRegistry) AddBackend(backend Backend) error {
	if _, ok := r.backends[backend.Name()]; ok {
		return fmt.Errorf("duplicate session.Backend %q", backend.Name())
	}
	r.backends[backend.Name()] = backend
	return nil
}
