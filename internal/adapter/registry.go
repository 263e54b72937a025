package adapter

import (
	"errors"
	"fmt"
	"sort"

	"github.com/openzeppelin/ui-builder-cli/internal/network"
)

// ErrAdapterNotFound is returned when no adapter is registered for an
// ecosystem.
var ErrAdapterNotFound = errors.New("no adapter registered for ecosystem")

// Registry maps ecosystem tags to singleton adapter instances.
type Registry struct {
	adapters map[network.Ecosystem]Adapter
}

// NewRegistry creates an empty adapter registry.
func NewRegistry() *Registry {
	return &Registry{adapters: make(map[network.Ecosystem]Adapter)}
}

// Register installs the adapter for an ecosystem. Registering the same
// ecosystem twice is a programming error and panics.
func (r *Registry) Register(eco network.Ecosystem, a Adapter) {
	if _, exists := r.adapters[eco]; exists {
		panic(fmt.Sprintf("adapter already registered for ecosystem %q", eco))
	}
	r.adapters[eco] = a
}

// Get returns the adapter for an ecosystem. An unknown ecosystem is a
// lookup error, never a silent nil.
func (r *Registry) Get(eco network.Ecosystem) (Adapter, error) {
	a, ok := r.adapters[eco]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrAdapterNotFound, eco)
	}
	return a, nil
}

// Has reports whether an adapter is registered for the ecosystem.
func (r *Registry) Has(eco network.Ecosystem) bool {
	_, ok := r.adapters[eco]
	return ok
}

// Ecosystems returns the registered ecosystem tags, sorted for stable
// display.
func (r *Registry) Ecosystems() []network.Ecosystem {
	out := make([]network.Ecosystem, 0, len(r.adapters))
	for eco := range r.adapters {
		out = append(out, eco)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
