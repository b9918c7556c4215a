// Package registry tracks live chains for deterministic batch updates.
// Pure bookkeeping: iteration order is insertion order, nothing here
// solves, syncs, or draws
package registry

import (
	"github.com/lixenwraith/tether/chain"
)

// Registry is an insertion-ordered set of live chains.
// Chains are frame-stepped from a single goroutine; no internal locking
// is provided or needed
type Registry struct {
	chains []*chain.Chain
}

// New creates an empty registry
func New() *Registry {
	return &Registry{}
}

// Register appends c unless it is already present
func (r *Registry) Register(c *chain.Chain) {
	for _, existing := range r.chains {
		if existing == c {
			return
		}
	}
	r.chains = append(r.chains, c)
}

// Unregister removes c, preserving the order of the rest.
// Removing an absent chain is a no-op
func (r *Registry) Unregister(c *chain.Chain) {
	for i, existing := range r.chains {
		if existing == c {
			r.chains = append(r.chains[:i], r.chains[i+1:]...)
			return
		}
	}
}

// ForEach visits every registered chain in insertion order.
// The sole entry point a host frame loop needs to advance all chains
func (r *Registry) ForEach(visit func(c *chain.Chain)) {
	for _, c := range r.chains {
		visit(c)
	}
}

// Len returns the number of registered chains
func (r *Registry) Len() int {
	return len(r.chains)
}

// defaultRegistry backs the package-level convenience API
var defaultRegistry = New()

// Register adds c to the process-wide default registry
func Register(c *chain.Chain) {
	defaultRegistry.Register(c)
}

// Unregister removes c from the process-wide default registry
func Unregister(c *chain.Chain) {
	defaultRegistry.Unregister(c)
}

// ForEach iterates the process-wide default registry
func ForEach(visit func(c *chain.Chain)) {
	defaultRegistry.ForEach(visit)
}
