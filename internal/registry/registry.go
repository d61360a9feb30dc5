// Package registry is the host-side catalogue of verification components.
package registry

import (
	"sort"
	"sync"

	"github.com/bricksandmortarstudio/idealpostcodes/internal/core/domain"
	"github.com/bricksandmortarstudio/idealpostcodes/internal/core/ports"
)

type Registry struct {
	mu        sync.RWMutex
	verifiers map[string]ports.Verifier
}

func New() *Registry {
	return &Registry{verifiers: make(map[string]ports.Verifier)}
}

// Register adds v under its own name. Names must be unique.
func (r *Registry) Register(v ports.Verifier) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := v.Name()
	if _, exists := r.verifiers[name]; exists {
		return domain.NewDuplicateVerifierError(name)
	}
	r.verifiers[name] = v
	return nil
}

func (r *Registry) Get(name string) (ports.Verifier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.verifiers[name]
	if !ok {
		return nil, domain.NewUnknownVerifierError(name)
	}
	return v, nil
}

// Names returns the registered component names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.verifiers))
	for name := range r.verifiers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
