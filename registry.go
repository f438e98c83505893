package vega

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry holds renderer registrations keyed by MIME type
// and resolves factories by MIME type or file extension.
// Hosts typically build one registry at startup from Registrations.
//
// Safe for concurrent use.
type Registry struct {
	mu            sync.RWMutex
	registrations map[string]Registration
}

func NewRegistry() *Registry {
	return &Registry{
		registrations: make(map[string]Registration),
	}
}

// NewDefaultRegistry returns a registry pre-populated with
// Registrations for the passed embedder.
func NewDefaultRegistry(embedder Embedder) *Registry {
	registry := NewRegistry()
	for _, reg := range Registrations(embedder) {
		// Registrations has no duplicate MIME types
		_ = registry.Register(reg)
	}
	return registry
}

// Register adds a registration. It returns an error if the
// registration has no MIME type or factory, or wraps
// ErrAlreadyRegistered if the MIME type is already present.
func (r *Registry) Register(reg Registration) error {
	if reg.MimeType == "" {
		return fmt.Errorf("registration without MIME type")
	}
	if reg.Factory == nil {
		return fmt.Errorf("registration for %q without factory", reg.MimeType)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.registrations[reg.MimeType]; exists {
		return fmt.Errorf("%w: %q", ErrAlreadyRegistered, reg.MimeType)
	}
	r.registrations[reg.MimeType] = reg
	return nil
}

// FactoryFor returns the factory registered for a MIME type.
func (r *Registry) FactoryFor(mimeType string) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reg, ok := r.registrations[mimeType]
	if !ok {
		return nil, false
	}
	return reg.Factory, true
}

// ForExtension returns the registration whose Extensions match the
// passed filename or extension, preferring lower ranks when multiple
// registrations recognize the same extension.
// Matching is case-insensitive and honors multi-part extensions
// like ".vl.json".
func (r *Registry) ForExtension(nameOrExt string) (Registration, bool) {
	nameOrExt = strings.ToLower(nameOrExt)

	r.mu.RLock()
	defer r.mu.RUnlock()

	var (
		best  Registration
		found bool
	)
	for _, reg := range r.registrations {
		for _, ext := range reg.Extensions {
			if !strings.HasSuffix(nameOrExt, strings.ToLower(ext)) {
				continue
			}
			if !found || reg.Rank < best.Rank {
				best = reg
				found = true
			}
		}
	}
	return best, found
}

// MimeTypes returns the sorted registered MIME types.
func (r *Registry) MimeTypes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	mimeTypes := make([]string, 0, len(r.registrations))
	for mimeType := range r.registrations {
		mimeTypes = append(mimeTypes, mimeType)
	}
	sort.Strings(mimeTypes)
	return mimeTypes
}
