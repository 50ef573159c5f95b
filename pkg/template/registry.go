package template

import (
	"fmt"
)

// Registry is the immutable event-to-template lookup table. Catalogs are
// merged at construction; there is no mutation API.
type Registry struct {
	templates map[string]Template
}

// NewRegistry merges the given catalogs into one registry. Duplicate event
// keys across catalogs are a configuration error and fail construction.
func NewRegistry(catalogs ...map[string]Template) (*Registry, error) {
	merged := make(map[string]Template)
	for _, catalog := range catalogs {
		for event, tmpl := range catalog {
			if _, exists := merged[event]; exists {
				return nil, fmt.Errorf("%w: %s", ErrDuplicateTemplate, event)
			}
			if tmpl.ID == "" {
				tmpl.ID = event
			}
			if len(tmpl.Channels) == 0 {
				return nil, fmt.Errorf("%w: template %s has no channel content", ErrInvalidTemplate, event)
			}
			merged[event] = tmpl
		}
	}
	return &Registry{templates: merged}, nil
}

// MustNewRegistry is like NewRegistry but panics on invalid catalogs.
// Catalogs are compiled in, so a failure here is a programming error that
// should prevent startup.
func MustNewRegistry(catalogs ...map[string]Template) *Registry {
	r, err := NewRegistry(catalogs...)
	if err != nil {
		panic(err)
	}
	return r
}

// DefaultRegistry returns a registry with all compiled-in role catalogs.
func DefaultRegistry() *Registry {
	return MustNewRegistry(
		CustomerCatalog(),
		VendorCatalog(),
		DriverCatalog(),
		AdminCatalog(),
	)
}

// Get returns the template for the given event key. Inactive templates are
// invisible to dispatch and report the same error as unknown events.
func (r *Registry) Get(event string) (Template, error) {
	tmpl, exists := r.templates[event]
	if !exists || !tmpl.Active {
		return Template{}, fmt.Errorf("%w: %s", ErrTemplateNotFound, event)
	}
	return tmpl, nil
}

// Len returns the number of registered templates, active or not.
func (r *Registry) Len() int {
	return len(r.templates)
}
