// Package extract defines the producer boundary for extraction. Multiple
// strategies (direct vision, tool calling, PDF text) all converge on the same
// ExtractionResult shape; any producer satisfying the interface is acceptable
// and is selected by configuration, not subclassing.
package extract

import (
	"context"
	"strings"

	"github.com/tickmark-dev/tickmark/internal/model"
)

// Producer turns a source document reference into an ExtractionResult.
type Producer interface {
	// Name identifies the producer for config selection.
	Name() string
	// Extract reads the source and emits the structured dataset.
	Extract(ctx context.Context, source string) (model.ExtractionResult, error)
}

// Registry holds named producers.
type Registry struct {
	producers map[string]Producer
}

// NewRegistry creates an empty producer registry.
func NewRegistry() *Registry {
	return &Registry{producers: make(map[string]Producer)}
}

// Register adds a producer. Panics on duplicate name.
func (r *Registry) Register(p Producer) {
	key := strings.ToLower(p.Name())
	if _, ok := r.producers[key]; ok {
		panic("duplicate producer name: " + key)
	}
	r.producers[key] = p
}

// Get returns the producer for name, or nil.
func (r *Registry) Get(name string) Producer {
	return r.producers[strings.ToLower(name)]
}

// Names returns the registered producer names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.producers))
	for name := range r.producers {
		names = append(names, name)
	}
	return names
}

// DefaultRegistry returns a registry with all built-in producers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&JSONFileProducer{})
	return r
}
