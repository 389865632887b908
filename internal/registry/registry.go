package registry

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/vk/seedgridgo/internal/node"
)

// Module is the interface node packages implement to self-register.
type Module interface {
	Register(r *Registry)
}

// Registry holds the registered node implementations and their display
// labels for a single application instance.
type Registry struct {
	nodes  map[string]node.Definition
	labels map[string]string
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		nodes:  make(map[string]node.Definition),
		labels: make(map[string]string),
	}
}

// RegisterNode binds a type key to its implementation and display label.
func (r *Registry) RegisterNode(key, displayName string, def node.Definition) {
	if _, exists := r.nodes[key]; exists {
		panic(fmt.Sprintf("node type '%s' already registered", key))
	}
	slog.Debug("Registering node type.", "key", key, "display_name", displayName)
	r.nodes[key] = def
	r.labels[key] = displayName
}

// Lookup returns the implementation registered under key.
func (r *Registry) Lookup(key string) (node.Definition, bool) {
	def, ok := r.nodes[key]
	return def, ok
}

// DisplayName returns the human-readable label for key, falling back to
// the key itself when no label was registered.
func (r *Registry) DisplayName(key string) string {
	if label, ok := r.labels[key]; ok {
		return label
	}
	return key
}

// Keys returns every registered type key in sorted order.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.nodes))
	for key := range r.nodes {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
