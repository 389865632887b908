// Package seedselect provides the seed-selector node family: nodes that
// forward a seed value alongside the previously seen seed for the same
// node instance, so downstream nodes can reference both the current and
// prior seed of a generation run.
package seedselect

import (
	"github.com/vk/seedgridgo/internal/registry"
	"github.com/vk/seedgridgo/internal/seedtrack"
)

// Type keys the host discovers the variants under.
const (
	TypeSelector        = "seed_selector_int"
	TypeSelectorMode    = "my_seed_selector_int"
	TypeSelectorDisplay = "seed_selector_display"
)

// Module implements the registry.Module interface for this package. All
// three variants share the one injected tracker, so an instance keeps its
// previous-seed history even if its type is swapped between variants.
type Module struct {
	tracker *seedtrack.Tracker
}

// NewModule creates the module around the process-wide seed tracker.
func NewModule(tracker *seedtrack.Tracker) *Module {
	return &Module{tracker: tracker}
}

// Register registers the node family with the host registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterNode(TypeSelector, "Seed Selector (INT)", newSelector(m.tracker, variantPlain))
	r.RegisterNode(TypeSelectorMode, "My Seed Selector (INT)", newSelector(m.tracker, variantModeEcho))
	r.RegisterNode(TypeSelectorDisplay, "Seed Selector with Display", newSelector(m.tracker, variantDisplay))
}
