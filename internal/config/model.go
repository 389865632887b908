package config

import "github.com/hashicorp/hcl/v2"

// Model is the format-agnostic representation of the loaded graph.
type Model struct {
	Nodes []*Node
}

// Node is one `node` block from a graph file: a placed instance of a
// registered node type.
type Node struct {
	// TypeKey is the internal node type key, e.g. "seed_selector_int".
	TypeKey string

	// Name is the human-readable instance name from the graph file.
	Name string

	// Arguments holds the raw attribute expressions from the block's
	// `arguments` body, keyed by attribute name.
	Arguments map[string]hcl.Expression

	// SeedControl is the host-side policy applied to the node's
	// control-capable field between runs.
	SeedControl string
}

// Seed control policies the host applies between runs, before a node's
// execution function is invoked.
const (
	ControlFixed     = "fixed"
	ControlIncrement = "increment"
	ControlDecrement = "decrement"
	ControlRandomize = "randomize"
)

// SeedControls lists every valid control-after-generate policy.
var SeedControls = []string{ControlFixed, ControlIncrement, ControlDecrement, ControlRandomize}

// ValidSeedControl reports whether s names a known seed control policy.
func ValidSeedControl(s string) bool {
	for _, c := range SeedControls {
		if c == s {
			return true
		}
	}
	return false
}
