// Package node defines the contract between the host and its plugin nodes:
// a schema declaration, a cache policy, and an execution function.
package node

import (
	"context"

	"github.com/google/uuid"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/seedgridgo/internal/schema"
)

// CachePolicy tells the host whether a node's previous result may be
// replayed when its resolved inputs did not change between runs.
type CachePolicy int

const (
	// CacheByInputs lets the host skip execution and replay the cached
	// result when the resolved inputs are unchanged.
	CacheByInputs CachePolicy = iota

	// NeverCache forces execution on every run regardless of inputs.
	NeverCache
)

// String returns the policy's configuration-facing name.
func (p CachePolicy) String() string {
	switch p {
	case CacheByInputs:
		return "cache_by_inputs"
	case NeverCache:
		return "never_cache"
	}
	return "unknown"
}

// RunMeta is the auxiliary metadata the host attaches to every execution.
// Nodes ignore it apart from passing it through.
type RunMeta struct {
	// RunID identifies one host-level run of the whole graph.
	RunID uuid.UUID

	// Extra carries free-form host context, e.g. the run counter.
	Extra map[string]string
}

// Call carries the resolved inputs for one node execution.
type Call struct {
	// Args holds the declared inputs after the host applied defaults and
	// range clamping, keyed by field name.
	Args map[string]cty.Value

	// NodeID is the host-assigned instance identifier. Empty when the
	// host did not provide one.
	NodeID string

	// Meta is the hidden run-metadata pass-through.
	Meta *RunMeta
}

// Int returns the named argument as an integer, or def when absent.
func (c *Call) Int(name string, def int64) int64 {
	v, ok := c.Args[name]
	if !ok || v.IsNull() {
		return def
	}
	i, _ := v.AsBigFloat().Int64()
	return i
}

// Str returns the named argument as a string, or def when absent.
func (c *Call) Str(name string, def string) string {
	v, ok := c.Args[name]
	if !ok || v.IsNull() {
		return def
	}
	return v.AsString()
}

// Result is the outcome of one node execution.
type Result struct {
	// Values is the output tuple, ordered to match Definition.Returns.
	Values []cty.Value

	// UI is the side-channel payload mirroring selected values for
	// on-node display.
	UI map[string][]cty.Value
}

// Definition is implemented by every plugin node type the host can place
// in a graph.
type Definition interface {
	// Describe returns the input fields the host should render.
	Describe() *schema.InputSpec

	// Returns names the elements of the output tuple.
	Returns() []schema.ReturnSpec

	// CachePolicy reports whether results may be replayed between runs.
	CachePolicy() CachePolicy

	// Execute runs the node with resolved inputs.
	Execute(ctx context.Context, call *Call) (*Result, error)
}
