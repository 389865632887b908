package testutil

import (
	"context"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/seedgridgo/internal/node"
	"github.com/vk/seedgridgo/internal/registry"
	"github.com/vk/seedgridgo/internal/rng"
	"github.com/vk/seedgridgo/internal/schema"
)

// SimpleModule is a test helper for registering a single ad-hoc node type.
type SimpleModule struct {
	Key         string
	DisplayName string
	Def         node.Definition
}

// Register implements the registry.Module interface.
func (m *SimpleModule) Register(r *registry.Registry) {
	r.RegisterNode(m.Key, m.DisplayName, m.Def)
}

// StubNode is a minimal node.Definition that echoes its "value" argument
// and counts executions. Its cache policy is configurable, which lets
// tests exercise the host's CacheByInputs skip path that no shipped node
// variant uses.
type StubNode struct {
	Policy   node.CachePolicy
	Calls    int
	LastCall *node.Call
}

// Describe declares a single clamped number field.
func (n *StubNode) Describe() *schema.InputSpec {
	return &schema.InputSpec{
		Required: []schema.Field{{
			Name:    "value",
			Type:    cty.Number,
			Default: cty.NumberIntVal(0),
			Min:     0,
			Max:     rng.Int32Max,
			Step:    1,
		}},
		Hidden: []string{"unique_id", "run_meta"},
	}
}

// Returns declares the echoed output.
func (n *StubNode) Returns() []schema.ReturnSpec {
	return []schema.ReturnSpec{{Name: "value", Type: cty.Number}}
}

// CachePolicy reports the configured policy.
func (n *StubNode) CachePolicy() node.CachePolicy {
	return n.Policy
}

// Execute records the call and echoes the value argument.
func (n *StubNode) Execute(ctx context.Context, call *node.Call) (*node.Result, error) {
	n.Calls++
	n.LastCall = call
	val := call.Args["value"]
	return &node.Result{
		Values: []cty.Value{val},
		UI:     map[string][]cty.Value{"value": {val}},
	}, nil
}
