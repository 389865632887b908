package seedselect

import (
	"context"
	"fmt"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/seedgridgo/internal/ctxlog"
	"github.com/vk/seedgridgo/internal/node"
	"github.com/vk/seedgridgo/internal/rng"
	"github.com/vk/seedgridgo/internal/schema"
	"github.com/vk/seedgridgo/internal/seedtrack"
)

// variant selects the input schema and output shaping of one registered
// node type. The bookkeeping is identical across variants.
type variant int

const (
	// variantPlain returns (seed, previous_seed) and accepts a max_val bound.
	variantPlain variant = iota
	// variantModeEcho adds a debug string echoing the requested seed mode.
	variantModeEcho
	// variantDisplay adds human-readable current/previous display strings.
	variantDisplay
)

// selector implements node.Definition for every variant of the family.
type selector struct {
	tracker *seedtrack.Tracker
	variant variant
}

func newSelector(tracker *seedtrack.Tracker, v variant) *selector {
	return &selector{tracker: tracker, variant: v}
}

// Describe declares the seed field common to all variants plus the
// variant-specific optional field.
func (s *selector) Describe() *schema.InputSpec {
	spec := &schema.InputSpec{
		Required: []schema.Field{{
			Name:                 "seed",
			Type:                 cty.Number,
			Default:              cty.NumberIntVal(0),
			Min:                  0,
			Max:                  rng.Int32Max,
			Step:                 1,
			Display:              "number",
			ControlAfterGenerate: true,
		}},
		Hidden: []string{"unique_id", "run_meta"},
	}

	switch s.variant {
	case variantModeEcho:
		spec.Optional = []schema.Field{{
			Name:    "control_after_generate",
			Type:    cty.String,
			Default: cty.StringVal("randomize"),
			Choices: []string{"fixed", "increment", "decrement", "randomize"},
		}}
	default:
		spec.Optional = []schema.Field{{
			Name:    "max_val",
			Type:    cty.Number,
			Default: cty.NumberIntVal(rng.Int32Max),
			Min:     1,
			Max:     rng.Int32Max,
			Step:    1,
		}}
	}

	return spec
}

// Returns names the variant's output tuple.
func (s *selector) Returns() []schema.ReturnSpec {
	returns := []schema.ReturnSpec{
		{Name: "seed", Type: cty.Number},
		{Name: "previous_seed", Type: cty.Number},
	}
	switch s.variant {
	case variantModeEcho:
		returns = append(returns, schema.ReturnSpec{Name: "debug", Type: cty.String})
	case variantDisplay:
		returns = append(returns,
			schema.ReturnSpec{Name: "seed_display", Type: cty.String},
			schema.ReturnSpec{Name: "previous_display", Type: cty.String},
		)
	}
	return returns
}

// CachePolicy reports NeverCache: seed selection must re-run on every
// invocation even when the declared inputs did not change.
func (s *selector) CachePolicy() node.CachePolicy {
	return node.NeverCache
}

// Execute records the current seed, retrieves the previous one, and
// packages both into the variant's output tuple and UI payload.
func (s *selector) Execute(ctx context.Context, call *node.Call) (*node.Result, error) {
	seed := call.Int("seed", 0)
	previous := s.tracker.RecordAndGetPrevious(call.NodeID, seed)

	logger := ctxlog.FromContext(ctx)
	logger.Debug("Seed selected.", "node", call.NodeID, "seed", seed, "previous", previous)

	seedVal := cty.NumberIntVal(seed)
	prevVal := cty.NumberIntVal(previous)

	result := &node.Result{
		Values: []cty.Value{seedVal, prevVal},
		UI: map[string][]cty.Value{
			"seed":          {seedVal},
			"previous_seed": {prevVal},
		},
	}

	switch s.variant {
	case variantModeEcho:
		mode := call.Str("control_after_generate", "randomize")
		debug := fmt.Sprintf("seed=%d | previous=%d | mode=%s", seed, previous, mode)
		debugVal := cty.StringVal(debug)
		result.Values = append(result.Values, debugVal)
		result.UI = map[string][]cty.Value{
			"seed_value":          {seedVal},
			"previous_seed_value": {prevVal},
			"text":                {debugVal},
		}
	case variantDisplay:
		current := cty.StringVal(fmt.Sprintf("Current: %d", seed))
		prev := cty.StringVal(fmt.Sprintf("Previous: %d", previous))
		result.Values = append(result.Values, current, prev)
		result.UI["seed_display"] = []cty.Value{current}
		result.UI["previous_display"] = []cty.Value{prev}
	}

	return result, nil
}
