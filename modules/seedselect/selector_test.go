package seedselect

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/seedgridgo/internal/node"
	"github.com/vk/seedgridgo/internal/registry"
	"github.com/vk/seedgridgo/internal/rng"
	"github.com/vk/seedgridgo/internal/seedtrack"
)

func call(id string, args map[string]cty.Value) *node.Call {
	return &node.Call{Args: args, NodeID: id, Meta: &node.RunMeta{}}
}

func seedArgs(seed int64) map[string]cty.Value {
	return map[string]cty.Value{"seed": cty.NumberIntVal(seed)}
}

func intVal(t *testing.T, v cty.Value) int64 {
	t.Helper()
	i, _ := v.AsBigFloat().Int64()
	return i
}

func TestSelector_TracksPreviousSeed(t *testing.T) {
	t.Parallel()

	sel := newSelector(seedtrack.New(), variantPlain)

	first, err := sel.Execute(context.Background(), call("node-1", seedArgs(42)))
	require.NoError(t, err)
	assert.Equal(t, int64(42), intVal(t, first.Values[0]))
	assert.Equal(t, int64(0), intVal(t, first.Values[1]))

	second, err := sel.Execute(context.Background(), call("node-1", seedArgs(7)))
	require.NoError(t, err)
	assert.Equal(t, int64(7), intVal(t, second.Values[0]))
	assert.Equal(t, int64(42), intVal(t, second.Values[1]))
}

func TestSelector_IndependentInstances(t *testing.T) {
	t.Parallel()

	tracker := seedtrack.New()
	sel := newSelector(tracker, variantPlain)

	_, err := sel.Execute(context.Background(), call("k1", seedArgs(100)))
	require.NoError(t, err)
	_, err = sel.Execute(context.Background(), call("k2", seedArgs(200)))
	require.NoError(t, err)

	res1, err := sel.Execute(context.Background(), call("k1", seedArgs(1)))
	require.NoError(t, err)
	res2, err := sel.Execute(context.Background(), call("k2", seedArgs(2)))
	require.NoError(t, err)

	assert.Equal(t, int64(100), intVal(t, res1.Values[1]))
	assert.Equal(t, int64(200), intVal(t, res2.Values[1]))
}

func TestSelector_MissingIdentifierNeverPersists(t *testing.T) {
	t.Parallel()

	sel := newSelector(seedtrack.New(), variantPlain)

	first, err := sel.Execute(context.Background(), call("", seedArgs(5)))
	require.NoError(t, err)
	second, err := sel.Execute(context.Background(), call("", seedArgs(9)))
	require.NoError(t, err)

	assert.Equal(t, int64(0), intVal(t, first.Values[1]))
	assert.Equal(t, int64(0), intVal(t, second.Values[1]), "no persistence without an identifier")
}

func TestSelector_SharedTrackerAcrossVariants(t *testing.T) {
	t.Parallel()

	tracker := seedtrack.New()
	plain := newSelector(tracker, variantPlain)
	display := newSelector(tracker, variantDisplay)

	_, err := plain.Execute(context.Background(), call("shared", seedArgs(11)))
	require.NoError(t, err)

	res, err := display.Execute(context.Background(), call("shared", seedArgs(22)))
	require.NoError(t, err)
	assert.Equal(t, int64(11), intVal(t, res.Values[1]))
}

func TestSelector_UIPayloadMirrorsValues(t *testing.T) {
	t.Parallel()

	sel := newSelector(seedtrack.New(), variantPlain)
	res, err := sel.Execute(context.Background(), call("ui", seedArgs(42)))
	require.NoError(t, err)

	require.Contains(t, res.UI, "seed")
	require.Contains(t, res.UI, "previous_seed")
	assert.Equal(t, []cty.Value{cty.NumberIntVal(42)}, res.UI["seed"])
	assert.Equal(t, []cty.Value{cty.NumberIntVal(0)}, res.UI["previous_seed"])
}

func TestSelector_ModeEchoDebugString(t *testing.T) {
	t.Parallel()

	sel := newSelector(seedtrack.New(), variantModeEcho)

	args := seedArgs(13)
	args["control_after_generate"] = cty.StringVal("increment")
	res, err := sel.Execute(context.Background(), call("dbg", args))
	require.NoError(t, err)

	require.Len(t, res.Values, 3)
	assert.Equal(t, "seed=13 | previous=0 | mode=increment", res.Values[2].AsString())

	// UI keys of this variant mirror all three values.
	assert.Equal(t, []cty.Value{cty.NumberIntVal(13)}, res.UI["seed_value"])
	assert.Equal(t, []cty.Value{cty.NumberIntVal(0)}, res.UI["previous_seed_value"])
	assert.Equal(t, "seed=13 | previous=0 | mode=increment", res.UI["text"][0].AsString())
}

func TestSelector_ModeEchoDefaultsToRandomize(t *testing.T) {
	t.Parallel()

	sel := newSelector(seedtrack.New(), variantModeEcho)
	res, err := sel.Execute(context.Background(), call("dbg", seedArgs(1)))
	require.NoError(t, err)

	assert.Equal(t, "seed=1 | previous=0 | mode=randomize", res.Values[2].AsString())
}

func TestSelector_DisplayStrings(t *testing.T) {
	t.Parallel()

	sel := newSelector(seedtrack.New(), variantDisplay)

	_, err := sel.Execute(context.Background(), call("disp", seedArgs(42)))
	require.NoError(t, err)
	res, err := sel.Execute(context.Background(), call("disp", seedArgs(7)))
	require.NoError(t, err)

	require.Len(t, res.Values, 4)
	assert.Equal(t, "Current: 7", res.Values[2].AsString())
	assert.Equal(t, "Previous: 42", res.Values[3].AsString())
	assert.Equal(t, "Current: 7", res.UI["seed_display"][0].AsString())
	assert.Equal(t, "Previous: 42", res.UI["previous_display"][0].AsString())
}

func TestSelector_NeverCaches(t *testing.T) {
	t.Parallel()

	for _, v := range []variant{variantPlain, variantModeEcho, variantDisplay} {
		sel := newSelector(seedtrack.New(), v)
		assert.Equal(t, node.NeverCache, sel.CachePolicy())
	}
}

func TestSelector_Describe(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		variant       variant
		optionalField string
	}{
		{name: "plain", variant: variantPlain, optionalField: "max_val"},
		{name: "mode echo", variant: variantModeEcho, optionalField: "control_after_generate"},
		{name: "display", variant: variantDisplay, optionalField: "max_val"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			spec := newSelector(seedtrack.New(), tc.variant).Describe()

			seed, ok := spec.Lookup("seed")
			require.True(t, ok)
			assert.Equal(t, int64(0), seed.Min)
			assert.Equal(t, rng.Int32Max, seed.Max)
			assert.True(t, seed.ControlAfterGenerate)
			assert.Equal(t, "number", seed.Display)

			_, ok = spec.Lookup(tc.optionalField)
			assert.True(t, ok)

			assert.Equal(t, []string{"unique_id", "run_meta"}, spec.Hidden)
		})
	}
}

func TestModule_RegistersAllVariants(t *testing.T) {
	t.Parallel()

	r := registry.New()
	NewModule(seedtrack.New()).Register(r)

	assert.Equal(t, []string{TypeSelectorMode, TypeSelectorDisplay, TypeSelector}, r.Keys())
	assert.Equal(t, "Seed Selector (INT)", r.DisplayName(TypeSelector))
	assert.Equal(t, "My Seed Selector (INT)", r.DisplayName(TypeSelectorMode))
	assert.Equal(t, "Seed Selector with Display", r.DisplayName(TypeSelectorDisplay))
}
