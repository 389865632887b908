package hostexec

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/seedgridgo/internal/config"
	"github.com/vk/seedgridgo/internal/ctxlog"
	"github.com/vk/seedgridgo/internal/node"
	"github.com/vk/seedgridgo/internal/registry"
)

// Executor drives the synchronous execution of a loaded graph.
type Executor struct {
	registry *registry.Registry
	model    *config.Model

	run    int
	states map[string]*instanceState
}

// instanceState is the host's per-instance bookkeeping between runs.
type instanceState struct {
	// seed is the current value of the control-capable field, advanced by
	// the instance's seed policy before each run.
	seed   int64
	seeded bool

	// lastArgs and cached back the CacheByInputs skip decision.
	lastArgs map[string]cty.Value
	cached   *node.Result
}

// InstanceResult couples one executed instance with its outputs.
type InstanceResult struct {
	// ID is the instance identifier, "<type>.<name>".
	ID      string
	TypeKey string

	// Skipped is true when the result was replayed from the cache instead
	// of executing the node.
	Skipped bool

	Result *node.Result
}

// New creates an Executor for the given registry and graph model.
func New(reg *registry.Registry, model *config.Model) *Executor {
	return &Executor{
		registry: reg,
		model:    model,
		states:   make(map[string]*instanceState),
	}
}

// InstanceID returns the host-assigned identifier for a node instance.
func InstanceID(n *config.Node) string {
	return n.TypeKey + "." + n.Name
}

// RunOnce executes every instance in the graph once, in file order. The
// first error aborts the run.
func (e *Executor) RunOnce(ctx context.Context) ([]InstanceResult, error) {
	logger := ctxlog.FromContext(ctx)
	e.run++
	logger.Debug("Starting graph run.", "run", e.run, "instances", len(e.model.Nodes))

	results := make([]InstanceResult, 0, len(e.model.Nodes))
	for _, inst := range e.model.Nodes {
		res, err := e.runInstance(ctx, inst)
		if err != nil {
			return nil, fmt.Errorf("instance %s failed: %w", InstanceID(inst), err)
		}
		results = append(results, res)
	}

	logger.Debug("Graph run finished.", "run", e.run)
	return results, nil
}

// runInstance resolves, gates, and executes a single node instance.
func (e *Executor) runInstance(ctx context.Context, inst *config.Node) (InstanceResult, error) {
	id := InstanceID(inst)
	logger := ctxlog.FromContext(ctx).With("node", id)

	def, ok := e.registry.Lookup(inst.TypeKey)
	if !ok {
		return InstanceResult{}, fmt.Errorf("unknown node type '%s'", inst.TypeKey)
	}

	spec := def.Describe()
	args, err := resolveArgs(spec, inst.Arguments)
	if err != nil {
		return InstanceResult{}, err
	}

	state, ok := e.states[id]
	if !ok {
		state = &instanceState{}
		e.states[id] = state
	}

	// Advance the control-capable field before execution; this is the
	// host-side half of the contract, never the node's.
	if field, ok := spec.ControlField(); ok {
		resolved, _ := args[field.Name].AsBigFloat().Int64()
		next := e.applySeedPolicy(inst.SeedControl, state, field, resolved)
		args[field.Name] = cty.NumberIntVal(next)
		logger.Debug("Applied seed policy.", "policy", inst.SeedControl, "field", field.Name, "value", next)
	}

	if def.CachePolicy() == node.CacheByInputs && state.cached != nil && argsEqual(state.lastArgs, args) {
		logger.Debug("Inputs unchanged, replaying cached result.")
		return InstanceResult{ID: id, TypeKey: inst.TypeKey, Skipped: true, Result: state.cached}, nil
	}

	meta := &node.RunMeta{
		RunID: uuid.New(),
		Extra: map[string]string{"run": strconv.Itoa(e.run)},
	}

	logger.Debug("Executing node.", "run_id", meta.RunID, "cache_policy", def.CachePolicy().String())
	result, err := def.Execute(ctx, &node.Call{Args: args, NodeID: id, Meta: meta})
	if err != nil {
		return InstanceResult{}, err
	}

	state.lastArgs = args
	state.cached = result
	logger.Info("Node executed.", "outputs", len(result.Values))

	return InstanceResult{ID: id, TypeKey: inst.TypeKey, Result: result}, nil
}

// argsEqual compares two resolved argument sets for the cache check.
func argsEqual(a, b map[string]cty.Value) bool {
	if len(a) != len(b) {
		return false
	}
	for name, av := range a {
		bv, ok := b[name]
		if !ok || !av.RawEquals(bv) {
			return false
		}
	}
	return true
}
