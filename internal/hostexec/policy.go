package hostexec

import (
	"github.com/vk/seedgridgo/internal/config"
	"github.com/vk/seedgridgo/internal/rng"
	"github.com/vk/seedgridgo/internal/schema"
)

// applySeedPolicy advances an instance's control-capable field the way the
// host's control-after-generate widget does, returning the value to
// execute with. The first run always uses the resolved config value;
// policies only take effect between runs.
func (e *Executor) applySeedPolicy(policy string, state *instanceState, field schema.Field, resolved int64) int64 {
	if !state.seeded {
		state.seed = resolved
		state.seeded = true
		return state.seed
	}

	step := field.Step
	if step <= 0 {
		step = 1
	}

	switch policy {
	case config.ControlFixed:
		// The config value stays authoritative under fixed.
		state.seed = resolved
	case config.ControlIncrement:
		if state.seed+step > field.Max {
			state.seed = field.Min
		} else {
			state.seed += step
		}
	case config.ControlDecrement:
		if state.seed-step < field.Min {
			state.seed = field.Max
		} else {
			state.seed -= step
		}
	case config.ControlRandomize:
		state.seed = rng.UniformInt(field.Max)
	}

	return state.seed
}
