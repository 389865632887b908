package hostexec

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/vk/seedgridgo/internal/schema"
)

// resolveArgs evaluates an instance's raw argument expressions against the
// node's declared fields. Defaults fill omitted fields, number values are
// clamped into the declared range, and enum fields must name one of their
// choices. Nodes assume pre-clamped inputs, so this is the only place
// range enforcement happens.
func resolveArgs(spec *schema.InputSpec, raw map[string]hcl.Expression) (map[string]cty.Value, error) {
	for name := range raw {
		if _, ok := spec.Lookup(name); !ok {
			return nil, fmt.Errorf("unknown argument %q", name)
		}
	}

	args := make(map[string]cty.Value, len(spec.Required)+len(spec.Optional))
	for _, field := range spec.All() {
		expr, present := raw[field.Name]
		if !present {
			if field.Default == cty.NilVal {
				return nil, fmt.Errorf("missing required argument %q", field.Name)
			}
			args[field.Name] = field.Default
			continue
		}

		val, diags := expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("argument %q: %w", field.Name, diags)
		}
		val, err := convert.Convert(val, field.Type)
		if err != nil {
			return nil, fmt.Errorf("argument %q: %w", field.Name, err)
		}

		if field.Type == cty.Number {
			i, _ := val.AsBigFloat().Int64()
			val = cty.NumberIntVal(field.Clamp(i))
		}
		if len(field.Choices) > 0 {
			if s := val.AsString(); !field.HasChoice(s) {
				return nil, fmt.Errorf("argument %q: value %q is not one of %v", field.Name, s, field.Choices)
			}
		}

		args[field.Name] = val
	}

	return args, nil
}
