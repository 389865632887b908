// Package schema defines the field descriptors a node presents to the host
// so it can render inputs and resolve argument values before execution.
package schema

import (
	"github.com/zclconf/go-cty/cty"
)

// Field describes a single declared input field and its constraints.
type Field struct {
	Name string
	Type cty.Type

	// Default is applied when the argument is omitted. cty.NilVal means
	// the field has no default and must be provided.
	Default cty.Value

	// Min, Max and Step constrain number fields. The host clamps resolved
	// values into [Min, Max]; nodes never validate their inputs.
	Min  int64
	Max  int64
	Step int64

	// Display is a UI rendering hint, e.g. "number".
	Display string

	// Choices lists the allowed values of an enum field. Empty for
	// free-form fields.
	Choices []string

	// ControlAfterGenerate marks the field the host's seed policy
	// (fixed/increment/decrement/randomize) is applied to between runs.
	ControlAfterGenerate bool
}

// Clamp forces v into the field's declared [Min, Max] range.
func (f Field) Clamp(v int64) int64 {
	if v < f.Min {
		return f.Min
	}
	if v > f.Max {
		return f.Max
	}
	return v
}

// HasChoice reports whether v is one of the field's enum choices.
func (f Field) HasChoice(v string) bool {
	for _, c := range f.Choices {
		if c == v {
			return true
		}
	}
	return false
}

// InputSpec is the complete input declaration of a node type. Field order
// is preserved so the host renders inputs predictably.
type InputSpec struct {
	Required []Field
	Optional []Field

	// Hidden names the pass-through values the host injects without
	// rendering them, e.g. "unique_id" and "run_meta".
	Hidden []string
}

// All returns the declared fields, required first.
func (s *InputSpec) All() []Field {
	fields := make([]Field, 0, len(s.Required)+len(s.Optional))
	fields = append(fields, s.Required...)
	return append(fields, s.Optional...)
}

// Lookup returns the declared field named name.
func (s *InputSpec) Lookup(name string) (Field, bool) {
	for _, f := range s.All() {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// ControlField returns the field the host's seed policy applies to, if the
// node declared one.
func (s *InputSpec) ControlField() (Field, bool) {
	for _, f := range s.All() {
		if f.ControlAfterGenerate {
			return f, true
		}
	}
	return Field{}, false
}

// ReturnSpec names one element of a node's output tuple.
type ReturnSpec struct {
	Name string
	Type cty.Type
}
