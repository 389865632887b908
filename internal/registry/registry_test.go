package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/seedgridgo/internal/node"
	"github.com/vk/seedgridgo/internal/schema"
)

// fakeNode is a minimal node.Definition for registry tests.
type fakeNode struct{}

func (fakeNode) Describe() *schema.InputSpec   { return &schema.InputSpec{} }
func (fakeNode) Returns() []schema.ReturnSpec  { return nil }
func (fakeNode) CachePolicy() node.CachePolicy { return node.CacheByInputs }
func (fakeNode) Execute(context.Context, *node.Call) (*node.Result, error) {
	return &node.Result{}, nil
}

func TestRegistry_RegisterAndLookup(t *testing.T) {
	t.Parallel()

	r := New()
	r.RegisterNode("fake", "Fake Node", fakeNode{})

	def, ok := r.Lookup("fake")
	require.True(t, ok)
	assert.NotNil(t, def)

	_, ok = r.Lookup("missing")
	assert.False(t, ok)
}

func TestRegistry_DuplicateRegistrationPanics(t *testing.T) {
	t.Parallel()

	r := New()
	r.RegisterNode("fake", "Fake Node", fakeNode{})

	assert.Panics(t, func() {
		r.RegisterNode("fake", "Fake Node Again", fakeNode{})
	})
}

func TestRegistry_DisplayName(t *testing.T) {
	t.Parallel()

	r := New()
	r.RegisterNode("fake", "Fake Node", fakeNode{})

	assert.Equal(t, "Fake Node", r.DisplayName("fake"))
	assert.Equal(t, "missing", r.DisplayName("missing"), "unknown keys fall back to the key")
}

func TestRegistry_KeysSorted(t *testing.T) {
	t.Parallel()

	r := New()
	r.RegisterNode("zeta", "Z", fakeNode{})
	r.RegisterNode("alpha", "A", fakeNode{})
	r.RegisterNode("mid", "M", fakeNode{})

	assert.Equal(t, []string{"alpha", "mid", "zeta"}, r.Keys())
}
