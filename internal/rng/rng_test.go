package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniformInt_StaysInRange(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		max  int64
	}{
		{name: "one", max: 1},
		{name: "three", max: 3},
		{name: "ten", max: 10},
		{name: "large", max: 1 << 20},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for i := 0; i < 200; i++ {
				got := UniformInt(tc.max)
				require.GreaterOrEqual(t, got, int64(0))
				require.LessOrEqual(t, got, tc.max)
			}
		})
	}
}

func TestUniformInt_BoundsAreInclusive(t *testing.T) {
	t.Parallel()

	// With max = 1 each bound has probability 1/2, so 500 draws missing
	// one of them would be a broken sampler, not bad luck.
	const max = int64(1)
	seen := make(map[int64]bool)
	for i := 0; i < 500; i++ {
		seen[UniformInt(max)] = true
	}
	assert.True(t, seen[0], "expected 0 to be drawn")
	assert.True(t, seen[max], "expected the max bound to be drawn")
}

func TestUniformInt_ZeroBound(t *testing.T) {
	t.Parallel()

	for i := 0; i < 10; i++ {
		assert.Equal(t, int64(0), UniformInt(0))
	}
}

func TestUniformInt_ClampsBounds(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int64(0), UniformInt(-5), "negative bound clamps to 0")

	// A bound above the seed domain behaves exactly like Int32Max.
	for i := 0; i < 50; i++ {
		got := UniformInt(Int32Max + 12345)
		require.GreaterOrEqual(t, got, int64(0))
		require.LessOrEqual(t, got, Int32Max)
	}
}

func TestClampSeed(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		in   int64
		want int64
	}{
		{name: "negative", in: -1, want: 0},
		{name: "zero", in: 0, want: 0},
		{name: "in range", in: 12345, want: 12345},
		{name: "max", in: Int32Max, want: Int32Max},
		{name: "above max", in: Int32Max + 1, want: Int32Max},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ClampSeed(tc.in))
		})
	}
}
