package seedtrack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTracker_FirstCallReturnsZero(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		seed int64
	}{
		{name: "zero seed", seed: 0},
		{name: "small seed", seed: 42},
		{name: "max seed", seed: 1<<31 - 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tr := New()
			assert.Equal(t, int64(0), tr.RecordAndGetPrevious("fresh", tc.seed))
		})
	}
}

func TestTracker_ReturnsPreviousSeedInSequence(t *testing.T) {
	t.Parallel()

	tr := New()
	seeds := []int64{11, 3, 3, 99, 0, 7}

	var want int64 // first call sees 0
	for _, seed := range seeds {
		got := tr.RecordAndGetPrevious("k", seed)
		assert.Equal(t, want, got)
		want = seed
	}
}

func TestTracker_Scenario(t *testing.T) {
	t.Parallel()

	tr := New()
	assert.Equal(t, int64(0), tr.RecordAndGetPrevious("node-1", 42))
	assert.Equal(t, int64(42), tr.RecordAndGetPrevious("node-1", 7))
}

func TestTracker_IndependentIdentifiers(t *testing.T) {
	t.Parallel()

	tr := New()
	tr.RecordAndGetPrevious("a", 100)
	tr.RecordAndGetPrevious("b", 200)

	assert.Equal(t, int64(100), tr.RecordAndGetPrevious("a", 1))
	assert.Equal(t, int64(200), tr.RecordAndGetPrevious("b", 2))
	assert.Equal(t, 2, tr.Len())
}

func TestTracker_EmptyIdentifierIsNeverRecorded(t *testing.T) {
	t.Parallel()

	tr := New()
	assert.Equal(t, int64(0), tr.RecordAndGetPrevious("", 5))
	assert.Equal(t, int64(0), tr.RecordAndGetPrevious("", 9))
	assert.Equal(t, 0, tr.Len())
}
