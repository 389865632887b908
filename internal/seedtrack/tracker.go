// Package seedtrack records the last seed value observed by each node
// instance so the next execution can report it as the previous seed.
package seedtrack

// Tracker maps a host-assigned node instance identifier to the last seed
// value it was executed with. One Tracker is created at startup and shared
// by every node for the lifetime of the host process; entries are never
// evicted.
//
// The host invokes node executions strictly one at a time, so the map is
// deliberately unsynchronized.
type Tracker struct {
	previous map[string]int64
}

// New returns an empty Tracker.
func New() *Tracker {
	return &Tracker{previous: make(map[string]int64)}
}

// RecordAndGetPrevious returns the seed recorded for id by the preceding
// call and stores seed in its place. The first call for an identifier
// returns 0; an absent entry is a normal first run, not a failure.
//
// An empty id means the host did not supply an instance identifier. The
// previous value is still computed (always 0, since nothing is ever
// recorded under the sentinel) but the store is skipped, so runs without
// an identifier never observe each other.
func (t *Tracker) RecordAndGetPrevious(id string, seed int64) int64 {
	prev := t.previous[id]
	if id == "" {
		return prev
	}
	t.previous[id] = seed
	return prev
}

// Len reports how many node instances have a recorded seed.
func (t *Tracker) Len() int {
	return len(t.previous)
}
