// Package registry is the discovery surface between the host and the node
// packages compiled into the binary.
//
// The Registry stores the mapping from an internal node type key (the name
// used in graph files, e.g. "seed_selector_int") to the Go implementation
// of that node, plus a human-readable display label for each key. Node
// packages self-register through the Module interface during application
// startup; registering the same key twice is a programmer error and
// panics immediately rather than surfacing later as a confusing runtime
// lookup failure.
package registry
