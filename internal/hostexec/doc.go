// Package hostexec is the host side of the plugin contract.
//
// For every node instance in a graph it resolves the declared arguments
// against the node's input schema (defaults, range clamping, enum
// membership), applies the instance's control-after-generate seed policy,
// consults the node's cache policy to decide whether execution can be
// skipped, and finally invokes the node's execution function with the
// hidden instance identifier and run metadata.
//
// Execution is strictly sequential: one node runs to completion before the
// next starts, and a whole-graph run completes before the next run begins.
// There are no goroutines, locks, timeouts, or cancellation semantics in
// this executor.
package hostexec
