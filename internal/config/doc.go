// Package config holds the format-agnostic model of a loaded node graph.
//
// The model is produced by a format-specific loader (currently only HCL,
// see internal/hclloader) and consumed by the host executor. Argument
// expressions are kept raw here; resolving them against a node's declared
// input fields happens at execution time.
package config
