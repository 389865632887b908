// Package app assembles and runs the host application: it builds the
// logger, creates the process-wide seed tracker, registers the compiled-in
// node modules, loads the graph, and drives the synchronous executor.
package app
