// Package cli translates command-line arguments into a validated app
// configuration. Environment variables (SEEDGRID_*) provide the flag
// defaults, so flags always win over the environment.
package cli
