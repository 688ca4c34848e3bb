// Package viz provides terminal rendering helpers for kernel plots and
// styled CLI output.
//
// The package wraps asciigraph for plotting splitting functions over
// the reduced distance q in [0, 1] and exposes the lipgloss styles
// shared by the CLI commands and the interactive explorer.
package viz
