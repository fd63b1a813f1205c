// Package cli implements the command-line interface for tadoru.
//
// The cli package provides:
// - Command-line argument parsing and validation
// - Optional config file layering over flags
// - Report writing, terminal paging and browser hand-off
// - Watch mode for re-checking on site changes
package cli
