// Package cli defines the Cobra command tree for the kedrogen CLI. Command
// implementations delegate to internal packages for business logic and only
// handle flag parsing, I/O formatting, and user interaction.
package cli
