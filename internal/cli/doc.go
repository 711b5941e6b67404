// Package cli defines the Cobra command tree for the expressgen CLI. Each
// file registers one top-level command with the root command. Commands
// delegate to internal packages and only handle flags, I/O formatting, and
// user interaction.
package cli
