// Package cli wires the jdkx commands: list, doctor, config and version.
// The root command loads configuration and sets up logging and tracing
// before any subcommand runs; all commands share one installation registry.
package cli
