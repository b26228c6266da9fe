// Package main provides the entry point for the space CLI.
//
// space is a local development environment tool. It derives a project
// context (name, directory hash, base domain, per-service DNS names and
// URLs) from the project's configuration and makes it available as reports,
// as environment variables, and as JSON piped to custom commands.
//
// Usage:
//
//	space services
//	space run <command> [args...]
//	space health
//
// See --help for all available options.
package main

// main is the entry point for space.
func main() {
	Execute()
}
