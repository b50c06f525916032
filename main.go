// =============================================================================
// Persona Data Generator - Main Entry Point
// =============================================================================
//
// This is the main entry point for the persona data generator CLI. It
// initializes the Cobra CLI framework and delegates command execution to
// the cmd package.
//
// USAGE:
//   personagen generate      - Generate the full JSON output tree
//   personagen validate      - Diff generated counts against source data
//   personagen version       - Display the application version
//
// ARCHITECTURE:
//   This application follows a modular design where:
//   - cmd/           : Contains all CLI command definitions (Cobra)
//   - internal/      : Contains core business logic (not for external import)
//   - pkg/           : Contains shared utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/persona-datagen/cmd"
)

// main is the entry point of the application.
// It simply calls the Execute function from the cmd package, which
// initializes and runs the Cobra CLI.
func main() {
	cmd.Execute()
}
