// =============================================================================
// Persona Data Generator - Generate Command
// =============================================================================
//
// This file defines the 'generate' command, which runs the full batch
// transform from per-store transaction data to the persona JSON tree.
//
// COMMAND USAGE:
//   personagen generate [flags]
//
// PROCESSING PIPELINE:
//   1. Load configuration, registry, persona roster, and store mappings
//   2. Replace the output directory
//   3. For each persona (concurrently):
//      a. Look up its store mapping (skip with a warning if absent)
//      b. For each mapped store, normalize every declared category
//      c. Drop empty categories, roll up store statistics
//      d. Write the store index, per-event details, and the profile
//   4. Write the global index
//   5. Print a summary report
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/persona-datagen/internal/generate"
)

// =============================================================================
// GENERATE COMMAND DEFINITION
// =============================================================================

// generateCmd represents the 'generate' command.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the persona JSON output tree",
	Long: `The generate command reads the persona roster and store mappings, pulls
each persona's transactions from every mapped store, normalizes them through
the per-type strategies, and writes the full JSON output tree.

Personas are processed concurrently. Each persona is an independent unit:
an error or panic in one persona is logged and that persona contributes
nothing, while the rest of the batch completes normally.

The output directory is fully replaced on every run.`,

	// RunE is like Run but returns an error. This is preferred for commands
	// that can fail, as it allows Cobra to handle the error gracefully.
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate()
	},
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init registers the generate command with the root command.
func init() {
	rootCmd.AddCommand(generateCmd)
}

// =============================================================================
// COMMAND IMPLEMENTATION
// =============================================================================

// runGenerate executes the batch and prints the summary report.
func runGenerate() error {
	cfg, registry, logger, err := loadEnvironment()
	if err != nil {
		return err
	}

	summary, err := generate.New(cfg, registry, logger).Run()
	if err != nil {
		return err
	}

	// ==========================================================================
	// SUMMARY REPORT
	// ==========================================================================

	fmt.Println("=============================================================")
	fmt.Println("GENERATION REPORT")
	fmt.Println("=============================================================")
	fmt.Printf("Personas processed:   %d\n", summary.Personas)
	fmt.Printf("Personas skipped:     %d (no store mapping)\n", summary.Skipped)
	fmt.Printf("Personas failed:      %d\n", summary.Failed)
	fmt.Printf("Total orders:         %d\n", summary.TotalOrders)
	fmt.Printf("Stores touched:       %d\n", summary.TotalStores)
	fmt.Printf("Elapsed:              %s\n", summary.Elapsed)
	fmt.Printf("Output directory:     %s\n", summary.OutputDir)
	fmt.Println("=============================================================")

	return nil
}
