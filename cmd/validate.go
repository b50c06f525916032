// =============================================================================
// Persona Data Generator - Validate Command
// =============================================================================
//
// This file defines the 'validate' command, which cross-checks a generated
// output tree against the source store data.
//
// COMMAND USAGE:
//   personagen validate [flags]
//
// CHECKS:
//   - Every persona directory has a readable profile.json
//   - For every store on a profile, the per-user row count of each
//     category source file equals the category's item count in the
//     store's index.json
//   - A missing store index is flagged when source rows exist
//
// The command exits non-zero when any issue is found.
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/persona-datagen/internal/validate"
)

// =============================================================================
// VALIDATE COMMAND DEFINITION
// =============================================================================

// validateCmd represents the 'validate' command.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Cross-check generated output against the source data",
	Long: `The validate command walks the generated output tree and compares it with
the per-store source files: each category of each store on a persona's
profile must contain exactly as many items as the persona has rows in that
category's source file.

This catches dropped records, double counting, and stale output left over
from a partial run.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate()
	},
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init registers the validate command with the root command.
func init() {
	rootCmd.AddCommand(validateCmd)
}

// =============================================================================
// COMMAND IMPLEMENTATION
// =============================================================================

// runValidate executes the validation pass and prints the report.
func runValidate() error {
	cfg, registry, logger, err := loadEnvironment()
	if err != nil {
		return err
	}

	report, err := validate.New(cfg, registry, logger).Run()
	if err != nil {
		return err
	}

	fmt.Println("=============================================================")
	fmt.Println("VALIDATION REPORT")
	fmt.Println("=============================================================")
	fmt.Printf("Personas checked:     %d\n", report.PersonasChecked)
	fmt.Printf("Stores checked:       %d\n", report.StoresChecked)
	fmt.Printf("Issues found:         %d\n", len(report.Issues))

	for _, issue := range report.Issues {
		fmt.Printf("  MISMATCH %s\n", issue)
	}

	fmt.Println("=============================================================")

	if !report.Clean() {
		return fmt.Errorf("validation found %d issue(s)", len(report.Issues))
	}

	fmt.Println("All data is in sync.")
	return nil
}
