// =============================================================================
// Persona Data Generator - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands (like 'generate', 'validate') are
// attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (personagen)
//   ├── generateCmd (personagen generate)
//   ├── validateCmd (personagen validate)
//   └── versionCmd (personagen version)
//
// CONFIGURATION:
//   The root command is responsible for:
//   1. Setting up global flags (e.g., --config, --verbose)
//   2. Loading the main configuration and the store registry
//   3. Setting up structured logging
//
// =============================================================================

package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/persona-datagen/internal/config"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the main configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables debug logging when set to true.
var verbose bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "personagen",

	Short: "Persona Data Generator - Transform per-store transaction data into persona JSON trees",

	Long: `Persona Data Generator is a CLI tool that transforms heterogeneous
per-store transaction data (CSV or XLSX) into a canonical JSON output tree:
one profile per persona, one index per store, one detail file per event,
and a global index across the whole batch.

Key Features:
  - Twelve normalization strategies covering orders, purchases, bookings,
    tours, inquiries, subscriptions, grooming, preorders, and more
  - Declarative store registry mapping stores to categories and catalogs
  - Concurrent per-persona processing with per-unit failure isolation
  - Deterministic output: regenerating over unchanged inputs is
    byte-identical except for the generation timestamp
  - Source-vs-output consistency validation

Example Usage:
  personagen generate                   # Generate the full output tree
  personagen generate --config my.yaml  # Use a custom configuration file
  personagen validate                   # Cross-check output against sources`,

	// Run is the function that will be executed when the root command is called
	// without any subcommands. In this case, we just print the help message.
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// SHARED ENVIRONMENT SETUP
// =============================================================================

// loadEnvironment loads the main configuration and the store registry and
// builds the logger. Shared by the generate and validate commands.
func loadEnvironment() (*config.MainConfig, *config.Registry, *slog.Logger, error) {
	cfg, err := config.LoadMainConfig(cfgFile)
	if err != nil {
		return nil, nil, nil, err
	}

	registry, err := config.LoadRegistry(cfg.RegistryFile)
	if err != nil {
		return nil, nil, nil, err
	}

	logger := newLogger(cfg.LogLevel)
	return cfg, registry, logger, nil
}

// newLogger builds the application logger. The --verbose flag forces
// debug level regardless of the configured level.
func newLogger(configured string) *slog.Logger {
	level := parseLogLevel(configured)
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}

// parseLogLevel maps the configured level name to a slog level.
// Unrecognized names fall back to info.
func parseLogLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init sets up the global flags.
func init() {
	// ==========================================================================
	// PERSISTENT FLAGS
	// ==========================================================================
	// Persistent flags are available to this command and all subcommands.

	// --config flag: Allows the user to specify a custom configuration file.
	// Default is "config.yaml" in the current directory.
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the main configuration file (default is config.yaml)",
	)

	// --verbose flag: Enables debug logging.
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}
