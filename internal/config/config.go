// =============================================================================
// Persona Data Generator - Configuration Module
// =============================================================================
//
// This module loads every external input the generator needs before it can
// touch store data:
//
//   1. Main Config (config.yaml)       : directory paths and run settings
//   2. Persona Roster (JSON)           : the simulated shopper identities
//   3. Store Mappings (YAML)           : which stores each persona uses,
//                                        plus location/interest overrides
//
// The roster and the store mappings are mandatory global inputs; a missing
// or unreadable file there is fatal and aborts the run. Per-store data
// files, by contrast, are soft-skipped downstream.
//
// =============================================================================

package config

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// MAIN CONFIGURATION STRUCTURE
// =============================================================================

// MainConfig holds the global application configuration.
// This is loaded from the main config.yaml file.
type MainConfig struct {
	// PersonasFile is the path to the persona roster JSON file.
	// Default: "./personas.json"
	PersonasFile string `yaml:"personas_file"`

	// StoreMappingsFile is the path to the persona -> store mapping YAML.
	// Default: "./store_mappings.yaml"
	StoreMappingsFile string `yaml:"store_mappings_file"`

	// ServersDir is the root directory holding per-store data, laid out as
	// <servers_dir>/<store_id>/data/<file>.csv.
	// Default: "./local_servers"
	ServersDir string `yaml:"servers_dir"`

	// OutputDir is the directory the JSON tree is written to. It is fully
	// replaced on every run.
	// Default: "./out"
	OutputDir string `yaml:"output_dir"`

	// RegistryFile optionally overrides the built-in store registry
	// (display names, category declarations, catalog specs).
	RegistryFile string `yaml:"registry_file,omitempty"`

	// MaxConcurrency is the maximum number of personas processed
	// concurrently. Set to 1 for sequential processing.
	// Default: 4
	MaxConcurrency int `yaml:"max_concurrency"`

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level"`
}

// =============================================================================
// PERSONA ROSTER STRUCTURES
// =============================================================================

// Persona is one simulated shopper identity from the roster.
type Persona struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	AgeGroup          string          `json:"age_group"`
	Gender            string          `json:"gender"`
	Ethnicity         string          `json:"ethnicity"`
	MaritalStatus     string          `json:"marital_status"`
	FamilyRole        string          `json:"family_role"`
	Profession        string          `json:"profession"`
	Industry          string          `json:"industry"`
	ExperienceLevel   string          `json:"experience_level"`
	Location          PersonaLocation `json:"location"`
	PersonalityTraits []string        `json:"personality_traits"`
	Interests         []string        `json:"interests"`
	Summary           string          `json:"summary"`
}

// PersonaLocation is the roster-side location block.
type PersonaLocation struct {
	City    string `json:"city"`
	Region  string `json:"region"`
	Country string `json:"country"`
}

// personaRoster matches the top-level roster file shape.
type personaRoster struct {
	Personas []Persona `json:"personas"`
}

// =============================================================================
// STORE MAPPING STRUCTURES
// =============================================================================

// StoreMapping assigns stores and local overrides to one persona.
type StoreMapping struct {
	// UniversalStores are the large general-purpose stores every persona
	// may use; SpecialtyStores are persona-specific. Processing order is
	// universal first, then specialty.
	UniversalStores []string `yaml:"universal_stores"`
	SpecialtyStores []string `yaml:"specialty_stores"`

	// Location overrides the roster location when present.
	Location MappingLocation `yaml:"location"`

	// Interests overrides the roster interests when present.
	Interests []string `yaml:"interests"`

	// AgeGroup and FamilyRole fill roster gaps when the roster omits them.
	AgeGroup   string `yaml:"age_group"`
	FamilyRole string `yaml:"family_role"`
}

// MappingLocation is the mapping-side location block.
type MappingLocation struct {
	City    string `yaml:"city"`
	Region  string `yaml:"region"`
	Address string `yaml:"address"`
}

// AllStores returns the persona's stores in processing order.
func (m StoreMapping) AllStores() []string {
	stores := make([]string, 0, len(m.UniversalStores)+len(m.SpecialtyStores))
	stores = append(stores, m.UniversalStores...)
	stores = append(stores, m.SpecialtyStores...)
	return stores
}

// storeMappingFile matches the top-level mapping file shape.
type storeMappingFile struct {
	Personas map[string]StoreMapping `yaml:"personas"`
}

// =============================================================================
// LOADING FUNCTIONS
// =============================================================================

// LoadMainConfig loads the main configuration from a YAML file, applies
// defaults, and validates it.
func LoadMainConfig(configPath string) (*MainConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg MainConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	ApplyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// DefaultConfig returns a MainConfig populated entirely with defaults.
func DefaultConfig() *MainConfig {
	cfg := &MainConfig{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults sets default values for any unset configuration options.
func ApplyDefaults(cfg *MainConfig) {
	if cfg.PersonasFile == "" {
		cfg.PersonasFile = "./personas.json"
	}
	if cfg.StoreMappingsFile == "" {
		cfg.StoreMappingsFile = "./store_mappings.yaml"
	}
	if cfg.ServersDir == "" {
		cfg.ServersDir = "./local_servers"
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "./out"
	}
	if cfg.MaxConcurrency == 0 {
		cfg.MaxConcurrency = 4
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}

// Validate checks the configuration for unusable values.
func (cfg *MainConfig) Validate() error {
	if cfg.MaxConcurrency < 1 {
		return fmt.Errorf("max_concurrency must be at least 1, got %d", cfg.MaxConcurrency)
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", cfg.LogLevel)
	}
	return nil
}

// LoadPersonas loads the persona roster. A missing roster is a fatal
// condition surfaced to the caller as an error.
func LoadPersonas(path string) ([]Persona, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read persona roster: %w", err)
	}

	var roster personaRoster
	if err := json.Unmarshal(data, &roster); err != nil {
		return nil, fmt.Errorf("failed to parse persona roster: %w", err)
	}

	return roster.Personas, nil
}

// LoadStoreMappings loads the persona -> store mapping configuration,
// keyed by persona id. A missing mapping file is fatal.
func LoadStoreMappings(path string) (map[string]StoreMapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read store mappings: %w", err)
	}

	var file storeMappingFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse store mappings: %w", err)
	}

	return file.Personas, nil
}
