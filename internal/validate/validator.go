// =============================================================================
// Persona Data Generator - Output Validator
// =============================================================================
//
// The validator cross-checks a generated output tree against the source
// store data: for every persona and every store on its profile, the
// per-user row count of each category's source file must equal the item
// count of that category in the store's index.json. A store index that is
// missing while source rows exist is also flagged.
//
// Item-detail side files (order_items and the like) are never counted -
// one source row in the category file equals one normalized record.
//
// =============================================================================

package validate

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/ginjaninja78/persona-datagen/internal/catalog"
	"github.com/ginjaninja78/persona-datagen/internal/config"
	"github.com/ginjaninja78/persona-datagen/internal/tabular"
	"github.com/ginjaninja78/persona-datagen/pkg/utils"
)

// =============================================================================
// REPORT SHAPES
// =============================================================================

// Issue is one detected mismatch between source data and output.
type Issue struct {
	PersonaID  string
	StoreID    string
	CategoryID string
	Detail     string
}

// String renders the issue for report output.
func (i Issue) String() string {
	if i.CategoryID != "" {
		return fmt.Sprintf("%s/%s [%s]: %s", i.PersonaID, i.StoreID, i.CategoryID, i.Detail)
	}
	return fmt.Sprintf("%s/%s: %s", i.PersonaID, i.StoreID, i.Detail)
}

// Report is the outcome of one validation pass.
type Report struct {
	PersonasChecked int
	StoresChecked   int
	Issues          []Issue
}

// Clean reports whether no issues were found.
func (r Report) Clean() bool {
	return len(r.Issues) == 0
}

// =============================================================================
// INDEX/PROFILE PROBES
// =============================================================================
// The validator reads only the slices of the output shapes it compares,
// so it stays decoupled from the full rollup types.

type profileProbe struct {
	Name   string `json:"name"`
	Stores []struct {
		ID string `json:"id"`
	} `json:"stores"`
}

type storeIndexProbe struct {
	Categories []struct {
		ID    string        `json:"id"`
		Items []interface{} `json:"items"`
	} `json:"categories"`
}

// =============================================================================
// VALIDATOR
// =============================================================================

// Validator cross-checks one output tree.
type Validator struct {
	cfg      *config.MainConfig
	registry *config.Registry
	logger   *slog.Logger
}

// New creates a Validator.
func New(cfg *config.MainConfig, registry *config.Registry, logger *slog.Logger) *Validator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Validator{cfg: cfg, registry: registry, logger: logger}
}

// Run walks every persona directory under the output tree and validates
// each store listed on its profile.
func (v *Validator) Run() (Report, error) {
	var report Report

	personaIDs, err := v.listPersonaDirs()
	if err != nil {
		return Report{}, err
	}

	for _, personaID := range personaIDs {
		personaDir := filepath.Join(v.cfg.OutputDir, personaID)

		var profile profileProbe
		if err := utils.ReadJSON(filepath.Join(personaDir, "profile.json"), &profile); err != nil {
			report.Issues = append(report.Issues, Issue{
				PersonaID: personaID,
				Detail:    "missing or unreadable profile.json",
			})
			continue
		}
		report.PersonasChecked++

		for _, store := range profile.Stores {
			report.StoresChecked++
			issues := v.validateStore(personaID, store.ID)
			report.Issues = append(report.Issues, issues...)
		}
	}

	v.logger.Info("validation complete",
		slog.Int("personas", report.PersonasChecked),
		slog.Int("stores", report.StoresChecked),
		slog.Int("issues", len(report.Issues)))

	return report, nil
}

// validateStore compares one store's source row counts with its generated
// index for one persona.
func (v *Validator) validateStore(personaID, storeID string) []Issue {
	categories := v.registry.Categories(storeID)
	if len(categories) == 0 {
		return []Issue{{PersonaID: personaID, StoreID: storeID, Detail: "unknown store"}}
	}

	dataDir := catalog.DataDir(v.cfg.ServersDir, storeID)
	indexPath := filepath.Join(v.cfg.OutputDir, personaID, "stores", storeID, "index.json")

	sourceCounts := make(map[string]int)
	for _, descriptor := range categories {
		sourceCounts[descriptor.ID] = v.countSourceRows(dataDir, descriptor.File, personaID)
	}

	var index storeIndexProbe
	if err := utils.ReadJSON(indexPath, &index); err != nil {
		for _, count := range sourceCounts {
			if count > 0 {
				return []Issue{{
					PersonaID: personaID,
					StoreID:   storeID,
					Detail:    "missing index.json but source rows exist",
				}}
			}
		}
		return nil
	}

	outputCounts := make(map[string]int)
	for _, category := range index.Categories {
		outputCounts[category.ID] = len(category.Items)
	}

	// Compare the union of category ids so both missing and surplus
	// categories surface.
	ids := make(map[string]bool)
	for id := range sourceCounts {
		ids[id] = true
	}
	for id := range outputCounts {
		ids[id] = true
	}

	ordered := make([]string, 0, len(ids))
	for id := range ids {
		ordered = append(ordered, id)
	}
	sort.Strings(ordered)

	var issues []Issue
	for _, id := range ordered {
		source := sourceCounts[id]
		output := outputCounts[id]
		if source != output {
			issues = append(issues, Issue{
				PersonaID:  personaID,
				StoreID:    storeID,
				CategoryID: id,
				Detail:     fmt.Sprintf("source=%d output=%d", source, output),
			})
		}
	}

	return issues
}

// countSourceRows counts a persona's rows in one category source file.
// An absent file counts as zero.
func (v *Validator) countSourceRows(dataDir, stem, personaID string) int {
	table, err := tabular.ReadAny(dataDir, stem)
	if err != nil || !table.Present {
		return 0
	}
	return len(table.FilterBy("user_id", personaID))
}

// listPersonaDirs returns the persona subdirectories of the output tree,
// sorted for a stable report order.
func (v *Validator) listPersonaDirs() ([]string, error) {
	entries, err := os.ReadDir(v.cfg.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read output directory %s: %w", v.cfg.OutputDir, err)
	}

	var ids []string
	for _, entry := range entries {
		if entry.IsDir() {
			ids = append(ids, entry.Name())
		}
	}
	sort.Strings(ids)
	return ids, nil
}
