// =============================================================================
// Persona Data Generator - Batch Orchestrator
// =============================================================================
//
// This module runs the whole batch: it loads the mandatory global inputs
// (persona roster, store mappings), replaces the output directory, and
// processes every persona into its own output subtree.
//
// CONCURRENCY:
//   Personas are independent units of work - no shared mutable state
//   exists between them, and within a persona the only shared data is the
//   read-only, store-scoped catalog. Personas are therefore processed by
//   a bounded worker pool. Failures isolate per persona: an error or
//   panic in one unit is caught, logged, and treated as empty output for
//   that persona, and the rest of the batch completes.
//
// OUTPUT TREE (fully rebuilt each run):
//   out/index.json
//   out/<persona_id>/profile.json
//   out/<persona_id>/stores/<store_id>/index.json
//   out/<persona_id>/stores/<store_id>/orders/<order_id>.json
//
// =============================================================================

package generate

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ginjaninja78/persona-datagen/internal/catalog"
	"github.com/ginjaninja78/persona-datagen/internal/config"
	"github.com/ginjaninja78/persona-datagen/internal/normalize"
	"github.com/ginjaninja78/persona-datagen/internal/rollup"
	"github.com/ginjaninja78/persona-datagen/pkg/utils"
)

// =============================================================================
// GENERATOR AND RUN REPORT
// =============================================================================

// Generator runs the batch transform.
type Generator struct {
	cfg        *config.MainConfig
	registry   *config.Registry
	dispatcher *normalize.Dispatcher
	logger     *slog.Logger

	// now is the clock for the generated_at stamp; replaceable in tests.
	now func() time.Time
}

// Summary reports the outcome of one batch run.
type Summary struct {
	Personas    int
	Skipped     int
	Failed      int
	TotalOrders int
	TotalStores int
	Elapsed     time.Duration
	OutputDir   string
}

// New creates a Generator.
func New(cfg *config.MainConfig, registry *config.Registry, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{
		cfg:        cfg,
		registry:   registry,
		dispatcher: normalize.NewDispatcher(logger),
		logger:     logger,
		now:        time.Now,
	}
}

// personaResult is what one worker hands back for the global index.
type personaResult struct {
	entry    rollup.IndexEntry
	storeIDs []string
	skipped  bool
	failed   bool
}

// =============================================================================
// RUN
// =============================================================================

// Run executes the batch. A missing roster or mapping file is fatal;
// everything below that degrades per unit.
func (g *Generator) Run() (Summary, error) {
	startTime := g.now()
	runID := uuid.NewString()
	g.logger.Info("starting generation run", slog.String("run_id", runID))

	// =========================================================================
	// STEP 1: LOAD MANDATORY GLOBAL INPUTS
	// =========================================================================

	personas, err := config.LoadPersonas(g.cfg.PersonasFile)
	if err != nil {
		return Summary{}, fmt.Errorf("missing global input: %w", err)
	}

	mappings, err := config.LoadStoreMappings(g.cfg.StoreMappingsFile)
	if err != nil {
		return Summary{}, fmt.Errorf("missing global input: %w", err)
	}

	g.logger.Info("loaded inputs",
		slog.Int("personas", len(personas)),
		slog.Int("mappings", len(mappings)))

	// =========================================================================
	// STEP 2: REPLACE OUTPUT DIRECTORY
	// =========================================================================

	if err := utils.ReplaceDir(g.cfg.OutputDir); err != nil {
		return Summary{}, err
	}

	// =========================================================================
	// STEP 3: PROCESS PERSONAS CONCURRENTLY
	// =========================================================================
	// Each persona is handled by one worker; results flow back over a
	// buffered channel so a slow unit never blocks the others.

	jobs := make(chan config.Persona, len(personas))
	results := make(chan personaResult, len(personas))

	workers := g.cfg.MaxConcurrency
	if workers > len(personas) {
		workers = len(personas)
	}
	if workers < 1 {
		workers = 1
	}

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for persona := range jobs {
				results <- g.processPersonaSafe(persona, mappings)
			}
		}()
	}

	for _, persona := range personas {
		jobs <- persona
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	// =========================================================================
	// STEP 4: COLLECT RESULTS AND WRITE THE GLOBAL INDEX
	// =========================================================================

	summary := Summary{OutputDir: g.cfg.OutputDir}
	var entries []rollup.IndexEntry
	storeIDs := make(map[string]bool)

	for result := range results {
		switch {
		case result.failed:
			summary.Failed++
		case result.skipped:
			summary.Skipped++
		default:
			summary.Personas++
			entries = append(entries, result.entry)
			for _, id := range result.storeIDs {
				storeIDs[id] = true
			}
		}
	}

	index := rollup.BuildGlobalIndex(entries, storeIDs, g.now())
	if err := utils.WriteJSON(filepath.Join(g.cfg.OutputDir, "index.json"), index); err != nil {
		return Summary{}, err
	}

	summary.TotalOrders = index.Stats.TotalOrders
	summary.TotalStores = index.Stats.TotalStores
	summary.Elapsed = time.Since(startTime)

	g.logger.Info("generation complete",
		slog.String("run_id", runID),
		slog.Int("personas", summary.Personas),
		slog.Int("skipped", summary.Skipped),
		slog.Int("failed", summary.Failed),
		slog.Int("orders", summary.TotalOrders),
		slog.Duration("elapsed", summary.Elapsed))

	return summary, nil
}

// =============================================================================
// PER-PERSONA PROCESSING
// =============================================================================

// processPersonaSafe isolates one persona unit: any error or panic is
// logged and reported as a failed unit, never propagated. A failed unit
// is equivalent to one with no data, so whatever it wrote before the
// failure is removed - the tree never carries a partial persona.
func (g *Generator) processPersonaSafe(persona config.Persona, mappings map[string]config.StoreMapping) (result personaResult) {
	personaDir := filepath.Join(g.cfg.OutputDir, persona.ID)

	defer func() {
		if r := recover(); r != nil {
			g.logger.Error("persona unit panicked",
				slog.String("persona", persona.ID),
				slog.Any("panic", r))
			os.RemoveAll(personaDir)
			result = personaResult{failed: true}
		}
	}()

	mapping, ok := mappings[persona.ID]
	if !ok {
		g.logger.Warn("no store mapping for persona", slog.String("persona", persona.ID))
		return personaResult{skipped: true}
	}

	profile, touched, err := g.processPersona(persona, mapping, personaDir)
	if err != nil {
		g.logger.Error("persona unit failed",
			slog.String("persona", persona.ID),
			slog.String("error", err.Error()))
		os.RemoveAll(personaDir)
		return personaResult{failed: true}
	}

	g.logger.Debug("persona complete",
		slog.String("persona", persona.ID),
		slog.Int("orders", profile.Stats.TotalOrders),
		slog.Int("stores", profile.Stats.StoresCount))

	return personaResult{
		entry:    rollup.IndexEntryFrom(profile),
		storeIDs: touched,
	}
}

// processPersona generates one persona's full output subtree and returns
// its profile plus the store ids that produced output.
func (g *Generator) processPersona(persona config.Persona, mapping config.StoreMapping, personaDir string) (rollup.PersonaProfile, []string, error) {
	var storeSummaries []rollup.StoreSummary
	var touched []string

	for _, storeID := range mapping.AllStores() {
		store, produced, err := g.processStore(persona.ID, storeID, personaDir)
		if err != nil {
			return rollup.PersonaProfile{}, nil, err
		}
		if !produced {
			continue
		}
		storeSummaries = append(storeSummaries, rollup.StoreSummaryFrom(g.registry, store))
		touched = append(touched, storeID)
	}

	profile := rollup.BuildPersonaProfile(persona, mapping, storeSummaries)
	if err := utils.WriteJSON(filepath.Join(personaDir, "profile.json"), profile); err != nil {
		return rollup.PersonaProfile{}, nil, err
	}

	return profile, touched, nil
}

// processStore runs every declared category of one store through the
// dispatcher, drops empty results, and writes the store index and the
// per-event detail files. Returns produced == false when no category
// survived (the store then contributes nothing to the persona).
func (g *Generator) processStore(personaID, storeID, personaDir string) (rollup.StoreRollup, bool, error) {
	categories := g.registry.Categories(storeID)
	if len(categories) == 0 {
		g.logger.Warn("store not declared in registry", slog.String("store", storeID))
		return rollup.StoreRollup{}, false, nil
	}

	dataDir := catalog.DataDir(g.cfg.ServersDir, storeID)

	// The catalog is built once per store per run and shared read-only by
	// every category.
	products, err := catalog.Load(dataDir, g.registry.CatalogFiles[storeID])
	if err != nil {
		return rollup.StoreRollup{}, false, err
	}

	var surviving []rollup.CategoryResult
	for _, descriptor := range categories {
		result, err := g.dispatcher.Normalize(normalize.Input{
			StoreID:   storeID,
			PersonaID: personaID,
			DataDir:   dataDir,
			Category:  descriptor,
			Catalog:   products,
			Logger:    g.logger,
		})
		if err != nil {
			// A broken category file degrades to an empty category so the
			// rest of the store still renders.
			g.logger.Warn("category normalization failed",
				slog.String("store", storeID),
				slog.String("category", descriptor.ID),
				slog.String("error", err.Error()))
			continue
		}
		if result.Empty() {
			continue
		}
		surviving = append(surviving, rollup.CategoryResult{Descriptor: descriptor, Result: result})
	}

	if len(surviving) == 0 {
		return rollup.StoreRollup{}, false, nil
	}

	store := rollup.BuildStoreRollup(g.registry, personaID, storeID, surviving)

	storeDir := filepath.Join(personaDir, "stores", storeID)
	if err := utils.WriteJSON(filepath.Join(storeDir, "index.json"), store); err != nil {
		return rollup.StoreRollup{}, false, err
	}

	// Detail files share one directory per store; the synthetic category
	// prefixes on order ids keep the file names collision-free.
	for _, cat := range surviving {
		for _, detail := range cat.Result.Details {
			path := filepath.Join(storeDir, "orders", detail.OrderID+".json")
			if err := utils.WriteJSON(path, detail); err != nil {
				return rollup.StoreRollup{}, false, err
			}
		}
	}

	return store, true, nil
}
