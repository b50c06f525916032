// =============================================================================
// Persona Data Generator - Category Dispatcher
// =============================================================================
//
// The dispatcher routes a category declaration to the normalizer strategy
// that understands the store's raw schema. Most type tags map to a single
// strategy, but some tags are modeled differently by different stores
// (florist subscriptions carry their price on the row, coffee roaster
// subscriptions join a plan table; florist orders embed their items as
// JSON while every other orders store explodes them into a companion
// file). Those cases are dispatched on the composite (store id, type tag)
// key.
//
// The table is closed and explicit: adding a store/category combination
// means adding an entry here, not registering a plugin. An unrecognized
// type tag yields an empty result and a warning - a visible gap, not a
// crash and not silence.
//
// =============================================================================

package normalize

import (
	"log/slog"

	"github.com/ginjaninja78/persona-datagen/internal/catalog"
	"github.com/ginjaninja78/persona-datagen/internal/config"
)

// =============================================================================
// NORMALIZER CONTRACT
// =============================================================================

// Input carries everything one normalizer run needs. The catalog is the
// store-wide read-only product mapping, built once per store per run.
type Input struct {
	StoreID   string
	PersonaID string

	// DataDir is the store's data directory.
	DataDir string

	// Category is the declaration being normalized; its File (and
	// ItemsFile, for exploded orders) name the source tables.
	Category config.CategoryDescriptor

	Catalog catalog.Catalog
	Logger  *slog.Logger
}

// Func is one normalizer strategy: filtered raw rows in, parallel
// canonical summaries and details out.
type Func func(Input) (Result, error)

// =============================================================================
// DISPATCHER
// =============================================================================

// dispatchKey selects a strategy. StoreID is empty for strategies shared
// by every store declaring the type.
type dispatchKey struct {
	StoreID string
	Type    string
}

// Dispatcher maps category declarations to normalizer strategies.
type Dispatcher struct {
	table  map[dispatchKey]Func
	logger *slog.Logger
}

// NewDispatcher builds the closed strategy table.
func NewDispatcher(logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}

	return &Dispatcher{
		logger: logger,
		table: map[dispatchKey]Func{
			// Store-specific schemas first: the same declared type, a
			// structurally different normalization.
			{StoreID: "florist", Type: "orders"}:               normalizeEmbeddedOrders,
			{StoreID: "florist", Type: "subscriptions"}:        normalizeRowSubscriptions,
			{StoreID: "coffee_roaster", Type: "subscriptions"}: normalizePlanSubscriptions,

			// Shared strategies keyed on the type tag alone.
			{Type: "orders"}:      normalizeExplodedOrders,
			{Type: "purchases"}:   normalizePurchases,
			{Type: "bookings"}:    normalizeBookings,
			{Type: "tours"}:       normalizeTours,
			{Type: "saved"}:       normalizeSavedProperties,
			{Type: "inquiries"}:   normalizeInquiries,
			{Type: "test_drives"}: normalizeTestDrives,
			{Type: "grooming"}:    normalizeGrooming,
			{Type: "pets"}:        normalizePetProfiles,
			{Type: "preorders"}:   normalizePreorders,
			{Type: "wishlists"}:   normalizeWishlists,
		},
	}
}

// Normalize routes one category to its strategy and runs it. The lookup
// tries the composite (store, type) key first, then the shared type key.
// Unknown type tags log a warning and return an empty result.
func (d *Dispatcher) Normalize(in Input) (Result, error) {
	if fn, ok := d.table[dispatchKey{StoreID: in.StoreID, Type: in.Category.Type}]; ok {
		return fn(in)
	}
	if fn, ok := d.table[dispatchKey{Type: in.Category.Type}]; ok {
		return fn(in)
	}

	d.logger.Warn("no normalizer for category type",
		slog.String("store", in.StoreID),
		slog.String("type", in.Category.Type))
	return Result{}, nil
}
