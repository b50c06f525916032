// =============================================================================
// Persona Data Generator - Store Rollups
// =============================================================================
//
// This module layers per-record summaries into per-category and per-store
// statistics. Categories that yield zero summaries are dropped entirely -
// an empty category is never emitted. Per-category and store-level stats
// cover count, 2-decimal spend, and a first/last activity date range.
//
// Date ranges use lexicographic min/max over the non-empty date strings
// truncated to their first 10 characters; every source date is
// ISO-8601-prefixed, so string order is date order.
//
// =============================================================================

package rollup

import (
	"sort"

	"github.com/ginjaninja78/persona-datagen/internal/config"
	"github.com/ginjaninja78/persona-datagen/internal/normalize"
)

// =============================================================================
// ROLLUP SHAPES
// =============================================================================

// Stats is the aggregate block shared by category and store rollups.
type Stats struct {
	TotalCount int     `json:"total_count"`
	TotalSpent float64 `json:"total_spent"`
	FirstDate  string  `json:"first_date"`
	LastDate   string  `json:"last_date"`
}

// CategoryRollup is one category's aggregated view inside a store index.
type CategoryRollup struct {
	ID      string              `json:"id"`
	Name    string              `json:"name"`
	Type    string              `json:"type"`
	Label   string              `json:"label"`
	HasCost bool                `json:"has_cost"`
	Summary Stats               `json:"summary"`
	Items   []normalize.Summary `json:"items"`
}

// StoreRollup is the store index.json shape: store-level stats plus the
// per-category breakdown. Items is the flattened summary list kept at the
// top level only when exactly one category survived, for backward
// compatibility with single-category consumers.
type StoreRollup struct {
	PersonaID        string              `json:"persona_id"`
	StoreID          string              `json:"store_id"`
	StoreName        string              `json:"store_name"`
	TransactionType  string              `json:"transaction_type"`
	TransactionLabel string              `json:"transaction_label"`
	HasCost          bool                `json:"has_cost"`
	Summary          Stats               `json:"summary"`
	Items            []normalize.Summary `json:"items"`
	Categories       []CategoryRollup    `json:"categories"`
}

// CategoryResult pairs a surviving category declaration with its
// normalized output.
type CategoryResult struct {
	Descriptor config.CategoryDescriptor
	Result     normalize.Result
}

// =============================================================================
// BUILDING
// =============================================================================

// BuildCategoryRollup aggregates one category's summaries. The caller
// guarantees the category is non-empty.
func BuildCategoryRollup(registry *config.Registry, descriptor config.CategoryDescriptor, summaries []normalize.Summary) CategoryRollup {
	label := registry.Label(descriptor.Type)

	items := make([]normalize.Summary, len(summaries))
	copy(items, summaries)
	sortSummariesDesc(items)

	return CategoryRollup{
		ID:      descriptor.ID,
		Name:    descriptor.Name,
		Type:    descriptor.Type,
		Label:   label.Plural,
		HasCost: label.HasCost,
		Summary: buildStats(summaries),
		Items:   items,
	}
}

// BuildStoreRollup aggregates the surviving categories of one store.
// The transaction type/label/has_cost come from the store's primary
// category declaration regardless of which categories survived.
func BuildStoreRollup(registry *config.Registry, personaID, storeID string, categories []CategoryResult) StoreRollup {
	primary, _ := registry.PrimaryCategory(storeID)
	primaryLabel := registry.Label(primary.Type)

	var all []normalize.Summary
	categoryRollups := make([]CategoryRollup, 0, len(categories))
	for _, cat := range categories {
		categoryRollups = append(categoryRollups, BuildCategoryRollup(registry, cat.Descriptor, cat.Result.Summaries))
		all = append(all, cat.Result.Summaries...)
	}

	rollup := StoreRollup{
		PersonaID:        personaID,
		StoreID:          storeID,
		StoreName:        registry.StoreName(storeID),
		TransactionType:  primary.Type,
		TransactionLabel: primaryLabel.Plural,
		HasCost:          primaryLabel.HasCost,
		Summary:          buildStats(all),
		Items:            []normalize.Summary{},
		Categories:       categoryRollups,
	}

	if len(categoryRollups) == 1 {
		flattened := make([]normalize.Summary, len(all))
		copy(flattened, all)
		sortSummariesDesc(flattened)
		rollup.Items = flattened
	}

	return rollup
}

// buildStats computes count, rounded spend, and the date range for a set
// of summaries.
func buildStats(summaries []normalize.Summary) Stats {
	stats := Stats{TotalCount: len(summaries)}

	var spent float64
	var dates []string
	for _, s := range summaries {
		spent += s.Total
		if s.CreatedAt != "" {
			dates = append(dates, s.CreatedAt)
		}
	}
	stats.TotalSpent = normalize.Round2(spent)

	if len(dates) > 0 {
		sort.Strings(dates)
		stats.FirstDate = truncateDate(dates[0])
		stats.LastDate = truncateDate(dates[len(dates)-1])
	}

	return stats
}

// truncateDate keeps the ISO date prefix of a timestamp.
func truncateDate(date string) string {
	if len(date) > 10 {
		return date[:10]
	}
	return date
}

// sortSummariesDesc orders summaries newest-first. The sort is stable so
// equal dates retain discovery order.
func sortSummariesDesc(summaries []normalize.Summary) {
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].CreatedAt > summaries[j].CreatedAt
	})
}
