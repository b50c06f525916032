// =============================================================================
// Persona Data Generator - Global Index
// =============================================================================
//
// The global index is the top-level directory of all personas plus batch
// totals. It is the only output carrying a generation timestamp; every
// other file is a pure function of the input data.
//
// =============================================================================

package rollup

import (
	"sort"
	"time"
)

// IndexEntry is the compact per-persona block on the global index.
type IndexEntry struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Initials    string  `json:"initials"`
	Profession  string  `json:"profession"`
	Industry    string  `json:"industry"`
	City        string  `json:"city"`
	Region      string  `json:"region"`
	AgeGroup    string  `json:"age_group"`
	TotalOrders int     `json:"total_orders"`
	TotalSpent  float64 `json:"total_spent"`
}

// GlobalStats is the index aggregate block. TotalStores counts distinct
// store ids touched by any persona.
type GlobalStats struct {
	TotalPersonas int `json:"total_personas"`
	TotalOrders   int `json:"total_orders"`
	TotalStores   int `json:"total_stores"`
}

// GlobalIndex is the index.json shape.
type GlobalIndex struct {
	Personas    []IndexEntry `json:"personas"`
	Stats       GlobalStats  `json:"stats"`
	GeneratedAt string       `json:"generated_at"`
}

// IndexEntryFrom collapses a profile into its index block.
func IndexEntryFrom(profile PersonaProfile) IndexEntry {
	return IndexEntry{
		ID:          profile.ID,
		Name:        profile.Name,
		Initials:    profile.Initials,
		Profession:  profile.Professional.Profession,
		Industry:    profile.Professional.Industry,
		City:        profile.Location.City,
		Region:      profile.Location.Region,
		AgeGroup:    profile.Demographics.AgeGroup,
		TotalOrders: profile.Stats.TotalOrders,
		TotalSpent:  profile.Stats.TotalSpent,
	}
}

// BuildGlobalIndex assembles the top-level directory. Personas are
// ordered ascending by display name; store ids are deduplicated across
// personas for the global store count.
func BuildGlobalIndex(entries []IndexEntry, storeIDs map[string]bool, generatedAt time.Time) GlobalIndex {
	ordered := make([]IndexEntry, len(entries))
	copy(ordered, entries)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Name < ordered[j].Name
	})

	var totalOrders int
	for _, entry := range ordered {
		totalOrders += entry.TotalOrders
	}

	return GlobalIndex{
		Personas: ordered,
		Stats: GlobalStats{
			TotalPersonas: len(ordered),
			TotalOrders:   totalOrders,
			TotalStores:   len(storeIDs),
		},
		GeneratedAt: generatedAt.Format(time.RFC3339),
	}
}
