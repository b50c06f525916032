// =============================================================================
// Persona Data Generator - Persona Rollups
// =============================================================================
//
// The persona profile combines all of a persona's store rollups with the
// demographic, professional, and location metadata carried by the roster
// and the store-mapping configuration. Mapping-side values win over
// roster values where both exist (the mapping localizes the persona).
//
// =============================================================================

package rollup

import (
	"sort"
	"strings"

	"github.com/ginjaninja78/persona-datagen/internal/config"
	"github.com/ginjaninja78/persona-datagen/internal/normalize"
)

// =============================================================================
// PROFILE SHAPES
// =============================================================================

// CategorySummary is the compact per-category block on a profile's store
// entry.
type CategorySummary struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	ItemCount  int     `json:"item_count"`
	TotalSpent float64 `json:"total_spent"`
	HasCost    bool    `json:"has_cost"`
}

// StoreSummary is the compact per-store block on a persona profile.
type StoreSummary struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	ItemCount        int               `json:"item_count"`
	TotalSpent       float64           `json:"total_spent"`
	TransactionType  string            `json:"transaction_type"`
	TransactionLabel string            `json:"transaction_label"`
	HasCost          bool              `json:"has_cost"`
	Categories       []CategorySummary `json:"categories"`
}

// Demographics is the profile demographics block.
type Demographics struct {
	AgeGroup      string `json:"age_group"`
	Gender        string `json:"gender"`
	Ethnicity     string `json:"ethnicity"`
	MaritalStatus string `json:"marital_status"`
	FamilyRole    string `json:"family_role"`
}

// Professional is the profile professional block.
type Professional struct {
	Profession      string `json:"profession"`
	Industry        string `json:"industry"`
	ExperienceLevel string `json:"experience_level"`
}

// Location is the profile location block.
type Location struct {
	City    string `json:"city"`
	Region  string `json:"region"`
	Country string `json:"country"`
	Address string `json:"address"`
}

// PersonaStats is the profile aggregate block.
type PersonaStats struct {
	TotalOrders int     `json:"total_orders"`
	TotalSpent  float64 `json:"total_spent"`
	StoresCount int     `json:"stores_count"`
}

// PersonaProfile is the profile.json shape.
type PersonaProfile struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	Initials          string         `json:"initials"`
	Demographics      Demographics   `json:"demographics"`
	Professional      Professional   `json:"professional"`
	Location          Location       `json:"location"`
	PersonalityTraits []string       `json:"personality_traits"`
	Interests         []string       `json:"interests"`
	Summary           string         `json:"summary"`
	Stores            []StoreSummary `json:"stores"`
	Stats             PersonaStats   `json:"stats"`
}

// =============================================================================
// BUILDING
// =============================================================================

// StoreSummaryFrom collapses a store rollup into its profile block.
func StoreSummaryFrom(registry *config.Registry, store StoreRollup) StoreSummary {
	summary := StoreSummary{
		ID:               store.StoreID,
		Name:             store.StoreName,
		ItemCount:        store.Summary.TotalCount,
		TotalSpent:       store.Summary.TotalSpent,
		TransactionType:  store.TransactionType,
		TransactionLabel: store.TransactionLabel,
		HasCost:          store.HasCost,
		Categories:       make([]CategorySummary, 0, len(store.Categories)),
	}

	for _, cat := range store.Categories {
		summary.Categories = append(summary.Categories, CategorySummary{
			ID:         cat.ID,
			Name:       cat.Name,
			Type:       cat.Type,
			ItemCount:  cat.Summary.TotalCount,
			TotalSpent: cat.Summary.TotalSpent,
			HasCost:    cat.HasCost,
		})
	}

	return summary
}

// BuildPersonaProfile combines persona metadata with store summaries.
// Stores are ordered by activity: stable-descending item count, so equal
// counts retain discovery order.
func BuildPersonaProfile(persona config.Persona, mapping config.StoreMapping, stores []StoreSummary) PersonaProfile {
	ordered := make([]StoreSummary, len(stores))
	copy(ordered, stores)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].ItemCount > ordered[j].ItemCount
	})

	var totalOrders int
	var totalSpent float64
	for _, store := range ordered {
		totalOrders += store.ItemCount
		totalSpent += store.TotalSpent
	}

	interests := mapping.Interests
	if len(interests) == 0 {
		interests = persona.Interests
	}

	return PersonaProfile{
		ID:       persona.ID,
		Name:     persona.Name,
		Initials: Initials(persona.Name),
		Demographics: Demographics{
			AgeGroup:      firstNonEmpty(persona.AgeGroup, mapping.AgeGroup),
			Gender:        persona.Gender,
			Ethnicity:     persona.Ethnicity,
			MaritalStatus: persona.MaritalStatus,
			FamilyRole:    firstNonEmpty(persona.FamilyRole, mapping.FamilyRole),
		},
		Professional: Professional{
			Profession:      persona.Profession,
			Industry:        persona.Industry,
			ExperienceLevel: persona.ExperienceLevel,
		},
		Location: Location{
			City:    firstNonEmpty(mapping.Location.City, persona.Location.City),
			Region:  firstNonEmpty(mapping.Location.Region, persona.Location.Region),
			Country: firstNonEmpty(persona.Location.Country, "USA"),
			Address: mapping.Location.Address,
		},
		PersonalityTraits: persona.PersonalityTraits,
		Interests:         interests,
		Summary:           persona.Summary,
		Stores:            ordered,
		Stats: PersonaStats{
			TotalOrders: totalOrders,
			TotalSpent:  normalize.Round2(totalSpent),
			StoresCount: len(ordered),
		},
	}
}

// Initials derives display initials from a full name: first letter of the
// first and last words, or the first two letters of a single-word name.
func Initials(name string) string {
	parts := strings.Fields(name)
	if len(parts) >= 2 {
		return strings.ToUpper(parts[0][:1] + parts[len(parts)-1][:1])
	}
	if len(name) >= 2 {
		return strings.ToUpper(name[:2])
	}
	return strings.ToUpper(name)
}

// firstNonEmpty returns the first non-empty string.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
