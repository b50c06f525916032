// =============================================================================
// Persona Data Generator - Global Index Tests
// =============================================================================

package rollup

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexEntryFrom(t *testing.T) {
	profile := PersonaProfile{
		ID:           "alice",
		Name:         "Alice Chen",
		Initials:     "AC",
		Professional: Professional{Profession: "Engineer", Industry: "Software"},
		Location:     Location{City: "Seattle", Region: "WA"},
		Demographics: Demographics{AgeGroup: "30-39"},
		Stats:        PersonaStats{TotalOrders: 12, TotalSpent: 340.25},
	}

	entry := IndexEntryFrom(profile)
	assert.Equal(t, "alice", entry.ID)
	assert.Equal(t, "AC", entry.Initials)
	assert.Equal(t, "Seattle", entry.City)
	assert.Equal(t, 12, entry.TotalOrders)
	assert.Equal(t, 340.25, entry.TotalSpent)
}

func TestBuildGlobalIndex(t *testing.T) {
	entries := []IndexEntry{
		{ID: "carol", Name: "Carol Diaz", TotalOrders: 5},
		{ID: "alice", Name: "Alice Chen", TotalOrders: 12},
		{ID: "bob", Name: "Bob Adams", TotalOrders: 3},
	}
	storeIDs := map[string]bool{"amazon": true, "bakery": true, "zillow": true}
	generatedAt := time.Date(2024, 10, 1, 12, 0, 0, 0, time.UTC)

	index := BuildGlobalIndex(entries, storeIDs, generatedAt)

	// Personas are ordered ascending by display name.
	require.Len(t, index.Personas, 3)
	assert.Equal(t, "Alice Chen", index.Personas[0].Name)
	assert.Equal(t, "Bob Adams", index.Personas[1].Name)
	assert.Equal(t, "Carol Diaz", index.Personas[2].Name)

	assert.Equal(t, 3, index.Stats.TotalPersonas)
	assert.Equal(t, 20, index.Stats.TotalOrders)
	assert.Equal(t, 3, index.Stats.TotalStores)
	assert.Equal(t, "2024-10-01T12:00:00Z", index.GeneratedAt)
}

func TestBuildGlobalIndexEmpty(t *testing.T) {
	index := BuildGlobalIndex(nil, nil, time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC))

	assert.Empty(t, index.Personas)
	assert.Equal(t, 0, index.Stats.TotalPersonas)
	assert.Equal(t, 0, index.Stats.TotalStores)
}
