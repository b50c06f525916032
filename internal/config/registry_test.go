// =============================================================================
// Persona Data Generator - Store Registry Tests
// =============================================================================

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistryValidates(t *testing.T) {
	require.NoError(t, DefaultRegistry().Validate())
}

func TestStoreNameFallsBackToID(t *testing.T) {
	registry := DefaultRegistry()

	assert.Equal(t, "Coffee Roaster", registry.StoreName("coffee_roaster"))
	assert.Equal(t, "mystery_mart", registry.StoreName("mystery_mart"))
}

func TestLabelFallsBackToOrders(t *testing.T) {
	registry := DefaultRegistry()

	assert.Equal(t, "tours", registry.Label("tours").Plural)
	assert.False(t, registry.Label("tours").HasCost)
	assert.Equal(t, "orders", registry.Label("made_up_type").Plural)
}

func TestCategoriesForUnknownStore(t *testing.T) {
	assert.Empty(t, DefaultRegistry().Categories("mystery_mart"))
}

func TestPrimaryCategory(t *testing.T) {
	registry := DefaultRegistry()

	primary, ok := registry.PrimaryCategory("pet_store")
	require.True(t, ok)
	assert.Equal(t, "purchases", primary.ID)
	assert.True(t, primary.Primary)

	_, ok = registry.PrimaryCategory("mystery_mart")
	assert.False(t, ok)
}

func TestPrimaryCategoryFallsBackToFirst(t *testing.T) {
	registry := &Registry{
		StoreCategories: map[string][]CategoryDescriptor{
			"shop": {
				{ID: "a", Type: "orders"},
				{ID: "b", Type: "wishlists"},
			},
		},
	}

	primary, ok := registry.PrimaryCategory("shop")
	require.True(t, ok)
	assert.Equal(t, "a", primary.ID)
}

func TestValidateRejectsMultiplePrimaries(t *testing.T) {
	registry := &Registry{
		StoreCategories: map[string][]CategoryDescriptor{
			"shop": {
				{ID: "a", Primary: true},
				{ID: "b", Primary: true},
			},
		},
	}

	assert.ErrorContains(t, registry.Validate(), "exactly one primary")
}

func TestValidateRejectsDuplicateCategoryIDs(t *testing.T) {
	registry := &Registry{
		StoreCategories: map[string][]CategoryDescriptor{
			"shop": {
				{ID: "a", Primary: true},
				{ID: "a"},
			},
		},
	}

	assert.ErrorContains(t, registry.Validate(), "duplicate category id")
}

func TestDefaultRegistryStoreShapes(t *testing.T) {
	registry := DefaultRegistry()

	// Orders-based stores share the exploded orders declaration.
	amazon := registry.Categories("amazon")
	require.Len(t, amazon, 1)
	assert.Equal(t, "order_items", amazon[0].ItemsFile)

	// Multi-category stores keep their declaration order.
	petStore := registry.Categories("pet_store")
	require.Len(t, petStore, 3)
	assert.Equal(t, "grooming_appointments", petStore[1].File)
	assert.Equal(t, "pets", petStore[2].Type)

	// The coffee roaster subscription category reads the per-user file,
	// not the plan table.
	coffee := registry.Categories("coffee_roaster")
	require.Len(t, coffee, 2)
	assert.Equal(t, "user_subscriptions", coffee[1].File)
}

func TestDefaultRegistryCatalogSpecs(t *testing.T) {
	registry := DefaultRegistry()

	amazon := registry.CatalogFiles["amazon"]
	require.Len(t, amazon, 1)
	assert.Equal(t, "asin", amazon[0].IDField)
	assert.Equal(t, "title", amazon[0].NameField)

	pcParts := registry.CatalogFiles["pc_parts"]
	require.Len(t, pcParts, 7)
	for _, spec := range pcParts {
		assert.Equal(t, spec.File, spec.Category)
	}
}

func TestLoadRegistryEmptyPathReturnsDefault(t *testing.T) {
	registry, err := LoadRegistry("")
	require.NoError(t, err)
	assert.Equal(t, "Zillow", registry.StoreName("zillow"))
}
