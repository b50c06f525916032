// =============================================================================
// Persona Data Generator - Wishlists Normalizer Tests
// =============================================================================

package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/persona-datagen/internal/catalog"
	"github.com/ginjaninja78/persona-datagen/internal/config"
)

var wishlistsCategory = config.CategoryDescriptor{
	ID: "wishlists", Name: "Wishlists", Type: "wishlists", File: "wishlists",
}

func TestWishlists(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "wishlists",
		"id,user_id,child_name,product_id,priority,occasion,added_at\n"+
			"w-1,alice,Maya,toy-1,high,birthday,2024-10-01T12:00:00\n")

	products := catalog.Catalog{
		"toy-1": {ID: "toy-1", Name: "Wooden Train Set", Category: "Toys", Price: 120},
	}

	result, err := normalizeWishlists(testInput("toy_store", "alice", dir, wishlistsCategory, products))
	require.NoError(t, err)
	require.Len(t, result.Summaries, 1)

	summary := result.Summaries[0]
	assert.Equal(t, "WISH-w-1", summary.OrderID)
	assert.Equal(t, "Wooden Train Set", summary.DisplayName)
	assert.Equal(t, "For Maya • birthday", summary.Description)

	// Priority doubles as the status; the catalog price is shown but
	// wishlist entries never count toward spend.
	assert.Equal(t, "high", summary.Status)
	assert.Equal(t, 0.0, summary.Total)

	item := result.Details[0].Items[0]
	assert.Equal(t, 120.0, item.Price)
	assert.Equal(t, 0.0, item.Subtotal)
	assert.Equal(t, "Maya", item.ChildName)
	assert.Equal(t, "wishlist", result.Details[0].Type)
}

func TestWishlistsWithoutChildName(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "wishlists",
		"id,user_id,product_id,occasion,added_at\nw-1,alice,toy-9,christmas,2024-10-01\n")

	result, err := normalizeWishlists(testInput("toy_store", "alice", dir, wishlistsCategory, nil))
	require.NoError(t, err)

	summary := result.Summaries[0]
	assert.Equal(t, "christmas", summary.Description)
	assert.Equal(t, "medium", summary.Status)
	assert.Equal(t, "Product toy-9", summary.DisplayName)
}
