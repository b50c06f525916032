// =============================================================================
// Persona Data Generator - Dispatcher Tests
// =============================================================================

package normalize

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/persona-datagen/internal/config"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDispatcherCompositeKeyWins(t *testing.T) {
	dir := t.TempDir()

	// The florist subscription schema carries its price on the row; the
	// shared strategy would look for a plan table instead.
	writeCSV(t, dir, "subscriptions",
		"id,user_id,plan_name,frequency,price_per_delivery,created_at\n"+
			"sub-1,alice,Monthly Blooms,monthly,39.99,2024-01-15\n")

	d := NewDispatcher(discardLogger())
	category := config.CategoryDescriptor{ID: "subscriptions", Type: "subscriptions", File: "subscriptions"}

	result, err := d.Normalize(testInput("florist", "alice", dir, category, nil))
	require.NoError(t, err)
	require.Len(t, result.Summaries, 1)
	assert.Equal(t, "SUB-sub-1", result.Summaries[0].OrderID)
	assert.Equal(t, 39.99, result.Summaries[0].Total)
}

func TestDispatcherSharedKeyFallback(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "purchases",
		"id,user_id,product_id,quantity,total,purchased_at\npur-1,alice,p-1,1,9.99,2024-01-01\n")

	d := NewDispatcher(discardLogger())
	category := config.CategoryDescriptor{ID: "purchases", Type: "purchases", File: "purchases"}

	result, err := d.Normalize(testInput("pharmacy", "alice", dir, category, nil))
	require.NoError(t, err)
	require.Len(t, result.Summaries, 1)
	assert.Equal(t, "PUR-pur-1", result.Summaries[0].OrderID)
}

func TestDispatcherUnknownTypeYieldsEmpty(t *testing.T) {
	d := NewDispatcher(discardLogger())
	category := config.CategoryDescriptor{ID: "mystery", Type: "teleportations", File: "teleportations"}

	result, err := d.Normalize(testInput("some_store", "alice", t.TempDir(), category, nil))
	require.NoError(t, err)
	assert.True(t, result.Empty())
}
