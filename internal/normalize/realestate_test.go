// =============================================================================
// Persona Data Generator - Real Estate Normalizer Tests
// =============================================================================

package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/persona-datagen/internal/catalog"
	"github.com/ginjaninja78/persona-datagen/internal/config"
)

var (
	toursCategory = config.CategoryDescriptor{
		ID: "tours", Name: "Scheduled Tours", Type: "tours", File: "scheduled_tours", Primary: true,
	}
	savedCategory = config.CategoryDescriptor{
		ID: "saved", Name: "Saved Properties", Type: "saved", File: "saved_properties",
	}
)

func zillowCatalog() catalog.Catalog {
	return catalog.Catalog{
		"prop-1": {ID: "prop-1", Name: "12 Maple Ave, Austin TX", Price: 1250000},
	}
}

func TestTours(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "scheduled_tours",
		"id,user_id,property_id,scheduled_time,status,notes\n"+
			"t-1,alice,prop-1,2024-06-05T14:00:00,scheduled,Bring checklist\n")

	result, err := normalizeTours(testInput("zillow", "alice", dir, toursCategory, zillowCatalog()))
	require.NoError(t, err)
	require.Len(t, result.Summaries, 1)

	summary := result.Summaries[0]
	assert.Equal(t, "TOUR-t-1", summary.OrderID)
	assert.Equal(t, "12 Maple Ave, Austin TX", summary.DisplayName)
	assert.Equal(t, "$1,250,000", summary.Description)
	assert.Equal(t, 0.0, summary.Total)
	assert.Equal(t, "2024-06-05T14:00:00", summary.CreatedAt)

	detail := result.Details[0]
	assert.Equal(t, "tour", detail.Type)
	assert.Equal(t, "Bring checklist", detail.Notes)

	// The listing price is display-only; the subtotal never counts.
	assert.Equal(t, 1250000.0, detail.Items[0].Price)
	assert.Equal(t, 0.0, detail.Items[0].Subtotal)
	assert.Equal(t, 0.0, detail.Total)
}

func TestToursDatePairFormat(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "scheduled_tours",
		"id,user_id,property_id,tour_date,tour_time\nt-1,alice,prop-1,2024-06-05,14:30\n")

	result, err := normalizeTours(testInput("zillow", "alice", dir, toursCategory, zillowCatalog()))
	require.NoError(t, err)

	// The date + time pair combines into an ISO-style stamp, and the
	// missing status falls back to scheduled.
	assert.Equal(t, "2024-06-05T14:30:00", result.Summaries[0].CreatedAt)
	assert.Equal(t, "scheduled", result.Summaries[0].Status)
}

func TestToursUnknownProperty(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "scheduled_tours",
		"id,user_id,property_id,scheduled_time\nt-1,alice,prop-9,2024-06-05T14:00:00\n")

	result, err := normalizeTours(testInput("zillow", "alice", dir, toursCategory, nil))
	require.NoError(t, err)

	assert.Equal(t, "Property prop-9", result.Summaries[0].DisplayName)
	assert.Equal(t, "", result.Summaries[0].Description)
}

func TestSavedProperties(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "saved_properties",
		"id,user_id,property_id,saved_at,notes\ns-1,alice,prop-1,2024-06-01T09:00:00,Dream house\n")

	result, err := normalizeSavedProperties(testInput("zillow", "alice", dir, savedCategory, zillowCatalog()))
	require.NoError(t, err)
	require.Len(t, result.Summaries, 1)

	summary := result.Summaries[0]
	assert.Equal(t, "SAVED-s-1", summary.OrderID)
	assert.Equal(t, "saved", summary.Status)
	assert.Equal(t, 0.0, summary.Total)

	detail := result.Details[0]
	assert.Equal(t, "saved_property", detail.Type)
	assert.Equal(t, "Dream house", detail.Notes)
	assert.Equal(t, 0.0, detail.Total)
}
