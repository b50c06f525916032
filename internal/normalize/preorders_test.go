// =============================================================================
// Persona Data Generator - Preorders Normalizer Tests
// =============================================================================

package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/persona-datagen/internal/config"
)

var preordersCategory = config.CategoryDescriptor{
	ID: "preorders", Name: "Custom Cake Preorders", Type: "preorders", File: "preorders",
}

func TestPreordersCustomCake(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "preorders",
		"id,user_id,items,total_price,status,created_at,pickup_date,pickup_time,special_instructions\n"+
			`pre-1,alice,"[{""type"": ""custom_cake"", ""price"": 85, ""quantity"": 1, ""options"": {""flavor"": ""chocolate"", ""size"": ""8-inch"", ""frosting"": ""vanilla"", ""filling"": ""raspberry"", ""decoration"": ""sprinkles""}}]",85.00,pending,2024-09-01,2024-09-05,10:00,Ring twice`+"\n")

	result, err := normalizePreorders(testInput("bakery", "alice", dir, preordersCategory, nil))
	require.NoError(t, err)
	require.Len(t, result.Summaries, 1)

	summary := result.Summaries[0]
	assert.Equal(t, "PRE-pre-1", summary.OrderID)
	assert.Equal(t, 85.00, summary.Total)
	assert.Equal(t, 1, summary.ItemCount)
	assert.Equal(t, "Custom chocolate 8-inch Cake", summary.ItemPreview)

	detail := result.Details[0]
	assert.Equal(t, "preorder", detail.Type)
	assert.Equal(t, "2024-09-05", detail.PickupDate)
	assert.Equal(t, "Ring twice", detail.SpecialInstructions)

	item := detail.Items[0]
	assert.Equal(t, "Custom chocolate 8-inch Cake", item.Name)
	assert.Equal(t, "vanilla frosting, raspberry filling, sprinkles decoration", item.Description)
	assert.Equal(t, 85.0, item.Subtotal)
}

func TestPreordersNamedItems(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "preorders",
		"id,user_id,items,total_price,status,created_at\n"+
			`pre-1,alice,"[{""name"": ""Dozen Bagels"", ""price"": 14.5, ""quantity"": 12}, {""name"": ""Rye Loaf"", ""price"": 6}]",20.50,ready,2024-09-02`+"\n")

	result, err := normalizePreorders(testInput("bakery", "alice", dir, preordersCategory, nil))
	require.NoError(t, err)

	detail := result.Details[0]
	require.Len(t, detail.Items, 2)
	assert.Equal(t, "Dozen Bagels", detail.Items[0].Name)
	assert.Equal(t, 12, detail.Items[0].Quantity)
	assert.Equal(t, 6.0, detail.Items[1].Price)
	assert.Equal(t, "Dozen Bagels, Rye Loaf", result.Summaries[0].ItemPreview)
}

func TestPreordersUnparsablePayloadFallback(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "preorders",
		"id,user_id,items,total_price,status,created_at,order_type\n"+
			"pre-1,alice,not-json,45.00,pending,2024-09-01,cake\n")

	result, err := normalizePreorders(testInput("bakery", "alice", dir, preordersCategory, nil))
	require.NoError(t, err)

	// One fallback line at the order total keeps spend reconciled, but
	// the preview never shows the synthesized line.
	summary := result.Summaries[0]
	assert.Equal(t, 45.00, summary.Total)
	assert.Equal(t, 1, summary.ItemCount)
	assert.Equal(t, "", summary.ItemPreview)

	item := result.Details[0].Items[0]
	assert.Equal(t, "Custom cake", item.Name)
	assert.Equal(t, 45.00, item.Price)
	assert.Equal(t, 45.00, item.Subtotal)
}
