// =============================================================================
// Persona Data Generator - Subscription Normalizer Tests
// =============================================================================

package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/persona-datagen/internal/config"
)

func TestRowSubscriptions(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "subscriptions",
		"id,user_id,plan_name,frequency,price_per_delivery,status,created_at,arrangement_preference,recipient_name,next_delivery_date\n"+
			"sub-1,alice,Monthly Blooms,monthly,39.99,active,2024-01-15,Roses,Mom,2024-08-01\n")

	category := config.CategoryDescriptor{ID: "subscriptions", Type: "subscriptions", File: "subscriptions"}
	result, err := normalizeRowSubscriptions(testInput("florist", "alice", dir, category, nil))
	require.NoError(t, err)
	require.Len(t, result.Summaries, 1)

	summary := result.Summaries[0]
	assert.Equal(t, "SUB-sub-1", summary.OrderID)
	assert.Equal(t, "Monthly Blooms", summary.DisplayName)
	assert.Equal(t, "Monthly · Roses", summary.Description)
	assert.Equal(t, 39.99, summary.Total)

	detail := result.Details[0]
	assert.Equal(t, "subscription", detail.Type)
	require.Len(t, detail.Items, 1)
	assert.Equal(t, "plan-sub-1", detail.Items[0].ProductID)
	assert.Equal(t, "Monthly delivery - Roses", detail.Items[0].Description)
	assert.Equal(t, "Mom", detail.Items[0].Recipient)
	assert.Equal(t, "2024-08-01", detail.Items[0].NextDelivery)
}

func TestPlanSubscriptions(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "user_subscriptions",
		"id,user_id,plan_id,bean_preference,status,created_at,next_delivery\n"+
			"us-1,alice,plan-a,dark roast,active,2024-02-01,2024-08-15\n")
	writeCSV(t, dir, "subscriptions",
		"id,name,price_per_shipment,frequency,description\n"+
			"plan-a,Explorer Box,24.50,every 2 weeks,Rotating single origins\n")

	category := config.CategoryDescriptor{ID: "subscriptions", Type: "subscriptions", File: "user_subscriptions"}
	result, err := normalizePlanSubscriptions(testInput("coffee_roaster", "alice", dir, category, nil))
	require.NoError(t, err)
	require.Len(t, result.Summaries, 1)

	summary := result.Summaries[0]
	assert.Equal(t, "CSUB-us-1", summary.OrderID)
	assert.Equal(t, "Explorer Box", summary.DisplayName)
	assert.Equal(t, "Every 2 Weeks · dark roast", summary.Description)
	assert.Equal(t, 24.50, summary.Total)

	item := result.Details[0].Items[0]
	assert.Equal(t, "plan-plan-a", item.ProductID)
	assert.Equal(t, "dark roast", item.BeanPreference)
	assert.Equal(t, "every 2 weeks", item.Frequency)
	assert.Equal(t, "2024-08-15", item.NextDelivery)
}

func TestPlanSubscriptionsMissingPlan(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "user_subscriptions",
		"id,user_id,plan_id,created_at\nus-1,alice,plan-ghost,2024-02-01\n")

	category := config.CategoryDescriptor{ID: "subscriptions", Type: "subscriptions", File: "user_subscriptions"}
	result, err := normalizePlanSubscriptions(testInput("coffee_roaster", "alice", dir, category, nil))
	require.NoError(t, err)

	// A missing plan row leaves a synthesized name and zero price.
	assert.Equal(t, "Plan plan-ghost", result.Summaries[0].DisplayName)
	assert.Equal(t, 0.0, result.Summaries[0].Total)
	assert.Equal(t, "active", result.Summaries[0].Status)
}
