// =============================================================================
// Persona Data Generator - Bookings Normalizer Tests
// =============================================================================

package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/persona-datagen/internal/catalog"
	"github.com/ginjaninja78/persona-datagen/internal/config"
)

var bookingsCategory = config.CategoryDescriptor{
	ID: "bookings", Name: "Bookings", Type: "bookings", File: "bookings", Primary: true,
}

func TestBookings(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "bookings",
		"id,user_id,showtime_id,seats,total_price,status,created_at,confirmation_code\n"+
			"bk-1,alice,st-1,\"A1,A2,A3\",45.00,confirmed,2024-05-01T12:00:00,CONF-88\n")
	writeCSV(t, dir, "showtimes",
		"id,movie_id,start_time,theater\nst-1,mv-1,2024-05-03T19:30:00,Screen 4\n")

	products := catalog.Catalog{"mv-1": {ID: "mv-1", Name: "Dune Part Two"}}

	result, err := normalizeBookings(testInput("movie_theater", "alice", dir, bookingsCategory, products))
	require.NoError(t, err)
	require.Len(t, result.Summaries, 1)

	summary := result.Summaries[0]
	assert.Equal(t, "bk-1", summary.OrderID)
	assert.Equal(t, "Dune Part Two", summary.DisplayName)
	assert.Equal(t, "3 seats • 2024-05-03T19:30:00", summary.Description)
	assert.Equal(t, 45.00, summary.Total)
	assert.Equal(t, 3, summary.ItemCount)

	detail := result.Details[0]
	assert.Equal(t, "booking", detail.Type)
	assert.Equal(t, "CONF-88", detail.ConfirmationCode)
	require.Len(t, detail.Items, 1)
	assert.Equal(t, 15.00, detail.Items[0].Price)
	assert.Equal(t, "A1,A2,A3", detail.Items[0].Seats)
	assert.Equal(t, "Screen 4", detail.Items[0].Theater)
}

func TestBookingsSingleSeatDescription(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "bookings",
		"id,user_id,showtime_id,seats,total_price,status,created_at\n"+
			"bk-1,alice,st-1,B5,15.00,confirmed,2024-05-01\n")
	writeCSV(t, dir, "showtimes", "id,movie_id,start_time\nst-1,mv-1,2024-05-03T19:30:00\n")

	result, err := normalizeBookings(testInput("movie_theater", "alice", dir, bookingsCategory, nil))
	require.NoError(t, err)
	assert.Equal(t, "1 seat • 2024-05-03T19:30:00", result.Summaries[0].Description)
	assert.Equal(t, 1, result.Summaries[0].ItemCount)
}

func TestBookingsMissingShowtimeFallsBack(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "bookings",
		"id,user_id,showtime_id,seats,total_price,created_at\n"+
			"bk-1,alice,st-missing,C1,12.00,2024-05-01\n")

	result, err := normalizeBookings(testInput("movie_theater", "alice", dir, bookingsCategory, nil))
	require.NoError(t, err)

	// No showtime join and no catalog entry leaves the generic name and
	// the default status.
	assert.Equal(t, "Movie", result.Summaries[0].DisplayName)
	assert.Equal(t, "confirmed", result.Summaries[0].Status)
	assert.Equal(t, "1 seat", result.Summaries[0].Description)
}
