// =============================================================================
// Persona Data Generator - Bookings Normalizer
// =============================================================================
//
// Bookings (movie theater) resolve their catalog entity through an
// intermediate showtime table: booking -> showtime -> movie. The seat list
// is a comma-separated string; the seat count drives both the item count
// and the per-seat price.
//
// =============================================================================

package normalize

import (
	"fmt"
	"strings"

	"github.com/ginjaninja78/persona-datagen/internal/tabular"
)

// normalizeBookings handles seat bookings joined through showtimes.
// Counts toward spend.
func normalizeBookings(in Input) (Result, error) {
	bookings, err := tabular.ReadAny(in.DataDir, in.Category.File)
	if err != nil {
		return Result{}, err
	}
	if !bookings.Present {
		return Result{}, nil
	}

	showtimeRows, err := tabular.ReadAny(in.DataDir, "showtimes")
	if err != nil {
		return Result{}, err
	}
	showtimes := showtimeRows.IndexBy("id")

	var result Result
	for _, booking := range bookings.FilterBy("user_id", in.PersonaID) {
		bookingID := booking["id"]
		showtime := showtimes[booking["showtime_id"]]
		movieID := showtime["movie_id"]

		createdAt := booking["created_at"]
		total := Round2(booking.Float("total_price"))
		status := booking.FirstOr("confirmed", "status")
		seats := booking["seats"]

		seatCount := 1
		if seats != "" {
			seatCount = len(strings.Split(seats, ","))
		}

		movieName := in.Catalog.NameOr(movieID, firstNonEmpty(showtime["movie_title"], "Movie"))
		startTime := showtime["start_time"]

		description := fmt.Sprintf("%d %s", seatCount, pluralize("seat", seatCount))
		if startTime != "" {
			description = fmt.Sprintf("%s • %s", description, startTime)
		}

		perSeat := total
		if seatCount > 0 {
			perSeat = Round2(total / float64(seatCount))
		}

		result.Summaries = append(result.Summaries, Summary{
			OrderID:     bookingID,
			DisplayName: movieName,
			Description: description,
			Status:      status,
			Total:       total,
			ItemCount:   seatCount,
			CreatedAt:   createdAt,
		})

		result.Details = append(result.Details, Detail{
			OrderID:          bookingID,
			PersonaID:        in.PersonaID,
			StoreID:          in.StoreID,
			Type:             "booking",
			Status:           status,
			CreatedAt:        createdAt,
			ConfirmationCode: booking["confirmation_code"],
			Items: []LineItem{{
				ProductID: movieID,
				Name:      movieName,
				Showtime:  startTime,
				Theater:   showtime["theater"],
				Seats:     seats,
				Quantity:  seatCount,
				Price:     perSeat,
				Subtotal:  total,
			}},
			Total:    total,
			Currency: "USD",
		})
	}

	return result, nil
}
