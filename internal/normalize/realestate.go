// =============================================================================
// Persona Data Generator - Real Estate Normalizers
// =============================================================================
//
// Scheduled tours and saved properties are informational categories: the
// referenced property's listing price is shown for display only, and both
// the summary total and the line subtotal are forced to 0 so they never
// contribute to spend at any rollup level.
//
// =============================================================================

package normalize

import (
	"fmt"

	"github.com/ginjaninja78/persona-datagen/internal/tabular"
)

// propertyDisplay resolves a property's display name and listing price.
func propertyDisplay(in Input, propertyID string) (string, float64) {
	product, ok := in.Catalog.Lookup(propertyID)
	if !ok {
		return fmt.Sprintf("Property %s", propertyID), 0
	}
	return product.Name, product.Price
}

// normalizeTours handles scheduled property tours. Totals forced to 0;
// summary ids carry the "TOUR-" prefix.
func normalizeTours(in Input) (Result, error) {
	tours, err := tabular.ReadAny(in.DataDir, in.Category.File)
	if err != nil {
		return Result{}, err
	}
	if !tours.Present {
		return Result{}, nil
	}

	var result Result
	for _, tour := range tours.FilterBy("user_id", in.PersonaID) {
		tourID := tour["id"]
		propertyID := tour["property_id"]
		address, price := propertyDisplay(in, propertyID)

		// Two scheduling formats exist: a single scheduled_time column, or
		// a tour_date + tour_time pair combined into an ISO-style stamp.
		scheduledTime := tour["scheduled_time"]
		if scheduledTime == "" {
			if date := tour["tour_date"]; date != "" {
				if clock := tour["tour_time"]; clock != "" {
					scheduledTime = fmt.Sprintf("%sT%s:00", date, clock)
				} else {
					scheduledTime = date
				}
			}
		}

		status := tour.FirstOr("scheduled", "status")
		orderID := fmt.Sprintf("TOUR-%s", tourID)

		result.Summaries = append(result.Summaries, Summary{
			OrderID:     orderID,
			DisplayName: address,
			Description: formatDollars(price),
			Status:      status,
			Total:       0,
			ItemCount:   1,
			CreatedAt:   scheduledTime,
		})

		result.Details = append(result.Details, Detail{
			OrderID:       orderID,
			PersonaID:     in.PersonaID,
			StoreID:       in.StoreID,
			Type:          "tour",
			Status:        status,
			ScheduledTime: scheduledTime,
			Notes:         tour["notes"],
			Items: []LineItem{{
				ProductID: propertyID,
				Name:      address,
				Address:   address,
				Quantity:  1,
				Price:     price,
				Subtotal:  0,
			}},
			Total:    0,
			Currency: "USD",
		})
	}

	return result, nil
}

// normalizeSavedProperties handles saved/favorite listings. Totals forced
// to 0; summary ids carry the "SAVED-" prefix.
func normalizeSavedProperties(in Input) (Result, error) {
	saved, err := tabular.ReadAny(in.DataDir, in.Category.File)
	if err != nil {
		return Result{}, err
	}
	if !saved.Present {
		return Result{}, nil
	}

	var result Result
	for _, entry := range saved.FilterBy("user_id", in.PersonaID) {
		savedID := entry["id"]
		propertyID := entry["property_id"]
		address, price := propertyDisplay(in, propertyID)

		savedAt := entry["saved_at"]
		orderID := fmt.Sprintf("SAVED-%s", savedID)

		result.Summaries = append(result.Summaries, Summary{
			OrderID:     orderID,
			DisplayName: address,
			Description: formatDollars(price),
			Status:      "saved",
			Total:       0,
			ItemCount:   1,
			CreatedAt:   savedAt,
		})

		result.Details = append(result.Details, Detail{
			OrderID:   orderID,
			PersonaID: in.PersonaID,
			StoreID:   in.StoreID,
			Type:      "saved_property",
			Status:    "saved",
			CreatedAt: savedAt,
			Notes:     entry["notes"],
			Items: []LineItem{{
				ProductID: propertyID,
				Name:      address,
				Address:   address,
				Quantity:  1,
				Price:     price,
				Subtotal:  0,
			}},
			Total:    0,
			Currency: "USD",
		})
	}

	return result, nil
}
