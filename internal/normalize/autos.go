// =============================================================================
// Persona Data Generator - Auto Dealer Normalizers
// =============================================================================
//
// Inquiries and test drives reference a vehicle listing for display only.
// Like the real-estate categories, the listing price is shown but never
// counted: totals and subtotals are forced to 0.
//
// =============================================================================

package normalize

import (
	"fmt"

	"github.com/ginjaninja78/persona-datagen/internal/tabular"
)

// vehicleDisplay resolves a listing's display name and asking price.
func vehicleDisplay(in Input, listingID string) (string, float64) {
	product, ok := in.Catalog.Lookup(listingID)
	if !ok {
		return fmt.Sprintf("Vehicle %s", listingID), 0
	}
	return product.Name, product.Price
}

// normalizeInquiries handles vehicle inquiries. Totals forced to 0;
// summary ids carry the "INQ-" prefix.
func normalizeInquiries(in Input) (Result, error) {
	inquiries, err := tabular.ReadAny(in.DataDir, in.Category.File)
	if err != nil {
		return Result{}, err
	}
	if !inquiries.Present {
		return Result{}, nil
	}

	var result Result
	for _, inquiry := range inquiries.FilterBy("user_id", in.PersonaID) {
		inquiryID := inquiry["id"]
		listingID := inquiry["listing_id"]
		name, price := vehicleDisplay(in, listingID)

		createdAt := inquiry["created_at"]
		status := inquiry.FirstOr("pending", "status")
		orderID := fmt.Sprintf("INQ-%s", inquiryID)

		result.Summaries = append(result.Summaries, Summary{
			OrderID:     orderID,
			DisplayName: name,
			Description: formatDollars(price),
			Status:      status,
			Total:       0,
			ItemCount:   1,
			CreatedAt:   createdAt,
		})

		result.Details = append(result.Details, Detail{
			OrderID:   orderID,
			PersonaID: in.PersonaID,
			StoreID:   in.StoreID,
			Type:      "inquiry",
			Status:    status,
			CreatedAt: createdAt,
			Message:   inquiry["message"],
			Items: []LineItem{{
				ProductID: listingID,
				Name:      name,
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

// normalizeTestDrives handles test drive bookings. Totals forced to 0;
// summary ids carry the "TD-" prefix.
func normalizeTestDrives(in Input) (Result, error) {
	testDrives, err := tabular.ReadAny(in.DataDir, in.Category.File)
	if err != nil {
		return Result{}, err
	}
	if !testDrives.Present {
		return Result{}, nil
	}

	var result Result
	for _, drive := range testDrives.FilterBy("user_id", in.PersonaID) {
		driveID := drive["id"]
		listingID := drive["listing_id"]
		name, price := vehicleDisplay(in, listingID)

		scheduled := drive.First("preferred_date", "created_at")
		status := drive.FirstOr("requested", "status")
		orderID := fmt.Sprintf("TD-%s", driveID)

		result.Summaries = append(result.Summaries, Summary{
			OrderID:     orderID,
			DisplayName: name,
			Description: formatDollars(price),
			Status:      status,
			Total:       0,
			ItemCount:   1,
			CreatedAt:   scheduled,
		})

		result.Details = append(result.Details, Detail{
			OrderID:       orderID,
			PersonaID:     in.PersonaID,
			StoreID:       in.StoreID,
			Type:          "test_drive",
			Status:        status,
			ScheduledDate: scheduled,
			PreferredTime: drive["preferred_time"],
			Notes:         drive["notes"],
			Items: []LineItem{{
				ProductID: listingID,
				Name:      name,
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
