// =============================================================================
// Persona Data Generator - Pet Store Normalizers
// =============================================================================
//
// Grooming appointments are a three-way join: the appointment references
// a grooming service (the price source) and a pet profile (display only).
// Pet profiles themselves are a pure informational echo with no money and
// no date.
//
// =============================================================================

package normalize

import (
	"fmt"

	"github.com/ginjaninja78/persona-datagen/internal/tabular"
)

// normalizeGrooming handles grooming appointments. Counts toward spend;
// summary ids carry the "GRM-" prefix.
func normalizeGrooming(in Input) (Result, error) {
	appointments, err := tabular.ReadAny(in.DataDir, in.Category.File)
	if err != nil {
		return Result{}, err
	}
	if !appointments.Present {
		return Result{}, nil
	}

	serviceRows, err := tabular.ReadAny(in.DataDir, "grooming_services")
	if err != nil {
		return Result{}, err
	}
	services := serviceRows.IndexBy("id")

	petRows, err := tabular.ReadAny(in.DataDir, "pet_profiles")
	if err != nil {
		return Result{}, err
	}
	pets := petRows.IndexBy("id")

	var result Result
	for _, appt := range appointments.FilterBy("user_id", in.PersonaID) {
		apptID := appt["id"]
		service := services[appt["service_id"]]
		pet := pets[appt["pet_id"]]

		apptDate := appt["appointment_date"]
		apptTime := appt["appointment_time"]
		status := appt.FirstOr("scheduled", "status")
		price := Round2(service.Float("price"))

		createdAt := apptDate
		if apptDate != "" && apptTime != "" {
			createdAt = fmt.Sprintf("%sT%s:00", apptDate, apptTime)
		}

		serviceName := service.FirstOr("Grooming Service", "name")
		petName := pet["name"]

		displayName := serviceName
		if petName != "" {
			displayName = fmt.Sprintf("%s for %s", serviceName, petName)
		}

		description := apptDate
		if apptTime != "" {
			description = fmt.Sprintf("%s at %s", apptDate, apptTime)
		}

		orderID := fmt.Sprintf("GRM-%s", apptID)

		result.Summaries = append(result.Summaries, Summary{
			OrderID:     orderID,
			DisplayName: displayName,
			Description: description,
			Status:      status,
			Total:       price,
			ItemCount:   1,
			CreatedAt:   createdAt,
		})

		result.Details = append(result.Details, Detail{
			OrderID:         orderID,
			PersonaID:       in.PersonaID,
			StoreID:         in.StoreID,
			Type:            "grooming",
			Status:          status,
			AppointmentDate: apptDate,
			AppointmentTime: apptTime,
			Items: []LineItem{{
				ProductID:       appt["service_id"],
				Name:            serviceName,
				Description:     service["description"],
				PetName:         petName,
				PetType:         pet["pet_type"],
				PetBreed:        pet["breed"],
				DurationMinutes: service["duration_minutes"],
				Quantity:        1,
				Price:           price,
				Subtotal:        price,
			}},
			Total:    price,
			Currency: "USD",
		})
	}

	return result, nil
}

// normalizePetProfiles echoes pet profiles as informational records.
// No money, and no date: the source has none, so created_at stays empty.
func normalizePetProfiles(in Input) (Result, error) {
	profiles, err := tabular.ReadAny(in.DataDir, in.Category.File)
	if err != nil {
		return Result{}, err
	}
	if !profiles.Present {
		return Result{}, nil
	}

	var result Result
	for _, pet := range profiles.FilterBy("user_id", in.PersonaID) {
		petID := pet["id"]
		name := pet["name"]
		petType := pet["pet_type"]
		breed := pet["breed"]

		result.Summaries = append(result.Summaries, Summary{
			OrderID:     petID,
			DisplayName: name,
			Description: fmt.Sprintf("%s (%s)", breed, petType),
			Status:      "active",
			Total:       0,
			ItemCount:   1,
			CreatedAt:   "",
		})

		result.Details = append(result.Details, Detail{
			OrderID:   petID,
			PersonaID: in.PersonaID,
			StoreID:   in.StoreID,
			Type:      "pet_profile",
			Status:    "active",
			Items: []LineItem{{
				ProductID:           petID,
				Name:                name,
				PetType:             petType,
				PetBreed:            breed,
				AgeYears:            pet["age_years"],
				WeightLbs:           pet["weight_lbs"],
				DietaryRestrictions: pet["dietary_restrictions"],
				Notes:               pet["notes"],
				Quantity:            1,
				Price:               0,
				Subtotal:            0,
			}},
			Total:    0,
			Currency: "USD",
		})
	}

	return result, nil
}
