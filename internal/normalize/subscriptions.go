// =============================================================================
// Persona Data Generator - Subscription Normalizers
// =============================================================================
//
// Two stores declare the "subscriptions" type with structurally different
// schemas, so two independent strategies exist and the dispatcher selects
// by (store id, type tag):
//
//   - Row variant (florist): the price lives directly on the subscription
//     row (price_per_delivery). Summary ids carry "SUB-".
//   - Plan variant (coffee roaster): the subscription row references a
//     separate plan table by plan_id; the plan carries the price
//     (price_per_shipment), name, and frequency. Summary ids carry
//     "CSUB-".
//
// Both count toward spend.
//
// =============================================================================

package normalize

import (
	"fmt"

	"github.com/ginjaninja78/persona-datagen/internal/tabular"
)

// subscriptionDescription renders the list-view description from a
// frequency and an optional preference ("Weekly · Roses").
func subscriptionDescription(frequency, preference string) string {
	label := titleWords(frequency)
	if preference == "" {
		return label
	}
	return fmt.Sprintf("%s · %s", label, preference)
}

// normalizeRowSubscriptions handles subscriptions priced on the row.
func normalizeRowSubscriptions(in Input) (Result, error) {
	subs, err := tabular.ReadAny(in.DataDir, in.Category.File)
	if err != nil {
		return Result{}, err
	}
	if !subs.Present {
		return Result{}, nil
	}

	var result Result
	for _, sub := range subs.FilterBy("user_id", in.PersonaID) {
		subID := sub["id"]
		planName := sub["plan_name"]
		frequency := sub["frequency"]
		price := Round2(sub.Float("price_per_delivery"))
		status := sub.FirstOr("active", "status")
		createdAt := sub["created_at"]
		arrangement := sub["arrangement_preference"]

		orderID := fmt.Sprintf("SUB-%s", subID)

		result.Summaries = append(result.Summaries, Summary{
			OrderID:     orderID,
			DisplayName: planName,
			Description: subscriptionDescription(frequency, arrangement),
			Status:      status,
			Total:       price,
			ItemCount:   1,
			CreatedAt:   createdAt,
		})

		result.Details = append(result.Details, Detail{
			OrderID:   orderID,
			PersonaID: in.PersonaID,
			StoreID:   in.StoreID,
			Type:      "subscription",
			Status:    status,
			CreatedAt: createdAt,
			Items: []LineItem{{
				ProductID:    fmt.Sprintf("plan-%s", subID),
				Name:         planName,
				Description:  fmt.Sprintf("%s delivery - %s", titleWords(frequency), arrangement),
				Recipient:    sub["recipient_name"],
				NextDelivery: sub["next_delivery_date"],
				Quantity:     1,
				Price:        price,
				Subtotal:     price,
			}},
			Total:    price,
			Currency: "USD",
		})
	}

	return result, nil
}

// normalizePlanSubscriptions handles subscriptions priced on a joined
// plan table.
func normalizePlanSubscriptions(in Input) (Result, error) {
	subs, err := tabular.ReadAny(in.DataDir, in.Category.File)
	if err != nil {
		return Result{}, err
	}
	if !subs.Present {
		return Result{}, nil
	}

	planRows, err := tabular.ReadAny(in.DataDir, "subscriptions")
	if err != nil {
		return Result{}, err
	}
	plans := planRows.IndexBy("id")

	var result Result
	for _, sub := range subs.FilterBy("user_id", in.PersonaID) {
		subID := sub["id"]
		planID := sub["plan_id"]
		plan := plans[planID]

		planName := plan.FirstOr(fmt.Sprintf("Plan %s", planID), "name")
		beanPreference := sub["bean_preference"]
		status := sub.FirstOr("active", "status")
		createdAt := sub["created_at"]
		price := Round2(plan.Float("price_per_shipment"))
		frequency := plan["frequency"]

		orderID := fmt.Sprintf("CSUB-%s", subID)

		result.Summaries = append(result.Summaries, Summary{
			OrderID:     orderID,
			DisplayName: planName,
			Description: subscriptionDescription(frequency, beanPreference),
			Status:      status,
			Total:       price,
			ItemCount:   1,
			CreatedAt:   createdAt,
		})

		result.Details = append(result.Details, Detail{
			OrderID:   orderID,
			PersonaID: in.PersonaID,
			StoreID:   in.StoreID,
			Type:      "subscription",
			Status:    status,
			CreatedAt: createdAt,
			Items: []LineItem{{
				ProductID:      fmt.Sprintf("plan-%s", planID),
				Name:           planName,
				Description:    plan["description"],
				BeanPreference: beanPreference,
				Frequency:      frequency,
				NextDelivery:   sub["next_delivery"],
				Quantity:       1,
				Price:          price,
				Subtotal:       price,
			}},
			Total:    price,
			Currency: "USD",
		})
	}

	return result, nil
}
