// =============================================================================
// Persona Data Generator - Preorders Normalizer
// =============================================================================
//
// Bakery preorders embed their line items as an inline JSON list. Custom
// cake entries get a synthesized name and description from their nested
// options; an unparsable or empty payload synthesizes one fallback line
// item priced at the order total so the detail is never itemless.
//
// =============================================================================

package normalize

import (
	"fmt"
	"strings"

	"github.com/ginjaninja78/persona-datagen/internal/tabular"
)

// normalizePreorders handles custom preorders with embedded JSON items.
// Counts toward spend; summary ids carry the "PRE-" prefix.
func normalizePreorders(in Input) (Result, error) {
	preorders, err := tabular.ReadAny(in.DataDir, in.Category.File)
	if err != nil {
		return Result{}, err
	}
	if !preorders.Present {
		return Result{}, nil
	}

	var result Result
	for _, preorder := range preorders.FilterBy("user_id", in.PersonaID) {
		preorderID := preorder["id"]
		total := Round2(preorder.Float("total_price"))
		status := preorder.FirstOr("pending", "status")
		createdAt := preorder["created_at"]

		var items []LineItem
		for _, entry := range decodeJSONList(preorder["items"]) {
			var name, description string

			if jsonString(entry, "type") == "custom_cake" {
				options, _ := entry["options"].(map[string]any)
				name = strings.TrimSpace(fmt.Sprintf("Custom %s %s Cake",
					jsonString(options, "flavor"), jsonString(options, "size")))
				description = fmt.Sprintf("%s frosting, %s filling, %s decoration",
					jsonString(options, "frosting"),
					jsonString(options, "filling"),
					jsonString(options, "decoration"))
			} else {
				name = firstNonEmpty(jsonString(entry, "name"), "Item")
			}

			price := jsonFloat(entry, "price", "total")
			items = append(items, LineItem{
				ProductID:   fmt.Sprintf("preorder-%s", preorderID),
				Name:        name,
				Description: description,
				Quantity:    jsonInt(entry, "quantity", 1),
				Price:       price,
				Subtotal:    price,
			})
		}

		// The preview only ever shows decoded item names; the fallback
		// line below is a reconciliation artifact, not display data.
		preview := ItemPreview(items)

		// Zero decoded items still yields one fallback line at the order
		// total, so counts and spend reconcile with the source row.
		if len(items) == 0 {
			items = []LineItem{{
				ProductID: fmt.Sprintf("preorder-%s", preorderID),
				Name:      fmt.Sprintf("Custom %s", preorder.FirstOr("custom", "order_type")),
				Quantity:  1,
				Price:     total,
				Subtotal:  total,
			}}
		}

		orderID := fmt.Sprintf("PRE-%s", preorderID)

		result.Summaries = append(result.Summaries, Summary{
			OrderID:     orderID,
			Status:      status,
			Total:       total,
			ItemCount:   len(items),
			CreatedAt:   createdAt,
			ItemPreview: preview,
		})

		result.Details = append(result.Details, Detail{
			OrderID:             orderID,
			PersonaID:           in.PersonaID,
			StoreID:             in.StoreID,
			Type:                "preorder",
			Status:              status,
			CreatedAt:           createdAt,
			PickupDate:          preorder["pickup_date"],
			PickupTime:          preorder["pickup_time"],
			SpecialInstructions: preorder["special_instructions"],
			Items:               items,
			Total:               total,
			Currency:            "USD",
		})
	}

	return result, nil
}
