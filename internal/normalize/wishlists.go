// =============================================================================
// Persona Data Generator - Wishlists Normalizer
// =============================================================================
//
// Wishlist entries are an intent signal, not spend: the catalog price of
// the wished-for product is shown for display, but the summary total and
// the line subtotal are forced to 0.
//
// =============================================================================

package normalize

import (
	"fmt"

	"github.com/ginjaninja78/persona-datagen/internal/tabular"
)

// normalizeWishlists handles wishlist entries joined to the catalog.
// Summary ids carry the "WISH-" prefix; status reflects the priority.
func normalizeWishlists(in Input) (Result, error) {
	wishlists, err := tabular.ReadAny(in.DataDir, in.Category.File)
	if err != nil {
		return Result{}, err
	}
	if !wishlists.Present {
		return Result{}, nil
	}

	var result Result
	for _, entry := range wishlists.FilterBy("user_id", in.PersonaID) {
		entryID := entry["id"]
		childName := entry["child_name"]
		productID := entry["product_id"]
		priority := entry.FirstOr("medium", "priority")
		occasion := entry["occasion"]
		addedAt := entry["added_at"]

		product, _ := in.Catalog.Lookup(productID)
		productName := in.Catalog.NameOr(productID, fmt.Sprintf("Product %s", productID))

		description := occasion
		if childName != "" {
			description = fmt.Sprintf("For %s • %s", childName, occasion)
		}

		orderID := fmt.Sprintf("WISH-%s", entryID)

		result.Summaries = append(result.Summaries, Summary{
			OrderID:     orderID,
			DisplayName: productName,
			Description: description,
			Status:      priority,
			Total:       0,
			ItemCount:   1,
			CreatedAt:   addedAt,
		})

		result.Details = append(result.Details, Detail{
			OrderID:   orderID,
			PersonaID: in.PersonaID,
			StoreID:   in.StoreID,
			Type:      "wishlist",
			Status:    priority,
			CreatedAt: addedAt,
			Items: []LineItem{{
				ProductID: productID,
				Name:      productName,
				Category:  product.Category,
				ChildName: childName,
				Occasion:  occasion,
				Priority:  priority,
				Quantity:  1,
				Price:     product.Price,
				Subtotal:  0,
			}},
			Total:    0,
			Currency: "USD",
		})
	}

	return result, nil
}
