// =============================================================================
// Persona Data Generator - Purchases Normalizer
// =============================================================================
//
// Purchases are the simplest paid schema: one row per purchase with a
// quantity, a total, and a reference to a single catalog product. The
// normalizer synthesizes exactly one line item per row; the unit price is
// derived from the total.
//
// =============================================================================

package normalize

import (
	"fmt"

	"github.com/ginjaninja78/persona-datagen/internal/tabular"
)

// normalizePurchases handles single-row purchases joined to the catalog.
// Counts toward spend; summary ids carry the "PUR-" prefix.
func normalizePurchases(in Input) (Result, error) {
	purchases, err := tabular.ReadAny(in.DataDir, in.Category.File)
	if err != nil {
		return Result{}, err
	}
	if !purchases.Present {
		return Result{}, nil
	}

	var result Result
	for _, purchase := range purchases.FilterBy("user_id", in.PersonaID) {
		purchaseID := purchase["id"]
		createdAt := EventDate(purchase)
		total := Round2(TotalAmount(purchase))
		quantity := purchase.Int(1, "quantity")

		productID := purchase.First(purchaseRefFields...)
		product, _ := in.Catalog.Lookup(productID)

		// Unit price derives from the total. A zero quantity falls back to
		// the raw total, which leaves a zero-total row at unit price 0.
		unitPrice := total
		if quantity > 0 {
			unitPrice = Round2(total / float64(quantity))
		}

		items := []LineItem{{
			ProductID: productID,
			Name:      in.Catalog.NameOr(productID, fmt.Sprintf("Product %s", productID)),
			Category:  product.Category,
			Quantity:  quantity,
			Price:     unitPrice,
			Subtotal:  total,
		}}

		orderID := fmt.Sprintf("PUR-%s", purchaseID)

		result.Summaries = append(result.Summaries, Summary{
			OrderID:     orderID,
			Status:      "completed",
			Total:       total,
			ItemCount:   quantity,
			CreatedAt:   createdAt,
			ItemPreview: ItemPreview(items),
		})

		result.Details = append(result.Details, Detail{
			OrderID:   orderID,
			PersonaID: in.PersonaID,
			StoreID:   in.StoreID,
			Status:    "completed",
			CreatedAt: createdAt,
			Items:     items,
			Total:     total,
			Currency:  "USD",
		})
	}

	return result, nil
}
