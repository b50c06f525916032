// =============================================================================
// Persona Data Generator - Order Normalizers
// =============================================================================
//
// Two structurally different order schemas exist across the stores:
//
//   - Exploded: an orders table plus a companion order_items table joined
//     by order id. Used by almost every orders-based store.
//   - Embedded (florist): a single orders table where the main entity is
//     referenced by an embedded arrangement id and add-ons ride along as
//     an inline JSON list.
//
// Both count toward spend.
//
// =============================================================================

package normalize

import (
	"fmt"

	"github.com/ginjaninja78/persona-datagen/internal/tabular"
)

// =============================================================================
// EXPLODED ORDERS
// =============================================================================

// normalizeExplodedOrders handles orders joined to a separate line-item
// table. The item index is built once per store before iterating orders.
func normalizeExplodedOrders(in Input) (Result, error) {
	orders, err := tabular.ReadAny(in.DataDir, in.Category.File)
	if err != nil {
		return Result{}, err
	}
	if !orders.Present {
		return Result{}, nil
	}

	itemsFile := in.Category.ItemsFile
	if itemsFile == "" {
		itemsFile = "order_items"
	}
	itemRows, err := tabular.ReadAny(in.DataDir, itemsFile)
	if err != nil {
		return Result{}, err
	}
	itemsByOrder := itemRows.GroupBy("order_id")

	var result Result
	for _, order := range orders.FilterBy("user_id", in.PersonaID) {
		orderID := OrderID(order)
		createdAt := EventDate(order)
		total := Round2(TotalAmount(order))
		status := order.FirstOr("unknown", "status")

		rawItems := itemsByOrder[orderID]
		items := make([]LineItem, 0, len(rawItems))
		for _, item := range rawItems {
			productID := item.First(orderItemRefFields...)
			quantity := item.Int(1, "quantity")
			price := item.Float("price_at_purchase", "price")

			category := item["product_category"]
			if product, ok := in.Catalog.Lookup(productID); ok && product.Category != "" {
				category = product.Category
			}

			items = append(items, LineItem{
				ProductID: productID,
				Name:      in.Catalog.NameOr(productID, fmt.Sprintf("Product %s", productID)),
				Category:  category,
				Quantity:  quantity,
				Price:     price,
				Subtotal:  Round2(price * float64(quantity)),
			})
		}

		// When no item rows matched, fall back to the raw quantity sum so
		// the count still reflects the order.
		itemCount := len(items)
		if itemCount == 0 {
			for _, item := range rawItems {
				itemCount += item.Int(1, "quantity")
			}
		}

		result.Summaries = append(result.Summaries, Summary{
			OrderID:     orderID,
			Status:      status,
			Total:       total,
			ItemCount:   itemCount,
			CreatedAt:   createdAt,
			ItemPreview: ItemPreview(items),
		})

		result.Details = append(result.Details, Detail{
			OrderID:         orderID,
			PersonaID:       in.PersonaID,
			StoreID:         in.StoreID,
			Status:          status,
			CreatedAt:       createdAt,
			ShippedAt:       order["shipped_at"],
			DeliveredAt:     order["delivered_at"],
			ShippingAddress: order["shipping_address"],
			Items:           items,
			Total:           total,
			Currency:        order.FirstOr("USD", "currency"),
		})
	}

	return result, nil
}

// =============================================================================
// EMBEDDED ORDERS (FLORIST)
// =============================================================================

// normalizeEmbeddedOrders handles the florist schema: the main arrangement
// is referenced by id on the order row and add-ons are an inline JSON
// list. A malformed add-on payload degrades to no add-ons.
func normalizeEmbeddedOrders(in Input) (Result, error) {
	orders, err := tabular.ReadAny(in.DataDir, in.Category.File)
	if err != nil {
		return Result{}, err
	}
	if !orders.Present {
		return Result{}, nil
	}

	var result Result
	for _, order := range orders.FilterBy("user_id", in.PersonaID) {
		orderID := order["id"]
		createdAt := order["created_at"]
		total := Round2(order.Float("total_price"))
		status := order.FirstOr("unknown", "status")

		var items []LineItem

		arrangementID := order["arrangement_id"]
		if arrangement, ok := in.Catalog.Lookup(arrangementID); ok {
			category := arrangement.Category
			if category == "" {
				category = "Arrangement"
			}
			items = append(items, LineItem{
				ProductID: arrangementID,
				Name:      arrangement.Name,
				Category:  category,
				Quantity:  1,
				Price:     arrangement.Price,
				Subtotal:  arrangement.Price,
			})
		}

		for _, addon := range decodeJSONList(order["addons"]) {
			price := jsonFloat(addon, "price")
			items = append(items, LineItem{
				ProductID: jsonString(addon, "id"),
				Name:      firstNonEmpty(jsonString(addon, "name"), "Add-on"),
				Category:  "Add-on",
				Quantity:  1,
				Price:     price,
				Subtotal:  price,
			})
		}

		result.Summaries = append(result.Summaries, Summary{
			OrderID:     orderID,
			Status:      status,
			Total:       total,
			ItemCount:   len(items),
			CreatedAt:   createdAt,
			ItemPreview: ItemPreview(items),
		})

		result.Details = append(result.Details, Detail{
			OrderID:         orderID,
			PersonaID:       in.PersonaID,
			StoreID:         in.StoreID,
			Status:          status,
			CreatedAt:       createdAt,
			DeliveredAt:     order["delivery_date"],
			ShippingAddress: order["recipient_address"],
			RecipientName:   order["recipient_name"],
			CardMessage:     order["card_message"],
			Items:           items,
			Total:           total,
			Currency:        "USD",
		})
	}

	return result, nil
}

// firstNonEmpty returns the first non-empty string.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
