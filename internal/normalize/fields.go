// =============================================================================
// Persona Data Generator - Field Resolution
// =============================================================================
//
// Every store encodes the same underlying concepts (identifier, date,
// money, referenced catalog entity) under different column names. The
// fallback chains below make that variance declarative: each concept has
// one ordered candidate list, evaluated first-match-wins, instead of
// conditionals scattered through the normalizers.
//
// =============================================================================

package normalize

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ginjaninja78/persona-datagen/internal/tabular"
)

// =============================================================================
// FALLBACK CHAINS
// =============================================================================

// Per-concept candidate columns, in fixed priority order.
var (
	orderIDFields = []string{"order_id", "id"}
	dateFields    = []string{"created_at", "purchased_at", "date", "scheduled_time"}
	totalFields   = []string{"total", "total_price"}

	// Product reference candidates for exploded order items and for
	// single-row purchases; stores disagree on the join column name.
	orderItemRefFields = []string{"asin", "product_id", "item_id", "perfume_id"}
	purchaseRefFields  = []string{"product_id", "book_id", "item_id", "medicine_id", "bean_id"}
)

// OrderID resolves the event identifier for a row.
func OrderID(row tabular.Row) string {
	return row.First(orderIDFields...)
}

// EventDate resolves the event date string for a row.
func EventDate(row tabular.Row) string {
	return row.First(dateFields...)
}

// TotalAmount resolves the monetary total for a row, coercing parse
// failures to 0.
func TotalAmount(row tabular.Row) float64 {
	return row.Float(totalFields...)
}

// =============================================================================
// MONEY
// =============================================================================

// Round2 rounds a monetary amount to 2 decimals. Applied at summary
// construction and again at every rollup level.
func Round2(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// formatDollars renders a whole-dollar price with thousands grouping for
// display descriptions ("$1,250,000"). Returns "" for zero so callers can
// skip the description entirely.
func formatDollars(amount float64) string {
	if amount == 0 {
		return ""
	}

	whole := strconv.FormatInt(int64(math.Round(amount)), 10)
	negative := strings.HasPrefix(whole, "-")
	if negative {
		whole = whole[1:]
	}

	var groups []string
	for len(whole) > 3 {
		groups = append([]string{whole[len(whole)-3:]}, groups...)
		whole = whole[:len(whole)-3]
	}
	groups = append([]string{whole}, groups...)

	out := "$" + strings.Join(groups, ",")
	if negative {
		out = "-" + out
	}
	return out
}

// =============================================================================
// PREVIEW AND DISPLAY HELPERS
// =============================================================================

// previewMaxItems is how many item names the list-view preview shows.
const previewMaxItems = 2

// ItemPreview builds the short list-view preview: the first two item names
// joined by a comma, with ", ..." appended when more items exist. Returns
// "" when there are no items.
func ItemPreview(items []LineItem) string {
	if len(items) == 0 {
		return ""
	}

	limit := previewMaxItems
	if len(items) < limit {
		limit = len(items)
	}

	names := make([]string, limit)
	for i := 0; i < limit; i++ {
		names[i] = items[i].Name
	}

	preview := strings.Join(names, ", ")
	if len(items) > previewMaxItems {
		preview += ", ..."
	}
	return preview
}

// titleWords uppercases the first letter of each space-separated word
// ("every 2 weeks" -> "Every 2 Weeks"). Used for frequency labels.
func titleWords(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

// pluralize appends "s" for counts other than 1.
func pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	return word + "s"
}

// =============================================================================
// EMBEDDED JSON PAYLOADS
// =============================================================================

// decodeJSONList decodes an embedded JSON array cell into generic maps.
// Malformed payloads degrade to an empty list, never an error: embedded
// item data is best-effort display data.
func decodeJSONList(payload string) []map[string]any {
	if strings.TrimSpace(payload) == "" {
		return nil
	}

	var entries []map[string]any
	if err := json.Unmarshal([]byte(payload), &entries); err != nil {
		return nil
	}
	return entries
}

// jsonString extracts a string field from a decoded JSON map, rendering
// numbers through fmt so numeric ids survive.
func jsonString(entry map[string]any, key string) string {
	value, ok := entry[key]
	if !ok || value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", value)
}

// jsonFloat extracts a numeric field from a decoded JSON map, accepting
// numbers and numeric strings, coercing everything else to 0.
func jsonFloat(entry map[string]any, keys ...string) float64 {
	for _, key := range keys {
		value, ok := entry[key]
		if !ok || value == nil {
			continue
		}
		switch v := value.(type) {
		case float64:
			return v
		case string:
			if parsed, err := strconv.ParseFloat(v, 64); err == nil {
				return parsed
			}
		}
	}
	return 0
}

// jsonInt extracts an integer field from a decoded JSON map with a default.
func jsonInt(entry map[string]any, key string, fallback int) int {
	value, ok := entry[key]
	if !ok || value == nil {
		return fallback
	}
	switch v := value.(type) {
	case float64:
		return int(v)
	case string:
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return fallback
}
