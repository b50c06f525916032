// =============================================================================
// Persona Data Generator - Canonical Transaction Types
// =============================================================================
//
// This package maps arbitrarily-shaped per-store records into exactly two
// canonical shapes consumed by the browsing UI:
//
//   - Summary: the lightweight list-view record
//   - Detail:  the full per-event record including line items
//
// Types defined here are shared by every normalizer strategy and by the
// rollup aggregators to avoid import cycles.
//
// =============================================================================

package normalize

// =============================================================================
// SUMMARY
// =============================================================================

// Summary is the list-view shape for one transaction-like event.
//
// OrderID is unique within its store and category; categories that share a
// store's detail directory carry synthetic prefixes (PUR-, TOUR-, SAVED-,
// INQ-, TD-, SUB-, CSUB-, GRM-, WISH-, PRE-) so detail file names never
// collide.
type Summary struct {
	OrderID string `json:"order_id"`

	// DisplayName and Description are set by non-order-like categories
	// (bookings, tours, subscriptions, pets, ...) where the list view
	// shows an entity name instead of an order number.
	DisplayName string `json:"display_name,omitempty"`
	Description string `json:"description,omitempty"`

	Status    string  `json:"status"`
	Total     float64 `json:"total"`
	ItemCount int     `json:"item_count"`
	CreatedAt string  `json:"created_at"`

	// ItemPreview is the first two item names joined by a comma, present
	// only when at least one line item exists.
	ItemPreview string `json:"item_preview,omitempty"`
}

// =============================================================================
// LINE ITEM
// =============================================================================

// LineItem is one line of a transaction detail. The optional fields carry
// category-specific display data; only the fields a category sets are
// emitted.
type LineItem struct {
	ProductID   string `json:"product_id"`
	Name        string `json:"name"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`

	// Bookings.
	Showtime string `json:"showtime,omitempty"`
	Theater  string `json:"theater,omitempty"`
	Seats    string `json:"seats,omitempty"`

	// Real-estate listings.
	Address string `json:"address,omitempty"`

	// Subscriptions.
	Recipient      string `json:"recipient,omitempty"`
	NextDelivery   string `json:"next_delivery,omitempty"`
	BeanPreference string `json:"bean_preference,omitempty"`
	Frequency      string `json:"frequency,omitempty"`

	// Pet care.
	PetName             string `json:"pet_name,omitempty"`
	PetType             string `json:"pet_type,omitempty"`
	PetBreed            string `json:"breed,omitempty"`
	DurationMinutes     string `json:"duration_minutes,omitempty"`
	AgeYears            string `json:"age_years,omitempty"`
	WeightLbs           string `json:"weight_lbs,omitempty"`
	DietaryRestrictions string `json:"dietary_restrictions,omitempty"`
	Notes               string `json:"notes,omitempty"`

	// Wishlists.
	ChildName string `json:"child_name,omitempty"`
	Occasion  string `json:"occasion,omitempty"`
	Priority  string `json:"priority,omitempty"`

	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Subtotal float64 `json:"subtotal"`
}

// =============================================================================
// DETAIL
// =============================================================================

// Detail is the full detail-view shape for one transaction-like event.
// Category-specific scheduling, shipping, and note fields are optional.
type Detail struct {
	OrderID   string `json:"order_id"`
	PersonaID string `json:"persona_id"`
	StoreID   string `json:"store_id"`
	Type      string `json:"type,omitempty"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at,omitempty"`

	// Shipping (orders).
	ShippedAt       string `json:"shipped_at,omitempty"`
	DeliveredAt     string `json:"delivered_at,omitempty"`
	ShippingAddress string `json:"shipping_address,omitempty"`
	RecipientName   string `json:"recipient_name,omitempty"`
	CardMessage     string `json:"card_message,omitempty"`

	// Scheduling.
	ConfirmationCode string `json:"confirmation_code,omitempty"`
	ScheduledTime    string `json:"scheduled_time,omitempty"`
	ScheduledDate    string `json:"scheduled_date,omitempty"`
	PreferredTime    string `json:"preferred_time,omitempty"`
	AppointmentDate  string `json:"appointment_date,omitempty"`
	AppointmentTime  string `json:"appointment_time,omitempty"`
	PickupDate       string `json:"pickup_date,omitempty"`
	PickupTime       string `json:"pickup_time,omitempty"`

	// Notes.
	Notes               string `json:"notes,omitempty"`
	Message             string `json:"message,omitempty"`
	SpecialInstructions string `json:"special_instructions,omitempty"`

	Items    []LineItem `json:"items"`
	Total    float64    `json:"total"`
	Currency string     `json:"currency"`
}

// =============================================================================
// RESULT
// =============================================================================

// Result is the parallel output of one normalizer run: Summaries[i] and
// Details[i] describe the same event.
type Result struct {
	Summaries []Summary
	Details   []Detail
}

// Empty reports whether the run produced no events. Empty results cause
// the category to be dropped from every rollup.
func (r Result) Empty() bool {
	return len(r.Summaries) == 0
}
