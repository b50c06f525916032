// =============================================================================
// Persona Data Generator - Store Registry
// =============================================================================
//
// The registry is the immutable description of every known store: its
// display name, the transactional categories it declares, the labels used
// for each transaction type, and where its product catalog lives. It is
// built once at process start (either the built-in default or a YAML
// override) and passed explicitly to every component. Nothing mutates it
// and nothing reaches for it as global state.
//
// Source file references are stems without extension; the tabular reader
// probes ".csv" then ".xlsx".
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// REGISTRY STRUCTURES
// =============================================================================

// TypeLabel describes how a transaction type is displayed and whether it
// counts toward spend. Categories with HasCost == false always report a
// total of 0, never absent or null.
type TypeLabel struct {
	Singular string `yaml:"singular"`
	Plural   string `yaml:"plural"`
	HasCost  bool   `yaml:"has_cost"`
}

// CategoryDescriptor declares one transactional category of a store.
type CategoryDescriptor struct {
	// ID is the category identifier within the store (unique per store).
	ID string `yaml:"id"`

	// Name is the display name shown in the UI.
	Name string `yaml:"name"`

	// Type is the category type tag routed through the dispatcher.
	Type string `yaml:"type"`

	// File is the stem of the category's source file (e.g. "orders").
	File string `yaml:"file"`

	// ItemsFile is the stem of the companion line-item file for exploded
	// orders ("order_items"); empty for every other type.
	ItemsFile string `yaml:"items_file,omitempty"`

	// Primary marks the category used for the store's backward-compatible
	// single-category fields. Exactly one descriptor per store is primary.
	Primary bool `yaml:"primary"`
}

// CatalogFile describes one catalog source file for a store.
type CatalogFile struct {
	// File is the stem of the catalog file (e.g. "products").
	File string `yaml:"file"`

	// IDField and NameField name the vendor-specific id/name columns.
	IDField   string `yaml:"id_field"`
	NameField string `yaml:"name_field"`

	// Category, when set, tags every product from this file with a fixed
	// category label (used by multi-file catalogs like pc_parts).
	Category string `yaml:"category,omitempty"`
}

// Registry is the full immutable store configuration.
type Registry struct {
	// StoreNames maps store ids to display names.
	StoreNames map[string]string `yaml:"store_names"`

	// TypeLabels maps transaction type tags to their display labels.
	TypeLabels map[string]TypeLabel `yaml:"type_labels"`

	// StoreCategories maps store ids to their ordered category list.
	StoreCategories map[string][]CategoryDescriptor `yaml:"store_categories"`

	// CatalogFiles maps store ids to their catalog source files. Stores
	// without catalog-like reference data (none currently) simply have no
	// entry; the loader yields an empty catalog.
	CatalogFiles map[string][]CatalogFile `yaml:"catalog_files"`
}

// =============================================================================
// LOOKUPS
// =============================================================================

// StoreName returns the display name for a store id, falling back to the
// id itself for unknown stores.
func (r *Registry) StoreName(storeID string) string {
	if name, ok := r.StoreNames[storeID]; ok {
		return name
	}
	return storeID
}

// Label returns the display label for a type tag, falling back to the
// "orders" label for unknown tags.
func (r *Registry) Label(typeTag string) TypeLabel {
	if label, ok := r.TypeLabels[typeTag]; ok {
		return label
	}
	return r.TypeLabels["orders"]
}

// Categories returns the ordered category declarations for a store.
// Unknown stores have no categories.
func (r *Registry) Categories(storeID string) []CategoryDescriptor {
	return r.StoreCategories[storeID]
}

// PrimaryCategory returns the store's primary category declaration,
// falling back to the first declared category.
func (r *Registry) PrimaryCategory(storeID string) (CategoryDescriptor, bool) {
	categories := r.StoreCategories[storeID]
	for _, cat := range categories {
		if cat.Primary {
			return cat, true
		}
	}
	if len(categories) > 0 {
		return categories[0], true
	}
	return CategoryDescriptor{}, false
}

// =============================================================================
// LOADING
// =============================================================================

// LoadRegistry reads a full registry from a YAML file. An empty path
// returns the built-in default registry.
func LoadRegistry(path string) (*Registry, error) {
	if path == "" {
		return DefaultRegistry(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry file: %w", err)
	}

	var registry Registry
	if err := yaml.Unmarshal(data, &registry); err != nil {
		return nil, fmt.Errorf("failed to parse registry file: %w", err)
	}

	if err := registry.Validate(); err != nil {
		return nil, fmt.Errorf("invalid registry: %w", err)
	}

	return &registry, nil
}

// Validate checks structural invariants of the registry.
func (r *Registry) Validate() error {
	for storeID, categories := range r.StoreCategories {
		if len(categories) == 0 {
			return fmt.Errorf("store %s declares no categories", storeID)
		}

		primaries := 0
		seen := make(map[string]bool, len(categories))
		for _, cat := range categories {
			if cat.Primary {
				primaries++
			}
			if seen[cat.ID] {
				return fmt.Errorf("store %s declares duplicate category id %s", storeID, cat.ID)
			}
			seen[cat.ID] = true
		}
		if primaries != 1 {
			return fmt.Errorf("store %s must declare exactly one primary category, has %d", storeID, primaries)
		}
	}
	return nil
}

// =============================================================================
// DEFAULT REGISTRY
// =============================================================================

// ordersCategory is the category declaration shared by every plain
// orders-based store.
func ordersCategory() []CategoryDescriptor {
	return []CategoryDescriptor{
		{ID: "orders", Name: "Orders", Type: "orders", File: "orders", ItemsFile: "order_items", Primary: true},
	}
}

// productsCatalog is the catalog declaration shared by stores with a
// standard products file keyed by "id"/"name".
func productsCatalog() []CatalogFile {
	return []CatalogFile{{File: "products", IDField: "id", NameField: "name"}}
}

// DefaultRegistry returns the built-in registry describing every known
// store and transaction type.
func DefaultRegistry() *Registry {
	registry := &Registry{
		StoreNames: map[string]string{
			"amazon":            "Amazon",
			"walmart":           "Walmart",
			"pc_parts":          "PC Parts",
			"electronics_store": "Electronics Store",
			"bakery":            "Bakery",
			"grocery":           "Grocery",
			"coffee_roaster":    "Coffee Roaster",
			"fashion":           "Fashion",
			"sephora":           "Sephora",
			"perfume_shop":      "Perfume Shop",
			"jewelry_store":     "Jewelry Store",
			"sporting_goods":    "Sporting Goods",
			"toy_store":         "Toy Store",
			"pet_store":         "Pet Store",
			"pharmacy":          "Pharmacy",
			"furniture_store":   "Furniture Store",
			"florist":           "Florist",
			"zillow":            "Zillow",
			"car_deals":         "Car Deals",
			"bookstore":         "Bookstore",
			"movie_theater":     "Movie Theater",
		},

		TypeLabels: map[string]TypeLabel{
			"orders":        {Singular: "order", Plural: "orders", HasCost: true},
			"purchases":     {Singular: "purchase", Plural: "purchases", HasCost: true},
			"bookings":      {Singular: "booking", Plural: "bookings", HasCost: true},
			"tours":         {Singular: "tour", Plural: "tours", HasCost: false},
			"inquiries":     {Singular: "inquiry", Plural: "inquiries", HasCost: false},
			"test_drives":   {Singular: "test drive", Plural: "test drives", HasCost: false},
			"subscriptions": {Singular: "subscription", Plural: "subscriptions", HasCost: true},
			"grooming":      {Singular: "appointment", Plural: "appointments", HasCost: true},
			"pets":          {Singular: "pet", Plural: "pets", HasCost: false},
			"preorders":     {Singular: "preorder", Plural: "preorders", HasCost: true},
			"wishlists":     {Singular: "wishlist item", Plural: "wishlist items", HasCost: false},
			"saved":         {Singular: "saved property", Plural: "saved properties", HasCost: false},
		},

		StoreCategories: map[string][]CategoryDescriptor{
			// Orders-based stores (single category).
			"amazon":            ordersCategory(),
			"walmart":           ordersCategory(),
			"pc_parts":          ordersCategory(),
			"electronics_store": ordersCategory(),
			"fashion":           ordersCategory(),
			"sephora":           ordersCategory(),
			"perfume_shop":      ordersCategory(),
			"jewelry_store":     ordersCategory(),
			"sporting_goods":    ordersCategory(),
			"furniture_store":   ordersCategory(),
			"grocery":           ordersCategory(),

			// Multi-category stores.
			"toy_store": {
				{ID: "orders", Name: "Orders", Type: "orders", File: "orders", ItemsFile: "order_items", Primary: true},
				{ID: "wishlists", Name: "Wishlists", Type: "wishlists", File: "wishlists"},
			},
			"florist": {
				{ID: "orders", Name: "Orders", Type: "orders", File: "orders", ItemsFile: "order_items", Primary: true},
				{ID: "subscriptions", Name: "Subscriptions", Type: "subscriptions", File: "subscriptions"},
			},
			"bakery": {
				{ID: "purchases", Name: "Purchases", Type: "purchases", File: "purchases", Primary: true},
				{ID: "preorders", Name: "Custom Cake Preorders", Type: "preorders", File: "preorders"},
			},
			"coffee_roaster": {
				{ID: "purchases", Name: "Purchases", Type: "purchases", File: "purchases", Primary: true},
				{ID: "subscriptions", Name: "Subscriptions", Type: "subscriptions", File: "user_subscriptions"},
			},
			"pet_store": {
				{ID: "purchases", Name: "Purchases", Type: "purchases", File: "purchases", Primary: true},
				{ID: "grooming", Name: "Grooming Appointments", Type: "grooming", File: "grooming_appointments"},
				{ID: "pets", Name: "Pet Profiles", Type: "pets", File: "pet_profiles"},
			},

			// Other purchases-based stores.
			"pharmacy": {
				{ID: "purchases", Name: "Purchases", Type: "purchases", File: "purchases", Primary: true},
			},
			"bookstore": {
				{ID: "purchases", Name: "Purchases", Type: "purchases", File: "purchases", Primary: true},
			},

			// Bookings-based stores.
			"movie_theater": {
				{ID: "bookings", Name: "Bookings", Type: "bookings", File: "bookings", Primary: true},
			},

			// Special stores.
			"zillow": {
				{ID: "tours", Name: "Scheduled Tours", Type: "tours", File: "scheduled_tours", Primary: true},
				{ID: "saved", Name: "Saved Properties", Type: "saved", File: "saved_properties"},
			},
			"car_deals": {
				{ID: "inquiries", Name: "Inquiries", Type: "inquiries", File: "inquiries", Primary: true},
				{ID: "test_drives", Name: "Test Drives", Type: "test_drives", File: "test_drive_bookings"},
			},
		},

		CatalogFiles: map[string][]CatalogFile{
			"amazon":            {{File: "products", IDField: "asin", NameField: "title"}},
			"walmart":           {{File: "products", IDField: "product_id", NameField: "name"}},
			"electronics_store": productsCatalog(),
			"fashion":           productsCatalog(),
			"sephora":           {{File: "products", IDField: "product_id", NameField: "name"}},
			"perfume_shop":      {{File: "perfumes", IDField: "id", NameField: "name"}},
			"jewelry_store":     productsCatalog(),
			"sporting_goods":    productsCatalog(),
			"toy_store":         productsCatalog(),
			"furniture_store":   productsCatalog(),
			"florist":           {{File: "arrangements", IDField: "id", NameField: "name"}},
			"grocery":           productsCatalog(),
			"bakery":            productsCatalog(),
			"coffee_roaster":    {{File: "beans", IDField: "id", NameField: "name"}},
			"pet_store":         productsCatalog(),
			"pharmacy":          {{File: "medicines", IDField: "id", NameField: "name"}},
			"bookstore":         {{File: "books", IDField: "id", NameField: "title"}},
			"movie_theater":     {{File: "movies", IDField: "id", NameField: "title"}},
			"zillow":            {{File: "properties", IDField: "id", NameField: "address"}},
			"car_deals":         {{File: "listings", IDField: "id", NameField: "model"}},

			// PC Parts spreads its catalog across one file per component
			// category; each file tags products with its own label.
			"pc_parts": {
				{File: "cpus", IDField: "id", NameField: "name", Category: "cpus"},
				{File: "gpus", IDField: "id", NameField: "name", Category: "gpus"},
				{File: "ram", IDField: "id", NameField: "name", Category: "ram"},
				{File: "ssds", IDField: "id", NameField: "name", Category: "ssds"},
				{File: "motherboards", IDField: "id", NameField: "name", Category: "motherboards"},
				{File: "psus", IDField: "id", NameField: "name", Category: "psus"},
				{File: "cases", IDField: "id", NameField: "name", Category: "cases"},
			},
		},
	}

	return registry
}
