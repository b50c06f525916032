// =============================================================================
// Persona Data Generator - Catalog Loader
// =============================================================================
//
// Every store carries reference data for the entities its transactions
// point at: products, books, perfumes, properties, car listings, movies.
// This module loads that data into one canonical mapping of product id ->
// Product, resolving the vendor-specific file names and id/name column
// choices declared in the store registry.
//
// A store's catalog is built once per run and shared read-only by every
// category of that store. Missing catalog files yield an empty mapping,
// not an error: normalizers degrade to placeholder names.
//
// =============================================================================

package catalog

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/ginjaninja78/persona-datagen/internal/config"
	"github.com/ginjaninja78/persona-datagen/internal/tabular"
)

// Product is one canonical catalog entry.
type Product struct {
	ID       string
	Name     string
	Category string
	Brand    string
	Price    float64
}

// Catalog maps product id -> Product for one store.
type Catalog map[string]Product

// DataDir returns the data directory for a store under the servers root.
func DataDir(serversDir, storeID string) string {
	return filepath.Join(serversDir, storeID, "data")
}

// Load builds the catalog for one store from its declared catalog files.
// Multi-file catalogs (pc_parts) are merged into a single mapping, with
// each file contributing its own fixed category label.
func Load(dataDir string, files []config.CatalogFile) (Catalog, error) {
	products := make(Catalog)

	for _, spec := range files {
		table, err := tabular.ReadAny(dataDir, spec.File)
		if err != nil {
			return nil, fmt.Errorf("failed to load catalog file %s: %w", spec.File, err)
		}
		if !table.Present {
			continue
		}

		for _, row := range table.Rows {
			id := row[spec.IDField]
			if id == "" {
				continue
			}

			category := spec.Category
			if category == "" {
				category = row.First("category", "genre")
			}

			products[id] = Product{
				ID:       id,
				Name:     row.FirstOr("Unknown", spec.NameField, "model"),
				Category: category,
				Brand:    row["brand"],
				Price:    parsePrice(row["price"]),
			}
		}
	}

	return products, nil
}

// Lookup returns the product for id and whether it was found.
func (c Catalog) Lookup(id string) (Product, bool) {
	product, ok := c[id]
	return product, ok
}

// NameOr returns the product name for id, or a synthesized placeholder
// when the catalog has no entry.
func (c Catalog) NameOr(id, placeholder string) string {
	if product, ok := c[id]; ok {
		return product.Name
	}
	return placeholder
}

// parsePrice coerces unparsable prices to 0.
func parsePrice(value string) float64 {
	if value == "" {
		return 0
	}
	price, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return price
}
