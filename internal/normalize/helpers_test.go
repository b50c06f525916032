// =============================================================================
// Persona Data Generator - Normalizer Test Helpers
// =============================================================================

package normalize

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/persona-datagen/internal/catalog"
	"github.com/ginjaninja78/persona-datagen/internal/config"
)

// writeCSV writes one source file fixture into the test data directory.
func writeCSV(t *testing.T, dir, stem, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, stem+".csv"), []byte(content), 0644))
}

// testInput assembles a normalizer input against a test data directory.
func testInput(storeID, personaID, dir string, category config.CategoryDescriptor, products catalog.Catalog) Input {
	if products == nil {
		products = catalog.Catalog{}
	}
	return Input{
		StoreID:   storeID,
		PersonaID: personaID,
		DataDir:   dir,
		Category:  category,
		Catalog:   products,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}
