// =============================================================================
// Persona Data Generator - File Manager Tests
// =============================================================================

package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteAndReadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "data.json")

	require.NoError(t, WriteJSON(path, map[string]int{"count": 3}))

	var decoded map[string]int
	require.NoError(t, ReadJSON(path, &decoded))
	assert.Equal(t, 3, decoded["count"])

	// Output is indented with two spaces and a trailing newline-free body.
	payload, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"count\": 3\n}", string(payload))
}

func TestReadJSONMissingFile(t *testing.T) {
	var decoded map[string]int
	assert.Error(t, ReadJSON(filepath.Join(t.TempDir(), "absent.json"), &decoded))
}

func TestReplaceDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	stale := filepath.Join(dir, "old.json")
	require.NoError(t, WriteJSON(stale, "stale"))

	require.NoError(t, ReplaceDir(dir))

	assert.True(t, DirExists(dir))
	assert.False(t, FileExists(stale))
}

func TestExistenceChecks(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	assert.True(t, FileExists(file))
	assert.False(t, FileExists(dir))
	assert.True(t, DirExists(dir))
	assert.False(t, DirExists(file))
	assert.False(t, FileExists(filepath.Join(dir, "missing")))
}
