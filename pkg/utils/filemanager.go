// =============================================================================
// Persona Data Generator - File Manager Utilities
// =============================================================================
//
// This package contains file system utilities shared across the application.
// The generator produces a fully-replaced JSON output tree each run, so the
// helpers here cover:
//   - Atomic-enough directory replacement (remove + recreate)
//   - Indented JSON file writing with parent directory creation
//   - Simple existence checks used by the soft-skip file handling
//
// =============================================================================

package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// WriteJSON marshals data as indented JSON and writes it to filePath,
// creating any missing parent directories.
//
// PARAMETERS:
//   - filePath: The destination file path.
//   - data: Any JSON-marshalable value.
//
// RETURNS:
//   - An error if marshaling or writing fails.
//
// Struct marshaling keeps a fixed key order, so regenerating from unchanged
// input produces byte-identical files.
func WriteJSON(filePath string, data any) error {
	payload, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON for %s: %w", filePath, err)
	}

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", filePath, err)
	}

	if err := os.WriteFile(filePath, payload, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filePath, err)
	}

	return nil
}

// ReadJSON reads a JSON file into the given destination pointer.
func ReadJSON(filePath string, dest any) error {
	payload, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		return fmt.Errorf("failed to parse %s: %w", filePath, err)
	}
	return nil
}

// ReplaceDir removes dir (if it exists) and recreates it empty.
// The output tree is rebuilt from scratch every run, never patched.
func ReplaceDir(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("failed to clear %s: %w", dir, err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	return nil
}

// FileExists reports whether path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists reports whether path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
