// Package artifacts writes the catalog files consumed by the quoting front
// end. Every file is replaced atomically so a failed run never leaves a
// truncated artifact behind.
package artifacts

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"firecatalog/services"
)

// Artifact file names.
const (
	EquipmentFile     = "equipment.json"
	CategoriesFile    = "categories.json"
	FormulasFile      = "formulas.json"
	PriceListXLSXFile = "price-list.xlsx"
	PriceListPDFFile  = "price-list.pdf"
)

// Encode writes v to w as two-space indented JSON with a trailing newline.
// HTML characters in equipment names are left unescaped.
func Encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteJSON encodes v like Encode and atomically replaces dir/name. It
// returns the written path.
func WriteJSON(dir, name string, v any) (string, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, v); err != nil {
		return "", fmt.Errorf("encode %s: %w", name, err)
	}
	return WriteFile(dir, name, buf.Bytes())
}

// WriteFile atomically replaces dir/name with data, creating dir if needed.
func WriteFile(dir, name string, data []byte) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}
	path := filepath.Join(dir, name)

	tmp, err := os.CreateTemp(dir, "."+name+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("create temp file for %s: %w", name, err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", name, err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return "", fmt.Errorf("chmod %s: %w", name, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return "", fmt.Errorf("replace %s: %w", name, err)
	}
	return path, nil
}

// WriteCatalog writes equipment.json, categories.json and formulas.json and
// returns their paths in that order. Equipment is written as [] when empty.
func WriteCatalog(dir string, catalog *services.Catalog) ([]string, error) {
	equipment := catalog.Equipment
	if equipment == nil {
		equipment = []services.EquipmentItem{}
	}
	categories := catalog.Categories
	if categories == nil {
		categories = []services.Category{}
	}

	files := []struct {
		name string
		v    any
	}{
		{EquipmentFile, equipment},
		{CategoriesFile, categories},
		{FormulasFile, catalog.Formulas},
	}

	paths := make([]string, 0, len(files))
	for _, f := range files {
		path, err := WriteJSON(dir, f.name, f.v)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
