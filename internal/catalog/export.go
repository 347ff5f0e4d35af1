package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// ExportFileName returns the conventional export name for the given day,
// e.g. products-2026-08-28.json.
func ExportFileName(t time.Time) string {
	return fmt.Sprintf("products-%s.json", t.Format("2006-01-02"))
}

// WriteFiltered serializes the current filtered view (not the full
// collection) as a pretty-printed JSON array.
func (m *Manager) WriteFiltered(w io.Writer) error {
	filtered := m.State().FilteredProducts
	data, err := json.MarshalIndent(filtered, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal filtered products: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}

// ExportFiltered writes the filtered view to products-<date>.json under
// dir and returns the path written.
func (m *Manager) ExportFiltered(dir string) (string, error) {
	path := filepath.Join(dir, ExportFileName(m.now()))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create export file: %w", err)
	}
	defer f.Close()
	if err := m.WriteFiltered(f); err != nil {
		return "", err
	}
	return path, nil
}
