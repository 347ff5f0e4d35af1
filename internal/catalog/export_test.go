package catalog

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/yourorg/stockroom/internal/models"
)

func TestExportFileName(t *testing.T) {
	day := time.Date(2026, 8, 28, 23, 59, 0, 0, time.UTC)
	if got := ExportFileName(day); got != "products-2026-08-28.json" {
		t.Fatalf("unexpected name %q", got)
	}
}

func TestWriteFilteredSerializesDerivedViewOnly(t *testing.T) {
	m, _ := newTestManager(t)
	addSample(m, "Widget", "Tools", 10)
	addSample(m, "Gadget", "Electronics", 20)

	cat := "Tools"
	m.SetFilters(models.FilterPatch{Category: &cat})

	var buf bytes.Buffer
	if err := m.WriteFiltered(&buf); err != nil {
		t.Fatalf("write: %v", err)
	}

	var exported []models.Product
	if err := json.Unmarshal(buf.Bytes(), &exported); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if len(exported) != 1 || exported[0].Name != "Widget" {
		t.Fatalf("export should hold the filtered view, got %+v", exported)
	}
	if !strings.Contains(buf.String(), "\n  ") {
		t.Fatalf("export should be pretty-printed")
	}
}

func TestExportFilteredWritesDatedFile(t *testing.T) {
	m, _ := newTestManager(t)
	addSample(m, "Widget", "Tools", 10)

	dir := t.TempDir()
	path, err := m.ExportFiltered(dir)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.HasPrefix(pathBase(path), "products-") || !strings.HasSuffix(path, ".json") {
		t.Fatalf("unexpected export path %q", path)
	}
}

func pathBase(p string) string {
	if i := strings.LastIndexByte(p, '/'); i >= 0 {
		return p[i+1:]
	}
	return p
}
