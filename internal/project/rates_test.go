package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/FurniQuote/internal/model"
)

func TestSaveAndLoadRates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rates.json")

	rates := model.DefaultRateTable()
	rates.LaborHourlyRate = 32.50
	rates.MarkupPercent = 15
	rates.Material["plywood_18mm"] = 4.10

	if err := SaveRates(path, rates); err != nil {
		t.Fatalf("SaveRates failed: %v", err)
	}

	loaded, err := LoadRates(path)
	if err != nil {
		t.Fatalf("LoadRates failed: %v", err)
	}
	if loaded.LaborHourlyRate != 32.50 {
		t.Errorf("expected LaborHourlyRate=32.50, got %g", loaded.LaborHourlyRate)
	}
	if loaded.MarkupPercent != 15 {
		t.Errorf("expected MarkupPercent=15, got %g", loaded.MarkupPercent)
	}
	if loaded.Material["plywood_18mm"] != 4.10 {
		t.Errorf("expected plywood_18mm=4.10, got %g", loaded.Material["plywood_18mm"])
	}
}

func TestLoadRatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent", "rates.json")

	rates, err := LoadRates(path)
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}
	defaults := model.DefaultRateTable()
	if rates.LaborHourlyRate != defaults.LaborHourlyRate {
		t.Error("missing file should yield the built-in defaults")
	}
}

func TestLoadRatesMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rates.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	rates, err := LoadRates(path)
	if err == nil {
		t.Error("malformed file should surface an error for logging")
	}
	// Defaults are still usable: calculation must never be blocked.
	if errs := rates.Validate(); len(errs) != 0 {
		t.Errorf("fallback rates must validate: %v", errs)
	}
	if rates.Finish[model.FinishNone] != 0 {
		t.Error("fallback rates must include the free none finish")
	}
}

func TestLoadRatesCreatesNestedDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "nested", "rates.json")
	if err := SaveRates(path, model.DefaultRateTable()); err != nil {
		t.Fatalf("SaveRates should create parent directories: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("saved file missing: %v", err)
	}
}
