// Package project persists user data (rate table, saved estimates, backups)
// as JSON files under the application config directory.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piwi3910/FurniQuote/internal/model"
)

// DefaultConfigDir returns the default directory for application data.
// On all platforms this is ~/.furniquote/
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".furniquote")
}

// DefaultRatesPath returns the default path for the persisted rate table.
func DefaultRatesPath() string {
	return filepath.Join(DefaultConfigDir(), "rates.json")
}

// SaveRates persists a rate table to the given path as JSON.
// It creates any missing parent directories automatically.
func SaveRates(path string, rates model.RateTable) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(rates, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadRates reads a rate table from the given path. A missing file yields
// the built-in defaults with no error. A malformed file also yields the
// defaults, plus an error the caller may log: a broken blob must never
// block calculation.
func LoadRates(path string) (model.RateTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.DefaultRateTable(), nil
		}
		return model.DefaultRateTable(), err
	}
	var rates model.RateTable
	if err := json.Unmarshal(data, &rates); err != nil {
		return model.DefaultRateTable(), fmt.Errorf("malformed rate table %s: %w", path, err)
	}
	rates.Normalize()
	return rates, nil
}
