package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piwi3910/FurniQuote/internal/model"
)

// SaveEstimate persists an estimate to the given path as JSON.
func SaveEstimate(path string, est model.Estimate) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(est, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadEstimate reads an estimate from the given path.
func LoadEstimate(path string) (model.Estimate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Estimate{}, err
	}
	var est model.Estimate
	if err := json.Unmarshal(data, &est); err != nil {
		return model.Estimate{}, fmt.Errorf("malformed estimate %s: %w", path, err)
	}
	if _, err := est.Config(); err != nil {
		return model.Estimate{}, fmt.Errorf("invalid estimate %s: %w", path, err)
	}
	est.Rates.Normalize()
	return est, nil
}

// LoadRequest reads an estimate request (the input form of an estimate)
// from the given path.
func LoadRequest(path string) (model.EstimateRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.EstimateRequest{}, err
	}
	var req model.EstimateRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return model.EstimateRequest{}, fmt.Errorf("malformed estimate request %s: %w", path, err)
	}
	return req, nil
}
