package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// EstimateRequest is the deserialized form of an estimate input file: a
// furniture kind tag plus exactly one populated configuration.
type EstimateRequest struct {
	Name     string          `json:"name"`
	Kind     FurnitureKind   `json:"kind"`
	Wardrobe *WardrobeConfig `json:"wardrobe,omitempty"`
	Table    *TableConfig    `json:"table,omitempty"`
	Sofa     *SofaConfig     `json:"sofa,omitempty"`
}

// Config returns the configuration matching the request's kind.
func (r EstimateRequest) Config() (FurnitureConfig, error) {
	return configForKind(r.Kind, r.Wardrobe, r.Table, r.Sofa)
}

// Estimate ties a named calculation together for save/load: the input
// configuration, the rate table snapshot it was priced against, and the
// derived quantities and costs. Derived fields are recomputable from the
// inputs; they are stored so a saved quote reads back exactly as issued.
type Estimate struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	CreatedAt string        `json:"created_at"`
	Kind      FurnitureKind `json:"kind"`

	Wardrobe *WardrobeConfig `json:"wardrobe,omitempty"`
	Table    *TableConfig    `json:"table,omitempty"`
	Sofa     *SofaConfig     `json:"sofa,omitempty"`

	Rates      RateTable        `json:"rates"`
	Quantities BillOfQuantities `json:"quantities"`
	Costs      CostBreakdown    `json:"costs"`
}

// NewEstimate validates the configuration and rate table, computes the
// quantities and cost breakdown, and wraps everything in a fresh Estimate.
// Validation failures return the full set of violations.
func NewEstimate(name string, cfg FurnitureConfig, rates RateTable) (Estimate, error) {
	var errs ValidationErrors
	errs = append(errs, rates.Validate()...)
	errs = append(errs, cfg.Validate()...)
	if err := errs.OrNil(); err != nil {
		return Estimate{}, err
	}

	quantities := cfg.Quantities(rates)
	est := Estimate{
		ID:         uuid.New().String()[:8],
		Name:       name,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
		Kind:       cfg.Kind(),
		Rates:      rates.Clone(),
		Quantities: quantities,
		Costs:      ComputeCostBreakdown(quantities, cfg, rates),
	}

	switch c := cfg.(type) {
	case WardrobeConfig:
		est.Wardrobe = &c
	case *WardrobeConfig:
		est.Wardrobe = c
	case TableConfig:
		est.Table = &c
	case *TableConfig:
		est.Table = c
	case SofaConfig:
		est.Sofa = &c
	case *SofaConfig:
		est.Sofa = c
	default:
		return Estimate{}, fmt.Errorf("unsupported configuration type %T", cfg)
	}
	return est, nil
}

// Config returns the configuration the estimate was computed from.
func (e Estimate) Config() (FurnitureConfig, error) {
	return configForKind(e.Kind, e.Wardrobe, e.Table, e.Sofa)
}

func configForKind(kind FurnitureKind, w *WardrobeConfig, t *TableConfig, s *SofaConfig) (FurnitureConfig, error) {
	switch kind {
	case KindWardrobe:
		if w == nil {
			return nil, fmt.Errorf("kind is %q but no wardrobe configuration is set", kind)
		}
		return *w, nil
	case KindTable:
		if t == nil {
			return nil, fmt.Errorf("kind is %q but no table configuration is set", kind)
		}
		return *t, nil
	case KindSofa:
		if s == nil {
			return nil, fmt.Errorf("kind is %q but no sofa configuration is set", kind)
		}
		return *s, nil
	default:
		return nil, fmt.Errorf("unknown furniture kind %q", kind)
	}
}
