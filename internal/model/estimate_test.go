package model

import "testing"

func TestNewEstimateComputesEverything(t *testing.T) {
	est, err := NewEstimate("Bedroom wardrobe", validWardrobe(), DefaultRateTable())
	if err != nil {
		t.Fatalf("NewEstimate failed: %v", err)
	}
	if est.ID == "" || est.CreatedAt == "" {
		t.Error("estimate must carry an ID and a timestamp")
	}
	if est.Kind != KindWardrobe || est.Wardrobe == nil {
		t.Error("estimate must record the wardrobe configuration")
	}
	if est.Table != nil || est.Sofa != nil {
		t.Error("only the matching configuration may be set")
	}
	if est.Quantities.TotalMaterialAreaSqFt() <= 0 {
		t.Error("quantities were not computed")
	}
	if est.Costs.FinalCost <= 0 {
		t.Error("costs were not computed")
	}
}

func TestNewEstimateRejectsInvalidConfig(t *testing.T) {
	cfg := validWardrobe()
	cfg.Height = 0
	cfg.NumShelves = -2

	_, err := NewEstimate("bad", cfg, DefaultRateTable())
	if err == nil {
		t.Fatal("expected validation failure")
	}
	errs, ok := err.(ValidationErrors)
	if !ok {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	if len(errs) != 2 {
		t.Errorf("expected both violations reported, got %v", errs)
	}
}

func TestNewEstimateRejectsInvalidRates(t *testing.T) {
	rates := DefaultRateTable()
	rates.MarkupPercent = 250
	if _, err := NewEstimate("bad rates", validWardrobe(), rates); err == nil {
		t.Fatal("expected rate validation failure")
	}
}

func TestNewEstimateSnapshotsRates(t *testing.T) {
	rates := DefaultRateTable()
	est, err := NewEstimate("snapshot", validWardrobe(), rates)
	if err != nil {
		t.Fatalf("NewEstimate failed: %v", err)
	}
	rates.Material["plywood_18mm"] = 99
	if est.Rates.Material["plywood_18mm"] == 99 {
		t.Error("estimate must snapshot the rate table, not share it")
	}
}

func TestEstimateRequestConfig(t *testing.T) {
	w := validWardrobe()
	req := EstimateRequest{Name: "w", Kind: KindWardrobe, Wardrobe: &w}
	cfg, err := req.Config()
	if err != nil {
		t.Fatalf("Config failed: %v", err)
	}
	if cfg.Kind() != KindWardrobe {
		t.Errorf("wrong kind %q", cfg.Kind())
	}

	req = EstimateRequest{Kind: KindSofa}
	if _, err := req.Config(); err == nil {
		t.Error("missing sofa configuration must fail")
	}
	req = EstimateRequest{Kind: "bench"}
	if _, err := req.Config(); err == nil {
		t.Error("unknown kind must fail")
	}
}
