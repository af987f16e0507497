package model

import "testing"

func referenceSofa() SofaConfig {
	return SofaConfig{
		SofaLength: 80, SofaDepth: 36, SofaHeight: 30,
		NumSeatCushions: 3, NumBackCushions: 3,
		HasArms:      true,
		MaterialType: MaterialPlywood, UpholsteryType: "fabric",
	}
}

// Reference sofa: 80x36x30, 3+3 cushions, arms.
func TestSofaQuantitiesReference(t *testing.T) {
	rates := DefaultRateTable()
	b := referenceSofa().Quantities(rates)

	// Frame proxy: 80*36*30/5 = 17280 sqin.
	if got := b.MaterialArea[Thickness18mm]; !approxEqual(got, 120) {
		t.Errorf("frame area = %g sqft, want 120", got)
	}

	// Wrap: 2*80*30 + 2*36*30 + 80*36 = 9840 sqin.
	if !approxEqual(b.UpholsteryAreaSqFt, 9840.0/144.0) {
		t.Errorf("upholstery area = %g sqft, want %g", b.UpholsteryAreaSqFt, 9840.0/144.0)
	}

	want := 6*rates.CushionCost + rates.LegSetCost + rates.ArmPairCost
	if !approxEqual(b.FeaturesCost, want) {
		t.Errorf("features cost = %g, want %g", b.FeaturesCost, want)
	}

	if b.EdgeBandingFt != 0 {
		t.Errorf("sofas carry no edge banding, got %g ft", b.EdgeBandingFt)
	}
	for cat, n := range b.Hardware {
		if n != 0 {
			t.Errorf("hardware[%s] = %d, sofas carry no hardware", cat, n)
		}
	}

	// 86400/15000 + 6*0.5 + 1.5 = 10.26.
	if !approxEqual(b.LaborHours, 10.26) {
		t.Errorf("labor hours = %g, want 10.26", b.LaborHours)
	}
}

func TestSofaWithoutArmsOrCushions(t *testing.T) {
	rates := DefaultRateTable()
	cfg := referenceSofa()
	cfg.NumSeatCushions = 0
	cfg.NumBackCushions = 0
	cfg.HasArms = false

	b := cfg.Quantities(rates)
	// Leg set is always fitted.
	if !approxEqual(b.FeaturesCost, rates.LegSetCost) {
		t.Errorf("features cost = %g, want leg set only (%g)", b.FeaturesCost, rates.LegSetCost)
	}
	// 5.76 + 0 + 0 floors to the 8-hour minimum.
	if b.LaborHours != 8 {
		t.Errorf("labor hours = %g, want minimum 8", b.LaborHours)
	}
}

func TestSofaFrameHasNoPanels(t *testing.T) {
	b := referenceSofa().Quantities(DefaultRateTable())
	if len(b.Panels) != 0 {
		t.Errorf("the volumetric frame proxy has no rectangular cut list, got %d panels", len(b.Panels))
	}
}
