package model

import "testing"

// Reference table: 48x24 top, 30 high.
func TestTableQuantitiesReference(t *testing.T) {
	cfg := TableConfig{TableLength: 48, TableWidth: 24, TableHeight: 30, MaterialType: MaterialSolidWood}
	b := cfg.Quantities(DefaultRateTable())

	// Top 1152 sqin + legs 4*3*29 = 348 sqin + rails (2*48 + 2*24)*3 = 432 sqin.
	want := SquareInchesToSquareFeet(1152 + 348 + 432)
	if got := b.MaterialArea[Thickness18mm]; !approxEqual(got, want) {
		t.Errorf("18mm area = %g sqft, want %g", got, want)
	}

	// Same figure via the linear-footage form from the pricing sheet.
	alt := 48.0*24.0/144.0 + (4.0*(29.0/12.0)+(2*48.0+2*24.0)/12.0)*(3.0/12.0)
	if !approxEqual(want, alt) {
		t.Errorf("strip decomposition %g disagrees with linear form %g", want, alt)
	}

	if b.MaterialArea[Thickness12mm] != 0 || b.MaterialArea[Thickness6mm] != 0 {
		t.Error("table uses only 18mm material")
	}

	// Tabletop perimeter only: (96+48)/12.
	if !approxEqual(b.EdgeBandingFt, 12) {
		t.Errorf("edge banding = %g ft, want 12", b.EdgeBandingFt)
	}

	for cat, n := range b.Hardware {
		if n != 0 {
			t.Errorf("hardware[%s] = %d, tables carry no hardware", cat, n)
		}
	}
	if b.FeaturesCost != 0 {
		t.Errorf("features cost = %g, want 0", b.FeaturesCost)
	}

	// 34560/50000 = 0.69 floors to the 2-hour minimum.
	if b.LaborHours != 2 {
		t.Errorf("labor hours = %g, want minimum 2", b.LaborHours)
	}
}

func TestTableLaborAboveFloor(t *testing.T) {
	cfg := TableConfig{TableLength: 96, TableWidth: 48, TableHeight: 30, MaterialType: MaterialSolidWood}
	b := cfg.Quantities(DefaultRateTable())
	want := 96.0 * 48.0 * 30.0 / 50000.0
	if !approxEqual(b.LaborHours, want) {
		t.Errorf("labor hours = %g, want %g", b.LaborHours, want)
	}
}

func TestTablePanelsMatchAreas(t *testing.T) {
	cfg := TableConfig{TableLength: 60, TableWidth: 30, TableHeight: 29, MaterialType: MaterialPlywood}
	b := cfg.Quantities(DefaultRateTable())

	var sum float64
	for _, p := range b.Panels {
		sum += p.Area()
	}
	if !approxEqual(sum, b.MaterialArea[Thickness18mm]) {
		t.Errorf("panel areas sum to %g, bill says %g", sum, b.MaterialArea[Thickness18mm])
	}
}
