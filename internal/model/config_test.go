package model

import "testing"

func validWardrobe() WardrobeConfig {
	return WardrobeConfig{
		Height: 72, Width: 36, Depth: 24,
		NumShelves: 2, NumDoors: 2,
		HasHangingRod: true, HasBackPanel: true,
		MaterialType: MaterialPlywood,
		HingeType:    "standard", DrawerSlideType: "standard", HandleType: "standard",
	}
}

func TestWardrobeValidateCollectsAllViolations(t *testing.T) {
	cfg := WardrobeConfig{
		Height: 0, Width: -3, Depth: 24,
		NumShelves: -1, NumDrawers: 2, NumDoors: 0,
		// drawer dimensions missing while NumDrawers > 0
	}
	errs := cfg.Validate()
	// height, width, num_shelves, drawer_height, drawer_depth
	if len(errs) != 5 {
		t.Errorf("expected 5 violations, got %d: %v", len(errs), errs)
	}
}

func TestWardrobeDrawerDimensionsOnlyRequiredWithDrawers(t *testing.T) {
	cfg := validWardrobe()
	cfg.NumDrawers = 0
	cfg.DrawerHeight = 0
	cfg.DrawerDepth = 0
	if errs := cfg.Validate(); len(errs) != 0 {
		t.Errorf("drawerless wardrobe should not require drawer dimensions: %v", errs)
	}

	cfg.NumDrawers = 3
	errs := cfg.Validate()
	if len(errs) != 2 {
		t.Errorf("expected drawer_height and drawer_depth violations, got %v", errs)
	}
}

func TestTableValidate(t *testing.T) {
	cfg := TableConfig{TableLength: 48, TableWidth: 24, TableHeight: 30, MaterialType: MaterialSolidWood}
	if errs := cfg.Validate(); len(errs) != 0 {
		t.Errorf("valid table rejected: %v", errs)
	}

	cfg.TableLength = 0
	cfg.TableWidth = -1
	if errs := cfg.Validate(); len(errs) != 2 {
		t.Errorf("expected 2 violations, got %v", errs)
	}
}

func TestSofaValidate(t *testing.T) {
	cfg := SofaConfig{SofaLength: 80, SofaDepth: 36, SofaHeight: 30, MaterialType: MaterialPlywood, UpholsteryType: "fabric"}
	if errs := cfg.Validate(); len(errs) != 0 {
		t.Errorf("valid sofa rejected: %v", errs)
	}

	cfg.NumSeatCushions = -1
	cfg.SofaHeight = 0
	if errs := cfg.Validate(); len(errs) != 2 {
		t.Errorf("expected 2 violations, got %v", errs)
	}
}

func TestCapabilitiesPerKind(t *testing.T) {
	w := KindWardrobe.Capabilities()
	if !w.SupportsLighting || !w.SupportsGlassDoors || w.SupportsUpholstery {
		t.Errorf("wardrobe capabilities wrong: %+v", w)
	}
	tb := KindTable.Capabilities()
	if tb.SupportsLighting || tb.SupportsGlassDoors || tb.SupportsUpholstery {
		t.Errorf("table capabilities wrong: %+v", tb)
	}
	s := KindSofa.Capabilities()
	if s.SupportsLighting || s.SupportsGlassDoors || !s.SupportsUpholstery {
		t.Errorf("sofa capabilities wrong: %+v", s)
	}
}

func TestFinishNameDefaultsToNone(t *testing.T) {
	if got := (WardrobeConfig{}).FinishName(); got != FinishNone {
		t.Errorf("empty finish should read as %q, got %q", FinishNone, got)
	}
	if got := (TableConfig{FinishType: "veneer"}).FinishName(); got != "veneer" {
		t.Errorf("explicit finish lost: %q", got)
	}
}

func TestLightingLengthGatedOnFlag(t *testing.T) {
	cfg := validWardrobe()
	if got := cfg.LightingLengthFt(); got != 0 {
		t.Errorf("lighting off should yield 0 ft, got %g", got)
	}
	cfg.HasLighting = true
	if got := cfg.LightingLengthFt(); got != 3 {
		t.Errorf("36in wardrobe should light 3 ft, got %g", got)
	}
}
