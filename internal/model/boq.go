package model

// Panel is a single rectangular piece in the cut list, in inches. Panels are
// display and export material (cut-list PDF/Excel sections, DXF export); the
// area totals in the bill of quantities stay authoritative for pricing.
type Panel struct {
	Label     string         `json:"label"`
	Width     float64        `json:"width"`  // inches
	Height    float64        `json:"height"` // inches
	Quantity  int            `json:"quantity"`
	Thickness ThicknessClass `json:"thickness"`
}

// Area returns the total area of all pieces of this panel in square feet.
func (p Panel) Area() float64 {
	return SquareInchesToSquareFeet(p.Width * p.Height * float64(p.Quantity))
}

// BillOfQuantities holds the physical quantities derived from a furniture
// configuration, prior to any pricing. It is recomputed from scratch on
// every configuration or rate change; identical inputs yield identical
// bills.
type BillOfQuantities struct {
	// MaterialArea is square feet of sheet material per thickness class.
	MaterialArea map[ThicknessClass]float64 `json:"material_area"`
	// EdgeBandingFt is the edge banding run in linear feet.
	EdgeBandingFt float64 `json:"edge_banding_ft"`
	// Hardware counts units per category.
	Hardware map[HardwareCategory]int `json:"hardware"`
	// FeaturesCost is the pre-aggregated surcharge for features priced
	// inside the geometry calculation (glass doors, cushions, legs, arms),
	// in base currency.
	FeaturesCost float64 `json:"features_cost"`
	// UpholsteryAreaSqFt is the fabric wrap area, 0 for non-upholstered kinds.
	UpholsteryAreaSqFt float64 `json:"upholstery_area_sqft"`
	// LaborHours is the estimated build time. Informational under the
	// percent-of-direct labor policy.
	LaborHours float64 `json:"labor_hours"`
	// Panels is the cut list the material areas were decomposed from.
	// Quantities that have no rectangular decomposition (the sofa frame
	// proxy, for one) contribute area without panels.
	Panels []Panel `json:"panels,omitempty"`
}

func newBillOfQuantities() BillOfQuantities {
	return BillOfQuantities{
		MaterialArea: map[ThicknessClass]float64{
			Thickness18mm: 0,
			Thickness12mm: 0,
			Thickness6mm:  0,
		},
		Hardware: map[HardwareCategory]int{
			HardwareHinge:       0,
			HardwareDrawerSlide: 0,
			HardwareHandle:      0,
			HardwareHangingRod:  0,
		},
	}
}

// addArea accumulates raw square inches into a thickness class.
func (b *BillOfQuantities) addArea(t ThicknessClass, squareInches float64) {
	b.MaterialArea[t] += SquareInchesToSquareFeet(squareInches)
}

// addPanel records a cut-list panel and accumulates its area.
func (b *BillOfQuantities) addPanel(label string, w, h float64, qty int, t ThicknessClass) {
	if qty <= 0 {
		return
	}
	b.Panels = append(b.Panels, Panel{Label: label, Width: w, Height: h, Quantity: qty, Thickness: t})
	b.addArea(t, w*h*float64(qty))
}

// addEdgeBanding accumulates raw inches of banded edge.
func (b *BillOfQuantities) addEdgeBanding(inches float64) {
	b.EdgeBandingFt += InchesToFeet(inches)
}

// TotalMaterialAreaSqFt sums the sheet material area across all classes.
func (b BillOfQuantities) TotalMaterialAreaSqFt() float64 {
	var total float64
	for _, a := range b.MaterialArea {
		total += a
	}
	return total
}
