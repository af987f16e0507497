package model

// CostBreakdown is the itemized pricing of a bill of quantities, in the
// base currency. It is a fresh value on every calculation and is never
// mutated in place.
type CostBreakdown struct {
	// MaterialCostByClass is the sheet material cost per thickness class.
	MaterialCostByClass map[ThicknessClass]float64 `json:"material_cost_by_class"`
	MaterialCost        float64                    `json:"material_cost"`
	EdgeBandingCost     float64                    `json:"edge_banding_cost"`
	HardwareCost        float64                    `json:"hardware_cost"`
	// AdditionalFeaturesCost combines the calculator's feature surcharges
	// with lighting, finish and upholstery pricing.
	AdditionalFeaturesCost float64 `json:"additional_features_cost"`
	LaborCost              float64 `json:"labor_cost"`
	Subtotal               float64 `json:"subtotal"`
	// FinalCost is Subtotal with markup applied.
	FinalCost float64 `json:"final_cost"`
}

// ComputeCostBreakdown prices a bill of quantities against the rate table.
// All monetary values are in the base currency; currency conversion is a
// display concern and never feeds back into this calculation.
//
// Order: material per class, edge banding, hardware, features, labor,
// subtotal, markup. Missing rate keys price as 0 rather than failing, so a
// partially edited rate table degrades instead of erroring.
func ComputeCostBreakdown(b BillOfQuantities, cfg FurnitureConfig, rates RateTable) CostBreakdown {
	var cb CostBreakdown

	cb.MaterialCostByClass = make(map[ThicknessClass]float64, len(ThicknessClasses))
	for _, class := range ThicknessClasses {
		cost := b.MaterialArea[class] * rates.MaterialRate(cfg.Material(), class)
		cb.MaterialCostByClass[class] = cost
		cb.MaterialCost += cost
	}

	cb.EdgeBandingCost = b.EdgeBandingFt * rates.EdgeBandingPerFt

	grades := cfg.HardwareGrades()
	for _, category := range []HardwareCategory{HardwareHinge, HardwareDrawerSlide, HardwareHandle} {
		cb.HardwareCost += float64(b.Hardware[category]) * rates.HardwareRate(category, grades[category])
	}
	cb.HardwareCost += float64(b.Hardware[HardwareHangingRod]) * rates.HangingRodCost

	caps := cfg.Kind().Capabilities()
	cb.AdditionalFeaturesCost = b.FeaturesCost
	if caps.SupportsLighting {
		cb.AdditionalFeaturesCost += cfg.LightingLengthFt() * rates.LightingPerFt
	}
	if name := cfg.FinishName(); name != FinishNone {
		cb.AdditionalFeaturesCost += cfg.ExteriorFinishAreaSqFt() * rates.FinishRate(name)
	}
	if caps.SupportsUpholstery {
		cb.AdditionalFeaturesCost += b.UpholsteryAreaSqFt * rates.UpholsteryRate(cfg.UpholsteryName())
	}

	cb.LaborCost = laborCost(b, cb, rates)

	cb.Subtotal = cb.MaterialCost + cb.EdgeBandingCost + cb.HardwareCost +
		cb.LaborCost + cb.AdditionalFeaturesCost
	cb.FinalCost = cb.Subtotal * (1 + rates.MarkupPercent/100)

	return cb
}

// laborCost applies the table's labor policy. Hourly is the default; the
// percent-of-direct policy charges a fixed share of everything priced so
// far (material, banding, hardware, features).
func laborCost(b BillOfQuantities, cb CostBreakdown, rates RateTable) float64 {
	switch rates.LaborPolicy {
	case LaborPercentOfDirect:
		direct := cb.MaterialCost + cb.EdgeBandingCost + cb.HardwareCost + cb.AdditionalFeaturesCost
		return directCostLaborShare * direct
	default:
		return b.LaborHours * rates.LaborHourlyRate
	}
}
