package model

// sofaFrameVolumeDivisor converts the sofa bounding volume (cubic inches)
// to a frame material area proxy (square inches). The frame is not panel-
// decomposed; the divisor is calibrated against typical frame usage and
// must not change without recalibrating quoted prices.
const sofaFrameVolumeDivisor = 5.0

const (
	sofaLaborVolumeDivisor = 15000.0
	sofaLaborPerCushion    = 0.5
	sofaLaborArms          = 1.5
	sofaMinLaborHours      = 8.0
)

// Quantities derives the sofa frame area proxy, the upholstery wrap area
// and the cushion/leg/arm surcharges. Sofas carry no edge banding and no
// graded hardware.
func (c SofaConfig) Quantities(rates RateTable) BillOfQuantities {
	b := newBillOfQuantities()

	// Frame: volumetric proxy, no cut-list panels.
	b.addArea(Thickness18mm, (c.SofaLength*c.SofaDepth*c.SofaHeight)/sofaFrameVolumeDivisor)

	// Upholstery wraps front, back, both sides and the top.
	b.UpholsteryAreaSqFt = SquareInchesToSquareFeet(
		2*c.SofaLength*c.SofaHeight + 2*c.SofaDepth*c.SofaHeight + c.SofaLength*c.SofaDepth)

	cushions := c.NumSeatCushions + c.NumBackCushions
	b.FeaturesCost = float64(cushions)*rates.CushionCost + rates.LegSetCost
	if c.HasArms {
		b.FeaturesCost += rates.ArmPairCost
	}

	hours := (c.SofaLength * c.SofaDepth * c.SofaHeight) / sofaLaborVolumeDivisor
	hours += float64(cushions) * sofaLaborPerCushion
	if c.HasArms {
		hours += sofaLaborArms
	}
	if hours < sofaMinLaborHours {
		hours = sofaMinLaborHours
	}
	b.LaborHours = hours

	return b
}
