package model

import "strings"

// ThicknessClass is a material-gauge bucket. Each class carries its own
// per-square-foot rate in the rate table.
type ThicknessClass string

const (
	Thickness18mm ThicknessClass = "18mm" // carcass panels, doors, drawer fronts, tabletops
	Thickness12mm ThicknessClass = "12mm" // shelves, drawer boxes
	Thickness6mm  ThicknessClass = "6mm"  // back panels
)

// ThicknessClasses lists all classes in display order (thickest first).
var ThicknessClasses = []ThicknessClass{Thickness18mm, Thickness12mm, Thickness6mm}

// MaterialType identifies the sheet material of a piece of furniture.
type MaterialType string

const (
	MaterialPlywood   MaterialType = "plywood"
	MaterialMDF       MaterialType = "mdf"
	MaterialSolidWood MaterialType = "solid_wood"
)

// HardwareCategory identifies a unit-priced hardware item.
type HardwareCategory string

const (
	HardwareHinge       HardwareCategory = "hinge"
	HardwareDrawerSlide HardwareCategory = "drawer_slide"
	HardwareHandle      HardwareCategory = "handle"
	HardwareHangingRod  HardwareCategory = "hanging_rod"
)

// LaborPolicy selects how labor cost is derived from a bill of quantities.
type LaborPolicy string

const (
	// LaborHourly prices labor as estimated hours times the hourly rate.
	LaborHourly LaborPolicy = "hourly"
	// LaborPercentOfDirect prices labor as a fixed share of the direct
	// costs (material + edge banding + hardware + features).
	LaborPercentOfDirect LaborPolicy = "percent_of_direct"
)

// directCostLaborShare is the share of direct costs charged as labor when
// LaborPercentOfDirect is selected.
const directCostLaborShare = 0.70

// FinishNone is the finish key that must always be present and cost 0.
const FinishNone = "none"

// RateTable holds every user-editable unit price plus the global labor and
// markup parameters, all in the base currency. Treat values as immutable:
// edits go through Clone or WithRate, which produce a fresh table, so a
// reader never observes a partially-updated one.
type RateTable struct {
	// Material maps "{material}_{thickness}" (e.g. "plywood_18mm") to $/sqft.
	Material map[string]float64 `json:"material"`
	// EdgeBandingPerFt is the edge banding price in $/linear foot.
	EdgeBandingPerFt float64 `json:"edge_banding_per_ft"`
	// Hardware maps category ("hinge", "drawer_slide", "handle") to grade
	// to $/unit. The hanging rod has a single price, not graded.
	Hardware       map[string]map[string]float64 `json:"hardware"`
	HangingRodCost float64                       `json:"hanging_rod_cost"`

	LightingPerFt    float64 `json:"lighting_per_ft"`
	GlassDoorPerDoor float64 `json:"glass_door_per_door"`

	// Finish maps finish name to $/sqft of exterior area. Must contain
	// "none" with price 0.
	Finish map[string]float64 `json:"finish"`

	// Upholstery maps upholstery type to $/sqft of wrap area.
	Upholstery  map[string]float64 `json:"upholstery"`
	CushionCost float64            `json:"cushion_cost"`
	LegSetCost  float64            `json:"leg_set_cost"`
	ArmPairCost float64            `json:"arm_pair_cost"`

	LaborHourlyRate float64     `json:"labor_hourly_rate"`
	LaborPolicy     LaborPolicy `json:"labor_policy"`
	// MarkupPercent is applied to the fully-loaded subtotal, range 0-100.
	MarkupPercent float64 `json:"markup_percent"`
}

// DefaultRateTable returns a table populated with the built-in prices.
func DefaultRateTable() RateTable {
	return RateTable{
		Material: map[string]float64{
			"plywood_18mm":    3.50,
			"plywood_12mm":    2.80,
			"plywood_6mm":     1.80,
			"mdf_18mm":        2.50,
			"mdf_12mm":        2.00,
			"mdf_6mm":         1.40,
			"solid_wood_18mm": 8.00,
			"solid_wood_12mm": 6.50,
			"solid_wood_6mm":  4.50,
		},
		EdgeBandingPerFt: 0.50,
		Hardware: map[string]map[string]float64{
			"hinge":        {"standard": 1.50, "soft_close": 3.50, "premium": 5.00},
			"drawer_slide": {"standard": 4.00, "soft_close": 8.00, "premium": 12.00},
			"handle":       {"standard": 2.00, "premium": 6.00, "designer": 10.00},
		},
		HangingRodCost:   8.00,
		LightingPerFt:    12.00,
		GlassDoorPerDoor: 40.00,
		Finish: map[string]float64{
			FinishNone: 0,
			"laminate": 1.20,
			"paint":    1.80,
			"veneer":   2.50,
			"lacquer":  3.00,
		},
		Upholstery: map[string]float64{
			"fabric":            8.00,
			"synthetic_leather": 12.00,
			"velvet":            14.00,
			"leather":           22.00,
		},
		CushionCost:     25.00,
		LegSetCost:      40.00,
		ArmPairCost:     60.00,
		LaborHourlyRate: 20.00,
		LaborPolicy:     LaborHourly,
		MarkupPercent:   20.00,
	}
}

// MaterialKey builds the rate table key for a material/thickness pair.
func MaterialKey(m MaterialType, t ThicknessClass) string {
	return string(m) + "_" + string(t)
}

// MaterialRate returns the $/sqft for a material/thickness pair.
// An unknown key costs 0; the table is user-editable and keys can be
// transiently absent.
func (r RateTable) MaterialRate(m MaterialType, t ThicknessClass) float64 {
	return r.Material[MaterialKey(m, t)]
}

// HardwareRate returns the $/unit for a hardware category and grade.
// The hanging rod ignores the grade. Unknown category or grade costs 0.
func (r RateTable) HardwareRate(category HardwareCategory, grade string) float64 {
	if category == HardwareHangingRod {
		return r.HangingRodCost
	}
	grades, ok := r.Hardware[string(category)]
	if !ok {
		return 0
	}
	return grades[grade]
}

// FinishRate returns the $/sqft for a finish name, 0 when unknown.
func (r RateTable) FinishRate(name string) float64 {
	return r.Finish[name]
}

// UpholsteryRate returns the $/sqft for an upholstery type, 0 when unknown.
func (r RateTable) UpholsteryRate(name string) float64 {
	return r.Upholstery[name]
}

// Clone returns a deep copy of the table. Callers mutate the copy, never
// the original.
func (r RateTable) Clone() RateTable {
	out := r
	out.Material = make(map[string]float64, len(r.Material))
	for k, v := range r.Material {
		out.Material[k] = v
	}
	out.Hardware = make(map[string]map[string]float64, len(r.Hardware))
	for cat, grades := range r.Hardware {
		cp := make(map[string]float64, len(grades))
		for g, v := range grades {
			cp[g] = v
		}
		out.Hardware[cat] = cp
	}
	out.Finish = make(map[string]float64, len(r.Finish))
	for k, v := range r.Finish {
		out.Finish[k] = v
	}
	out.Upholstery = make(map[string]float64, len(r.Upholstery))
	for k, v := range r.Upholstery {
		out.Upholstery[k] = v
	}
	return out
}

// WithRate returns a copy of the table with the flat key set to value.
// Recognized keys are the scalar names ("edge_banding_per_ft",
// "labor_hourly_rate", ...), material keys ("plywood_18mm"), hardware keys
// ("hinge_soft_close"), "finish_<name>" and "upholstery_<name>". The second
// return value reports whether the key was recognized.
func (r RateTable) WithRate(key string, value float64) (RateTable, bool) {
	out := r.Clone()
	switch key {
	case "edge_banding_per_ft":
		out.EdgeBandingPerFt = value
	case "hanging_rod_cost", "hanging_rod":
		out.HangingRodCost = value
	case "lighting_per_ft":
		out.LightingPerFt = value
	case "glass_door_per_door":
		out.GlassDoorPerDoor = value
	case "cushion_cost":
		out.CushionCost = value
	case "leg_set_cost":
		out.LegSetCost = value
	case "arm_pair_cost":
		out.ArmPairCost = value
	case "labor_hourly_rate":
		out.LaborHourlyRate = value
	case "markup_percent":
		out.MarkupPercent = value
	default:
		return r.withMappedRate(out, key, value)
	}
	return out, true
}

func (r RateTable) withMappedRate(out RateTable, key string, value float64) (RateTable, bool) {
	if name, ok := strings.CutPrefix(key, "finish_"); ok {
		out.Finish[name] = value
		return out, true
	}
	if name, ok := strings.CutPrefix(key, "upholstery_"); ok {
		out.Upholstery[name] = value
		return out, true
	}
	if _, exists := r.Material[key]; exists {
		out.Material[key] = value
		return out, true
	}
	for _, cat := range []string{"hinge", "drawer_slide", "handle"} {
		if grade, ok := strings.CutPrefix(key, cat+"_"); ok && grade != "" {
			if out.Hardware[cat] == nil {
				out.Hardware[cat] = map[string]float64{}
			}
			out.Hardware[cat][grade] = value
			return out, true
		}
	}
	return r, false
}

// Validate collects every out-of-domain entry: negative prices anywhere and
// a markup outside [0,100].
func (r RateTable) Validate() ValidationErrors {
	var errs ValidationErrors
	for key, v := range r.Material {
		if v < 0 {
			errs.add("material."+key, "rate must not be negative, got %g", v)
		}
	}
	if r.EdgeBandingPerFt < 0 {
		errs.add("edge_banding_per_ft", "rate must not be negative, got %g", r.EdgeBandingPerFt)
	}
	for cat, grades := range r.Hardware {
		for grade, v := range grades {
			if v < 0 {
				errs.add("hardware."+cat+"."+grade, "rate must not be negative, got %g", v)
			}
		}
	}
	for key, v := range map[string]float64{
		"hanging_rod_cost":    r.HangingRodCost,
		"lighting_per_ft":     r.LightingPerFt,
		"glass_door_per_door": r.GlassDoorPerDoor,
		"cushion_cost":        r.CushionCost,
		"leg_set_cost":        r.LegSetCost,
		"arm_pair_cost":       r.ArmPairCost,
		"labor_hourly_rate":   r.LaborHourlyRate,
	} {
		if v < 0 {
			errs.add(key, "rate must not be negative, got %g", v)
		}
	}
	for name, v := range r.Finish {
		if v < 0 {
			errs.add("finish."+name, "rate must not be negative, got %g", v)
		}
	}
	for name, v := range r.Upholstery {
		if v < 0 {
			errs.add("upholstery."+name, "rate must not be negative, got %g", v)
		}
	}
	if r.MarkupPercent < 0 || r.MarkupPercent > 100 {
		errs.add("markup_percent", "must be between 0 and 100, got %g", r.MarkupPercent)
	}
	return errs
}

// Normalize fills nil maps and missing required keys after a JSON load so
// lookups never hit a nil map and "none" always prices to 0.
func (r *RateTable) Normalize() {
	if r.Material == nil {
		r.Material = map[string]float64{}
	}
	if r.Hardware == nil {
		r.Hardware = map[string]map[string]float64{}
	}
	if r.Finish == nil {
		r.Finish = map[string]float64{}
	}
	r.Finish[FinishNone] = 0
	if r.Upholstery == nil {
		r.Upholstery = map[string]float64{}
	}
	if r.LaborPolicy == "" {
		r.LaborPolicy = LaborHourly
	}
}
