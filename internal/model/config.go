package model

// FurnitureKind tags the three supported furniture configurations.
type FurnitureKind string

const (
	KindWardrobe FurnitureKind = "wardrobe"
	KindTable    FurnitureKind = "table"
	KindSofa     FurnitureKind = "sofa"
)

// Capabilities declares which cross-cutting features apply to a furniture
// kind. The aggregator gates lighting, glass doors and upholstery on these
// flags instead of scattering per-kind conditionals.
type Capabilities struct {
	SupportsLighting   bool
	SupportsGlassDoors bool
	SupportsUpholstery bool
}

// Capabilities returns the feature applicability for the kind.
func (k FurnitureKind) Capabilities() Capabilities {
	switch k {
	case KindWardrobe:
		return Capabilities{SupportsLighting: true, SupportsGlassDoors: true}
	case KindSofa:
		return Capabilities{SupportsUpholstery: true}
	default:
		return Capabilities{}
	}
}

// FurnitureConfig is the uniform capability every furniture variant exposes
// to the quantity and cost pipeline. Implementations are plain value types;
// all methods are pure.
type FurnitureConfig interface {
	Kind() FurnitureKind
	// Validate collects every out-of-domain field. Quantities must only be
	// called on configurations that validate cleanly.
	Validate() ValidationErrors
	// Quantities derives the physical bill of quantities. Rates are consumed
	// only for pre-aggregated feature surcharges (glass doors, cushions),
	// never for material pricing.
	Quantities(rates RateTable) BillOfQuantities
	// Material is the sheet material priced per thickness class.
	Material() MaterialType
	// FinishName is the selected finish rate key ("none" for unfinished).
	FinishName() string
	// ExteriorFinishAreaSqFt is the exposed surface area priced when a
	// finish is selected.
	ExteriorFinishAreaSqFt() float64
	// LightingLengthFt is the lit run in feet, 0 when lighting is off or
	// unsupported for the kind.
	LightingLengthFt() float64
	// HardwareGrades maps each graded hardware category to the selected
	// grade key. Kinds without hardware return an empty map.
	HardwareGrades() map[HardwareCategory]string
	// UpholsteryName is the upholstery rate key, "" for non-upholstered kinds.
	UpholsteryName() string
}

// WardrobeConfig describes a wardrobe. Dimensions are inches.
type WardrobeConfig struct {
	Height float64 `json:"height"`
	Width  float64 `json:"width"`
	Depth  float64 `json:"depth"`

	NumShelves int `json:"num_shelves"`
	NumDrawers int `json:"num_drawers"`
	NumDoors   int `json:"num_doors"`

	// Drawer box dimensions, required when NumDrawers > 0.
	DrawerHeight float64 `json:"drawer_height,omitempty"`
	DrawerDepth  float64 `json:"drawer_depth,omitempty"`

	HasHangingRod bool `json:"has_hanging_rod"`
	HasBackPanel  bool `json:"has_back_panel"`
	HasLighting   bool `json:"has_lighting"`
	HasGlassDoors bool `json:"has_glass_doors"`

	MaterialType    MaterialType `json:"material_type"`
	HingeType       string       `json:"hinge_type"`
	DrawerSlideType string       `json:"drawer_slide_type"`
	HandleType      string       `json:"handle_type"`
	FinishType      string       `json:"finish_type"`
}

func (c WardrobeConfig) Kind() FurnitureKind    { return KindWardrobe }
func (c WardrobeConfig) Material() MaterialType { return c.MaterialType }
func (c WardrobeConfig) UpholsteryName() string { return "" }

// FinishName defaults to "none" when unset.
func (c WardrobeConfig) FinishName() string {
	if c.FinishType == "" {
		return FinishNone
	}
	return c.FinishType
}

// ExteriorFinishAreaSqFt covers both sides, the front face and the top.
func (c WardrobeConfig) ExteriorFinishAreaSqFt() float64 {
	return SquareInchesToSquareFeet(2*c.Height*c.Depth + c.Width*c.Height + c.Width*c.Depth)
}

// LightingLengthFt sizes an LED strip along the wardrobe width.
func (c WardrobeConfig) LightingLengthFt() float64 {
	if !c.HasLighting {
		return 0
	}
	return InchesToFeet(c.Width)
}

func (c WardrobeConfig) HardwareGrades() map[HardwareCategory]string {
	return map[HardwareCategory]string{
		HardwareHinge:       c.HingeType,
		HardwareDrawerSlide: c.DrawerSlideType,
		HardwareHandle:      c.HandleType,
	}
}

func (c WardrobeConfig) Validate() ValidationErrors {
	var errs ValidationErrors
	errs.requirePositive("height", c.Height)
	errs.requirePositive("width", c.Width)
	errs.requirePositive("depth", c.Depth)
	errs.requireNonNegativeCount("num_shelves", c.NumShelves)
	errs.requireNonNegativeCount("num_drawers", c.NumDrawers)
	errs.requireNonNegativeCount("num_doors", c.NumDoors)
	if c.NumDrawers > 0 {
		errs.requirePositive("drawer_height", c.DrawerHeight)
		errs.requirePositive("drawer_depth", c.DrawerDepth)
	}
	return errs
}

// TableConfig describes a table. Dimensions are inches.
type TableConfig struct {
	TableLength float64 `json:"table_length"`
	TableWidth  float64 `json:"table_width"`
	TableHeight float64 `json:"table_height"`

	MaterialType MaterialType `json:"material_type"`
	FinishType   string       `json:"finish_type"`
}

func (c TableConfig) Kind() FurnitureKind    { return KindTable }
func (c TableConfig) Material() MaterialType { return c.MaterialType }
func (c TableConfig) UpholsteryName() string { return "" }
func (c TableConfig) LightingLengthFt() float64 {
	return 0
}

func (c TableConfig) FinishName() string {
	if c.FinishType == "" {
		return FinishNone
	}
	return c.FinishType
}

// ExteriorFinishAreaSqFt covers the top and all four table sides.
func (c TableConfig) ExteriorFinishAreaSqFt() float64 {
	return SquareInchesToSquareFeet(c.TableLength*c.TableWidth +
		2*c.TableLength*c.TableHeight + 2*c.TableWidth*c.TableHeight)
}

func (c TableConfig) HardwareGrades() map[HardwareCategory]string {
	return map[HardwareCategory]string{}
}

func (c TableConfig) Validate() ValidationErrors {
	var errs ValidationErrors
	errs.requirePositive("table_length", c.TableLength)
	errs.requirePositive("table_width", c.TableWidth)
	errs.requirePositive("table_height", c.TableHeight)
	return errs
}

// SofaConfig describes a sofa set. Dimensions are inches.
type SofaConfig struct {
	SofaLength float64 `json:"sofa_length"`
	SofaDepth  float64 `json:"sofa_depth"`
	SofaHeight float64 `json:"sofa_height"`

	NumSeatCushions int  `json:"num_seat_cushions"`
	NumBackCushions int  `json:"num_back_cushions"`
	HasArms         bool `json:"has_arms"`

	MaterialType   MaterialType `json:"material_type"` // frame material
	UpholsteryType string       `json:"upholstery_type"`
	FinishType     string       `json:"finish_type"`
}

func (c SofaConfig) Kind() FurnitureKind    { return KindSofa }
func (c SofaConfig) Material() MaterialType { return c.MaterialType }
func (c SofaConfig) UpholsteryName() string { return c.UpholsteryType }
func (c SofaConfig) LightingLengthFt() float64 {
	return 0
}

func (c SofaConfig) FinishName() string {
	if c.FinishType == "" {
		return FinishNone
	}
	return c.FinishType
}

// ExteriorFinishAreaSqFt covers the exposed front and one side of the frame.
func (c SofaConfig) ExteriorFinishAreaSqFt() float64 {
	return SquareInchesToSquareFeet(c.SofaLength*c.SofaHeight + c.SofaDepth*c.SofaHeight)
}

func (c SofaConfig) HardwareGrades() map[HardwareCategory]string {
	return map[HardwareCategory]string{}
}

func (c SofaConfig) Validate() ValidationErrors {
	var errs ValidationErrors
	errs.requirePositive("sofa_length", c.SofaLength)
	errs.requirePositive("sofa_depth", c.SofaDepth)
	errs.requirePositive("sofa_height", c.SofaHeight)
	errs.requireNonNegativeCount("num_seat_cushions", c.NumSeatCushions)
	errs.requireNonNegativeCount("num_back_cushions", c.NumBackCushions)
	return errs
}
