package model

// Configurations are entered in inches; all derived quantities are carried
// in feet (lengths) and square feet (areas). Conversion happens exactly once,
// when a raw dimension is accumulated into a quantity.

// InchesToFeet converts a length in inches to feet.
func InchesToFeet(in float64) float64 {
	return in / 12.0
}

// SquareInchesToSquareFeet converts an area in square inches to square feet.
func SquareInchesToSquareFeet(in float64) float64 {
	return in / 144.0
}
