package model

import (
	"math"
	"sort"
)

// SheetSize is one standard sheet format in the purchase catalog.
type SheetSize struct {
	Name     string  `json:"name"`
	AreaSqFt float64 `json:"area_sqft"`
}

// DefaultSheetCatalog returns the standard plywood sheet formats.
func DefaultSheetCatalog() []SheetSize {
	return []SheetSize{
		{Name: "8x4", AreaSqFt: 32},
		{Name: "7x4", AreaSqFt: 28},
		{Name: "6x4", AreaSqFt: 24},
		{Name: "7x3", AreaSqFt: 21},
	}
}

// EstimateSheets greedily covers the required area with catalog sheets,
// largest first, and rounds any leftover up to one extra unit of the
// smallest sheet. The result maps sheet name to count, omitting zero
// counts. This is a purchase estimate, not a cutting layout: it can use
// more sheets than an optimal combination would, and the counts are never
// priced.
func EstimateSheets(requiredSqFt float64, catalog []SheetSize) map[string]int {
	counts := map[string]int{}
	if requiredSqFt <= 0 || len(catalog) == 0 {
		return counts
	}

	sorted := make([]SheetSize, len(catalog))
	copy(sorted, catalog)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].AreaSqFt > sorted[j].AreaSqFt
	})

	remaining := requiredSqFt
	for _, sheet := range sorted {
		if sheet.AreaSqFt <= 0 {
			continue
		}
		n := int(math.Floor(remaining / sheet.AreaSqFt))
		if n > 0 {
			counts[sheet.Name] += n
			remaining -= float64(n) * sheet.AreaSqFt
		}
	}

	if remaining > 0 {
		smallest := sorted[len(sorted)-1]
		counts[smallest.Name]++
	}
	return counts
}
