package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/FurniQuote/internal/model"
)

// ExportQuoteExcel writes an estimate as an .xlsx workbook with a Quote
// sheet (itemized costs) and, when the build has one, a Cut List sheet.
func ExportQuoteExcel(path string, est model.Estimate, cur model.Currency) error {
	f := excelize.NewFile()
	defer f.Close()

	const quoteSheet = "Quote"
	if err := f.SetSheetName(f.GetSheetName(0), quoteSheet); err != nil {
		return fmt.Errorf("set sheet name: %w", err)
	}
	if err := f.SetColWidth(quoteSheet, "A", "A", 42); err != nil {
		return fmt.Errorf("set col width: %w", err)
	}
	if err := f.SetColWidth(quoteSheet, "B", "B", 16); err != nil {
		return fmt.Errorf("set col width: %w", err)
	}

	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return fmt.Errorf("create title style: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 10},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}
	totalStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 11}})
	if err != nil {
		return fmt.Errorf("create total style: %w", err)
	}

	set := func(cell string, value any) error {
		return f.SetCellValue(quoteSheet, cell, value)
	}
	if err := set("A1", "Furniture Cost Estimate"); err != nil {
		return err
	}
	if err := f.SetCellStyle(quoteSheet, "A1", "A1", titleStyle); err != nil {
		return err
	}
	if err := set("A2", fmt.Sprintf("%s  |  Ref %s  |  %s  |  %s", est.Name, est.ID, est.Kind, est.CreatedAt)); err != nil {
		return err
	}

	if err := set("A4", "Item"); err != nil {
		return err
	}
	if err := set("B4", fmt.Sprintf("Amount (%s)", cur.Code)); err != nil {
		return err
	}
	if err := f.SetCellStyle(quoteSheet, "A4", "B4", headerStyle); err != nil {
		return err
	}

	rowNum := 5
	writeRow := func(label string, amount float64) error {
		if err := set(fmt.Sprintf("A%d", rowNum), label); err != nil {
			return err
		}
		if err := set(fmt.Sprintf("B%d", rowNum), amount*cur.Rate); err != nil {
			return err
		}
		rowNum++
		return nil
	}

	cb := est.Costs
	for _, class := range model.ThicknessClasses {
		if cost := cb.MaterialCostByClass[class]; cost > 0 {
			label := fmt.Sprintf("Material %s (%.1f sqft)", class, est.Quantities.MaterialArea[class])
			if err := writeRow(label, cost); err != nil {
				return err
			}
		}
	}
	if cb.EdgeBandingCost > 0 {
		if err := writeRow(fmt.Sprintf("Edge banding (%.1f ft)", est.Quantities.EdgeBandingFt), cb.EdgeBandingCost); err != nil {
			return err
		}
	}
	if cb.HardwareCost > 0 {
		if err := writeRow("Hardware", cb.HardwareCost); err != nil {
			return err
		}
	}
	if cb.AdditionalFeaturesCost > 0 {
		if err := writeRow("Features", cb.AdditionalFeaturesCost); err != nil {
			return err
		}
	}
	if err := writeRow(fmt.Sprintf("Labor (%.1f h)", est.Quantities.LaborHours), cb.LaborCost); err != nil {
		return err
	}
	if err := writeRow("Subtotal", cb.Subtotal); err != nil {
		return err
	}
	totalRow := rowNum
	if err := writeRow(fmt.Sprintf("Total incl. %.0f%% markup", est.Rates.MarkupPercent), cb.FinalCost); err != nil {
		return err
	}
	if err := f.SetCellStyle(quoteSheet, fmt.Sprintf("A%d", totalRow), fmt.Sprintf("B%d", totalRow), totalStyle); err != nil {
		return err
	}

	numberFmt := "#,##0.00"
	moneyStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &numberFmt})
	if err != nil {
		return fmt.Errorf("create money style: %w", err)
	}
	if err := f.SetCellStyle(quoteSheet, "B5", fmt.Sprintf("B%d", rowNum-1), moneyStyle); err != nil {
		return err
	}

	if err := writeCutListSheet(f, headerStyle, est.Quantities.Panels); err != nil {
		return err
	}

	return f.SaveAs(path)
}

// writeCutListSheet adds a Cut List sheet when the estimate carries panels.
func writeCutListSheet(f *excelize.File, headerStyle int, panels []model.Panel) error {
	if len(panels) == 0 {
		return nil
	}
	const sheet = "Cut List"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create cut list sheet: %w", err)
	}
	if err := f.SetColWidth(sheet, "A", "A", 28); err != nil {
		return err
	}

	headers := []string{"Panel", "Width (in)", "Height (in)", "Qty", "Thickness"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(sheet, "A1", "E1", headerStyle); err != nil {
		return err
	}

	for i, p := range panels {
		row := i + 2
		values := []any{p.Label, p.Width, p.Height, p.Quantity, string(p.Thickness)}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}
