// Package export renders estimates to customer-facing file formats:
// a printable quote PDF, an Excel workbook, and a DXF cut list.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/piwi3910/FurniQuote/internal/model"
)

// Page layout constants (A4 portrait in mm).
const (
	quotePageWidth  = 210.0
	quoteMarginLeft = 18.0
	quoteMarginTop  = 16.0
	quoteLineHeight = 6.0
	quoteQRSize     = 26.0

	labelColWidth  = 110.0
	amountColWidth = 45.0
)

// quoteRef is the data encoded into the quote's QR code so a printed
// quote can be matched back to its saved estimate.
type quoteRef struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Kind     string  `json:"kind"`
	Total    float64 `json:"total"`
	Currency string  `json:"currency"`
	IssuedAt string  `json:"issued_at"`
}

// ExportQuotePDF renders an estimate as a single-page quote: header,
// configuration summary, itemized cost table, cut list and a purchase
// sheet estimate for plywood builds, plus a QR reference code.
func ExportQuotePDF(path string, est model.Estimate, cur model.Currency) error {
	cfg, err := est.Config()
	if err != nil {
		return err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	// Header
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(quoteMarginLeft, quoteMarginTop)
	pdf.CellFormat(quotePageWidth-2*quoteMarginLeft, 8, "Furniture Cost Estimate", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(90, 90, 90)
	pdf.SetX(quoteMarginLeft)
	meta := fmt.Sprintf("%s  |  Ref %s  |  %s  |  Issued %s", est.Name, est.ID, est.Kind, est.CreatedAt)
	pdf.CellFormat(quotePageWidth-2*quoteMarginLeft, 5, meta, "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(3)

	// QR reference in the top right corner
	if err := drawQuoteQR(pdf, est, cur); err != nil {
		return err
	}

	writeConfigSummary(pdf, cfg)
	writeCostTable(pdf, est, cur)
	writeCutList(pdf, est.Quantities.Panels)
	writeSheetEstimate(pdf, cfg, est.Quantities)

	return pdf.OutputFileAndClose(path)
}

// drawQuoteQR renders the machine-readable estimate reference.
func drawQuoteQR(pdf *fpdf.Fpdf, est model.Estimate, cur model.Currency) error {
	ref := quoteRef{
		ID:       est.ID,
		Name:     est.Name,
		Kind:     string(est.Kind),
		Total:    est.Costs.FinalCost * cur.Rate,
		Currency: cur.Code,
		IssuedAt: est.CreatedAt,
	}
	data, err := json.Marshal(ref)
	if err != nil {
		return fmt.Errorf("failed to marshal quote reference: %w", err)
	}
	qrPNG, err := qrcode.Encode(string(data), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := "qr_" + est.ID
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))
	pdf.ImageOptions(imgName, quotePageWidth-quoteMarginLeft-quoteQRSize, quoteMarginTop,
		quoteQRSize, quoteQRSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	return nil
}

// writeConfigSummary prints the key configuration figures for the quote's
// furniture kind.
func writeConfigSummary(pdf *fpdf.Fpdf, cfg model.FurnitureConfig) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetX(quoteMarginLeft)
	pdf.CellFormat(labelColWidth, quoteLineHeight, "Configuration", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	var lines []string
	switch c := cfg.(type) {
	case model.WardrobeConfig:
		lines = append(lines,
			fmt.Sprintf("Wardrobe %.0f x %.0f x %.0f in, %s", c.Height, c.Width, c.Depth, c.MaterialType),
			fmt.Sprintf("%d shelves, %d drawers, %d doors", c.NumShelves, c.NumDrawers, c.NumDoors))
		if c.HasHangingRod || c.HasBackPanel || c.HasLighting || c.HasGlassDoors {
			lines = append(lines, fmt.Sprintf("rod=%v back=%v lighting=%v glass=%v",
				c.HasHangingRod, c.HasBackPanel, c.HasLighting, c.HasGlassDoors))
		}
	case model.TableConfig:
		lines = append(lines,
			fmt.Sprintf("Table %.0f x %.0f x %.0f in, %s", c.TableLength, c.TableWidth, c.TableHeight, c.MaterialType))
	case model.SofaConfig:
		lines = append(lines,
			fmt.Sprintf("Sofa %.0f x %.0f x %.0f in, %s frame", c.SofaLength, c.SofaDepth, c.SofaHeight, c.MaterialType),
			fmt.Sprintf("%d seat + %d back cushions, arms=%v, %s upholstery",
				c.NumSeatCushions, c.NumBackCushions, c.HasArms, c.UpholsteryType))
	}
	if name := cfg.FinishName(); name != model.FinishNone {
		lines = append(lines, "finish: "+name)
	}
	for _, line := range lines {
		pdf.SetX(quoteMarginLeft)
		pdf.CellFormat(labelColWidth, 5, line, "", 1, "L", false, 0, "")
	}
	pdf.Ln(3)
}

// writeCostTable prints the itemized breakdown in the display currency.
func writeCostTable(pdf *fpdf.Fpdf, est model.Estimate, cur model.Currency) {
	cb := est.Costs

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetX(quoteMarginLeft)
	pdf.CellFormat(labelColWidth, quoteLineHeight, "Itemized Costs", "", 1, "L", false, 0, "")

	row := func(label string, amount float64, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 9)
		pdf.SetX(quoteMarginLeft)
		pdf.CellFormat(labelColWidth, 5.5, label, "B", 0, "L", false, 0, "")
		pdf.CellFormat(amountColWidth, 5.5, cur.Format(amount), "B", 1, "R", false, 0, "")
	}

	for _, class := range model.ThicknessClasses {
		if cost := cb.MaterialCostByClass[class]; cost > 0 {
			label := fmt.Sprintf("Material %s (%.1f sqft)", class, est.Quantities.MaterialArea[class])
			row(label, cost, false)
		}
	}
	if cb.EdgeBandingCost > 0 {
		row(fmt.Sprintf("Edge banding (%.1f ft)", est.Quantities.EdgeBandingFt), cb.EdgeBandingCost, false)
	}
	if cb.HardwareCost > 0 {
		row("Hardware", cb.HardwareCost, false)
	}
	if cb.AdditionalFeaturesCost > 0 {
		row("Features", cb.AdditionalFeaturesCost, false)
	}
	row(fmt.Sprintf("Labor (%.1f h)", est.Quantities.LaborHours), cb.LaborCost, false)
	row("Subtotal", cb.Subtotal, false)
	row(fmt.Sprintf("Total incl. %.0f%% markup", est.Rates.MarkupPercent), cb.FinalCost, true)
	pdf.Ln(4)
}

// writeCutList prints the panel cut list when the build has one.
func writeCutList(pdf *fpdf.Fpdf, panels []model.Panel) {
	if len(panels) == 0 {
		return
	}
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetX(quoteMarginLeft)
	pdf.CellFormat(labelColWidth, quoteLineHeight, "Cut List", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetX(quoteMarginLeft)
	pdf.CellFormat(70, 5, "Panel", "B", 0, "L", false, 0, "")
	pdf.CellFormat(35, 5, "Size (in)", "B", 0, "L", false, 0, "")
	pdf.CellFormat(20, 5, "Qty", "B", 0, "R", false, 0, "")
	pdf.CellFormat(25, 5, "Thickness", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	for _, p := range panels {
		pdf.SetX(quoteMarginLeft)
		pdf.CellFormat(70, 4.5, p.Label, "", 0, "L", false, 0, "")
		pdf.CellFormat(35, 4.5, fmt.Sprintf("%.1f x %.1f", p.Width, p.Height), "", 0, "L", false, 0, "")
		pdf.CellFormat(20, 4.5, fmt.Sprintf("%d", p.Quantity), "", 0, "R", false, 0, "")
		pdf.CellFormat(25, 4.5, string(p.Thickness), "", 1, "R", false, 0, "")
	}
	pdf.Ln(4)
}

// writeSheetEstimate prints the plywood purchase estimate.
func writeSheetEstimate(pdf *fpdf.Fpdf, cfg model.FurnitureConfig, b model.BillOfQuantities) {
	if cfg.Material() != model.MaterialPlywood {
		return
	}
	counts := model.EstimateSheets(b.TotalMaterialAreaSqFt(), model.DefaultSheetCatalog())
	if len(counts) == 0 {
		return
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetX(quoteMarginLeft)
	pdf.CellFormat(labelColWidth, quoteLineHeight, "Sheet Purchase Estimate", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, size := range model.DefaultSheetCatalog() {
		if n := counts[size.Name]; n > 0 {
			pdf.SetX(quoteMarginLeft)
			pdf.CellFormat(labelColWidth, 5, fmt.Sprintf("%d x %s ft sheet (%.0f sqft each)", n, size.Name, size.AreaSqFt), "", 1, "L", false, 0, "")
		}
	}
	pdf.SetFont("Helvetica", "I", 7)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetX(quoteMarginLeft)
	pdf.CellFormat(labelColWidth, 4, "Greedy purchase estimate; not a cutting layout and not included in the price.", "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}
