package export

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/drawing"

	"github.com/piwi3910/FurniQuote/internal/model"
)

// Cut list sheet layout, in drawing units (inches).
const (
	dxfPanelGap = 2.0
	dxfRowWidth = 96.0
)

// ExportCutListDXF writes the panel cut list as a DXF drawing, one
// rectangle per panel instance, grouped on a layer per thickness class.
// Panels are laid out in rows for reading, not cutting: the drawing is a
// reference sheet, not a nesting layout.
func ExportCutListDXF(path string, panels []model.Panel) error {
	if len(panels) == 0 {
		return fmt.Errorf("no panels to export")
	}

	d := dxf.NewDrawing()

	var x, y, rowHeight float64
	currentLayer := ""
	for _, p := range panels {
		layer := string(p.Thickness)
		if layer != currentLayer {
			if _, err := d.AddLayer(layer, dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
				// Layer already exists when two panel groups share a
				// thickness; switch to it instead.
				if err := d.ChangeLayer(layer); err != nil {
					return fmt.Errorf("failed to select layer %q: %w", layer, err)
				}
			}
			currentLayer = layer
		}

		for i := 0; i < p.Quantity; i++ {
			if x > 0 && x+p.Width > dxfRowWidth {
				x = 0
				y += rowHeight + dxfPanelGap
				rowHeight = 0
			}
			if err := drawRect(d, x, y, p.Width, p.Height); err != nil {
				return fmt.Errorf("failed to draw panel %q: %w", p.Label, err)
			}
			x += p.Width + dxfPanelGap
			if p.Height > rowHeight {
				rowHeight = p.Height
			}
		}
	}

	return d.SaveAs(path)
}

// drawRect draws an axis-aligned rectangle with four LINE entities.
func drawRect(d *drawing.Drawing, x, y, w, h float64) error {
	lines := [][4]float64{
		{x, y, x + w, y},
		{x + w, y, x + w, y + h},
		{x + w, y + h, x, y + h},
		{x, y + h, x, y},
	}
	for _, l := range lines {
		if _, err := d.Line(l[0], l[1], 0, l[2], l[3], 0); err != nil {
			return err
		}
	}
	return nil
}
