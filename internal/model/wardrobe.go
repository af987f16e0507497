package model

// Labor-hour model parameters for the wardrobe: a volumetric base plus a
// fixed allowance per feature, with a floor for small pieces.
const (
	wardrobeLaborVolumeDivisor = 10000.0
	wardrobeLaborPerShelf      = 0.5
	wardrobeLaborPerDrawer     = 2.0
	wardrobeLaborPerDoor       = 1.0
	wardrobeLaborHangingRod    = 0.2
	wardrobeLaborBackPanel     = 0.5
	wardrobeMinLaborHours      = 5.0
)

// Quantities decomposes the wardrobe into carcass, shelves, back panel,
// doors and drawers. Carcass panels, doors and drawer fronts are 18mm;
// shelves and drawer boxes are 12mm; the back panel is 6mm.
func (c WardrobeConfig) Quantities(rates RateTable) BillOfQuantities {
	b := newBillOfQuantities()

	// Carcass: two sides plus top and bottom. Banding covers the front
	// opening perimeter.
	b.addPanel("Side Panel", c.Depth, c.Height, 2, Thickness18mm)
	b.addPanel("Top/Bottom Panel", c.Width, c.Depth, 2, Thickness18mm)
	b.addEdgeBanding(2*c.Height + 2*c.Width)

	// Shelves sit 1 inch back from the front edge.
	if c.NumShelves > 0 {
		b.addPanel("Shelf", c.Width, c.Depth-1, c.NumShelves, Thickness12mm)
		b.addEdgeBanding(float64(c.NumShelves) * c.Width)
	}

	if c.HasBackPanel {
		b.addPanel("Back Panel", c.Width, c.Height, 1, Thickness6mm)
	}

	if c.NumDoors > 0 {
		doorWidth := c.Width / float64(c.NumDoors)
		b.addPanel("Door", doorWidth, c.Height, c.NumDoors, Thickness18mm)
		b.addEdgeBanding(float64(c.NumDoors) * (2*doorWidth + 2*c.Height))
		b.Hardware[HardwareHinge] += 2 * c.NumDoors
		b.Hardware[HardwareHandle] += c.NumDoors
		if c.HasGlassDoors {
			b.FeaturesCost += float64(c.NumDoors) * rates.GlassDoorPerDoor
		}
	}

	if c.NumDrawers > 0 {
		avgWidth := c.Width / float64(c.NumDrawers)
		// Box: front and back, two sides, a bottom. No lid.
		b.addPanel("Drawer Box Front/Back", avgWidth, c.DrawerHeight, 2*c.NumDrawers, Thickness12mm)
		b.addPanel("Drawer Box Side", c.DrawerDepth, c.DrawerHeight, 2*c.NumDrawers, Thickness12mm)
		b.addPanel("Drawer Bottom", avgWidth, c.DrawerDepth, c.NumDrawers, Thickness12mm)
		b.addPanel("Drawer Front", avgWidth, c.DrawerHeight, c.NumDrawers, Thickness18mm)
		b.addEdgeBanding(float64(c.NumDrawers) * (2*avgWidth + 2*c.DrawerHeight))
		b.Hardware[HardwareDrawerSlide] += c.NumDrawers
		b.Hardware[HardwareHandle] += c.NumDrawers
	}

	if c.HasHangingRod {
		b.Hardware[HardwareHangingRod] = 1
	}

	hours := (c.Height * c.Width * c.Depth) / wardrobeLaborVolumeDivisor
	hours += float64(c.NumShelves) * wardrobeLaborPerShelf
	hours += float64(c.NumDrawers) * wardrobeLaborPerDrawer
	hours += float64(c.NumDoors) * wardrobeLaborPerDoor
	if c.HasHangingRod {
		hours += wardrobeLaborHangingRod
	}
	if c.HasBackPanel {
		hours += wardrobeLaborBackPanel
	}
	if hours < wardrobeMinLaborHours {
		hours = wardrobeMinLaborHours
	}
	b.LaborHours = hours

	return b
}
