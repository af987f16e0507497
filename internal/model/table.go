package model

// legStockWidthIn is the fixed width of the strip stock legs and apron
// rails are cut from. Leg and rail linear footage converts to an
// equivalent sheet area at this width.
const legStockWidthIn = 3.0

const (
	tableLaborVolumeDivisor = 50000.0
	tableMinLaborHours      = 2.0
)

// Quantities decomposes the table into a top plus legs and apron rails,
// all in the 18mm class. The legs lose 1 inch to the top thickness.
func (c TableConfig) Quantities(rates RateTable) BillOfQuantities {
	b := newBillOfQuantities()

	b.addPanel("Tabletop", c.TableLength, c.TableWidth, 1, Thickness18mm)
	b.addEdgeBanding(2*c.TableLength + 2*c.TableWidth)

	// Four legs and four apron rails as 3-inch strips. Their summed area
	// equals (leg linear ft + frame perimeter ft) x 3/12 sqft.
	b.addPanel("Leg", legStockWidthIn, c.TableHeight-1, 4, Thickness18mm)
	b.addPanel("Apron Rail (long)", c.TableLength, legStockWidthIn, 2, Thickness18mm)
	b.addPanel("Apron Rail (short)", c.TableWidth, legStockWidthIn, 2, Thickness18mm)

	hours := (c.TableLength * c.TableWidth * c.TableHeight) / tableLaborVolumeDivisor
	if hours < tableMinLaborHours {
		hours = tableMinLaborHours
	}
	b.LaborHours = hours

	return b
}
