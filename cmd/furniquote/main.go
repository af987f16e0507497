// FurniQuote — parametric furniture cost estimator
//
// Computes material quantities, an itemized cost breakdown and a final
// quoted price for a furniture configuration (wardrobe, table or sofa set)
// against a user-editable rate table.
//
// Usage:
//
//	furniquote -in wardrobe.json                  print the quote
//	furniquote -in wardrobe.json -currency EUR    price in another currency
//	furniquote -in wardrobe.json -pdf quote.pdf   also write a PDF quote
//	furniquote -import rates.csv                  update the saved rate table
//
// The rate table lives at ~/.furniquote/rates.json and is created from
// built-in defaults on first use.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/piwi3910/FurniQuote/internal/export"
	"github.com/piwi3910/FurniQuote/internal/importer"
	"github.com/piwi3910/FurniQuote/internal/model"
	"github.com/piwi3910/FurniQuote/internal/project"
)

func main() {
	var (
		ratesPath  = flag.String("rates", project.DefaultRatesPath(), "path to the rate table JSON")
		inPath     = flag.String("in", "", "estimate request JSON to price")
		name       = flag.String("name", "", "estimate name (defaults to the request's name)")
		currency   = flag.String("currency", "USD", "display currency code")
		pdfPath    = flag.String("pdf", "", "write a quote PDF to this path")
		xlsxPath   = flag.String("xlsx", "", "write a quote workbook to this path")
		dxfPath    = flag.String("dxf", "", "write a panel cut list DXF to this path")
		savePath   = flag.String("save", "", "save the full estimate JSON to this path")
		importPath = flag.String("import", "", "import rate overrides from a .csv or .xlsx file and persist them")
		backupPath = flag.String("backup", "", "export all settings to this path and exit")
	)
	flag.Parse()

	rates, err := project.LoadRates(*ratesPath)
	if err != nil {
		// Malformed blobs fall back to defaults; calculation still runs.
		fmt.Fprintf(os.Stderr, "warning: %v (using built-in defaults)\n", err)
	}

	switch {
	case *importPath != "":
		if err := runImport(*ratesPath, *importPath, rates); err != nil {
			fatal(err)
		}
	case *backupPath != "":
		if err := project.ExportAllData(*backupPath, rates); err != nil {
			fatal(err)
		}
		fmt.Printf("settings exported to %s\n", *backupPath)
	case *inPath != "":
		err := runEstimate(estimateOptions{
			inPath:   *inPath,
			name:     *name,
			currency: model.CurrencyByCode(*currency),
			pdfPath:  *pdfPath,
			xlsxPath: *xlsxPath,
			dxfPath:  *dxfPath,
			savePath: *savePath,
		}, rates)
		if err != nil {
			fatal(err)
		}
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}

// runImport applies rate overrides from a spreadsheet file and persists
// the updated table.
func runImport(ratesPath, importPath string, rates model.RateTable) error {
	var result importer.ImportResult
	switch strings.ToLower(filepath.Ext(importPath)) {
	case ".xlsx":
		result = importer.ImportExcel(importPath)
	default:
		result = importer.ImportCSV(importPath)
	}
	for _, w := range result.Warnings {
		fmt.Fprintln(os.Stderr, "warning:", w)
	}
	if len(result.Errors) > 0 {
		return fmt.Errorf("import failed: %s", strings.Join(result.Errors, "; "))
	}

	updated, warnings := importer.Apply(rates, result.Overrides)
	for _, w := range warnings {
		fmt.Fprintln(os.Stderr, "warning:", w)
	}
	if errs := updated.Validate(); len(errs) != 0 {
		return fmt.Errorf("imported rates are invalid: %w", errs.OrNil())
	}
	if err := project.SaveRates(ratesPath, updated); err != nil {
		return err
	}
	fmt.Printf("applied %d rate(s), saved to %s\n", len(result.Overrides), ratesPath)
	return nil
}

type estimateOptions struct {
	inPath   string
	name     string
	currency model.Currency
	pdfPath  string
	xlsxPath string
	dxfPath  string
	savePath string
}

// runEstimate prices a request and writes the selected outputs.
func runEstimate(opts estimateOptions, rates model.RateTable) error {
	req, err := project.LoadRequest(opts.inPath)
	if err != nil {
		return err
	}
	cfg, err := req.Config()
	if err != nil {
		return err
	}
	name := opts.name
	if name == "" {
		name = req.Name
	}

	est, err := model.NewEstimate(name, cfg, rates)
	if err != nil {
		if errs, ok := err.(model.ValidationErrors); ok {
			for _, fe := range errs {
				fmt.Fprintln(os.Stderr, "invalid:", fe.Error())
			}
			return fmt.Errorf("%d validation error(s)", len(errs))
		}
		return err
	}

	printBreakdown(est, cfg, opts.currency)

	if opts.savePath != "" {
		if err := project.SaveEstimate(opts.savePath, est); err != nil {
			return err
		}
		fmt.Printf("\nestimate saved to %s\n", opts.savePath)
	}
	if opts.pdfPath != "" {
		if err := export.ExportQuotePDF(opts.pdfPath, est, opts.currency); err != nil {
			return err
		}
	}
	if opts.xlsxPath != "" {
		if err := export.ExportQuoteExcel(opts.xlsxPath, est, opts.currency); err != nil {
			return err
		}
	}
	if opts.dxfPath != "" {
		if err := export.ExportCutListDXF(opts.dxfPath, est.Quantities.Panels); err != nil {
			return err
		}
	}
	return nil
}

func printBreakdown(est model.Estimate, cfg model.FurnitureConfig, cur model.Currency) {
	b := est.Quantities
	cb := est.Costs

	fmt.Printf("%s  (ref %s, %s)\n\n", est.Name, est.ID, est.Kind)

	for _, class := range model.ThicknessClasses {
		if area := b.MaterialArea[class]; area > 0 {
			fmt.Printf("  material %-5s %8.2f sqft  %12s\n", class, area, cur.Format(cb.MaterialCostByClass[class]))
		}
	}
	if b.EdgeBandingFt > 0 {
		fmt.Printf("  edge banding  %8.2f ft    %12s\n", b.EdgeBandingFt, cur.Format(cb.EdgeBandingCost))
	}
	if cb.HardwareCost > 0 {
		fmt.Printf("  hardware                    %12s\n", cur.Format(cb.HardwareCost))
	}
	if cb.AdditionalFeaturesCost > 0 {
		fmt.Printf("  features                    %12s\n", cur.Format(cb.AdditionalFeaturesCost))
	}
	fmt.Printf("  labor         %8.2f h     %12s\n", b.LaborHours, cur.Format(cb.LaborCost))
	fmt.Printf("  subtotal                    %12s\n", cur.Format(cb.Subtotal))
	fmt.Printf("  total (%.0f%% markup)         %12s\n", est.Rates.MarkupPercent, cur.Format(cb.FinalCost))

	if cfg.Material() == model.MaterialPlywood {
		counts := model.EstimateSheets(b.TotalMaterialAreaSqFt(), model.DefaultSheetCatalog())
		if len(counts) > 0 {
			fmt.Printf("\n  sheets to buy:")
			for _, size := range model.DefaultSheetCatalog() {
				if n := counts[size.Name]; n > 0 {
					fmt.Printf("  %dx %s", n, size.Name)
				}
			}
			fmt.Println()
		}
	}
}
