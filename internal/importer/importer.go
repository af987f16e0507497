// Package importer reads rate table overrides from CSV and Excel files.
// It supports automatic delimiter detection and case-insensitive headers,
// so price lists exported from spreadsheets load without massaging.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/piwi3910/FurniQuote/internal/model"
	"github.com/xuri/excelize/v2"
)

// Override is a single parsed rate entry, in file order.
type Override struct {
	Key   string
	Value float64
}

// ImportResult holds the results of an import operation.
type ImportResult struct {
	Overrides []Override
	Errors    []string
	Warnings  []string
}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"key":   {"key", "rate", "rate key", "name", "item", "entry"},
	"value": {"value", "price", "cost", "rate value", "amount", "unit price"},
}

// DetectCSVDelimiter reads the file content and determines the most likely
// CSV delimiter. It tries comma, semicolon, tab, and pipe. The delimiter
// that produces the most consistent column count across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1 // Allow variable field counts

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}
	return bestDelimiter
}

// detectColumns finds the key and value column indices from a header row.
// Returns (-1, -1) when the row does not look like a header, in which case
// the importer assumes key in column 0 and value in column 1.
func detectColumns(header []string) (keyCol, valueCol int) {
	keyCol, valueCol = -1, -1
	for i, cell := range header {
		name := strings.ToLower(strings.TrimSpace(cell))
		for _, alias := range headerAliases["key"] {
			if name == alias && keyCol == -1 {
				keyCol = i
			}
		}
		for _, alias := range headerAliases["value"] {
			if name == alias && valueCol == -1 {
				valueCol = i
			}
		}
	}
	return keyCol, valueCol
}

// ImportCSV reads rate overrides from a CSV file.
func ImportCSV(path string) ImportResult {
	data, err := os.ReadFile(path)
	if err != nil {
		return ImportResult{Errors: []string{fmt.Sprintf("Cannot read file: %v", err)}}
	}
	return ImportCSVFromReader(bytes.NewReader(data), DetectCSVDelimiter(data))
}

// ImportCSVFromReader reads rate overrides from CSV data with the given delimiter.
func ImportCSVFromReader(r io.Reader, delimiter rune) ImportResult {
	result := ImportResult{}

	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("CSV parse error: %v", err))
		return result
	}
	return parseRows(records)
}

// ImportExcel reads rate overrides from the first sheet of an .xlsx file.
func ImportExcel(path string) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		result.Errors = append(result.Errors, "Excel file contains no sheets")
		return result
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read sheet %q: %v", sheet, err))
		return result
	}
	return parseRows(rows)
}

// parseRows turns raw rows into overrides. A recognized header row is
// skipped; otherwise column 0 is the key and column 1 the value.
func parseRows(rows [][]string) ImportResult {
	result := ImportResult{}
	if len(rows) == 0 {
		result.Errors = append(result.Errors, "File contains no rows")
		return result
	}

	keyCol, valueCol := detectColumns(rows[0])
	start := 0
	if keyCol >= 0 && valueCol >= 0 {
		start = 1
	} else {
		keyCol, valueCol = 0, 1
	}

	for i, row := range rows[start:] {
		lineNum := start + i + 1
		if len(row) <= valueCol || len(row) <= keyCol {
			result.Warnings = append(result.Warnings, fmt.Sprintf("Line %d: too few columns, skipped", lineNum))
			continue
		}
		key := strings.TrimSpace(row[keyCol])
		if key == "" {
			continue
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(row[valueCol]), 64)
		if err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("Line %d: invalid value %q, skipped", lineNum, row[valueCol]))
			continue
		}
		if value < 0 {
			result.Warnings = append(result.Warnings, fmt.Sprintf("Line %d: negative rate %g for %q, skipped", lineNum, value, key))
			continue
		}
		result.Overrides = append(result.Overrides, Override{Key: key, Value: value})
	}

	if len(result.Overrides) == 0 {
		result.Errors = append(result.Errors, "No usable rate entries found")
	}
	return result
}

// Apply folds the overrides into a copy of the rate table. Unrecognized
// keys become warnings; the original table is never mutated.
func Apply(rates model.RateTable, overrides []Override) (model.RateTable, []string) {
	var warnings []string
	out := rates
	for _, o := range overrides {
		updated, ok := out.WithRate(o.Key, o.Value)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("Unknown rate key %q ignored", o.Key))
			continue
		}
		out = updated
	}
	return out, warnings
}
