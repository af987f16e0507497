package importer

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/piwi3910/FurniQuote/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestDetectCSVDelimiter_Comma(t *testing.T) {
	data := []byte("Key,Value\nplywood_18mm,3.75\nlabor_hourly_rate,25\n")
	assert.Equal(t, ',', DetectCSVDelimiter(data))
}

func TestDetectCSVDelimiter_Semicolon(t *testing.T) {
	data := []byte("Key;Value\nplywood_18mm;3.75\nlabor_hourly_rate;25\n")
	assert.Equal(t, ';', DetectCSVDelimiter(data))
}

func TestDetectCSVDelimiter_Tab(t *testing.T) {
	data := []byte("Key\tValue\nplywood_18mm\t3.75\nlabor_hourly_rate\t25\n")
	assert.Equal(t, '\t', DetectCSVDelimiter(data))
}

func TestImportCSVFromReader_WithHeaders(t *testing.T) {
	csv := "Rate Key,Price\nplywood_18mm,3.75\nhinge_soft_close,4.25\n"
	result := ImportCSVFromReader(strings.NewReader(csv), ',')

	require.Empty(t, result.Errors)
	require.Len(t, result.Overrides, 2)
	assert.Equal(t, Override{Key: "plywood_18mm", Value: 3.75}, result.Overrides[0])
	assert.Equal(t, Override{Key: "hinge_soft_close", Value: 4.25}, result.Overrides[1])
}

func TestImportCSVFromReader_NoHeader(t *testing.T) {
	csv := "plywood_18mm,3.75\nmarkup_percent,25\n"
	result := ImportCSVFromReader(strings.NewReader(csv), ',')

	require.Empty(t, result.Errors)
	require.Len(t, result.Overrides, 2)
}

func TestImportCSVFromReader_SkipsBadRows(t *testing.T) {
	csv := "Key,Value\nplywood_18mm,3.75\nedge_banding_per_ft,not-a-number\nlighting_per_ft,-4\nshort\n"
	result := ImportCSVFromReader(strings.NewReader(csv), ',')

	require.Len(t, result.Overrides, 1)
	assert.Len(t, result.Warnings, 3)
}

func TestImportCSVFromReader_Empty(t *testing.T) {
	result := ImportCSVFromReader(strings.NewReader("Key,Value\n"), ',')
	assert.NotEmpty(t, result.Errors)
}

func TestImportExcel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rates.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetCellValue(sheet, "A1", "Key"))
	require.NoError(t, f.SetCellValue(sheet, "B1", "Value"))
	require.NoError(t, f.SetCellValue(sheet, "A2", "plywood_18mm"))
	require.NoError(t, f.SetCellValue(sheet, "B2", 3.75))
	require.NoError(t, f.SetCellValue(sheet, "A3", "finish_veneer"))
	require.NoError(t, f.SetCellValue(sheet, "B3", 2.90))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	result := ImportExcel(path)
	require.Empty(t, result.Errors)
	require.Len(t, result.Overrides, 2)
	assert.Equal(t, "plywood_18mm", result.Overrides[0].Key)
	assert.InDelta(t, 3.75, result.Overrides[0].Value, 1e-9)
}

func TestImportExcel_MissingFile(t *testing.T) {
	result := ImportExcel(filepath.Join(t.TempDir(), "nope.xlsx"))
	assert.NotEmpty(t, result.Errors)
}

func TestApply(t *testing.T) {
	rates := model.DefaultRateTable()
	overrides := []Override{
		{Key: "plywood_18mm", Value: 4.50},
		{Key: "labor_hourly_rate", Value: 28},
		{Key: "unknown_thing", Value: 1},
	}

	updated, warnings := Apply(rates, overrides)

	assert.Equal(t, 4.50, updated.Material["plywood_18mm"])
	assert.Equal(t, 28.0, updated.LaborHourlyRate)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "unknown_thing")

	// The input table stays untouched.
	assert.Equal(t, 3.50, rates.Material["plywood_18mm"])
	assert.Equal(t, 20.0, rates.LaborHourlyRate)
}
