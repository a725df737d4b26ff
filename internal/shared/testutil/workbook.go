package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// DefaultChainHeader is the column layout of a daily option-chain sheet
// used across tests.
var DefaultChainHeader = []string{
	"Contract", "Contract Month", "Strike Price", "Call/Put",
	"Volume", "Settlement Price", "Open Interest", "Implied Volatility%",
}

// ChainRow builds one DefaultChainHeader row.
func ChainRow(side string, strike, volume int, settlement float64) []any {
	return []any{"TXO", "202501", strike, side, volume, settlement, 1000, 18.5}
}

// WriteWorkbook saves a single-sheet workbook with header and rows at path,
// creating parent directories.
func WriteWorkbook(t *testing.T, path string, header []string, rows ...[]any) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create fixture directory: %v", err)
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	headerRow := make([]any, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &headerRow); err != nil {
		t.Fatalf("failed to write header: %v", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			t.Fatalf("invalid cell coordinates: %v", err)
		}
		r := row
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			t.Fatalf("failed to write row %d: %v", i+2, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save workbook %s: %v", path, err)
	}
}

// WriteCorruptWorkbook writes bytes that are not a valid xlsx archive.
func WriteCorruptWorkbook(t *testing.T, path string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create fixture directory: %v", err)
	}
	if err := os.WriteFile(path, []byte("this is not a spreadsheet"), 0644); err != nil {
		t.Fatalf("failed to write corrupt workbook: %v", err)
	}
}

// ReadWorkbook returns the rows of the first sheet of the workbook at path.
func ReadWorkbook(t *testing.T, path string) [][]string {
	t.Helper()

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("failed to open workbook %s: %v", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		t.Fatalf("failed to read workbook %s: %v", path, err)
	}
	return rows
}
