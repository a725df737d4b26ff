package dataprocessing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	apperrors "optpaircli/internal/errors"
	"optpaircli/pkg/contracts/domain"
)

// ErrMissingColumns marks a workbook that lacks one of the required
// columns. Such files are skipped rather than treated as failures.
var ErrMissingColumns = errors.New("required columns missing")

// Loader reads option-chain workbooks into tables.
type Loader struct {
	schema domain.ColumnSchema
}

// NewLoader creates a loader that checks for the schema's required columns.
func NewLoader(schema domain.ColumnSchema) *Loader {
	return &Loader{schema: schema}
}

// Load reads the first sheet of the workbook at filePath. The first
// non-blank row is the header; fully blank rows below it are dropped.
// Open and read failures are returned as PARSING errors; a table without the
// volume, strike and side columns yields an error wrapping ErrMissingColumns.
// The workbook is closed before Load returns.
func (l *Loader) Load(filePath string) (*domain.Table, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, apperrors.NewParsingError("failed to open workbook", err).
			WithContext("path", filePath)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperrors.NewParsingError("workbook has no sheets", nil).
			WithContext("path", filePath)
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, apperrors.NewParsingError("failed to read rows", err).
			WithContext("path", filePath).
			WithContext("sheet", sheets[0])
	}

	table := buildTable(rows)

	if missing := l.missingColumns(table); len(missing) > 0 {
		return table, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}

	return table, nil
}

// missingColumns lists required columns absent from the table
func (l *Loader) missingColumns(t *domain.Table) []string {
	required := l.schema.Required()
	if t.HasColumns(required...) {
		return nil
	}

	var missing []string
	for _, col := range required {
		if t.Column(col) < 0 {
			missing = append(missing, col)
		}
	}
	return missing
}

// buildTable turns raw sheet rows into a table with classified cells
func buildTable(rows [][]string) *domain.Table {
	headerRow := -1
	for i, row := range rows {
		if !isBlankRow(row) {
			headerRow = i
			break
		}
	}
	if headerRow < 0 {
		return domain.NewTable()
	}

	// data cells right of the last header cell get Unnamed columns too
	width := len(rows[headerRow])
	for _, row := range rows[headerRow+1:] {
		width = max(width, lastNonBlank(row)+1)
	}

	header := make([]string, width)
	for j := range header {
		name := ""
		if j < len(rows[headerRow]) {
			name = strings.TrimSpace(rows[headerRow][j])
		}
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", j)
		}
		header[j] = name
	}

	table := domain.NewTable(header...)
	for _, row := range rows[headerRow+1:] {
		if isBlankRow(row) {
			continue
		}
		cells := make([]domain.Cell, len(row))
		for j, raw := range row {
			cells[j] = domain.ParseCell(raw)
		}
		table.Append(cells)
	}

	return table
}

func lastNonBlank(row []string) int {
	for j := len(row) - 1; j >= 0; j-- {
		if strings.TrimSpace(row[j]) != "" {
			return j
		}
	}
	return -1
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
