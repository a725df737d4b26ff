package exporter

import (
	"log/slog"

	"github.com/xuri/excelize/v2"

	apperrors "optpaircli/internal/errors"
	"optpaircli/internal/files"
	"optpaircli/pkg/contracts/domain"
)

// SheetName is the sheet the consolidated table is written to.
const SheetName = "Sheet1"

// XLSXWriter writes tables to xlsx workbooks.
type XLSXWriter struct {
	logger *slog.Logger
}

// NewXLSXWriter creates a new workbook writer
func NewXLSXWriter() *XLSXWriter {
	return &XLSXWriter{logger: slog.Default()}
}

// WithLogger sets the logger used for write progress
func (w *XLSXWriter) WithLogger(logger *slog.Logger) *XLSXWriter {
	w.logger = logger
	return w
}

// Write saves t to path, replacing any existing file. The header is row 1,
// there is no index column and empty cells are left blank. Parent
// directories are created. Failures are STORAGE errors.
func (w *XLSXWriter) Write(path string, t *domain.Table) error {
	replaced := files.FileExists(path)
	if err := files.EnsureParentDir(path); err != nil {
		return apperrors.NewStorageError("failed to prepare output directory", err).
			WithContext("path", path)
	}

	f := excelize.NewFile()
	defer f.Close()

	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		return apperrors.NewStorageError("failed to create stream writer", err).
			WithContext("path", path)
	}

	header := make([]interface{}, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = c
	}
	if err := sw.SetRow("A1", header); err != nil {
		return apperrors.NewStorageError("failed to write header", err).
			WithContext("path", path)
	}

	for i, row := range t.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return apperrors.NewStorageError("invalid row coordinates", err).
				WithContext("row", i+2)
		}
		values := make([]interface{}, len(row))
		for j, c := range row {
			values[j] = cellValue(c)
		}
		if err := sw.SetRow(cell, values); err != nil {
			return apperrors.NewStorageError("failed to write row", err).
				WithContext("path", path).
				WithContext("row", i+2)
		}
	}

	if err := sw.Flush(); err != nil {
		return apperrors.NewStorageError("failed to flush rows", err).
			WithContext("path", path)
	}

	if err := f.SaveAs(path); err != nil {
		return apperrors.NewStorageError("failed to save workbook", err).
			WithContext("path", path)
	}

	w.logger.Debug("Workbook written",
		slog.String("path", path),
		slog.Int("columns", len(t.Columns)),
		slog.Int("rows", t.Len()),
		slog.Bool("replaced", replaced))

	return nil
}
