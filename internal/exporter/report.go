package exporter

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gocarina/gocsv"

	apperrors "optpaircli/internal/errors"
	"optpaircli/internal/files"
	"optpaircli/pkg/contracts/domain"
)

// ReportWriter writes per-file run outcomes as CSV.
type ReportWriter struct {
	// BOMPrefix adds a UTF-8 BOM so Excel recognises the encoding
	BOMPrefix bool
	logger    *slog.Logger
}

// NewReportWriter creates a report writer that prefixes the UTF-8 BOM.
func NewReportWriter() *ReportWriter {
	return &ReportWriter{BOMPrefix: true, logger: slog.Default()}
}

// WithLogger sets the logger used for write progress
func (w *ReportWriter) WithLogger(logger *slog.Logger) *ReportWriter {
	w.logger = logger
	return w
}

// WriteCSV writes one line per processed file to filePath, replacing any
// existing file.
func (w *ReportWriter) WriteCSV(filePath string, report *domain.RunReport) error {
	w.logger.Info("Writing run report",
		slog.String("file_path", filePath),
		slog.Int("record_count", len(report.Files)))

	if err := files.EnsureParentDir(filePath); err != nil {
		return apperrors.NewStorageError("failed to prepare report directory", err).
			WithContext("path", filePath)
	}

	file, err := os.Create(filePath)
	if err != nil {
		return apperrors.NewStorageError("failed to create report file", err).
			WithContext("path", filePath)
	}

	if err := w.marshal(file, report); err != nil {
		file.Close()
		return apperrors.NewStorageError("failed to write run report", err).
			WithContext("path", filePath)
	}

	if err := file.Close(); err != nil {
		return apperrors.NewStorageError("failed to close report file", err).
			WithContext("path", filePath)
	}
	return nil
}

// marshal writes the optional BOM and the CSV rows to file
func (w *ReportWriter) marshal(file *os.File, report *domain.RunReport) error {
	if w.BOMPrefix {
		if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return fmt.Errorf("failed to write BOM: %w", err)
		}
	}

	rows := report.Files
	if rows == nil {
		rows = []domain.FileResult{}
	}
	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return fmt.Errorf("failed to marshal rows: %w", err)
	}
	return nil
}
