// Package exporter writes the results of an aggregation run.
//
// This package contains three main components:
//
// XLSXWriter: Streams the consolidated table to a single-sheet workbook,
// header first, with numbers stored as numeric cells.
//
// ReportWriter: Writes the per-file outcomes of a run as CSV, with a UTF-8
// BOM for Excel compatibility.
//
// SummaryPrinter: Renders a console table of run totals and cost statistics.
//
// Example usage:
//
//	if err := exporter.NewXLSXWriter().Write("out/matched.xlsx", result.Table); err != nil {
//	    return err
//	}
//	exporter.NewSummaryPrinter().Print(os.Stdout, result.Report)
package exporter
