package exporter

import (
	"fmt"
	"io"
	"strings"

	"github.com/montanaflynn/stats"
	"github.com/olekukonko/tablewriter"

	"optpaircli/pkg/contracts/domain"
)

// CostStats summarises the cost column of a run.
type CostStats struct {
	Count  int
	Mean   float64
	Median float64
	Min    float64
	Max    float64
}

// ComputeCostStats returns statistics over costs. ok is false when there
// are no values.
func ComputeCostStats(costs []float64) (cs CostStats, ok bool) {
	if len(costs) == 0 {
		return CostStats{}, false
	}

	data := stats.Float64Data(costs)
	var err error
	if cs.Mean, err = stats.Mean(data); err != nil {
		return CostStats{}, false
	}
	if cs.Median, err = stats.Median(data); err != nil {
		return CostStats{}, false
	}
	if cs.Min, err = stats.Min(data); err != nil {
		return CostStats{}, false
	}
	if cs.Max, err = stats.Max(data); err != nil {
		return CostStats{}, false
	}
	cs.Count = len(costs)
	return cs, true
}

// SummaryPrinter renders run totals as a console table.
type SummaryPrinter struct{}

// NewSummaryPrinter creates a summary printer
func NewSummaryPrinter() *SummaryPrinter {
	return &SummaryPrinter{}
}

// Print writes the run summary to w.
func (p *SummaryPrinter) Print(w io.Writer, report *domain.RunReport) error {
	display := &strings.Builder{}
	display.WriteString("Run Summary:\n")

	table := tablewriter.NewWriter(display)
	table.SetHeader([]string{"Metric", "Value"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	table.Append([]string{"Base directories", formatInt(len(report.BaseDirs))})
	if len(report.MissingDirs) > 0 {
		table.Append([]string{"Missing directories", strings.Join(report.MissingDirs, ", ")})
	}
	table.Append([]string{"Folders scanned", formatInt(report.FoldersScanned)})
	table.Append([]string{"Files", formatInt(len(report.Files))})
	table.Append([]string{"Loaded", formatInt(report.Count(domain.FileLoaded))})
	table.Append([]string{"Skipped", formatInt(report.Count(domain.FileSkipped))})
	table.Append([]string{"Failed", formatInt(report.Count(domain.FileFailed))})
	table.Append([]string{"Matched rows", formatInt(report.MatchedRows)})

	if cs, ok := ComputeCostStats(report.Costs); ok {
		table.Append([]string{"Cost mean", formatFloat(cs.Mean)})
		table.Append([]string{"Cost median", formatFloat(cs.Median)})
		table.Append([]string{"Cost min", formatFloat(cs.Min)})
		table.Append([]string{"Cost max", formatFloat(cs.Max)})
	}

	table.Render()

	if _, err := fmt.Fprint(w, display.String()); err != nil {
		return fmt.Errorf("failed to print summary: %w", err)
	}
	return nil
}
