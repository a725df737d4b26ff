package exporter

import (
	"fmt"

	"optpaircli/pkg/contracts/domain"
)

// formatFloat formats a float64 value with exactly 2 decimal places
func formatFloat(f float64) string {
	return fmt.Sprintf("%.2f", f)
}

// formatInt formats an int value for table output
func formatInt(i int) string {
	return fmt.Sprintf("%d", i)
}

// cellValue converts a cell to the value excelize stores: float64 for
// numbers, string for text and nil for empty cells.
func cellValue(c domain.Cell) interface{} {
	switch c.Kind {
	case domain.CellNumber:
		return c.Num
	case domain.CellText:
		return c.Text
	default:
		return nil
	}
}
