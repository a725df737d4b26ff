package dataprocessing

import (
	"optpaircli/pkg/contracts/domain"
)

// chain builds a table from raw string rows, classifying cells the way the
// loader does.
func chain(columns []string, rows ...[]string) *domain.Table {
	t := domain.NewTable(columns...)
	for _, raw := range rows {
		cells := make([]domain.Cell, len(raw))
		for i, v := range raw {
			cells[i] = domain.ParseCell(v)
		}
		t.Append(cells)
	}
	return t
}

var basicColumns = []string{"Strike Price", "Call/Put", "Volume", "Settlement Price"}

// column returns the string values of one column
func column(t *domain.Table, name string) []string {
	idx := t.Column(name)
	if idx < 0 {
		return nil
	}
	out := make([]string, 0, t.Len())
	for _, row := range t.Rows {
		out = append(out, row[idx].String())
	}
	return out
}
