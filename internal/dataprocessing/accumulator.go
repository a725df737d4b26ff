package dataprocessing

import (
	"errors"

	"optpaircli/pkg/contracts/domain"
)

// ErrNoMatches is the informational outcome of a run in which no folder
// produced a matched row.
var ErrNoMatches = errors.New("no matching records found")

// Accumulator collects date-tagged batches in processing order. It owns the
// batches until Table concatenates them.
type Accumulator struct {
	batches []*domain.Table
	rows    int
}

// NewAccumulator creates an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// Add prepends the Date column holding dateTag to t and keeps it. Empty
// tables are dropped and Add reports false.
func (a *Accumulator) Add(t *domain.Table, dateTag string) bool {
	if t.Len() == 0 {
		return false
	}

	tagged := domain.NewTable(append([]string{domain.DateColumn}, t.Columns...)...)
	date := domain.TextCell(dateTag)
	for _, row := range t.Rows {
		cells := make([]domain.Cell, 0, len(row)+1)
		cells = append(cells, date)
		cells = append(cells, row...)
		tagged.Append(cells)
	}

	a.batches = append(a.batches, tagged)
	a.rows += tagged.Len()
	return true
}

// Len returns the number of accumulated rows.
func (a *Accumulator) Len() int {
	return a.rows
}

// Table concatenates every batch in insertion order. The header is the
// union of batch headers in first-seen order; cells a batch lacks stay
// empty. It returns ErrNoMatches when nothing was added.
func (a *Accumulator) Table() (*domain.Table, error) {
	if len(a.batches) == 0 {
		return domain.NewTable(), ErrNoMatches
	}

	var columns []string
	index := make(map[string]int)
	for _, b := range a.batches {
		for _, c := range b.Columns {
			if _, ok := index[c]; !ok {
				index[c] = len(columns)
				columns = append(columns, c)
			}
		}
	}

	out := domain.NewTable(columns...)
	out.Rows = make([][]domain.Cell, 0, a.rows)
	for _, b := range a.batches {
		positions := make([]int, len(b.Columns))
		for i, c := range b.Columns {
			positions[i] = index[c]
		}
		for _, row := range b.Rows {
			cells := make([]domain.Cell, len(columns))
			for i, cell := range row {
				cells[positions[i]] = cell
			}
			out.Rows = append(out.Rows, cells)
		}
	}
	return out, nil
}
