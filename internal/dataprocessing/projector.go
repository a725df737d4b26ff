package dataprocessing

import (
	"optpaircli/pkg/contracts/domain"
)

// Projector removes a fixed set of columns from matched tables.
type Projector struct {
	drop map[string]bool
}

// NewProjector drops the _call and _put variants of each base column name.
func NewProjector(bases []string) *Projector {
	drop := make(map[string]bool, len(bases)*2)
	for _, base := range bases {
		drop[base+domain.SideCall.Suffix()] = true
		drop[base+domain.SidePut.Suffix()] = true
	}
	return &Projector{drop: drop}
}

// NewDefaultProjector drops domain.DroppedColumnBases.
func NewDefaultProjector() *Projector {
	return NewProjector(domain.DroppedColumnBases)
}

// Dropped reports whether the projector removes the named column.
func (p *Projector) Dropped(column string) bool {
	return p.drop[column]
}

// Project returns a copy of t without the dropped columns. Absent columns
// are ignored, so projecting twice equals projecting once.
func (p *Projector) Project(t *domain.Table) *domain.Table {
	keep := make([]int, 0, len(t.Columns))
	cols := make([]string, 0, len(t.Columns))
	for i, c := range t.Columns {
		if p.Dropped(c) {
			continue
		}
		keep = append(keep, i)
		cols = append(cols, c)
	}

	out := domain.NewTable(cols...)
	for _, row := range t.Rows {
		cells := make([]domain.Cell, len(keep))
		for j, i := range keep {
			cells[j] = row[i]
		}
		out.Append(cells)
	}
	return out
}
