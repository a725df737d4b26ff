package dataprocessing

import (
	"optpaircli/pkg/contracts/domain"
)

// Reconciler pairs call and put rows that share a strike price.
type Reconciler struct {
	schema domain.ColumnSchema
}

// NewReconciler creates a reconciler for the given column names.
func NewReconciler(schema domain.ColumnSchema) *Reconciler {
	return &Reconciler{schema: schema}
}

// Reconcile runs split, join, volume filter and cost derivation over the
// rows of one file. An empty call or put subset gives an empty result.
func (r *Reconciler) Reconcile(t *domain.Table) *domain.Table {
	calls, puts := r.Split(t)
	joined := r.Join(calls, puts)
	matched := r.FilterMatched(joined)
	return r.DeriveCost(matched)
}

// Split partitions rows by side indicator. Rows whose side value is neither
// call nor put are dropped. Both subsets keep the input header.
func (r *Reconciler) Split(t *domain.Table) (calls, puts *domain.Table) {
	calls = domain.NewTable(t.Columns...)
	puts = domain.NewTable(t.Columns...)

	sideIdx := t.Column(r.schema.Side)
	if sideIdx < 0 {
		return calls, puts
	}

	for _, row := range t.Rows {
		side, ok := domain.ParseSide(row[sideIdx].Text)
		if !ok {
			continue
		}
		switch side {
		case domain.SideCall:
			calls.Append(row)
		case domain.SidePut:
			puts.Append(row)
		}
	}
	return calls, puts
}

// JoinedColumns returns the header of a call/put join: the strike column
// keeps its name and position from the call side, every other call column
// gets the _call suffix, then each non-strike put column follows with the
// _put suffix.
func (r *Reconciler) JoinedColumns(calls, puts *domain.Table) []string {
	cols := make([]string, 0, len(calls.Columns)+len(puts.Columns))
	for _, c := range calls.Columns {
		if c == r.schema.Strike {
			cols = append(cols, c)
			continue
		}
		cols = append(cols, c+domain.SideCall.Suffix())
	}
	for _, c := range puts.Columns {
		if c == r.schema.Strike {
			continue
		}
		cols = append(cols, c+domain.SidePut.Suffix())
	}
	return cols
}

// Join inner-joins calls and puts on strike price. Every call row is
// combined with every put row of the same strike, in call-row order and
// then put-row order; duplicates on either side multiply.
func (r *Reconciler) Join(calls, puts *domain.Table) *domain.Table {
	out := domain.NewTable(r.JoinedColumns(calls, puts)...)

	callStrike := calls.Column(r.schema.Strike)
	putStrike := puts.Column(r.schema.Strike)
	if callStrike < 0 || putStrike < 0 || calls.Len() == 0 || puts.Len() == 0 {
		return out
	}

	putsByStrike := make(map[string][]int)
	for i, row := range puts.Rows {
		if row[putStrike].IsEmpty() {
			continue
		}
		key := row[putStrike].Key()
		putsByStrike[key] = append(putsByStrike[key], i)
	}

	for _, callRow := range calls.Rows {
		strike := callRow[callStrike]
		if strike.IsEmpty() {
			continue
		}
		for _, pi := range putsByStrike[strike.Key()] {
			putRow := puts.Rows[pi]
			if !strike.Equal(putRow[putStrike]) {
				continue
			}
			joined := make([]domain.Cell, 0, len(out.Columns))
			joined = append(joined, callRow...)
			for j, cell := range putRow {
				if j == putStrike {
					continue
				}
				joined = append(joined, cell)
			}
			out.Append(joined)
		}
	}

	return out
}

// FilterMatched keeps joined rows whose call and put volumes are both
// numbers and exactly equal.
func (r *Reconciler) FilterMatched(joined *domain.Table) *domain.Table {
	out := domain.NewTable(joined.Columns...)

	callVol := joined.Column(r.schema.Volume + domain.SideCall.Suffix())
	putVol := joined.Column(r.schema.Volume + domain.SidePut.Suffix())
	if callVol < 0 || putVol < 0 {
		return out
	}

	for _, row := range joined.Rows {
		c, p := row[callVol], row[putVol]
		if c.IsNumber() && p.IsNumber() && c.Num == p.Num {
			out.Append(row)
		}
	}
	return out
}

// DeriveCost appends the cost column (call settlement + put settlement)
// when both settlement columns are present. Rows where either settlement
// is not a number get an empty cost. Without settlement columns the table
// is returned unchanged.
func (r *Reconciler) DeriveCost(matched *domain.Table) *domain.Table {
	callSettle := matched.Column(r.schema.Settlement + domain.SideCall.Suffix())
	putSettle := matched.Column(r.schema.Settlement + domain.SidePut.Suffix())
	if callSettle < 0 || putSettle < 0 {
		return matched
	}

	out := domain.NewTable(append(append([]string{}, matched.Columns...), domain.CostColumn)...)
	for _, row := range matched.Rows {
		cost := domain.Cell{}
		c, p := row[callSettle], row[putSettle]
		if c.IsNumber() && p.IsNumber() {
			cost = domain.NumberCell(c.Num + p.Num)
		}
		out.Append(append(append([]domain.Cell{}, row...), cost))
	}
	return out
}
