package domain

import (
	"strconv"
	"strings"
)

// CellKind classifies the content of a spreadsheet cell.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellText
	CellNumber
)

// Cell is a nullable spreadsheet value. Numbers are classified once at load
// time so callers test presence and numeric-ness through Kind.
type Cell struct {
	Kind CellKind
	Text string
	Num  float64
}

// TextCell returns a text cell, or an empty cell for blank input.
func TextCell(s string) Cell {
	if strings.TrimSpace(s) == "" {
		return Cell{}
	}
	return Cell{Kind: CellText, Text: s}
}

// NumberCell returns a numeric cell.
func NumberCell(v float64) Cell {
	return Cell{Kind: CellNumber, Num: v, Text: strconv.FormatFloat(v, 'f', -1, 64)}
}

// ParseCell classifies a raw cell value. Only plain decimal notation is a
// number: optional sign, digits with thousands separators, an optional
// fraction and exponent. NaN, Inf and hex floats stay text.
func ParseCell(raw string) Cell {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Cell{}
	}
	if isDecimal(s) {
		if v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64); err == nil {
			return Cell{Kind: CellNumber, Num: v, Text: s}
		}
	}
	return Cell{Kind: CellText, Text: s}
}

// isDecimal reports whether s is written as [+-]digits[.digits][e[+-]digits],
// with commas allowed among the integer digits
func isDecimal(s string) bool {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	digits := 0
	for i < len(s) && (isDigit(s[i]) || (s[i] == ',' && digits > 0)) {
		if s[i] != ',' {
			digits++
		}
		i++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			digits++
			i++
		}
	}
	if digits == 0 {
		return false
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		exp := 0
		for i < len(s) && isDigit(s[i]) {
			exp++
			i++
		}
		if exp == 0 {
			return false
		}
	}
	return i == len(s)
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// IsEmpty reports whether the cell holds no value.
func (c Cell) IsEmpty() bool { return c.Kind == CellEmpty }

// IsNumber reports whether the cell holds a numeric value.
func (c Cell) IsNumber() bool { return c.Kind == CellNumber }

// String returns the display text of the cell.
func (c Cell) String() string { return c.Text }

// Equal compares two cells the way a join key is compared: numerically when
// both are numbers, by exact text otherwise. Empty cells never match.
func (c Cell) Equal(o Cell) bool {
	if c.IsEmpty() || o.IsEmpty() {
		return false
	}
	if c.IsNumber() && o.IsNumber() {
		return c.Num == o.Num
	}
	if c.IsNumber() != o.IsNumber() {
		return false
	}
	return c.Text == o.Text
}

// Key returns a grouping key consistent with Equal for non-empty cells.
func (c Cell) Key() string {
	if c.IsNumber() && c.Num == 0 {
		return "n:0"
	}
	if c.IsNumber() {
		return "n:" + strconv.FormatFloat(c.Num, 'g', -1, 64)
	}
	return "t:" + c.Text
}

// Table is an ordered set of named columns and rows of cells. Rows always
// have exactly len(Columns) cells.
type Table struct {
	Columns []string
	Rows    [][]Cell
}

// NewTable creates an empty table with the given header.
func NewTable(columns ...string) *Table {
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &Table{Columns: cols}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// Column returns the index of the named column, or -1 when absent.
func (t *Table) Column(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// HasColumns reports whether every named column is present.
func (t *Table) HasColumns(names ...string) bool {
	for _, n := range names {
		if t.Column(n) < 0 {
			return false
		}
	}
	return true
}

// Append adds a row, padding or truncating it to the header width.
func (t *Table) Append(row []Cell) {
	r := make([]Cell, len(t.Columns))
	copy(r, row)
	t.Rows = append(t.Rows, r)
}

// Value returns the cell at row i for the named column, or an empty cell
// when the column is absent.
func (t *Table) Value(i int, column string) Cell {
	idx := t.Column(column)
	if idx < 0 || i < 0 || i >= len(t.Rows) {
		return Cell{}
	}
	return t.Rows[i][idx]
}
