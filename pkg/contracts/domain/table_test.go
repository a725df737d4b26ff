package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCell(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantKind CellKind
		wantNum  float64
		wantText string
	}{
		{name: "blank", raw: "   ", wantKind: CellEmpty},
		{name: "integer", raw: "50", wantKind: CellNumber, wantNum: 50, wantText: "50"},
		{name: "thousands separator", raw: "1,250", wantKind: CellNumber, wantNum: 1250, wantText: "1,250"},
		{name: "decimal with spaces", raw: " 2.5 ", wantKind: CellNumber, wantNum: 2.5, wantText: "2.5"},
		{name: "dash placeholder", raw: "-", wantKind: CellText, wantText: "-"},
		{name: "text", raw: "Call", wantKind: CellText, wantText: "Call"},
		{name: "negative exponent", raw: "-1.5e2", wantKind: CellNumber, wantNum: -150, wantText: "-1.5e2"},
		{name: "leading dot", raw: ".5", wantKind: CellNumber, wantNum: 0.5, wantText: ".5"},
		{name: "NaN stays text", raw: "NaN", wantKind: CellText, wantText: "NaN"},
		{name: "Inf stays text", raw: "Inf", wantKind: CellText, wantText: "Inf"},
		{name: "infinity stays text", raw: "-infinity", wantKind: CellText, wantText: "-infinity"},
		{name: "hex float stays text", raw: "0x1p3", wantKind: CellText, wantText: "0x1p3"},
		{name: "underscore digits stay text", raw: "1_000", wantKind: CellText, wantText: "1_000"},
		{name: "bare exponent stays text", raw: "1e", wantKind: CellText, wantText: "1e"},
		{name: "leading comma stays text", raw: ",5", wantKind: CellText, wantText: ",5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ParseCell(tt.raw)
			assert.Equal(t, tt.wantKind, c.Kind)
			assert.Equal(t, tt.wantNum, c.Num)
			assert.Equal(t, tt.wantText, c.Text)
		})
	}
}

func TestCellEqual(t *testing.T) {
	assert.True(t, ParseCell("100").Equal(ParseCell("100.0")))
	assert.True(t, ParseCell("TXO").Equal(TextCell("TXO")))
	assert.False(t, ParseCell("100").Equal(ParseCell("100A")))
	assert.False(t, Cell{}.Equal(Cell{}), "empty cells never match")
	assert.True(t, ParseCell("NaN").Equal(ParseCell("NaN")), "NaN is compared as text")
	assert.False(t, ParseCell("NaN").Equal(ParseCell("nan")))
	assert.Equal(t, ParseCell("0").Key(), ParseCell("-0").Key())
	assert.Equal(t, ParseCell("100").Key(), ParseCell("100.00").Key())
	assert.NotEqual(t, ParseCell("100").Key(), TextCell("100A").Key())
}

func TestTable(t *testing.T) {
	tbl := NewTable("Strike Price", "Volume")
	tbl.Append([]Cell{NumberCell(100)})
	tbl.Append([]Cell{NumberCell(105), NumberCell(3), NumberCell(9)})

	require.Equal(t, 2, tbl.Len())
	assert.Len(t, tbl.Rows[0], 2, "short rows are padded")
	assert.Len(t, tbl.Rows[1], 2, "long rows are truncated")
	assert.True(t, tbl.Rows[0][1].IsEmpty())
	assert.Equal(t, 1, tbl.Column("Volume"))
	assert.Equal(t, -1, tbl.Column("missing"))
	assert.True(t, tbl.HasColumns("Volume", "Strike Price"))
	assert.False(t, tbl.HasColumns("Volume", "Call/Put"))
	assert.Equal(t, 3.0, tbl.Value(1, "Volume").Num)
	assert.True(t, tbl.Value(1, "missing").IsEmpty())

	var nilTable *Table
	assert.Equal(t, 0, nilTable.Len())
}

func TestParseSide(t *testing.T) {
	tests := []struct {
		raw  string
		want Side
		ok   bool
	}{
		{"Call", SideCall, true},
		{" PUT ", SidePut, true},
		{"c", SideCall, true},
		{"P", SidePut, true},
		{"買權", SideCall, true},
		{"賣權", SidePut, true},
		{"straddle", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseSide(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
	assert.Equal(t, "_call", SideCall.Suffix())
	assert.Equal(t, "_put", SidePut.Suffix())
}

func TestRunReportCounts(t *testing.T) {
	r := RunReport{Files: []FileResult{
		{Path: "a.xlsx", Status: FileLoaded},
		{Path: "b.xlsx", Status: FileFailed},
		{Path: "c.xlsx", Status: FileSkipped},
		{Path: "d.xlsx", Status: FileLoaded},
	}}
	assert.Equal(t, 2, r.Count(FileLoaded))
	assert.Equal(t, 1, r.Count(FileSkipped))
	require.Len(t, r.Failed(), 1)
	assert.Equal(t, "b.xlsx", r.Failed()[0].Path)
}
