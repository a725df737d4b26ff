package domain

import "strings"

// Side is the option contract side of a raw row.
type Side string

const (
	SideCall Side = "call"
	SidePut  Side = "put"
)

var sideAliases = map[string]Side{
	"call": SideCall,
	"c":    SideCall,
	"買權":   SideCall,
	"put":  SidePut,
	"p":    SidePut,
	"賣權":   SidePut,
}

// ParseSide maps a side-indicator cell value to a Side. Unknown values
// report false and belong to neither the call nor the put subset.
func ParseSide(v string) (Side, bool) {
	s, ok := sideAliases[strings.ToLower(strings.TrimSpace(v))]
	return s, ok
}

// Suffix returns the column suffix used for this side after a join.
func (s Side) Suffix() string {
	return "_" + string(s)
}

// ColumnSchema names the columns the reconciler depends on. Volume, Strike
// and Side are required; Settlement is optional and only used for cost.
type ColumnSchema struct {
	Volume     string `yaml:"volume" envconfig:"VOLUME" validate:"required"`
	Strike     string `yaml:"strike" envconfig:"STRIKE" validate:"required"`
	Side       string `yaml:"side" envconfig:"SIDE" validate:"required"`
	Settlement string `yaml:"settlement" envconfig:"SETTLEMENT" validate:"required"`
}

// DefaultColumnSchema returns the column names used by exchange daily
// option reports.
func DefaultColumnSchema() ColumnSchema {
	return ColumnSchema{
		Volume:     "Volume",
		Strike:     "Strike Price",
		Side:       "Call/Put",
		Settlement: "Settlement Price",
	}
}

// Required returns the columns a file must carry to be reconciled.
func (s ColumnSchema) Required() []string {
	return []string{s.Volume, s.Strike, s.Side}
}

const (
	// DateColumn is the first column of every accumulated batch.
	DateColumn = "Date"
	// CostColumn holds call settlement + put settlement.
	CostColumn = "cost"
)

// DroppedColumnBases lists the columns removed after the join, each in its
// _call and _put variant.
var DroppedColumnBases = []string{
	"Implied Volatility%",
	"Fund Flow",
	"Call/Put",
	"Open Interest",
	"Contract Month",
}
