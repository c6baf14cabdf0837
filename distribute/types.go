// Package distribute defines the strategy enum, the Rule result and the
// CSS vocabulary shared by every strategy.
package distribute

import (
	"fmt"
	"strings"
)

// CSS vocabulary emitted by the strategies.
const (
	// UtilityPrefix is prepended to a strategy name to form the utility name.
	UtilityPrefix = "grid-cols-"
	// PropTemplateColumns is the container sizing property.
	PropTemplateColumns = "grid-template-columns"
	// PropGridColumn carries the per-child span.
	PropGridColumn = "grid-column"
	// PropColumnEnd carries the per-position end line.
	PropColumnEnd = "grid-column-end"
	// ChildSelector targets every direct child of the utility element.
	ChildSelector = "> *"
)

// Strategy selects one of the six distribution algorithms.
type Strategy int

const (
	// Start fills left to right; no overrides.
	Start Strategy = iota
	// Center centres an under-filled row on doubled columns.
	Center
	// End right-aligns an under-filled row.
	End
	// Between spreads items with the outer ones flush to the edges.
	Between
	// Around surrounds every item with equal padding.
	Around
	// Evenly makes all gaps, outer edges included, equal.
	Evenly
)

var strategyNames = [...]string{
	Start:   "start",
	Center:  "center",
	End:     "end",
	Between: "between",
	Around:  "around",
	Evenly:  "evenly",
}

// Strategies returns all strategies in declaration order.
func Strategies() []Strategy {
	return []Strategy{Start, Center, End, Between, Around, Evenly}
}

// String returns the lower-case strategy name ("center", ...).
func (s Strategy) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}

	return strategyNames[s]
}

// Valid reports whether s is one of the declared strategies.
func (s Strategy) Valid() bool {
	return s >= Start && s <= Evenly
}

// UtilityName returns the utility name for s, e.g. "grid-cols-center".
func (s Strategy) UtilityName() string {
	return UtilityPrefix + s.String()
}

// ParseStrategy accepts a strategy name ("around") or a utility name
// ("grid-cols-around"), case-insensitively.
func ParseStrategy(name string) (Strategy, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.TrimPrefix(key, UtilityPrefix)
	for s, n := range strategyNames {
		if n == key {
			return Strategy(s), nil
		}
	}

	return 0, fmt.Errorf("ParseStrategy(%q): %w", name, ErrUnknownStrategy)
}

// CenterFormula selects the constant offset of the center end-line formula
//
//	end = -N - ItemsInRow + offset + 2*IndexInRow
//
// Two revisions of the formula exist and produce different CSS.
type CenterFormula int

const (
	// CenterShipped uses offset -1.
	CenterShipped CenterFormula = iota
	// CenterShifted uses offset 0, one half-column further right.
	CenterShifted
)

var centerFormulaNames = [...]string{
	CenterShipped: "shipped",
	CenterShifted: "shifted",
}

// String returns the formula name.
func (f CenterFormula) String() string {
	if f < CenterShipped || f > CenterShifted {
		return fmt.Sprintf("CenterFormula(%d)", int(f))
	}

	return centerFormulaNames[f]
}

// offset returns the constant term of the formula.
func (f CenterFormula) offset() int {
	if f == CenterShifted {
		return 0
	}

	return -1
}

// ParseCenterFormula accepts "shipped" or "shifted"; the empty string maps to
// CenterShipped.
func ParseCenterFormula(name string) (CenterFormula, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "shipped":
		return CenterShipped, nil
	case "shifted":
		return CenterShifted, nil
	}

	return 0, fmt.Errorf("ParseCenterFormula(%q): %w", name, ErrUnknownFormula)
}

// ColumnEnd pins the end line of the children matched by Selector.
// End may be negative (counted from the last explicit line).
type ColumnEnd struct {
	Selector string
	End      int
}

// Rule is the complete output of one strategy for one target count.
// The zero Rule is empty and renders to nothing.
type Rule struct {
	Strategy        Strategy
	Target          int         // N
	TemplateColumns string      // grid-template-columns value
	Span            int         // per-child span; 0 means no "> *" block
	ColumnEnds      []ColumnEnd // in row-position enumeration order
}

// Declaration is a single CSS property/value pair.
type Declaration struct {
	Property string
	Value    string
}

// Block is a selector (relative to the utility class, "" for the class
// itself) with its ordered declarations.
type Block struct {
	Selector     string
	Declarations []Declaration
}
