package sourcemaps

import "fmt"

// Position is a location in source map convention: Line is 1-based and
// Column is 0-based, matching how positions are encoded in the mappings
// table itself.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Before reports whether p orders strictly before q.
func (p Position) Before(q Position) bool {
	return p.Line < q.Line || (p.Line == q.Line && p.Column < q.Column)
}

// UILocation is a location as an editor presents it, with Line and Column
// both 1-based. It must be converted with MapPosition before being used in
// a map query.
type UILocation struct {
	Line   int
	Column int
}

// MapPosition converts the location to source map convention by shifting
// the column to 0-based.
func (l UILocation) MapPosition() Position {
	return Position{Line: l.Line, Column: l.Column - 1}
}

func (l UILocation) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// Location is an original source coordinate resolved from a map.
type Location struct {
	Source string
	Position
}

// Bias selects the rounding policy for lookups that have no exact entry.
type Bias int

const (
	// GreatestLowerBound resolves to the closest mapping at or before the
	// requested position.
	GreatestLowerBound Bias = iota
	// LeastUpperBound resolves to the closest mapping at or after the
	// requested position.
	LeastUpperBound
)
