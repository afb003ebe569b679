package model

import "fmt"

// Position is the source extent of one instrumented region. Lines and
// columns are 1-based, both ends inclusive.
type Position struct {
	StartLine int
	StartCol  int
	EndLine   int
	EndCol    int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d-%d:%d", p.StartLine, p.StartCol, p.EndLine, p.EndCol)
}

// RegionKind classifies an instrumented region.
type RegionKind int

const (
	// RegionTopLevel is a top-level binding.
	RegionTopLevel RegionKind = iota
	// RegionLocal is a local binding.
	RegionLocal
	// RegionAlternative is a guard or pattern-match alternative.
	RegionAlternative
	// RegionExpression is a plain (boolean or other) expression.
	RegionExpression
	// RegionBranchTrue records the true outcome of a boolean position.
	RegionBranchTrue
	// RegionBranchFalse records the false outcome of a boolean position.
	RegionBranchFalse
)

var regionKindNames = map[RegionKind]string{
	RegionTopLevel:    "top-level",
	RegionLocal:       "local",
	RegionAlternative: "alternative",
	RegionExpression:  "expression",
	RegionBranchTrue:  "branch-true",
	RegionBranchFalse: "branch-false",
}

func (k RegionKind) String() string {
	if name, ok := regionKindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("RegionKind(%d)", int(k))
}

// IsBranch reports whether the kind is one of the two boolean outcomes.
func (k RegionKind) IsBranch() bool {
	return k == RegionBranchTrue || k == RegionBranchFalse
}

// BranchFlavor records which syntactic construct a branch region guards.
// It is diagnostic only; aggregation treats all flavors alike.
type BranchFlavor int

const (
	// BranchNone marks non-branch regions.
	BranchNone BranchFlavor = iota
	// BranchGuard is a guard condition.
	BranchGuard
	// BranchCond is an if/then/else condition.
	BranchCond
	// BranchQual is a qualifying expression (e.g. a comprehension filter).
	BranchQual
)

// MetadataEntry describes one instrumented region: its source extent, kind
// and, for named bindings, the declared name chain.
type MetadataEntry struct {
	Pos    Position
	Kind   RegionKind
	Flavor BranchFlavor
	Names  []string
}

// MetadataFile is the decoded form of one module's .mix file. Entries are in
// instrumentation index order, aligned one-to-one with the module's ticks.
type MetadataFile struct {
	Source  Path
	Entries []MetadataEntry
}
