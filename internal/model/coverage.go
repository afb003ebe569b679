package model

import "sort"

// CoverageRecord is the correlation of one tick count with one metadata
// entry. Records are transient: produced per module, folded into an
// Aggregate and dropped.
type CoverageRecord struct {
	Ticks int64
	Entry MetadataEntry
}

// BranchOutcome holds the taken counts of the two outcomes of one boolean
// position.
type BranchOutcome struct {
	TrueTaken  int64
	FalseTaken int64
}

// Evaluated reports whether the boolean position was ever reached. A branch
// that was reached but whose outcome count is zero is distinct from one that
// was never evaluated at all.
func (b BranchOutcome) Evaluated() bool {
	return b.TrueTaken > 0 || b.FalseTaken > 0
}

// BranchCoverage classifies a branch position by its taken outcomes.
type BranchCoverage int

const (
	// BranchUncovered means neither outcome was taken.
	BranchUncovered BranchCoverage = iota
	// BranchPartial means exactly one outcome was taken.
	BranchPartial
	// BranchFull means both outcomes were taken.
	BranchFull
)

// Classify returns the coverage class of the outcome pair.
func (b BranchOutcome) Classify() BranchCoverage {
	switch {
	case b.TrueTaken > 0 && b.FalseTaken > 0:
		return BranchFull
	case b.TrueTaken > 0 || b.FalseTaken > 0:
		return BranchPartial
	}

	return BranchUncovered
}

// FileSummary accumulates coverage for one resolved source file: hit counts
// per instrumented line and outcome counts per boolean position. Lines with
// no instrumented region never appear in Lines.
type FileSummary struct {
	Lines    map[int]int64
	Branches map[Position]BranchOutcome
}

// NewFileSummary returns an empty summary.
func NewFileSummary() *FileSummary {
	return &FileSummary{
		Lines:    make(map[int]int64),
		Branches: make(map[Position]BranchOutcome),
	}
}

// AddRecord folds one coverage record into the summary. Every record
// contributes its tick count to each line of its span; branch records
// additionally update the outcome counters of their position.
func (s *FileSummary) AddRecord(rec CoverageRecord) {
	for line := rec.Entry.Pos.StartLine; line <= rec.Entry.Pos.EndLine; line++ {
		s.Lines[line] += rec.Ticks
	}

	switch rec.Entry.Kind {
	case RegionBranchTrue:
		outcome := s.Branches[rec.Entry.Pos]
		outcome.TrueTaken += rec.Ticks
		s.Branches[rec.Entry.Pos] = outcome
	case RegionBranchFalse:
		outcome := s.Branches[rec.Entry.Pos]
		outcome.FalseTaken += rec.Ticks
		s.Branches[rec.Entry.Pos] = outcome
	}
}

// Merge folds other into s additively.
func (s *FileSummary) Merge(other *FileSummary) {
	for line, hits := range other.Lines {
		s.Lines[line] += hits
	}

	for pos, outcome := range other.Branches {
		merged := s.Branches[pos]
		merged.TrueTaken += outcome.TrueTaken
		merged.FalseTaken += outcome.FalseTaken
		s.Branches[pos] = merged
	}
}

// SortedLines returns the instrumented line numbers in ascending order.
func (s *FileSummary) SortedLines() []int {
	lines := make([]int, 0, len(s.Lines))
	for line := range s.Lines {
		lines = append(lines, line)
	}

	sort.Ints(lines)

	return lines
}

// SortedBranches returns the branch positions ordered by start line, then
// start column, then end extent. The order is the basis for LCOV block ids.
func (s *FileSummary) SortedBranches() []Position {
	positions := make([]Position, 0, len(s.Branches))
	for pos := range s.Branches {
		positions = append(positions, pos)
	}

	sort.Slice(positions, func(i, j int) bool {
		a, b := positions[i], positions[j]
		if a.StartLine != b.StartLine {
			return a.StartLine < b.StartLine
		}
		if a.StartCol != b.StartCol {
			return a.StartCol < b.StartCol
		}
		if a.EndLine != b.EndLine {
			return a.EndLine < b.EndLine
		}

		return a.EndCol < b.EndCol
	})

	return positions
}

// Aggregate is the cross-target coverage summary keyed by resolved source
// file path. It is built incrementally while targets are processed and is
// never mutated once rendering starts.
type Aggregate struct {
	Files map[Path]*FileSummary
}

// NewAggregate returns an empty aggregate.
func NewAggregate() *Aggregate {
	return &Aggregate{Files: make(map[Path]*FileSummary)}
}

// File returns the summary for path, creating it on first use.
func (a *Aggregate) File(path Path) *FileSummary {
	summary, ok := a.Files[path]
	if !ok {
		summary = NewFileSummary()
		a.Files[path] = summary
	}

	return summary
}

// Merge folds other into a. Merging is additive, so folding per-target
// partial aggregates in any order yields the same result.
func (a *Aggregate) Merge(other *Aggregate) {
	for path, summary := range other.Files {
		a.File(path).Merge(summary)
	}
}

// SortedFiles returns the file paths in lexicographic order so report output
// is reproducible regardless of target processing order.
func (a *Aggregate) SortedFiles() []Path {
	paths := make([]Path, 0, len(a.Files))
	for path := range a.Files {
		paths = append(paths, path)
	}

	sort.Slice(paths, func(i, j int) bool { return paths[i] < paths[j] })

	return paths
}
