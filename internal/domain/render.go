package domain

import (
	m "tixcov.dev/pkg/tixcov/internal/model"
)

// Renderer serializes a completed aggregate into one report syntax. Both
// formats share the same input; the aggregation step never learns which one
// was requested.
type Renderer interface {
	Render(agg *m.Aggregate) ([]byte, error)
}

// NewRenderer returns the renderer for the requested format.
func NewRenderer(format m.Format) (Renderer, error) {
	switch format {
	case m.FormatCodecov:
		return &codecovRenderer{}, nil
	case m.FormatLcov:
		return &lcovRenderer{}, nil
	}

	return nil, &m.InvalidFormatError{Name: string(format)}
}

// lineBranchTally sums branch outcomes per line for formats that report a
// taken/total pair per branch-bearing line.
type lineBranchTally struct {
	taken int
	total int
}

func tallyBranchesByLine(summary *m.FileSummary) map[int]lineBranchTally {
	tallies := make(map[int]lineBranchTally)

	for pos, outcome := range summary.Branches {
		tally := tallies[pos.StartLine]
		tally.total += 2

		if outcome.TrueTaken > 0 {
			tally.taken++
		}

		if outcome.FalseTaken > 0 {
			tally.taken++
		}

		tallies[pos.StartLine] = tally
	}

	return tallies
}
