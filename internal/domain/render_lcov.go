package domain

import (
	"bytes"
	"fmt"

	m "tixcov.dev/pkg/tixcov/internal/model"
)

// lcovRenderer emits the LCOV tracefile record syntax: per file an SF:
// record, DA: records in ascending line order, BRDA: records per branch
// position, LH:/LF: and BRH:/BRF: summaries, then end_of_record.
//
// BRDA block ids number the branch positions of a line in start-column
// order; branch id 0 is the true outcome, 1 the false outcome. A branch
// whose position was never evaluated renders "-", the format's "not
// executed" marker, which is distinct from an evaluated outcome taken zero
// times.
type lcovRenderer struct{}

func (r *lcovRenderer) Render(agg *m.Aggregate) ([]byte, error) {
	var buf bytes.Buffer

	for _, path := range agg.SortedFiles() {
		r.renderFile(&buf, path, agg.Files[path])
	}

	return buf.Bytes(), nil
}

func (r *lcovRenderer) renderFile(buf *bytes.Buffer, path m.Path, summary *m.FileSummary) {
	fmt.Fprintf(buf, "SF:%s\n", path)

	linesHit := 0

	for _, line := range summary.SortedLines() {
		hits := summary.Lines[line]
		if hits > 0 {
			linesHit++
		}

		fmt.Fprintf(buf, "DA:%d,%d\n", line, hits)
	}

	branchesHit := 0
	blockOnLine := make(map[int]int)

	positions := summary.SortedBranches()
	for _, pos := range positions {
		block := blockOnLine[pos.StartLine]
		blockOnLine[pos.StartLine]++

		outcome := summary.Branches[pos]

		writeBranch(buf, pos.StartLine, block, 0, outcome.TrueTaken, outcome.Evaluated())
		writeBranch(buf, pos.StartLine, block, 1, outcome.FalseTaken, outcome.Evaluated())

		if outcome.TrueTaken > 0 {
			branchesHit++
		}

		if outcome.FalseTaken > 0 {
			branchesHit++
		}
	}

	fmt.Fprintf(buf, "LH:%d\n", linesHit)
	fmt.Fprintf(buf, "LF:%d\n", len(summary.Lines))
	fmt.Fprintf(buf, "BRH:%d\n", branchesHit)
	fmt.Fprintf(buf, "BRF:%d\n", 2*len(positions))
	buf.WriteString("end_of_record\n")
}

func writeBranch(buf *bytes.Buffer, line, block, branch int, taken int64, evaluated bool) {
	if !evaluated {
		fmt.Fprintf(buf, "BRDA:%d,%d,%d,-\n", line, block, branch)
		return
	}

	fmt.Fprintf(buf, "BRDA:%d,%d,%d,%d\n", line, block, branch, taken)
}
