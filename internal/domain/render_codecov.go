package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	m "tixcov.dev/pkg/tixcov/internal/model"
)

// codecovRenderer emits the JSON schema consumed by the Codecov ingestion
// service: one object per file mapping line-number keys to hit counts, with
// branch-bearing lines rendered as a "taken/total" fraction string.
//
// The document is assembled by hand rather than through json.Marshal of a
// map: object key order must be stable (files lexicographic, lines
// ascending) so the same inputs always produce byte-identical reports.
type codecovRenderer struct{}

func (r *codecovRenderer) Render(agg *m.Aggregate) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(`{"coverage":{`)

	for i, path := range agg.SortedFiles() {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(string(path))
		if err != nil {
			return nil, fmt.Errorf("failed to encode file path %s: %w", path, err)
		}

		buf.Write(key)
		buf.WriteByte(':')

		r.renderFile(&buf, agg.Files[path])
	}

	buf.WriteString("}}\n")

	return buf.Bytes(), nil
}

func (r *codecovRenderer) renderFile(buf *bytes.Buffer, summary *m.FileSummary) {
	tallies := tallyBranchesByLine(summary)

	buf.WriteByte('{')

	for i, line := range summary.SortedLines() {
		if i > 0 {
			buf.WriteByte(',')
		}

		buf.WriteByte('"')
		buf.WriteString(strconv.Itoa(line))
		buf.WriteString(`":`)

		if tally, ok := tallies[line]; ok {
			fmt.Fprintf(buf, `"%d/%d"`, tally.taken, tally.total)
			continue
		}

		buf.WriteString(strconv.FormatInt(summary.Lines[line], 10))
	}

	buf.WriteByte('}')
}
