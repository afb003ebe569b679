package domain

import (
	m "tixcov.dev/pkg/tixcov/internal/model"
)

// Correlate zips a module's tick array with its metadata entries by index
// into coverage records, one per index, order preserved. The two sequences
// must originate from the same compiled instrumentation; a length mismatch
// means stale artifacts and is a fatal inconsistency. Truncating to the
// shorter side would silently under- or over-report coverage, so it never
// happens here.
func Correlate(module m.TraceModule, meta m.MetadataFile) ([]m.CoverageRecord, error) {
	if len(module.Ticks) != len(meta.Entries) {
		return nil, &m.LengthMismatchError{
			Module:  module.Name,
			Ticks:   len(module.Ticks),
			Entries: len(meta.Entries),
		}
	}

	records := make([]m.CoverageRecord, len(module.Ticks))
	for i, ticks := range module.Ticks {
		records[i] = m.CoverageRecord{Ticks: ticks, Entry: meta.Entries[i]}
	}

	return records, nil
}
