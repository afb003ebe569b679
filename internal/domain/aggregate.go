package domain

import (
	"tixcov.dev/pkg/tixcov/internal/adapter"
	m "tixcov.dev/pkg/tixcov/internal/model"
)

// Aggregator folds per-module coverage records into an Aggregate, resolving
// each module's source file against the source search roots so records from
// different targets that touch the same file land in the same summary.
type Aggregator struct {
	resolver *adapter.PathResolver
	srcRoots []m.Path
}

// NewAggregator constructs an Aggregator using the given resolver and source
// search roots.
func NewAggregator(resolver *adapter.PathResolver, srcRoots []m.Path) *Aggregator {
	return &Aggregator{resolver: resolver, srcRoots: srcRoots}
}

// Fold accumulates one module's records into agg under the module's resolved
// source path. A module with no instrumented regions contributes nothing; it
// must not surface its file as an empty key in the aggregate.
func (g *Aggregator) Fold(agg *m.Aggregate, meta m.MetadataFile, records []m.CoverageRecord) error {
	if len(records) == 0 {
		return nil
	}

	resolved, tried, found := g.resolver.Resolve(meta.Source, g.srcRoots)
	if !found {
		return &m.SrcNotFoundError{Path: meta.Source, Tried: tried}
	}

	summary := agg.File(resolved)
	for _, record := range records {
		summary.AddRecord(record)
	}

	return nil
}
