package domain

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"tixcov.dev/pkg/tixcov/internal/adapter"
	m "tixcov.dev/pkg/tixcov/internal/model"
)

// SummarizeArgs configures aggregate construction.
type SummarizeArgs struct {
	// Targets are the resolved instrumentation targets to fold together.
	Targets []m.Target

	// MixRoots are the candidate directories searched for metadata files,
	// in priority order.
	MixRoots []m.Path

	// SrcRoots are the candidate directories searched for the source files
	// metadata entries refer to.
	SrcRoots []m.Path

	// Jobs bounds how many targets are parsed concurrently. Values below 1
	// mean serial processing.
	Jobs int
}

// ConvertArgs configures a full conversion run.
type ConvertArgs struct {
	SummarizeArgs

	Format m.Format
	Out    m.Path
}

// Pipeline is the sole entry point the CLI layer wraps: it accepts resolved
// targets plus format/destination and returns success or a typed failure.
// Any parse or correlation failure aborts the whole invocation; no partial
// report is ever written.
type Pipeline interface {
	// Summarize builds the cross-target aggregate without rendering it.
	Summarize(ctx context.Context, args SummarizeArgs) (*m.Aggregate, error)

	// Convert builds the aggregate, renders it in the requested format and
	// writes it to the destination.
	Convert(ctx context.Context, args ConvertArgs) error
}

type pipeline struct {
	fs       adapter.CoverageFS
	resolver *adapter.PathResolver
	sink     adapter.ReportSink
}

// NewPipeline constructs the conversion pipeline on top of the given
// filesystem and report sink.
func NewPipeline(fs adapter.CoverageFS, sink adapter.ReportSink) Pipeline {
	return &pipeline{
		fs:       fs,
		resolver: adapter.NewPathResolver(fs),
		sink:     sink,
	}
}

// Summarize parses each target's artifacts into a per-target partial
// aggregate and merges the partials in one serial reduction. Parsing and
// correlation are pure per target, so they are the only parallel region;
// the shared aggregate is never written from more than one goroutine.
func (p *pipeline) Summarize(ctx context.Context, args SummarizeArgs) (*m.Aggregate, error) {
	if len(args.Targets) == 0 {
		return nil, &m.NoTargetError{}
	}

	jobs := args.Jobs
	if jobs < 1 {
		jobs = 1
	}

	partials := make([]*m.Aggregate, len(args.Targets))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(jobs)

	for i, target := range args.Targets {
		i, target := i, target
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			partial, err := p.summarizeTarget(target, args)
			if err != nil {
				return err
			}

			partials[i] = partial

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	total := m.NewAggregate()
	for _, partial := range partials {
		total.Merge(partial)
	}

	return total, nil
}

func (p *pipeline) summarizeTarget(target m.Target, args SummarizeArgs) (*m.Aggregate, error) {
	if !p.fs.Exists(target.Tix) {
		return nil, &m.TixNotFoundError{Path: target.Tix}
	}

	content, err := p.fs.ReadFile(target.Tix)
	if err != nil {
		return nil, fmt.Errorf("failed to read tick-count file %s: %w", target.Tix, err)
	}

	modules, err := ParseTrace(target.Tix, content)
	if err != nil {
		return nil, err
	}

	slog.Debug("parsed tick-count file", "target", target.Name, "tix", target.Tix, "modules", len(modules))

	aggregator := NewAggregator(p.resolver, args.SrcRoots)
	agg := m.NewAggregate()

	for _, module := range modules {
		if err := p.foldModule(aggregator, agg, module, args.MixRoots); err != nil {
			return nil, err
		}
	}

	return agg, nil
}

func (p *pipeline) foldModule(aggregator *Aggregator, agg *m.Aggregate, module m.TraceModule, mixRoots []m.Path) error {
	mixPath, tried, found := p.resolver.Resolve(module.MetadataPath(), mixRoots)
	if !found {
		return &m.MixNotFoundError{Module: module.Name, Tried: tried}
	}

	content, err := p.fs.ReadFile(mixPath)
	if err != nil {
		return fmt.Errorf("failed to read metadata file %s: %w", mixPath, err)
	}

	meta, err := ParseMetadata(mixPath, content)
	if err != nil {
		return err
	}

	records, err := Correlate(module, meta)
	if err != nil {
		return err
	}

	slog.Debug("correlated module", "module", module.Name, "mix", mixPath, "regions", len(records))

	return aggregator.Fold(agg, meta, records)
}

// Convert runs the whole conversion: summarize, render, write.
func (p *pipeline) Convert(ctx context.Context, args ConvertArgs) error {
	renderer, err := NewRenderer(args.Format)
	if err != nil {
		return err
	}

	agg, err := p.Summarize(ctx, args.SummarizeArgs)
	if err != nil {
		return err
	}

	content, err := renderer.Render(agg)
	if err != nil {
		return err
	}

	if err := p.sink.Write(args.Out, content); err != nil {
		return err
	}

	slog.Info("report written", "format", args.Format, "out", args.Out, "files", len(agg.Files))

	return nil
}
