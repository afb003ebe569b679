// Package controller provides output adapters for presenting conversion
// results on the terminal.
package controller

import (
	"context"

	m "tixcov.dev/pkg/tixcov/internal/model"
)

// UI defines how commands present results to the user. Report payloads never
// pass through here; the UI only shows human-oriented summaries and status.
type UI interface {
	// DisplaySummary prints a per-file coverage table for the aggregate.
	DisplaySummary(ctx context.Context, agg *m.Aggregate) error

	// DisplayConvertDone prints a one-line confirmation after a report was
	// written.
	DisplayConvertDone(ctx context.Context, format m.Format, out m.Path)
}
