package controller

import (
	"bytes"
	"context"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "tixcov.dev/pkg/tixcov/internal/model"
)

// SimpleUI implements UI using cobra Command's Println.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplaySummary prints the per-file coverage table.
func (s *SimpleUI) DisplaySummary(ctx context.Context, agg *m.Aggregate) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.cmd.Printf("\n%s", renderSummaryTable(agg))

	return nil
}

// DisplayConvertDone prints a one-line confirmation after a report was written.
func (s *SimpleUI) DisplayConvertDone(ctx context.Context, format m.Format, out m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	// A report streamed to stdout must stay the only thing on stdout.
	if out == "" || out == "-" {
		return
	}

	s.cmd.Printf("wrote %s report to %s\n", format, out)
}

type fileStat struct {
	path        string
	lines       int
	linesHit    int
	branches    int
	branchesHit int
}

func renderSummaryTable(agg *m.Aggregate) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"File", "Lines", "Hit", "Branches", "Taken", "Coverage"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})

	totals := fileStat{}

	for _, path := range agg.SortedFiles() {
		stat := summarizeFile(string(path), agg.Files[path])

		table.Append([]string{
			stat.path,
			fmt.Sprintf("%d", stat.lines),
			fmt.Sprintf("%d", stat.linesHit),
			fmt.Sprintf("%d", stat.branches),
			fmt.Sprintf("%d", stat.branchesHit),
			coveragePercent(stat.linesHit, stat.lines),
		})

		totals.lines += stat.lines
		totals.linesHit += stat.linesHit
		totals.branches += stat.branches
		totals.branchesHit += stat.branchesHit
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(agg.Files)),
		fmt.Sprintf("%d", totals.lines),
		fmt.Sprintf("%d", totals.linesHit),
		fmt.Sprintf("%d", totals.branches),
		fmt.Sprintf("%d", totals.branchesHit),
		coveragePercent(totals.linesHit, totals.lines),
	})

	table.Render()

	return tableBuffer.String()
}

func summarizeFile(path string, summary *m.FileSummary) fileStat {
	stat := fileStat{
		path:     path,
		lines:    len(summary.Lines),
		branches: 2 * len(summary.Branches),
	}

	for _, hits := range summary.Lines {
		if hits > 0 {
			stat.linesHit++
		}
	}

	for _, outcome := range summary.Branches {
		if outcome.TrueTaken > 0 {
			stat.branchesHit++
		}

		if outcome.FalseTaken > 0 {
			stat.branchesHit++
		}
	}

	return stat
}

func coveragePercent(hit, found int) string {
	if found == 0 {
		return "-"
	}

	return fmt.Sprintf("%.1f%%", 100*float64(hit)/float64(found))
}
