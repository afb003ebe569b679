package adapter

import (
	"fmt"
	"io"

	m "tixcov.dev/pkg/tixcov/internal/model"
)

// reportFileMode is the permission for written report files.
const reportFileMode = 0o644

// ReportSink writes a rendered report to its destination.
type ReportSink interface {
	// Write stores the rendered report bytes at dest. An empty dest or "-"
	// means standard output.
	Write(dest m.Path, content []byte) error
}

// LocalReportSink writes reports to the local filesystem or to a stream.
type LocalReportSink struct {
	fs     CoverageFS
	stdout io.Writer
}

// NewLocalReportSink constructs a LocalReportSink. stdout receives reports
// whose destination is empty or "-".
func NewLocalReportSink(fs CoverageFS, stdout io.Writer) *LocalReportSink {
	return &LocalReportSink{fs: fs, stdout: stdout}
}

// Write stores the report at dest, or streams it to stdout for "-"/empty.
func (s *LocalReportSink) Write(dest m.Path, content []byte) error {
	if dest == "" || dest == "-" {
		if _, err := s.stdout.Write(content); err != nil {
			return fmt.Errorf("failed to write report to stdout: %w", err)
		}

		return nil
	}

	if err := s.fs.WriteFile(dest, content, reportFileMode); err != nil {
		return fmt.Errorf("failed to write report to %s: %w", dest, err)
	}

	return nil
}
