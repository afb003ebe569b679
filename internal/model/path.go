// Package model holds the shared data vocabulary of the conversion pipeline:
// paths, trace and metadata shapes, coverage summaries and the error taxonomy.
package model

// Path represents a file system path.
type Path string

// Format selects the report syntax emitted by the pipeline.
type Format string

const (
	// FormatCodecov is the JSON schema consumed by the Codecov ingestion service.
	FormatCodecov Format = "codecov"
	// FormatLcov is the LCOV tracefile record syntax.
	FormatLcov Format = "lcov"
)

// ParseFormat validates a collaborator-supplied format name.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatCodecov:
		return FormatCodecov, nil
	case FormatLcov:
		return FormatLcov, nil
	}

	return "", &InvalidFormatError{Name: name}
}

// BuildTool names a build tool whose directory conventions seed the
// metadata search path. Target discovery itself lives in the CLI layer.
type BuildTool string

const (
	// BuildToolStack is the stack build tool.
	BuildToolStack BuildTool = "stack"
	// BuildToolCabal is the cabal-install build tool.
	BuildToolCabal BuildTool = "cabal"
)

// ParseBuildTool validates a collaborator-supplied build tool name.
func ParseBuildTool(name string) (BuildTool, error) {
	switch BuildTool(name) {
	case BuildToolStack:
		return BuildToolStack, nil
	case BuildToolCabal:
		return BuildToolCabal, nil
	}

	return "", &InvalidBuildToolError{Name: name}
}

// SearchRoots returns the conventional artifact directories of the build
// tool, appended to user-supplied search roots by the CLI.
func (b BuildTool) SearchRoots() []Path {
	switch b {
	case BuildToolStack:
		return []Path{".stack-work/dist"}
	case BuildToolCabal:
		return []Path{"dist-newstyle"}
	}

	return nil
}

// Target is a named unit of instrumentation together with the location of
// its tick-count file. Immutable once resolved.
type Target struct {
	Name string
	Tix  Path
}
