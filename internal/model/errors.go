package model

import (
	"fmt"
	"strings"
)

// The conversion pipeline raises a closed set of failure kinds. Each kind is
// its own type with structured fields so call sites can match with errors.As
// while the root command stays the single formatting point. Every failure is
// fatal to the invocation; no component recovers locally.

// NoTargetError signals that no target was specified at all.
type NoTargetError struct{}

func (e *NoTargetError) Error() string {
	return "no target specified"
}

// TixNotFoundError signals that a declared tick-count file does not exist.
type TixNotFoundError struct {
	Path Path
}

func (e *TixNotFoundError) Error() string {
	return fmt.Sprintf("no tick-count file found at %s", e.Path)
}

// MixNotFoundError signals that a module's metadata file was not found in
// any candidate location. Tried preserves search order for the diagnostic.
type MixNotFoundError struct {
	Module string
	Tried  []Path
}

func (e *MixNotFoundError) Error() string {
	return fmt.Sprintf("no metadata file found for module %s, %s", e.Module, searchedLocations(e.Tried))
}

// SrcNotFoundError signals that a source file referenced by metadata was not
// found in any candidate location.
type SrcNotFoundError struct {
	Path  Path
	Tried []Path
}

func (e *SrcNotFoundError) Error() string {
	return fmt.Sprintf("no source file found for %s, %s", e.Path, searchedLocations(e.Tried))
}

func searchedLocations(tried []Path) string {
	if len(tried) == 1 {
		return fmt.Sprintf("searched location: %s", tried[0])
	}

	locations := make([]string, len(tried))
	for i, path := range tried {
		locations[i] = string(path)
	}

	return fmt.Sprintf("searched locations: %s", strings.Join(locations, ", "))
}

// InvalidBuildToolError signals an unrecognized build tool name.
type InvalidBuildToolError struct {
	Name string
}

func (e *InvalidBuildToolError) Error() string {
	return fmt.Sprintf("invalid build tool: %s", e.Name)
}

// InvalidFormatError signals an unrecognized report format name.
type InvalidFormatError struct {
	Name string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid report format: %s", e.Name)
}

// TestSuiteNotFoundError signals a named target with no tick-count file.
type TestSuiteNotFoundError struct {
	Name string
}

func (e *TestSuiteNotFoundError) Error() string {
	return fmt.Sprintf("no tick-count file found for test suite %s", e.Name)
}

// InvalidArgsError collects option validation failures. A single message
// renders as-is; several render as a bulleted list.
type InvalidArgsError struct {
	Messages []string
}

func (e *InvalidArgsError) Error() string {
	if len(e.Messages) == 1 {
		return e.Messages[0]
	}

	lines := make([]string, len(e.Messages))
	for i, message := range e.Messages {
		lines[i] = "  - " + message
	}

	return strings.Join(lines, "\n")
}

// ParseError signals malformed trace or metadata content. Parsing never
// coerces bad input into an empty or partial result.
type ParseError struct {
	Path   Path
	Line   int
	Column int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s at %d:%d: %s", e.Path, e.Line, e.Column, e.Reason)
}

// LengthMismatchError signals a tick array and metadata entry list of
// different lengths: stale artifacts, never truncated to the shorter side.
type LengthMismatchError struct {
	Module  string
	Ticks   int
	Entries int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("module %s: %d tick counts but %d metadata entries", e.Module, e.Ticks, e.Entries)
}
