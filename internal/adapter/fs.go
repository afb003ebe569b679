// Package adapter contains the infrastructure adapters of the tixcov CLI:
// filesystem access, path resolution and report output.
package adapter

import (
	"os"

	m "tixcov.dev/pkg/tixcov/internal/model"
)

// CoverageFS abstracts the filesystem operations the pipeline relies on. It
// hides direct `os` access so resolution and pipeline logic can be tested
// without touching the disk.
type CoverageFS interface {
	// Exists reports whether path names an existing regular file.
	Exists(path m.Path) bool

	// ReadFile loads a file from disk and returns its contents. Artifacts
	// are small and read fully into memory.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile writes content to a file with the given permissions.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error
}

// LocalCoverageFS is the concrete CoverageFS backed by the os package.
type LocalCoverageFS struct{}

// NewLocalCoverageFS constructs a LocalCoverageFS ready to be wired into the
// pipeline.
func NewLocalCoverageFS() *LocalCoverageFS {
	return &LocalCoverageFS{}
}

// Exists reports whether path names an existing regular file.
func (fs *LocalCoverageFS) Exists(path m.Path) bool {
	info, err := os.Stat(string(path))
	if err != nil {
		return false
	}

	return info.Mode().IsRegular()
}

// ReadFile loads file contents from disk.
func (fs *LocalCoverageFS) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// WriteFile writes content to a file with the given permissions.
func (fs *LocalCoverageFS) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	return os.WriteFile(string(path), content, perm)
}
