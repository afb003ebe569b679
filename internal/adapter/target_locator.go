package adapter

import (
	"path/filepath"
	"strings"

	m "tixcov.dev/pkg/tixcov/internal/model"
)

// TargetLocator resolves a requested target name to the tick-count file that
// backs it. It is the seam behind which build-tool-specific discovery lives;
// the pipeline only ever sees resolved targets.
type TargetLocator interface {
	Locate(name string) (m.Target, error)
}

// TixLocator is a TargetLocator that accepts explicit .tix paths and looks
// up bare suite names as <name>.tix across the configured search roots.
type TixLocator struct {
	resolver *PathResolver
	fs       CoverageFS
	roots    []m.Path
}

// NewTixLocator constructs a TixLocator searching the given roots.
func NewTixLocator(fs CoverageFS, roots []m.Path) *TixLocator {
	return &TixLocator{
		resolver: NewPathResolver(fs),
		fs:       fs,
		roots:    roots,
	}
}

// Locate maps a target name to its tick-count file. An argument carrying the
// .tix extension is taken as an explicit path and must exist as declared; a
// bare name is searched as <name>.tix across the roots.
func (l *TixLocator) Locate(name string) (m.Target, error) {
	if strings.HasSuffix(name, ".tix") {
		path := m.Path(name)
		if !l.fs.Exists(path) {
			return m.Target{}, &m.TixNotFoundError{Path: path}
		}

		base := filepath.Base(name)

		return m.Target{Name: strings.TrimSuffix(base, ".tix"), Tix: path}, nil
	}

	resolved, _, found := l.resolver.Resolve(m.Path(name+".tix"), l.roots)
	if !found {
		return m.Target{}, &m.TestSuiteNotFoundError{Name: name}
	}

	return m.Target{Name: name, Tix: resolved}, nil
}
