package adapter

import (
	"path/filepath"

	m "tixcov.dev/pkg/tixcov/internal/model"
)

// PathResolver locates a declared artifact path across a list of candidate
// root directories. The same routine backs metadata-file and source-file
// lookup; only the candidate list and the not-found error differ.
type PathResolver struct {
	fs CoverageFS
}

// NewPathResolver constructs a PathResolver on top of the given filesystem.
func NewPathResolver(fs CoverageFS) *PathResolver {
	return &PathResolver{fs: fs}
}

// Resolve tries declared verbatim, then declared joined under each root in
// the order given, and returns the first existing file. On exhaustion it
// returns found=false together with every location tried, in search order,
// for the caller's diagnostic. There is no fallback guessing beyond the
// supplied candidates.
func (r *PathResolver) Resolve(declared m.Path, roots []m.Path) (resolved m.Path, tried []m.Path, found bool) {
	candidates := make([]m.Path, 0, len(roots)+1)
	candidates = append(candidates, declared)

	for _, root := range roots {
		candidates = append(candidates, m.Path(filepath.Join(string(root), string(declared))))
	}

	for _, candidate := range candidates {
		if r.fs.Exists(candidate) {
			return candidate, nil, true
		}
	}

	return "", candidates, false
}
