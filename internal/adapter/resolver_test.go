package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "tixcov.dev/pkg/tixcov/internal/model"
)

func writeFile(t *testing.T, path string, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestResolveReturnsFirstExistingCandidate(t *testing.T) {
	tmp := t.TempDir()
	rootA := filepath.Join(tmp, "a")
	rootB := filepath.Join(tmp, "b")
	writeFile(t, filepath.Join(rootB, "x", "Mod.mix"), "Mix")

	resolver := NewPathResolver(NewLocalCoverageFS())

	resolved, _, found := resolver.Resolve("x/Mod.mix", []m.Path{m.Path(rootA), m.Path(rootB)})
	require.True(t, found)
	assert.Equal(t, m.Path(filepath.Join(rootB, "x", "Mod.mix")), resolved)
}

func TestResolvePrefersDeclaredPathVerbatim(t *testing.T) {
	tmp := t.TempDir()
	declared := filepath.Join(tmp, "Mod.mix")
	writeFile(t, declared, "Mix")
	writeFile(t, filepath.Join(tmp, "root", declared), "Mix")

	resolver := NewPathResolver(NewLocalCoverageFS())

	resolved, _, found := resolver.Resolve(m.Path(declared), []m.Path{m.Path(filepath.Join(tmp, "root"))})
	require.True(t, found)
	assert.Equal(t, m.Path(declared), resolved)
}

func TestResolveExhaustionListsEveryLocationInOrder(t *testing.T) {
	tmp := t.TempDir()
	rootA := filepath.Join(tmp, "a")
	rootB := filepath.Join(tmp, "b")

	resolver := NewPathResolver(NewLocalCoverageFS())

	_, tried, found := resolver.Resolve("x/Mod.mix", []m.Path{m.Path(rootA), m.Path(rootB)})
	require.False(t, found)
	assert.Equal(t, []m.Path{
		"x/Mod.mix",
		m.Path(filepath.Join(rootA, "x", "Mod.mix")),
		m.Path(filepath.Join(rootB, "x", "Mod.mix")),
	}, tried)
}

func TestResolveIgnoresDirectories(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tmp, "Mod.mix"), 0o755))

	resolver := NewPathResolver(NewLocalCoverageFS())

	_, _, found := resolver.Resolve("Mod.mix", []m.Path{m.Path(tmp)})
	assert.False(t, found)
}
