package adapter

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "tixcov.dev/pkg/tixcov/internal/model"
)

func TestLocateExplicitTixPath(t *testing.T) {
	tmp := t.TempDir()
	tixPath := filepath.Join(tmp, "spec.tix")
	writeFile(t, tixPath, "Tix []")

	locator := NewTixLocator(NewLocalCoverageFS(), nil)

	target, err := locator.Locate(tixPath)
	require.NoError(t, err)
	assert.Equal(t, "spec", target.Name)
	assert.Equal(t, m.Path(tixPath), target.Tix)
}

func TestLocateExplicitTixPathMissing(t *testing.T) {
	locator := NewTixLocator(NewLocalCoverageFS(), nil)

	_, err := locator.Locate(filepath.Join(t.TempDir(), "gone.tix"))

	var notFound *m.TixNotFoundError
	require.True(t, errors.As(err, &notFound))
}

func TestLocateSuiteNameAcrossRoots(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, "tix", "spec", "spec.tix"), "Tix []")

	locator := NewTixLocator(NewLocalCoverageFS(), []m.Path{m.Path(filepath.Join(tmp, "tix", "spec"))})

	target, err := locator.Locate("spec")
	require.NoError(t, err)
	assert.Equal(t, "spec", target.Name)
	assert.Equal(t, m.Path(filepath.Join(tmp, "tix", "spec", "spec.tix")), target.Tix)
}

func TestLocateUnknownSuite(t *testing.T) {
	locator := NewTixLocator(NewLocalCoverageFS(), []m.Path{m.Path(t.TempDir())})

	_, err := locator.Locate("nope")

	var notFound *m.TestSuiteNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "nope", notFound.Name)
}
