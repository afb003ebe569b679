package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	format, err := ParseFormat("lcov")
	require.NoError(t, err)
	assert.Equal(t, FormatLcov, format)

	format, err = ParseFormat("codecov")
	require.NoError(t, err)
	assert.Equal(t, FormatCodecov, format)

	_, err = ParseFormat("cobertura")
	var invalid *InvalidFormatError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "cobertura", invalid.Name)
}

func TestParseBuildTool(t *testing.T) {
	tool, err := ParseBuildTool("stack")
	require.NoError(t, err)
	assert.NotEmpty(t, tool.SearchRoots())

	tool, err = ParseBuildTool("cabal")
	require.NoError(t, err)
	assert.NotEmpty(t, tool.SearchRoots())

	_, err = ParseBuildTool("make")
	var invalid *InvalidBuildToolError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "make", invalid.Name)
}

func TestTraceModuleMetadataPath(t *testing.T) {
	assert.Equal(t, Path("Main.mix"), TraceModule{Name: "Main"}.MetadataPath())

	// A package-qualified module declares a path with directories.
	assert.Equal(t, Path("x/Mod.mix"), TraceModule{Name: "x/Mod"}.MetadataPath())
}
