package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "tixcov.dev/pkg/tixcov/internal/model"
)

func TestParseTrace(t *testing.T) {
	t.Run("single module", func(t *testing.T) {
		modules, err := ParseTrace("spec.tix", []byte(`Tix [TixModule "Main" 1234567890 3 [1,0,2]]`))
		require.NoError(t, err)
		require.Len(t, modules, 1)

		assert.Equal(t, "Main", modules[0].Name)
		assert.Equal(t, uint64(1234567890), modules[0].Hash)
		assert.Equal(t, []int64{1, 0, 2}, modules[0].Ticks)
	})

	t.Run("module order is preserved", func(t *testing.T) {
		input := `Tix [ TixModule "pkg/B" 2 1 [5]
		            , TixModule "pkg/A" 1 2 [0,0] ]`

		modules, err := ParseTrace("spec.tix", []byte(input))
		require.NoError(t, err)
		require.Len(t, modules, 2)

		assert.Equal(t, "pkg/B", modules[0].Name)
		assert.Equal(t, "pkg/A", modules[1].Name)
		assert.Equal(t, m.Path("pkg/B.mix"), modules[0].MetadataPath())
	})

	t.Run("empty tix", func(t *testing.T) {
		modules, err := ParseTrace("spec.tix", []byte("Tix []"))
		require.NoError(t, err)
		assert.Empty(t, modules)
	})

	t.Run("empty tick list", func(t *testing.T) {
		modules, err := ParseTrace("spec.tix", []byte(`Tix [TixModule "Empty" 9 0 []]`))
		require.NoError(t, err)
		require.Len(t, modules, 1)
		assert.Empty(t, modules[0].Ticks)
	})

	t.Run("escaped quotes in module names", func(t *testing.T) {
		modules, err := ParseTrace("spec.tix", []byte(`Tix [TixModule "Odd\"Name" 1 1 [4]]`))
		require.NoError(t, err)
		assert.Equal(t, `Odd"Name`, modules[0].Name)
	})
}

func TestParseTraceRejectsMalformedInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"wrong top-level keyword", `Mix [TixModule "A" 1 1 [1]]`},
		{"missing bracket", `Tix TixModule "A" 1 1 [1]`},
		{"unterminated module list", `Tix [TixModule "A" 1 1 [1]`},
		{"negative tick count", `Tix [TixModule "A" 1 1 [-1]]`},
		{"non-numeric tick", `Tix [TixModule "A" 1 1 [x]]`},
		{"declared length too long", `Tix [TixModule "A" 1 4 [1,2]]`},
		{"declared length too short", `Tix [TixModule "A" 1 1 [1,2]]`},
		{"empty module name", `Tix [TixModule "" 1 1 [1]]`},
		{"trailing garbage", `Tix [] extra`},
		{"empty input", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTrace("spec.tix", []byte(tt.input))

			var parseErr *m.ParseError
			require.True(t, errors.As(err, &parseErr), "want ParseError, got %v", err)
			assert.Equal(t, m.Path("spec.tix"), parseErr.Path)
		})
	}
}

func TestParseTraceErrorCarriesPosition(t *testing.T) {
	input := "Tix [TixModule \"A\" 1 1\n[oops]]"

	_, err := ParseTrace("spec.tix", []byte(input))

	var parseErr *m.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, 2, parseErr.Line)
}
