package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "tixcov.dev/pkg/tixcov/internal/model"
)

func branchPos(line int) m.Position {
	return m.Position{StartLine: line, StartCol: 3, EndLine: line, EndCol: 14}
}

func sampleAggregate() *m.Aggregate {
	agg := m.NewAggregate()

	main := agg.File("src/Main.hs")
	main.AddRecord(m.CoverageRecord{Ticks: 3, Entry: m.MetadataEntry{
		Pos:  m.Position{StartLine: 1, StartCol: 1, EndLine: 2, EndCol: 10},
		Kind: m.RegionTopLevel,
	}})
	main.AddRecord(m.CoverageRecord{Ticks: 0, Entry: m.MetadataEntry{
		Pos:  m.Position{StartLine: 4, StartCol: 1, EndLine: 4, EndCol: 9},
		Kind: m.RegionExpression,
	}})
	main.AddRecord(m.CoverageRecord{Ticks: 2, Entry: m.MetadataEntry{Pos: branchPos(6), Kind: m.RegionBranchTrue}})
	main.AddRecord(m.CoverageRecord{Ticks: 0, Entry: m.MetadataEntry{Pos: branchPos(6), Kind: m.RegionBranchFalse}})

	lib := agg.File("src/Lib.hs")
	lib.AddRecord(m.CoverageRecord{Ticks: 7, Entry: m.MetadataEntry{
		Pos:  m.Position{StartLine: 3, StartCol: 1, EndLine: 3, EndCol: 5},
		Kind: m.RegionLocal,
	}})

	return agg
}

func TestCodecovRender(t *testing.T) {
	renderer, err := NewRenderer(m.FormatCodecov)
	require.NoError(t, err)

	content, err := renderer.Render(sampleAggregate())
	require.NoError(t, err)

	want := `{"coverage":{"src/Lib.hs":{"3":7},"src/Main.hs":{"1":3,"2":3,"4":0,"6":"1/2"}}}` + "\n"
	assert.Equal(t, want, string(content))
	assert.True(t, json.Valid(content))
}

func TestCodecovRenderEmptyAggregate(t *testing.T) {
	renderer, err := NewRenderer(m.FormatCodecov)
	require.NoError(t, err)

	content, err := renderer.Render(m.NewAggregate())
	require.NoError(t, err)
	assert.Equal(t, "{\"coverage\":{}}\n", string(content))
}

func TestCodecovRenderBranchFractions(t *testing.T) {
	tests := []struct {
		name       string
		trueTicks  int64
		falseTicks int64
		want       string
	}{
		{"uncovered", 0, 0, `"0/2"`},
		{"partial", 0, 5, `"1/2"`},
		{"full", 2, 1, `"2/2"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg := m.NewAggregate()
			summary := agg.File("a.hs")
			summary.AddRecord(m.CoverageRecord{Ticks: tt.trueTicks, Entry: m.MetadataEntry{Pos: branchPos(1), Kind: m.RegionBranchTrue}})
			summary.AddRecord(m.CoverageRecord{Ticks: tt.falseTicks, Entry: m.MetadataEntry{Pos: branchPos(1), Kind: m.RegionBranchFalse}})

			renderer, err := NewRenderer(m.FormatCodecov)
			require.NoError(t, err)

			content, err := renderer.Render(agg)
			require.NoError(t, err)
			assert.Contains(t, string(content), `"1":`+tt.want)
		})
	}
}

func TestCodecovRenderIsReproducible(t *testing.T) {
	renderer, err := NewRenderer(m.FormatCodecov)
	require.NoError(t, err)

	first, err := renderer.Render(sampleAggregate())
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		next, err := renderer.Render(sampleAggregate())
		require.NoError(t, err)
		assert.Equal(t, string(first), string(next))
	}
}

func TestNewRendererRejectsUnknownFormat(t *testing.T) {
	_, err := NewRenderer(m.Format("cobertura"))
	require.Error(t, err)

	var invalid *m.InvalidFormatError
	assert.ErrorAs(t, err, &invalid)
}
