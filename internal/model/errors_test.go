package model

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvalidArgsErrorRendering(t *testing.T) {
	tests := []struct {
		name     string
		messages []string
		want     string
	}{
		{
			"single message renders as-is",
			[]string{"--jobs must be at least 1"},
			"--jobs must be at least 1",
		},
		{
			"two messages render as a bulleted list",
			[]string{"--jobs must be at least 1", "target name must not be empty"},
			"  - --jobs must be at least 1\n  - target name must not be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &InvalidArgsError{Messages: tt.messages}
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

func TestMixNotFoundErrorPluralizesTriedLocations(t *testing.T) {
	one := &MixNotFoundError{Module: "x/Mod", Tried: []Path{"x/Mod.mix"}}
	assert.Equal(t,
		"no metadata file found for module x/Mod, searched location: x/Mod.mix",
		one.Error())

	many := &MixNotFoundError{Module: "x/Mod", Tried: []Path{"x/Mod.mix", "a/x/Mod.mix", "b/x/Mod.mix"}}
	assert.Equal(t,
		"no metadata file found for module x/Mod, searched locations: x/Mod.mix, a/x/Mod.mix, b/x/Mod.mix",
		many.Error())
}

func TestSrcNotFoundErrorListsTriedLocations(t *testing.T) {
	err := &SrcNotFoundError{Path: "src/Main.hs", Tried: []Path{"src/Main.hs", "lib/src/Main.hs"}}
	assert.Equal(t,
		"no source file found for src/Main.hs, searched locations: src/Main.hs, lib/src/Main.hs",
		err.Error())
}

func TestTaxonomyMatchesWithErrorsAs(t *testing.T) {
	wrapped := fmt.Errorf("target spec-test: %w", &LengthMismatchError{Module: "Mod", Ticks: 3, Entries: 2})

	var mismatch *LengthMismatchError
	require.True(t, errors.As(wrapped, &mismatch))
	assert.Equal(t, "Mod", mismatch.Module)
	assert.Equal(t, 3, mismatch.Ticks)
	assert.Equal(t, 2, mismatch.Entries)
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"no target", &NoTargetError{}, "no target specified"},
		{"tix not found", &TixNotFoundError{Path: "a/b.tix"}, "no tick-count file found at a/b.tix"},
		{"invalid build tool", &InvalidBuildToolError{Name: "bazel"}, "invalid build tool: bazel"},
		{"invalid format", &InvalidFormatError{Name: "xml"}, "invalid report format: xml"},
		{"suite not found", &TestSuiteNotFoundError{Name: "spec"}, "no tick-count file found for test suite spec"},
		{"length mismatch", &LengthMismatchError{Module: "Mod", Ticks: 3, Entries: 2}, "module Mod: 3 tick counts but 2 metadata entries"},
		{"parse error", &ParseError{Path: "a.tix", Line: 2, Column: 7, Reason: "expected \"[\""}, "parse error in a.tix at 2:7: expected \"[\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}
