package site

import (
	"testing"

	"github.com/stretchr/testify/require"

	siteerrors "github.com/incrediblerust/sitegen/internal/errors"
)

func TestExcluded_HardcodedPatterns_AlwaysSkipped(t *testing.T) {
	e, err := newExcluder(nil)
	require.NoError(t, err)

	skipped := []string{
		"_site/index.html",
		".git/HEAD",
		"Gemfile",
		"Gemfile.lock",
		"_config.yml",
		"target/debug/build",
		"src/main.rs",
		"Cargo.toml",
		"crates/core/Cargo.toml",
		"node_modules/pkg/index.md",
		"vendor/lib/doc.md",
		"README.md",
		"LICENSE",
		"CLAUDE.md",
		"docs/CLAUDE.md",
		"TAREFAS_pendentes.md",
	}
	for _, rel := range skipped {
		require.True(t, e.Excluded(rel), rel)
	}

	kept := []string{
		"index.md",
		"about.md",
		"_lessons/variables.md",
		"pt/about.md",
	}
	for _, rel := range kept {
		require.False(t, e.Excluded(rel), rel)
	}
}

func TestExcluded_ConfiguredPrefix_MatchesSubtree(t *testing.T) {
	e, err := newExcluder([]string{"drafts"})
	require.NoError(t, err)

	require.True(t, e.Excluded("drafts/secret.md"))
	require.True(t, e.Excluded("drafts"))
	require.False(t, e.Excluded("published/post.md"))
}

func TestExcluded_ConfiguredGlob_MatchesAnyDepth(t *testing.T) {
	e, err := newExcluder([]string{"*.tmp"})
	require.NoError(t, err)

	require.True(t, e.Excluded("scratch.tmp"))
	require.True(t, e.Excluded("deep/nested/scratch.tmp"))
	require.False(t, e.Excluded("scratch.md"))
}

func TestNewExcluder_InvalidGlob_ConfigError(t *testing.T) {
	_, err := newExcluder([]string{"[unclosed"})
	require.Error(t, err)
	require.True(t, siteerrors.IsCategory(err, siteerrors.CategoryConfig))
}
