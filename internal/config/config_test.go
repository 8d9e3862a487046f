package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	siteerrors "github.com/incrediblerust/sitegen/internal/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "_config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_FullDocument_PopulatesFields(t *testing.T) {
	path := writeConfig(t, `
title: The Incredible Rust
description: Learn Rust Programming
url: https://incrediblerust.github.io
baseurl: ""
languages: [en, pt, es]
default_lang: en
collections:
  lessons:
    output: true
    permalink: /:collection/:name/
exclude:
  - drafts
  - "*.tmp"
defaults:
  - scope:
      path: ""
      type: lessons
    values:
      layout: lesson
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "The Incredible Rust", cfg.Title)
	require.Equal(t, []string{"en", "pt", "es"}, cfg.Languages())
	require.Equal(t, "en", cfg.DefaultLang())
	require.True(t, cfg.IsCollection("lessons"))
	require.False(t, cfg.IsCollection("posts"))

	cc, ok := cfg.Collection("lessons")
	require.True(t, ok)
	require.True(t, cc.Output)
}

func TestLoad_MissingOptionalFields_DeterministicDefaults(t *testing.T) {
	path := writeConfig(t, "title: Minimal\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, []string{"en"}, cfg.Languages())
	require.Equal(t, "en", cfg.DefaultLang())
	require.Empty(t, cfg.Exclude)
}

func TestLoad_MissingFile_IOError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
	require.True(t, siteerrors.IsCategory(err, siteerrors.CategoryIO))
}

func TestLoad_MalformedYAML_ParseError(t *testing.T) {
	path := writeConfig(t, "title: [unclosed\n")

	_, err := Load(path)
	require.Error(t, err)
	require.True(t, siteerrors.IsCategory(err, siteerrors.CategoryParse))
}

func TestLoad_InvalidLanguageCode_ConfigError(t *testing.T) {
	path := writeConfig(t, "languages: [en, \"not a lang\"]\n")

	_, err := Load(path)
	require.Error(t, err)
	require.True(t, siteerrors.IsCategory(err, siteerrors.CategoryConfig))
}

func TestLoad_EnvExpansion_SubstitutesVariables(t *testing.T) {
	t.Setenv("SITE_TITLE", "Expanded Title")
	path := writeConfig(t, "title: ${SITE_TITLE}\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "Expanded Title", cfg.Title)
}

func TestDefaultsFor_ScopeMatching_MergesInOrder(t *testing.T) {
	cfg := &SiteConfig{
		Defaults: []DefaultRule{
			{Scope: DefaultScope{}, Values: map[string]any{"layout": "default", "difficulty": "beginner"}},
			{Scope: DefaultScope{Type: "lessons"}, Values: map[string]any{"layout": "lesson"}},
			{Scope: DefaultScope{Path: "pt/"}, Values: map[string]any{"layout": "pagina"}},
		},
	}

	// Later matching rules override earlier ones.
	lesson := cfg.DefaultsFor("_lessons/variables.md", "lessons")
	require.Equal(t, "lesson", lesson["layout"])
	require.Equal(t, "beginner", lesson["difficulty"])

	page := cfg.DefaultsFor("pt/about.md", "")
	require.Equal(t, "pagina", page["layout"])

	standalone := cfg.DefaultsFor("about.md", "")
	require.Equal(t, "default", standalone["layout"])
}
