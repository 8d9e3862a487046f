package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/incrediblerust/sitegen/internal/config"
	siteerrors "github.com/incrediblerust/sitegen/internal/errors"
)

func testConfig() *config.SiteConfig {
	return &config.SiteConfig{
		Title:           "The Incredible Rust",
		URL:             "https://incrediblerust.github.io",
		LanguageCodes:   []string{"en", "pt", "es"},
		DefaultLanguage: "en",
		Collections: map[string]config.CollectionConfig{
			"lessons": {Output: true, Permalink: "/:collection/:name/"},
		},
	}
}

func testResolver() *Resolver {
	return NewResolver(testConfig(), nil)
}

func writeContent(t *testing.T, root, rel, content string) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestClassify_PrefixCascade_FixedPriorityOrder(t *testing.T) {
	r := testResolver()

	cases := []struct {
		rel        string
		collection string
		lang       string
	}{
		{"_lessons_pt/variaveis.md", "lessons", "pt"},
		{"_lessons_es/variables.md", "lessons", "es"},
		{"_lessons/variables.md", "lessons", "en"},
		{"pt/about.md", "", "pt"},
		{"es/about.md", "", "es"},
		{"about.md", "", "en"},
		{"index.md", "", "en"},
	}
	for _, tc := range cases {
		collection, lang := r.Classify(tc.rel)
		require.Equal(t, tc.collection, collection, tc.rel)
		require.Equal(t, tc.lang, lang, tc.rel)
	}
}

func TestClassify_LocalizedCollectionDir_NeverFallsThroughToGenericPrefix(t *testing.T) {
	r := testResolver()

	// _lessons_pt also satisfies the _lessons prefix; the localized rule must win.
	collection, lang := r.Classify("_lessons_pt/ola-mundo.md")
	require.Equal(t, "lessons", collection)
	require.Equal(t, "pt", lang)
}

func TestClassify_IsPrefixMatchNotSegmentMatch(t *testing.T) {
	r := testResolver()

	// Deliberate compatibility semantics: a bare string prefix, so a top-level
	// directory named pt-something classifies as Portuguese.
	collection, lang := r.Classify("pt-release-notes/2024.md")
	require.Empty(t, collection)
	require.Equal(t, "pt", lang)
}

func TestResolve_FullFile_PopulatesAllFields(t *testing.T) {
	root := t.TempDir()
	path := writeContent(t, root, "_lessons_pt/variaveis.md",
		"---\ntitle: Variáveis\ndifficulty: iniciante\ncustom_key: kept\n---\n# Variáveis\n\nOlá\n")

	r := testResolver()
	cf, err := r.Resolve(path, root)
	require.NoError(t, err)
	require.Equal(t, path, cf.Path)
	require.Equal(t, "_lessons_pt/variaveis.md", cf.RelativePath)
	require.Equal(t, "lessons", cf.Collection)
	require.Equal(t, "pt", cf.Language)
	require.Equal(t, "Variáveis", cf.FrontMatter.Title)
	require.Equal(t, "kept", cf.FrontMatter.Extra["custom_key"])
	require.Contains(t, cf.Content, "# Variáveis")
	require.Contains(t, cf.HTML, "<h1>Variáveis</h1>")
}

func TestResolve_SameFileTwice_IdenticalResult(t *testing.T) {
	root := t.TempDir()
	path := writeContent(t, root, "about.md", "---\ntitle: About\n---\nBody text.\n")

	r := testResolver()
	first, err := r.Resolve(path, root)
	require.NoError(t, err)
	second, err := r.Resolve(path, root)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestResolve_NoFrontMatter_BodyOnly(t *testing.T) {
	root := t.TempDir()
	path := writeContent(t, root, "plain.md", "# Just a heading\n")

	r := testResolver()
	cf, err := r.Resolve(path, root)
	require.NoError(t, err)
	require.Empty(t, cf.FrontMatter.Title)
	require.Contains(t, cf.HTML, "<h1>Just a heading</h1>")
}

func TestResolve_MalformedFrontMatter_ParseError(t *testing.T) {
	root := t.TempDir()
	path := writeContent(t, root, "bad.md", "---\ntitle: [unclosed\n---\nbody\n")

	r := testResolver()
	_, err := r.Resolve(path, root)
	require.Error(t, err)
	require.True(t, siteerrors.IsCategory(err, siteerrors.CategoryParse))
	require.Equal(t, path, siteerrors.PathOf(err))
}

func TestResolve_MissingFile_IOError(t *testing.T) {
	root := t.TempDir()

	r := testResolver()
	_, err := r.Resolve(filepath.Join(root, "missing.md"), root)
	require.Error(t, err)
	require.True(t, siteerrors.IsCategory(err, siteerrors.CategoryIO))
}

func TestResolve_PathOutsideRoot_PathError(t *testing.T) {
	root := t.TempDir()
	outside := writeContent(t, t.TempDir(), "escape.md", "body\n")

	r := testResolver()
	_, err := r.Resolve(outside, root)
	require.Error(t, err)
	require.True(t, siteerrors.IsCategory(err, siteerrors.CategoryPath))
}

func TestResolve_ConfigDefaults_FillMissingKeysOnly(t *testing.T) {
	cfg := testConfig()
	cfg.Defaults = []config.DefaultRule{
		{Scope: config.DefaultScope{Type: "lessons"}, Values: map[string]any{"layout": "lesson", "difficulty": "beginner"}},
	}
	root := t.TempDir()
	path := writeContent(t, root, "_lessons/cargo.md", "---\ntitle: Cargo\ndifficulty: advanced\n---\nbody\n")

	r := NewResolver(cfg, nil)
	cf, err := r.Resolve(path, root)
	require.NoError(t, err)
	require.Equal(t, "lesson", cf.FrontMatter.Layout)
	// Author-provided values are never overwritten by defaults.
	require.Equal(t, "advanced", cf.FrontMatter.Difficulty)
}

func TestResolve_FrontMatterLang_DoesNotOverridePathClassification(t *testing.T) {
	root := t.TempDir()
	path := writeContent(t, root, "about.md", "---\nlang: pt\n---\nbody\n")

	r := testResolver()
	cf, err := r.Resolve(path, root)
	require.NoError(t, err)
	// The lang key passes through to templates but classification is path-driven.
	require.Equal(t, "en", cf.Language)
	require.Equal(t, "pt", cf.FrontMatter.Lang)
}
