// Package templates renders resolved content through named HTML layouts.
//
// The Engine is an explicitly constructed, immutable bundle of the layout
// registry and the shared data-file state. It is passed to callers at
// construction time rather than held in package-level singletons.
package templates

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/incrediblerust/sitegen/internal/config"
	"github.com/incrediblerust/sitegen/internal/content"
	siteerrors "github.com/incrediblerust/sitegen/internal/errors"
)

// DefaultLayout is used when a page names no layout in its front matter.
const DefaultLayout = "default"

// Engine holds parsed layouts and the shared data-file bundle.
type Engine struct {
	layouts map[string]*template.Template
	data    map[string]any
	cfg     *config.SiteConfig
}

// NewEngine loads layouts from {sourceDir}/_layouts (falling back to
// {sourceDir}/templates) and the data bundle from {sourceDir}/_data.
func NewEngine(sourceDir string, cfg *config.SiteConfig) (*Engine, error) {
	e := &Engine{
		layouts: map[string]*template.Template{},
		data:    map[string]any{},
		cfg:     cfg,
	}

	layoutsDir := filepath.Join(sourceDir, "_layouts")
	if _, err := os.Stat(layoutsDir); os.IsNotExist(err) {
		layoutsDir = filepath.Join(sourceDir, "templates")
	}
	if err := e.loadLayouts(layoutsDir); err != nil {
		return nil, err
	}

	data, err := LoadDataFiles(filepath.Join(sourceDir, "_data"))
	if err != nil {
		return nil, err
	}
	e.data = data

	return e, nil
}

func (e *Engine) loadLayouts(dir string) error {
	matches, err := filepath.Glob(filepath.Join(dir, "*.html"))
	if err != nil {
		return siteerrors.Wrap(err, siteerrors.CategoryIO, "failed to list layouts").WithPath(dir)
	}

	for _, match := range matches {
		name := strings.TrimSuffix(filepath.Base(match), ".html")
		raw, err := os.ReadFile(match)
		if err != nil {
			return siteerrors.Wrap(err, siteerrors.CategoryIO, "failed to read layout").WithPath(match)
		}
		tpl, err := template.New(name).Funcs(e.funcs()).Parse(string(raw))
		if err != nil {
			return siteerrors.Wrap(err, siteerrors.CategoryTemplate, "failed to parse layout").WithPath(match)
		}
		e.layouts[name] = tpl
	}
	return nil
}

func (e *Engine) funcs() template.FuncMap {
	return template.FuncMap{
		"relative_url": func(url string) string {
			if strings.HasPrefix(url, "/") {
				return e.cfg.BaseURL + url
			}
			return url
		},
		"absolute_url": func(url string) string {
			return e.cfg.URL + url
		},
	}
}

// HasLayout reports whether a layout with the given name was loaded.
func (e *Engine) HasLayout(name string) bool {
	_, ok := e.layouts[name]
	return ok
}

// Data exposes the shared data-file bundle (read-only).
func (e *Engine) Data() map[string]any {
	return e.data
}

// RenderContent renders a resolved content file through its layout, producing
// the final HTML page.
//
// The rendering context exposes: page (front matter incl. unrecognized keys),
// content (rendered HTML body), site (config), data (data-file bundle), lang,
// t (language-specific translation strings, when present) and language_urls.
func (e *Engine) RenderContent(cf *content.ContentFile, languageURLs map[string]string) (string, error) {
	layout := cf.FrontMatter.Layout
	if layout == "" {
		layout = DefaultLayout
	}

	tpl, ok := e.layouts[layout]
	if !ok {
		return "", siteerrors.New(siteerrors.CategoryTemplate,
			fmt.Sprintf("layout %q not found", layout)).WithPath(cf.RelativePath)
	}

	ctx := map[string]any{
		"page":          cf.FrontMatter.Map(),
		"content":       template.HTML(cf.HTML), //nolint:gosec // body is trusted site content
		"site":          e.cfg,
		"data":          e.data,
		"lang":          cf.Language,
		"language_urls": languageURLs,
	}
	if t := e.translationsFor(cf.Language); t != nil {
		ctx["t"] = t
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, ctx); err != nil {
		return "", siteerrors.Wrap(err, siteerrors.CategoryTemplate, "template rendering failed").WithPath(cf.RelativePath)
	}
	return buf.String(), nil
}

// translationsFor returns the translation strings for lang from the data
// bundle's translations file, or nil when absent.
func (e *Engine) translationsFor(lang string) any {
	translations, ok := e.data["translations"].(map[string]any)
	if !ok {
		return nil
	}
	return translations[lang]
}
