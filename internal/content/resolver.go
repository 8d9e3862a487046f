package content

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/incrediblerust/sitegen/internal/config"
	siteerrors "github.com/incrediblerust/sitegen/internal/errors"
	"github.com/incrediblerust/sitegen/internal/frontmatter"
	"github.com/incrediblerust/sitegen/internal/markdown"
)

// classifyRule pairs a path prefix with its classification outcome. Rules are
// evaluated in order; the first matching prefix wins.
type classifyRule struct {
	prefix     string
	collection string
	lang       string
}

// Resolver turns source files into ContentFiles. It is immutable after
// construction and safe to share.
type Resolver struct {
	cfg          *config.SiteConfig
	translations *Translations
	rules        []classifyRule
}

// NewResolver builds a resolver whose classification cascade is derived from
// the configured collections and languages.
func NewResolver(cfg *config.SiteConfig, translations *Translations) *Resolver {
	if translations == nil {
		translations = DefaultTranslations()
	}
	return &Resolver{
		cfg:          cfg,
		translations: translations,
		rules:        buildRules(cfg),
	}
}

// buildRules constructs the ordered prefix cascade:
//
//  1. localized collection markers (e.g. _lessons_pt, _lessons_es)
//  2. base collection markers (e.g. _lessons)
//  3. bare language prefixes (e.g. pt/, es/)
//
// Localized markers must precede base markers because the base marker is a
// substring of the localized ones. Within each tier, longer collection names
// come first so no collection shadows another whose name it prefixes.
func buildRules(cfg *config.SiteConfig) []classifyRule {
	names := make([]string, 0, len(cfg.Collections))
	for name := range cfg.Collections {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})

	def := cfg.DefaultLang()
	var rules []classifyRule
	for _, name := range names {
		for _, lang := range cfg.Languages() {
			if lang == def {
				continue
			}
			rules = append(rules, classifyRule{prefix: "_" + name + "_" + lang, collection: name, lang: lang})
		}
	}
	for _, name := range names {
		rules = append(rules, classifyRule{prefix: "_" + name, collection: name, lang: def})
	}
	for _, lang := range cfg.Languages() {
		if lang == def {
			continue
		}
		rules = append(rules, classifyRule{prefix: lang + "/", lang: lang})
	}
	return rules
}

// Classify determines collection and language from a slash-separated path
// relative to the content root. This is a plain string prefix cascade, not a
// segment-aware parse: a top-level directory named "pt-something" classifies
// as Portuguese. That matches the permalink layout this site has always had.
func (r *Resolver) Classify(relPath string) (collection, lang string) {
	for _, rule := range r.rules {
		if strings.HasPrefix(relPath, rule.prefix) {
			return rule.collection, rule.lang
		}
	}
	return "", r.cfg.DefaultLang()
}

// Resolve reads and classifies the file at path, which must live under
// contentRoot. The result is a pure function of the file bytes and the path.
func (r *Resolver) Resolve(path, contentRoot string) (*ContentFile, error) {
	rel, err := filepath.Rel(contentRoot, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return nil, siteerrors.New(siteerrors.CategoryPath, "path is not under the content root").WithPath(path)
	}
	relSlash := filepath.ToSlash(rel)

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, siteerrors.Wrap(err, siteerrors.CategoryIO, "failed to read content file").WithPath(path)
	}

	fmRaw, body, _, err := frontmatter.Split(raw)
	if err != nil {
		return nil, siteerrors.Wrap(err, siteerrors.CategoryParse, "malformed front matter").WithPath(path)
	}
	fields, err := frontmatter.ParseYAML(fmRaw)
	if err != nil {
		return nil, siteerrors.Wrap(err, siteerrors.CategoryParse, "malformed front matter").WithPath(path)
	}

	collection, lang := r.Classify(relSlash)

	// Scoped config defaults fill keys the author left out.
	for k, v := range r.cfg.DefaultsFor(relSlash, collection) {
		if _, ok := fields[k]; !ok {
			fields[k] = v
		}
	}

	html, err := markdown.Convert(body)
	if err != nil {
		return nil, siteerrors.Wrap(err, siteerrors.CategoryParse, "markdown conversion failed").WithPath(path)
	}

	return &ContentFile{
		Path:         path,
		RelativePath: relSlash,
		FrontMatter:  frontmatter.FromFields(fields),
		Content:      string(body),
		HTML:         html,
		Collection:   collection,
		Language:     lang,
	}, nil
}

// Translations exposes the lesson slug table (read-only).
func (r *Resolver) Translations() *Translations {
	return r.translations
}
