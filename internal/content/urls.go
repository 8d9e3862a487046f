package content

import (
	"path"
	"strings"
)

// langPrefix returns the URL prefix for a language: empty for the default
// language, the bare code otherwise.
func (r *Resolver) langPrefix(lang string) string {
	if lang == r.cfg.DefaultLang() {
		return ""
	}
	return lang
}

// standaloneLocation returns the prefix-free URL location of a standalone
// page: its stem for regular pages, and for index pages the containing
// directory (empty at the language root, so index.md maps to "/").
func (r *Resolver) standaloneLocation(cf *ContentFile) string {
	stem := cf.Stem()
	if stem != "index" {
		return stem
	}

	dir := path.Dir(cf.RelativePath)
	if dir == "." {
		return ""
	}
	if prefix := r.langPrefix(cf.Language); prefix != "" {
		if dir == prefix {
			return ""
		}
		dir = strings.TrimPrefix(dir, prefix+"/")
	}
	return dir
}

func joinURL(segments ...string) string {
	kept := segments[:0:0]
	for _, s := range segments {
		if s != "" {
			kept = append(kept, s)
		}
	}
	if len(kept) == 0 {
		return "/"
	}
	return "/" + path.Join(kept...) + "/"
}

// OutputPath computes the canonical clean URL for a content file:
// /{lang-prefix}/{collection}/{stem}/ with empty segments collapsed. Index
// pages map to the enclosing directory root.
func (r *Resolver) OutputPath(cf *ContentFile) string {
	prefix := r.langPrefix(cf.Language)
	if cf.Collection != "" {
		if stem := cf.Stem(); stem != "index" {
			return joinURL(prefix, cf.Collection, stem)
		}
		return joinURL(prefix, cf.Collection)
	}
	return joinURL(prefix, r.standaloneLocation(cf))
}

// FilePath computes the on-disk location mirroring OutputPath, terminating in
// index.html (clean-URL convention). The result is slash-separated and
// relative to the output root.
func (r *Resolver) FilePath(cf *ContentFile) string {
	return path.Join(r.OutputPath(cf), "index.html")[1:]
}

// LanguageURLs computes, for every configured language, the URL of the
// semantically equivalent page.
//
// Collection pages resolve through the lesson slug table: the file's own slug
// is reverse-mapped to its canonical form, then localized per target
// language. Unknown translations degrade to the target language's collection
// index, never a broken link. Standalone pages are positional: the same
// location under each language prefix, with root index pages mapping to each
// language's site root.
func (r *Resolver) LanguageURLs(cf *ContentFile) map[string]string {
	urls := make(map[string]string, len(r.cfg.Languages()))
	def := r.cfg.DefaultLang()

	if cf.Collection == "" {
		loc := r.standaloneLocation(cf)
		for _, lang := range r.cfg.Languages() {
			urls[lang] = joinURL(r.langPrefix(lang), loc)
		}
		return urls
	}

	canonical := cf.Stem()
	if canonical == "index" {
		// Collection index pages are positional across languages.
		for _, lang := range r.cfg.Languages() {
			urls[lang] = joinURL(r.langPrefix(lang), cf.Collection)
		}
		return urls
	}
	if cf.Language != def {
		if c, ok := r.translations.Canonical(canonical); ok {
			canonical = c
		}
	}

	for _, lang := range r.cfg.Languages() {
		if lang == def {
			urls[lang] = joinURL(cf.Collection, canonical)
			continue
		}
		prefix := r.langPrefix(lang)
		if localized, ok := r.translations.Localized(lang, canonical); ok {
			urls[lang] = joinURL(prefix, cf.Collection, localized)
		} else {
			urls[lang] = joinURL(prefix, cf.Collection)
		}
	}
	return urls
}
