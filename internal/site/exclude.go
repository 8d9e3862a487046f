package site

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"

	siteerrors "github.com/incrediblerust/sitegen/internal/errors"
)

// hardcodedPrefixes are always skipped regardless of configuration: build
// output, version control, tooling files.
var hardcodedPrefixes = []string{
	"_site",
	".git",
	"Gemfile",
	"_config.yml",
	"src/",
	"target/",
}

// hardcodedFragments exclude any path containing them: lockfiles,
// dependency directories and repo housekeeping files.
var hardcodedFragments = []string{
	".lock",
	"node_modules",
	"vendor",
	"README.md",
	"LICENSE",
	"CLAUDE.md",
	"TAREFAS_",
}

// hardcodedSuffixes exclude paths ending with them.
var hardcodedSuffixes = []string{
	"Cargo.toml",
}

// excluder decides which relative paths are kept out of the content walk.
type excluder struct {
	globs    []glob.Glob
	prefixes []string
}

// newExcluder compiles the configured exclusion list. Patterns containing
// wildcard metacharacters are compiled as globs matching anywhere in the
// path; plain patterns are prefix matches.
func newExcluder(patterns []string) (*excluder, error) {
	e := &excluder{}
	for _, pattern := range patterns {
		if strings.ContainsAny(pattern, "*?[{") {
			// No separator chars: * spans path segments, so *.tmp matches at any depth.
			g, err := glob.Compile(pattern)
			if err != nil {
				return nil, siteerrors.Wrap(err, siteerrors.CategoryConfig,
					fmt.Sprintf("invalid exclude pattern %q", pattern))
			}
			e.globs = append(e.globs, g)
			continue
		}
		e.prefixes = append(e.prefixes, pattern)
	}
	return e, nil
}

// Excluded reports whether the slash-separated path relative to the content
// root should be skipped.
func (e *excluder) Excluded(relPath string) bool {
	for _, prefix := range hardcodedPrefixes {
		if strings.HasPrefix(relPath, prefix) {
			return true
		}
	}
	for _, fragment := range hardcodedFragments {
		if strings.Contains(relPath, fragment) {
			return true
		}
	}
	for _, suffix := range hardcodedSuffixes {
		if strings.HasSuffix(relPath, suffix) {
			return true
		}
	}
	for _, prefix := range e.prefixes {
		if strings.HasPrefix(relPath, prefix) {
			return true
		}
	}
	for _, g := range e.globs {
		if g.Match(relPath) {
			return true
		}
	}
	return false
}
