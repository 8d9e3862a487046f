// Package content turns raw files on disk into classified, localized content
// units and computes their output locations and cross-language equivalents.
package content

import (
	"path/filepath"
	"strings"

	"github.com/incrediblerust/sitegen/internal/frontmatter"
)

// ContentFile is the resolved unit of content. It is created once per source
// file during the walk and never mutated afterward.
type ContentFile struct {
	Path         string                   // absolute source path
	RelativePath string                   // slash-separated path relative to the content root
	FrontMatter  *frontmatter.FrontMatter // parsed metadata, defaults already applied
	Content      string                   // raw body text
	HTML         string                   // rendered HTML body
	Collection   string                   // empty for standalone pages
	Language     string                   // always one of the configured codes
}

// Stem returns the file name without extension, "index" when empty.
func (c *ContentFile) Stem() string {
	base := filepath.Base(c.Path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		return "index"
	}
	return stem
}

// IsIndex reports whether this file is an index page.
func (c *ContentFile) IsIndex() bool {
	return c.Stem() == "index"
}
