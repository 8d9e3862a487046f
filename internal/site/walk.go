package site

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/incrediblerust/sitegen/internal/content"
	siteerrors "github.com/incrediblerust/sitegen/internal/errors"
)

// infrastructureDirs hold build inputs consumed elsewhere (layouts, data
// files, verbatim assets) and are never resolved as content.
var infrastructureDirs = map[string]bool{
	"_layouts":  true,
	"_data":     true,
	"_includes": true,
	"templates": true,
	"assets":    true,
}

func isContentFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown", ".html", ".htm":
		return true
	}
	return false
}

// collectContentFiles walks the content root and resolves every markdown/HTML
// file not excluded by configuration or the hardcoded skip list.
func (b *Builder) collectContentFiles() ([]*content.ContentFile, error) {
	var files []*content.ContentFile

	err := filepath.WalkDir(b.sourceDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return siteerrors.Wrap(err, siteerrors.CategoryIO, "failed to walk content tree").WithPath(path)
		}
		if path == b.sourceDir {
			return nil
		}

		rel, rerr := filepath.Rel(b.sourceDir, path)
		if rerr != nil {
			return siteerrors.Wrap(rerr, siteerrors.CategoryPath, "failed to relativize path").WithPath(path)
		}
		relSlash := filepath.ToSlash(rel)

		if d.IsDir() {
			if filepath.Clean(path) == b.outputDir || infrastructureDirs[d.Name()] || b.excluder.Excluded(relSlash) {
				return filepath.SkipDir
			}
			return nil
		}

		if b.excluder.Excluded(relSlash) || !isContentFile(path) {
			return nil
		}

		cf, err := b.resolver.Resolve(path, b.sourceDir)
		if err != nil {
			return err
		}
		files = append(files, cf)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
