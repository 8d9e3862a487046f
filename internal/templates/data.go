package templates

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	siteerrors "github.com/incrediblerust/sitegen/internal/errors"
)

// LoadDataFiles reads every YAML and JSON document in dir into a bundle keyed
// by file stem. A missing directory yields an empty bundle.
func LoadDataFiles(dir string) (map[string]any, error) {
	data := map[string]any{}

	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return data, nil
	}
	if err != nil {
		return nil, siteerrors.Wrap(err, siteerrors.CategoryIO, "failed to read data directory").WithPath(dir)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		path := filepath.Join(dir, name)
		key := strings.TrimSuffix(name, filepath.Ext(name))

		switch ext {
		case ".yml", ".yaml":
			raw, err := os.ReadFile(path)
			if err != nil {
				return nil, siteerrors.Wrap(err, siteerrors.CategoryIO, "failed to read data file").WithPath(path)
			}
			var doc any
			if err := yaml.Unmarshal(raw, &doc); err != nil {
				return nil, siteerrors.Wrap(err, siteerrors.CategoryParse, "malformed data file").WithPath(path)
			}
			data[key] = doc
		case ".json":
			raw, err := os.ReadFile(path)
			if err != nil {
				return nil, siteerrors.Wrap(err, siteerrors.CategoryIO, "failed to read data file").WithPath(path)
			}
			var doc any
			if err := json.Unmarshal(raw, &doc); err != nil {
				return nil, siteerrors.Wrap(err, siteerrors.CategoryParse, "malformed data file").WithPath(path)
			}
			data[key] = doc
		}
	}
	return data, nil
}
