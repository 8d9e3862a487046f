// Package config loads the site-wide settings document (_config.yml).
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	siteerrors "github.com/incrediblerust/sitegen/internal/errors"
)

// SiteConfig represents the site-wide configuration
type SiteConfig struct {
	Title                   string                      `yaml:"title"`
	Description             string                      `yaml:"description"`
	BaseURL                 string                      `yaml:"baseurl"`
	URL                     string                      `yaml:"url"`
	LanguageCodes           []string                    `yaml:"languages"`
	DefaultLanguage         string                      `yaml:"default_lang"`
	ExcludeFromLocalization []string                    `yaml:"exclude_from_localization"`
	Markdown                string                      `yaml:"markdown"`
	Highlighter             string                      `yaml:"highlighter"`
	Permalink               string                      `yaml:"permalink"`
	Plugins                 []string                    `yaml:"plugins"`
	Collections             map[string]CollectionConfig `yaml:"collections"`
	Defaults                []DefaultRule               `yaml:"defaults"`
	Exclude                 []string                    `yaml:"exclude"`
	Version                 string                      `yaml:"version"`
}

// CollectionConfig describes a named content collection
type CollectionConfig struct {
	Output    bool   `yaml:"output"`
	Permalink string `yaml:"permalink,omitempty"`
}

// DefaultRule assigns default front-matter values to a scoped subset of pages
type DefaultRule struct {
	Scope  DefaultScope   `yaml:"scope"`
	Values map[string]any `yaml:"values"`
}

// DefaultScope selects the pages a DefaultRule applies to. An empty path
// matches every page; an empty type matches pages in any (or no) collection.
type DefaultScope struct {
	Path string `yaml:"path"`
	Type string `yaml:"type"`
}

// Load reads and validates configuration from the specified file.
//
// Environment variables referenced in the document ($VAR) are expanded; a
// .env/.env.local file alongside the working directory is loaded first so
// local overrides are visible during expansion.
func Load(configPath string) (*SiteConfig, error) {
	loadEnvFiles()

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, siteerrors.Wrap(err, siteerrors.CategoryIO, "failed to read config file").WithPath(configPath)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg SiteConfig
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, siteerrors.Wrap(err, siteerrors.CategoryParse, "failed to unmarshal config").WithPath(configPath)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadEnvFiles loads the first available .env file. Existing process
// environment variables are not overwritten.
func loadEnvFiles() {
	for _, envPath := range []string{".env", ".env.local"} {
		if err := godotenv.Load(envPath); err == nil {
			slog.Debug("Loaded environment variables", slog.String("file", envPath))
			return
		}
	}
}

func (c *SiteConfig) validate() error {
	for _, code := range c.LanguageCodes {
		if _, err := language.Parse(code); err != nil {
			return siteerrors.Wrap(err, siteerrors.CategoryConfig,
				fmt.Sprintf("invalid language code %q", code))
		}
	}
	if c.DefaultLanguage != "" {
		if _, err := language.Parse(c.DefaultLanguage); err != nil {
			return siteerrors.Wrap(err, siteerrors.CategoryConfig,
				fmt.Sprintf("invalid default language %q", c.DefaultLanguage))
		}
	}
	return nil
}

// Languages returns the supported language codes, never empty.
func (c *SiteConfig) Languages() []string {
	if len(c.LanguageCodes) == 0 {
		return []string{"en"}
	}
	return c.LanguageCodes
}

// DefaultLang returns the default language code, never empty.
func (c *SiteConfig) DefaultLang() string {
	if c.DefaultLanguage == "" {
		return "en"
	}
	return c.DefaultLanguage
}

// IsCollection reports whether name is a configured collection.
func (c *SiteConfig) IsCollection(name string) bool {
	_, ok := c.Collections[name]
	return ok
}

// Collection returns the configuration for a named collection.
func (c *SiteConfig) Collection(name string) (CollectionConfig, bool) {
	cc, ok := c.Collections[name]
	return cc, ok
}

// DefaultsFor merges the scoped default rules applying to a page at relPath
// belonging to collection (empty for standalone pages). Rules are applied in
// definition order, so later rules override earlier ones.
func (c *SiteConfig) DefaultsFor(relPath, collection string) map[string]any {
	merged := map[string]any{}
	for _, rule := range c.Defaults {
		if rule.Scope.Path != "" && !strings.HasPrefix(relPath, rule.Scope.Path) {
			continue
		}
		if rule.Scope.Type != "" && rule.Scope.Type != collection {
			continue
		}
		for k, v := range rule.Values {
			merged[k] = v
		}
	}
	return merged
}
