// Package site orchestrates a full build: content resolution, rendering,
// index pages, asset copying and generated auxiliary files.
package site

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/incrediblerust/sitegen/internal/config"
	"github.com/incrediblerust/sitegen/internal/content"
	siteerrors "github.com/incrediblerust/sitegen/internal/errors"
	"github.com/incrediblerust/sitegen/internal/logfields"
	"github.com/incrediblerust/sitegen/internal/metrics"
	"github.com/incrediblerust/sitegen/internal/templates"
)

// Builder runs the sequential build pipeline. Stages run in a fixed order and
// the first failure aborts the build; no partial output is reported as
// success.
type Builder struct {
	sourceDir string
	outputDir string
	cfg       *config.SiteConfig
	resolver  *content.Resolver
	engine    *templates.Engine
	recorder  metrics.Recorder
	excluder  *excluder
	buildID   string
}

// buildState carries mutable state across stages.
type buildState struct {
	files         []*content.ContentFile
	pagesRendered int
	start         time.Time
}

type stage struct {
	name string
	run  func(*buildState) error
}

// NewBuilder constructs a builder for one source/output pair.
func NewBuilder(sourceDir, outputDir string, cfg *config.SiteConfig) (*Builder, error) {
	absSource, err := filepath.Abs(sourceDir)
	if err != nil {
		return nil, siteerrors.Wrap(err, siteerrors.CategoryPath, "invalid source directory").WithPath(sourceDir)
	}
	absOutput, err := filepath.Abs(outputDir)
	if err != nil {
		return nil, siteerrors.Wrap(err, siteerrors.CategoryPath, "invalid output directory").WithPath(outputDir)
	}

	engine, err := templates.NewEngine(absSource, cfg)
	if err != nil {
		return nil, err
	}
	excluder, err := newExcluder(cfg.Exclude)
	if err != nil {
		return nil, err
	}

	return &Builder{
		sourceDir: absSource,
		outputDir: absOutput,
		cfg:       cfg,
		resolver:  content.NewResolver(cfg, nil),
		engine:    engine,
		recorder:  metrics.NoopRecorder{},
		excluder:  excluder,
		buildID:   uuid.NewString(),
	}, nil
}

// SetRecorder injects a metrics recorder (optional). Returns the builder for chaining.
func (b *Builder) SetRecorder(r metrics.Recorder) *Builder {
	if r == nil {
		b.recorder = metrics.NoopRecorder{}
		return b
	}
	b.recorder = r
	return b
}

// Build runs all stages in order. The returned error carries the failing
// stage and, where applicable, the offending path.
func (b *Builder) Build() error {
	st := &buildState{start: time.Now()}
	stages := []stage{
		{"clean", b.stageClean},
		{"resolve", b.stageResolve},
		{"render", b.stageRender},
		{"index", b.stageIndex},
		{"copy_assets", b.stageCopyAssets},
		{"special_files", b.stageSpecialFiles},
	}

	slog.Info("Starting site build",
		logfields.BuildID(b.buildID),
		slog.String("source", b.sourceDir),
		slog.String("output", b.outputDir))

	for _, s := range stages {
		stageStart := time.Now()
		err := s.run(st)
		d := time.Since(stageStart)
		b.recorder.ObserveStageDuration(s.name, d)
		if err != nil {
			b.recorder.IncStageResult(s.name, metrics.ResultFatal)
			b.recorder.IncBuildOutcome("failed")
			b.recorder.ObserveBuildDuration(time.Since(st.start))
			return fmt.Errorf("stage %s: %w", s.name, err)
		}
		b.recorder.IncStageResult(s.name, metrics.ResultSuccess)
		slog.Debug("Stage complete",
			logfields.BuildID(b.buildID),
			logfields.Stage(s.name),
			logfields.DurationMS(float64(d.Milliseconds())))
	}

	b.recorder.ObserveBuildDuration(time.Since(st.start))
	b.recorder.IncBuildOutcome("success")
	b.recorder.AddPagesRendered(st.pagesRendered)
	slog.Info("Site build complete",
		logfields.BuildID(b.buildID),
		logfields.Count(st.pagesRendered),
		logfields.DurationMS(float64(time.Since(st.start).Milliseconds())))
	return nil
}

// stageClean clears prior output so no stale files survive a rebuild.
func (b *Builder) stageClean(*buildState) error {
	if err := os.RemoveAll(b.outputDir); err != nil {
		return siteerrors.Wrap(err, siteerrors.CategoryIO, "failed to clean output directory").WithPath(b.outputDir)
	}
	if err := os.MkdirAll(b.outputDir, 0o755); err != nil {
		return siteerrors.Wrap(err, siteerrors.CategoryIO, "failed to create output directory").WithPath(b.outputDir)
	}
	return nil
}

func (b *Builder) stageResolve(st *buildState) error {
	files, err := b.collectContentFiles()
	if err != nil {
		return err
	}
	st.files = files
	slog.Info("Resolved content files", logfields.BuildID(b.buildID), logfields.Count(len(files)))
	return nil
}

func (b *Builder) stageRender(st *buildState) error {
	for _, cf := range st.files {
		if err := b.renderFile(cf); err != nil {
			return err
		}
		st.pagesRendered++
	}
	slog.Info("Rendered content files", logfields.BuildID(b.buildID), logfields.Count(st.pagesRendered))
	return nil
}

// renderFile renders one content file into its clean-URL location.
func (b *Builder) renderFile(cf *content.ContentFile) error {
	html, err := b.engine.RenderContent(cf, b.resolver.LanguageURLs(cf))
	if err != nil {
		return err
	}

	out := filepath.Join(b.outputDir, filepath.FromSlash(b.resolver.FilePath(cf)))
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return siteerrors.Wrap(err, siteerrors.CategoryIO, "failed to create output directory").WithPath(out)
	}
	if err := os.WriteFile(out, []byte(html), 0o644); err != nil {
		return siteerrors.Wrap(err, siteerrors.CategoryIO, "failed to write page").WithPath(out)
	}
	return nil
}

// renderSourceIfExists resolves and renders a specific source file, silently
// skipping when the file is absent.
func (b *Builder) renderSourceIfExists(rel string) error {
	path := filepath.Join(b.sourceDir, filepath.FromSlash(rel))
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	cf, err := b.resolver.Resolve(path, b.sourceDir)
	if err != nil {
		return err
	}
	return b.renderFile(cf)
}

// stageIndex writes the per-language site and collection index pages.
func (b *Builder) stageIndex(*buildState) error {
	for _, lang := range b.cfg.Languages() {
		prefix := ""
		if lang != b.cfg.DefaultLang() {
			prefix = lang + "/"
		}
		if err := b.renderSourceIfExists(prefix + "index.md"); err != nil {
			return err
		}
		for _, name := range collectionNames(b.cfg) {
			if err := b.renderSourceIfExists(prefix + name + "/index.md"); err != nil {
				return err
			}
		}
	}
	return nil
}

// stageCopyAssets copies static assets verbatim and renders the per-language
// about pages.
func (b *Builder) stageCopyAssets(*buildState) error {
	assets := filepath.Join(b.sourceDir, "assets")
	if _, err := os.Stat(assets); err == nil {
		if err := copyDirRecursive(assets, filepath.Join(b.outputDir, "assets")); err != nil {
			return err
		}
	}

	for _, name := range wellKnownRootFiles {
		if err := copyFileIfExists(filepath.Join(b.sourceDir, name), filepath.Join(b.outputDir, name)); err != nil {
			return err
		}
	}

	for _, lang := range b.cfg.Languages() {
		prefix := ""
		if lang != b.cfg.DefaultLang() {
			prefix = lang + "/"
		}
		if err := b.renderSourceIfExists(prefix + "about.md"); err != nil {
			return err
		}
	}
	return nil
}

// wellKnownRootFiles are copied verbatim from the source root when present.
var wellKnownRootFiles = []string{
	"manifest.json",
	"sw.js",
	"robots.txt",
	"sitemap.xml",
	"offline.html",
	".nojekyll",
}

func (b *Builder) stageSpecialFiles(st *buildState) error {
	now := time.Now().UTC()

	marker := fmt.Sprintf("# Generated by sitegen\n# Build time: %s\n", now.Format("2006-01-02 15:04:05 UTC"))
	markerPath := filepath.Join(b.outputDir, ".nojekyll")
	if err := os.WriteFile(markerPath, []byte(marker), 0o644); err != nil {
		return siteerrors.Wrap(err, siteerrors.CategoryIO, "failed to write cache marker").WithPath(markerPath)
	}

	feed, err := b.buildFeed(st.files, now)
	if err != nil {
		return err
	}
	feedPath := filepath.Join(b.outputDir, "feed.xml")
	if err := os.WriteFile(feedPath, feed, 0o644); err != nil {
		return siteerrors.Wrap(err, siteerrors.CategoryIO, "failed to write feed").WithPath(feedPath)
	}
	return nil
}

func collectionNames(cfg *config.SiteConfig) []string {
	names := make([]string, 0, len(cfg.Collections))
	for name := range cfg.Collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
