package homepage

import (
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/homegen/internal/config"
	"git.home.luguber.info/inful/homegen/internal/gitinfo"
	"git.home.luguber.info/inful/homegen/internal/metadata"
)

// Builder runs the home-page pipeline. All collaborators are injected so the
// pipeline is callable concurrently and testable without real external
// tooling; there is no ambient process state.
type Builder struct {
	Config   *config.Config
	Meta     *metadata.Metadata
	Engine   Engine
	Registry *RegistryClient
}

// NewBuilder wires a production builder from configuration and metadata.
func NewBuilder(cfg *config.Config, meta *metadata.Metadata) *Builder {
	var registry *RegistryClient
	if !cfg.Registry.Disabled {
		registry = NewRegistryClient(cfg.Registry)
	}
	return &Builder{
		Config:   cfg,
		Meta:     meta,
		Engine:   &BinaryEngine{Command: cfg.Engine.Command},
		Registry: registry,
	}
}

// Build runs the pipeline once, strictly sequentially: resolve the source,
// render the body, assemble the sidebar, write the templated page,
// post-process the HTML tree, serialize, and copy the LICENSE file.
func (b *Builder) Build(ctx context.Context) error {
	if err := os.MkdirAll(b.Config.Output.Directory, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	src := ResolveSource(b.Config.PackageDir)
	slog.Info("Building home page", "package", b.Meta.Title, "source", src.Path, "output", b.Config.Output.Directory)

	body, err := b.renderBody(ctx, src)
	if err != nil {
		return fmt.Errorf("render home page body: %w", err)
	}

	repoURL := repositoryURL(b.Meta, gitinfo.OriginURL(b.Config.PackageDir))
	sidebar := b.buildSidebar(ctx, repoURL)

	outPath := filepath.Join(b.Config.Output.Directory, "index.html")
	page, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create index.html: %w", err)
	}
	if err := renderPage(page, PageData{
		PageTitle: b.Meta.Title,
		Sidebar:   template.HTML(sidebar),
		Body:      template.HTML(body),
	}); err != nil {
		_ = page.Close()
		return err
	}
	if err := page.Close(); err != nil {
		return fmt.Errorf("close index.html: %w", err)
	}

	doc, err := parsePageFile(outPath)
	if err != nil {
		return err
	}
	if err := PostProcess(doc, PostProcessOptions{StripHeader: b.Config.Home.StripHeader}); err != nil {
		return err
	}
	if err := writePageFile(doc, outPath); err != nil {
		return err
	}

	if err := b.copyLicense(); err != nil {
		return err
	}

	slog.Info("Home page written", "path", outPath)
	return nil
}

// copyLicense copies the package's LICENSE file into the output directory.
// A missing LICENSE is not an error; the step is skipped.
func (b *Builder) copyLicense() error {
	src := filepath.Join(b.Config.PackageDir, "LICENSE")
	if _, err := os.Stat(src); os.IsNotExist(err) {
		return nil
	}
	if err := copyFile(src, filepath.Join(b.Config.Output.Directory, "LICENSE")); err != nil {
		return fmt.Errorf("copy LICENSE: %w", err)
	}
	return nil
}
