package commands

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"git.home.luguber.info/inful/homegen/internal/config"
	"git.home.luguber.info/inful/homegen/internal/homepage"
	"git.home.luguber.info/inful/homegen/internal/preview"
)

// PreviewCmd serves the generated page locally and rebuilds on changes.
type PreviewCmd struct {
	Port   int    `name:"port" default:"1316" help:"Preview server port"`
	Output string `short:"o" help:"Output directory for the generated page (overrides config)"`
}

func (p *PreviewCmd) Run(_ *Global, root *CLI) error {
	sigctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if p.Output != "" {
		cfg.Output.Directory = p.Output
	}

	// Metadata is reloaded per rebuild so edits to the metadata document show
	// up without restarting the preview.
	rebuild := func(ctx context.Context) error {
		meta, err := loadMetadata(cfg)
		if err != nil {
			return fmt.Errorf("load metadata: %w", err)
		}
		return homepage.NewBuilder(cfg, meta).Build(ctx)
	}

	return preview.Run(sigctx, preview.Options{
		Addr:       fmt.Sprintf("127.0.0.1:%d", p.Port),
		PackageDir: cfg.PackageDir,
		OutputDir:  cfg.Output.Directory,
		Rebuild:    rebuild,
	})
}
