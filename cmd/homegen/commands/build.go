package commands

import (
	"context"
	"fmt"

	"git.home.luguber.info/inful/homegen/internal/config"
	"git.home.luguber.info/inful/homegen/internal/homepage"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Output      string `short:"o" help:"Output directory for the generated page (overrides config)"`
	StripHeader bool   `name:"strip-header" help:"Remove the top-level heading instead of wrapping it"`
}

func (b *BuildCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if b.Output != "" {
		cfg.Output.Directory = b.Output
	}
	if b.StripHeader {
		cfg.Home.StripHeader = true
	}

	meta, err := loadMetadata(cfg)
	if err != nil {
		return fmt.Errorf("load metadata: %w", err)
	}

	builder := homepage.NewBuilder(cfg, meta)
	return builder.Build(context.Background())
}
