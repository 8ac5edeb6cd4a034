package commands

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/homegen/internal/config"
	"git.home.luguber.info/inful/homegen/internal/metadata"
)

// Global context passed to subcommands if we need to share global state later.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"homegen.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Build   BuildCmd   `cmd:"" help:"Build the home page once"`
	Preview PreviewCmd `cmd:"" help:"Serve the generated page and rebuild on source changes"`
	Init    InitCmd    `cmd:"" help:"Initialize a new configuration file"`
}

// AfterApply runs after flag parsing; setup logging once.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// metadataPath resolves the metadata document location relative to the
// package root unless configured absolute.
func metadataPath(cfg *config.Config) string {
	if filepath.IsAbs(cfg.Metadata) {
		return cfg.Metadata
	}
	return filepath.Join(cfg.PackageDir, cfg.Metadata)
}

// loadMetadata reads the package metadata document. A missing document is
// tolerated with a warning: the build proceeds with empty metadata and the
// corresponding sidebar blocks come out empty.
func loadMetadata(cfg *config.Config) (*metadata.Metadata, error) {
	path := metadataPath(cfg)
	meta, err := metadata.Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			slog.Warn("No metadata document found, building with empty metadata", "path", path)
			return &metadata.Metadata{}, nil
		}
		return nil, err
	}
	return meta, nil
}
