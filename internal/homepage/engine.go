package homepage

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"

	fe "git.home.luguber.info/inful/homegen/internal/foundation/errors"
)

// RenderOptions controls a single engine invocation.
type RenderOptions struct {
	// Output is the path the engine writes its result to.
	Output string
	// Format is the target format: "html" for the page body fragment,
	// "gfm" when regenerating the lightweight sibling of a rich source.
	Format string
	// StripHeader asks the engine to drop the top-level heading from the
	// body; the heading is handled by the sidebar/post-processing step.
	StripHeader bool
}

// Engine abstracts the external rich-markup rendering engine so stage
// orchestration does not depend on a concrete binary. Tests substitute a
// fake; production uses BinaryEngine.
//
// A render failure is fatal for the page build: no retry, no fallback.
type Engine interface {
	Render(ctx context.Context, src string, opts RenderOptions) error
}

// BinaryEngine invokes the configured rendering engine binary on PATH.
type BinaryEngine struct {
	Command string
}

func (e *BinaryEngine) Render(ctx context.Context, src string, opts RenderOptions) error {
	if _, err := exec.LookPath(e.Command); err != nil {
		return fe.Wrap(err, fe.CategoryRender, "rendering engine not found").WithContext("command", e.Command)
	}

	args := []string{"render", src, "--to", opts.Format, "--output", opts.Output, "--metadata", "toc:false"}
	if opts.StripHeader {
		args = append(args, "--metadata", "strip-header:true")
	}

	cmd := exec.CommandContext(ctx, e.Command, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	slog.Debug("Invoking rendering engine", "command", e.Command, "source", src, "format", opts.Format)

	err := cmd.Run()

	if s := stdout.String(); s != "" {
		slog.Debug("engine stdout", "output", s)
	}
	if s := stderr.String(); s != "" {
		slog.Debug("engine stderr", "output", s)
	}

	if err != nil {
		output := stderr.String()
		if output == "" {
			output = stdout.String()
		}
		return fe.Wrap(fmt.Errorf("%w: %s", err, output), fe.CategoryRender, "engine execution failed").
			WithContext("source", src)
	}
	return nil
}
