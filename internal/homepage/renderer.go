package homepage

import (
	"context"
	"fmt"
	"html"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/homegen/internal/markdown"
)

// renderBody produces the page body HTML fragment for the resolved source.
//
//   - SourceNone: the HTML-escaped package description.
//   - SourceMarkdown: rendered in-process, no intermediate artifact.
//   - SourceRichMarkdown: rendered by the external engine; a README source
//     additionally refreshes its lightweight sibling as a side effect so other
//     tooling can consume an up-to-date README.md.
func (b *Builder) renderBody(ctx context.Context, src Source) (string, error) {
	switch src.Kind {
	case SourceNone:
		return "<p>" + html.EscapeString(b.Meta.Description) + "</p>\n", nil
	case SourceMarkdown:
		return markdown.RenderFile(src.Path)
	case SourceRichMarkdown:
		if src.Stem() == "README" {
			if err := b.refreshReadmeSibling(ctx, src); err != nil {
				return "", err
			}
		}
		return b.renderRich(ctx, src)
	default:
		return "", fmt.Errorf("unknown source kind %d", src.Kind)
	}
}

// refreshReadmeSibling regenerates README.md next to README.Rmd when the
// markdown copy is missing or older than its source. Only README gets this
// side effect; index.Rmd is rendered for the site alone.
func (b *Builder) refreshReadmeSibling(ctx context.Context, src Source) error {
	sibling := filepath.Join(filepath.Dir(src.Path), "README.md")

	srcInfo, err := os.Stat(src.Path)
	if err != nil {
		return fmt.Errorf("stat rich markup source: %w", err)
	}
	if sibInfo, err := os.Stat(sibling); err == nil && !sibInfo.ModTime().Before(srcInfo.ModTime()) {
		return nil
	}

	slog.Info("Regenerating stale README.md from rich markup source", "source", src.Path)
	return b.Engine.Render(ctx, src.Path, RenderOptions{Output: sibling, Format: "gfm"})
}

// renderRich renders the rich-markup home page itself. The source is copied
// into a staging file inside the output directory, rendered with the table of
// contents disabled and the top-level heading stripped, and the staged files
// are removed on every exit path.
func (b *Builder) renderRich(ctx context.Context, src Source) (_ string, err error) {
	stem := fmt.Sprintf("%s-%s", src.Stem(), uuid.NewString())
	staged := filepath.Join(b.Config.Output.Directory, stem+filepath.Ext(src.Path))
	rendered := filepath.Join(b.Config.Output.Directory, stem+".html")

	if err := copyFile(src.Path, staged); err != nil {
		return "", fmt.Errorf("stage rich markup source: %w", err)
	}
	defer func() {
		for _, p := range []string{staged, rendered} {
			if rmErr := os.Remove(p); rmErr != nil && !os.IsNotExist(rmErr) {
				slog.Warn("Failed to remove staged render file", "path", p, "error", rmErr)
			}
		}
	}()

	if err := b.Engine.Render(ctx, staged, RenderOptions{Output: rendered, Format: "html", StripHeader: true}); err != nil {
		return "", err
	}

	body, err := os.ReadFile(rendered)
	if err != nil {
		return "", fmt.Errorf("read engine output: %w", err)
	}
	return string(body), nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
