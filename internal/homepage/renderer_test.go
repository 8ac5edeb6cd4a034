package homepage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/homegen/internal/config"
	"git.home.luguber.info/inful/homegen/internal/metadata"
)

type engineCall struct {
	src  string
	opts RenderOptions
}

// fakeEngine records invocations and writes canned output, standing in for
// the external rendering engine.
type fakeEngine struct {
	calls  []engineCall
	output string
	err    error
}

func (f *fakeEngine) Render(_ context.Context, src string, opts RenderOptions) error {
	f.calls = append(f.calls, engineCall{src: src, opts: opts})
	if f.err != nil {
		return f.err
	}
	return os.WriteFile(opts.Output, []byte(f.output), 0o644)
}

func testBuilder(t *testing.T, pkgDir string, engine Engine) *Builder {
	t.Helper()
	return &Builder{
		Config: &config.Config{
			PackageDir: pkgDir,
			Output:     config.OutputConfig{Directory: t.TempDir()},
		},
		Meta:   &metadata.Metadata{Title: "testpkg", Description: "Tools <for> testing."},
		Engine: engine,
	}
}

func TestRenderBodyDescriptionFallback(t *testing.T) {
	b := testBuilder(t, t.TempDir(), &fakeEngine{})

	body, err := b.renderBody(context.Background(), Source{Kind: SourceNone})
	require.NoError(t, err)
	require.Contains(t, body, "Tools &lt;for&gt; testing.")
}

func TestRenderBodyMarkdown(t *testing.T) {
	pkgDir := t.TempDir()
	path := filepath.Join(pkgDir, "README.md")
	require.NoError(t, os.WriteFile(path, []byte("# testpkg\n\nWorks.\n"), 0o644))
	b := testBuilder(t, pkgDir, &fakeEngine{})

	body, err := b.renderBody(context.Background(), Source{Kind: SourceMarkdown, Path: path})
	require.NoError(t, err)
	require.Contains(t, body, "<h1>testpkg</h1>")
	require.Contains(t, body, "<p>Works.</p>")
}

func TestRenderRichStagesAndCleansUp(t *testing.T) {
	pkgDir := t.TempDir()
	src := filepath.Join(pkgDir, "index.Rmd")
	require.NoError(t, os.WriteFile(src, []byte("---\ntitle: x\n---\nbody\n"), 0o644))

	engine := &fakeEngine{output: "<p>rendered by engine</p>"}
	b := testBuilder(t, pkgDir, engine)

	body, err := b.renderBody(context.Background(), Source{Kind: SourceRichMarkdown, Path: src})
	require.NoError(t, err)
	require.Equal(t, "<p>rendered by engine</p>", body)

	require.Len(t, engine.calls, 1)
	call := engine.calls[0]
	require.Equal(t, "html", call.opts.Format)
	require.True(t, call.opts.StripHeader)
	// The engine saw the staged copy inside the output directory, not the
	// original source.
	require.True(t, strings.HasPrefix(call.src, b.Config.Output.Directory))
	require.NotEqual(t, src, call.src)

	// Both the staged copy and the intermediate output are gone.
	entries, err := os.ReadDir(b.Config.Output.Directory)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestRenderRichCleansUpOnEngineFailure(t *testing.T) {
	pkgDir := t.TempDir()
	src := filepath.Join(pkgDir, "index.Rmd")
	require.NoError(t, os.WriteFile(src, []byte("body\n"), 0o644))

	engine := &fakeEngine{err: errors.New("engine exploded")}
	b := testBuilder(t, pkgDir, engine)

	_, err := b.renderBody(context.Background(), Source{Kind: SourceRichMarkdown, Path: src})
	require.Error(t, err)

	entries, readErr := os.ReadDir(b.Config.Output.Directory)
	require.NoError(t, readErr)
	require.Empty(t, entries, "staged files must be removed on the failure path")
}

func TestReadmeSiblingRegeneratedWhenStale(t *testing.T) {
	pkgDir := t.TempDir()
	rmd := filepath.Join(pkgDir, "README.Rmd")
	sibling := filepath.Join(pkgDir, "README.md")
	require.NoError(t, os.WriteFile(rmd, []byte("rich\n"), 0o644))
	require.NoError(t, os.WriteFile(sibling, []byte("stale\n"), 0o644))

	old := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(sibling, old, old))

	engine := &fakeEngine{output: "<p>page</p>"}
	b := testBuilder(t, pkgDir, engine)

	_, err := b.renderBody(context.Background(), Source{Kind: SourceRichMarkdown, Path: rmd})
	require.NoError(t, err)

	require.Len(t, engine.calls, 2)
	require.Equal(t, "gfm", engine.calls[0].opts.Format)
	require.Equal(t, sibling, engine.calls[0].opts.Output)
	require.Equal(t, "html", engine.calls[1].opts.Format)
}

func TestReadmeSiblingFreshSkipsRegeneration(t *testing.T) {
	pkgDir := t.TempDir()
	rmd := filepath.Join(pkgDir, "README.Rmd")
	sibling := filepath.Join(pkgDir, "README.md")
	require.NoError(t, os.WriteFile(rmd, []byte("rich\n"), 0o644))

	old := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(rmd, old, old))
	require.NoError(t, os.WriteFile(sibling, []byte("fresh\n"), 0o644))

	engine := &fakeEngine{output: "<p>page</p>"}
	b := testBuilder(t, pkgDir, engine)

	_, err := b.renderBody(context.Background(), Source{Kind: SourceRichMarkdown, Path: rmd})
	require.NoError(t, err)
	require.Len(t, engine.calls, 1, "fresh sibling must not be regenerated")
}

func TestIndexRichSkipsSiblingRefresh(t *testing.T) {
	pkgDir := t.TempDir()
	rmd := filepath.Join(pkgDir, "index.Rmd")
	require.NoError(t, os.WriteFile(rmd, []byte("rich\n"), 0o644))

	engine := &fakeEngine{output: "<p>page</p>"}
	b := testBuilder(t, pkgDir, engine)

	_, err := b.renderBody(context.Background(), Source{Kind: SourceRichMarkdown, Path: rmd})
	require.NoError(t, err)
	require.Len(t, engine.calls, 1)
	require.Equal(t, "html", engine.calls[0].opts.Format)
	require.NoFileExists(t, filepath.Join(pkgDir, "index.md"))
}
