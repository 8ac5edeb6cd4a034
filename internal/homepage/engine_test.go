package homepage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	fe "git.home.luguber.info/inful/homegen/internal/foundation/errors"
)

func TestBinaryEngineMissingCommand(t *testing.T) {
	e := &BinaryEngine{Command: "homegen-no-such-engine"}
	err := e.Render(context.Background(), "index.Rmd", RenderOptions{Output: filepath.Join(t.TempDir(), "out.html"), Format: "html"})
	require.Error(t, err)
	require.True(t, fe.IsCategory(err, fe.CategoryRender))
}

func TestBinaryEngineNonZeroExitIsFatal(t *testing.T) {
	// `false` ignores its arguments and exits 1, standing in for a failing
	// engine invocation.
	e := &BinaryEngine{Command: "false"}
	err := e.Render(context.Background(), "index.Rmd", RenderOptions{Output: filepath.Join(t.TempDir(), "out.html"), Format: "html"})
	require.Error(t, err)
	require.True(t, fe.IsCategory(err, fe.CategoryRender))
}

func TestBinaryEngineSuccess(t *testing.T) {
	// `true` ignores its arguments and exits 0.
	e := &BinaryEngine{Command: "true"}
	err := e.Render(context.Background(), "index.Rmd", RenderOptions{Output: filepath.Join(t.TempDir(), "out.html"), Format: "html"})
	require.NoError(t, err)
}
