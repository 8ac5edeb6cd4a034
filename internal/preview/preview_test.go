package preview

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestShouldIgnoreEvent(t *testing.T) {
	require.True(t, shouldIgnoreEvent("/pkg/.hidden.md"))
	require.True(t, shouldIgnoreEvent("/pkg/#README.md#"))
	require.True(t, shouldIgnoreEvent("/pkg/README.md.swp"))
	require.True(t, shouldIgnoreEvent("/pkg/README.md~"))
	require.True(t, shouldIgnoreEvent("/pkg/.DS_Store"))
	require.False(t, shouldIgnoreEvent("/pkg/README.md"))
	require.False(t, shouldIgnoreEvent("/pkg/index.Rmd"))
}

func TestDebouncerCollapsesBursts(t *testing.T) {
	rebuildReq, trigger := newDebouncer()

	for range 10 {
		trigger()
		time.Sleep(5 * time.Millisecond)
	}

	select {
	case <-rebuildReq:
	case <-time.After(2 * time.Second):
		t.Fatal("expected a rebuild request after the burst settles")
	}

	// The burst collapses into one request.
	select {
	case <-rebuildReq:
		t.Fatal("expected exactly one rebuild request")
	case <-time.After(2 * debounceWindow):
	}
}

func TestRunRequiresPackageDir(t *testing.T) {
	err := Run(context.Background(), Options{
		Addr:       "127.0.0.1:0",
		PackageDir: t.TempDir() + "/does-not-exist",
		OutputDir:  t.TempDir(),
		Rebuild:    func(context.Context) error { return nil },
	})
	require.Error(t, err)
}

func TestRunStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	rebuilds := make(chan struct{}, 8)
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, Options{
			Addr:       "127.0.0.1:0",
			PackageDir: t.TempDir(),
			OutputDir:  t.TempDir(),
			Rebuild: func(context.Context) error {
				rebuilds <- struct{}{}
				return nil
			},
		})
	}()

	// The initial build runs before serving starts.
	select {
	case <-rebuilds:
	case <-time.After(2 * time.Second):
		t.Fatal("expected initial rebuild")
	}

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("preview did not stop on cancel")
	}
}
