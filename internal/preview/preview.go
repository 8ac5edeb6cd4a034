// Package preview serves the generated page locally and rebuilds it when the
// package sources change.
package preview

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounceWindow = 300 * time.Millisecond

// Options configures a preview session.
type Options struct {
	Addr       string
	PackageDir string
	OutputDir  string
	// Rebuild runs one home-page build. It is invoked once up front and then
	// after every debounced change burst.
	Rebuild func(context.Context) error
}

// Run builds once, then serves OutputDir and watches PackageDir until the
// context is canceled. A failing rebuild keeps the last good page on disk;
// the failure is logged and counted, not fatal.
func Run(ctx context.Context, opts Options) error {
	absPkg, err := filepath.Abs(opts.PackageDir)
	if err != nil {
		return fmt.Errorf("resolve package dir: %w", err)
	}
	if st, statErr := os.Stat(absPkg); statErr != nil || !st.IsDir() {
		return fmt.Errorf("package dir not found or not a directory: %s", absPkg)
	}

	runRebuild(ctx, opts.Rebuild)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("fsnotify: %w", err)
	}
	defer func() { _ = watcher.Close() }()
	if err := watcher.Add(absPkg); err != nil {
		return fmt.Errorf("watch %s: %w", absPkg, err)
	}

	rebuildReq, trigger := newDebouncer()

	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir(opts.OutputDir)))
	mux.Handle("/metrics", metricsHandler())
	server := &http.Server{Addr: opts.Addr, Handler: mux}

	serveErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()
	slog.Info("Preview server listening", "addr", opts.Addr, "package", absPkg)

	for {
		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = server.Shutdown(shutdownCtx)
			return nil
		case err := <-serveErr:
			return fmt.Errorf("preview server: %w", err)
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if shouldIgnoreEvent(ev.Name) {
				continue
			}
			slog.Debug("Source change detected", "path", ev.Name, "op", ev.Op.String())
			trigger()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("Watcher error", "error", err)
		case <-rebuildReq:
			runRebuild(ctx, opts.Rebuild)
		}
	}
}

func runRebuild(ctx context.Context, rebuild func(context.Context) error) {
	rebuildsTotal.Inc()
	if err := rebuild(ctx); err != nil {
		rebuildFailuresTotal.Inc()
		slog.Warn("Rebuild failed; keeping last good page", "error", err)
		return
	}
	slog.Info("Home page rebuilt")
}

// newDebouncer returns a request channel and a trigger that collapses change
// bursts into a single rebuild request per debounce window.
func newDebouncer() (chan struct{}, func()) {
	var mu sync.Mutex
	var timer *time.Timer
	rebuildReq := make(chan struct{}, 1)

	trigger := func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(debounceWindow, func() {
			select {
			case rebuildReq <- struct{}{}:
			default:
			}
		})
	}
	return rebuildReq, trigger
}

// shouldIgnoreEvent filters editor temp files and hidden paths out of the
// rebuild trigger.
func shouldIgnoreEvent(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") {
		return true
	}
	if strings.HasPrefix(base, "#") && strings.HasSuffix(base, "#") {
		return true
	}
	if strings.HasSuffix(base, ".swp") || strings.HasSuffix(base, "~") {
		return true
	}
	return false
}
