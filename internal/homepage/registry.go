package homepage

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"git.home.luguber.info/inful/homegen/internal/config"
)

// RegistryClient answers one question: is the package listed in the
// registry's source-package index? The check is best-effort by contract;
// network trouble means "not listed" and the download link is omitted.
type RegistryClient struct {
	Name       string
	IndexURL   string
	PackageURL string // format string; %s receives the package name
	HTTPClient *http.Client
}

// NewRegistryClient builds a client from configuration.
func NewRegistryClient(cfg config.RegistryConfig) *RegistryClient {
	return &RegistryClient{
		Name:       cfg.Name,
		IndexURL:   cfg.PackageIndex,
		PackageURL: cfg.PackageURL,
		HTTPClient: &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
	}
}

// Lists reports whether the registry's package index contains a stanza for
// the named package. Any failure (network, status, read) degrades to false.
func (c *RegistryClient) Lists(ctx context.Context, name string) bool {
	if c == nil || c.IndexURL == "" || name == "" {
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.IndexURL, nil)
	if err != nil {
		slog.Debug("Registry check skipped", "error", err)
		return false
	}
	req.Header.Set("User-Agent", "homegen/1.0")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		slog.Debug("Registry unreachable, omitting download link", "index", c.IndexURL, "error", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Debug("Registry index returned non-OK status", "index", c.IndexURL, "status", resp.StatusCode)
		return false
	}

	// The index is a sequence of DCF stanzas; a package is listed when a
	// "Package: <name>" field line is present.
	want := "Package: " + name
	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		if scanner.Text() == want {
			return true
		}
	}
	if err := scanner.Err(); err != nil {
		slog.Debug("Registry index read failed", "index", c.IndexURL, "error", err)
	}
	return false
}

// DownloadURL returns the registry page for the named package.
func (c *RegistryClient) DownloadURL(name string) string {
	return fmt.Sprintf(c.PackageURL, name)
}
