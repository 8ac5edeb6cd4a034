// Package gitinfo derives repository facts from the package's local git
// checkout. It is a fallback source: metadata URLs take priority, the origin
// remote is consulted only when metadata names no source repository.
package gitinfo

import (
	"log/slog"
	"strings"

	git "github.com/go-git/go-git/v5"
)

// OriginURL returns the first URL of the origin remote of the repository at
// or above pkgDir. Absence of a repository or of an origin remote is not an
// error; the empty string is returned.
func OriginURL(pkgDir string) string {
	repo, err := git.PlainOpenWithOptions(pkgDir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		slog.Debug("No git repository for package", "dir", pkgDir, "error", err)
		return ""
	}

	remote, err := repo.Remote("origin")
	if err != nil {
		slog.Debug("No origin remote for package", "dir", pkgDir)
		return ""
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return ""
	}
	return normalizeRemoteURL(urls[0])
}

// normalizeRemoteURL rewrites common ssh remote forms to https so the result
// is linkable from a web page. Unknown forms pass through unchanged.
func normalizeRemoteURL(raw string) string {
	url := strings.TrimSuffix(raw, ".git")
	if rest, ok := strings.CutPrefix(url, "git@"); ok {
		// git@host:owner/repo -> https://host/owner/repo
		if host, path, ok := strings.Cut(rest, ":"); ok {
			return "https://" + host + "/" + path
		}
	}
	if rest, ok := strings.CutPrefix(url, "ssh://git@"); ok {
		return "https://" + rest
	}
	return url
}
