package homepage

import (
	"context"
	"html"
	"regexp"
	"strings"

	"git.home.luguber.info/inful/homegen/internal/metadata"
)

// slashRun matches every run of one or more slashes in a URL.
var slashRun = regexp.MustCompile(`/+`)

// displayURL inserts a zero-width space after every slash run so long URLs
// can soft-wrap in the narrow sidebar. Purely cosmetic; the href target is
// never altered.
func displayURL(href string) string {
	return slashRun.ReplaceAllString(href, "${0}​")
}

// linkURL renders one sidebar link line.
func linkURL(text, href string) string {
	return html.EscapeString(text) + " at <br/><a href='" + html.EscapeString(href) + "'>" +
		html.EscapeString(displayURL(href)) + "</a>"
}

// collectLinks assembles the sidebar links in fixed order: registry download,
// source repository, bug reports, then user-declared extras. Missing inputs
// contribute nothing.
func (b *Builder) collectLinks(ctx context.Context, repoURL string) []string {
	var items []string

	if b.Registry != nil && b.Registry.Lists(ctx, b.Meta.Title) {
		items = append(items, linkURL("Download from "+b.Registry.Name, b.Registry.DownloadURL(b.Meta.Title)))
	}
	if repoURL != "" {
		items = append(items, linkURL("Browse source code", repoURL))
	}
	if b.Meta.BugReports != "" {
		items = append(items, linkURL("Report a bug", b.Meta.BugReports))
	}
	for _, l := range b.Config.Home.Links {
		items = append(items, linkURL(l.Text, l.Href))
	}
	return items
}

// repositoryURL picks the source-repository link: the first metadata URL
// containing "github" wins; otherwise the caller-provided fallback (the
// package's git origin remote) is used.
func repositoryURL(meta *metadata.Metadata, fallback string) string {
	for _, u := range meta.URLs {
		if strings.Contains(strings.ToLower(u), "github") {
			return u
		}
	}
	return fallback
}
