package homepage

import (
	"context"
	"html"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"git.home.luguber.info/inful/homegen/internal/metadata"
)

var titleCaser = cases.Title(language.English)

// listWithHeading renders a titled unordered list, or the empty string when
// there are no items. Omitting an empty block never leaves a dangling
// heading.
func listWithHeading(title string, items []string) string {
	if len(items) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("<h2>")
	b.WriteString(html.EscapeString(title))
	b.WriteString("</h2>\n<ul class=\"list-unstyled\">\n")
	for _, item := range items {
		b.WriteString("<li>")
		b.WriteString(item)
		b.WriteString("</li>\n")
	}
	b.WriteString("</ul>\n")
	return b.String()
}

// buildSidebar assembles the sidebar fragment: links, license and developers
// blocks in that order. A verbatim user override bypasses everything.
func (b *Builder) buildSidebar(ctx context.Context, repoURL string) string {
	if b.Config.Home.Sidebar != "" {
		return b.Config.Home.Sidebar
	}

	var out strings.Builder
	out.WriteString(listWithHeading("Links", b.collectLinks(ctx, repoURL)))
	out.WriteString(licenseBlock(b.Meta.License))
	out.WriteString(developersBlock(b.Meta))
	return out.String()
}

// licenseBlock renders the license as a heading plus paragraph. An empty
// license string contributes nothing.
func licenseBlock(license string) string {
	if license == "" {
		return ""
	}
	return "<h2>License</h2>\n<p>" + autolinkLicense(license) + "</p>\n"
}

// licenseURLs maps well-known license names to their canonical text. The
// autolinker is token-based: components of a compound license string (for
// example "MIT + file LICENSE") are linked individually.
var licenseURLs = map[string]string{
	"MIT":          "https://opensource.org/license/mit",
	"GPL-2":        "https://www.gnu.org/licenses/old-licenses/gpl-2.0.html",
	"GPL-3":        "https://www.gnu.org/licenses/gpl-3.0.html",
	"LGPL-2.1":     "https://www.gnu.org/licenses/old-licenses/lgpl-2.1.html",
	"LGPL-3":       "https://www.gnu.org/licenses/lgpl-3.0.html",
	"AGPL-3":       "https://www.gnu.org/licenses/agpl-3.0.html",
	"Apache-2.0":   "https://www.apache.org/licenses/LICENSE-2.0",
	"BSD-2-Clause": "https://opensource.org/license/bsd-2-clause",
	"BSD-3-Clause": "https://opensource.org/license/bsd-3-clause",
	"MPL-2.0":      "https://www.mozilla.org/MPL/2.0/",
	"CC0":          "https://creativecommons.org/publicdomain/zero/1.0/",
}

// autolinkLicense links known license names and the "file LICENSE" component
// to their targets; unrecognized components pass through as escaped text.
func autolinkLicense(license string) string {
	parts := strings.Split(license, "+")
	for i, part := range parts {
		name := strings.TrimSpace(part)
		switch {
		case licenseURLs[name] != "":
			parts[i] = "<a href='" + licenseURLs[name] + "'>" + html.EscapeString(name) + "</a>"
		case name == "file LICENSE" || name == "file LICENCE":
			parts[i] = "file <a href='LICENSE'>LICENSE</a>"
		default:
			parts[i] = html.EscapeString(name)
		}
	}
	return strings.Join(parts, " + ")
}

// developersBlock lists maintainers, authors and funders, de-duplicated with
// the highest-precedence role kept. Funders are annotated; maintainers and
// authors are listed by name alone.
func developersBlock(meta *metadata.Metadata) string {
	devs := metadata.DevelopersForSidebar(meta)
	items := make([]string, 0, len(devs))
	for _, d := range devs {
		item := html.EscapeString(d.Name)
		if d.Role == metadata.RoleFunder {
			item += " <small class=\"roles\">" + titleCaser.String(string(d.Role)) + "</small>"
		}
		items = append(items, item)
	}
	return listWithHeading("Developers", items)
}
