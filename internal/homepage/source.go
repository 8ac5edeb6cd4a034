// Package homepage builds the home page of a package documentation site:
// it resolves the source document, renders it to HTML, assembles the sidebar
// from package metadata, post-processes the HTML tree and writes index.html.
package homepage

import (
	"os"
	"path/filepath"
	"strings"
)

// SourceKind discriminates the resolved home-page source.
type SourceKind int

const (
	// SourceNone means no candidate file exists; the package description is
	// used as the page body.
	SourceNone SourceKind = iota
	// SourceMarkdown is lightweight markup, rendered in-process.
	SourceMarkdown
	// SourceRichMarkdown requires the external rendering engine.
	SourceRichMarkdown
)

// Source is the resolved home-page source document. Resolved once per build,
// immutable thereafter.
type Source struct {
	Kind SourceKind
	Path string
}

// Stem returns the file name without extension ("index" or "README"), or the
// empty string when no source was resolved.
func (s Source) Stem() string {
	if s.Kind == SourceNone {
		return ""
	}
	base := filepath.Base(s.Path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// sourceCandidates is the fixed precedence list: index files beat README
// files, and rich markup beats lightweight markup at each tier.
var sourceCandidates = []struct {
	name string
	kind SourceKind
}{
	{"index.Rmd", SourceRichMarkdown},
	{"README.Rmd", SourceRichMarkdown},
	{"index.md", SourceMarkdown},
	{"README.md", SourceMarkdown},
}

// ResolveSource returns the first existing candidate file under pkgDir, or a
// SourceNone value when no candidate exists. A missing source is not an
// error; the caller falls back to the description field.
func ResolveSource(pkgDir string) Source {
	for _, c := range sourceCandidates {
		path := filepath.Join(pkgDir, c.name)
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return Source{Kind: c.kind, Path: path}
		}
	}
	return Source{Kind: SourceNone}
}
