package homepage

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	fe "git.home.luguber.info/inful/homegen/internal/foundation/errors"
)

// PostProcessOptions controls the HTML-tree pass over the rendered page.
type PostProcessOptions struct {
	// StripHeader removes the top-level heading outright instead of wrapping
	// it in a page-header container.
	StripHeader bool
}

// PostProcess mutates the parsed page in place: badge-row extraction into the
// sidebar, heading presentation, image-path rewriting and table markup
// normalization. Input is produced by the upstream renderer and assumed
// well-formed; a page without the expected body/sidebar regions is a broken
// collaborator, not a handled case.
func PostProcess(doc *html.Node, opts PostProcessOptions) error {
	main := findFirst(doc, isElement(atom.Main))
	sidebar := findFirst(doc, isElement(atom.Aside))
	if main == nil || sidebar == nil {
		return fe.New(fe.CategoryHTML, "rendered page lacks main/aside regions")
	}

	extractBadges(main, sidebar)
	adjustHeading(main, opts.StripHeader)
	rewriteImageSources(doc)
	normalizeTables(doc)
	return nil
}

// extractBadges looks at the first paragraph of the body region. When every
// child is an anchor element (a badge row), the anchors move into a titled
// "Dev status" list in the sidebar and the paragraph is removed. The rule is
// strict: whitespace-only text nodes between anchors disqualify the
// paragraph.
func extractBadges(main, sidebar *html.Node) {
	p := findFirst(main, isElement(atom.P))
	if p == nil || p.FirstChild == nil {
		return
	}
	for c := p.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || c.DataAtom != atom.A {
			return
		}
	}

	var anchors []*html.Node
	for c := p.FirstChild; c != nil; c = c.NextSibling {
		anchors = append(anchors, c)
	}

	list := newElement(atom.Ul)
	for _, a := range anchors {
		p.RemoveChild(a)
		li := newElement(atom.Li)
		li.AppendChild(a)
		list.AppendChild(li)
	}

	heading := newElement(atom.H2)
	heading.AppendChild(&html.Node{Type: html.TextNode, Data: "Dev status"})
	sidebar.AppendChild(heading)
	sidebar.AppendChild(list)

	p.Parent.RemoveChild(p)
}

// adjustHeading removes the first top-level heading when strip is set,
// otherwise wraps it in a page-header container in place.
func adjustHeading(main *html.Node, strip bool) {
	h1 := findFirst(main, isElement(atom.H1))
	if h1 == nil {
		return
	}
	if strip {
		h1.Parent.RemoveChild(h1)
		return
	}

	wrapper := newElement(atom.Div)
	wrapper.Attr = []html.Attribute{{Key: "class", Val: "page-header"}}
	h1.Parent.InsertBefore(wrapper, h1)
	h1.Parent.RemoveChild(h1)
	wrapper.AppendChild(h1)
}

// imagePathRewrites maps source-tree image prefixes to their site locations.
// Only a leading-path match triggers rewriting.
var imagePathRewrites = []struct{ from, to string }{
	{"vignettes/", "articles/"},
	{"man/figures/", "reference/figures/"},
}

func rewriteImageSources(root *html.Node) {
	walk(root, func(n *html.Node) {
		if n.Type != html.ElementNode || n.DataAtom != atom.Img {
			return
		}
		for i, attr := range n.Attr {
			if attr.Key != "src" {
				continue
			}
			for _, rw := range imagePathRewrites {
				if rest, ok := strings.CutPrefix(attr.Val, rw.from); ok {
					n.Attr[i].Val = rw.to + rest
					break
				}
			}
		}
	})
}

// normalizeTables gives every table the site's table class. Shared with
// other page types' post-processing.
func normalizeTables(root *html.Node) {
	walk(root, func(n *html.Node) {
		if n.Type != html.ElementNode || n.DataAtom != atom.Table {
			return
		}
		for i, attr := range n.Attr {
			if attr.Key == "class" {
				if !hasClass(attr.Val, "table") {
					n.Attr[i].Val = attr.Val + " table"
				}
				return
			}
		}
		n.Attr = append(n.Attr, html.Attribute{Key: "class", Val: "table"})
	})
}

func hasClass(classAttr, class string) bool {
	for _, c := range strings.Fields(classAttr) {
		if c == class {
			return true
		}
	}
	return false
}

func isElement(a atom.Atom) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.DataAtom == a
	}
}

func newElement(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
}

// findFirst returns the first node in document order satisfying pred, or nil.
func findFirst(n *html.Node, pred func(*html.Node) bool) *html.Node {
	if pred(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, pred); found != nil {
			return found
		}
	}
	return nil
}

// walk visits every node in document order. The visitor must not detach the
// node it is handed.
func walk(n *html.Node, visit func(*html.Node)) {
	visit(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, visit)
	}
}
