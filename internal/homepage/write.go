package homepage

import (
	"bytes"
	"os"

	"golang.org/x/net/html"

	fe "git.home.luguber.info/inful/homegen/internal/foundation/errors"
)

// parsePageFile reads and parses the written page into a mutable tree. The
// tree is owned by the build for the duration of post-processing; no
// references survive serialization.
func parsePageFile(path string) (*html.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fe.Wrap(err, fe.CategoryFileSystem, "open rendered page")
	}
	defer f.Close()

	doc, err := html.Parse(f)
	if err != nil {
		// Upstream guarantees well-formed output; this is a broken
		// collaborator, not a recoverable condition.
		return nil, fe.Wrap(err, fe.CategoryHTML, "parse rendered page")
	}
	return doc, nil
}

// writePageFile serializes the mutated tree back to path, overwriting the
// file. Output is UTF-8 and not pretty-printed, so serialization is
// byte-stable across runs.
func writePageFile(doc *html.Node, path string) error {
	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return fe.Wrap(err, fe.CategoryHTML, "serialize page")
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fe.Wrap(err, fe.CategoryFileSystem, "write page")
	}
	return nil
}
