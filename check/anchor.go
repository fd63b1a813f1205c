package check

import (
	"bytes"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// anchorIndex holds every fragment target a document exposes.
type anchorIndex struct {
	ids      map[string]struct{}
	headings map[string]struct{}
}

// buildAnchorIndex parses a document and collects its anchor targets:
// any element id, the legacy <a name="..."> form, and slugified h1-h6
// heading text for generators that link headings by their visible title.
func buildAnchorIndex(content []byte) (*anchorIndex, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}

	idx := &anchorIndex{
		ids:      map[string]struct{}{},
		headings: map[string]struct{}{},
	}

	doc.Find("[id]").Each(func(_ int, s *goquery.Selection) {
		if id, ok := s.Attr("id"); ok && id != "" {
			idx.ids[id] = struct{}{}
		}
	})

	doc.Find("a[name]").Each(func(_ int, s *goquery.Selection) {
		if name, ok := s.Attr("name"); ok && name != "" {
			idx.ids[name] = struct{}{}
		}
	})

	doc.Find("h1,h2,h3,h4,h5,h6").Each(func(_ int, s *goquery.Selection) {
		if slug := slugify(s.Text()); slug != "" {
			idx.headings[slug] = struct{}{}
		}
	})

	return idx, nil
}

// has reports whether fragment identifies an element in the document.
// The fragment is matched verbatim against id/name targets first, then
// URL-decoded and slugified against heading text.
func (idx *anchorIndex) has(fragment string) bool {
	if _, ok := idx.ids[fragment]; ok {
		return true
	}

	decoded := fragment
	if d, err := url.PathUnescape(fragment); err == nil {
		decoded = d
	}
	if _, ok := idx.ids[decoded]; ok {
		return true
	}
	_, ok := idx.headings[slugify(decoded)]
	return ok
}

// slugify lowercases heading text and joins it with hyphens, mirroring
// how static generators derive heading anchors.
func slugify(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(strings.TrimSpace(s)), "-"))
}

// anchorIndexFor returns the cached anchor index for a site file,
// building it on first use. Each document is parsed at most once per run
// no matter how many references point into it.
func (c *Checker) anchorIndexFor(file string) (*anchorIndex, error) {
	if idx, ok := c.anchors[file]; ok {
		return idx.index, idx.err
	}

	var entry anchorEntry
	content, err := os.ReadFile(filepath.Join(c.root, filepath.FromSlash(file)))
	if err != nil {
		entry.err = err
	} else {
		entry.index, entry.err = buildAnchorIndex(content)
	}

	c.anchors[file] = entry
	if entry.err != nil {
		return nil, entry.err
	}
	return entry.index, nil
}

type anchorEntry struct {
	index *anchorIndex
	err   error
}

// resolveAnchor validates fragment against target, returning an Issue on
// a miss. The empty fragment ("#" alone) is always valid and checked
// nowhere.
func (c *Checker) resolveAnchor(ref Reference, target, fragment string) *Issue {
	if fragment == "" {
		return nil
	}

	idx, err := c.anchorIndexFor(target)
	if err != nil {
		issue := c.newIssue(ref, "Error checking anchor: "+err.Error())
		return &issue
	}

	if !idx.has(fragment) {
		issue := c.newIssue(ref, "Anchor not found: "+fragment)
		return &issue
	}
	return nil
}
