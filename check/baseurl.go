package check

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var baseURLPattern = regexp.MustCompile(`baseURL\s*[:=]\s*["']([^"']+)["']`)

// detectBaseURL sniffs the site's own base URL from a generator config
// file left alongside the rendered output. Returns "" when none is
// found; the checker then treats every absolute URL as external.
func detectBaseURL(root string) string {
	for _, name := range []string{"config.yaml", "config.yml", "config.toml", "config.json"} {
		content, err := os.ReadFile(filepath.Join(root, name))
		if err != nil {
			continue
		}
		if m := baseURLPattern.FindSubmatch(content); m != nil {
			return strings.TrimRight(string(m[1]), "/")
		}
	}
	return ""
}

// reclassifySelfLink turns an absolute URL under the site's base URL
// back into an internal path so self-links are checked against the tree
// instead of the network. The raw URL is preserved for reporting; only
// the resolution string changes.
func (c *Checker) reclassifySelfLink(ref Reference) scanRef {
	sr := scanRef{Reference: ref, resolve: ref.RawURL}
	if ref.Kind != KindExternal || c.baseURL == "" {
		return sr
	}

	switch {
	case ref.RawURL == c.baseURL:
		sr.Kind = KindInternal
		sr.resolve = "/"
	case strings.HasPrefix(ref.RawURL, c.baseURL+"/"):
		sr.Kind = KindInternal
		sr.resolve = strings.TrimPrefix(ref.RawURL, c.baseURL)
	}
	return sr
}
