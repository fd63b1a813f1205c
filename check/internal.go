package check

import (
	"os"
	"path"
	"path/filepath"
	"strings"
)

// resolveInternal resolves an internal-path reference to a file in the
// site tree. It returns the resolved path (relative to the site root,
// slash-separated) on success, or an Issue describing the failure.
//
// Resolution, in order:
//   - fragment and query string are stripped
//   - a leading / resolves against the site root, anything else against
//     the referencing document's directory
//   - the cleaned candidate is tried as-is; a directory falls through to
//     its index.html; a miss retries with a .html suffix for
//     extensionless permalinks
//
// Candidates that normalize outside the site root simply fail the
// existence check; the candidate path in the message makes the escape
// evident without a dedicated error kind.
func (c *Checker) resolveInternal(ref Reference, raw string) (string, *Issue) {
	p, _, _ := splitFragment(raw)
	if i := strings.IndexByte(p, '?'); i >= 0 {
		p = p[:i]
	}

	// "?page=2" or "#top" style self references point at the document itself
	if p == "" {
		return ref.SourceFile, nil
	}

	var candidate string
	if strings.HasPrefix(p, "/") {
		candidate = path.Clean(strings.TrimPrefix(p, "/"))
	} else {
		candidate = path.Clean(path.Join(path.Dir(ref.SourceFile), p))
	}

	if resolved, ok := c.statCandidate(candidate); ok {
		return resolved, nil
	}

	issue := c.newIssue(ref, "Target file not found: "+candidate)
	return "", &issue
}

// statCandidate checks one cleaned candidate path against the tree,
// applying the directory and extensionless fallbacks.
func (c *Checker) statCandidate(candidate string) (string, bool) {
	abs := filepath.Join(c.root, filepath.FromSlash(candidate))

	if info, err := os.Stat(abs); err == nil {
		if !info.IsDir() {
			return candidate, true
		}
		index := path.Join(candidate, "index.html")
		if info, err := os.Stat(filepath.Join(c.root, filepath.FromSlash(index))); err == nil && !info.IsDir() {
			return index, true
		}
		return "", false
	}

	// Hugo-style extensionless permalink
	withExt := candidate + ".html"
	if info, err := os.Stat(abs + ".html"); err == nil && !info.IsDir() {
		return withExt, true
	}

	return "", false
}
