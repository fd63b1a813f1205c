package check

import "strings"

// Classify categorizes a raw href/src value. It is a pure function: no
// filesystem or network access, so it can be applied during extraction.
//
// Rules, in order:
//  1. mailto:, tel:, javascript: are ignored.
//  2. A leading # is a same-document anchor. The bare fragment "#" is
//     still classified here; the anchor resolver treats it as always valid.
//  3. http://, https:// and protocol-relative // are external.
//  4. Any other scheme (data:, ftp:, ...) is ignored; checking those as
//     site paths would only fabricate issues.
//  5. Everything else is an internal path, root-relative when it starts
//     with /.
func Classify(raw string) Kind {
	switch {
	case hasAnyPrefix(raw, "mailto:", "tel:", "javascript:"):
		return KindIgnored
	case strings.HasPrefix(raw, "#"):
		return KindAnchor
	case hasAnyPrefix(raw, "http://", "https://", "//"):
		return KindExternal
	case hasScheme(raw):
		return KindIgnored
	default:
		return KindInternal
	}
}

func hasAnyPrefix(s string, prefixes ...string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// hasScheme reports whether s begins with a URL scheme per RFC 3986
// (ALPHA *( ALPHA / DIGIT / "+" / "-" / "." ) ":"). A Windows-style
// single-letter prefix never appears in rendered sites, so anything
// matching is treated as a real scheme.
func hasScheme(s string) bool {
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z':
			continue
		case i > 0 && (r >= '0' && r <= '9' || r == '+' || r == '-' || r == '.'):
			continue
		case r == ':':
			return i > 0
		default:
			return false
		}
	}
	return false
}

// splitFragment separates a path from its trailing #fragment. The
// fragment is returned without the leading #; hadFragment distinguishes
// "page.html#" from "page.html".
func splitFragment(raw string) (path, fragment string, hadFragment bool) {
	if i := strings.IndexByte(raw, '#'); i >= 0 {
		return raw[:i], raw[i+1:], true
	}
	return raw, "", false
}
