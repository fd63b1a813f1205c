package check

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

var errInvalidEncoding = errors.New("invalid UTF-8 encoding")

// linkAttrs maps the elements the checker cares about to the attribute
// carrying their reference.
var linkAttrs = map[string]string{
	"a":      "href",
	"link":   "href",
	"img":    "src",
	"script": "src",
	"source": "src",
}

const contextLimit = 100

// extractReferences tokenizes one HTML document and returns its link
// references in document order. It is a pure function of the content, so
// re-running it over the same bytes yields identical results.
//
// The tokenizer does not expose source positions; lines are recovered by
// counting newlines in the raw token stream, which pins a reference to
// the line its start tag begins on.
func extractReferences(file string, content []byte) ([]Reference, error) {
	if !utf8.Valid(content) {
		return nil, errInvalidEncoding
	}

	z := html.NewTokenizer(bytes.NewReader(content))
	line := 1
	var refs []Reference

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if err := z.Err(); err != io.EOF {
				return refs, err
			}
			return refs, nil
		}

		// TagAttr unescapes in place, so snapshot the raw token first.
		raw := string(z.Raw())

		if tt == html.StartTagToken || tt == html.SelfClosingTagToken {
			name, hasAttr := z.TagName()
			tag := string(name)
			if want, ok := linkAttrs[tag]; ok && hasAttr {
				for {
					key, val, more := z.TagAttr()
					if string(key) == want {
						if u := strings.TrimSpace(string(val)); u != "" {
							refs = append(refs, Reference{
								SourceFile: file,
								Line:       line,
								Kind:       Classify(u),
								RawURL:     u,
								Tag:        tag,
								Context:    snippet(raw),
							})
						}
						break
					}
					if !more {
						break
					}
				}
			}
		}

		line += strings.Count(raw, "\n")
	}
}

// snippet reduces a raw start tag to a single-line report excerpt.
func snippet(raw string) string {
	s := strings.TrimSpace(raw)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	if len(s) > contextLimit {
		cut := contextLimit
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		s = s[:cut] + "..."
	}
	return s
}
