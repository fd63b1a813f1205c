package check

// Kind classifies a link reference
type Kind string

const (
	// KindInternal is a link to another file within the site tree
	KindInternal Kind = "internal"
	// KindAnchor is a same-document #fragment link
	KindAnchor Kind = "anchor"
	// KindExternal is an http(s) link outside the site tree
	KindExternal Kind = "external"
	// KindIgnored covers schemes that are never checked (mailto:, tel:, ...)
	KindIgnored Kind = "ignored"
	// KindParse marks document-level read/parse failures
	KindParse Kind = "parse"
)

func (k Kind) String() string {
	return string(k)
}

// Reference is one extracted link occurrence. It is created during
// extraction and read-only from then on.
type Reference struct {
	// SourceFile is the document containing the reference, relative to
	// the site root, slash-separated.
	SourceFile string
	// Line is the 1-based line of the element's start tag, 0 when the
	// position could not be tracked.
	Line int
	Kind Kind
	// RawURL is the attribute value exactly as written, whitespace-trimmed.
	RawURL string
	// Tag is the element name the reference was found on (a, img, ...).
	Tag string
	// Context is a truncated snippet of the start tag for the report.
	Context string
}

// Issue is one recorded validation failure
type Issue struct {
	File    string
	Line    int
	Kind    Kind
	URL     string
	Message string
	Context string
}

// ErrorCode defines error types for check operations
type ErrorCode string

const (
	// ErrInvalidConfig represents configuration that fails validation
	ErrInvalidConfig ErrorCode = "InvalidConfig"
	// ErrSiteNotFound represents a missing or unreadable site directory
	ErrSiteNotFound ErrorCode = "SiteNotFound"
)

func (c ErrorCode) ErrorCode() string {
	return string(c)
}
