package check

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want Kind
	}{
		{name: "relative path", url: "about.html", want: KindInternal},
		{name: "extensionless path", url: "about", want: KindInternal},
		{name: "root-relative path", url: "/docs/guide.html", want: KindInternal},
		{name: "parent-relative path", url: "../index.html", want: KindInternal},
		{name: "path with fragment", url: "page.html#section", want: KindInternal},
		{name: "path with query", url: "search.html?q=x", want: KindInternal},
		{name: "bare fragment", url: "#", want: KindAnchor},
		{name: "fragment", url: "#section1", want: KindAnchor},
		{name: "http", url: "http://example.com", want: KindExternal},
		{name: "https", url: "https://example.com/path?q=1", want: KindExternal},
		{name: "protocol relative", url: "//cdn.example.com/lib.js", want: KindExternal},
		{name: "mailto", url: "mailto:hi@example.com", want: KindIgnored},
		{name: "tel", url: "tel:+81-3-1234-5678", want: KindIgnored},
		{name: "javascript", url: "javascript:void(0)", want: KindIgnored},
		{name: "data uri", url: "data:image/png;base64,iVBOR=", want: KindIgnored},
		{name: "ftp", url: "ftp://example.com/file", want: KindIgnored},
		{name: "colon in path segment", url: "docs/a:b.html", want: KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.url); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.url, got, tt.want)
			}
		})
	}
}

func TestSplitFragment(t *testing.T) {
	tests := []struct {
		raw      string
		path     string
		fragment string
		had      bool
	}{
		{"page.html#section", "page.html", "section", true},
		{"page.html#", "page.html", "", true},
		{"page.html", "page.html", "", false},
		{"#top", "", "top", true},
	}

	for _, tt := range tests {
		path, fragment, had := splitFragment(tt.raw)
		if path != tt.path || fragment != tt.fragment || had != tt.had {
			t.Errorf("splitFragment(%q) = (%q, %q, %v), want (%q, %q, %v)",
				tt.raw, path, fragment, had, tt.path, tt.fragment, tt.had)
		}
	}
}
