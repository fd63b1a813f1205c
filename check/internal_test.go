package check

import (
	"strings"
	"testing"
)

func TestResolveInternal(t *testing.T) {
	root := writeSite(t, map[string]string{
		"index.html":      "<html></html>",
		"about.html":      "<html></html>",
		"docs/index.html": "<html></html>",
		"docs/guide.html": "<html></html>",
		"blog/post.html":  "<html></html>",
	})
	c := newTestChecker(t, root)

	tests := []struct {
		name       string
		source     string
		url        string
		wantTarget string
		wantIssue  string
	}{
		{
			name:       "exact relative",
			source:     "index.html",
			url:        "about.html",
			wantTarget: "about.html",
		},
		{
			name:       "extensionless",
			source:     "index.html",
			url:        "about",
			wantTarget: "about.html",
		},
		{
			name:       "directory with trailing slash",
			source:     "index.html",
			url:        "docs/",
			wantTarget: "docs/index.html",
		},
		{
			name:       "directory without trailing slash",
			source:     "index.html",
			url:        "docs",
			wantTarget: "docs/index.html",
		},
		{
			name:       "root-relative from nested document",
			source:     "blog/post.html",
			url:        "/docs/guide.html",
			wantTarget: "docs/guide.html",
		},
		{
			name:       "parent-relative from nested document",
			source:     "docs/guide.html",
			url:        "../about.html",
			wantTarget: "about.html",
		},
		{
			name:       "fragment stripped before resolution",
			source:     "index.html",
			url:        "about.html#section",
			wantTarget: "about.html",
		},
		{
			name:       "query stripped before resolution",
			source:     "index.html",
			url:        "about.html?page=2",
			wantTarget: "about.html",
		},
		{
			name:       "bare query resolves to self",
			source:     "docs/guide.html",
			url:        "?page=2",
			wantTarget: "docs/guide.html",
		},
		{
			name:      "missing file",
			source:    "index.html",
			url:       "missing.html",
			wantIssue: "Target file not found: missing.html",
		},
		{
			name:      "missing extensionless",
			source:    "index.html",
			url:       "missing",
			wantIssue: "Target file not found: missing",
		},
		{
			name:      "escapes site root",
			source:    "index.html",
			url:       "../elsewhere/impossible.html",
			wantIssue: "Target file not found: ../elsewhere/impossible.html",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref := Reference{SourceFile: tt.source, Kind: KindInternal, RawURL: tt.url}
			target, issue := c.resolveInternal(ref, tt.url)

			if tt.wantIssue != "" {
				if issue == nil {
					t.Fatalf("resolveInternal(%q) resolved to %q, want issue", tt.url, target)
				}
				if issue.Message != tt.wantIssue {
					t.Errorf("issue message = %q, want %q", issue.Message, tt.wantIssue)
				}
				return
			}

			if issue != nil {
				t.Fatalf("resolveInternal(%q) issue = %q, want target %q", tt.url, issue.Message, tt.wantTarget)
			}
			if target != tt.wantTarget {
				t.Errorf("resolveInternal(%q) = %q, want %q", tt.url, target, tt.wantTarget)
			}
		})
	}
}

func TestResolveInternalIssueFields(t *testing.T) {
	root := writeSite(t, map[string]string{"index.html": "<html></html>"})
	c := newTestChecker(t, root)

	ref := Reference{
		SourceFile: "index.html",
		Line:       7,
		Kind:       KindInternal,
		RawURL:     "missing.html",
		Context:    `<a href="missing.html">`,
	}
	_, issue := c.resolveInternal(ref, ref.RawURL)
	if issue == nil {
		t.Fatal("expected issue")
	}
	if issue.File != "index.html" || issue.Line != 7 || issue.Kind != KindInternal || issue.URL != "missing.html" {
		t.Errorf("issue fields = %+v", issue)
	}
	if !strings.Contains(issue.Context, "missing.html") {
		t.Errorf("issue context = %q", issue.Context)
	}
}
