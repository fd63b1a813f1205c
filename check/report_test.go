package check

import (
	"strings"
	"testing"
)

func TestReportMarkdown(t *testing.T) {
	r := &Report{
		FilesScanned: 3,
		RefCounts:    map[Kind]int{KindInternal: 4},
		Issues: []Issue{
			{File: "a.html", Line: 3, Kind: KindInternal, URL: "missing.html", Message: "Target file not found: missing.html", Context: `<a href="missing.html">`},
			{File: "a.html", Line: 9, Kind: KindAnchor, URL: "#gone", Message: "Anchor not found: gone"},
			{File: "b.html", Kind: KindParse, Message: "Error reading file: invalid UTF-8 encoding"},
		},
	}

	md := r.Markdown()

	for _, want := range []string{
		"# Link Checker Report",
		"Files scanned: 3",
		"Total issues: 3",
		"## a.html",
		"## b.html",
		"### Line 3 - INTERNAL",
		"### Line 9 - ANCHOR",
		"### Line unknown - PARSE",
		"**URL:** `missing.html`",
		"**Issue:** Anchor not found: gone",
		"**Context:** `<a href=\"missing.html\">`",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("Markdown() missing %q:\n%s", want, md)
		}
	}

	// Files appear in issue order, grouped
	if strings.Index(md, "## a.html") > strings.Index(md, "## b.html") {
		t.Error("Markdown() file groups out of order")
	}
}

func TestReportMarkdownClean(t *testing.T) {
	r := &Report{FilesScanned: 2, RefCounts: map[Kind]int{KindInternal: 1}}

	md := r.Markdown()
	if !strings.Contains(md, "No link issues found.") {
		t.Errorf("Markdown() = %q", md)
	}
	if !r.Passed() {
		t.Error("Passed() = false, want true")
	}
}

func TestReportSummary(t *testing.T) {
	r := &Report{
		FilesScanned: 2,
		RefCounts:    map[Kind]int{KindInternal: 3, KindExternal: 2},
		Issues: []Issue{
			{File: "a.html", Kind: KindInternal, Message: "x"},
			{File: "a.html", Kind: KindInternal, Message: "y"},
			{File: "b.html", Kind: KindExternal, Message: "z"},
		},
	}

	s := r.Summary()
	for _, want := range []string{
		"Checked 2 files (5 references)",
		"Found 3 link issues:",
		"external: 1",
		"internal: 2",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("Summary() missing %q:\n%s", want, s)
		}
	}
}
