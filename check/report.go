package check

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Report is the terminal artifact of a run: scan statistics plus the
// ordered issue list. Immutable once produced.
type Report struct {
	Root         string
	FilesScanned int
	// RefCounts breaks extracted references down by kind.
	RefCounts map[Kind]int
	// Issues are ordered by file traversal order, then by in-document
	// appearance, regardless of how external probes completed.
	Issues []Issue
}

// Passed reports whether the run found no issues.
func (r *Report) Passed() bool {
	return len(r.Issues) == 0
}

// Markdown renders the full report, issues grouped by file in traversal
// order. The output is a pure function of the issue list, so unchanged
// sites produce byte-identical reports.
func (r *Report) Markdown() string {
	var b strings.Builder
	b.WriteString("# Link Checker Report\n\n")
	fmt.Fprintf(&b, "Files scanned: %d\n\n", r.FilesScanned)
	fmt.Fprintf(&b, "Total issues: %d\n\n", len(r.Issues))

	if r.Passed() {
		b.WriteString("No link issues found.\n")
		return b.String()
	}

	files := lo.Uniq(lo.Map(r.Issues, func(i Issue, _ int) string { return i.File }))
	byFile := lo.GroupBy(r.Issues, func(i Issue) string { return i.File })

	for _, f := range files {
		fmt.Fprintf(&b, "## %s\n\n", f)
		for _, issue := range byFile[f] {
			fmt.Fprintf(&b, "### Line %s - %s\n\n", lineLabel(issue.Line), strings.ToUpper(issue.Kind.String()))
			if issue.URL != "" {
				fmt.Fprintf(&b, "**URL:** `%s`\n\n", issue.URL)
			}
			fmt.Fprintf(&b, "**Issue:** %s\n\n", issue.Message)
			if issue.Context != "" {
				fmt.Fprintf(&b, "**Context:** `%s`\n\n", issue.Context)
			}
			b.WriteString("---\n\n")
		}
	}

	return b.String()
}

// Summary renders the short stdout summary.
func (r *Report) Summary() string {
	var b strings.Builder
	total := lo.Sum(lo.Values(r.RefCounts))
	fmt.Fprintf(&b, "Checked %d files (%d references)\n", r.FilesScanned, total)

	if r.Passed() {
		b.WriteString("No link issues found.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "Found %d link issues:\n", len(r.Issues))
	counts := lo.CountValuesBy(r.Issues, func(i Issue) Kind { return i.Kind })
	kinds := lo.Keys(counts)
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	for _, k := range kinds {
		fmt.Fprintf(&b, "  %s: %d\n", k, counts[k])
	}
	return b.String()
}

func lineLabel(n int) string {
	if n <= 0 {
		return "unknown"
	}
	return strconv.Itoa(n)
}
