package check

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/ka2n/tadoru/log"
	"github.com/ka2n/tadoru/site"
)

// Checker runs one validation pass over a site tree. Construct a fresh
// one per run; the anchor cache and probe results are run-scoped.
type Checker struct {
	cfg     Config
	root    string
	baseURL string
	anchors map[string]anchorEntry
	prober  *prober
}

// scanRef pairs an extracted reference with the string it resolves by.
// The two differ only for base-URL self-links, where the reported URL
// stays absolute but resolution uses the trimmed path.
type scanRef struct {
	Reference
	resolve string
}

// fileScan is the extraction result for one document, in traversal order.
type fileScan struct {
	file       string
	refs       []scanRef
	parseIssue *Issue
}

// New validates cfg and prepares a checker for the site tree.
func New(cfg Config) (*Checker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	root, err := filepath.Abs(cfg.SiteDir)
	if err != nil {
		return nil, err
	}

	c := &Checker{
		cfg:     cfg,
		root:    root,
		anchors: map[string]anchorEntry{},
	}

	if cfg.BaseURL != "" {
		c.baseURL = strings.TrimRight(cfg.BaseURL, "/")
	} else {
		c.baseURL = detectBaseURL(root)
	}

	if cfg.CheckExternal {
		c.prober = newProber(cfg)
	}

	return c, nil
}

// Run checks the whole tree and returns the report. Only configuration
// errors (a missing site dir, an unwalkable tree) come back as errors;
// everything found in the documents themselves is an Issue in the
// report, and the run always completes.
func (c *Checker) Run(ctx context.Context) (*Report, error) {
	files, err := site.Scan(c.root)
	if err != nil {
		return nil, err
	}

	log.Info("checking links", "site", c.root, "files", len(files))

	scans := make([]fileScan, 0, len(files))
	refCounts := map[Kind]int{}
	var externals []string

	for _, f := range files {
		s := fileScan{file: f}

		content, err := os.ReadFile(filepath.Join(c.root, filepath.FromSlash(f)))
		var refs []Reference
		if err == nil {
			refs, err = extractReferences(f, content)
		}
		if err != nil {
			s.parseIssue = &Issue{
				File:    f,
				Kind:    KindParse,
				Message: "Error reading file: " + err.Error(),
			}
			scans = append(scans, s)
			continue
		}

		for _, ref := range refs {
			sr := c.reclassifySelfLink(ref)
			refCounts[sr.Kind]++
			if sr.Kind == KindExternal && c.prober != nil {
				externals = append(externals, probeURL(sr.RawURL))
			}
			s.refs = append(s.refs, sr)
		}
		scans = append(scans, s)
	}

	if c.prober != nil && len(externals) > 0 {
		c.prober.probeAll(ctx, externals)
	}

	var issues []Issue
	for _, s := range scans {
		if s.parseIssue != nil {
			issues = append(issues, *s.parseIssue)
			continue
		}
		for _, sr := range s.refs {
			if issue := c.resolveReference(sr); issue != nil {
				issues = append(issues, *issue)
			}
		}
	}

	return &Report{
		Root:         c.root,
		FilesScanned: len(files),
		RefCounts:    refCounts,
		Issues:       issues,
	}, nil
}

// resolveReference dispatches one reference to its resolver. Ignored
// schemes never reach the filesystem or the network.
func (c *Checker) resolveReference(sr scanRef) *Issue {
	switch sr.Kind {
	case KindInternal:
		target, issue := c.resolveInternal(sr.Reference, sr.resolve)
		if issue != nil {
			return issue
		}
		// The anchor is only checked once the path resolved; reporting
		// a missing anchor against a missing file would be noise.
		if _, frag, ok := splitFragment(sr.resolve); ok && frag != "" {
			return c.resolveAnchor(sr.Reference, target, frag)
		}
	case KindAnchor:
		frag := strings.TrimPrefix(sr.RawURL, "#")
		return c.resolveAnchor(sr.Reference, sr.SourceFile, frag)
	case KindExternal:
		if c.prober == nil {
			return nil
		}
		if v, ok := c.prober.verdictFor(probeURL(sr.RawURL)); ok && !v.OK {
			issue := c.newIssue(sr.Reference, v.Reason)
			return &issue
		}
	}
	return nil
}

func (c *Checker) newIssue(ref Reference, msg string) Issue {
	return Issue{
		File:    ref.SourceFile,
		Line:    ref.Line,
		Kind:    ref.Kind,
		URL:     ref.RawURL,
		Message: msg,
		Context: ref.Context,
	}
}
