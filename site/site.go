// Package site enumerates the documents of a rendered static site.
package site

import (
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/morikuni/failure/v2"
)

// ErrorCode defines error types for site tree operations
type ErrorCode string

const (
	// NotFound represents errors when the site root is missing or not a directory
	NotFound ErrorCode = "NotFound"
	// WalkFailed represents errors during directory traversal
	WalkFailed ErrorCode = "WalkFailed"
)

func (c ErrorCode) ErrorCode() string {
	return string(c)
}

// Scan walks root and returns every regular *.html file beneath it
// (extension matched case-insensitively) as slash-separated paths relative
// to root, in lexicographic order. The order is what makes reports
// reproducible across runs, so callers must not reorder the result.
func Scan(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, failure.New(NotFound,
			failure.Message("Site directory does not exist"),
			failure.Context{
				"path": root,
			},
		)
	}

	var files []string
	err = fs.WalkDir(os.DirFS(root), ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if strings.EqualFold(path.Ext(p), ".html") {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, failure.New(WalkFailed,
			failure.Message("Failed to walk site tree"),
			failure.Context{
				"path":  root,
				"cause": err.Error(),
			},
		)
	}

	sort.Strings(files)
	return files, nil
}
