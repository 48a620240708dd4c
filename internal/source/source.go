// Package source locates and reads the raw spreadsheet exports the pipeline
// consumes. It owns the structural error taxonomy: a missing file or a
// missing required column is fatal for a loader, while row-level data
// problems are left for the normalizers to default.
package source

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// SourceNotFoundError reports that no spreadsheet matched a required
// filename prefix in the search directory.
type SourceNotFoundError struct {
	Prefix string
	Dir    string
}

func (e *SourceNotFoundError) Error() string {
	return fmt.Sprintf("no .xlsx file matching prefix %q in %s", e.Prefix, e.Dir)
}

// MalformedRecordError reports that a required column is absent from a
// source file, so the loader cannot establish its schema.
type MalformedRecordError struct {
	Source string
	Column string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("source %q is missing required column %q", e.Source, e.Column)
}

// FindFile locates exactly one .xlsx file in dir whose base name starts with
// prefix. Matching is case-sensitive; when several files match, the
// lexicographically first wins (timestamped exports sort oldest-first).
func FindFile(dir, prefix string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, prefix+"*.xlsx"))
	if err != nil {
		return "", fmt.Errorf("globbing %q: %w", prefix, err)
	}
	// filepath.Glob is case-sensitive on every platform we target, but the
	// prefix check keeps behavior explicit for case-folding filesystems.
	filtered := matches[:0]
	for _, m := range matches {
		if strings.HasPrefix(filepath.Base(m), prefix) {
			filtered = append(filtered, m)
		}
	}
	if len(filtered) == 0 {
		return "", &SourceNotFoundError{Prefix: prefix, Dir: dir}
	}
	sort.Strings(filtered)
	return filtered[0], nil
}
