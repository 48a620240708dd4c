// Package dao reads the four raw spreadsheet exports into typed entity
// tables. Loaders fail on structural problems (missing file, missing
// required column) and default row-level data problems per the normalizer
// rules, so one bad row never fails a whole load.
package dao

import (
	"strconv"
	"time"

	"github.com/RichDInfGrp/FimiliarVis/internal/sheet"
	"github.com/RichDInfGrp/FimiliarVis/internal/source"
)

// Prefixes names the four source exports by filename prefix. Exports are
// timestamped, so loaders match by prefix and take the first file in
// lexicographic order.
type Prefixes struct {
	Contacts   string
	Engagement string
	DailyPosts string
	Worksheet  string
}

// DefaultPrefixes matches the export naming used by the Fimiliar platform.
var DefaultPrefixes = Prefixes{
	Contacts:   "Contacts-Enrich-Nicole",
	Engagement: "Engagement-Nicole",
	DailyPosts: "Nicole's-Daily-Update",
	Worksheet:  "WorkSheet_Nicole",
}

// Loader locates and parses source spreadsheets from a fixed directory.
type Loader struct {
	dir      string
	prefixes Prefixes
}

// NewLoader creates a loader over the given data directory.
func NewLoader(dir string, prefixes Prefixes) *Loader {
	return &Loader{dir: dir, prefixes: prefixes}
}

// SourceFiles resolves the paths of all four source exports. Used by the
// orchestrator to fingerprint the inputs before deciding whether a cached
// snapshot is still valid.
func (l *Loader) SourceFiles() ([]string, error) {
	paths := make([]string, 0, 4)
	for _, prefix := range []string{
		l.prefixes.Contacts,
		l.prefixes.Engagement,
		l.prefixes.DailyPosts,
		l.prefixes.Worksheet,
	} {
		path, err := source.FindFile(l.dir, prefix)
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// requireColumns returns a MalformedRecordError naming the first required
// column missing from the sheet header.
func requireColumns(s *sheet.Sheet, sourceName string, columns ...string) error {
	for _, col := range columns {
		if !s.HasColumn(col) {
			return &source.MalformedRecordError{Source: sourceName, Column: col}
		}
	}
	return nil
}

// cellString renders any cell value as a string, "" for nil.
func cellString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case time.Time:
		return x.Format(time.RFC3339)
	default:
		return ""
	}
}

// cellStringPtr renders a cell value as a nullable string, preserving the
// empty-cell → null distinction the enrichment's first-non-null picks need.
func cellStringPtr(v any) *string {
	if v == nil {
		return nil
	}
	s := cellString(v)
	if s == "" {
		return nil
	}
	return &s
}
