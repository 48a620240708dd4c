// Package export writes the rendered pipeline documents as static build
// artifacts: JSON files in a local site data directory, optionally published
// to S3-compatible object storage for static hosting.
package export

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/RichDInfGrp/FimiliarVis/internal/render"
)

// Writer writes rendered documents into an output directory.
type Writer struct {
	dir string
	log *slog.Logger
}

// NewWriter creates a writer over the given output directory.
func NewWriter(dir string, log *slog.Logger) *Writer {
	return &Writer{dir: dir, log: log}
}

// Write writes every document of the set as <name>.json, creating the
// output directory if needed. Returns the paths written.
func (w *Writer) Write(set *render.Set) ([]string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output dir %s: %w", w.dir, err)
	}

	paths := make([]string, 0, len(render.Names))
	for _, name := range render.Names {
		body, ok := set.Get(name)
		if !ok {
			return nil, fmt.Errorf("document %q missing from render set", name)
		}
		path := filepath.Join(w.dir, name+".json")
		if err := os.WriteFile(path, body, 0o644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", path, err)
		}
		w.log.Info("wrote document", "path", path, "bytes", len(body))
		paths = append(paths, path)
	}
	return paths, nil
}
