package export

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RichDInfGrp/FimiliarVis/internal/domain/pipeline/entity"
	"github.com/RichDInfGrp/FimiliarVis/internal/render"
	"github.com/RichDInfGrp/FimiliarVis/internal/sheet"
)

func testSet(t *testing.T) *render.Set {
	t.Helper()
	snap := &entity.Snapshot{
		Posts: []entity.Post{{ID: "p1", URL: "https://posts/p1"}},
		Worksheet: entity.Worksheet{
			Discovery:       sheet.New([]string{"Metric", "Value"}),
			EngagementDaily: sheet.New([]string{"Date"}),
			Followers:       sheet.New([]string{"Date", "New followers", "Total Followers"}),
			Demographics:    sheet.New([]string{"Category"}),
		},
	}
	set, err := render.Build(snap, "2026-01-17")
	require.NoError(t, err)
	return set
}

func TestWrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "site", "data")
	set := testSet(t)

	w := NewWriter(dir, slog.New(slog.NewTextHandler(io.Discard, nil)))
	paths, err := w.Write(set)
	require.NoError(t, err)
	require.Len(t, paths, len(render.Names))

	// Every written file carries the exact bytes the live endpoint serves.
	for _, name := range render.Names {
		body, err := os.ReadFile(filepath.Join(dir, name+".json"))
		require.NoError(t, err)
		want, ok := set.Get(name)
		require.True(t, ok)
		assert.Equal(t, want, body, "document %s", name)
	}
}

func TestWriteCreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	w := NewWriter(dir, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := w.Write(testSet(t))
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
