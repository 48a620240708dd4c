package dao

import (
	"github.com/RichDInfGrp/FimiliarVis/internal/domain/pipeline/entity"
	"github.com/RichDInfGrp/FimiliarVis/internal/normalize"
	"github.com/RichDInfGrp/FimiliarVis/internal/sheet"
	"github.com/RichDInfGrp/FimiliarVis/internal/source"
)

// Sheet names inside the summary workbook.
const (
	sheetDiscovery    = "DISCOVERY"
	sheetEngagement   = "ENGAGEMENT"
	sheetTopPosts     = "TOP POSTS"
	sheetFollowers    = "FOLLOWERS"
	sheetDemographics = "DEMOGRAPHICS"
)

// topPostsLayout is the fixed layout contract of the TOP POSTS sheet: three
// header rows to skip, then two side-by-side 3-column blocks — "Before" in
// columns 0-2 and "After" in columns 4-6, each (post_url, publish_date,
// impressions). The offsets are not validated against header cells; if the
// upstream workbook layout shifts, rows without a post_url in the expected
// column are dropped rather than misjoined.
var topPostsLayout = struct {
	skipRows    int
	beforeStart int
	afterStart  int
	blockWidth  int
}{skipRows: 3, beforeStart: 0, afterStart: 4, blockWidth: 3}

// Worksheet loads the five tables of the multi-sheet summary workbook.
// DISCOVERY and DEMOGRAPHICS pass through untouched; ENGAGEMENT and
// FOLLOWERS get their Date column parsed; TOP POSTS is reshaped per
// topPostsLayout.
func (l *Loader) Worksheet() (entity.Worksheet, error) {
	var ws entity.Worksheet

	path, err := source.FindFile(l.dir, l.prefixes.Worksheet)
	if err != nil {
		return ws, err
	}
	wb, err := source.OpenWorkbook(path)
	if err != nil {
		return ws, err
	}
	defer wb.Close()

	if ws.Discovery, err = wb.Sheet(sheetDiscovery); err != nil {
		return ws, err
	}

	if ws.EngagementDaily, err = wb.Sheet(sheetEngagement); err != nil {
		return ws, err
	}
	if err := requireColumns(ws.EngagementDaily, "worksheet/ENGAGEMENT", "Date"); err != nil {
		return ws, err
	}
	parseDateColumn(ws.EngagementDaily, "Date")

	rawTop, err := wb.RawRows(sheetTopPosts, topPostsLayout.skipRows)
	if err != nil {
		return ws, err
	}
	ws.TopPosts = reshapeTopPosts(rawTop)

	if ws.Followers, err = wb.Sheet(sheetFollowers); err != nil {
		return ws, err
	}
	if err := requireColumns(ws.Followers, "worksheet/FOLLOWERS", "Date"); err != nil {
		return ws, err
	}
	parseDateColumn(ws.Followers, "Date")

	if ws.Demographics, err = wb.Sheet(sheetDemographics); err != nil {
		return ws, err
	}

	return ws, nil
}

// parseDateColumn coerces a sheet column to timestamps in place;
// unparseable cells become nil with the row retained.
func parseDateColumn(s *sheet.Sheet, name string) {
	s.MapColumn(name, func(v any) any {
		if t := normalize.ParseDateValue(v); t != nil {
			return *t
		}
		return nil
	})
}

// reshapeTopPosts cuts the two labeled blocks out of the raw TOP POSTS grid
// and concatenates them, Before rows first. Rows with an empty post_url are
// dropped from their block; non-numeric impressions become nil with the row
// retained.
func reshapeTopPosts(rows [][]any) []entity.TopPost {
	out := make([]entity.TopPost, 0, 2*len(rows))
	out = append(out, cutTopPostsBlock(rows, topPostsLayout.beforeStart, "Before")...)
	out = append(out, cutTopPostsBlock(rows, topPostsLayout.afterStart, "After")...)
	return out
}

func cutTopPostsBlock(rows [][]any, start int, period string) []entity.TopPost {
	block := make([]entity.TopPost, 0, len(rows))
	for _, row := range rows {
		var cells [3]any
		for i := 0; i < topPostsLayout.blockWidth; i++ {
			if start+i < len(row) {
				cells[i] = row[start+i]
			}
		}
		url := cellString(cells[0])
		if url == "" {
			continue
		}
		block = append(block, entity.TopPost{
			PostURL:     url,
			PublishDate: normalize.ParseDateValue(cells[1]),
			Impressions: normalize.ParseNumber(cells[2]),
			Period:      period,
		})
	}
	return block
}
