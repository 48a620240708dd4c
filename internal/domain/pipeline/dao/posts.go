package dao

import (
	"github.com/RichDInfGrp/FimiliarVis/internal/domain/pipeline/entity"
	"github.com/RichDInfGrp/FimiliarVis/internal/normalize"
	"github.com/RichDInfGrp/FimiliarVis/internal/source"
)

// Column names of the daily-update posts export.
const (
	colPostedAt       = "posted_at"
	colContentPerf    = "Content Performance"
	colPostID         = "Post ID"
	colPostURL        = "Post URL"
	colText           = "Text"
	colImpressions    = "Impressions"
	colEngagements    = "Engagements"
	colEngagementRate = "Engagement Rate (%)"
	colPostFormat     = "post_format"
	colCommentsLatest = "comments_latest"
	colRepostsLatest  = "reposts_latest"
	colReactionLatest = "reactions_latest"
)

var postColumns = []string{
	colPostedAt, colContentPerf, colPostID, colPostURL, colText,
	colImpressions, colEngagements, colEngagementRate, colPostFormat,
	colCommentsLatest, colRepostsLatest, colReactionLatest,
}

// Posts loads the daily-update export: timestamps parsed, week buckets
// derived, and the five reaction sub-counts extracted from the nested
// Content Performance payload (malformed payload → all zero, never an error).
func (l *Loader) Posts() ([]entity.Post, error) {
	path, err := source.FindFile(l.dir, l.prefixes.DailyPosts)
	if err != nil {
		return nil, err
	}
	s, err := source.ReadSheet(path, "")
	if err != nil {
		return nil, err
	}
	if err := requireColumns(s, "daily-posts", postColumns...); err != nil {
		return nil, err
	}

	postedAt := s.ColumnIndex(colPostedAt)
	perf := s.ColumnIndex(colContentPerf)
	id := s.ColumnIndex(colPostID)
	url := s.ColumnIndex(colPostURL)
	text := s.ColumnIndex(colText)
	impressions := s.ColumnIndex(colImpressions)
	engagements := s.ColumnIndex(colEngagements)
	rate := s.ColumnIndex(colEngagementRate)
	format := s.ColumnIndex(colPostFormat)
	comments := s.ColumnIndex(colCommentsLatest)
	reposts := s.ColumnIndex(colRepostsLatest)
	reactions := s.ColumnIndex(colReactionLatest)

	posts := make([]entity.Post, 0, s.Len())
	for i := 0; i < s.Len(); i++ {
		when := normalize.ParseDateValue(s.Cell(i, postedAt))
		counts := normalize.ReactionCounts(s.Cell(i, perf))

		posts = append(posts, entity.Post{
			ID:             cellString(s.Cell(i, id)),
			URL:            cellString(s.Cell(i, url)),
			Text:           cellString(s.Cell(i, text)),
			PostedAt:       when,
			Week:           normalize.WeekOf(when),
			Impressions:    normalize.ParseNumber(s.Cell(i, impressions)),
			Engagements:    normalize.ParseNumber(s.Cell(i, engagements)),
			EngagementRate: normalize.ParseNumber(s.Cell(i, rate)),
			Format:         cellString(s.Cell(i, format)),
			Comments:       normalize.ParseNumber(s.Cell(i, comments)),
			Reposts:        normalize.ParseNumber(s.Cell(i, reposts)),
			Reactions:      normalize.ParseNumber(s.Cell(i, reactions)),
			CPLike:         counts["LIKE"],
			CPPraise:       counts["PRAISE"],
			CPEmpathy:      counts["EMPATHY"],
			CPInterest:     counts["INTEREST"],
			CPAppreciation: counts["APPRECIATION"],
		})
	}
	return posts, nil
}
