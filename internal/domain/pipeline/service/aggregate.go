package service

import (
	"sort"
	"time"

	"github.com/RichDInfGrp/FimiliarVis/internal/domain/pipeline/entity"
)

// BuildEngagerSummary groups enriched engagement by identity key: totals,
// like/comment counts, first/last event, distinct posts, and the first
// non-null contact attribute per group. Ordered by total engagements
// descending; ties keep the key's first-appearance order.
func BuildEngagerSummary(enriched []entity.EnrichedEngagement) []entity.EngagerSummary {
	index := map[string]int{}
	summaries := make([]entity.EngagerSummary, 0)
	posts := make([]map[string]struct{}, 0)

	for _, e := range enriched {
		i, ok := index[e.ProfileURL]
		if !ok {
			i = len(summaries)
			index[e.ProfileURL] = i
			summaries = append(summaries, entity.EngagerSummary{
				ProfileURL: e.ProfileURL,
				IsICP:      e.IsICP,
				ICPTier:    e.ICPTier,
			})
			posts = append(posts, map[string]struct{}{})
		}
		s := &summaries[i]

		s.TotalEngagements++
		switch e.ReactionType {
		case "LIKE":
			s.Likes++
		case "COMMENT":
			s.Comments++
		}
		s.FirstEngagement = minTime(s.FirstEngagement, e.Date)
		s.LastEngagement = maxTime(s.LastEngagement, e.Date)
		posts[i][e.PostID] = struct{}{}

		if s.FullName == nil {
			s.FullName = e.FullName
		}
		if s.Title == nil {
			s.Title = e.Title
		}
		if s.Company == nil {
			s.Company = e.Company
		}
		if s.Country == nil {
			s.Country = e.Country
		}
	}

	for i := range summaries {
		summaries[i].UniquePosts = len(posts[i])
	}
	sort.SliceStable(summaries, func(a, b int) bool {
		return summaries[a].TotalEngagements > summaries[b].TotalEngagements
	})
	return summaries
}

// BuildWeeklyPosts aggregates posts by week bucket: counts, impression and
// engagement sums and means, mean engagement rate, and latest-count sums.
// Posts with no week (unparseable timestamp) are skipped. Ordered by week
// ascending.
func BuildWeeklyPosts(posts []entity.Post) []entity.WeeklyPostsRow {
	type acc struct {
		row            entity.WeeklyPostsRow
		nImpressions   int
		nEngagements   int
		sumRate        float64
		nRate          int
		sumImpressions float64
		sumEngagements float64
	}
	byWeek := map[time.Time]*acc{}

	for _, p := range posts {
		if p.Week == nil {
			continue
		}
		a, ok := byWeek[*p.Week]
		if !ok {
			a = &acc{row: entity.WeeklyPostsRow{Week: *p.Week}}
			byWeek[*p.Week] = a
		}
		if p.ID != "" {
			a.row.NumPosts++
		}
		if p.Impressions != nil {
			a.sumImpressions += *p.Impressions
			a.nImpressions++
		}
		if p.Engagements != nil {
			a.sumEngagements += *p.Engagements
			a.nEngagements++
		}
		if p.EngagementRate != nil {
			a.sumRate += *p.EngagementRate
			a.nRate++
		}
		if p.Comments != nil {
			a.row.TotalComments += *p.Comments
		}
		if p.Reactions != nil {
			a.row.TotalReactions += *p.Reactions
		}
		if p.Reposts != nil {
			a.row.TotalReposts += *p.Reposts
		}
	}

	weeks := sortedWeeks(byWeek)
	rows := make([]entity.WeeklyPostsRow, 0, len(weeks))
	for _, w := range weeks {
		a := byWeek[w]
		a.row.TotalImpressions = a.sumImpressions
		a.row.TotalEngagements = a.sumEngagements
		a.row.AvgImpressions = mean(a.sumImpressions, a.nImpressions)
		a.row.AvgEngagements = mean(a.sumEngagements, a.nEngagements)
		a.row.AvgRate = mean(a.sumRate, a.nRate)
		rows = append(rows, a.row)
	}
	return rows
}

// BuildWeeklyICP counts ICP engagement events and distinct ICP engagers per
// week. Empty ICP input yields an empty table, not an error.
func BuildWeeklyICP(enriched []entity.EnrichedEngagement) []entity.WeeklyICPRow {
	type acc struct {
		count    int
		engagers map[string]struct{}
	}
	byWeek := map[time.Time]*acc{}

	for _, e := range enriched {
		if !e.IsICP || e.Week == nil {
			continue
		}
		a, ok := byWeek[*e.Week]
		if !ok {
			a = &acc{engagers: map[string]struct{}{}}
			byWeek[*e.Week] = a
		}
		a.count++
		a.engagers[e.ProfileURL] = struct{}{}
	}

	rows := make([]entity.WeeklyICPRow, 0, len(byWeek))
	for _, w := range sortedWeeks(byWeek) {
		a := byWeek[w]
		rows = append(rows, entity.WeeklyICPRow{
			Week:              w,
			ICPEngagements:    a.count,
			UniqueICPEngagers: len(a.engagers),
		})
	}
	return rows
}

// BuildICPFirstSeen finds each ICP engager's earliest engagement, with the
// first non-null contact attributes. Ordered by first engagement ascending,
// rows with no parseable date last.
func BuildICPFirstSeen(enriched []entity.EnrichedEngagement) []entity.ICPFirstSeenRow {
	index := map[string]int{}
	rows := make([]entity.ICPFirstSeenRow, 0)

	for _, e := range enriched {
		if !e.IsICP {
			continue
		}
		i, ok := index[e.ProfileURL]
		if !ok {
			i = len(rows)
			index[e.ProfileURL] = i
			rows = append(rows, entity.ICPFirstSeenRow{
				ProfileURL: e.ProfileURL,
				ICPTier:    e.ICPTier,
			})
		}
		r := &rows[i]
		r.FirstEngagement = minTime(r.FirstEngagement, e.Date)
		if r.FullName == nil {
			r.FullName = e.FullName
		}
		if r.Company == nil {
			r.Company = e.Company
		}
		if r.Title == nil {
			r.Title = e.Title
		}
	}

	sort.SliceStable(rows, func(a, b int) bool {
		ta, tb := rows[a].FirstEngagement, rows[b].FirstEngagement
		if ta == nil {
			return false
		}
		if tb == nil {
			return true
		}
		return ta.Before(*tb)
	})
	return rows
}

// BuildReactionBreakdown counts ICP engagement events per reaction type,
// ordered by count descending (ties keep first-appearance order).
func BuildReactionBreakdown(enriched []entity.EnrichedEngagement) []entity.ReactionCount {
	index := map[string]int{}
	rows := make([]entity.ReactionCount, 0)

	for _, e := range enriched {
		if !e.IsICP {
			continue
		}
		i, ok := index[e.ReactionType]
		if !ok {
			i = len(rows)
			index[e.ReactionType] = i
			rows = append(rows, entity.ReactionCount{ReactionType: e.ReactionType})
		}
		rows[i].Count++
	}

	sort.SliceStable(rows, func(a, b int) bool {
		return rows[a].Count > rows[b].Count
	})
	return rows
}

// BuildWeeklyShare counts engagement events per (week, ICP/Non-ICP)
// category. Ordered by week ascending with Non-ICP before ICP, matching the
// share chart's series order.
func BuildWeeklyShare(enriched []entity.EnrichedEngagement) []entity.WeeklyShareRow {
	type key struct {
		week  time.Time
		isICP bool
	}
	counts := map[key]int{}
	for _, e := range enriched {
		if e.Week == nil {
			continue
		}
		counts[key{*e.Week, e.IsICP}]++
	}

	keys := make([]key, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(a, b int) bool {
		if !keys[a].week.Equal(keys[b].week) {
			return keys[a].week.Before(keys[b].week)
		}
		return !keys[a].isICP && keys[b].isICP
	})

	rows := make([]entity.WeeklyShareRow, 0, len(keys))
	for _, k := range keys {
		category := "Non-ICP"
		if k.isICP {
			category = "ICP"
		}
		rows = append(rows, entity.WeeklyShareRow{
			Week:        k.week,
			Category:    category,
			Engagements: counts[k],
		})
	}
	return rows
}

func sortedWeeks[V any](m map[time.Time]V) []time.Time {
	weeks := make([]time.Time, 0, len(m))
	for w := range m {
		weeks = append(weeks, w)
	}
	sort.Slice(weeks, func(a, b int) bool { return weeks[a].Before(weeks[b]) })
	return weeks
}

func mean(sum float64, n int) *float64 {
	if n == 0 {
		return nil
	}
	m := sum / float64(n)
	return &m
}

func minTime(a, b *time.Time) *time.Time {
	if b == nil {
		return a
	}
	if a == nil || b.Before(*a) {
		return b
	}
	return a
}

func maxTime(a, b *time.Time) *time.Time {
	if b == nil {
		return a
	}
	if a == nil || b.After(*a) {
		return b
	}
	return a
}
