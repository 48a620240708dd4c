package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RichDInfGrp/FimiliarVis/internal/domain/pipeline/entity"
)

func strPtr(s string) *string { return &s }

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func weekOf(d *time.Time) *time.Time {
	if d == nil {
		return nil
	}
	offset := (int(d.Weekday()) + 6) % 7
	w := d.AddDate(0, 0, -offset)
	return &w
}

func event(url, reaction string, date *time.Time, postID string) entity.Engagement {
	return entity.Engagement{
		ProfileURL:   url,
		ReactionType: reaction,
		Date:         date,
		Week:         weekOf(date),
		PostID:       postID,
	}
}

func contact(url, tier string, name string) entity.Contact {
	return entity.Contact{
		ProfileURL: url,
		FullName:   strPtr(name),
		IsICP:      tier != "Non-ICP",
		ICPTier:    tier,
	}
}

func TestEnrichRowCountInvariant(t *testing.T) {
	engagements := []entity.Engagement{
		event("https://x/a", "LIKE", datePtr(2026, 1, 20), "p1"),
		event("https://x/b", "COMMENT", datePtr(2026, 1, 21), "p1"),
		event("https://x/a", "PRAISE", datePtr(2026, 1, 22), "p2"),
	}
	contacts := []entity.Contact{
		contact("https://x/a", "Specific", "Ada"),
		contact("https://x/a", "Broad", "Ada Duplicate"),
	}

	enriched := Enrich(engagements, contacts)
	require.Len(t, enriched, len(engagements), "join never drops or duplicates rows")

	// Duplicate contacts: first occurrence wins.
	assert.Equal(t, "Specific", enriched[0].ICPTier)
	assert.Equal(t, "Ada", *enriched[0].FullName)
	assert.Equal(t, "Specific", enriched[2].ICPTier)

	// Unmatched: Unknown tier, not ICP, null contact fields.
	assert.False(t, enriched[1].IsICP)
	assert.Equal(t, "Unknown", enriched[1].ICPTier)
	assert.Nil(t, enriched[1].FullName)
}

func TestEnrichEmptyContacts(t *testing.T) {
	engagements := []entity.Engagement{
		event("https://x/a", "LIKE", datePtr(2026, 1, 20), "p1"),
	}
	enriched := Enrich(engagements, nil)
	require.Len(t, enriched, 1)
	assert.False(t, enriched[0].IsICP)
	assert.Equal(t, "Unknown", enriched[0].ICPTier)
}

func TestEndToEndScenario(t *testing.T) {
	// One Specific-tier contact, one LIKE on 2026-01-20 (a Tuesday).
	contacts := []entity.Contact{contact("https://x/a", "Specific", "Ada")}
	engagements := []entity.Engagement{
		event("https://x/a", "LIKE", datePtr(2026, 1, 20), "p1"),
	}

	enriched := Enrich(engagements, contacts)
	require.Len(t, enriched, 1)
	assert.True(t, enriched[0].IsICP)
	assert.Equal(t, "Specific", enriched[0].ICPTier)

	summary := BuildEngagerSummary(enriched)
	require.Len(t, summary, 1)
	assert.Equal(t, 1, summary[0].TotalEngagements)
	assert.Equal(t, 1, summary[0].Likes)
	assert.Equal(t, 0, summary[0].Comments)

	weekly := BuildWeeklyICP(enriched)
	require.Len(t, weekly, 1)
	assert.Equal(t, time.Date(2026, 1, 19, 0, 0, 0, 0, time.UTC), weekly[0].Week)
	assert.Equal(t, 1, weekly[0].ICPEngagements)
	assert.Equal(t, 1, weekly[0].UniqueICPEngagers)
}

func TestBuildEngagerSummary(t *testing.T) {
	contacts := []entity.Contact{
		contact("https://x/a", "Specific", "Ada"),
		contact("https://x/b", "Non-ICP", "Bob"),
	}
	engagements := []entity.Engagement{
		event("https://x/b", "LIKE", datePtr(2026, 1, 20), "p1"),
		event("https://x/a", "LIKE", datePtr(2026, 1, 21), "p1"),
		event("https://x/a", "COMMENT", datePtr(2026, 1, 19), "p2"),
		event("https://x/a", "LIKE", nil, "p2"),
	}
	summary := BuildEngagerSummary(Enrich(engagements, contacts))
	require.Len(t, summary, 2)

	// Sorted by total engagements descending.
	a := summary[0]
	assert.Equal(t, "https://x/a", a.ProfileURL)
	assert.Equal(t, 3, a.TotalEngagements)
	assert.Equal(t, 2, a.Likes)
	assert.Equal(t, 1, a.Comments)
	assert.Equal(t, 2, a.UniquePosts)
	require.NotNil(t, a.FirstEngagement)
	assert.Equal(t, 19, a.FirstEngagement.Day(), "null dates ignored by min/max")
	assert.Equal(t, 21, a.LastEngagement.Day())
	assert.Equal(t, "Ada", *a.FullName)
	assert.True(t, a.IsICP)

	b := summary[1]
	assert.Equal(t, "https://x/b", b.ProfileURL)
	assert.Equal(t, 1, b.TotalEngagements)
}

func TestBuildEngagerSummaryTieOrder(t *testing.T) {
	engagements := []entity.Engagement{
		event("https://x/z", "LIKE", datePtr(2026, 1, 20), "p1"),
		event("https://x/a", "LIKE", datePtr(2026, 1, 20), "p1"),
		event("https://x/m", "LIKE", datePtr(2026, 1, 20), "p1"),
	}
	summary := BuildEngagerSummary(Enrich(engagements, nil))
	require.Len(t, summary, 3)

	// Equal counts keep first-appearance order, not key order.
	assert.Equal(t, "https://x/z", summary[0].ProfileURL)
	assert.Equal(t, "https://x/a", summary[1].ProfileURL)
	assert.Equal(t, "https://x/m", summary[2].ProfileURL)
}

func floatPtr(f float64) *float64 { return &f }

func TestBuildWeeklyPosts(t *testing.T) {
	w1 := datePtr(2026, 1, 20)
	w2 := datePtr(2026, 1, 27)
	posts := []entity.Post{
		{ID: "p1", PostedAt: w1, Week: weekOf(w1), Impressions: floatPtr(1000), Engagements: floatPtr(40), EngagementRate: floatPtr(4), Comments: floatPtr(5), Reactions: floatPtr(30), Reposts: floatPtr(2)},
		{ID: "p2", PostedAt: w1, Week: weekOf(w1), Impressions: floatPtr(2000), Engagements: floatPtr(60), EngagementRate: floatPtr(3), Comments: floatPtr(3), Reactions: floatPtr(50), Reposts: floatPtr(1)},
		{ID: "p3", PostedAt: w2, Week: weekOf(w2), Impressions: nil, Engagements: floatPtr(10), EngagementRate: floatPtr(2), Comments: floatPtr(1), Reactions: floatPtr(8), Reposts: floatPtr(0)},
		{ID: "p4", PostedAt: nil, Week: nil, Impressions: floatPtr(999)}, // no week: skipped
	}

	weekly := BuildWeeklyPosts(posts)
	require.Len(t, weekly, 2)

	first := weekly[0]
	assert.Equal(t, time.Date(2026, 1, 19, 0, 0, 0, 0, time.UTC), first.Week)
	assert.Equal(t, 2, first.NumPosts)
	assert.Equal(t, 3000.0, first.TotalImpressions)
	assert.Equal(t, 100.0, first.TotalEngagements)
	require.NotNil(t, first.AvgImpressions)
	assert.Equal(t, 1500.0, *first.AvgImpressions)
	require.NotNil(t, first.AvgRate)
	assert.Equal(t, 3.5, *first.AvgRate)
	assert.Equal(t, 8.0, first.TotalComments)
	assert.Equal(t, 80.0, first.TotalReactions)
	assert.Equal(t, 3.0, first.TotalReposts)

	second := weekly[1]
	assert.Equal(t, time.Date(2026, 1, 26, 0, 0, 0, 0, time.UTC), second.Week)
	assert.Nil(t, second.AvgImpressions, "no numeric impressions in the group")
	assert.Equal(t, 0.0, second.TotalImpressions)
}

func TestBuildWeeklyICPEmpty(t *testing.T) {
	// No ICP rows: empty table, not nil and not an error.
	engagements := []entity.Engagement{
		event("https://x/a", "LIKE", datePtr(2026, 1, 20), "p1"),
	}
	weekly := BuildWeeklyICP(Enrich(engagements, nil))
	assert.NotNil(t, weekly)
	assert.Empty(t, weekly)
}

func TestBuildICPFirstSeen(t *testing.T) {
	contacts := []entity.Contact{
		contact("https://x/a", "Specific", "Ada"),
		contact("https://x/b", "Broad", "Bob"),
	}
	engagements := []entity.Engagement{
		event("https://x/b", "LIKE", datePtr(2026, 1, 25), "p1"),
		event("https://x/a", "LIKE", datePtr(2026, 1, 20), "p1"),
		event("https://x/a", "COMMENT", datePtr(2026, 1, 28), "p2"),
		event("https://x/c", "LIKE", datePtr(2026, 1, 1), "p1"), // not ICP
	}

	firstSeen := BuildICPFirstSeen(Enrich(engagements, contacts))
	require.Len(t, firstSeen, 2)

	// Ascending by first engagement.
	assert.Equal(t, "https://x/a", firstSeen[0].ProfileURL)
	assert.Equal(t, 20, firstSeen[0].FirstEngagement.Day())
	assert.Equal(t, "Specific", firstSeen[0].ICPTier)
	assert.Equal(t, "https://x/b", firstSeen[1].ProfileURL)
}

func TestBuildICPFirstSeenEmpty(t *testing.T) {
	rows := BuildICPFirstSeen(nil)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestBuildReactionBreakdown(t *testing.T) {
	contacts := []entity.Contact{contact("https://x/a", "Global", "Ada")}
	engagements := []entity.Engagement{
		event("https://x/a", "COMMENT", datePtr(2026, 1, 20), "p1"),
		event("https://x/a", "LIKE", datePtr(2026, 1, 20), "p1"),
		event("https://x/a", "LIKE", datePtr(2026, 1, 21), "p2"),
		event("https://x/z", "PRAISE", datePtr(2026, 1, 21), "p2"), // not ICP
	}

	breakdown := BuildReactionBreakdown(Enrich(engagements, contacts))
	require.Len(t, breakdown, 2)
	assert.Equal(t, entity.ReactionCount{ReactionType: "LIKE", Count: 2}, breakdown[0])
	assert.Equal(t, entity.ReactionCount{ReactionType: "COMMENT", Count: 1}, breakdown[1])
}

func TestBuildReactionBreakdownEmpty(t *testing.T) {
	rows := BuildReactionBreakdown(nil)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestBuildWeeklyShare(t *testing.T) {
	contacts := []entity.Contact{contact("https://x/a", "Specific", "Ada")}
	engagements := []entity.Engagement{
		event("https://x/a", "LIKE", datePtr(2026, 1, 20), "p1"),
		event("https://x/b", "LIKE", datePtr(2026, 1, 21), "p1"),
		event("https://x/b", "COMMENT", datePtr(2026, 1, 27), "p2"),
		event("https://x/c", "LIKE", nil, "p3"), // no week: skipped
	}

	share := BuildWeeklyShare(Enrich(engagements, contacts))
	require.Len(t, share, 3)

	// Week ascending, Non-ICP before ICP within a week.
	week1 := time.Date(2026, 1, 19, 0, 0, 0, 0, time.UTC)
	week2 := time.Date(2026, 1, 26, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, entity.WeeklyShareRow{Week: week1, Category: "Non-ICP", Engagements: 1}, share[0])
	assert.Equal(t, entity.WeeklyShareRow{Week: week1, Category: "ICP", Engagements: 1}, share[1])
	assert.Equal(t, entity.WeeklyShareRow{Week: week2, Category: "Non-ICP", Engagements: 1}, share[2])
}
