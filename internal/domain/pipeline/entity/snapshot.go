package entity

import "time"

// Snapshot is one consistent view of every table the pipeline derives from
// the four source spreadsheets. A snapshot is immutable once built; the
// orchestrator hands the same snapshot to all callers until the source
// files change.
type Snapshot struct {
	RunID   string
	BuiltAt time.Time

	Contacts    []Contact
	Engagements []Engagement
	Posts       []Post
	Worksheet   Worksheet

	Enriched          []EnrichedEngagement
	EngagerSummary    []EngagerSummary
	WeeklyPosts       []WeeklyPostsRow
	WeeklyICP         []WeeklyICPRow
	ICPFirstSeen      []ICPFirstSeenRow
	ReactionBreakdown []ReactionCount
	WeeklyShare       []WeeklyShareRow
}

// KPIs is the scalar summary block rendered as kpis.json and shown on the
// dashboard home page.
type KPIs struct {
	ImpressionsTotal      int     `json:"impressions_total"`
	MembersReached        int     `json:"members_reached"`
	TotalPosts            int     `json:"total_posts"`
	TotalEngagements      int     `json:"total_engagements"`
	ICPContacts           int     `json:"icp_contacts"`
	UniqueEngagers        int     `json:"unique_engagers"`
	ICPEngagers           int     `json:"icp_engagers"`
	LatestFollowers       int     `json:"latest_followers"`
	NewFollowers          int     `json:"new_followers"`
	StartFollowers        int     `json:"start_followers"`
	AvgEngagementRate     float64 `json:"avg_engagement_rate"`
	AvgImpressions        float64 `json:"avg_impressions"`
	AvgEngagementsPerPost float64 `json:"avg_engagements_per_post"`
	ServiceStartDate      string  `json:"service_start_date"`
}
