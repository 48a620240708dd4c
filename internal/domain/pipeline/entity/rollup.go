package entity

import "time"

// EngagerSummary is the per-person rollup of enriched engagement events.
type EngagerSummary struct {
	ProfileURL       string     `json:"profile_url"`
	FullName         *string    `json:"full_name"`
	Title            *string    `json:"title"`
	Company          *string    `json:"company"`
	Country          *string    `json:"country"`
	TotalEngagements int        `json:"total_engagements"`
	Likes            int        `json:"likes"`
	Comments         int        `json:"comments"`
	UniquePosts      int        `json:"unique_posts"`
	FirstEngagement  *time.Time `json:"first_engagement"`
	LastEngagement   *time.Time `json:"last_engagement"`
	IsICP            bool       `json:"is_icp"`
	ICPTier          string     `json:"icp_tier"`
}

// WeeklyPostsRow aggregates posts published in one week.
type WeeklyPostsRow struct {
	Week             time.Time `json:"week"`
	NumPosts         int       `json:"num_posts"`
	TotalImpressions float64   `json:"total_impressions"`
	TotalEngagements float64   `json:"total_engagements"`
	AvgImpressions   *float64  `json:"avg_impressions"`
	AvgEngagements   *float64  `json:"avg_engagements"`
	AvgRate          *float64  `json:"avg_rate"`
	TotalComments    float64   `json:"total_comments"`
	TotalReactions   float64   `json:"total_reactions"`
	TotalReposts     float64   `json:"total_reposts"`
}

// WeeklyICPRow counts ICP engagement events and distinct ICP engagers per week.
type WeeklyICPRow struct {
	Week              time.Time `json:"week"`
	ICPEngagements    int       `json:"icp_engagements"`
	UniqueICPEngagers int       `json:"unique_icp_engagers"`
}

// ICPFirstSeenRow records when an ICP contact first engaged.
type ICPFirstSeenRow struct {
	ProfileURL      string     `json:"profile_url"`
	FirstEngagement *time.Time `json:"first_engagement"`
	FullName        *string    `json:"full_name"`
	Company         *string    `json:"company"`
	Title           *string    `json:"title"`
	ICPTier         string     `json:"icp_tier"`
}

// ReactionCount is one reaction type's event count among ICP engagers.
type ReactionCount struct {
	ReactionType string `json:"reactionType"`
	Count        int    `json:"count"`
}

// WeeklyShareRow counts engagement events per week split into the ICP and
// Non-ICP categories, feeding the weekly share chart.
type WeeklyShareRow struct {
	Week        time.Time `json:"week"`
	Category    string    `json:"category"`
	Engagements int       `json:"engagements"`
}
