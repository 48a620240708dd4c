package entity

import "time"

// Engagement represents one reaction or comment event from the engagement
// export. Date and Week are nil when the source date could not be parsed.
type Engagement struct {
	ProfileURL   string     `json:"profile_url"`
	ReactionType string     `json:"reactionType"`
	Date         *time.Time `json:"date"`
	Week         *time.Time `json:"week"`
	PostID       string     `json:"post_id"`
}

// EnrichedEngagement is an Engagement with contact attributes attached via
// left join on ProfileURL. Unmatched rows carry IsICP=false, ICPTier
// "Unknown", and nil contact fields.
type EnrichedEngagement struct {
	Engagement

	FullName *string `json:"full_name"`
	Title    *string `json:"title"`
	Country  *string `json:"country"`
	Company  *string `json:"company"`
	Industry *string `json:"industry"`
	Size     *string `json:"size"`
	IsICP    bool    `json:"is_icp"`
	ICPTier  string  `json:"icp_tier"`
}
