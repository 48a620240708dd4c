package entity

import "time"

// Post represents one published post from the daily-update export.
// Numeric fields are nil when the source cell was empty or non-numeric.
type Post struct {
	ID             string     `json:"post_id"`
	URL            string     `json:"post_url"`
	Text           string     `json:"text"`
	PostedAt       *time.Time `json:"posted_at"`
	Week           *time.Time `json:"week"`
	Impressions    *float64   `json:"impressions"`
	Engagements    *float64   `json:"engagements"`
	EngagementRate *float64   `json:"engagement_rate"`
	Format         string     `json:"post_format"`
	Comments       *float64   `json:"comments"`
	Reposts        *float64   `json:"reposts"`
	Reactions      *float64   `json:"reactions"`

	// Reaction sub-counts extracted from the nested Content Performance
	// payload; zero when the payload is missing or malformed.
	CPLike         int `json:"cp_like"`
	CPPraise       int `json:"cp_praise"`
	CPEmpathy      int `json:"cp_empathy"`
	CPInterest     int `json:"cp_interest"`
	CPAppreciation int `json:"cp_appreciation"`
}
