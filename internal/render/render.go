// Package render turns a pipeline snapshot into the named JSON documents
// the dashboard consumes. The HTTP controller and the static exporter both
// serve these exact bytes, which is what keeps the live path and the build
// path field-for-field identical.
package render

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/RichDInfGrp/FimiliarVis/internal/domain/pipeline/entity"
)

// Names lists every document the renderer produces, in output order.
// Each name maps to <name>.json on disk.
var Names = []string{
	"kpis",
	"posts",
	"weekly_posts",
	"contacts_icp",
	"engager_summary",
	"weekly_icp",
	"icp_first_seen",
	"top_posts",
	"followers",
	"engagement_daily",
	"demographics",
	"enriched_reactions",
	"weekly_share",
}

// Set holds the rendered documents of one snapshot.
type Set struct {
	docs map[string][]byte
}

// Build renders every document from a snapshot. serviceStartDate is carried
// into the KPI block verbatim.
func Build(snap *entity.Snapshot, serviceStartDate string) (*Set, error) {
	payloads := map[string]any{
		"kpis":               buildKPIs(snap, serviceStartDate),
		"posts":              postRows(snap.Posts),
		"weekly_posts":       snap.WeeklyPosts,
		"contacts_icp":       icpContactRows(snap.Contacts),
		"engager_summary":    snap.EngagerSummary,
		"weekly_icp":         snap.WeeklyICP,
		"icp_first_seen":     snap.ICPFirstSeen,
		"top_posts":          snap.Worksheet.TopPosts,
		"followers":          snap.Worksheet.Followers.Records(),
		"engagement_daily":   snap.Worksheet.EngagementDaily.Records(),
		"demographics":       snap.Worksheet.Demographics.Records(),
		"enriched_reactions": snap.ReactionBreakdown,
		"weekly_share":       snap.WeeklyShare,
	}

	set := &Set{docs: make(map[string][]byte, len(payloads))}
	for _, name := range Names {
		body, err := json.MarshalIndent(payloads[name], "", "  ")
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", name, err)
		}
		set.docs[name] = body
	}
	return set, nil
}

// Get returns the rendered body of a named document.
func (s *Set) Get(name string) ([]byte, bool) {
	body, ok := s.docs[name]
	return body, ok
}

// postRow is the posts.json projection of a Post, with the dashboard's
// column names.
type postRow struct {
	PostURL        string     `json:"post_url"`
	PostID         string     `json:"post_id"`
	Engagements    *float64   `json:"engagements"`
	Impressions    *float64   `json:"impressions"`
	Comments       *float64   `json:"comments"`
	Reposts        *float64   `json:"reposts"`
	Reactions      *float64   `json:"reactions"`
	EngagementRate *float64   `json:"engagement_rate"`
	PostFormat     string     `json:"post_format"`
	PostedAt       *time.Time `json:"posted_at"`
	Week           *time.Time `json:"week"`
	Text           string     `json:"text"`
}

func postRows(posts []entity.Post) []postRow {
	rows := make([]postRow, len(posts))
	for i, p := range posts {
		rows[i] = postRow{
			PostURL:        p.URL,
			PostID:         p.ID,
			Engagements:    p.Engagements,
			Impressions:    p.Impressions,
			Comments:       p.Comments,
			Reposts:        p.Reposts,
			Reactions:      p.Reactions,
			EngagementRate: p.EngagementRate,
			PostFormat:     p.Format,
			PostedAt:       p.PostedAt,
			Week:           p.Week,
			Text:           p.Text,
		}
	}
	return rows
}

// icpContactRow is the contacts_icp.json projection: ICP contacts only,
// renamed columns.
type icpContactRow struct {
	Name       *string `json:"name"`
	ProfileURL string  `json:"profile_url"`
	Title      *string `json:"title"`
	Country    *string `json:"country"`
	Company    *string `json:"company"`
	Industry   *string `json:"industry"`
	Size       *string `json:"size"`
	ICPTier    string  `json:"icp_tier"`
}

func icpContactRows(contacts []entity.Contact) []icpContactRow {
	rows := make([]icpContactRow, 0, len(contacts))
	for _, c := range contacts {
		if !c.IsICP {
			continue
		}
		rows = append(rows, icpContactRow{
			Name:       c.FullName,
			ProfileURL: c.ProfileURL,
			Title:      c.Title,
			Country:    c.Country,
			Company:    c.Company,
			Industry:   c.Industry,
			Size:       c.Size,
			ICPTier:    c.ICPTier,
		})
	}
	return rows
}
