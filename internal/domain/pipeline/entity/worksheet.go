package entity

import (
	"time"

	"github.com/RichDInfGrp/FimiliarVis/internal/sheet"
)

// TopPost is one row of the reshaped TOP POSTS sheet: a post from either the
// "Before" or "After" comparison block.
type TopPost struct {
	PostURL     string     `json:"post_url"`
	PublishDate *time.Time `json:"publish_date"`
	Impressions *float64   `json:"impressions"`
	Period      string     `json:"period"`
}

// Worksheet bundles the five tables read from the multi-sheet summary
// workbook. All but TopPosts are pass-through sheets with light coercion.
type Worksheet struct {
	Discovery       *sheet.Sheet
	EngagementDaily *sheet.Sheet
	TopPosts        []TopPost
	Followers       *sheet.Sheet
	Demographics    *sheet.Sheet
}
