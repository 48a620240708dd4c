// Package service holds the pipeline's business logic: the enrichment join
// and the aggregations that derive rollup tables from the entity tables.
// Every function is pure; ordering is deterministic with explicit sort keys.
package service

import (
	"github.com/RichDInfGrp/FimiliarVis/internal/domain/pipeline/entity"
	"github.com/RichDInfGrp/FimiliarVis/internal/normalize"
)

// Enrich left-joins contact attributes onto engagement events by identity
// key. Contacts are de-duplicated first (keeping the first occurrence in
// input order), so the output always has exactly one row per engagement:
// no engagement is ever dropped or duplicated. Unmatched rows get
// IsICP=false and ICPTier "Unknown".
func Enrich(engagements []entity.Engagement, contacts []entity.Contact) []entity.EnrichedEngagement {
	byKey := make(map[string]*entity.Contact, len(contacts))
	for i := range contacts {
		c := &contacts[i]
		if _, seen := byKey[c.ProfileURL]; !seen {
			byKey[c.ProfileURL] = c
		}
	}

	enriched := make([]entity.EnrichedEngagement, len(engagements))
	for i, e := range engagements {
		row := entity.EnrichedEngagement{
			Engagement: e,
			IsICP:      false,
			ICPTier:    normalize.TierUnknown,
		}
		if c, ok := byKey[e.ProfileURL]; ok {
			row.FullName = c.FullName
			row.Title = c.Title
			row.Country = c.Country
			row.Company = c.Company
			row.Industry = c.Industry
			row.Size = c.Size
			row.IsICP = c.IsICP
			row.ICPTier = c.ICPTier
		}
		enriched[i] = row
	}
	return enriched
}
