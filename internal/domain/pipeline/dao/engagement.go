package dao

import (
	"strings"

	"github.com/RichDInfGrp/FimiliarVis/internal/domain/pipeline/entity"
	"github.com/RichDInfGrp/FimiliarVis/internal/normalize"
	"github.com/RichDInfGrp/FimiliarVis/internal/source"
)

// Column names of the engagement export.
const (
	colNormalizedDate = "Normalized Date"
	colFormula        = "Formula"
	colReactionType   = "reactionType"
)

var engagementColumns = []string{colProfileURL, colNormalizedDate, colFormula, colReactionType}

// Engagements loads the engagement export: identity keys normalized, event
// dates parsed (unparseable → nil, row retained), week buckets derived, and
// the post reference column trimmed into PostID.
func (l *Loader) Engagements() ([]entity.Engagement, error) {
	path, err := source.FindFile(l.dir, l.prefixes.Engagement)
	if err != nil {
		return nil, err
	}
	s, err := source.ReadSheet(path, "")
	if err != nil {
		return nil, err
	}
	if err := requireColumns(s, "engagement", engagementColumns...); err != nil {
		return nil, err
	}

	url := s.ColumnIndex(colProfileURL)
	date := s.ColumnIndex(colNormalizedDate)
	formula := s.ColumnIndex(colFormula)
	reaction := s.ColumnIndex(colReactionType)

	engagements := make([]entity.Engagement, 0, s.Len())
	for i := 0; i < s.Len(); i++ {
		when := normalize.ParseDateValue(s.Cell(i, date))
		engagements = append(engagements, entity.Engagement{
			ProfileURL:   normalize.IdentityKey(cellString(s.Cell(i, url))),
			ReactionType: cellString(s.Cell(i, reaction)),
			Date:         when,
			Week:         normalize.WeekOf(when),
			PostID:       strings.TrimSpace(cellString(s.Cell(i, formula))),
		})
	}
	return engagements, nil
}
