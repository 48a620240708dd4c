package dao

import (
	"github.com/RichDInfGrp/FimiliarVis/internal/domain/pipeline/entity"
	"github.com/RichDInfGrp/FimiliarVis/internal/normalize"
	"github.com/RichDInfGrp/FimiliarVis/internal/source"
)

// Column names of the contacts/enrichment export.
const (
	colProfileURL  = "profile_url"
	colICPBroad    = "ICP Broad?"
	colICPGlobal   = "ICP Global?"
	colICPSpecific = "ICP Specific?"
	colFullName    = "full_name"
	colTitle       = "Title Test"
	colCountry     = "Country person"
	colCompany     = "Company Name Test"
	colIndustry    = "Company Industry"
	colSize        = "Size"
)

var contactColumns = []string{
	colProfileURL, colICPBroad, colICPGlobal, colICPSpecific,
	colFullName, colTitle, colCountry, colCompany, colIndustry, colSize,
}

// Contacts loads the contacts/enrichment export: identity keys normalized,
// is_icp and icp_tier derived from the three raw flag columns.
func (l *Loader) Contacts() ([]entity.Contact, error) {
	path, err := source.FindFile(l.dir, l.prefixes.Contacts)
	if err != nil {
		return nil, err
	}
	s, err := source.ReadSheet(path, "")
	if err != nil {
		return nil, err
	}
	if err := requireColumns(s, "contacts", contactColumns...); err != nil {
		return nil, err
	}

	url := s.ColumnIndex(colProfileURL)
	broad := s.ColumnIndex(colICPBroad)
	global := s.ColumnIndex(colICPGlobal)
	specific := s.ColumnIndex(colICPSpecific)
	name := s.ColumnIndex(colFullName)
	title := s.ColumnIndex(colTitle)
	country := s.ColumnIndex(colCountry)
	company := s.ColumnIndex(colCompany)
	industry := s.ColumnIndex(colIndustry)
	size := s.ColumnIndex(colSize)

	contacts := make([]entity.Contact, 0, s.Len())
	for i := 0; i < s.Len(); i++ {
		b := cellString(s.Cell(i, broad))
		g := cellString(s.Cell(i, global))
		sp := cellString(s.Cell(i, specific))

		contacts = append(contacts, entity.Contact{
			ProfileURL:  normalize.IdentityKey(cellString(s.Cell(i, url))),
			FullName:    cellStringPtr(s.Cell(i, name)),
			Title:       cellStringPtr(s.Cell(i, title)),
			Country:     cellStringPtr(s.Cell(i, country)),
			Company:     cellStringPtr(s.Cell(i, company)),
			Industry:    cellStringPtr(s.Cell(i, industry)),
			Size:        cellStringPtr(s.Cell(i, size)),
			ICPBroad:    b,
			ICPGlobal:   g,
			ICPSpecific: sp,
			IsICP:       normalize.IsICP(b, g, sp),
			ICPTier:     normalize.ICPTier(b, g, sp),
		})
	}
	return contacts, nil
}
