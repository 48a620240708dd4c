package entity

// Contact represents one known person from the contacts/enrichment export.
// ProfileURL is the normalized identity key used by every join.
type Contact struct {
	ProfileURL string  `json:"profile_url"`
	FullName   *string `json:"full_name"`
	Title      *string `json:"title"`
	Country    *string `json:"country"`
	Company    *string `json:"company"`
	Industry   *string `json:"industry"`
	Size       *string `json:"size"`

	// Raw ICP flag columns, "Yes" or anything else.
	ICPBroad    string `json:"-"`
	ICPGlobal   string `json:"-"`
	ICPSpecific string `json:"-"`

	IsICP   bool   `json:"is_icp"`
	ICPTier string `json:"icp_tier"`
}
