package model

import "time"

// CatalogView is a snapshot of the catalog presentation state
type CatalogView struct {
	Loading       bool          `json:"loading"`
	Failed        bool          `json:"failed"`
	Error         string        `json:"error,omitempty"`
	RepositoryURL string        `json:"repository_url"`
	LastUpdated   time.Time     `json:"last_updated"`
	Search        string        `json:"search"`
	Sort          SortMode      `json:"sort"`
	Records       []*FileRecord `json:"records"`
	Total         int           `json:"total"`
}

// HasLastUpdated reports whether any successful load has set the label
func (v *CatalogView) HasLastUpdated() bool {
	return !v.LastUpdated.IsZero()
}
