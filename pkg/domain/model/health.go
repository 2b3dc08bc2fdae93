package model

import "time"

const (
	HealthOK       = "healthy"
	HealthDegraded = "degraded"
)

// HealthStatus is the /health response. Status is degraded while the last
// catalog load has failed.
type HealthStatus struct {
	Status  string        `json:"status"`
	Service string        `json:"service"`
	Version string        `json:"version"`
	Catalog CatalogHealth `json:"catalog"`
}

// CatalogHealth summarizes the catalog state for monitoring
type CatalogHealth struct {
	Loading     bool       `json:"loading"`
	Failed      bool       `json:"failed"`
	Records     int        `json:"records"`
	LastUpdated *time.Time `json:"last_updated,omitempty"`
}

// NewHealthStatus derives the health of the service from a catalog view
func NewHealthStatus(service, version string, view *CatalogView) *HealthStatus {
	h := &HealthStatus{
		Status:  HealthOK,
		Service: service,
		Version: version,
		Catalog: CatalogHealth{
			Loading: view.Loading,
			Failed:  view.Failed,
			Records: view.Total,
		},
	}
	if view.Failed {
		h.Status = HealthDegraded
	}
	if view.HasLastUpdated() {
		ts := view.LastUpdated
		h.Catalog.LastUpdated = &ts
	}
	return h
}
