package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	controller "github.com/m-mizutani/isoshelf/pkg/controller/http"
	"github.com/m-mizutani/isoshelf/pkg/domain/model"
)

func TestHealthEndpoint(t *testing.T) {
	lastUpdated := time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		view        model.CatalogView
		wantStatus  string
		wantRecords int
		wantUpdated bool
	}{
		{
			name:        "loaded catalog is healthy",
			view:        model.CatalogView{Total: 3, LastUpdated: lastUpdated},
			wantStatus:  model.HealthOK,
			wantRecords: 3,
			wantUpdated: true,
		},
		{
			name:       "initial load in progress is healthy",
			view:       model.CatalogView{Loading: true},
			wantStatus: model.HealthOK,
		},
		{
			name:        "failed load is degraded",
			view:        model.CatalogView{Failed: true, Error: "HTTP 404", LastUpdated: lastUpdated},
			wantStatus:  model.HealthDegraded,
			wantUpdated: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &MockCatalogUseCase{view: tt.view}
			server, err := controller.NewServer(context.Background(), uc, controller.WithAddr("localhost:0"))
			gt.NoError(t, err)

			w := serve(server, http.MethodGet, "/health")
			gt.Value(t, w.Code).Equal(http.StatusOK)
			gt.String(t, w.Header().Get("Content-Type")).Contains("application/json")

			var status model.HealthStatus
			gt.NoError(t, json.NewDecoder(w.Body).Decode(&status))
			gt.Value(t, status.Status).Equal(tt.wantStatus)
			gt.Value(t, status.Service).Equal("isoshelf")
			gt.True(t, status.Version != "")
			gt.Value(t, status.Catalog.Loading).Equal(tt.view.Loading)
			gt.Value(t, status.Catalog.Failed).Equal(tt.view.Failed)
			gt.Value(t, status.Catalog.Records).Equal(tt.wantRecords)
			gt.Value(t, status.Catalog.LastUpdated != nil).Equal(tt.wantUpdated)
			gt.Value(t, uc.loadCalls).Equal(0)
		})
	}
}
