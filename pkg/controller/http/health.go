package http

import (
	"net/http"

	"github.com/m-mizutani/isoshelf/pkg/domain/interfaces"
	"github.com/m-mizutani/isoshelf/pkg/domain/model"
	"github.com/m-mizutani/isoshelf/pkg/domain/types"
)

const serviceName = "isoshelf"

// healthHandler reports liveness together with the catalog state. The status
// code is always 200; a failed load only marks the body as degraded.
func healthHandler(catalogUC interfaces.CatalogUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view := catalogUC.View("", "")
		writeJSON(r.Context(), w, model.NewHealthStatus(serviceName, types.Version, view), http.StatusOK)
	}
}
