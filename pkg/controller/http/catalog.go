package http

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/isoshelf/pkg/domain/interfaces"
	"github.com/m-mizutani/isoshelf/pkg/domain/model"
	"github.com/m-mizutani/isoshelf/pkg/utils/errutil"
	"github.com/m-mizutani/isoshelf/pkg/utils/format"
)

// CatalogHandler serves the catalog page and its API
type CatalogHandler struct {
	catalogUC interfaces.CatalogUseCase
	renderer  *Renderer
	formatter *format.Formatter
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(catalogUC interfaces.CatalogUseCase, renderer *Renderer, formatter *format.Formatter) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: catalogUC,
		renderer:  renderer,
		formatter: formatter,
	}
}

func viewFromQuery(uc interfaces.CatalogUseCase, r *http.Request) *model.CatalogView {
	q := r.URL.Query()
	return uc.View(q.Get("q"), model.SortMode(q.Get("sort")))
}

// Page renders the full catalog page
func (h *CatalogHandler) Page(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	view := viewFromQuery(h.catalogUC, r)

	var buf bytes.Buffer
	if err := h.renderer.Page(&buf, view); err != nil {
		ctxlog.From(ctx).Error("Failed to render catalog page", "error", err)
		http.Error(w, "Cannot render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// Files renders only the card list, used by the page when search or sort changes
func (h *CatalogHandler) Files(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	view := viewFromQuery(h.catalogUC, r)

	var buf bytes.Buffer
	if err := h.renderer.Files(&buf, view.Records); err != nil {
		ctxlog.From(ctx).Error("Failed to render file list", "error", err)
		http.Error(w, "Cannot render files", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

type fileResponse struct {
	*model.FileRecord
	Extension       string `json:"extension"`
	SizeText        string `json:"size_text"`
	LastUpdatedText string `json:"last_updated_text"`
}

type catalogResponse struct {
	*model.CatalogView
	Records         []*fileResponse `json:"records"`
	LastUpdatedText string          `json:"last_updated_text,omitempty"`
}

// API returns the catalog view as JSON
func (h *CatalogHandler) API(w http.ResponseWriter, r *http.Request) {
	view := viewFromQuery(h.catalogUC, r)

	resp := &catalogResponse{
		CatalogView: view,
		Records:     make([]*fileResponse, 0, len(view.Records)),
	}
	if view.HasLastUpdated() {
		resp.LastUpdatedText = h.formatter.Timestamp(view.LastUpdated)
	}
	for _, rec := range view.Records {
		resp.Records = append(resp.Records, &fileResponse{
			FileRecord:      rec,
			Extension:       rec.Extension(),
			SizeText:        h.formatter.Size(rec.SizeBytes),
			LastUpdatedText: h.formatter.Timestamp(rec.LastUpdated),
		})
	}

	writeJSON(r.Context(), w, resp, http.StatusOK)
}

// Refresh reloads the catalog from the repository
func (h *CatalogHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	// The working set is shared by all viewers; a dropped client must not cancel the load
	if err := h.catalogUC.Load(context.WithoutCancel(ctx)); err != nil {
		errutil.Handle(ctx, "Catalog refresh failed", err)
		writeError(ctx, w, err, http.StatusBadGateway)
		return
	}

	ctxlog.From(ctx).Debug("Catalog refreshed", "duration_ms", time.Since(start).Milliseconds())
	writeJSON(ctx, w, map[string]string{
		"status": "ok",
	}, http.StatusOK)
}
