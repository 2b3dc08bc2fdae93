package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/isoshelf/pkg/domain/interfaces"
	"github.com/m-mizutani/isoshelf/pkg/domain/model"
	"golang.org/x/text/language"
)

// Catalog holds the working set of disk images and its presentation state
type Catalog struct {
	client interfaces.ContentsClient
	source model.Source
	lang   language.Tag

	mu          sync.RWMutex
	records     []*model.FileRecord
	repoURL     string
	lastUpdated time.Time
	issued      uint64 // generation of the most recently started load
	loading     bool
	failed      bool
	lastErr     string
}

// CatalogOption is a functional option for Catalog
type CatalogOption func(*Catalog)

// WithLanguage sets the language used for name ordering
func WithLanguage(tag language.Tag) CatalogOption {
	return func(c *Catalog) {
		c.lang = tag
	}
}

// NewCatalog creates a new Catalog for src
func NewCatalog(client interfaces.ContentsClient, src model.Source, opts ...CatalogOption) *Catalog {
	c := &Catalog{
		client:  client,
		source:  src,
		lang:    language.English,
		repoURL: src.RepositoryURL(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load fetches the folder listing and replaces the working set. If another
// load starts before this one finishes, only the later result is applied.
func (c *Catalog) Load(ctx context.Context) error {
	gen := c.begin()
	defer c.finish(gen)

	logger := ctxlog.From(ctx).With("load_id", uuid.NewString(), "generation", gen)
	ctx = ctxlog.With(ctx, logger)

	logger.Info("Loading catalog",
		"owner", c.source.Owner,
		"repo", c.source.Repo,
		"folder", c.source.Folder,
		"branch", c.source.Branch,
	)

	entries, err := c.client.ListDirectory(ctx, c.source)
	if err != nil {
		var fetchErr *model.FetchError
		if !errors.As(err, &fetchErr) {
			fetchErr = &model.FetchError{Err: err}
		}

		c.fail(gen, fetchErr)
		logger.Warn("Failed to load catalog", "error", fetchErr, "status", fetchErr.StatusCode)
		return fetchErr
	}

	records := BuildRecords(entries, c.source)

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.issued {
		logger.Debug("Discarding superseded catalog load", "latest", c.issued)
		return nil
	}

	c.records = records
	c.failed = false
	c.lastErr = ""
	c.repoURL = c.source.RepositoryURL()
	if latest, ok := LatestUpdate(records); ok {
		c.lastUpdated = latest
	}

	logger.Info("Catalog loaded",
		"entries", len(entries),
		"records", len(records),
	)

	return nil
}

// View returns the presentation state with the working set filtered by search and ordered by sort
func (c *Catalog) View(search string, sort model.SortMode) *model.CatalogView {
	c.mu.RLock()
	records := c.records
	view := &model.CatalogView{
		Loading:       c.loading,
		Failed:        c.failed,
		Error:         c.lastErr,
		RepositoryURL: c.repoURL,
		LastUpdated:   c.lastUpdated,
		Search:        search,
		Sort:          sort,
		Total:         len(c.records),
	}
	c.mu.RUnlock()

	// records is replaced, never mutated, so it is safe to read after unlocking
	view.Records = FilterAndSort(records, search, sort, c.lang)
	return view
}

func (c *Catalog) begin() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.issued++
	c.loading = true
	c.failed = false
	c.lastErr = ""
	return c.issued
}

func (c *Catalog) finish(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen == c.issued {
		c.loading = false
	}
}

func (c *Catalog) fail(gen uint64, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.issued {
		return
	}
	c.records = nil
	c.failed = true
	c.lastErr = err.Error()
}

// BuildRecords keeps disk image entries and maps them into FileRecords
func BuildRecords(entries []*model.DirectoryEntry, src model.Source) []*model.FileRecord {
	records := make([]*model.FileRecord, 0, len(entries))
	for _, entry := range entries {
		if entry == nil || !model.IsDiskImage(entry.Name) {
			continue
		}
		if rec, ok := model.NewFileRecord(entry, src); ok {
			records = append(records, rec)
		}
	}
	return records
}

// LatestUpdate returns the maximum LastUpdated of records. It returns false for an empty slice.
func LatestUpdate(records []*model.FileRecord) (time.Time, bool) {
	if len(records) == 0 {
		return time.Time{}, false
	}

	var latest time.Time
	for _, rec := range records {
		if rec.LastUpdated.After(latest) {
			latest = rec.LastUpdated
		}
	}
	return latest, true
}

// ensure interface compliance
var _ interfaces.CatalogUseCase = (*Catalog)(nil)
