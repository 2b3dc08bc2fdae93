package interfaces

import (
	"context"

	"github.com/m-mizutani/isoshelf/pkg/domain/model"
)

// CatalogUseCase defines the operations of the disk image catalog
type CatalogUseCase interface {
	// Load fetches the folder listing and replaces the working set
	Load(ctx context.Context) error

	// View returns the current presentation state with records filtered by
	// search and ordered by sort
	View(search string, sort model.SortMode) *model.CatalogView
}
