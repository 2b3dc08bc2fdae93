package interfaces

import (
	"context"

	"github.com/m-mizutani/isoshelf/pkg/domain/model"
)

// ContentsClient defines read access to a repository folder listing
type ContentsClient interface {
	// ListDirectory returns the entries of src.Folder at src.Branch.
	// Failures are reported as *model.FetchError.
	ListDirectory(ctx context.Context, src model.Source) ([]*model.DirectoryEntry, error)
}
