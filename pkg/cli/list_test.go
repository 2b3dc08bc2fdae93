package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/isoshelf/pkg/domain/model"
	"github.com/m-mizutani/isoshelf/pkg/utils/format"
)

func TestPrintCatalog(t *testing.T) {
	color.NoColor = true

	view := &model.CatalogView{
		RepositoryURL: "https://github.com/octo/images",
		LastUpdated:   time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC),
		Total:         2,
		Records: []*model.FileRecord{
			{
				Name:        "ubuntu-22.04.iso",
				SizeBytes:   3_500_000_000,
				LastUpdated: time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC),
				IconKey:     model.IconUbuntu,
			},
		},
	}

	var buf bytes.Buffer
	gt.NoError(t, printCatalog(&buf, view, format.Default()))

	out := buf.String()
	gt.String(t, out).Contains("ubuntu-22.04.iso")
	gt.String(t, out).Contains("3.3 GB")
	gt.String(t, out).Contains("ISO")
	gt.String(t, out).Contains("Repository: https://github.com/octo/images")
	gt.String(t, out).Contains("Last updated: January 10, 2024, 10:00")
	gt.String(t, out).Contains("Shown: 1 of 2")
}

func TestPrintCatalog_Empty(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	gt.NoError(t, printCatalog(&buf, &model.CatalogView{RepositoryURL: "https://github.com/octo/images"}, format.Default()))

	out := buf.String()
	gt.String(t, out).Contains("No disk images found")
	gt.False(t, bytes.Contains(buf.Bytes(), []byte("Last updated")))
}
