package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/m-mizutani/isoshelf/pkg/domain/model"
	"github.com/m-mizutani/isoshelf/pkg/utils/format"
	"github.com/urfave/cli/v3"
)

func cmdList() *cli.Command {
	var (
		catalogCfg catalogConfig
		search     string
		sortMode   string
	)

	flags := append(catalogCfg.flags(),
		&cli.StringFlag{
			Name:        "search",
			Aliases:     []string{"q"},
			Usage:       "Show only images whose name contains this text",
			Destination: &search,
		},
		&cli.StringFlag{
			Name:        "sort",
			Usage:       "Sort order (name, name-desc, date, date-old)",
			Destination: &sortMode,
		},
	)

	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "Fetch the catalog once and print it",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			catalogUC, _, formatter, err := catalogCfg.build()
			if err != nil {
				return err
			}

			if err := catalogUC.Load(ctx); err != nil {
				return err
			}

			view := catalogUC.View(search, model.SortMode(sortMode))
			return printCatalog(c.Root().Writer, view, formatter)
		},
	}
}

var (
	nameColor  = color.New(color.FgCyan, color.Bold)
	iconColor  = color.New(color.FgYellow)
	faintColor = color.New(color.Faint)
)

// printCatalog writes the view as a table
func printCatalog(w io.Writer, view *model.CatalogView, formatter *format.Formatter) error {
	if len(view.Records) == 0 {
		if _, err := fmt.Fprintln(w, "No disk images found"); err != nil {
			return err
		}
	} else {
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, rec := range view.Records {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
				iconColor.Sprint(rec.IconKey),
				nameColor.Sprint(rec.Name),
				rec.Extension(),
				formatter.Size(rec.SizeBytes),
				formatter.Timestamp(rec.LastUpdated),
			)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s %s\n", faintColor.Sprint("Repository:"), view.RepositoryURL)
	if view.HasLastUpdated() {
		fmt.Fprintf(w, "%s %s\n", faintColor.Sprint("Last updated:"), formatter.Timestamp(view.LastUpdated))
	}
	_, err := fmt.Fprintf(w, "%s %d of %d\n", faintColor.Sprint("Shown:"), len(view.Records), view.Total)
	return err
}
