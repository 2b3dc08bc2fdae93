package cli

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/isoshelf/pkg/cli/config"
	"github.com/m-mizutani/isoshelf/pkg/domain/model"
	githubinfra "github.com/m-mizutani/isoshelf/pkg/infra/github"
	"github.com/m-mizutani/isoshelf/pkg/usecase"
	"github.com/m-mizutani/isoshelf/pkg/utils/format"
	"github.com/urfave/cli/v3"
)

// catalogConfig groups the flags shared by commands that build a catalog
type catalogConfig struct {
	file   config.File
	github config.GitHub
	locale config.Locale
}

func (c *catalogConfig) flags() []cli.Flag {
	flags := c.file.Flags()
	flags = append(flags, c.github.Flags()...)
	flags = append(flags, c.locale.Flags()...)
	return flags
}

// build loads the optional config file and creates the catalog use case
func (c *catalogConfig) build() (*usecase.Catalog, model.Source, *format.Formatter, error) {
	if err := c.file.Load(); err != nil {
		return nil, model.Source{}, nil, err
	}
	c.github.Merge(c.file.Source)
	c.locale.Merge(c.file.Locale)

	src, err := c.github.Source()
	if err != nil {
		return nil, model.Source{}, nil, goerr.Wrap(err, "invalid repository configuration")
	}

	formatter, err := c.locale.Formatter()
	if err != nil {
		return nil, model.Source{}, nil, err
	}

	client, err := githubinfra.NewClient(src.APIURL)
	if err != nil {
		return nil, model.Source{}, nil, goerr.Wrap(err, "failed to create GitHub client")
	}

	catalog := usecase.NewCatalog(client, src, usecase.WithLanguage(formatter.Language()))
	return catalog, src, formatter, nil
}
