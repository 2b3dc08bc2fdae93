package config

import (
	"github.com/m-mizutani/isoshelf/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

// GitHub holds the repository folder the catalog is built from
type GitHub struct {
	Owner  string `toml:"owner"`
	Repo   string `toml:"repo"`
	Folder string `toml:"folder"`
	Branch string `toml:"branch"`
	WebURL string `toml:"web_url"`
	RawURL string `toml:"raw_url"`
	APIURL string `toml:"api_url"`
}

// Flags returns CLI flags for GitHub configuration
func (c *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-owner",
			Usage:       "Owner (user or organization) of the repository",
			Destination: &c.Owner,
			Sources:     cli.EnvVars("ISOSHELF_GITHUB_OWNER"),
		},
		&cli.StringFlag{
			Name:        "github-repo",
			Usage:       "Repository name",
			Destination: &c.Repo,
			Sources:     cli.EnvVars("ISOSHELF_GITHUB_REPO"),
		},
		&cli.StringFlag{
			Name:        "github-folder",
			Usage:       "Folder in the repository that holds the disk images",
			Destination: &c.Folder,
			Sources:     cli.EnvVars("ISOSHELF_GITHUB_FOLDER"),
		},
		&cli.StringFlag{
			Name:        "github-branch",
			Usage:       "Branch to list",
			Destination: &c.Branch,
			Sources:     cli.EnvVars("ISOSHELF_GITHUB_BRANCH"),
		},
		&cli.StringFlag{
			Name:        "github-web-url",
			Usage:       "Base URL of the repository web pages",
			Destination: &c.WebURL,
			Sources:     cli.EnvVars("ISOSHELF_GITHUB_WEB_URL"),
		},
		&cli.StringFlag{
			Name:        "github-raw-url",
			Usage:       "Base URL of raw file content, used for mirror links",
			Destination: &c.RawURL,
			Sources:     cli.EnvVars("ISOSHELF_GITHUB_RAW_URL"),
		},
		&cli.StringFlag{
			Name:        "github-api-url",
			Usage:       "Base URL of the REST API",
			Destination: &c.APIURL,
			Sources:     cli.EnvVars("ISOSHELF_GITHUB_API_URL"),
		},
	}
}

// Merge fills fields that are empty in c from other
func (c *GitHub) Merge(other GitHub) {
	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&c.Owner, other.Owner)
	fill(&c.Repo, other.Repo)
	fill(&c.Folder, other.Folder)
	fill(&c.Branch, other.Branch)
	fill(&c.WebURL, other.WebURL)
	fill(&c.RawURL, other.RawURL)
	fill(&c.APIURL, other.APIURL)
}

// Source builds the catalog source, applying defaults for unset fields
func (c *GitHub) Source() (model.Source, error) {
	src := model.Source{
		Owner:  c.Owner,
		Repo:   c.Repo,
		Folder: c.Folder,
		Branch: c.Branch,
		WebURL: c.WebURL,
		RawURL: c.RawURL,
		APIURL: c.APIURL,
	}
	if src.Folder == "" {
		src.Folder = "OS"
	}
	if src.Branch == "" {
		src.Branch = "main"
	}
	if src.WebURL == "" {
		src.WebURL = model.DefaultWebURL
	}
	if src.RawURL == "" {
		src.RawURL = model.DefaultRawURL
	}
	if src.APIURL == "" {
		src.APIURL = model.DefaultAPIURL
	}

	if err := src.Validate(); err != nil {
		return model.Source{}, err
	}
	return src, nil
}
