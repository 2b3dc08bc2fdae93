package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/isoshelf/pkg/domain/interfaces"
	"github.com/m-mizutani/isoshelf/pkg/domain/model"
)

type client struct {
	githubClient *github.Client
}

// Option is a functional option for the contents client
type Option func(*clientConfig)

type clientConfig struct {
	httpClient *http.Client
}

// WithHTTPClient sets the underlying HTTP client
func WithHTTPClient(c *http.Client) Option {
	return func(cfg *clientConfig) {
		cfg.httpClient = c
	}
}

// NewClient creates an unauthenticated contents client for the REST API at apiURL.
// An empty apiURL means the public GitHub API.
func NewClient(apiURL string, opts ...Option) (interfaces.ContentsClient, error) {
	cfg := &clientConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	githubClient := github.NewClient(cfg.httpClient)

	if apiURL != "" {
		if !strings.HasSuffix(apiURL, "/") {
			apiURL += "/"
		}
		baseURL, err := url.Parse(apiURL)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid GitHub API URL", goerr.V("api_url", apiURL))
		}
		githubClient.BaseURL = baseURL
	}

	return &client{
		githubClient: githubClient,
	}, nil
}

// ListDirectory lists the folder of src at its branch
func (c *client) ListDirectory(ctx context.Context, src model.Source) ([]*model.DirectoryEntry, error) {
	escapedPath := (&url.URL{Path: strings.Trim(src.Folder, "/")}).String()
	u := fmt.Sprintf("repos/%s/%s/contents/%s?ref=%s",
		url.PathEscape(src.Owner), url.PathEscape(src.Repo), escapedPath, url.QueryEscape(src.Branch))

	req, err := c.githubClient.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, &model.FetchError{
			Err: goerr.Wrap(err, "failed to create listing request", goerr.V("url", u)),
		}
	}

	var entries []*model.DirectoryEntry
	resp, err := c.githubClient.Do(ctx, req, &entries)
	if err != nil {
		status := 0
		if resp != nil && resp.Response != nil {
			status = resp.StatusCode
		}
		return nil, &model.FetchError{
			StatusCode: status,
			Err: goerr.Wrap(err, "failed to list directory",
				goerr.V("owner", src.Owner),
				goerr.V("repo", src.Repo),
				goerr.V("folder", src.Folder),
				goerr.V("branch", src.Branch),
			),
		}
	}

	return entries, nil
}
