package model

import (
	"fmt"
	"strings"
)

// Default endpoints of the public GitHub host
const (
	DefaultWebURL = "https://github.com"
	DefaultRawURL = "https://raw.githubusercontent.com"
	DefaultAPIURL = "https://api.github.com/"
)

// Source represents the repository folder the catalog is built from
type Source struct {
	Owner  string // Repository owner (user or organization)
	Repo   string // Repository name
	Folder string // Folder inside the repository to scan
	Branch string // Git ref to query
	WebURL string // Base URL of the web UI, e.g. https://github.com
	RawURL string // Base URL of raw file content
	APIURL string // Base URL of the REST API, with trailing slash
}

// Validate checks that the source has enough information to build the listing endpoint
func (s Source) Validate() error {
	if s.Owner == "" || s.Repo == "" {
		return fmt.Errorf("owner and repo are required: owner=%q, repo=%q", s.Owner, s.Repo)
	}
	if s.Branch == "" {
		return fmt.Errorf("branch is required for %s/%s", s.Owner, s.Repo)
	}
	return nil
}

// RepositoryURL returns the link to the repository home page
func (s Source) RepositoryURL() string {
	return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(s.webURL(), "/"), s.Owner, s.Repo)
}

// MirrorURL returns the raw content URL of a file in the folder.
// The file name is interpolated as is, so names with reserved URL characters
// may produce a broken link.
func (s Source) MirrorURL(name string) string {
	return fmt.Sprintf("%s/%s/%s/%s/%s/%s",
		strings.TrimSuffix(s.rawURL(), "/"), s.Owner, s.Repo, s.Branch, s.Folder, name)
}

func (s Source) webURL() string {
	if s.WebURL == "" {
		return DefaultWebURL
	}
	return s.WebURL
}

func (s Source) rawURL() string {
	if s.RawURL == "" {
		return DefaultRawURL
	}
	return s.RawURL
}
