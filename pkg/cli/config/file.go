package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

// File is the optional TOML configuration file. Values set by flags or
// environment variables take precedence.
//
//	[source]
//	owner  = "octo"
//	repo   = "images"
//	folder = "OS"
//	branch = "main"
//
//	[locale]
//	language = "ru"
//	timezone = "Europe/Moscow"
type File struct {
	Path string `toml:"-"`

	Source GitHub `toml:"source"`
	Locale Locale `toml:"locale"`
}

// Flags returns CLI flags for the configuration file
func (c *File) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "Path to a TOML configuration file",
			Destination: &c.Path,
			Sources:     cli.EnvVars("ISOSHELF_CONFIG"),
		},
	}
}

// Load reads the file at Path. It does nothing when Path is empty.
func (c *File) Load() error {
	if c.Path == "" {
		return nil
	}

	f, err := os.Open(c.Path)
	if err != nil {
		return goerr.Wrap(err, "failed to open config file", goerr.V("path", c.Path))
	}
	defer f.Close()

	dec := toml.NewDecoder(f).DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		return goerr.Wrap(err, "failed to decode config file", goerr.V("path", c.Path))
	}

	return nil
}
