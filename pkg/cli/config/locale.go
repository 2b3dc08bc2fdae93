package config

import (
	"github.com/m-mizutani/isoshelf/pkg/utils/format"
	"github.com/urfave/cli/v3"
)

// Locale holds display language and time zone
type Locale struct {
	Language string `toml:"language"`
	TimeZone string `toml:"timezone"`
}

// Flags returns CLI flags for locale configuration
func (c *Locale) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "locale",
			Usage:       "Display language for sizes and dates (en, ru)",
			Destination: &c.Language,
			Sources:     cli.EnvVars("ISOSHELF_LOCALE"),
		},
		&cli.StringFlag{
			Name:        "timezone",
			Usage:       "IANA time zone for displayed times",
			Destination: &c.TimeZone,
			Sources:     cli.EnvVars("ISOSHELF_TIMEZONE"),
		},
	}
}

// Merge fills fields that are empty in c from other
func (c *Locale) Merge(other Locale) {
	if c.Language == "" {
		c.Language = other.Language
	}
	if c.TimeZone == "" {
		c.TimeZone = other.TimeZone
	}
}

// Formatter builds a formatter for the configured language and time zone
func (c *Locale) Formatter() (*format.Formatter, error) {
	lang := c.Language
	if lang == "" {
		lang = "en"
	}
	return format.New(lang, c.TimeZone)
}
