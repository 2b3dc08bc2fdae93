// Package format renders byte counts and timestamps for display in the catalog.
package format

import (
	"fmt"
	"math"
	"strconv"
	"time"
	_ "time/tzdata"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/text/language"
)

// locale holds the display strings of one supported language
type locale struct {
	tag       language.Tag
	units     []string
	months    [12]string
	timestamp func(t time.Time, month string) string
}

var locales = []*locale{
	{
		tag:   language.English,
		units: []string{"B", "KB", "MB", "GB", "TB"},
		months: [12]string{
			"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December",
		},
		timestamp: func(t time.Time, month string) string {
			return fmt.Sprintf("%s %d, %d, %02d:%02d", month, t.Day(), t.Year(), t.Hour(), t.Minute())
		},
	},
	{
		tag:   language.Russian,
		units: []string{"Байт", "КБ", "МБ", "ГБ", "ТБ"},
		// genitive forms, as used after a day number
		months: [12]string{
			"января", "февраля", "марта", "апреля", "мая", "июня",
			"июля", "августа", "сентября", "октября", "ноября", "декабря",
		},
		timestamp: func(t time.Time, month string) string {
			return fmt.Sprintf("%d %s %d г., %02d:%02d", t.Day(), month, t.Year(), t.Hour(), t.Minute())
		},
	},
}

var matcher = func() language.Matcher {
	tags := make([]language.Tag, len(locales))
	for i, l := range locales {
		tags[i] = l.tag
	}
	return language.NewMatcher(tags)
}()

// Formatter renders sizes and timestamps for one locale and time zone
type Formatter struct {
	loc  *locale
	zone *time.Location
}

// New creates a Formatter. lang is a BCP 47 tag such as "en" or "ru-RU";
// unsupported languages fall back to English. zone is an IANA time zone name,
// empty means UTC.
func New(lang, zone string) (*Formatter, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid locale", goerr.V("locale", lang))
	}
	_, idx, _ := matcher.Match(tag)

	tz := time.UTC
	if zone != "" {
		tz, err = time.LoadLocation(zone)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid time zone", goerr.V("timezone", zone))
		}
	}

	return &Formatter{loc: locales[idx], zone: tz}, nil
}

// Default returns an English formatter in UTC
func Default() *Formatter {
	return &Formatter{loc: locales[0], zone: time.UTC}
}

// Language returns the matched language tag, used for collation
func (f *Formatter) Language() language.Tag {
	return f.loc.tag
}

// Size converts a byte count into 1024-based units with at most one decimal place
func (f *Formatter) Size(bytes int64) string {
	units := f.loc.units
	if bytes <= 0 {
		return "0 " + units[0]
	}

	v := float64(bytes)
	i := 0
	for v >= 1024 && i < len(units)-1 {
		v /= 1024
		i++
	}

	v = math.Round(v*10) / 10
	return strconv.FormatFloat(v, 'f', -1, 64) + " " + units[i]
}

// Timestamp renders t as a calendar date with the full month name and a clock
// time. The zero time renders as an empty string.
func (f *Formatter) Timestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	t = t.In(f.zone)
	return f.loc.timestamp(t, f.loc.months[t.Month()-1])
}
