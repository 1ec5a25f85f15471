// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mediafmt

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"cogentcore.org/dotcom/base/errors"
)

// Message keys of the formatter catalog.
const (
	captionBothKey   = "%[1]s (%[2]s)"
	durationShortKey = "%d:%02d"
	durationLongKey  = "%d:%02d:%02d"
)

// Formatters is a set of locale specific formatters.
type Formatters struct {

	// Locale is the locale the formatters were made for.
	Locale language.Tag

	// Caption formats captions.
	Caption CaptionFunc

	// Duration formats durations.
	Duration DurationFunc
}

// translations holds the non-English catalog entries, per locale.
var translations = map[language.Tag]map[string]string{
	language.German: {
		captionBothKey: "%[1]s (%[2]s)",
	},
	language.French: {
		captionBothKey: "%[1]s (%[2]s)",
	},
	language.Japanese: {
		captionBothKey: "%[1]s（%[2]s）",
	},
}

// formatCatalog is the catalog the locale formatters print with.
var formatCatalog = newCatalog()

func newCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for _, key := range []string{captionBothKey, durationShortKey, durationLongKey} {
		errors.Log(b.SetString(language.English, key, key))
	}
	for tag, msgs := range translations {
		for key, msg := range msgs {
			errors.Log(b.SetString(tag, key, msg))
		}
	}
	return b
}

// Locales returns the locales that have catalog entries.
func Locales() []language.Tag {
	return formatCatalog.Languages()
}

// ForLocale returns the formatters for the given locale. Locales without
// catalog entries get the English forms, with locale number formatting.
func ForLocale(tag language.Tag) Formatters {
	p := message.NewPrinter(tag, message.Catalog(formatCatalog))
	return Formatters{
		Locale: tag,
		Caption: func(c Caption) string {
			if c.Name != "" && c.Duration != "" {
				return p.Sprintf(captionBothKey, c.Name, c.Duration)
			}
			return FormatCaption(c)
		},
		Duration: func(d Duration) string {
			h, m, s, ok := Split(d)
			if !ok {
				return ""
			}
			if h > 0 {
				return p.Sprintf(durationLongKey, h, m, s)
			}
			return p.Sprintf(durationShortKey, m, s)
		},
	}
}

// ParseLocale returns the formatters for the given BCP 47 locale string.
// An invalid locale is logged and results in the English formatters.
func ParseLocale(locale string) Formatters {
	tag, err := language.Parse(locale)
	if errors.Log(err) != nil {
		tag = language.English
	}
	return ForLocale(tag)
}
