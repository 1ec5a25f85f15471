// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mediafmt

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestFormatCaption(t *testing.T) {
	assert.Equal(t, "Intro (1:05)", FormatCaption(Caption{Name: "Intro", Duration: "1:05"}))
	assert.Equal(t, "Intro", FormatCaption(Caption{Name: "Intro"}))
	assert.Equal(t, "1:05", FormatCaption(Caption{Duration: "1:05"}))
	assert.Equal(t, "", FormatCaption(Caption{}))
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    Duration
		want string
	}{
		{Duration{}, ""},
		{Seconds(0), "0:00"},
		{Seconds(5.9), "0:05"},
		{Seconds(65), "1:05"},
		{Seconds(3599), "59:59"},
		{Seconds(3600), "1:00:00"},
		{Seconds(3725), "1:02:05"},
		{Seconds(-1), ""},
		{Seconds(math.NaN()), ""},
		{Seconds(math.Inf(1)), ""},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, FormatDuration(test.d))
	}
}

func TestForLocale(t *testing.T) {
	en := ForLocale(language.English)
	assert.Equal(t, "Intro (1:05)", en.Caption(Caption{Name: "Intro", Duration: "1:05"}))
	assert.Equal(t, "1:05", en.Duration(Seconds(65)))
	assert.Equal(t, "1:02:05", en.Duration(Seconds(3725)))
	assert.Equal(t, "", en.Duration(Duration{}))
	assert.Equal(t, "Intro", en.Caption(Caption{Name: "Intro"}))

	ja := ForLocale(language.Japanese)
	assert.Equal(t, "紹介（1:05）", ja.Caption(Caption{Name: "紹介", Duration: "1:05"}))
	assert.Equal(t, "紹介", ja.Caption(Caption{Name: "紹介"}))

	de := ForLocale(language.MustParse("de-DE"))
	assert.Equal(t, "Einführung (0:30)", de.Caption(Caption{Name: "Einführung", Duration: de.Duration(Seconds(30))}))
}

func TestParseLocale(t *testing.T) {
	assert.Equal(t, language.French, ParseLocale("fr").Locale)
	assert.Equal(t, language.English, ParseLocale("not a locale!").Locale)
}

func TestLocales(t *testing.T) {
	assert.ElementsMatch(t, []language.Tag{language.English, language.German, language.French, language.Japanese}, Locales())
}
