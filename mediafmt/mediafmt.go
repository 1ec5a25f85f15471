// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mediafmt provides the formatters that turn video metadata
// into display strings. Formatters are plain functions; elements hold
// them in fields that can be replaced at any time.
package mediafmt

import (
	"fmt"
	"math"
)

// Caption is the data passed to a [CaptionFunc].
type Caption struct {

	// Name is the video name.
	Name string

	// Duration is the already formatted video duration.
	Duration string
}

// CaptionFunc formats a video caption. It must be pure.
type CaptionFunc func(c Caption) string

// Duration is the data passed to a [DurationFunc].
type Duration struct {

	// Seconds is the video duration in seconds, or nil if unknown.
	Seconds *float64
}

// DurationFunc formats a video duration. It must be pure.
type DurationFunc func(d Duration) string

// FormatCaption is the default [CaptionFunc]. It returns the name
// followed by the duration in parentheses, or whichever of the
// two is present.
func FormatCaption(c Caption) string {
	switch {
	case c.Name != "" && c.Duration != "":
		return c.Name + " (" + c.Duration + ")"
	case c.Name != "":
		return c.Name
	default:
		return c.Duration
	}
}

// FormatDuration is the default [DurationFunc]. It returns m:ss,
// or h:mm:ss for durations of an hour or more, and "" for an
// unknown or invalid duration.
func FormatDuration(d Duration) string {
	h, m, s, ok := Split(d)
	if !ok {
		return ""
	}
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// Split splits the given duration into whole hours, minutes and seconds.
// It returns false for an unknown, negative, or non-finite duration.
func Split(d Duration) (hours, minutes, seconds int, ok bool) {
	if d.Seconds == nil {
		return 0, 0, 0, false
	}
	v := *d.Seconds
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, 0, 0, false
	}
	total := int(math.Floor(v))
	return total / 3600, (total % 3600) / 60, total % 60, true
}

// Seconds returns a [Duration] for the given number of seconds.
func Seconds(v float64) Duration {
	return Duration{Seconds: &v}
}
