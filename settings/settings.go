// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package settings provides the settings of documents rendered with
// the library: defaults, overridden by a TOML or YAML file, overridden
// by environment variables.
package settings

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/mitchellh/go-homedir"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"cogentcore.org/dotcom/base/validate"
	"cogentcore.org/dotcom/core"
	"cogentcore.org/dotcom/mediafmt"
)

// Settings are the settings of rendering.
type Settings struct {

	// Locale is the BCP 47 locale of the formatters of video elements.
	Locale string `toml:"locale" yaml:"locale" env:"DOTCOM_LOCALE" validate:"required,locale"`

	// LogLevel is the minimum level of log messages.
	LogLevel string `toml:"log_level" yaml:"log_level" env:"DOTCOM_LOG_LEVEL" validate:"oneof=debug info warn error"`

	// MaxFlushPasses is the maximum number of update passes in one flush.
	MaxFlushPasses int `toml:"max_flush_passes" yaml:"max_flush_passes" env:"DOTCOM_MAX_FLUSH_PASSES" validate:"gte=1"`

	// Styles is whether rendered output includes the stylesheets
	// of the elements.
	Styles bool `toml:"styles" yaml:"styles" env:"DOTCOM_STYLES"`
}

// Defaults returns the default settings.
func Defaults() Settings {
	return Settings{
		Locale:         "en",
		LogLevel:       "info",
		MaxFlushPasses: core.DefaultMaxPasses,
		Styles:         true,
	}
}

// Load returns the default settings overridden by the given file, if it
// is not "", and then by the environment variables. Files with a .yaml or
// .yml extension are read as YAML and all others as TOML. A leading ~ in
// the filename is expanded to the home directory.
func Load(filename string) (Settings, error) {
	s := Defaults()
	if filename != "" {
		if err := s.open(filename); err != nil {
			return s, err
		}
	}
	if err := env.Parse(&s); err != nil {
		return s, fmt.Errorf("parse env: %w", err)
	}
	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

// open reads the given settings file into s.
func (s *Settings) open(filename string) error {
	fn, err := homedir.Expand(filename)
	if err != nil {
		return fmt.Errorf("failed to expand settings file path %q: %w", filename, err)
	}
	data, err := os.ReadFile(fn)
	if err != nil {
		return fmt.Errorf("failed to read settings file: %w", err)
	}
	switch strings.ToLower(filepath.Ext(fn)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, s)
	default:
		err = toml.Unmarshal(data, s)
	}
	if err != nil {
		return fmt.Errorf("failed to parse settings file %q: %w", filename, err)
	}
	return nil
}

// Validate returns an error if any of the settings is invalid.
func (s *Settings) Validate() error {
	return validate.Struct(s)
}

// Formatters returns the video formatters for [Settings.Locale].
func (s *Settings) Formatters() mediafmt.Formatters {
	return mediafmt.ParseLocale(s.Locale)
}

// Level returns [Settings.LogLevel] as a [slog.Level].
func (s *Settings) Level() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return l
}

// Apply applies the settings to the given document.
func (s *Settings) Apply(d *core.Document) {
	d.Scheduler.MaxPasses = s.MaxFlushPasses
}
