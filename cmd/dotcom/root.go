// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	stdlog "log"
	"log/slog"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"cogentcore.org/dotcom/components"
	"cogentcore.org/dotcom/core"
	"cogentcore.org/dotcom/markup"
	"cogentcore.org/dotcom/settings"
)

// app is the state shared by the commands.
type app struct {
	configFile string
	locale     string
	verbosity  int

	settings settings.Settings
	registry *core.Registry
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "dotcom",
		Short:         "Render and inspect documents of dotcom elements",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.configFile, "config", "", "settings file (TOML)")
	root.PersistentFlags().StringVar(&a.locale, "locale", "", "locale of the video formatters, overriding the settings")
	root.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", "increase verbosity (-v, -vv)")

	root.AddCommand(a.renderCmd(), a.watchCmd(), a.tagsCmd(), a.queryCmd())
	return root
}

// setup loads the settings and configures logging.
func (a *app) setup(cmd *cobra.Command) error {
	s, err := settings.Load(a.configFile)
	if err != nil {
		return err
	}
	if a.locale != "" {
		s.Locale = a.locale
		if err := s.Validate(); err != nil {
			return err
		}
	}
	a.settings = s
	setupLogger(s.Level(), a.verbosity)
	a.registry = components.NewRegistry()
	log.Debug().Str("command", cmd.Name()).Str("locale", s.Locale).Msg("command started")
	return nil
}

// setupLogger configures the global zerolog logger and routes the
// slog output of the library through it.
func setupLogger(level slog.Level, verbosity int) {
	switch {
	case verbosity >= 2:
		level = slog.LevelDebug
	case verbosity == 1 && level > slog.LevelInfo:
		level = slog.LevelInfo
	}
	switch {
	case level <= slog.LevelDebug:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case level <= slog.LevelInfo:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case level <= slog.LevelWarn:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()

	stdlog.SetFlags(0)
	stdlog.SetOutput(log.Logger)
	slog.SetLogLoggerLevel(level)
}

// load reads the given file into a new document with the settings
// applied, and runs all of its update passes.
func (a *app) load(filename string) (*core.Document, error) {
	doc := core.NewDocument()
	a.settings.Apply(doc)
	if err := markup.ReadFile(a.registry, doc, filename); err != nil {
		return nil, err
	}
	n := components.Localize(doc, a.settings.Formatters())
	passes := doc.Flush()
	log.Debug().Str("file", filename).Int("localized", n).Int("passes", passes).Msg("document loaded")
	return doc, nil
}
