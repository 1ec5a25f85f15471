// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"cogentcore.org/dotcom/markup"
)

func (a *app) watchCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Render a document into a file and render it again whenever it changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return a.watch(ctx, args[0], output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default <file>.out.html)")
	return cmd
}

// outputName returns the default output file of the given input file.
func outputName(in string) string {
	return strings.TrimSuffix(in, filepath.Ext(in)) + ".out.html"
}

// renderFile renders the given document file into the given output file.
func (a *app) renderFile(in, out string) error {
	doc, err := a.load(in)
	if err != nil {
		return err
	}
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	opts := markup.Options{Styles: a.settings.Styles}
	if err := opts.Write(f, doc); err != nil {
		f.Close()
		return fmt.Errorf("render %s: %w", in, err)
	}
	return f.Close()
}

// watch renders in into out, and then again on every write to in,
// until ctx is done. Render errors after the first render are logged
// and do not stop watching.
func (a *app) watch(ctx context.Context, in, out string) error {
	if out == "" {
		out = outputName(in)
	}
	if err := a.renderFile(in, out); err != nil {
		return err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer w.Close()
	// editors often replace the file on save, so the directory is watched
	if err := w.Add(filepath.Dir(in)); err != nil {
		return fmt.Errorf("watch %s: %w", in, err)
	}
	log.Info().Str("file", in).Str("output", out).Msg("watching")
	name := filepath.Clean(in)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != name || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			if err := a.renderFile(in, out); err != nil {
				log.Error().Err(err).Str("file", in).Msg("render failed")
				continue
			}
			log.Debug().Str("file", in).Str("op", ev.Op.String()).Msg("rendered")
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Error().Err(err).Msg("watch error")
		}
	}
}
