// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/net/html"

	"cogentcore.org/dotcom/core"
	"cogentcore.org/dotcom/markup"
)

func (a *app) renderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render <file>",
		Short: "Render an HTML or markdown document with declarative shadow roots",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.load(args[0])
			if err != nil {
				return err
			}
			opts := markup.Options{Styles: a.settings.Styles}
			if err := opts.Write(cmd.OutOrStdout(), doc); err != nil {
				return fmt.Errorf("render: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}
}

func (a *app) tagsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List the registered element tags and the tags they extend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, tag := range a.registry.Tags() {
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(a.registry.Lineage(tag), " < "))
			}
			return nil
		},
	}
}

func (a *app) queryCmd() *cobra.Command {
	var shadow string
	cmd := &cobra.Command{
		Use:   "query <file> <selector>",
		Short: "Print the elements of a document that match a CSS selector",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.load(args[0])
			if err != nil {
				return err
			}
			for _, e := range core.QuerySelectorAll(doc, args[1]) {
				eb := e.AsElement()
				nodes := []*html.Node{core.El(eb.Tag, eb.Attributes())}
				if shadow != "" {
					nodes = core.QueryShadow(e, shadow)
				}
				for _, n := range nodes {
					if err := html.Render(cmd.OutOrStdout(), n); err != nil {
						return err
					}
					fmt.Fprintln(cmd.OutOrStdout())
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&shadow, "shadow", "", "print the shadow nodes of each match that match this selector instead")
	return cmd
}
