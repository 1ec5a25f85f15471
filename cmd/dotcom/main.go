// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command dotcom renders documents of dotcom elements to HTML with
// declarative shadow roots, and inspects the element registry.
package main

import (
	"os"

	"github.com/rs/zerolog/log"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("dotcom failed")
		os.Exit(1)
	}
}
