// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Locale string `validate:"required,locale"`
	Count  int    `validate:"gte=1"`
	URL    string `validate:"omitempty,url"`
}

func TestStruct(t *testing.T) {
	assert.NoError(t, Struct(&sample{Locale: "pt-BR", Count: 1}))
	assert.NoError(t, Struct(&sample{Locale: "en", Count: 3, URL: "https://example.com"}))

	err := Struct(&sample{Locale: "en", Count: 0, URL: "nope"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `sample.Count: failed "gte" validation (value 0)`)
	assert.Contains(t, err.Error(), `sample.URL: failed "url" validation`)

	err = Struct(&sample{Locale: "??", Count: 1})
	assert.ErrorContains(t, err, `failed "locale" validation`)
}

func TestValidatorShared(t *testing.T) {
	assert.Same(t, Validator(), Validator())
}
