// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package validate provides the shared struct validator, with the
// custom validations used by elements and settings.
package validate

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// Validator returns the shared validator instance. In addition to the
// built-in validations it knows "locale", which accepts BCP 47 tags.
func Validator() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		_ = v.RegisterValidation("locale", func(fl validator.FieldLevel) bool {
			_, err := language.Parse(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})
	return validateInst
}

// Struct validates the given struct and returns an error that names
// every failing field, or nil.
func Struct(s any) error {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	msgs := make([]string, len(verrs))
	for i, fe := range verrs {
		msgs[i] = fmt.Sprintf("%s: failed %q validation (value %v)", fe.Namespace(), fe.Tag(), fe.Value())
	}
	return fmt.Errorf("validate: %s", strings.Join(msgs, "; "))
}
