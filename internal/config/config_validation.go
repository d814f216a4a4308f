// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator returns a validator that reports fields by their YAML key, so
// errors name options the way operators write them.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
	})

	return v
}

// validate checks the merged [Settings] against the `validate` tags.
//
// The first failing option, in declaration order, is reported: a missing
// required option as a [*MissingOptionError], any other rule as
// [ErrInvalidOption].
func (s *Settings) validate() error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return fmt.Errorf("error validating config: %w", err)
	}

	first := validationErrs[0]
	if first.Tag() == "required" {
		return &MissingOptionError{Field: first.Field()}
	}

	return fmt.Errorf("%w: %s violates %q", ErrInvalidOption, first.Field(), first.ActualTag())
}
