// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
)

// Fatal resolution errors. Callers match them with [errors.Is]; the wrapped
// error carries the path or underlying cause.
var (
	// ErrNoSettingsFile indicates that neither the environment nor the
	// command line named a settings file location.
	ErrNoSettingsFile = errors.New("no configuration file location specified")
	// ErrSettingsFileOpen indicates that an existing settings file could not
	// be opened (permission denied, not a regular file, etc.).
	ErrSettingsFileOpen = errors.New("unable to open settings file")
	// ErrSettingsFileCorrupt indicates that the settings file exists but is
	// not a valid settings document.
	ErrSettingsFileCorrupt = errors.New("unable to parse settings file")
	// ErrSettingsFileWrite indicates that the default settings file could not
	// be written.
	ErrSettingsFileWrite = errors.New("unable to write default settings file")
	// ErrMissingOption indicates that a required option was absent in every
	// layer. The concrete error is a [*MissingOptionError].
	ErrMissingOption = errors.New("required option is missing")
	// ErrInvalidOption indicates that a merged option is present but out of
	// range.
	ErrInvalidOption = errors.New("invalid option")
)

// MissingOptionError names the required option that no layer supplied.
type MissingOptionError struct {
	Field string
}

func (e *MissingOptionError) Error() string {
	return fmt.Sprintf("option %s is required", e.Field)
}

// Is reports ErrMissingOption as a match so callers can test the category
// without a type assertion.
func (e *MissingOptionError) Is(target error) bool {
	return target == ErrMissingOption
}
