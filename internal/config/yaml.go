// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// settingsFileMode is used when the default settings file is created. The
// file names the key path, so it is private to the server user.
const settingsFileMode = 0o600

// FromFile builds the file layer from the YAML document at path.
//
// When no file exists at path, the [DefaultFileSettings] placeholders are
// written there and returned with created set to true. Any other failure
// (unreadable, corrupt or unwritable file) is returned as an error wrapping
// one of [ErrSettingsFileOpen], [ErrSettingsFileCorrupt] or
// [ErrSettingsFileWrite].
func FromFile(path string) (settings *Settings, created bool, err error) {
	settings, err = parseYAML(path)
	if err == nil {
		return settings, false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, false, err
	}

	settings = DefaultFileSettings()
	if err := saveYAML(path, settings); err != nil {
		return nil, false, err
	}

	return settings, true, nil
}

// parseYAML decodes the settings file at path. An empty document yields an
// empty record.
func parseYAML(path string) (*Settings, error) {
	yamlFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrSettingsFileOpen, path, err)
	}
	defer yamlFile.Close()

	info, err := yamlFile.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrSettingsFileOpen, path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w %q: not a regular file", ErrSettingsFileOpen, path)
	}

	settings := &Settings{Source: SourceFile}
	if err := yaml.NewDecoder(yamlFile).Decode(settings); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w %q: %w", ErrSettingsFileCorrupt, path, err)
	}

	return settings, nil
}

// saveYAML writes settings to a new file at path. It never truncates an
// existing file, and the handle is closed on every return path.
func saveYAML(path string, settings *Settings) (err error) {
	yamlFile, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, settingsFileMode)
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrSettingsFileWrite, path, err)
	}
	defer func() {
		if closeErr := yamlFile.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("%w %q: %w", ErrSettingsFileWrite, path, closeErr)
		}
	}()

	encoder := yaml.NewEncoder(yamlFile)
	encoder.SetIndent(2)
	if err := encoder.Encode(settings); err != nil {
		return fmt.Errorf("%w %q: %w", ErrSettingsFileWrite, path, err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("%w %q: %w", ErrSettingsFileWrite, path, err)
	}

	return nil
}
