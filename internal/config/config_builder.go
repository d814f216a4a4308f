// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"

	"github.com/MKhiriev/maelstrom/internal/logger"
)

// configBuilder collects the layers in priority order (highest first) and
// accumulates errors until build.
type configBuilder struct {
	layers []*Settings
	log    *logger.Logger
	err    error
}

func newConfigBuilder(log *logger.Logger) *configBuilder {
	return &configBuilder{
		layers: make([]*Settings, 0, 3),
		log:    log,
	}
}

func (b *configBuilder) build() (*ResolvedConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	merged, err := merge(b.layers...)
	if err != nil {
		return nil, err
	}
	if err := merged.validate(); err != nil {
		return nil, err
	}

	return merged.resolve(attribute(b.layers)), nil
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg, err := FromEnv(b.log)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.layers = append(b.layers, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flagsCfg, err := FromFlags(args, b.log)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.layers = append(b.layers, flagsCfg)
	return b
}

// withFile loads the settings file named by the layers added so far. A file
// created during this call is not read back: the placeholders it holds are
// meant to be edited first, so the merge sees an empty file layer.
func (b *configBuilder) withFile() *configBuilder {
	if b.err != nil {
		return b
	}

	path, err := settingsFilePath(b.layers)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	fileCfg, created, err := FromFile(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	if created {
		b.log.Warn().
			Str("path", path).
			Msg("no settings file found, default written to disk; if this is a first run, exit and edit it before continuing")
		b.log.Debug().Any("settings", fileCfg).Msg("default settings file content")
		fileCfg = &Settings{Source: SourceFile}
	} else {
		b.log.Info().Str("path", path).Msg("settings file loaded")
	}

	b.layers = append(b.layers, fileCfg)
	return b
}

// settingsFilePath returns the settings file location from the first layer
// that names one. The file layer itself never contributes a location.
func settingsFilePath(layers []*Settings) (string, error) {
	for _, layer := range layers {
		if layer != nil && layer.SettingsFilePath != nil {
			return *layer.SettingsFilePath, nil
		}
	}

	return "", ErrNoSettingsFile
}

// merge combines layers field by field, the first present value winning.
// Pointers are never dereferenced, so an option is always taken whole from
// a single layer.
func merge(layers ...*Settings) (*Settings, error) {
	merged := new(Settings)
	for _, layer := range layers {
		if layer == nil {
			continue
		}
		if err := mergo.Merge(merged, layer, mergo.WithoutDereference); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	merged.Source = ""
	return merged, nil
}

// attribute records which layer supplied each option. Options supplied by
// no layer are attributed to [SourceDefault].
func attribute(layers []*Settings) map[string]SourceName {
	sources := map[string]SourceName{
		FieldSessionLifetime: SourceDefault,
	}

	for i := len(layers) - 1; i >= 0; i-- {
		if layers[i] == nil {
			continue
		}
		for field, present := range layers[i].has() {
			if present {
				sources[field] = layers[i].Source
			}
		}
	}

	return sources
}
