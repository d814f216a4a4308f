// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/MKhiriev/maelstrom/internal/logger"
)

// EnvPrefix is prepended to every environment variable name in [rawSettings].
const EnvPrefix = "MAELSTROM_"

// FromEnv builds the environment layer. Unset, empty and malformed variables
// leave the corresponding option absent.
func FromEnv(log *logger.Logger) (*Settings, error) {
	var raw rawSettings
	if err := parseEnv(&raw); err != nil {
		return nil, err
	}

	return raw.settings(newSourceReader(SourceEnv, log)), nil
}

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Field names come from the `env` tags, prefixed with [EnvPrefix].
//
// Returns a wrapped error if env.Parse fails. With string-only targets this
// only happens on a broken struct definition.
func parseEnv(cfg any) error {
	err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
