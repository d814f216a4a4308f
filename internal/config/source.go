// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"strconv"
	"strings"

	"github.com/MKhiriev/maelstrom/internal/logger"
)

var errLifetimeRange = errors.New("session lifetime out of range")

// rawSettings is the untyped form shared by the environment and
// command-line layers. Every value is read as a string and converted by
// [sourceReader], so both layers apply the same parsing rules.
//
// Struct tags:
//   - env: variable name below the MAELSTROM_ prefix (caarlos0/env).
type rawSettings struct {
	ServerAddress     string `env:"SERVER_ADDRESS"`
	DatabaseAddress   string `env:"DATABASE_ADDRESS"`
	AuthKeyPath       string `env:"AUTHKEY_PATH"`
	SessionExpiration string `env:"SESSION_EXPIRATION"`
	ConfPath          string `env:"CONF_PATH"`
}

// settings converts the raw strings into a typed record. Empty and malformed
// values both end up nil.
func (raw rawSettings) settings(r sourceReader) *Settings {
	return &Settings{
		Source:           r.source,
		ServerAddress:    r.url(FieldServerAddress, raw.ServerAddress),
		DatabaseAddress:  r.url(FieldDatabaseAddress, raw.DatabaseAddress),
		SigningKeyPath:   r.path(FieldSigningKeyPath, raw.AuthKeyPath),
		SessionLifetime:  r.seconds(FieldSessionLifetime, raw.SessionExpiration),
		SettingsFilePath: r.path(FieldSettingsFilePath, raw.ConfPath),
	}
}

// sourceReader parses single named values for one layer. A value that fails
// to parse is dropped to absent and reported with a warning, because it
// silently hands the option over to a lower-priority layer.
type sourceReader struct {
	source SourceName
	log    *logger.Logger
}

func newSourceReader(source SourceName, log *logger.Logger) sourceReader {
	return sourceReader{source: source, log: log}
}

func (r sourceReader) url(field, raw string) *URL {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	u, err := ParseURL(raw)
	if err != nil {
		r.discard(field, raw, err)
		return nil
	}
	return u
}

func (r sourceReader) path(field, raw string) *string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	return &raw
}

func (r sourceReader) seconds(field, raw string) *uint64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	v, err := strconv.ParseUint(raw, 10, 64)
	if err == nil && v > maxSessionLifetimeSeconds {
		err = errLifetimeRange
	}
	if err != nil {
		r.discard(field, raw, err)
		return nil
	}
	return &v
}

func (r sourceReader) discard(field, raw string, err error) {
	r.log.Warn().
		Err(err).
		Str("source", string(r.source)).
		Str("option", field).
		Str("value", raw).
		Msg("malformed option value ignored, falling back to lower-priority sources")
}
