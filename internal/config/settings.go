// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"net/url"
)

// SourceName identifies the layer a [Settings] record or a resolved option
// came from.
type SourceName string

const (
	SourceEnv     SourceName = "env"
	SourceCLI     SourceName = "cli"
	SourceFile    SourceName = "file"
	SourceDefault SourceName = "default"
)

// Option names. They double as YAML keys and as the field names reported by
// [MissingOptionError].
const (
	FieldServerAddress    = "server_address"
	FieldDatabaseAddress  = "database_address"
	FieldSigningKeyPath   = "signing_key_path"
	FieldSessionLifetime  = "session_lifetime_seconds"
	FieldSettingsFilePath = "settings_file_path"
)

// maxSessionLifetimeSeconds keeps the lifetime representable as a
// time.Duration.
const maxSessionLifetimeSeconds = 9223372036

// Settings is the all-optional record produced by every layer. A nil field
// means the layer did not supply that option.
//
// Struct tags:
//   - yaml:     key in the settings file; "-" fields are never read from it.
//   - validate: rules checked on the merged record (go-playground/validator).
type Settings struct {
	// Source is the layer that produced the record.
	Source SourceName `yaml:"-"`

	// ServerAddress is the full address to run the server on.
	ServerAddress *URL `yaml:"server_address,omitempty" validate:"required"`

	// DatabaseAddress is the database URL; its scheme selects the backend.
	DatabaseAddress *URL `yaml:"database_address,omitempty" validate:"required"`

	// SigningKeyPath is the path to the PEM encoded ES256 key used for
	// creating auth tokens.
	SigningKeyPath *string `yaml:"signing_key_path,omitempty" validate:"required"`

	// SessionLifetime is how long, in seconds, an auth token stays valid.
	SessionLifetime *uint64 `yaml:"session_lifetime_seconds,omitempty" validate:"omitempty,max=9223372036"`

	// SettingsFilePath is the settings file location. Only the environment
	// and command-line layers may set it.
	SettingsFilePath *string `yaml:"-"`
}

// DefaultFileSettings returns the placeholder record written to disk when no
// settings file exists yet.
func DefaultFileSettings() *Settings {
	return &Settings{
		Source:          SourceFile,
		ServerAddress:   mustParseURL("https://example.net"),
		DatabaseAddress: mustParseURL("postgres://db.example.net"),
		SigningKeyPath:  ptr("/etc/maelstrom/authkey.pem"),
		SessionLifetime: ptr(uint64(3000)),
	}
}

// has reports which options the record supplies, keyed by option name.
func (s *Settings) has() map[string]bool {
	return map[string]bool{
		FieldServerAddress:    s.ServerAddress != nil,
		FieldDatabaseAddress:  s.DatabaseAddress != nil,
		FieldSigningKeyPath:   s.SigningKeyPath != nil,
		FieldSessionLifetime:  s.SessionLifetime != nil,
		FieldSettingsFilePath: s.SettingsFilePath != nil,
	}
}

var errRelativeURL = errors.New("URL has no scheme")

// URL is an absolute URL that encodes to and decodes from its string form,
// so it can live in YAML documents.
type URL struct {
	url.URL
}

// ParseURL parses raw and requires the result to carry a scheme.
func ParseURL(raw string) (*URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if u.Scheme == "" {
		return nil, errRelativeURL
	}

	return &URL{URL: *u}, nil
}

// MarshalText implements encoding.TextMarshaler.
func (u URL) MarshalText() ([]byte, error) {
	return []byte(u.URL.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *URL) UnmarshalText(text []byte) error {
	parsed, err := ParseURL(string(text))
	if err != nil {
		return err
	}

	*u = *parsed
	return nil
}

func mustParseURL(raw string) *URL {
	u, err := ParseURL(raw)
	if err != nil {
		panic(err)
	}
	return u
}

func ptr[T any](v T) *T {
	return &v
}
