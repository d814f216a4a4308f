// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
	"time"

	"github.com/MKhiriev/maelstrom/internal/logger"
)

// DefaultSessionLifetime applies when no layer sets the session lifetime.
const DefaultSessionLifetime = 60 * time.Second

// ResolvedConfig is the merged, validated configuration. It is only built by
// [Resolver.Resolve], so every field is present and well-formed.
type ResolvedConfig struct {
	// ServerAddress is the full address to run the server on.
	ServerAddress url.URL

	// DatabaseAddress is the database URL.
	DatabaseAddress url.URL

	// SigningKeyPath is the location of the PEM encoded ES256 key.
	SigningKeyPath string

	// SessionLifetime is how long an auth token stays valid.
	SessionLifetime time.Duration

	// Sources maps each option name to the layer that supplied it.
	Sources map[string]SourceName
}

// resolve converts a validated merged record into a [ResolvedConfig].
func (s *Settings) resolve(sources map[string]SourceName) *ResolvedConfig {
	lifetime := DefaultSessionLifetime
	if s.SessionLifetime != nil {
		lifetime = time.Duration(*s.SessionLifetime) * time.Second
	}

	return &ResolvedConfig{
		ServerAddress:   s.ServerAddress.URL,
		DatabaseAddress: s.DatabaseAddress.URL,
		SigningKeyPath:  *s.SigningKeyPath,
		SessionLifetime: lifetime,
		Sources:         sources,
	}
}

// Resolver runs the environment, command-line and file layers and merges
// them.
type Resolver struct {
	log *logger.Logger
}

// NewResolver returns a Resolver that reports diagnostics to log.
func NewResolver(log *logger.Logger) *Resolver {
	return &Resolver{log: log}
}

// Resolve loads, merges and validates the configuration in the following
// priority order (first source wins for every option it sets):
//  1. Environment variables
//  2. Command-line flags from args
//  3. YAML settings file (path resolved from sources 1 and 2)
//
// Returns the resolved configuration or the first fatal error.
func (r *Resolver) Resolve(args []string) (*ResolvedConfig, error) {
	return newConfigBuilder(r.log).
		withEnv().
		withFlags(args).
		withFile().
		build()
}
