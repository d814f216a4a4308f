// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"crypto/ecdsa"
	"net/url"
	"strings"
	"time"
)

// DatabaseBackend is the storage engine selected by the database URL scheme.
type DatabaseBackend string

const (
	DatabasePostgres DatabaseBackend = "postgres"
	DatabaseSQLite   DatabaseBackend = "sqlite"
	DatabaseSled     DatabaseBackend = "sled"
	DatabaseUnknown  DatabaseBackend = "unknown"
)

// ServerIdentity is the final bootstrap configuration handed to the server.
// It is built once at startup and never mutated afterwards.
type ServerIdentity struct {
	// ServerAddress is the full address to run the server on.
	ServerAddress url.URL

	// DatabaseAddress is the database URL.
	DatabaseAddress url.URL

	// SigningKey is the ES256 key used to sign auth tokens.
	SigningKey *ecdsa.PrivateKey

	// SessionLifetime is how long an auth token stays valid.
	SessionLifetime time.Duration
}

// PublicKey returns the verification half of the signing key.
func (s *ServerIdentity) PublicKey() *ecdsa.PublicKey {
	return &s.SigningKey.PublicKey
}

// DatabaseBackend classifies the database URL by scheme. Unrecognized
// schemes yield [DatabaseUnknown].
func (s *ServerIdentity) DatabaseBackend() DatabaseBackend {
	switch strings.ToLower(s.DatabaseAddress.Scheme) {
	case "postgres", "postgresql":
		return DatabasePostgres
	case "sqlite", "sqlite3":
		return DatabaseSQLite
	case "sled":
		return DatabaseSled
	default:
		return DatabaseUnknown
	}
}
