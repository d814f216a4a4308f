// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package bootstrap assembles the [models.ServerIdentity] the server starts
// with: it resolves the layered configuration, loads the signing key it
// references and combines both.
//
// Nothing in this package terminates the process. Every failure is returned
// to the caller, which decides how to exit.
package bootstrap

import (
	"fmt"

	"github.com/MKhiriev/maelstrom/internal/config"
	"github.com/MKhiriev/maelstrom/internal/crypto"
	"github.com/MKhiriev/maelstrom/internal/logger"
	"github.com/MKhiriev/maelstrom/models"
)

// Assembler runs the startup configuration chain once.
type Assembler struct {
	resolver SettingsResolver
	keys     crypto.KeyLoader
	log      *logger.Logger
}

// NewAssembler returns an Assembler backed by the environment, the
// filesystem and a PEM key loader.
func NewAssembler(log *logger.Logger) *Assembler {
	return &Assembler{
		resolver: config.NewResolver(log.Named("config")),
		keys:     crypto.NewKeyLoader(),
		log:      log,
	}
}

// Assemble resolves the configuration from args and the environment, loads
// the signing key and returns the resulting identity.
func (a *Assembler) Assemble(args []string) (*models.ServerIdentity, error) {
	cfg, err := a.resolver.Resolve(args)
	if err != nil {
		return nil, fmt.Errorf("error resolving configuration: %w", err)
	}

	a.log.Debug().
		Any("sources", cfg.Sources).
		Str("server_address", cfg.ServerAddress.String()).
		Str("database_address", cfg.DatabaseAddress.Redacted()).
		Str("signing_key_path", cfg.SigningKeyPath).
		Dur("session_lifetime", cfg.SessionLifetime).
		Msg("configuration resolved")

	key, err := a.keys.LoadSigningKey(cfg.SigningKeyPath)
	if err != nil {
		return nil, fmt.Errorf("error loading signing key: %w", err)
	}

	return &models.ServerIdentity{
		ServerAddress:   cfg.ServerAddress,
		DatabaseAddress: cfg.DatabaseAddress,
		SigningKey:      key,
		SessionLifetime: cfg.SessionLifetime,
	}, nil
}
