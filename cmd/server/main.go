// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"os"
	"time"

	"github.com/MKhiriev/maelstrom/internal/bootstrap"
	"github.com/MKhiriev/maelstrom/internal/logger"
	"github.com/MKhiriev/maelstrom/internal/utils"
	"github.com/MKhiriev/maelstrom/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// The startup self-check token is independent of the session lifetime,
// which may legitimately be zero.
const (
	selfCheckSubject  = "@maelstrom:self-check"
	selfCheckLifetime = time.Minute
)

func main() {
	log := logger.NewLogger("maelstrom-server")
	log.Info().
		Object("build", models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)).
		Msg("starting")

	identity, err := bootstrap.NewAssembler(log).Assemble(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error assembling server identity")
	}

	token, err := utils.GenerateJWTToken(identity.ServerAddress.String(), selfCheckSubject, selfCheckLifetime, identity.SigningKey)
	if err != nil {
		log.Fatal().Err(err).Msg("signing key cannot issue tokens")
	}
	if _, err = utils.ValidateSessionToken(identity, token.SignedString); err != nil {
		log.Fatal().Err(err).Msg("signing key cannot verify its own tokens")
	}

	log.Info().
		Str("server_address", identity.ServerAddress.String()).
		Str("database_address", identity.DatabaseAddress.Redacted()).
		Str("database_backend", string(identity.DatabaseBackend())).
		Dur("session_lifetime", identity.SessionLifetime).
		Msg("server identity ready")
}
