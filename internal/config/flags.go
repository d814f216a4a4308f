// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/MKhiriev/maelstrom/internal/logger"
)

// AppName is the command name shown in usage output.
const AppName = "maelstrom"

// FromFlags builds the command-line layer from args (without the program
// name).
//
// Flags:
//
//	--server-address      full address to run the server on
//	--database-address    database URL
//	--authkey-path        path to the PEM encoded ES256 auth key
//	--session-expiration  auth token lifetime in seconds
//	-c/--conf-path        settings file location
//
// Every flag is read as a string; malformed values leave the option absent.
// An unknown flag or a flag without a value is returned as an error.
func FromFlags(args []string, log *logger.Logger) (*Settings, error) {
	var raw rawSettings

	app := newFlagSet(&raw)
	if _, err := app.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing command-line flags: %w", err)
	}

	return raw.settings(newSourceReader(SourceCLI, log)), nil
}

func newFlagSet(raw *rawSettings) *kingpin.Application {
	app := kingpin.New(AppName, "Maelstrom server.")
	app.HelpFlag.Short('h')

	app.Flag("server-address", "Full address to run the server on.").
		PlaceHolder("URL").StringVar(&raw.ServerAddress)
	app.Flag("database-address", "Database URL (postgres://, sqlite://, sled://).").
		PlaceHolder("URL").StringVar(&raw.DatabaseAddress)
	app.Flag("authkey-path", "Path to PEM encoded ES256 key for creating auth tokens.").
		PlaceHolder("PATH").StringVar(&raw.AuthKeyPath)
	app.Flag("session-expiration", "Duration in seconds that an auth token is valid for.").
		PlaceHolder("SECONDS").StringVar(&raw.SessionExpiration)
	app.Flag("conf-path", "Server configuration file location.").
		Short('c').PlaceHolder("PATH").StringVar(&raw.ConfPath)

	return app
}
