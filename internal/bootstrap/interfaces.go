package bootstrap

import "github.com/MKhiriev/maelstrom/internal/config"

//go:generate mockgen -source=interfaces.go -destination=../mock/settings_resolver_mock.go -package=mock

// SettingsResolver produces the merged configuration from the environment,
// the command-line args and the settings file.
type SettingsResolver interface {
	// Resolve runs every configuration layer and merges them.
	// Returns the first fatal error encountered.
	Resolve(args []string) (*config.ResolvedConfig, error)
}
