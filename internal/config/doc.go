// Package config resolves the bootstrap configuration of the maelstrom
// server.
//
// Configuration is assembled from three layers, each producing the same
// all-optional [Settings] record, in the following priority order (earlier
// layers win for every field they set):
//  1. Environment variables (MAELSTROM_*)
//  2. Command-line flags
//  3. YAML settings file (path resolved from layers 1 and 2)
//
// Malformed values in layers 1 and 2 are logged and treated as absent. The
// merged record must supply every required option; the session lifetime is
// the only option with a built-in default.
//
// The main entry point is [Resolver.Resolve], which returns a
// [ResolvedConfig] or an error describing the first fatal condition.
package config
