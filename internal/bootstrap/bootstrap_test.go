// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bootstrap

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"net/url"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/maelstrom/internal/config"
	"github.com/MKhiriev/maelstrom/internal/crypto"
	"github.com/MKhiriev/maelstrom/internal/logger"
	"github.com/MKhiriev/maelstrom/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func newTestAssembler(t *testing.T, ctrl *gomock.Controller) (*Assembler, *mock.MockSettingsResolver, *mock.MockKeyLoader) {
	t.Helper()
	resolver := mock.NewMockSettingsResolver(ctrl)
	keys := mock.NewMockKeyLoader(ctrl)

	return &Assembler{resolver: resolver, keys: keys, log: logger.Nop()}, resolver, keys
}

func newTestKey(t *testing.T) *ecdsa.PrivateKey {
	t.Helper()
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	return key
}

func writeKeyFile(t *testing.T, dir string, key *ecdsa.PrivateKey) string {
	t.Helper()
	der, err := x509.MarshalECPrivateKey(key)
	require.NoError(t, err)
	p := filepath.Join(dir, "authkey.pem")
	require.NoError(t, os.WriteFile(p, pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: der}), 0o600))
	return p
}

// clearEnv blanks every recognized variable; blank values count as absent.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"MAELSTROM_SERVER_ADDRESS",
		"MAELSTROM_DATABASE_ADDRESS",
		"MAELSTROM_AUTHKEY_PATH",
		"MAELSTROM_SESSION_EXPIRATION",
		"MAELSTROM_CONF_PATH",
	} {
		t.Setenv(k, "")
	}
}

// ── Assemble with mocks ───────────────────────────────────────────────────────

func TestAssemble_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, resolver, keys := newTestAssembler(t, ctrl)
	args := []string{"--conf-path", "/etc/maelstrom/config.yaml"}
	key := newTestKey(t)
	cfg := &config.ResolvedConfig{
		ServerAddress:   url.URL{Scheme: "https", Host: "example.net"},
		DatabaseAddress: url.URL{Scheme: "postgres", Host: "db.example.net"},
		SigningKeyPath:  "/etc/maelstrom/authkey.pem",
		SessionLifetime: 90 * time.Second,
	}

	gomock.InOrder(
		resolver.EXPECT().Resolve(args).Return(cfg, nil),
		keys.EXPECT().LoadSigningKey("/etc/maelstrom/authkey.pem").Return(key, nil),
	)

	identity, err := a.Assemble(args)

	require.NoError(t, err)
	assert.Equal(t, cfg.ServerAddress, identity.ServerAddress)
	assert.Equal(t, cfg.DatabaseAddress, identity.DatabaseAddress)
	assert.Same(t, key, identity.SigningKey)
	assert.Equal(t, 90*time.Second, identity.SessionLifetime)
}

func TestAssemble_ResolveFailure_SkipsKeyLoading(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, resolver, keys := newTestAssembler(t, ctrl)
	resolver.EXPECT().Resolve(gomock.Any()).Return(nil, &config.MissingOptionError{Field: config.FieldServerAddress})
	keys.EXPECT().LoadSigningKey(gomock.Any()).Times(0)

	identity, err := a.Assemble(nil)

	assert.Nil(t, identity)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrMissingOption)
	assert.Contains(t, err.Error(), config.FieldServerAddress)
}

func TestAssemble_KeyFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, resolver, keys := newTestAssembler(t, ctrl)
	resolver.EXPECT().Resolve(gomock.Any()).Return(&config.ResolvedConfig{SigningKeyPath: "/missing.pem"}, nil)
	keys.EXPECT().LoadSigningKey("/missing.pem").Return(nil, crypto.ErrKeyFileOpen)

	identity, err := a.Assemble(nil)

	assert.Nil(t, identity)
	assert.ErrorIs(t, err, crypto.ErrKeyFileOpen)
}

// ── Assemble end to end ───────────────────────────────────────────────────────

// Environment supplies only the database address, the command line the
// server address and key path, and no settings file exists yet: a default
// file is written and the built-in lifetime applies.
func TestAssemble_FirstRunScenario(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	key := newTestKey(t)
	keyPath := writeKeyFile(t, dir, key)
	confPath := filepath.Join(dir, "maelstrom.yaml")

	t.Setenv("MAELSTROM_DATABASE_ADDRESS", "postgres://env-db.example.org/maelstrom")
	t.Setenv("MAELSTROM_CONF_PATH", confPath)
	args := []string{
		"--server-address", "https://cli.example.org:8448",
		"--authkey-path", keyPath,
	}

	identity, err := NewAssembler(logger.Nop()).Assemble(args)

	require.NoError(t, err)
	assert.Equal(t, "https://cli.example.org:8448", identity.ServerAddress.String())
	assert.Equal(t, "postgres://env-db.example.org/maelstrom", identity.DatabaseAddress.String())
	assert.True(t, key.Equal(identity.SigningKey))
	assert.Equal(t, 60*time.Second, identity.SessionLifetime)

	written, created, err := config.FromFile(confPath)
	require.NoError(t, err)
	assert.False(t, created, "default file should already exist on disk")
	assert.Equal(t, config.DefaultFileSettings(), written)
}

// A corrupt settings file stops resolution and is left untouched.
func TestAssemble_CorruptSettingsFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	confPath := filepath.Join(dir, "maelstrom.yaml")
	corrupt := []byte("server_address: [unterminated\n")
	require.NoError(t, os.WriteFile(confPath, corrupt, 0o600))

	identity, err := NewAssembler(logger.Nop()).Assemble([]string{"-c", confPath})

	assert.Nil(t, identity)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrSettingsFileCorrupt)

	onDisk, readErr := os.ReadFile(confPath)
	require.NoError(t, readErr)
	assert.Equal(t, corrupt, onDisk)
}

func TestAssemble_SettingsFileSuppliesEverything(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	key := newTestKey(t)
	keyPath := writeKeyFile(t, dir, key)
	confPath := filepath.Join(dir, "maelstrom.yaml")
	body := "server_address: https://file.example.org\n" +
		"database_address: sqlite:///var/lib/maelstrom.db\n" +
		"signing_key_path: " + keyPath + "\n" +
		"session_lifetime_seconds: 3600\n"
	require.NoError(t, os.WriteFile(confPath, []byte(body), 0o600))

	identity, err := NewAssembler(logger.Nop()).Assemble([]string{"--conf-path", confPath})

	require.NoError(t, err)
	assert.Equal(t, "https://file.example.org", identity.ServerAddress.String())
	assert.Equal(t, "sqlite", identity.DatabaseAddress.Scheme)
	assert.Equal(t, time.Hour, identity.SessionLifetime)
	assert.True(t, key.Equal(identity.SigningKey))
}

func TestAssemble_KeyFileMissing(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	confPath := filepath.Join(dir, "maelstrom.yaml")
	args := []string{
		"-c", confPath,
		"--server-address", "https://example.org",
		"--database-address", "postgres://db.example.org",
		"--authkey-path", filepath.Join(dir, "missing.pem"),
	}

	identity, err := NewAssembler(logger.Nop()).Assemble(args)

	assert.Nil(t, identity)
	assert.ErrorIs(t, err, crypto.ErrKeyFileOpen)
}
