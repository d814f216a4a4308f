package crypto

import "crypto/ecdsa"

//go:generate mockgen -source=interfaces.go -destination=../mock/key_loader_mock.go -package=mock

// KeyLoader materializes the token-signing key referenced by the resolved
// configuration. The key is loaded once at startup and held for the process
// lifetime; there is no lazy or partial loading.
type KeyLoader interface {
	// LoadSigningKey opens the file at path, reads it fully and decodes it as
	// a PEM encoded ES256 (P-256) private key.
	// Returns an error wrapping ErrKeyFileOpen, ErrKeyFileRead or
	// ErrKeyDecode depending on which step failed.
	LoadSigningKey(path string) (*ecdsa.PrivateKey, error)
}
