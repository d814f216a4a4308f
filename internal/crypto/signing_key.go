// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/ecdsa"
	"fmt"
	"io"
	"os"

	"github.com/golang-jwt/jwt/v5"
)

// signingCurve is the curve mandated by ES256.
const signingCurve = "P-256"

// pemKeyLoader is the file-backed implementation of [KeyLoader].
type pemKeyLoader struct{}

// NewKeyLoader returns a [KeyLoader] that reads keys from the filesystem.
func NewKeyLoader() KeyLoader {
	return pemKeyLoader{}
}

// LoadSigningKey implements [KeyLoader].
func (pemKeyLoader) LoadSigningKey(path string) (*ecdsa.PrivateKey, error) {
	keyFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrKeyFileOpen, path, err)
	}
	defer keyFile.Close()

	pemBytes, err := io.ReadAll(keyFile)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrKeyFileRead, path, err)
	}

	key, err := ParseSigningKey(pemBytes)
	if err != nil {
		return nil, fmt.Errorf("%w (file %q)", err, path)
	}

	return key, nil
}

// ParseSigningKey decodes a PEM encoded EC private key (SEC 1 or PKCS #8)
// and checks that it can sign ES256 tokens.
func ParseSigningKey(pemBytes []byte) (*ecdsa.PrivateKey, error) {
	key, err := jwt.ParseECPrivateKeyFromPEM(pemBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeyDecode, err)
	}

	if name := key.Curve.Params().Name; name != signingCurve {
		return nil, fmt.Errorf("%w: curve %s, want %s", ErrKeyDecode, name, signingCurve)
	}

	return key, nil
}
