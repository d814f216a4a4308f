package crypto

import "errors"

// Key loading errors returned by [KeyLoader.LoadSigningKey]. Each failure
// step has its own sentinel so the cause can be reported distinctly.
var (
	// ErrKeyFileOpen indicates the key file could not be opened
	// (not found, permission denied).
	ErrKeyFileOpen = errors.New("unable to open signing key file")
	// ErrKeyFileRead indicates the key file was opened but could not be read
	// to the end.
	ErrKeyFileRead = errors.New("unable to read signing key file")
	// ErrKeyDecode indicates the content is not a PEM encoded EC private key
	// on the P-256 curve.
	ErrKeyDecode = errors.New("unable to parse signing key")
)
