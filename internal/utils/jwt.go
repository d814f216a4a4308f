package utils

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/maelstrom/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateJWTToken creates a JWT token signed with ES256.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the server that issued the token
//   - Subject   (sub): the session owner
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// All parameters are required. Returns an error if any of them are empty,
// zero or nil.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("https://example.net", "@alice:example.net", time.Minute, key)
func GenerateJWTToken(issuer, subject string, tokenDuration time.Duration, signKey *ecdsa.PrivateKey) (models.Token, error) {
	if issuer == "" || subject == "" || tokenDuration == 0 || signKey == nil {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodES256, claims)
	tokenString, err := token.SignedString(signKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, RegisteredClaims: claims, SignedString: tokenString}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts
// its claims.
//
// Validation includes:
//   - Signing method check (ES256 only)
//   - Signature verification using the provided public key
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check
//   - Subject (sub) claim presence
func ValidateAndParseJWTToken(tokenString string, verifyKey *ecdsa.PublicKey, tokenIssuer string) (models.Token, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return verifyKey, nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodES256.Alg()}))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	return models.Token{Token: token, RegisteredClaims: *claims, SignedString: tokenString}, nil
}

// GenerateSessionToken issues a session token for subject using the server's
// signing key. The issuer is the server address and the expiry is the
// configured session lifetime.
func GenerateSessionToken(identity *models.ServerIdentity, subject string) (models.Token, error) {
	return GenerateJWTToken(identity.ServerAddress.String(), subject, identity.SessionLifetime, identity.SigningKey)
}

// ValidateSessionToken verifies a token issued by [GenerateSessionToken] for
// the same identity.
func ValidateSessionToken(identity *models.ServerIdentity, tokenString string) (models.Token, error) {
	return ValidateAndParseJWTToken(tokenString, identity.PublicKey(), identity.ServerAddress.String())
}
