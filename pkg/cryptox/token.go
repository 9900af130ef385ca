package cryptox

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
)

// FingerprintToken returns a deterministic SHA-256 fingerprint of a token.
// One-time codes are stored by fingerprint so a leaked table cannot be
// replayed against the confirmation endpoints.
func FingerprintToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}

// RandomSecret returns 32 random bytes, base64url encoded.
func RandomSecret() string {
	buf := make([]byte, keyLength)
	// crypto/rand.Read never returns an error on supported platforms.
	_, _ = rand.Read(buf)
	return base64.RawURLEncoding.EncodeToString(buf)
}
