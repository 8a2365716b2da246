package helpers

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
)

// SessionTokenBytes is the entropy of a session token (256 bits).
const SessionTokenBytes = 32

// NewToken returns n random bytes encoded as unpadded base64url.
func NewToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// NewSessionToken returns an opaque, unguessable session token.
func NewSessionToken() (string, error) {
	return NewToken(SessionTokenBytes)
}

// HashToken is the digest under which a token is stored.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}
