package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// MinOpaqueTokenBytes is the least entropy accepted for opaque tokens.
const MinOpaqueTokenBytes = 32

// GenerateOpaqueToken creates a random hex token of n bytes (at least
// MinOpaqueTokenBytes). Returns both the raw token (to send to the client)
// and its SHA-256 hash (to store in DB).
func GenerateOpaqueToken(n int) (raw string, hash string, err error) {
	if n < MinOpaqueTokenBytes {
		n = MinOpaqueTokenBytes
	}
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", "", fmt.Errorf("generate random bytes: %w", err)
	}

	raw = hex.EncodeToString(b)
	hash = HashToken(raw)

	return raw, hash, nil
}

// HashToken computes the SHA-256 hash of a token and returns it as a hex string.
func HashToken(raw string) string {
	h := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(h[:])
}
