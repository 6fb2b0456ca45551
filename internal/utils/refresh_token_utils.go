package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashRefreshToken generates a SHA256 hash of a refresh token.
func HashRefreshToken(token string) string {
	hasher := sha256.New()
	hasher.Write([]byte(token))
	return hex.EncodeToString(hasher.Sum(nil))
}
