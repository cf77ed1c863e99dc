package utils

import (
	"crypto/rand"
	"encoding/hex"
)

const defaultTokenBytes = 32

// NewRefreshToken returns an opaque hex token for refresh-session storage.
func NewRefreshToken(nBytes int) (string, error) {
	if nBytes <= 0 {
		nBytes = defaultTokenBytes
	}
	b := make([]byte, nBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
