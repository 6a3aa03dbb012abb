package util

import (
	"crypto/rand"
	"encoding/base64"
)

// GenerateSessionToken returns an unguessable candidate-facing token. The
// token is the only credential a candidate ever holds.
func GenerateSessionToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return "sess_" + base64.RawURLEncoding.EncodeToString(buf), nil
}
