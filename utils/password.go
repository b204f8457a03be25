package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/pbkdf2"
)

const digestIterations = 4096

// Digest derives the stored password digest from a salt and a plaintext
// password. Both the login check and the admin seeding must use this exact
// derivation.
func Digest(salt, password string) string {
	key := pbkdf2.Key([]byte(password), []byte(salt), digestIterations, 32, sha256.New)
	return hex.EncodeToString(key)
}

// NewSalt returns 16 random bytes hex-encoded.
func NewSalt() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
